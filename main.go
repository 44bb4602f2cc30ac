package main

import (
	"pasaydan.org/backend/cmd/app"
)

func main() {
	app.Run()
}
