package svr

import (
	"github.com/gofiber/fiber/v2"

	"pasaydan.org/backend/internal/app/appconfig"
	"pasaydan.org/backend/internal/pkg/middlewares"
)

type V1 struct {
	fiber.Router
}

type Admin struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App, conf *appconfig.Config) (*V1, *Admin) {
	v1 := app.Group("/api/v1")
	admin := app.Group("/api/_/admin", middlewares.AdminKey(conf.AdminKey))

	return &V1{Router: v1}, &Admin{Router: admin}
}
