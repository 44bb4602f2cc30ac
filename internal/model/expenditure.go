package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type Expenditure struct {
	bun.BaseModel `bun:"expenditures"`

	ExpenditureID  int64       `bun:",pk,autoincrement" json:"id"`
	Amount         float64     `json:"amount"`
	Date           time.Time   `json:"date"`
	Description    null.String `json:"description" swaggertype:"string"`
	Category       string      `json:"category"`
	CustomCategory null.String `json:"customCategory" swaggertype:"string"`

	// SpentBy identifies the member who entered or made the expense.
	SpentBy string `json:"spentBy"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"createdAt"`
}
