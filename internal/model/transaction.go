package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// Transaction natures.
const (
	TransactionNatureCredit = "CREDIT"
	TransactionNatureDebit  = "DEBIT"
)

// Transaction statuses.
const (
	TransactionStatusPending  = "PENDING"
	TransactionStatusVerified = "VERIFIED"
	TransactionStatusRejected = "REJECTED"
)

type Transaction struct {
	bun.BaseModel `bun:"transactions"`

	TransactionID int64  `bun:",pk,autoincrement" json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`

	// UserType is INDIVIDUAL or ORGANIZATION.
	UserType string `json:"userType"`

	Amount float64 `json:"amount"`

	// Type is the payment channel, e.g. CASH, UPI, BANK_TRANSFER.
	Type string `json:"type"`

	// ReferenceID is the external payment reference shown on receipts.
	ReferenceID string    `bun:"reference_id" json:"transactionId"`
	Date        time.Time `json:"date"`

	TransactionNature string      `json:"transactionNature"`
	Description       null.String `json:"description" swaggertype:"string"`
	Status            string      `json:"status"`
	MoneyFor          string      `json:"moneyFor"`
	CustomMoneyFor    null.String `json:"customMoneyFor" swaggertype:"string"`
	EntryType         string      `json:"entryType"`
	EntryBy           string      `json:"entryBy"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"createdAt"`
}
