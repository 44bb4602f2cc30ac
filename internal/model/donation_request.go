package model

import (
	"time"

	"github.com/uptrace/bun"
)

type DonationRequest struct {
	bun.BaseModel `bun:"donation_requests"`

	DonationRequestID int64  `bun:",pk,autoincrement" json:"id"`
	Fullname          string `json:"fullname"`
	Mobile            string `json:"mobile"`
	Email             string `json:"email"`
	Address           string `json:"address"`
	Type              string `json:"type"`
	Quantity          string `json:"quantity"`
	Status            string `json:"status"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"createdAt"`
}
