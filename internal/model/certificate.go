package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type Certificate struct {
	bun.BaseModel `bun:"certificates"`

	CertificateID int64       `bun:",pk,autoincrement" json:"id"`
	DonationID    string      `json:"donationId"`
	Email         string      `json:"email"`
	Type          string      `json:"type"`
	Fullname      string      `json:"fullname"`
	Mobile        string      `json:"mobile"`
	Description   null.String `json:"description" swaggertype:"string"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"createdAt"`
}
