package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// GeoLocation is the optional coordinates sub-object attached to a drive.
// Coordinates are kept as the strings the caller submitted; validation
// guarantees they parse as decimals in range.
type GeoLocation struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

type Drive struct {
	bun.BaseModel `bun:"drives"`

	DriveID     int64  `bun:",pk,autoincrement" json:"id"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Dtype       string `json:"dtype"`

	// StartDate and EndDate are stored in the canonical YYYY-MM-DD form.
	StartDate string `json:"startDate"`
	EndDate   string `bun:"end_date" json:"EndDate"`

	TimeInterval string       `json:"timeInterval"`
	Status       string       `json:"status"`
	PlaceLink    null.String  `json:"placeLink" swaggertype:"string"`
	Photos       []string     `bun:",array" json:"photos"`
	GeoLocation  *GeoLocation `bun:"geo_location,type:jsonb" json:"geoLocation"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"createdAt"`
}
