package types

import "gopkg.in/guregu/null.v3"

type CreateDriveRequest struct {
	Title        string `json:"title" validate:"required"`
	Location     string `json:"location" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Dtype        string `json:"dtype" validate:"required"`
	StartDate    string `json:"startDate" validate:"required"`
	EndDate      string `json:"EndDate" validate:"required"`
	TimeInterval string `json:"timeInterval" validate:"required"`
	Status       string `json:"status" validate:"omitempty,caseinsensitiveoneof=pending active completed"`
	PlaceLink    string `json:"placeLink"`

	Geolocation *GeoLocationFragment `json:"geolocation"`
}

type UpdateDriveRequest struct {
	Title        null.String `json:"title" swaggertype:"string"`
	Location     null.String `json:"location" swaggertype:"string"`
	Description  null.String `json:"description" swaggertype:"string"`
	Dtype        null.String `json:"dtype" swaggertype:"string"`
	StartDate    null.String `json:"startDate" swaggertype:"string"`
	EndDate      null.String `json:"EndDate" swaggertype:"string"`
	TimeInterval null.String `json:"timeInterval" swaggertype:"string"`
	Status       null.String `json:"status" validate:"omitempty,caseinsensitiveoneof=pending active completed" swaggertype:"string"`
	PlaceLink    null.String `json:"placeLink" swaggertype:"string"`
}

type GeoLocationFragment struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}
