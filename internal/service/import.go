package service

import (
	"context"

	"gopkg.in/guregu/null.v3"

	"pasaydan.org/backend/internal/constant"
	"pasaydan.org/backend/internal/imports"
	"pasaydan.org/backend/internal/model"
	"pasaydan.org/backend/internal/repo"
)

// Import owns the three bulk-entry pipelines. Each pipeline shares the same
// orchestration (validate-all, chunk, transactional write, report) and differs
// only in its entity descriptor and chunk writer.
type Import struct {
	Drives           *imports.Pipeline
	Certificates     *imports.Pipeline
	DonationRequests *imports.Pipeline
}

func NewImport(driveRepo *repo.Drive, certificateRepo *repo.Certificate, donationRequestRepo *repo.DonationRequest) *Import {
	return &Import{
		Drives:           imports.NewPipeline(driveDescriptor(), &driveWriter{repo: driveRepo}),
		Certificates:     imports.NewPipeline(certificateDescriptor(), &certificateWriter{repo: certificateRepo}),
		DonationRequests: imports.NewPipeline(donationRequestDescriptor(), &donationRequestWriter{repo: donationRequestRepo}),
	}
}

func driveDescriptor() imports.Descriptor {
	return imports.Descriptor{
		Name:    "drives",
		ListKey: "drives",
		Rules: []imports.Rule{
			imports.Required("title", "Title"),
			imports.Required("location", "Location"),
			imports.Required("description", "Description"),
			imports.Required("dtype", "Drive type"),
			imports.Required("timeInterval", "Time interval"),
			imports.Required("startDate", "Start date"),
			imports.Date("startDate", "Start date"),
			imports.Required("EndDate", "End date"),
			imports.Date("EndDate", "End date"),
			imports.DateOrder("startDate", "EndDate"),
			imports.OneOf("status", "Status", constant.DriveStatuses...),
			imports.Geo("geolocation"),
		},
		Normalize: normalizeDrive,
		Template: imports.Template{
			Required: []string{
				"title*",
				"location*",
				"description*",
				"dtype*",
				"startDate (DD-MM-YYYY)*",
				"EndDate (DD-MM-YYYY)*",
				"timeInterval*",
			},
			Optional: []string{
				"status (pending/active/completed)",
				"placeLink (optional)",
				"geolocation.latitude (optional)",
				"geolocation.longitude (optional)",
			},
			Example: imports.Record{
				"title*":                            "Sample Drive",
				"location*":                         "Mumbai",
				"description*":                      "Drive description here",
				"dtype*":                            "Food",
				"startDate (DD-MM-YYYY)*":           "15-01-2025",
				"EndDate (DD-MM-YYYY)*":             "16-01-2025",
				"timeInterval*":                     "10:00 AM - 5:00 PM",
				"status (pending/active/completed)": "pending",
				"placeLink (optional)":              "https://maps.google.com",
				"geolocation.latitude (optional)":   "12.1678",
				"geolocation.longitude (optional)":  "31.5432",
			},
		},
	}
}

func certificateDescriptor() imports.Descriptor {
	return imports.Descriptor{
		Name:    "certificates",
		ListKey: "certificates",
		Rules: []imports.Rule{
			imports.Required("donationId", "Donation ID"),
			imports.Required("type", "Type"),
			imports.Required("fullname", "Full name"),
			imports.Required("email", "Email"),
			imports.Email("email"),
			imports.Required("mobile", "Mobile number"),
			imports.Mobile("mobile"),
		},
		Normalize: normalizeCertificate,
		Template: imports.Template{
			Required: []string{
				"donationId*",
				"email*",
				"type*",
				"fullname*",
				"mobile*",
			},
			Optional: []string{
				"description (optional)",
			},
			Example: imports.Record{
				"donationId*":            "DON123456",
				"email*":                 "donor@example.com",
				"type*":                  "Food Donation",
				"fullname*":              "John Doe",
				"mobile*":                "1234567890",
				"description (optional)": "Donated 100kg of rice",
			},
		},
	}
}

func donationRequestDescriptor() imports.Descriptor {
	return imports.Descriptor{
		Name:    "donation requests",
		ListKey: "donations",
		Rules: []imports.Rule{
			imports.Required("fullname", "Full name"),
			imports.Required("mobile", "Mobile number"),
			imports.Mobile("mobile"),
			imports.Required("email", "Email"),
			imports.Email("email"),
			imports.Required("address", "Address"),
			imports.Required("type", "Type"),
			imports.Required("quantity", "Quantity"),
		},
		Normalize: normalizeDonationRequest,
		Template: imports.Template{
			Required: []string{
				"fullname*",
				"mobile*",
				"email*",
				"address*",
				"type*",
				"quantity*",
			},
			Optional: []string{},
			Example: imports.Record{
				"fullname*": "John Doe",
				"mobile*":   "1234567890",
				"email*":    "donor@example.com",
				"address*":  "12 MG Road, Pune",
				"type*":     "Clothes",
				"quantity*": "3 bags",
			},
		},
	}
}

func normalizeDrive(r imports.Record) imports.Record {
	n := imports.TrimmedCopy(r)
	imports.NormalizeDateFields(n, "startDate", "EndDate")
	imports.LowerFields(n, "status")
	imports.DefaultFields(n, constant.DriveStatusPending, "status")
	imports.DefaultFields(n, "", "placeLink")
	if sub := n.Sub("geolocation"); sub != nil {
		sub["latitude"] = sub.Trimmed("latitude")
		sub["longitude"] = sub.Trimmed("longitude")
	}
	if _, ok := n["photos"]; !ok {
		n["photos"] = []any{}
	}
	return n
}

func normalizeCertificate(r imports.Record) imports.Record {
	n := imports.TrimmedCopy(r)
	imports.DefaultFields(n, "", "description")
	return n
}

func normalizeDonationRequest(r imports.Record) imports.Record {
	n := imports.TrimmedCopy(r)
	imports.LowerFields(n, "email")
	n["status"] = constant.DonationRequestStatusPending
	return n
}

type driveWriter struct {
	repo *repo.Drive
}

func (w *driveWriter) InsertChunk(ctx context.Context, records []imports.Record) ([]int64, error) {
	drives := make([]*model.Drive, len(records))
	for i, r := range records {
		drives[i] = driveFromRecord(r)
	}
	return w.repo.InsertBatch(ctx, drives)
}

func driveFromRecord(r imports.Record) *model.Drive {
	d := &model.Drive{
		Title:        r.Str("title"),
		Location:     r.Str("location"),
		Description:  r.Str("description"),
		Dtype:        r.Str("dtype"),
		StartDate:    r.Str("startDate"),
		EndDate:      r.Str("EndDate"),
		TimeInterval: r.Str("timeInterval"),
		Status:       r.Str("status"),
		PlaceLink:    nullString(r.Str("placeLink")),
		Photos:       []string{},
	}
	if sub := r.Sub("geolocation"); sub != nil {
		d.GeoLocation = &model.GeoLocation{
			Latitude:  sub.Str("latitude"),
			Longitude: sub.Str("longitude"),
		}
	}
	return d
}

type certificateWriter struct {
	repo *repo.Certificate
}

func (w *certificateWriter) InsertChunk(ctx context.Context, records []imports.Record) ([]int64, error) {
	certificates := make([]*model.Certificate, len(records))
	for i, r := range records {
		certificates[i] = &model.Certificate{
			DonationID:  r.Str("donationId"),
			Email:       r.Str("email"),
			Type:        r.Str("type"),
			Fullname:    r.Str("fullname"),
			Mobile:      r.Str("mobile"),
			Description: nullString(r.Str("description")),
		}
	}
	return w.repo.InsertBatch(ctx, certificates)
}

type donationRequestWriter struct {
	repo *repo.DonationRequest
}

func (w *donationRequestWriter) InsertChunk(ctx context.Context, records []imports.Record) ([]int64, error) {
	requests := make([]*model.DonationRequest, len(records))
	for i, r := range records {
		requests[i] = &model.DonationRequest{
			Fullname: r.Str("fullname"),
			Mobile:   r.Str("mobile"),
			Email:    r.Str("email"),
			Address:  r.Str("address"),
			Type:     r.Str("type"),
			Quantity: r.Str("quantity"),
			Status:   r.Str("status"),
		}
	}
	return w.repo.InsertBatch(ctx, requests)
}

func nullString(s string) null.String {
	return null.NewString(s, s != "")
}
