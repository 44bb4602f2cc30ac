package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pasaydan.org/backend/internal/imports"
)

type captureWriter struct {
	persisted []imports.Record
}

func (w *captureWriter) InsertChunk(_ context.Context, records []imports.Record) ([]int64, error) {
	w.persisted = append(w.persisted, records...)
	ids := make([]int64, len(records))
	for i := range ids {
		ids[i] = int64(len(w.persisted) - len(records) + i + 1)
	}
	return ids, nil
}

func validDrive() imports.Record {
	return imports.Record{
		"title":        "Sample Drive",
		"location":     "Mumbai",
		"description":  "Drive description here",
		"dtype":        "Food",
		"startDate":    "15-01-2025",
		"EndDate":      "16-01-2025",
		"timeInterval": "10:00 AM - 5:00 PM",
	}
}

func TestDriveImportEndDateBeforeStartDate(t *testing.T) {
	w := &captureWriter{}
	p := imports.NewPipeline(driveDescriptor(), w)

	records := []imports.Record{validDrive(), validDrive(), validDrive()}
	records[2]["startDate"] = "16-01-2025"
	records[2]["EndDate"] = "15-01-2025"

	result, err := p.Run(context.Background(), records)
	assert.Nil(t, result)

	var ve *imports.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, map[int][]string{
		2: {"End date cannot be before start date"},
	}, ve.Details)
	assert.Empty(t, w.persisted)
}

func TestNormalizeDrive(t *testing.T) {
	n := normalizeDrive(imports.Record{
		"title":        "  Food Drive ",
		"location":     "Pune",
		"description":  "desc",
		"dtype":        "Food",
		"startDate":    "15-01-2025 (DD-MM-YYYY)",
		"EndDate":      "2025-01-16",
		"timeInterval": "10-5",
		"status":       " ACTIVE ",
		"geolocation":  map[string]any{"latitude": " 12.1678 ", "longitude": "31.5432"},
	})

	assert.Equal(t, "Food Drive", n.Str("title"))
	assert.Equal(t, "2025-01-15", n.Str("startDate"))
	assert.Equal(t, "2025-01-16", n.Str("EndDate"))
	assert.Equal(t, "active", n.Str("status"))
	assert.Equal(t, "", n.Str("placeLink"))
	assert.Equal(t, []any{}, n["photos"])
	assert.Equal(t, "12.1678", n.Sub("geolocation").Str("latitude"))
}

func TestNormalizeDriveDefaultsStatus(t *testing.T) {
	n := normalizeDrive(validDrive())
	assert.Equal(t, "pending", n.Str("status"))
}

func TestNormalizeDriveIdempotent(t *testing.T) {
	once := normalizeDrive(validDrive())
	assert.Equal(t, once, normalizeDrive(once))
}

func TestNormalizeCertificate(t *testing.T) {
	n := normalizeCertificate(imports.Record{
		"donationId": " DON123456 ",
		"email":      "donor@example.com",
		"type":       "Food Donation",
		"fullname":   " John Doe ",
		"mobile":     "1234567890",
	})

	assert.Equal(t, "DON123456", n.Str("donationId"))
	assert.Equal(t, "John Doe", n.Str("fullname"))
	assert.Equal(t, "", n.Str("description"))
}

func TestNormalizeDonationRequest(t *testing.T) {
	n := normalizeDonationRequest(imports.Record{
		"fullname": "John Doe",
		"mobile":   "1234567890",
		"email":    "John@Example.COM",
		"address":  "12 MG Road, Pune",
		"type":     "Clothes",
		"quantity": "3 bags",
	})

	assert.Equal(t, "john@example.com", n.Str("email"))
	assert.Equal(t, "Pending", n.Str("status"))
}

func TestDonationRequestImportPersistsLoweredEmail(t *testing.T) {
	w := &captureWriter{}
	p := imports.NewPipeline(donationRequestDescriptor(), w)

	result, err := p.Run(context.Background(), []imports.Record{{
		"fullname": "John Doe",
		"mobile":   "1234567890",
		"email":    "John@Example.COM",
		"address":  "12 MG Road, Pune",
		"type":     "Clothes",
		"quantity": "3 bags",
	}})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Created)
	require.Len(t, w.persisted, 1)
	assert.Equal(t, "john@example.com", w.persisted[0].Str("email"))
	assert.Equal(t, "Pending", w.persisted[0].Str("status"))
}

func TestCertificateDescriptorRules(t *testing.T) {
	p := imports.NewPipeline(certificateDescriptor(), &captureWriter{})

	details := p.Validate([]imports.Record{{
		"donationId": "DON123456",
		"type":       "Food Donation",
		"fullname":   "John Doe",
		"email":      "bad-email",
		"mobile":     "123",
	}})
	assert.Equal(t, map[int][]string{
		0: {"Invalid email format", "Mobile number must be 10 digits"},
	}, details)
}
