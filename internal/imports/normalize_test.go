package imports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimmedCopy(t *testing.T) {
	in := Record{
		"name":        "  John Doe ",
		"count":       3,
		"geolocation": map[string]any{"latitude": " 12 "},
	}

	out := TrimmedCopy(in)
	assert.Equal(t, "John Doe", out["name"])
	assert.Equal(t, 3, out["count"])
	// the input record is untouched
	assert.Equal(t, "  John Doe ", in["name"])
	// nested objects are copied, not shared
	out.Sub("geolocation")["latitude"] = "13"
	assert.Equal(t, " 12 ", in.Sub("geolocation").Str("latitude"))
}

func TestNormalizeDateFields(t *testing.T) {
	r := Record{"startDate": "15-01-2025", "EndDate": "2025-01-16", "title": "x"}
	NormalizeDateFields(r, "startDate", "EndDate")

	assert.Equal(t, "2025-01-15", r.Str("startDate"))
	assert.Equal(t, "2025-01-16", r.Str("EndDate"))
	assert.Equal(t, "x", r.Str("title"))
}

func TestLowerAndDefaultFields(t *testing.T) {
	r := Record{"status": " ACTIVE ", "email": "John@Example.COM"}
	LowerFields(r, "status", "email")
	assert.Equal(t, "active", r.Str("status"))
	assert.Equal(t, "john@example.com", r.Str("email"))

	DefaultFields(r, "pending", "status")
	assert.Equal(t, "active", r.Str("status"), "present values are kept")

	DefaultFields(r, "pending", "missing")
	assert.Equal(t, "pending", r.Str("missing"))
}

func TestRecordStr(t *testing.T) {
	r := Record{
		"s":   "text",
		"n":   42,
		"f":   1.5,
		"b":   true,
		"nil": nil,
		"obj": map[string]any{"k": "v"},
	}

	assert.Equal(t, "text", r.Str("s"))
	assert.Equal(t, "42", r.Str("n"))
	assert.Equal(t, "1.5", r.Str("f"))
	assert.Equal(t, "true", r.Str("b"))
	assert.Equal(t, "", r.Str("nil"))
	assert.Equal(t, "", r.Str("obj"))
	assert.Equal(t, "", r.Str("absent"))
}
