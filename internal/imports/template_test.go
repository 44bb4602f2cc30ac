package imports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateColumns(t *testing.T) {
	tmpl := Template{
		Required: []string{"fullname*", "email*"},
		Optional: []string{"description (optional)"},
	}

	assert.Equal(t, []string{"fullname*", "email*", "description (optional)"}, tmpl.Columns())
}

func TestCleanHeader(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"title*", "title"},
		{"startDate (DD-MM-YYYY)*", "startDate"},
		{"status (pending/active/completed)", "status"},
		{"geolocation.latitude (optional)", "geolocation.latitude"},
		{"  fullname*  ", "fullname"},
		{"mobile", "mobile"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanHeader(tt.in), "input %q", tt.in)
	}
}

func TestTemplateXlsxRoundTrip(t *testing.T) {
	tmpl := Template{
		Required: []string{"fullname*", "startDate (DD-MM-YYYY)*"},
		Optional: []string{"geolocation.latitude (optional)"},
		Example: Record{
			"fullname*":                       "John Doe",
			"startDate (DD-MM-YYYY)*":         "15-01-2025",
			"geolocation.latitude (optional)": "12.1678",
		},
	}

	f, err := tmpl.Xlsx()
	require.NoError(t, err)

	// a filled-in template parses back with clean keys
	records, err := RecordsFromXlsx(f)
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "John Doe", r.Str("fullname"))
	assert.Equal(t, "15-01-2025", r.Str("startDate"))
	require.NotNil(t, r.Sub("geolocation"))
	assert.Equal(t, "12.1678", r.Sub("geolocation").Str("latitude"))
}

func TestRecordsFromXlsxSkipsEmptyRows(t *testing.T) {
	tmpl := Template{
		Required: []string{"fullname*"},
		Example:  Record{"fullname*": "John Doe"},
	}

	f, err := tmpl.Xlsx()
	require.NoError(t, err)

	sheet := f.GetSheetName(0)
	// leave row 3 blank, add a record on row 4
	require.NoError(t, f.SetCellStr(sheet, "A4", "Jane Doe"))

	records, err := RecordsFromXlsx(f)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "John Doe", records[0].Str("fullname"))
	assert.Equal(t, "Jane Doe", records[1].Str("fullname"))
}
