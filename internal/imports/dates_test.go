package imports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		valid bool
	}{
		{"day-month-year", "15-01-2025", true},
		{"iso", "2025-01-15", true},
		{"single digit day and month", "5-1-2025", true},
		{"format hint stripped", "15-01-2025 (DD-MM-YYYY)", true},
		{"format hint with asterisk", "15-01-2025 (DD-MM-YYYY)*", true},
		{"surrounding whitespace", "  15-01-2025  ", true},
		{"impossible calendar date", "31-02-2025", false},
		{"iso impossible calendar date", "2025-02-31", false},
		{"wrong separator", "15/01/2025", false},
		{"two-digit year", "15-01-25", false},
		{"empty", "", false},
		{"garbage", "not a date", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate(tt.in)
			if tt.valid {
				assert.NoError(t, err)
				assert.True(t, IsValidDate(tt.in))
			} else {
				assert.Error(t, err)
				assert.False(t, IsValidDate(tt.in))
			}
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"15-01-2025", "2025-01-15"},
		{"2025-01-15", "2025-01-15"},
		{"5-1-2025", "2025-01-05"},
		{"15-01-2025 (DD-MM-YYYY)", "2025-01-15"},
		{"31-12-2024", "2024-12-31"},
		// unparseable values pass through untouched
		{"not a date", "not a date"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDate(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeDateIdempotent(t *testing.T) {
	for _, in := range []string{"15-01-2025", "2025-01-15", "5-1-2025", "29-02-2024"} {
		once := NormalizeDate(in)
		assert.Equal(t, once, NormalizeDate(once), "input %q", in)
	}
}

func TestDateRoundTrip(t *testing.T) {
	// DD-MM-YYYY inputs survive a normalize + format-back round trip
	for _, in := range []string{"15-01-2025", "01-12-2024", "29-02-2024"} {
		parsed, err := ParseDate(NormalizeDate(in))
		require.NoError(t, err)
		assert.Equal(t, in, FormatDayMonthYear(parsed))
	}

	// ISO inputs normalize to themselves
	for _, in := range []string{"2025-01-15", "2024-02-29"} {
		assert.Equal(t, in, NormalizeDate(in))
	}
}

func TestCleanDateString(t *testing.T) {
	assert.Equal(t, "15-01-2025", CleanDateString("15-01-2025 (DD-MM-YYYY)*"))
	assert.Equal(t, "2025-01-15", CleanDateString(" 2025-01-15 (YYYY-MM-DD) "))
	assert.Equal(t, "15-01-2025", CleanDateString("15-01-2025"))
}
