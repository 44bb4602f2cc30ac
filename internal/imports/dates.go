package imports

import (
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"

	"pasaydan.org/backend/internal/constant"
)

// Spreadsheet templates label date columns with a trailing format hint, e.g.
// "15-01-2025 (DD-MM-YYYY)*". The hint is stripped before parsing.
var (
	formatHintRegexp = regexp.MustCompile(`\s*\((?:DD-MM-YYYY|YYYY-MM-DD)\)\*?\s*$`)
	isoDateRegexp    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

var errBadDate = errors.New("date is not in DD-MM-YYYY or YYYY-MM-DD form")

// CleanDateString strips any parenthetical format hint and surrounding
// whitespace from a raw date value.
func CleanDateString(s string) string {
	return strings.TrimSpace(formatHintRegexp.ReplaceAllString(s, ""))
}

// ParseDate parses a raw date value in either of the two accepted textual
// forms, DD-MM-YYYY or YYYY-MM-DD. Impossible calendar dates (e.g. 31-02-2025)
// are rejected by time.Parse.
func ParseDate(s string) (time.Time, error) {
	clean := CleanDateString(s)

	if isoDateRegexp.MatchString(clean) {
		return time.Parse(constant.IsoDateLayout, clean)
	}

	parts := strings.Split(clean, "-")
	if len(parts) != 3 || len(parts[2]) != 4 {
		return time.Time{}, errBadDate
	}
	day := padTwo(parts[0])
	month := padTwo(parts[1])
	return time.Parse(constant.DayMonthYearLayout, day+"-"+month+"-"+parts[2])
}

// IsValidDate reports whether the raw value represents a real calendar date in
// one of the two accepted forms.
func IsValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// NormalizeDate re-emits a raw date value in the canonical YYYY-MM-DD storage
// form. Values that fail to parse are returned untouched: the pipeline only
// normalizes records that already passed validation, so this path is not a
// fault but keeps the function total.
func NormalizeDate(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format(constant.IsoDateLayout)
}

// FormatDayMonthYear renders a time in the spreadsheet-facing DD-MM-YYYY form.
func FormatDayMonthYear(t time.Time) string {
	return t.Format(constant.DayMonthYearLayout)
}

func padTwo(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
