package imports

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// A Rule checks one aspect of a single record and returns a human-readable
// error string, or the empty string when the record passes. Rules never fail
// on malformed-but-present input: malformed input is a reported error, not a
// fault.
//
// Format rules deliberately pass on absent fields so that a missing required
// field reports exactly one presence error instead of a presence error plus a
// format error.
type Rule func(r Record) string

var (
	emailRegexp  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobileRegexp = regexp.MustCompile(`^\d{10}$`)
)

// Required reports a missing field. A field is absent when, after trimming,
// it is empty or undefined.
func Required(field, label string) Rule {
	return func(r Record) string {
		if r.Trimmed(field) == "" {
			return label + " is required"
		}
		return ""
	}
}

// Email checks a present email field for a local@domain.tld shape.
func Email(field string) Rule {
	return func(r Record) string {
		v := r.Trimmed(field)
		if v == "" {
			return ""
		}
		if !emailRegexp.MatchString(v) {
			return "Invalid email format"
		}
		return ""
	}
}

// Mobile checks a present mobile field for exactly 10 decimal digits.
func Mobile(field string) Rule {
	return func(r Record) string {
		v := r.Trimmed(field)
		if v == "" {
			return ""
		}
		if !mobileRegexp.MatchString(v) {
			return "Mobile number must be 10 digits"
		}
		return ""
	}
}

// Date checks a present date field for one of the two accepted textual forms
// and for being a real calendar date.
func Date(field, label string) Rule {
	return func(r Record) string {
		v := r.Trimmed(field)
		if v == "" {
			return ""
		}
		if !IsValidDate(v) {
			return label + " must be in DD-MM-YYYY format"
		}
		return ""
	}
}

// DateOrder checks that the end date is not chronologically before the start
// date. The check only runs when both fields are individually valid dates.
func DateOrder(startField, endField string) Rule {
	return func(r Record) string {
		start, endStr := r.Trimmed(startField), r.Trimmed(endField)
		if start == "" || endStr == "" || !IsValidDate(start) || !IsValidDate(endStr) {
			return ""
		}
		st, _ := ParseDate(start)
		et, _ := ParseDate(endStr)
		if et.Before(st) {
			return "End date cannot be before start date"
		}
		return ""
	}
}

// OneOf checks a present field against an accepted vocabulary,
// case-insensitively.
func OneOf(field, label string, values ...string) Rule {
	return func(r Record) string {
		v := strings.ToLower(r.Trimmed(field))
		if v == "" {
			return ""
		}
		for _, accepted := range values {
			if v == accepted {
				return ""
			}
		}
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(values, ", "))
	}
}

// Geo checks an optional geolocation sub-object. Latitude must be a decimal in
// [-90, 90] and longitude a decimal in [-180, 180]; each is validated
// independently and either may be absent.
func Geo(field string) Rule {
	return func(r Record) string {
		sub := r.Sub(field)
		if sub == nil {
			return ""
		}
		if !validCoordinate(sub.Trimmed("latitude"), 90) ||
			!validCoordinate(sub.Trimmed("longitude"), 180) {
			return "Invalid geolocation format"
		}
		return ""
	}
}

func validCoordinate(v string, bound float64) bool {
	if v == "" {
		return true
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return false
	}
	return f >= -bound && f <= bound
}

// Violations runs every rule over one record and returns the ordered list of
// error strings, possibly empty.
func Violations(r Record, rules []Rule) []string {
	var errs []string
	for _, rule := range rules {
		if msg := rule(r); msg != "" {
			errs = append(errs, msg)
		}
	}
	return errs
}
