package imports

import "strings"

// Normalizer converts a validated Record into its canonical storage shape.
// Normalizers must be idempotent: normalizing an already-normalized record is
// a no-op.
type Normalizer func(r Record) Record

// TrimmedCopy returns a copy of the record with every top-level string value
// trimmed. Nested objects are copied untouched.
func TrimmedCopy(r Record) Record {
	out := r.Clone()
	for k, v := range out {
		if s, ok := v.(string); ok {
			out[k] = strings.TrimSpace(s)
		}
	}
	return out
}

// NormalizeDateFields canonicalizes the named date fields to YYYY-MM-DD
// in place.
func NormalizeDateFields(r Record, fields ...string) Record {
	for _, f := range fields {
		if v := r.Trimmed(f); v != "" {
			r[f] = NormalizeDate(v)
		}
	}
	return r
}

// LowerFields lower-cases the named string fields in place.
func LowerFields(r Record, fields ...string) Record {
	for _, f := range fields {
		r[f] = strings.ToLower(r.Trimmed(f))
	}
	return r
}

// DefaultFields sets the named fields to def when absent or blank, so
// downstream storage always receives a consistent shape.
func DefaultFields(r Record, def string, fields ...string) Record {
	for _, f := range fields {
		if r.Trimmed(f) == "" {
			r[f] = def
		}
	}
	return r
}
