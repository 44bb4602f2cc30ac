package imports

import (
	"fmt"
	"strings"
)

// Record is one caller-submitted row destined to become a persisted entity.
// It is the raw, untyped shape decoded from the request body (or a spreadsheet
// row) and is discarded after the pipeline run; it is never persisted as-is.
type Record map[string]any

// Str returns the value under key coerced to a string. Missing keys, nil
// values and non-primitive values yield an empty string.
func (r Record) Str(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case map[string]any, []any:
		return ""
	default:
		return fmt.Sprint(s)
	}
}

// Trimmed returns the value under key as a whitespace-trimmed string.
func (r Record) Trimmed(key string) string {
	return strings.TrimSpace(r.Str(key))
}

// Sub returns the nested object under key, or nil when the value is absent or
// not an object.
func (r Record) Sub(key string) Record {
	switch v := r[key].(type) {
	case Record:
		return v
	case map[string]any:
		return Record(v)
	default:
		return nil
	}
}

// Clone returns a shallow copy with nested objects copied one level deep,
// which is as deep as import records ever nest.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		if sub := r.Sub(k); sub != nil {
			nested := make(Record, len(sub))
			for sk, sv := range sub {
				nested[sk] = sv
			}
			out[k] = nested
			continue
		}
		out[k] = v
	}
	return out
}
