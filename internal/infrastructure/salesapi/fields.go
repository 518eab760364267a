package salesapi

import (
	"strconv"
	"time"
)

// Raw field resolution for the loosely-typed sales API payloads.
//
// Upstream mixes camelCase, snake_case and domain synonyms, and nests
// sub-objects of unknown shape. Every helper here is total: it tries an
// ordered list of candidate keys and falls back to the field's zero value,
// never failing. The alias lists live with the normalizers so each field's
// priority order is written down exactly once.

// stringOf coerces an arbitrary decoded JSON value to a string.
// Objects resolve through the priority list name, businessName, title,
// label, _id. Anything unrecognized yields "".
func stringOf(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case map[string]any:
		for _, key := range []string{"name", "businessName", "title", "label", "_id"} {
			if s, ok := val[key].(string); ok && s != "" {
				return s
			}
		}
		return ""
	default:
		return ""
	}
}

// firstString resolves the first present, non-empty candidate key as a string.
func firstString(rec map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := rec[key]; ok {
			if s := stringOf(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// firstNumber resolves the first candidate key holding a usable number.
// Numeric strings count; null, absent and non-numeric values do not.
func firstNumber(rec map[string]any, keys ...string) float64 {
	for _, key := range keys {
		switch v := rec[key].(type) {
		case float64:
			if v != 0 {
				return v
			}
		case string:
			if f, err := strconv.ParseFloat(v, 64); err == nil && f != 0 {
				return f
			}
		}
	}
	return 0
}

// firstTime resolves the first candidate key that parses as a timestamp,
// defaulting to now. Callers resolve createdAt and updatedAt independently,
// so the two defaults are not required to match.
func firstTime(rec map[string]any, keys ...string) time.Time {
	for _, key := range keys {
		s, ok := rec[key].(string)
		if !ok || s == "" {
			continue
		}
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
	}
	return time.Now().UTC()
}

// boolOf reads a boolean field, treating anything but true as false.
func boolOf(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

// subObject returns the candidate key's value when it is a JSON object.
func subObject(rec map[string]any, key string) (map[string]any, bool) {
	obj, ok := rec[key].(map[string]any)
	return obj, ok
}
