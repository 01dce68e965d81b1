// Package rawjson provides lookup and coercion helpers for the loosely-typed
// JSON records returned by the upstream platform API. Field names vary
// between endpoints (snake_case, camelCase, Mongo-style `_id`) and value
// types are not guaranteed, so every helper takes a list of candidate keys
// and a fallback, and never panics on a missing or mistyped value.
package rawjson

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// NotProvided is the canonical placeholder for renderable text fields the
// upstream did not supply.
const NotProvided = "Not provided"

// Str returns the first candidate key whose value is a non-empty string.
func Str(m map[string]any, fallback string, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return fallback
}

// Stringify renders any JSON value as display text. Non-primitive values
// are JSON-encoded rather than passed through raw.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}

// Num returns the first candidate key coercible to a float64. JSON numbers
// decode as float64; numeric strings ("4.5") are accepted too because the
// upstream emits both.
func Num(m map[string]any, fallback float64, keys ...string) float64 {
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case float64:
			return t
		case int:
			return float64(t)
		case json.Number:
			if f, err := t.Float64(); err == nil {
				return f
			}
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
				return f
			}
		}
	}
	return fallback
}

// Int is Num truncated to an int.
func Int(m map[string]any, fallback int, keys ...string) int {
	f := Num(m, float64(fallback), keys...)
	return int(f)
}

// Bool returns the first candidate key coercible to a bool. Accepts real
// booleans and the string forms "true"/"false".
func Bool(m map[string]any, fallback bool, keys ...string) bool {
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case bool:
			return t
		case string:
			if b, err := strconv.ParseBool(strings.TrimSpace(t)); err == nil {
				return b
			}
		}
	}
	return fallback
}

// dateLayouts covers every timestamp shape observed from the upstream.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
}

// Date returns the first candidate key parseable as a timestamp, or the
// zero time when none parses.
func Date(m map[string]any, keys ...string) time.Time {
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}

// StrSlice returns the first candidate key holding an array, with every
// element stringified. Missing keys yield an empty (non-nil) slice so the
// caller can always range and render.
func StrSlice(m map[string]any, keys ...string) []string {
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			continue
		}
		arr, ok := v.([]any)
		if !ok {
			continue
		}
		out := make([]string, 0, len(arr))
		for _, e := range arr {
			out = append(out, Stringify(e))
		}
		return out
	}
	return []string{}
}

// Map returns the first candidate key holding a nested object.
func Map(m map[string]any, keys ...string) map[string]any {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if sub, ok := v.(map[string]any); ok {
				return sub
			}
		}
	}
	return nil
}

// AgeFromDOB computes whole years between dob and now. Returns 0 for a zero
// or future dob.
func AgeFromDOB(dob, now time.Time) int {
	if dob.IsZero() || dob.After(now) {
		return 0
	}
	years := now.Year() - dob.Year()
	if now.YearDay() < dob.YearDay() {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// Initials derives up to two uppercase initials from a display name.
// "Maria dos Santos" -> "MS", "Ana" -> "A", "" -> "?".
func Initials(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "?"
	}
	first := []rune(fields[0])
	out := string(unicode.ToUpper(first[0]))
	if len(fields) > 1 {
		last := []rune(fields[len(fields)-1])
		out += string(unicode.ToUpper(last[0]))
	}
	return out
}
