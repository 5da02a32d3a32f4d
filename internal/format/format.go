// Package format holds the result-shaping helpers shared by list and
// passthrough tools.
package format

import (
	"encoding/json"
	"strconv"
)

// MaxRows caps how many records a list tool surfaces in one response.
const MaxRows = 50

// Amount renders a monetary string with two decimal places when it parses
// as a number, and verbatim otherwise.
func Amount(s string) string {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// Clip truncates rows to MaxRows and reports whether truncation happened.
func Clip[T any](rows []T) ([]T, bool) {
	if len(rows) <= MaxRows {
		return rows, false
	}
	return rows[:MaxRows], true
}

// PrettyJSON renders v as indented JSON for the passthrough-style tools.
func PrettyJSON(v any) (string, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// PrettyRaw re-indents raw JSON bytes, returning them unchanged when they
// do not parse.
func PrettyRaw(raw []byte) string {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return string(raw)
	}
	return string(out)
}
