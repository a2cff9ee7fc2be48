// Package jsonsalvage parses possibly-fenced or chatty JSON text, matching
// original_source/api/utils/json.py's safe_json_parse: a strict parse first,
// then on failure a regex-located maximal {...} span retried through the
// same strict parse, and nil on any further failure — never an error.
package jsonsalvage

import (
	"encoding/json"
	"regexp"
)

var braceSpan = regexp.MustCompile(`(?s)\{.*\}`)

// Parse attempts a strict JSON-object parse of text; on failure it retries
// against the first maximal {...} substring. Returns (nil, false) if both
// attempts fail.
func Parse(text string) (map[string]any, bool) {
	if obj, ok := strictParse(text); ok {
		return obj, true
	}

	match := braceSpan.FindString(text)
	if match == "" {
		return nil, false
	}
	return strictParse(match)
}

func strictParse(text string) (map[string]any, bool) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil, false
	}
	return obj, true
}
