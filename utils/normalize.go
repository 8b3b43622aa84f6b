package utils

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// StringList accepts the shapes an LLM caller sends for a list
// argument: a real JSON array, a JSON-array encoded string
// ("[\"A\",\"B\"]"), or a comma-separated string ("A,B"). All decode
// to the same ordered []string.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (s *StringList) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = NormalizeStringList(raw)
	return nil
}

// NormalizeStringList converts a loosely-typed list value into an
// ordered []string, or nil for a nil input. Precedence for strings:
// bracket-delimited input is tried as a JSON array first, then falls
// back to comma-splitting with whitespace trimming and empty-token
// removal. Order and duplicates are preserved.
func NormalizeStringList(val interface{}) []string {
	switch v := val.(type) {
	case nil:
		return nil
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, x := range v {
			out = append(out, stringify(x))
		}
		return out
	case string:
		return splitListString(v)
	default:
		return []string{stringify(v)}
	}
}

func splitListString(s string) []string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		var parsed []interface{}
		if err := json.Unmarshal([]byte(s), &parsed); err == nil {
			out := make([]string, 0, len(parsed))
			for _, x := range parsed {
				out = append(out, stringify(x))
			}
			return out
		}
	}
	var out []string
	for _, tok := range strings.Split(s, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

func stringify(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	// json numbers decode as float64; keep integers clean
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprint(v)
}

// ParseISODate parses a YYYY-MM-DD calendar date.
func ParseISODate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
