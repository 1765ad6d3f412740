package domain

import (
	"encoding/json"
	"fmt"
)

// IsSuccess reports whether a decoded response means the call succeeded.
// Unisender operations use two shapes: some echo a "result" value, others
// return an explicit boolean "success" flag. Either is sufficient. A null
// "result" counts as absent.
func IsSuccess(m Mapping) bool {
	if v, ok := m["result"]; ok && v != nil {
		return true
	}
	flag, ok := m["success"].(bool)
	return ok && flag
}

// GetErrorMessage returns the "error" value, else the "message" value. The
// second return is false when neither key holds a value.
func GetErrorMessage(m Mapping) (string, bool) {
	for _, key := range []string{"error", "message"} {
		if v, ok := m[key]; ok && v != nil {
			return stringify(v), true
		}
	}
	return "", false
}

// ErrorCode returns the machine readable "code" Unisender attaches to
// errors, e.g. "invalid_api_key".
func ErrorCode(m Mapping) (string, bool) {
	v, ok := m["code"]
	if !ok || v == nil {
		return "", false
	}
	return stringify(v), true
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool, float64, int, int64:
		return fmt.Sprint(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}
