package tools

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// optionalString returns input[key] when it is a string, or "".
func optionalString(input map[string]any, key string) string {
	s, _ := input[key].(string)
	return s
}

func requiredString(input map[string]any, key string) (string, error) {
	s := strings.TrimSpace(optionalString(input, key))
	if s == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return s, nil
}

// optionalInt reads a whole number. JSON numbers arrive as float64; anything
// that is not a number is reported as absent.
func optionalInt(input map[string]any, key string) (int, bool) {
	switch v := input[key].(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			f, ferr := v.Float64()
			if ferr != nil {
				return 0, false
			}
			return int(f), true
		}
		return int(n), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// page reads skip and limit. Malformed values fall back to "no skip" and
// "no cap".
func page(input map[string]any) (skip, limit int) {
	skip, _ = optionalInt(input, "skip")
	limit, _ = optionalInt(input, "limit")
	return skip, limit
}

// stringSlice reads an array of strings. ok is false when the key is absent.
func stringSlice(input map[string]any, key string) (values []string, ok bool, err error) {
	raw, present := input[key]
	if !present || raw == nil {
		return nil, false, nil
	}
	switch v := raw.(type) {
	case []string:
		return append(make([]string, 0, len(v)), v...), true, nil
	case []any:
		out := make([]string, 0, len(v))
		for i, item := range v {
			s, isString := item.(string)
			if !isString {
				return nil, true, fmt.Errorf("%s[%d] must be a string, got %T", key, i, item)
			}
			out = append(out, s)
		}
		return out, true, nil
	}
	return nil, true, fmt.Errorf("%s must be an array of strings, got %T", key, raw)
}
