package schema

import "time"

// Accessors for maps produced by Validate. Values in a validated map carry
// canonical types (string, int64, float64, bool, time.Time, map, slice), so
// these helpers are plain type assertions with presence reporting. They are
// what domain packages use to bind validated payloads onto typed inputs.

// Has reports whether the key was present in the validated payload. A field
// set to an accepted null is present with a nil value.
func Has(m map[string]any, key string) bool {
	_, ok := m[key]
	return ok
}

func GetString(m map[string]any, key string) (string, bool) {
	v, ok := m[key].(string)
	return v, ok
}

// GetStringPtr returns nil when the key is absent or null.
func GetStringPtr(m map[string]any, key string) *string {
	if v, ok := m[key].(string); ok {
		return &v
	}
	return nil
}

func GetInt(m map[string]any, key string) (int64, bool) {
	v, ok := m[key].(int64)
	return v, ok
}

// GetIntPtr returns nil when the key is absent or null.
func GetIntPtr(m map[string]any, key string) *int64 {
	if v, ok := m[key].(int64); ok {
		return &v
	}
	return nil
}

// GetFloat reads a numeric value whether the rule kept it integral or not.
func GetFloat(m map[string]any, key string) (float64, bool) {
	switch v := m[key].(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func GetBool(m map[string]any, key string) (bool, bool) {
	v, ok := m[key].(bool)
	return v, ok
}

func GetTime(m map[string]any, key string) (time.Time, bool) {
	v, ok := m[key].(time.Time)
	return v, ok
}

// GetTimePtr returns nil when the key is absent or null.
func GetTimePtr(m map[string]any, key string) *time.Time {
	if v, ok := m[key].(time.Time); ok {
		return &v
	}
	return nil
}

func GetMap(m map[string]any, key string) (map[string]any, bool) {
	v, ok := m[key].(map[string]any)
	return v, ok
}

// GetObjectSlice reads an array-of-objects field.
func GetObjectSlice(m map[string]any, key string) ([]map[string]any, bool) {
	items, ok := m[key].([]any)
	if !ok {
		return nil, false
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		nested, ok := item.(map[string]any)
		if !ok {
			return nil, false
		}
		out = append(out, nested)
	}
	return out, true
}
