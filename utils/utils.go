package utils

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// StructToMap converts a struct, or a pointer to one, into a map keyed by its
// JSON field names. The conversion goes through encoding/json, so `json` tags and
// `omitempty` are honoured and numbers come back as float64. Nested structs
// become map[string]any.
//
// Example:
//
//	type User struct {
//		ID  string `json:"id"`
//		Age int    `json:"age"`
//	}
//	m, err := StructToMap(User{ID: "u-1", Age: 42})
//	// m == map[string]any{"id": "u-1", "age": float64(42)}
func StructToMap[T any](record T) (map[string]any, error) {
	val := reflect.ValueOf(record)
	if !val.IsValid() {
		return nil, fmt.Errorf("input record cannot be nil")
	}

	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil, fmt.Errorf("input record cannot be a nil pointer to a struct")
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("input record must be a struct or a pointer to a struct, got %s", val.Kind())
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("StructToMap: failed to marshal input record to JSON: %w", err)
	}

	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("StructToMap: failed to unmarshal JSON to map: %w", err)
	}
	return result, nil
}

// ToFloat64 converts a value of any built-in numeric type, or a numeric string,
// to a float64. The boolean reports whether the conversion succeeded.
func ToFloat64(v any) (float64, bool) {
	switch val := v.(type) {
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	case float32:
		return float64(val), true
	case float64:
		return val, true
	case json.Number:
		f, err := val.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(val, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
