package filter

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// MarshalJSON encodes a null operand as JSON null and any other as its value.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if n.Null {
		return jsonNull, nil
	}
	return json.Marshal(n.Value)
}

// UnmarshalJSON decodes JSON null as a null operand and a scalar as its value.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*n = Nullable[T]{Null: true}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Nullable[T]{Value: v}
	return nil
}

// UnmarshalJSON decodes the rule, reading `"equals": null` as a test for null
// rather than as an absent attribute.
func (f *StringNullableFilter) UnmarshalJSON(data []byte) error {
	type plain StringNullableFilter
	var rule plain
	if err := json.Unmarshal(data, &rule); err != nil {
		return err
	}
	if err := nullEquals(data, &rule.Equals); err != nil {
		return err
	}
	*f = StringNullableFilter(rule)
	return nil
}

// UnmarshalJSON decodes the rule, reading `"equals": null` as a test for null
// rather than as an absent attribute.
func (f *NumberNullableFilter) UnmarshalJSON(data []byte) error {
	type plain NumberNullableFilter
	var rule plain
	if err := json.Unmarshal(data, &rule); err != nil {
		return err
	}
	if err := nullEquals(data, &rule.Equals); err != nil {
		return err
	}
	*f = NumberNullableFilter(rule)
	return nil
}

// nullEquals sets equals to a null operand when the object in data holds an
// explicit `"equals": null`. encoding/json leaves the pointer nil in that case.
func nullEquals[T comparable](data []byte, equals **Nullable[T]) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if raw, ok := fields["equals"]; ok && bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		*equals = Null[T]()
	}
	return nil
}
