// Package filter builds in-memory predicates from declarative filter rules.
// Each field kind (identifier, text, nullable text, number, nullable number) has
// its own rule shape and evaluator, and an entity filter combines per-field
// evaluators into a single predicate over whole records.
//
// Within one rule only the first present attribute is evaluated, in a fixed
// precedence order. Attributes are NOT combined with AND: a StringFilter with
// both Equals and Contains set behaves exactly like one with only Equals set.
// Use Not to negate a nested rule of the same kind.
package filter

// Rule is implemented by every filter rule shape.
type Rule interface {
	FilterKind() Kind
}

// Nullable is the operand of an equality test on a nullable field. A Nullable
// created with Null matches only null values.
type Nullable[T comparable] struct {
	Value T
	Null  bool
}

// Null returns an operand that matches only null values.
func Null[T comparable]() *Nullable[T] {
	return &Nullable[T]{Null: true}
}

// Value returns an operand that matches values equal to v.
func Value[T comparable](v T) *Nullable[T] {
	return &Nullable[T]{Value: v}
}

// matches reports whether value (nil meaning null) equals the operand.
func (n *Nullable[T]) matches(value *T) bool {
	if n.Null || value == nil {
		return n.Null && value == nil
	}
	return *value == n.Value
}

// Ptr returns a pointer to v. It is a convenience for rule literals.
func Ptr[T any](v T) *T {
	return &v
}

// IdFilter matches identifier fields.
type IdFilter struct {
	Equals *string `json:"equals,omitempty"`

	Not *IdFilter `json:"not,omitempty"`
}

// StringFilter matches text fields. Precedence: Equals, StartsWith, EndsWith, Contains.
type StringFilter struct {
	Equals     *string `json:"equals,omitempty"`
	Contains   *string `json:"contains,omitempty"`
	StartsWith *string `json:"startsWith,omitempty"`
	EndsWith   *string `json:"endsWith,omitempty"`

	Not *StringFilter `json:"not,omitempty"`
}

// StringNullableFilter matches nullable text fields. Only Equals can match a
// null value; every other attribute rejects null.
type StringNullableFilter struct {
	Equals     *Nullable[string] `json:"equals,omitempty"`
	Contains   *string           `json:"contains,omitempty"`
	StartsWith *string           `json:"startsWith,omitempty"`
	EndsWith   *string           `json:"endsWith,omitempty"`

	Not *StringNullableFilter `json:"not,omitempty"`
}

// NumberFilter matches numeric fields. Precedence: Equals, Gt, Gte, Lt, Lte.
type NumberFilter struct {
	Equals *float64 `json:"equals,omitempty"`
	Gt     *float64 `json:"gt,omitempty"`
	Gte    *float64 `json:"gte,omitempty"`
	Lt     *float64 `json:"lt,omitempty"`
	Lte    *float64 `json:"lte,omitempty"`

	Not *NumberFilter `json:"not,omitempty"`
}

// NumberNullableFilter matches nullable numeric fields. Range attributes never
// match null.
type NumberNullableFilter struct {
	Equals *Nullable[float64] `json:"equals,omitempty"`
	Gt     *float64           `json:"gt,omitempty"`
	Gte    *float64           `json:"gte,omitempty"`
	Lt     *float64           `json:"lt,omitempty"`
	Lte    *float64           `json:"lte,omitempty"`

	Not *NumberNullableFilter `json:"not,omitempty"`
}

func (IdFilter) FilterKind() Kind             { return KindId }
func (StringFilter) FilterKind() Kind         { return KindString }
func (StringNullableFilter) FilterKind() Kind { return KindStringNullable }
func (NumberFilter) FilterKind() Kind         { return KindNumber }
func (NumberNullableFilter) FilterKind() Kind { return KindNumberNullable }
