package filter

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// FieldFilter binds rules of one kind to one field of the record type E.
type FieldFilter[E any] interface {
	// Kind is the filter kind the field was declared with.
	Kind() Kind
	// Bind builds a record predicate that applies rule to the field.
	Bind(rule Rule) (Predicate[E], error)
}

// FieldTable maps field names of E to the filters evaluating them.
type FieldTable[E any] map[string]FieldFilter[E]

// Rules is an entity filter rule set: field name to rule. Fields without a rule
// are unconstrained.
type Rules map[string]Rule

// field is the FieldFilter for a field of kind holding values of type V. factory
// is the evaluator resolved from the registry and get reads the value from a record.
type field[E any, R Rule, V any] struct {
	kind    Kind
	factory Factory[R, V]
	get     func(E) V
}

// Kind returns the kind the field was declared with.
func (f *field[E, R, V]) Kind() Kind { return f.kind }

// Bind accepts the field's rule type either as a value or as a pointer. A nil
// pointer binds to a predicate that passes every record. Rules of any other type
// belong to another kind and are rejected with ErrKindMismatch.
func (f *field[E, R, V]) Bind(rule Rule) (Predicate[E], error) {
	var typed R
	switch r := any(rule).(type) {
	case R:
		typed = r
	case *R:
		if r == nil {
			return func(E) bool { return true }, nil
		}
		typed = *r
	default:
		return nil, fmt.Errorf("%w: field of kind %q got %T rule", ErrKindMismatch, f.kind, rule)
	}

	match := f.factory(typed)
	return func(record E) bool {
		return match(f.get(record))
	}, nil
}

// NewField declares a field of the given kind read by get. The evaluator is
// resolved from the kind registry, and the call fails when R and V do not
// belong to kind.
func NewField[E any, R Rule, V any](kind Kind, get func(E) V) (FieldFilter[E], error) {
	ctor, err := LookupConstructor[R, V](kind)
	if err != nil {
		return nil, err
	}
	if get == nil {
		return nil, fmt.Errorf("field of kind %q has no accessor", kind)
	}
	return &field[E, R, V]{kind: kind, factory: ctor(), get: get}, nil
}

// mustField is NewField for the typed declarations below, whose kind and types
// always pair; a failure there is a programming error.
func mustField[E any, R Rule, V any](kind Kind, get func(E) V) FieldFilter[E] {
	f, err := NewField[E, R, V](kind, get)
	if err != nil {
		panic(err)
	}
	return f
}

// IdField declares an identifier field.
func IdField[E any](get func(E) string) FieldFilter[E] {
	return mustField[E, IdFilter](KindId, get)
}

// StringField declares a text field.
func StringField[E any](get func(E) string) FieldFilter[E] {
	return mustField[E, StringFilter](KindString, get)
}

// StringNullableField declares a nullable text field; get returns nil for null.
func StringNullableField[E any](get func(E) *string) FieldFilter[E] {
	return mustField[E, StringNullableFilter](KindStringNullable, get)
}

// NumberField declares a numeric field.
func NumberField[E any](get func(E) float64) FieldFilter[E] {
	return mustField[E, NumberFilter](KindNumber, get)
}

// NumberNullableField declares a nullable numeric field; get returns nil for null.
func NumberNullableField[E any](get func(E) *float64) FieldFilter[E] {
	return mustField[E, NumberNullableFilter](KindNumberNullable, get)
}

// EntityFilterFactory builds a record predicate from a rule set.
type EntityFilterFactory[E any] func(rules Rules) (Predicate[E], error)

// EntityFilterDefinition holds the field table of one record type and builds
// record predicates from rule sets. It is immutable and safe for concurrent use.
type EntityFilterDefinition[E any] struct {
	fields FieldTable[E]
	logger *zap.Logger
}

// NewEntityFilterDefinition creates a definition over a copy of fields.
func NewEntityFilterDefinition[E any](fields FieldTable[E], logger *zap.Logger) *EntityFilterDefinition[E] {
	if logger == nil {
		logger = zap.NewNop()
	}
	table := make(FieldTable[E], len(fields))
	for name, f := range fields {
		if f != nil {
			table[name] = f
		}
	}
	return &EntityFilterDefinition[E]{fields: table, logger: logger}
}

// DefineEntityFilter returns the rule-set factory for the given field table.
func DefineEntityFilter[E any](fields FieldTable[E]) EntityFilterFactory[E] {
	return NewEntityFilterDefinition(fields, nil).Filter
}

// Fields returns the names of the declared fields with their kinds.
func (d *EntityFilterDefinition[E]) Fields() map[string]Kind {
	kinds := make(map[string]Kind, len(d.fields))
	for name, f := range d.fields {
		kinds[name] = f.Kind()
	}
	return kinds
}

// Filter builds the predicate for rules. A record passes when every bound field
// passes; an empty rule set passes every record. Rules naming an undeclared field,
// and nil rules, leave the field unconstrained. A rule of the wrong kind for its
// field is an error.
func (d *EntityFilterDefinition[E]) Filter(rules Rules) (Predicate[E], error) {
	bound := make([]Predicate[E], 0, len(rules))
	for name, rule := range rules {
		f, ok := d.fields[name]
		if !ok {
			d.logger.Debug("Ignoring rule for undeclared field", zap.String("field", name))
			continue
		}
		if isNilRule(rule) {
			d.logger.Debug("Ignoring empty rule", zap.String("field", name))
			continue
		}

		p, err := f.Bind(rule)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		bound = append(bound, p)
	}
	d.logger.Debug("Built entity filter", zap.Int("rules", len(rules)), zap.Int("bound", len(bound)))

	return func(record E) bool {
		for _, p := range bound {
			if !p(record) {
				return false
			}
		}
		return true
	}, nil
}

// isNilRule reports whether rule is absent: an untyped nil or a typed nil pointer.
// Absent rules leave their field unconstrained.
func isNilRule(rule Rule) bool {
	if rule == nil {
		return true
	}
	v := reflect.ValueOf(rule)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
