package filter

import (
	"errors"
	"fmt"

	"github.com/asaidimu/go-sieve/core/schema"
)

// Kind names one of the closed set of filter kinds.
type Kind string

const (
	KindId             Kind = "id"
	KindString         Kind = "string"
	KindStringNullable Kind = "string_nullable"
	KindNumber         Kind = "number"
	KindNumberNullable Kind = "number_nullable"
)

var (
	// ErrUnknownKind is returned for a kind outside the registry.
	ErrUnknownKind = errors.New("unknown filter kind")
	// ErrKindMismatch is returned when a rule, value type or field disagree on the kind.
	ErrKindMismatch = errors.New("filter kind mismatch")
)

// registry maps every kind to the constructor of its evaluator.
var registry = map[Kind]any{
	KindId:             Constructor[IdFilter, string](NewIdFilter),
	KindString:         Constructor[StringFilter, string](NewStringFilter),
	KindStringNullable: Constructor[StringNullableFilter, *string](NewStringNullableFilter),
	KindNumber:         Constructor[NumberFilter, float64](NewNumberFilter),
	KindNumberNullable: Constructor[NumberNullableFilter, *float64](NewNumberNullableFilter),
}

// Kinds returns every registered kind.
func Kinds() []Kind {
	return []Kind{KindId, KindString, KindStringNullable, KindNumber, KindNumberNullable}
}

// IsValid reports whether k is a registered kind.
func (k Kind) IsValid() bool {
	_, ok := registry[k]
	return ok
}

// LookupConstructor returns the evaluator constructor registered for kind. It
// fails when the rule type R or value type V do not belong to that kind.
func LookupConstructor[R Rule, V any](kind Kind) (Constructor[R, V], error) {
	entry, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	ctor, ok := entry.(Constructor[R, V])
	if !ok {
		var rule R
		var value V
		return nil, fmt.Errorf("%w: kind %q cannot evaluate %T rules over %T values", ErrKindMismatch, kind, rule, value)
	}
	return ctor, nil
}

// KindForField picks the filter kind for a schema field. Primary key text
// fields are identifiers and optional fields use the nullable variants. The
// second result is false for field types no kind can evaluate.
func KindForField(field *schema.FieldDefinition, primary bool) (Kind, bool) {
	if field == nil {
		return "", false
	}
	nullable := !field.IsRequired()

	switch field.Type {
	case schema.FieldTypeString:
		if primary {
			return KindId, true
		}
		if nullable {
			return KindStringNullable, true
		}
		return KindString, true
	case schema.FieldTypeNumber, schema.FieldTypeInteger, schema.FieldTypeDecimal:
		if nullable {
			return KindNumberNullable, true
		}
		return KindNumber, true
	default:
		return "", false
	}
}
