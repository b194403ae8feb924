package filter

import (
	"fmt"
	"reflect"

	"github.com/asaidimu/go-sieve/core/schema"
	"github.com/asaidimu/go-sieve/utils"
	"go.uber.org/zap"
)

// DocumentTable derives a field table for documents described by def. Fields
// whose type has no filter kind (booleans, arrays, objects) are left out, so
// rules naming them are ignored.
//
// Values are read leniently: a missing or nil value is null for nullable kinds
// and the zero value otherwise, and numbers of any Go numeric type (or numeric
// strings) are accepted.
func DocumentTable(def *schema.SchemaDefinition) (FieldTable[schema.Document], error) {
	if def == nil {
		return nil, fmt.Errorf("schema definition cannot be nil")
	}

	primary := def.PrimaryFields()
	table := make(FieldTable[schema.Document], len(def.Fields))
	for _, name := range def.FieldNames() {
		field := def.FindField(name)
		_, isPrimary := primary[name]
		kind, ok := KindForField(field, isPrimary)
		if !ok {
			continue
		}
		table[name] = documentField(kind, name)
	}
	return table, nil
}

// DefineDocumentFilter returns an entity filter definition over documents
// described by def.
func DefineDocumentFilter(def *schema.SchemaDefinition, logger *zap.Logger) (*EntityFilterDefinition[schema.Document], error) {
	table, err := DocumentTable(def)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("Derived document filter table",
		zap.String("schema", def.Name),
		zap.Int("fields", len(table)))
	return NewEntityFilterDefinition(table, logger), nil
}

// documentField declares the field name of a document with the accessor for kind.
func documentField(kind Kind, name string) FieldFilter[schema.Document] {
	switch kind {
	case KindId:
		return IdField(func(doc schema.Document) string { return documentString(doc, name) })
	case KindString:
		return StringField(func(doc schema.Document) string { return documentString(doc, name) })
	case KindStringNullable:
		return StringNullableField(func(doc schema.Document) *string { return documentStringPtr(doc, name) })
	case KindNumber:
		return NumberField(func(doc schema.Document) float64 {
			if f := documentNumberPtr(doc, name); f != nil {
				return *f
			}
			return 0
		})
	case KindNumberNullable:
		return NumberNullableField(func(doc schema.Document) *float64 { return documentNumberPtr(doc, name) })
	}
	panic(fmt.Sprintf("unhandled filter kind %q", kind))
}

func documentString(doc schema.Document, name string) string {
	if s := documentStringPtr(doc, name); s != nil {
		return *s
	}
	return ""
}

// documentStringPtr reads a text value, returning nil for null. Stringers such as
// uuid.UUID are read through String; nil pointers to them are null.
func documentStringPtr(doc schema.Document, name string) *string {
	switch v := doc[name].(type) {
	case string:
		return &v
	case *string:
		return v
	case fmt.Stringer:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr && rv.IsNil() {
			return nil
		}
		s := v.String()
		return &s
	default:
		return nil
	}
}

// documentNumberPtr reads a numeric value, returning nil for null or for values
// that are not numbers.
func documentNumberPtr(doc schema.Document, name string) *float64 {
	v, ok := doc[name]
	if !ok || v == nil {
		return nil
	}
	if p, ok := v.(*float64); ok {
		return p
	}
	f, ok := utils.ToFloat64(v)
	if !ok {
		return nil
	}
	return &f
}
