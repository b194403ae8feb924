package filter

import (
	"testing"

	"github.com/asaidimu/go-sieve/core/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryIsTotal(t *testing.T) {
	assert.Len(t, registry, len(Kinds()))
	for _, kind := range Kinds() {
		assert.True(t, kind.IsValid(), string(kind))
	}
	assert.False(t, Kind("boolean").IsValid())
}

func TestRuleKinds(t *testing.T) {
	assert.Equal(t, KindId, IdFilter{}.FilterKind())
	assert.Equal(t, KindString, StringFilter{}.FilterKind())
	assert.Equal(t, KindStringNullable, StringNullableFilter{}.FilterKind())
	assert.Equal(t, KindNumber, NumberFilter{}.FilterKind())
	assert.Equal(t, KindNumberNullable, NumberNullableFilter{}.FilterKind())
}

func TestLookupConstructor(t *testing.T) {
	t.Run("resolves matching kind", func(t *testing.T) {
		ctor, err := LookupConstructor[StringFilter, string](KindString)
		require.NoError(t, err)
		assert.True(t, ctor()(StringFilter{StartsWith: Ptr("A")})("Alice"))
	})

	t.Run("each kind resolves its own rule type", func(t *testing.T) {
		_, err := LookupConstructor[IdFilter, string](KindId)
		assert.NoError(t, err)
		_, err = LookupConstructor[StringNullableFilter, *string](KindStringNullable)
		assert.NoError(t, err)
		_, err = LookupConstructor[NumberFilter, float64](KindNumber)
		assert.NoError(t, err)
		_, err = LookupConstructor[NumberNullableFilter, *float64](KindNumberNullable)
		assert.NoError(t, err)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := LookupConstructor[StringFilter, string](Kind("date"))
		assert.ErrorIs(t, err, ErrUnknownKind)
	})

	t.Run("rule type of another kind", func(t *testing.T) {
		_, err := LookupConstructor[NumberFilter, float64](KindString)
		assert.ErrorIs(t, err, ErrKindMismatch)
	})

	t.Run("identifier and text do not share a constructor", func(t *testing.T) {
		_, err := LookupConstructor[StringFilter, string](KindId)
		assert.ErrorIs(t, err, ErrKindMismatch)
	})
}

func TestKindForField(t *testing.T) {
	required := true
	optional := false

	tests := []struct {
		name     string
		field    *schema.FieldDefinition
		primary  bool
		expected Kind
		ok       bool
	}{
		{"required string", &schema.FieldDefinition{Type: schema.FieldTypeString, Required: &required}, false, KindString, true},
		{"optional string", &schema.FieldDefinition{Type: schema.FieldTypeString, Required: &optional}, false, KindStringNullable, true},
		{"unset required string", &schema.FieldDefinition{Type: schema.FieldTypeString}, false, KindStringNullable, true},
		{"primary string", &schema.FieldDefinition{Type: schema.FieldTypeString}, true, KindId, true},
		{"required integer", &schema.FieldDefinition{Type: schema.FieldTypeInteger, Required: &required}, false, KindNumber, true},
		{"optional decimal", &schema.FieldDefinition{Type: schema.FieldTypeDecimal}, false, KindNumberNullable, true},
		{"primary integer", &schema.FieldDefinition{Type: schema.FieldTypeInteger, Required: &required}, true, KindNumber, true},
		{"boolean", &schema.FieldDefinition{Type: schema.FieldTypeBoolean}, false, "", false},
		{"nil field", nil, false, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := KindForField(tt.field, tt.primary)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, kind)
		})
	}
}
