package filter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringNullableFilter_JSON(t *testing.T) {
	t.Run("equals null matches only null", func(t *testing.T) {
		var rule StringNullableFilter
		require.NoError(t, json.Unmarshal([]byte(`{"equals":null}`), &rule))
		require.NotNil(t, rule.Equals)
		assert.True(t, rule.Equals.Null)

		match := NewStringNullableFilter()(rule)
		assert.True(t, match(nil))
		assert.False(t, match(Ptr("a")))
	})

	t.Run("equals value", func(t *testing.T) {
		var rule StringNullableFilter
		require.NoError(t, json.Unmarshal([]byte(`{"equals":"a","contains":"z"}`), &rule))
		require.NotNil(t, rule.Equals)
		assert.Equal(t, Nullable[string]{Value: "a"}, *rule.Equals)
		assert.Equal(t, "z", *rule.Contains)
		assert.False(t, NewStringNullableFilter()(rule)(Ptr("za")))
	})

	t.Run("absent equals", func(t *testing.T) {
		var rule StringNullableFilter
		require.NoError(t, json.Unmarshal([]byte(`{"startsWith":"Al"}`), &rule))
		assert.Nil(t, rule.Equals)
		assert.True(t, NewStringNullableFilter()(rule)(Ptr("Alice")))
	})

	t.Run("nested not", func(t *testing.T) {
		var rule StringNullableFilter
		require.NoError(t, json.Unmarshal([]byte(`{"not":{"equals":null}}`), &rule))
		require.NotNil(t, rule.Not)
		require.NotNil(t, rule.Not.Equals)
		assert.True(t, rule.Not.Equals.Null)

		match := NewStringNullableFilter()(rule)
		assert.False(t, match(nil))
		assert.True(t, match(Ptr("")))
	})

	t.Run("marshal", func(t *testing.T) {
		data, err := json.Marshal(StringNullableFilter{Equals: Null[string]()})
		require.NoError(t, err)
		assert.JSONEq(t, `{"equals":null}`, string(data))

		data, err = json.Marshal(StringNullableFilter{Not: &StringNullableFilter{Equals: Value("a")}})
		require.NoError(t, err)
		assert.JSONEq(t, `{"not":{"equals":"a"}}`, string(data))
	})

	t.Run("invalid equals", func(t *testing.T) {
		var rule StringNullableFilter
		assert.Error(t, json.Unmarshal([]byte(`{"equals":5}`), &rule))
	})
}

func TestNumberNullableFilter_JSON(t *testing.T) {
	t.Run("equals null", func(t *testing.T) {
		var rule NumberNullableFilter
		require.NoError(t, json.Unmarshal([]byte(`{"equals":null,"gt":1}`), &rule))
		match := NewNumberNullableFilter()(rule)
		assert.True(t, match(nil))
		assert.False(t, match(Ptr(5.0)))
	})

	t.Run("equals value wins over gt", func(t *testing.T) {
		var rule NumberNullableFilter
		require.NoError(t, json.Unmarshal([]byte(`{"equals":5,"gt":1}`), &rule))
		match := NewNumberNullableFilter()(rule)
		assert.True(t, match(Ptr(5.0)))
		assert.False(t, match(Ptr(6.0)))
	})

	t.Run("round trip", func(t *testing.T) {
		in := NumberNullableFilter{Not: &NumberNullableFilter{Equals: Null[float64]()}}
		data, err := json.Marshal(in)
		require.NoError(t, err)
		assert.JSONEq(t, `{"not":{"equals":null}}`, string(data))

		var out NumberNullableFilter
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	})
}
