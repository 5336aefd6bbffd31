package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArray_Scan(t *testing.T) {
	t.Run("nil source", func(t *testing.T) {
		var a StringArray
		require.NoError(t, a.Scan(nil))
		assert.NotNil(t, a)
		assert.Empty(t, a)
	})

	t.Run("json array", func(t *testing.T) {
		var a StringArray
		require.NoError(t, a.Scan([]byte(`["build_mvp", "hire_team"]`)))
		assert.Equal(t, StringArray{"build_mvp", "hire_team"}, a)
	})

	t.Run("empty json array", func(t *testing.T) {
		var a StringArray
		require.NoError(t, a.Scan([]byte(`[]`)))
		assert.Empty(t, a)
	})

	t.Run("non-bytes source", func(t *testing.T) {
		var a StringArray
		assert.Error(t, a.Scan("not bytes"))
	})

	t.Run("malformed json", func(t *testing.T) {
		var a StringArray
		assert.Error(t, a.Scan([]byte(`{`)))
	})
}

func TestStringArray_Value(t *testing.T) {
	t.Run("nil array", func(t *testing.T) {
		var a StringArray
		v, err := a.Value()
		require.NoError(t, err)
		assert.Equal(t, []byte("[]"), v)
	})

	t.Run("with elements", func(t *testing.T) {
		v, err := StringArray{"engineering", "design"}.Value()
		require.NoError(t, err)
		assert.JSONEq(t, `["engineering", "design"]`, string(v.([]byte)))
	})
}

func TestStringArray_RoundTrip(t *testing.T) {
	original := StringArray{"raise_funding", "launch_marketing"}

	v, err := original.Value()
	require.NoError(t, err)

	var scanned StringArray
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, original, scanned)
}
