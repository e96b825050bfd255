package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientRefsValue(t *testing.T) {
	refs := IngredientRefs{
		{ID: "640c2dd963a319ea671e3724", Measure: "2 tbsp"},
		{ID: "640c2dd963a319ea671e3725"},
	}

	value, err := refs.Value()
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"id":"640c2dd963a319ea671e3724","measure":"2 tbsp"},{"id":"640c2dd963a319ea671e3725"}]`,
		string(value.([]byte)))
}

func TestIngredientRefsValueNil(t *testing.T) {
	var refs IngredientRefs

	value, err := refs.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(value.([]byte)))
}

func TestIngredientRefsScan(t *testing.T) {
	payload := `[{"id":"abc","measure":"100g"},{"id":"def"}]`

	var fromBytes IngredientRefs
	require.NoError(t, fromBytes.Scan([]byte(payload)))
	require.Len(t, fromBytes, 2)
	assert.Equal(t, "abc", fromBytes[0].ID)
	assert.Equal(t, "100g", fromBytes[0].Measure)
	assert.Equal(t, "def", fromBytes[1].ID)

	// Some drivers hand jsonb over as a string.
	var fromString IngredientRefs
	require.NoError(t, fromString.Scan(payload))
	assert.Equal(t, fromBytes, fromString)

	var fromNil IngredientRefs
	require.NoError(t, fromNil.Scan(nil))
	assert.Empty(t, fromNil)

	var bad IngredientRefs
	assert.Error(t, bad.Scan(42))
}
