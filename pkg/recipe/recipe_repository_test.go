package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainmentArg(t *testing.T) {
	// The argument must be a single-element list with only the id set, so
	// `ingredients @> ?` matches any embedded measure for that ingredient.
	assert.JSONEq(t, `[{"id":"640c2dd963a319ea671e3724"}]`, containmentArg("640c2dd963a319ea671e3724"))
	assert.Equal(t, `[{"id":"a"}]`, containmentArg("a"))
}
