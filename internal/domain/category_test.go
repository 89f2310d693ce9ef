package domain

import (
	"testing"

	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryFromString_RoundTrip(t *testing.T) {
	for _, c := range Categories() {
		resolved, err := CategoryFromString(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, resolved)
	}
}

func TestCategoryFromString_CaseInsensitive(t *testing.T) {
	cases := map[string]Category{
		"shoes":       CategoryShoes,
		"SHOES":       CategoryShoes,
		"Clothes":     CategoryClothes,
		"UNDERWEAR":   CategoryUnderwear,
		"aCcEsSoRiEs": CategoryAccessories,
	}

	for input, want := range cases {
		got, err := CategoryFromString(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}
}

func TestCategoryFromString_Invalid(t *testing.T) {
	for _, input := range []string{"not-a-category", "", "shoe", "clothes "} {
		_, err := CategoryFromString(input)
		assert.ErrorIs(t, err, e.ErrInvalidCategory, input)
	}
}
