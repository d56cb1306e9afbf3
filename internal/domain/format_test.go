package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRecipe_Fields(t *testing.T) {
	r := newTacos()
	r.ID = 3
	r.IsVegan = true

	out := FormatRecipe(r)
	assert.Contains(t, out, "Recipe Id: 3")
	assert.Contains(t, out, "Recipe Title: Tacos")
	assert.Contains(t, out, "Cooking Time: 30 minutes")
	assert.Contains(t, out, "Difficulty Level: Easy")
	assert.Contains(t, out, "Calories: 250")
	assert.Contains(t, out, "Vegan Status: true")
	assert.Contains(t, out, "Recipe Creator: Niall")
	assert.Contains(t, out, "\t0: 200g of Beef (200 grams) Organic Status: false")
}

func TestFormatRecipes_Deterministic(t *testing.T) {
	a := newTacos()
	b := NewRecipe("Pasta", 20, "Medium", 500, "Sharon")
	b.ID = 1

	first := FormatRecipes([]*Recipe{a, b})
	second := FormatRecipes([]*Recipe{a, b})
	assert.Equal(t, first, second)
	assert.Equal(t, 1, strings.Count(first, "\n\n"), "blocks are separated by one blank line")
	assert.Less(t, strings.Index(first, "Tacos"), strings.Index(first, "Pasta"))
}

func TestFormatRecipes_Empty(t *testing.T) {
	assert.Equal(t, "", FormatRecipes(nil))
	assert.Equal(t, "", FormatIngredients(nil))
}

func TestContainsFold(t *testing.T) {
	tests := []struct {
		s, sub string
		want   bool
	}{
		{"Cheesy Tacos", "tacos", true},
		{"Cheesy Tacos", "CHEESY", true},
		{"Crème Brûlée", "CRÈME", true},
		{"Lasagna", "pasta", false},
		{"anything", "", true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.s, tt.sub), func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsFold(tt.s, tt.sub))
		})
	}
}

func TestStoreErrors(t *testing.T) {
	var err error = &StoreNotFoundError{Path: "recipes.yaml"}
	assert.True(t, errors.Is(err, ErrStoreNotFound))
	assert.Contains(t, err.Error(), "recipes.yaml")

	cause := errors.New("bad token")
	err = fmt.Errorf("loading: %w", &DecodeError{Format: "json", Path: "r.json", Err: cause})
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "json", decodeErr.Format)
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrStoreNotFound))

	err = &EncodeError{Format: "xml", Path: "r.xml", Err: cause}
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "xml")
}
