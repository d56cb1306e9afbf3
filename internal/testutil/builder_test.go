package testutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/recipebook/internal/domain"
)

type sliceAdder struct {
	recipes []*domain.Recipe
}

func (a *sliceAdder) Add(r *domain.Recipe) bool {
	r.ID = len(a.recipes)
	a.recipes = append(a.recipes, r)
	return true
}

func TestBuilder_WithRecipe_Defaults(t *testing.T) {
	recipes := NewBuilder().WithRecipe("Toast").Build()

	require.Len(t, recipes, 1)
	r := recipes[0]
	assert.Equal(t, "Toast", r.Title)
	assert.Equal(t, 30, r.CookingTime)
	assert.Equal(t, "Easy", r.DifficultyLevel)
	assert.Equal(t, 400, r.Calories)
	assert.False(t, r.IsVegan)
	assert.Zero(t, r.NumberOfIngredients())
}

func TestBuilder_WithRecipe_AllOptions(t *testing.T) {
	recipes := NewBuilder().
		WithRecipe("Curry",
			CookingTime(45), Difficulty("Hard"), Calories(720), Creator("Sam"), Vegan(),
			Ingredients(Ingredient("Rice", "1 cup", 180), OrganicIngredient("Spinach", "1 bag", 90)),
		).
		Build()

	r := recipes[0]
	assert.Equal(t, 45, r.CookingTime)
	assert.Equal(t, "Hard", r.DifficultyLevel)
	assert.Equal(t, 720, r.Calories)
	assert.Equal(t, "Sam", r.Creator)
	assert.True(t, r.IsVegan)
	require.Equal(t, 2, r.NumberOfIngredients())
	assert.Equal(t, 0, r.Ingredients[0].ID)
	assert.False(t, r.Ingredients[0].IsOrganic)
	assert.Equal(t, 1, r.Ingredients[1].ID)
	assert.True(t, r.Ingredients[1].IsOrganic)
}

func TestBuilder_BuildInto(t *testing.T) {
	adder := &sliceAdder{}
	recipes := NewBuilder().WithStandardRecipes().BuildInto(adder)

	require.Len(t, adder.recipes, 3)
	assert.Equal(t, []string{"Tacos", "Pasta", "Lasagna"},
		[]string{recipes[0].Title, recipes[1].Title, recipes[2].Title})
	assert.Equal(t, 2, adder.recipes[2].ID)
}

func TestBuilder_BuildReturnsFreshCopies(t *testing.T) {
	b := NewBuilder().WithStandardRecipes()
	first := b.Build()
	first[0].Title = "changed"

	second := b.Build()
	assert.Equal(t, "Tacos", second[0].Title)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Read()
	require.ErrorIs(t, err, domain.ErrStoreNotFound)

	recipes := NewBuilder().WithStandardRecipes().Build()
	require.NoError(t, s.Write(recipes))
	recipes[0].Title = "mutated after write"

	got, err := s.Read()
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Tacos", got[0].Title)
	assert.Equal(t, 2, got[0].NextIngredientID())
	assert.Equal(t, 1, s.Writes)
	assert.Equal(t, 2, s.Reads)

	s.ReadErr = errors.New("disk gone")
	_, err = s.Read()
	require.EqualError(t, err, "disk gone")
}
