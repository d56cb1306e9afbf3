// Package testutil provides builders and fakes for recipe tests.
package testutil

import (
	"github.com/zjrosen/recipebook/internal/domain"
)

// Adder is satisfied by repository.Repository.
type Adder interface {
	Add(recipe *domain.Recipe) bool
}

// Builder accumulates recipe definitions and materializes them on Build.
type Builder struct {
	recipes []recipeData
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithRecipe adds a recipe with optional configuration.
func (b *Builder) WithRecipe(title string, opts ...RecipeOption) *Builder {
	r := defaultRecipe(title)
	for _, opt := range opts {
		opt(&r)
	}
	b.recipes = append(b.recipes, r)
	return b
}

// Build returns fresh recipes in definition order. Recipe ids are left at
// zero; ingredient ids are assigned by the recipe.
func (b *Builder) Build() []*domain.Recipe {
	out := make([]*domain.Recipe, 0, len(b.recipes))
	for _, data := range b.recipes {
		out = append(out, buildRecipe(data))
	}
	return out
}

// BuildInto adds every recipe to repo, which assigns the recipe ids.
func (b *Builder) BuildInto(repo Adder) []*domain.Recipe {
	recipes := b.Build()
	for _, r := range recipes {
		repo.Add(r)
	}
	return recipes
}

func buildRecipe(data recipeData) *domain.Recipe {
	r := domain.NewRecipe(data.title, data.cookingTime, data.difficulty, data.calories, data.creator)
	r.IsVegan = data.vegan
	for _, ing := range data.ingredients {
		i := domain.NewIngredient(ing.Name, ing.Quantity, ing.Weight)
		i.IsOrganic = ing.IsOrganic
		r.AddIngredient(i)
	}
	return r
}
