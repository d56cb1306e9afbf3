package testutil

import (
	"github.com/zjrosen/recipebook/internal/domain"
)

// MemoryStore is an in-memory domain.Store. A Read before any Write returns
// a StoreNotFoundError, like a missing file would.
type MemoryStore struct {
	recipes []*domain.Recipe
	written bool

	// WriteErr and ReadErr, when set, are returned instead of touching state.
	WriteErr error
	ReadErr  error

	Writes int
	Reads  int
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Write stores a deep copy of recipes.
func (s *MemoryStore) Write(recipes []*domain.Recipe) error {
	s.Writes++
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.recipes = CloneRecipes(recipes)
	s.written = true
	return nil
}

// Read returns a deep copy of the last written collection.
func (s *MemoryStore) Read() ([]*domain.Recipe, error) {
	s.Reads++
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	if !s.written {
		return nil, &domain.StoreNotFoundError{Path: "memory"}
	}
	return CloneRecipes(s.recipes), nil
}

// CloneRecipes deep-copies recipes, keeping ids and ingredient counters.
func CloneRecipes(recipes []*domain.Recipe) []*domain.Recipe {
	if recipes == nil {
		return nil
	}
	out := make([]*domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		c := *r
		ingredients := make([]*domain.Ingredient, 0, len(r.Ingredients))
		for _, ing := range r.Ingredients {
			i := *ing
			ingredients = append(ingredients, &i)
		}
		c.RestoreIngredients(ingredients, r.NextIngredientID())
		out = append(out, &c)
	}
	return out
}
