package presentation

import (
	"github.com/zjrosen/recipebook/internal/domain"
)

// RecipeDTO represents a recipe for presentation
type RecipeDTO struct {
	ID              int             `json:"id"`
	Title           string          `json:"title"`
	CookingTime     int             `json:"cooking_time"`
	DifficultyLevel string          `json:"difficulty_level"`
	Calories        int             `json:"calories"`
	Vegan           bool            `json:"vegan"`
	Creator         string          `json:"creator"`
	Ingredients     []IngredientDTO `json:"ingredients"` // always present, may be empty
}

// IngredientDTO represents an ingredient line for presentation
type IngredientDTO struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Weight   int    `json:"weight_grams"`
	Organic  bool   `json:"organic"`
}

// FromDomainRecipe converts a domain recipe to a DTO
func FromDomainRecipe(r *domain.Recipe) RecipeDTO {
	ingredients := make([]IngredientDTO, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ingredients = append(ingredients, IngredientDTO{
			ID:       ing.ID,
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Weight:   ing.Weight,
			Organic:  ing.IsOrganic,
		})
	}

	return RecipeDTO{
		ID:              r.ID,
		Title:           r.Title,
		CookingTime:     r.CookingTime,
		DifficultyLevel: r.DifficultyLevel,
		Calories:        r.Calories,
		Vegan:           r.IsVegan,
		Creator:         r.Creator,
		Ingredients:     ingredients,
	}
}

// FromDomainRecipes converts recipes to DTOs. The result is never nil.
func FromDomainRecipes(recipes []*domain.Recipe) []RecipeDTO {
	out := make([]RecipeDTO, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, FromDomainRecipe(r))
	}
	return out
}
