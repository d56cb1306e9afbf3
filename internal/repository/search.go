package repository

import (
	"fmt"
	"strings"

	"github.com/zjrosen/recipebook/internal/domain"
)

// The search family returns an empty string when nothing matches, unlike the
// list family which returns a sentinel message.

// SearchByTitle matches titles containing s, ignoring case.
func (r *Repository) SearchByTitle(s string) string {
	return domain.FormatRecipes(r.MatchTitle(s))
}

// SearchByDifficultyLevel matches difficulty levels containing s, ignoring case.
func (r *Repository) SearchByDifficultyLevel(s string) string {
	return domain.FormatRecipes(r.MatchDifficultyLevel(s))
}

// SearchByCookingTime matches recipes whose cooking time equals minutes.
func (r *Repository) SearchByCookingTime(minutes int) string {
	return domain.FormatRecipes(r.MatchCookingTime(minutes))
}

// SearchByCalories matches recipes with at most maxCalories.
func (r *Repository) SearchByCalories(maxCalories int) string {
	return domain.FormatRecipes(r.MatchCalories(maxCalories))
}

// MatchTitle returns the recipes SearchByTitle reports.
func (r *Repository) MatchTitle(s string) []*domain.Recipe {
	return r.filter(func(recipe *domain.Recipe) bool {
		return domain.ContainsFold(recipe.Title, s)
	})
}

// MatchDifficultyLevel returns the recipes SearchByDifficultyLevel reports.
func (r *Repository) MatchDifficultyLevel(s string) []*domain.Recipe {
	return r.filter(func(recipe *domain.Recipe) bool {
		return domain.ContainsFold(recipe.DifficultyLevel, s)
	})
}

// MatchCookingTime returns the recipes SearchByCookingTime reports.
func (r *Repository) MatchCookingTime(minutes int) []*domain.Recipe {
	return r.filter(func(recipe *domain.Recipe) bool {
		return recipe.CookingTime == minutes
	})
}

// MatchCalories returns the recipes SearchByCalories reports.
func (r *Repository) MatchCalories(maxCalories int) []*domain.Recipe {
	return r.filter(func(recipe *domain.Recipe) bool {
		return recipe.Calories <= maxCalories
	})
}

// SearchIngredientByName lists every ingredient whose name contains s,
// grouped under the id and title of its recipe.
// Returns domain.NoRecipesMessage for an empty repository and a
// "No items found for" message when nothing matched.
func (r *Repository) SearchIngredientByName(s string) string {
	if len(r.recipes) == 0 {
		return domain.NoRecipesMessage
	}

	var b strings.Builder
	for _, recipe := range r.recipes {
		var matches []*domain.Ingredient
		for _, ing := range recipe.Ingredients {
			if domain.ContainsFold(ing.Name, s) {
				matches = append(matches, ing)
			}
		}
		if len(matches) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d: %s", recipe.ID, recipe.Title)
		for _, ing := range matches {
			b.WriteString("\n\t")
			b.WriteString(domain.FormatIngredient(ing))
		}
	}

	if b.Len() == 0 {
		return domain.NoItemsFoundPrefix + s
	}
	return b.String()
}
