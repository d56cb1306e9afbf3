package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Sentinel messages returned in place of a report when the result set is empty.
// Callers match them case-insensitively by substring.
const (
	NoRecipesMessage         = "No recipes stored"
	NoVeganRecipesMessage    = "No vegan recipes stored"
	NoNonVeganRecipesMessage = "No non vegan recipes stored"
	NoIngredientsMessage     = "No ingredients added"
	NoItemsFoundPrefix       = "No items found for: "
)

// FormatRecipes renders recipes as blocks separated by a blank line.
// An empty slice renders as the empty string.
func FormatRecipes(recipes []*Recipe) string {
	blocks := make([]string, 0, len(recipes))
	for _, r := range recipes {
		blocks = append(blocks, FormatRecipe(r))
	}
	return strings.Join(blocks, "\n\n")
}

// FormatRecipe renders a single recipe block including its ingredients.
func FormatRecipe(r *Recipe) string {
	var b strings.Builder
	fmt.Fprintf(&b, " Recipe Id: %d\n", r.ID)
	fmt.Fprintf(&b, " Recipe Title: %s\n", r.Title)
	fmt.Fprintf(&b, " Cooking Time: %d minutes\n", r.CookingTime)
	fmt.Fprintf(&b, " Difficulty Level: %s\n", r.DifficultyLevel)
	fmt.Fprintf(&b, " Calories: %d\n", r.Calories)
	fmt.Fprintf(&b, " Vegan Status: %t\n", r.IsVegan)
	fmt.Fprintf(&b, " Recipe Creator: %s\n", r.Creator)
	b.WriteString(" Ingredients:")
	for _, ing := range r.Ingredients {
		b.WriteString("\n\t")
		b.WriteString(FormatIngredient(ing))
	}
	return b.String()
}

// FormatIngredients renders one ingredient per line.
func FormatIngredients(ingredients []*Ingredient) string {
	lines := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		lines = append(lines, FormatIngredient(ing))
	}
	return strings.Join(lines, "\n")
}

// FormatIngredient renders a single ingredient line.
func FormatIngredient(i *Ingredient) string {
	return fmt.Sprintf("%d: %s of %s (%d grams) Organic Status: %t",
		i.ID, i.Quantity, i.Name, i.Weight, i.IsOrganic)
}

// ContainsFold reports whether substr is within s under Unicode case folding.
func ContainsFold(s, substr string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(substr))
}
