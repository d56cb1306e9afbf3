// Package domain provides the recipe and ingredient entities, their report
// formatting, and the persistence contract the repository depends on.
//
// The package has no infrastructure dependencies beyond the standard library
// and text case folding. Storage backends live under internal/infrastructure.
package domain

// Ingredient is one ingredient line within a recipe.
// The ID is assigned by the owning Recipe when the ingredient is added.
type Ingredient struct {
	ID        int
	Name      string
	Quantity  string // free text, e.g. "200g" or "2 cups"
	Weight    int    // grams
	IsOrganic bool
}

// NewIngredient creates an ingredient that is not yet attached to a recipe.
func NewIngredient(name, quantity string, weight int) *Ingredient {
	return &Ingredient{
		Name:     name,
		Quantity: quantity,
		Weight:   weight,
	}
}
