package sqlite

import (
	"github.com/zjrosen/recipebook/internal/domain"
)

// RecipeModel represents the database row for the recipes table.
// Position is the row key and keeps collection order; ID is the domain id,
// which is not guaranteed unique after a reload.
type RecipeModel struct {
	Position         int
	ID               int
	Title            string
	CookingTime      int
	DifficultyLevel  string
	IsVegan          bool
	Calories         int
	Creator          string
	NextIngredientID int
}

// IngredientModel represents the database row for the ingredients table.
type IngredientModel struct {
	RecipePosition int
	ID             int
	Name           string
	Quantity       string
	Weight         int
	IsOrganic      bool
}

// toRecipeModel converts a domain Recipe at the given position to a RecipeModel.
func toRecipeModel(position int, r *domain.Recipe) *RecipeModel {
	return &RecipeModel{
		Position:         position,
		ID:               r.ID,
		Title:            r.Title,
		CookingTime:      r.CookingTime,
		DifficultyLevel:  r.DifficultyLevel,
		IsVegan:          r.IsVegan,
		Calories:         r.Calories,
		Creator:          r.Creator,
		NextIngredientID: r.NextIngredientID(),
	}
}

// toIngredientModel converts a domain Ingredient to an IngredientModel.
func toIngredientModel(position int, i *domain.Ingredient) *IngredientModel {
	return &IngredientModel{
		RecipePosition: position,
		ID:             i.ID,
		Name:           i.Name,
		Quantity:       i.Quantity,
		Weight:         i.Weight,
		IsOrganic:      i.IsOrganic,
	}
}

// toDomain converts a RecipeModel and its ingredient rows to a domain Recipe.
func (m *RecipeModel) toDomain(ingredients []*IngredientModel) *domain.Recipe {
	r := domain.NewRecipe(m.Title, m.CookingTime, m.DifficultyLevel, m.Calories, m.Creator)
	r.ID = m.ID
	r.IsVegan = m.IsVegan

	list := make([]*domain.Ingredient, 0, len(ingredients))
	for _, im := range ingredients {
		list = append(list, im.toDomain())
	}
	r.RestoreIngredients(list, m.NextIngredientID)
	return r
}

// toDomain converts an IngredientModel to a domain Ingredient.
func (m *IngredientModel) toDomain() *domain.Ingredient {
	return &domain.Ingredient{
		ID:        m.ID,
		Name:      m.Name,
		Quantity:  m.Quantity,
		Weight:    m.Weight,
		IsOrganic: m.IsOrganic,
	}
}
