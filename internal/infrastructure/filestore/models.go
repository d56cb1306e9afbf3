package filestore

import (
	"github.com/zjrosen/recipebook/internal/domain"
)

// recipeRecord is the on-disk shape of a recipe, shared by every text codec.
// Field names match existing data files (recipeTitle, isRecipeVegan, ...).
type recipeRecord struct {
	ID               int                `json:"id" yaml:"id" xml:"id"`
	Title            string             `json:"recipeTitle" yaml:"recipeTitle" xml:"recipeTitle"`
	CookingTime      int                `json:"cookingTime" yaml:"cookingTime" xml:"cookingTime"`
	DifficultyLevel  string             `json:"difficultyLevel" yaml:"difficultyLevel" xml:"difficultyLevel"`
	IsVegan          bool               `json:"isRecipeVegan" yaml:"isRecipeVegan" xml:"isRecipeVegan"`
	Calories         int                `json:"calories" yaml:"calories" xml:"calories"`
	Creator          string             `json:"recipeCreator" yaml:"recipeCreator" xml:"recipeCreator"`
	NextIngredientID int                `json:"nextIngredientId" yaml:"nextIngredientId" xml:"nextIngredientId"`
	Ingredients      []ingredientRecord `json:"ingredients" yaml:"ingredients" xml:"ingredients>ingredient"`
}

// ingredientRecord is the on-disk shape of an ingredient.
type ingredientRecord struct {
	ID        int    `json:"id" yaml:"id" xml:"id"`
	Name      string `json:"name" yaml:"name" xml:"name"`
	Quantity  string `json:"quantity" yaml:"quantity" xml:"quantity"`
	Weight    int    `json:"weight" yaml:"weight" xml:"weight"`
	IsOrganic bool   `json:"isOrganic" yaml:"isOrganic" xml:"isOrganic"`
}

// toRecords converts domain recipes to records. The result is never nil so
// that an empty collection encodes as an empty list rather than null.
func toRecords(recipes []*domain.Recipe) []recipeRecord {
	out := make([]recipeRecord, 0, len(recipes))
	for _, r := range recipes {
		rec := recipeRecord{
			ID:               r.ID,
			Title:            r.Title,
			CookingTime:      r.CookingTime,
			DifficultyLevel:  r.DifficultyLevel,
			IsVegan:          r.IsVegan,
			Calories:         r.Calories,
			Creator:          r.Creator,
			NextIngredientID: r.NextIngredientID(),
			Ingredients:      make([]ingredientRecord, 0, len(r.Ingredients)),
		}
		for _, ing := range r.Ingredients {
			rec.Ingredients = append(rec.Ingredients, ingredientRecord{
				ID:        ing.ID,
				Name:      ing.Name,
				Quantity:  ing.Quantity,
				Weight:    ing.Weight,
				IsOrganic: ing.IsOrganic,
			})
		}
		out = append(out, rec)
	}
	return out
}

// toDomain converts records back into domain recipes.
// An empty record list yields a nil slice.
func toDomain(records []recipeRecord) []*domain.Recipe {
	if len(records) == 0 {
		return nil
	}
	out := make([]*domain.Recipe, 0, len(records))
	for _, rec := range records {
		r := domain.NewRecipe(rec.Title, rec.CookingTime, rec.DifficultyLevel, rec.Calories, rec.Creator)
		r.ID = rec.ID
		r.IsVegan = rec.IsVegan

		ingredients := make([]*domain.Ingredient, 0, len(rec.Ingredients))
		for _, ing := range rec.Ingredients {
			ingredients = append(ingredients, &domain.Ingredient{
				ID:        ing.ID,
				Name:      ing.Name,
				Quantity:  ing.Quantity,
				Weight:    ing.Weight,
				IsOrganic: ing.IsOrganic,
			})
		}
		r.RestoreIngredients(ingredients, rec.NextIngredientID)
		out = append(out, r)
	}
	return out
}
