package testutil

// IngredientData holds data for an ingredient to be added to a recipe.
type IngredientData struct {
	Name      string
	Quantity  string
	Weight    int
	IsOrganic bool
}

// Ingredient creates an IngredientData structure.
func Ingredient(name, quantity string, weight int) IngredientData {
	return IngredientData{Name: name, Quantity: quantity, Weight: weight}
}

// OrganicIngredient creates an IngredientData marked organic.
func OrganicIngredient(name, quantity string, weight int) IngredientData {
	return IngredientData{Name: name, Quantity: quantity, Weight: weight, IsOrganic: true}
}

// recipeData holds all data for a recipe to be built.
type recipeData struct {
	title       string
	cookingTime int
	difficulty  string
	calories    int
	creator     string
	vegan       bool
	ingredients []IngredientData
}

// defaultRecipe returns a recipeData with sensible defaults.
func defaultRecipe(title string) recipeData {
	return recipeData{
		title:       title,
		cookingTime: 30,
		difficulty:  "Easy",
		calories:    400,
		creator:     "tester",
	}
}

// RecipeOption configures a recipe during builder setup.
type RecipeOption func(*recipeData)

// CookingTime sets the cooking time in minutes.
func CookingTime(minutes int) RecipeOption {
	return func(r *recipeData) { r.cookingTime = minutes }
}

// Difficulty sets the difficulty level.
func Difficulty(level string) RecipeOption {
	return func(r *recipeData) { r.difficulty = level }
}

// Calories sets the calorie count.
func Calories(c int) RecipeOption {
	return func(r *recipeData) { r.calories = c }
}

// Creator sets the recipe creator.
func Creator(name string) RecipeOption {
	return func(r *recipeData) { r.creator = name }
}

// Vegan marks the recipe vegan.
func Vegan() RecipeOption {
	return func(r *recipeData) { r.vegan = true }
}

// Ingredients adds ingredients to the recipe (nested option).
func Ingredients(ingredients ...IngredientData) RecipeOption {
	return func(r *recipeData) { r.ingredients = append(r.ingredients, ingredients...) }
}
