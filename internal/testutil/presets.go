package testutil

// WithStandardRecipes adds the three-recipe dataset used across the
// repository, menu and command tests:
//
//	Tacos   (30 min, Easy,   250 kcal, non-vegan, Beef + Tortilla)
//	Pasta   (20 min, Medium, 600 kcal, vegan,     Penne + Tomato)
//	Lasagna (90 min, Hard,   900 kcal, non-vegan, Pasta Sheets + Beef)
func (b *Builder) WithStandardRecipes() *Builder {
	return b.
		WithRecipe("Tacos",
			CookingTime(30), Difficulty("Easy"), Calories(250), Creator("Niall"),
			Ingredients(
				Ingredient("Beef", "200g", 200),
				Ingredient("Tortilla", "4 wraps", 160),
			)).
		WithRecipe("Pasta",
			CookingTime(20), Difficulty("Medium"), Calories(600), Creator("Aoife"), Vegan(),
			Ingredients(
				Ingredient("Penne", "1 cup", 100),
				OrganicIngredient("Tomato", "2 whole", 240),
			)).
		WithRecipe("Lasagna",
			CookingTime(90), Difficulty("Hard"), Calories(900), Creator("Niall"),
			Ingredients(
				Ingredient("Pasta Sheets", "12 sheets", 250),
				Ingredient("Beef", "500g", 500),
			))
}

// WithCalorieTies adds recipes sharing calorie and cooking-time values, for
// checking that sorts are stable.
func (b *Builder) WithCalorieTies() *Builder {
	return b.
		WithRecipe("Soup A", CookingTime(15), Calories(300)).
		WithRecipe("Salad", CookingTime(5), Calories(150)).
		WithRecipe("Soup B", CookingTime(15), Calories(300)).
		WithRecipe("Stew", CookingTime(120), Calories(700))
}
