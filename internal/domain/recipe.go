package domain

import "slices"

// Recipe is the aggregate for one dish. It owns its ingredients and hands out
// their ids from a private counter that only ever increments.
type Recipe struct {
	ID              int
	Title           string
	CookingTime     int // minutes
	DifficultyLevel string
	IsVegan         bool
	Calories        int
	Creator         string
	Ingredients     []*Ingredient

	nextIngredientID int
}

// NewRecipe creates a recipe with no ingredients. The ID is assigned when the
// recipe is added to a repository.
func NewRecipe(title string, cookingTime int, difficulty string, calories int, creator string) *Recipe {
	return &Recipe{
		Title:           title,
		CookingTime:     cookingTime,
		DifficultyLevel: difficulty,
		Calories:        calories,
		Creator:         creator,
	}
}

// AddIngredient assigns the next ingredient id, overwriting any id the caller
// set, and attaches the ingredient.
func (r *Recipe) AddIngredient(ingredient *Ingredient) bool {
	if ingredient == nil {
		return false
	}
	ingredient.ID = r.nextIngredientID
	r.nextIngredientID++
	r.Ingredients = append(r.Ingredients, ingredient)
	return true
}

// DeleteIngredient removes the ingredient with the given id.
// Returns false if the recipe has no such ingredient.
func (r *Recipe) DeleteIngredient(id int) bool {
	idx := r.indexOfIngredient(id)
	if idx < 0 {
		return false
	}
	r.Ingredients = slices.Delete(r.Ingredients, idx, idx+1)
	if len(r.Ingredients) == 0 {
		r.Ingredients = nil
	}
	return true
}

// FindIngredient returns the ingredient with the given id, or nil.
func (r *Recipe) FindIngredient(id int) *Ingredient {
	idx := r.indexOfIngredient(id)
	if idx < 0 {
		return nil
	}
	return r.Ingredients[idx]
}

// UpdateIngredient replaces name, quantity and weight of the ingredient with
// the given id. The organic flag and the id are left untouched.
func (r *Recipe) UpdateIngredient(id int, fields *Ingredient) bool {
	found := r.FindIngredient(id)
	if found == nil || fields == nil {
		return false
	}
	found.Name = fields.Name
	found.Quantity = fields.Quantity
	found.Weight = fields.Weight
	return true
}

// SetIngredientOrganic sets the organic flag of the ingredient with the given id.
func (r *Recipe) SetIngredientOrganic(id int, organic bool) bool {
	found := r.FindIngredient(id)
	if found == nil {
		return false
	}
	found.IsOrganic = organic
	return true
}

// ListIngredients renders the ingredients, or NoIngredientsMessage when there are none.
func (r *Recipe) ListIngredients() string {
	if len(r.Ingredients) == 0 {
		return NoIngredientsMessage
	}
	return FormatIngredients(r.Ingredients)
}

// NumberOfIngredients returns how many ingredients the recipe holds.
func (r *Recipe) NumberOfIngredients() int {
	return len(r.Ingredients)
}

// NextIngredientID returns the id the next added ingredient will receive.
// Storage backends persist it so ids are not reused after a reload.
func (r *Recipe) NextIngredientID() int {
	return r.nextIngredientID
}

// RestoreIngredients replaces the ingredient list and counter when a recipe is
// rehydrated from storage. Ingredients are ordered by id and the counter never
// falls at or below an id already in use.
func (r *Recipe) RestoreIngredients(ingredients []*Ingredient, next int) {
	if len(ingredients) == 0 {
		r.Ingredients = nil
	} else {
		r.Ingredients = slices.Clone(ingredients)
		slices.SortStableFunc(r.Ingredients, func(a, b *Ingredient) int {
			return a.ID - b.ID
		})
		if last := r.Ingredients[len(r.Ingredients)-1].ID; next <= last {
			next = last + 1
		}
	}
	r.nextIngredientID = max(next, 0)
}

func (r *Recipe) indexOfIngredient(id int) int {
	return slices.IndexFunc(r.Ingredients, func(i *Ingredient) bool {
		return i.ID == id
	})
}
