// Package repository provides the in-memory recipe collection manager.
//
// The Repository owns the recipe list and hands out recipe ids from a counter
// that only increments. Not-found conditions are reported as false or nil;
// only Store and Load return errors, which come from the injected domain.Store.
package repository

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/zjrosen/recipebook/internal/domain"
	"github.com/zjrosen/recipebook/internal/log"
)

// Repository manages the recipe collection for one session.
type Repository struct {
	store   domain.Store
	recipes []*domain.Recipe
	lastID  int
}

// New creates an empty repository backed by store.
// The store is fixed for the lifetime of the repository.
func New(store domain.Store) *Repository {
	return &Repository{store: store}
}

func (r *Repository) nextID() int {
	id := r.lastID
	r.lastID++
	return id
}

// Add assigns the next recipe id, overwriting any id already set, and appends
// the recipe.
func (r *Repository) Add(recipe *domain.Recipe) bool {
	if recipe == nil {
		return false
	}
	recipe.ID = r.nextID()
	r.recipes = append(r.recipes, recipe)
	log.Debug(log.CatRepo, "Added recipe", "id", recipe.ID, "title", recipe.Title)
	return true
}

// Delete removes the recipe with the given id.
// Returns false if no recipe has that id.
func (r *Repository) Delete(id int) bool {
	idx := r.indexOf(id)
	if idx < 0 {
		return false
	}
	r.recipes = slices.Delete(r.recipes, idx, idx+1)
	log.Debug(log.CatRepo, "Deleted recipe", "id", id)
	return true
}

// UpdateRecipe copies title, cooking time, difficulty, calories and creator
// from fields onto the recipe with the given id. The vegan flag, the
// ingredients and the id are never changed by an update.
func (r *Repository) UpdateRecipe(id int, fields *domain.Recipe) bool {
	found := r.FindRecipe(id)
	if found == nil || fields == nil {
		return false
	}
	found.Title = fields.Title
	found.CookingTime = fields.CookingTime
	found.DifficultyLevel = fields.DifficultyLevel
	found.Calories = fields.Calories
	found.Creator = fields.Creator
	log.Debug(log.CatRepo, "Updated recipe", "id", id)
	return true
}

// FindRecipe returns the recipe with the given id, or nil.
func (r *Repository) FindRecipe(id int) *domain.Recipe {
	idx := r.indexOf(id)
	if idx < 0 {
		return nil
	}
	return r.recipes[idx]
}

// Recipes returns a snapshot of the collection in its current order.
func (r *Repository) Recipes() []*domain.Recipe {
	return slices.Clone(r.recipes)
}

// NumberOfRecipes returns the collection size.
func (r *Repository) NumberOfRecipes() int {
	return len(r.recipes)
}

// NumberOfVeganRecipes counts recipes marked vegan.
func (r *Repository) NumberOfVeganRecipes() int {
	return len(r.filter(isVegan))
}

// NumberOfNonVeganRecipes counts recipes not marked vegan.
func (r *Repository) NumberOfNonVeganRecipes() int {
	return len(r.filter(isNonVegan))
}

// ListRecipes renders every recipe, or domain.NoRecipesMessage.
func (r *Repository) ListRecipes() string {
	if len(r.recipes) == 0 {
		return domain.NoRecipesMessage
	}
	return domain.FormatRecipes(r.recipes)
}

// ListVeganRecipes renders vegan recipes, or domain.NoVeganRecipesMessage.
func (r *Repository) ListVeganRecipes() string {
	vegan := r.filter(isVegan)
	if len(vegan) == 0 {
		return domain.NoVeganRecipesMessage
	}
	return domain.FormatRecipes(vegan)
}

// ListNonVeganRecipes renders non-vegan recipes, or domain.NoNonVeganRecipesMessage.
func (r *Repository) ListNonVeganRecipes() string {
	nonVegan := r.filter(isNonVegan)
	if len(nonVegan) == 0 {
		return domain.NoNonVeganRecipesMessage
	}
	return domain.FormatRecipes(nonVegan)
}

// IsValidIndex reports whether index addresses a position in the collection.
func (r *Repository) IsValidIndex(index int) bool {
	return index >= 0 && index < len(r.recipes)
}

// MarkRecipeVegan marks the recipe at the given position (not id) as vegan.
// Returns false if the index is out of bounds or the recipe is already vegan.
func (r *Repository) MarkRecipeVegan(index int) bool {
	if !r.IsValidIndex(index) {
		return false
	}
	recipe := r.recipes[index]
	if recipe.IsVegan {
		return false
	}
	recipe.IsVegan = true
	log.Debug(log.CatRepo, "Marked recipe vegan", "index", index, "id", recipe.ID)
	return true
}

// Store writes the whole collection through the backing store.
func (r *Repository) Store() error {
	if err := r.store.Write(r.recipes); err != nil {
		log.ErrorErr(log.CatStore, "Failed to store recipes", err, "count", len(r.recipes))
		return fmt.Errorf("storing recipes: %w", err)
	}
	log.Info(log.CatStore, "Stored recipes", "count", len(r.recipes))
	return nil
}

// Load replaces the collection with the stored one. The id counter is left
// as is, so ids from the loaded data may collide with later additions.
func (r *Repository) Load() error {
	recipes, err := r.store.Read()
	if err != nil {
		log.ErrorErr(log.CatStore, "Failed to load recipes", err)
		return fmt.Errorf("loading recipes: %w", err)
	}
	r.recipes = recipes
	log.Info(log.CatStore, "Loaded recipes", "count", len(recipes))
	return nil
}

func (r *Repository) indexOf(id int) int {
	return slices.IndexFunc(r.recipes, func(recipe *domain.Recipe) bool {
		return recipe.ID == id
	})
}

func (r *Repository) filter(keep func(*domain.Recipe) bool) []*domain.Recipe {
	var out []*domain.Recipe
	for _, recipe := range r.recipes {
		if keep(recipe) {
			out = append(out, recipe)
		}
	}
	return out
}

func isVegan(r *domain.Recipe) bool    { return r.IsVegan }
func isNonVegan(r *domain.Recipe) bool { return !r.IsVegan }

// sorted returns a stably sorted copy of the collection.
func (r *Repository) sorted(key func(*domain.Recipe) int, desc bool) []*domain.Recipe {
	out := slices.Clone(r.recipes)
	slices.SortStableFunc(out, func(a, b *domain.Recipe) int {
		if desc {
			return cmp.Compare(key(b), key(a))
		}
		return cmp.Compare(key(a), key(b))
	})
	return out
}

func (r *Repository) sortReport(key func(*domain.Recipe) int, desc bool) string {
	if len(r.recipes) == 0 {
		return domain.NoRecipesMessage
	}
	return domain.FormatRecipes(r.sorted(key, desc))
}

func calories(r *domain.Recipe) int    { return r.Calories }
func cookingTime(r *domain.Recipe) int { return r.CookingTime }

// SortByCaloriesAsc renders all recipes ordered by calories, lowest first.
func (r *Repository) SortByCaloriesAsc() string { return r.sortReport(calories, false) }

// SortByCaloriesDesc renders all recipes ordered by calories, highest first.
func (r *Repository) SortByCaloriesDesc() string { return r.sortReport(calories, true) }

// SortByCookingTimeAsc renders all recipes ordered by cooking time, shortest first.
func (r *Repository) SortByCookingTimeAsc() string { return r.sortReport(cookingTime, false) }

// SortByCookingTimeDesc renders all recipes ordered by cooking time, longest first.
func (r *Repository) SortByCookingTimeDesc() string { return r.sortReport(cookingTime, true) }

// SortedBy returns a sorted copy of the collection for non-text output.
// field is "calories" or "time"; any other value keeps the current order.
func (r *Repository) SortedBy(field string, desc bool) []*domain.Recipe {
	switch strings.ToLower(field) {
	case "calories":
		return r.sorted(calories, desc)
	case "time", "cooking-time", "cookingtime":
		return r.sorted(cookingTime, desc)
	default:
		return r.Recipes()
	}
}
