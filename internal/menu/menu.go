// Package menu implements the interactive numbered menu over a recipe
// repository. It reads choices through a Prompter, calls one repository
// operation per choice and prints the result.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/zjrosen/recipebook/internal/domain"
	"github.com/zjrosen/recipebook/internal/log"
	"github.com/zjrosen/recipebook/internal/repository"
)

// Main menu choices.
const (
	ChoiceExit             = 0
	ChoiceAddRecipe        = 1
	ChoiceDeleteRecipe     = 2
	ChoiceUpdateRecipe     = 3
	ChoiceListRecipes      = 4
	ChoiceSearchRecipes    = 5
	ChoiceMarkVegan        = 6
	ChoiceSortRecipes      = 7
	ChoiceAddIngredient    = 8
	ChoiceDeleteIngredient = 9
	ChoiceUpdateIngredient = 10
	ChoiceSearchIngredient = 11
	ChoiceToggleOrganic    = 12
	ChoiceSave             = 20
	ChoiceLoad             = 21
)

const mainMenuText = `RECIPE APP
---------------------------------------------------
 RECIPE MENU            | ITEM MENU
  1) Add a recipe       |  8) Add ingredients
  2) Delete a recipe    |  9) Delete ingredient
  3) Update recipes     | 10) Update ingredient
  4) List recipes       | 11) Search by name
  5) Search recipes     | 12) Mark as organic
  6) Mark as vegan      |
  7) Sort recipes       |
---------------------------------------------------
 20) Save all recipes and ingredients
 21) Load all recipes and ingredients
  0) Exit`

const promptArrow = "==>> "

// Menu drives one interactive session.
type Menu struct {
	repo     *repository.Repository
	in       *Prompter
	out      io.Writer
	styles   styles
	autoSave bool
}

// Option configures a Menu.
type Option func(*Menu)

// WithPlain disables colors and borders.
func WithPlain(plain bool) Option {
	return func(m *Menu) { m.styles = newStyles(m.out, plain) }
}

// WithAutoSave stores the collection when the session ends.
func WithAutoSave(enabled bool) Option {
	return func(m *Menu) { m.autoSave = enabled }
}

// New creates a menu reading choices from in and writing to out.
func New(repo *repository.Repository, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		repo: repo,
		in:   NewPrompter(in, out),
		out:  out,
	}
	m.styles = newStyles(out, false)
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run shows the main menu until the user exits, input ends, or ctx is
// cancelled. Persistence failures are reported and the loop continues.
// The only error returned is a failed auto-save or a cancelled context.
func (m *Menu) Run(ctx context.Context) error {
	log.Info(log.CatMenu, "Menu started", "recipes", m.repo.NumberOfRecipes(), "autoSave", m.autoSave)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := m.in.ReadNextInt(m.styles.frame.Render(mainMenuText) + "\n" + promptArrow)
		if err != nil {
			return m.exit(err)
		}
		log.Debug(log.CatMenu, "Menu choice", "choice", choice)

		if choice == ChoiceExit {
			return m.exit(nil)
		}
		if err := m.dispatch(choice); err != nil {
			return m.exit(err)
		}
	}
}

// dispatch runs one main menu choice. It only returns input errors.
func (m *Menu) dispatch(choice int) error {
	switch choice {
	case ChoiceAddRecipe:
		return m.addRecipe()
	case ChoiceDeleteRecipe:
		return m.deleteRecipe()
	case ChoiceUpdateRecipe:
		return m.updateRecipe()
	case ChoiceListRecipes:
		return m.listRecipes()
	case ChoiceSearchRecipes:
		return m.searchRecipes()
	case ChoiceMarkVegan:
		return m.markRecipeVegan()
	case ChoiceSortRecipes:
		return m.sortRecipes()
	case ChoiceAddIngredient:
		return m.addIngredient()
	case ChoiceDeleteIngredient:
		return m.deleteIngredient()
	case ChoiceUpdateIngredient:
		return m.updateIngredient()
	case ChoiceSearchIngredient:
		return m.searchIngredient()
	case ChoiceToggleOrganic:
		return m.toggleOrganic()
	case ChoiceSave:
		m.save()
	case ChoiceLoad:
		m.load()
	default:
		m.failure(fmt.Sprintf("Invalid menu choice: %d", choice))
	}
	return nil
}

// exit ends the session. End of input counts as a normal exit.
func (m *Menu) exit(cause error) error {
	if cause != nil && !errors.Is(cause, io.EOF) {
		return cause
	}
	if m.autoSave {
		if err := m.repo.Store(); err != nil {
			m.failure(fmt.Sprintf("Error writing to file: %v", err))
			return err
		}
		m.success("All recipes successfully saved")
	}
	m.info("Exiting...")
	log.Info(log.CatMenu, "Menu exited", "recipes", m.repo.NumberOfRecipes())
	return nil
}

func (m *Menu) println(s string) {
	_, _ = fmt.Fprintln(m.out, s)
}

func (m *Menu) success(s string) { m.println(m.styles.success.Render(s)) }
func (m *Menu) failure(s string) { m.println(m.styles.failure.Render(s)) }
func (m *Menu) info(s string)    { m.println(m.styles.info.Render(s)) }

// submenu prints numbered options and reads a choice.
func (m *Menu) submenu(options ...string) (int, error) {
	var b strings.Builder
	for i, opt := range options {
		fmt.Fprintf(&b, "  %d) %s\n", i+1, opt)
	}
	body := m.styles.frame.Render(strings.TrimSuffix(b.String(), "\n"))
	return m.in.ReadNextInt(body + "\n" + promptArrow)
}

func (m *Menu) invalidOption(option int) {
	m.failure(fmt.Sprintf("Invalid option entered: %d", option))
}

//------------
// RECIPE MENU
//------------

// readRecipeFields prompts for the five editable recipe fields.
func (m *Menu) readRecipeFields() (*domain.Recipe, error) {
	title, err := m.in.ReadNonBlankLine("Enter a title for the recipe: ")
	if err != nil {
		return nil, err
	}
	cookingTime, err := m.in.ReadNextInt("Enter the cooking time (minutes): ")
	if err != nil {
		return nil, err
	}
	difficulty, err := m.in.ReadNextLine("Enter the difficulty level: ")
	if err != nil {
		return nil, err
	}
	calories, err := m.in.ReadNextInt("Enter the calorie count: ")
	if err != nil {
		return nil, err
	}
	creator, err := m.in.ReadNextLine("Enter the creator name: ")
	if err != nil {
		return nil, err
	}
	return domain.NewRecipe(title, cookingTime, difficulty, calories, creator), nil
}

func (m *Menu) addRecipe() error {
	recipe, err := m.readRecipeFields()
	if err != nil {
		return err
	}
	if m.repo.Add(recipe) {
		m.success("Added Successfully")
	} else {
		m.failure("Add Failed")
	}
	return nil
}

// listAll prints every recipe and reports whether there were any.
func (m *Menu) listAll() bool {
	if m.repo.NumberOfRecipes() == 0 {
		m.info(domain.NoRecipesMessage)
		return false
	}
	m.println(m.repo.ListRecipes())
	return true
}

func (m *Menu) deleteRecipe() error {
	if !m.listAll() {
		return nil
	}
	id, err := m.in.ReadNextInt("Enter the id of the recipe to delete: ")
	if err != nil {
		return err
	}
	if m.repo.Delete(id) {
		m.success("Delete Successful!")
	} else {
		m.failure("Delete NOT Successful")
	}
	return nil
}

func (m *Menu) updateRecipe() error {
	if !m.listAll() {
		return nil
	}
	id, err := m.in.ReadNextInt("Enter the id of the recipe to update: ")
	if err != nil {
		return err
	}
	if m.repo.FindRecipe(id) == nil {
		m.failure("There are no recipes for this id")
		return nil
	}
	fields, err := m.readRecipeFields()
	if err != nil {
		return err
	}
	if m.repo.UpdateRecipe(id, fields) {
		m.success("Update Successful")
	} else {
		m.failure("Update Failed")
	}
	return nil
}

func (m *Menu) listRecipes() error {
	if m.repo.NumberOfRecipes() == 0 {
		m.info("Option Invalid - " + domain.NoRecipesMessage)
		return nil
	}
	option, err := m.submenu("View ALL recipes", "View non vegan recipes", "View vegan recipes")
	if err != nil {
		return err
	}
	switch option {
	case 1:
		m.println(m.repo.ListRecipes())
	case 2:
		m.println(m.repo.ListNonVeganRecipes())
	case 3:
		m.println(m.repo.ListVeganRecipes())
	default:
		m.invalidOption(option)
	}
	return nil
}

func (m *Menu) markRecipeVegan() error {
	m.println(m.repo.ListNonVeganRecipes())
	if m.repo.NumberOfNonVeganRecipes() == 0 {
		return nil
	}
	index, err := m.in.ReadNextInt("Enter the index of the recipe to mark vegan: ")
	if err != nil {
		return err
	}
	if m.repo.MarkRecipeVegan(index) {
		m.success("Recipe marked vegan successfully!")
	} else {
		m.failure("Recipe NOT marked vegan successfully")
	}
	return nil
}

//--------------------
// SEARCH AND SORT
//--------------------

func (m *Menu) searchRecipes() error {
	if m.repo.NumberOfRecipes() == 0 {
		m.info("Option Invalid - " + domain.NoRecipesMessage)
		return nil
	}
	option, err := m.submenu("Search by title", "Search by cooking time", "Search by difficulty level", "Search by calories")
	if err != nil {
		return err
	}

	var results, empty string
	switch option {
	case 1:
		s, err := m.in.ReadNextLine("Enter the title to search by: ")
		if err != nil {
			return err
		}
		results, empty = m.repo.SearchByTitle(s), "No recipes found"
	case 2:
		minutes, err := m.in.ReadNextInt("Enter the cooking time to search by: ")
		if err != nil {
			return err
		}
		results, empty = m.repo.SearchByCookingTime(minutes), "No recipes found"
	case 3:
		s, err := m.in.ReadNextLine("Enter the difficulty level to search by: ")
		if err != nil {
			return err
		}
		results, empty = m.repo.SearchByDifficultyLevel(s), "No recipes found"
	case 4:
		maxCalories, err := m.in.ReadNextInt("Enter the max amount of calories: ")
		if err != nil {
			return err
		}
		results = m.repo.SearchByCalories(maxCalories)
		empty = fmt.Sprintf("No recipes found with calories equal, or below %d", maxCalories)
	default:
		m.invalidOption(option)
		return nil
	}

	if results == "" {
		m.info(empty)
	} else {
		m.println(results)
	}
	return nil
}

func (m *Menu) sortRecipes() error {
	if m.repo.NumberOfRecipes() == 0 {
		m.info("Option Invalid - " + domain.NoRecipesMessage)
		return nil
	}
	field, err := m.submenu("Sort by calories", "Sort by cooking time")
	if err != nil {
		return err
	}
	if field != 1 && field != 2 {
		m.invalidOption(field)
		return nil
	}
	order, err := m.submenu("Ascending", "Descending")
	if err != nil {
		return err
	}

	switch {
	case field == 1 && order == 1:
		m.println(m.styles.title.Render("Recipes ascending by calories:") + "\n" + m.repo.SortByCaloriesAsc())
	case field == 1 && order == 2:
		m.println(m.styles.title.Render("Recipes descending by calories:") + "\n" + m.repo.SortByCaloriesDesc())
	case field == 2 && order == 1:
		m.println(m.styles.title.Render("Recipes ascending by cooking time:") + "\n" + m.repo.SortByCookingTimeAsc())
	case field == 2 && order == 2:
		m.println(m.styles.title.Render("Recipes descending by cooking time:") + "\n" + m.repo.SortByCookingTimeDesc())
	default:
		m.invalidOption(order)
	}
	return nil
}

//------------
// ITEM MENU
//------------

// chooseRecipe lists recipes and asks for an id. Returns nil with a nil
// error when there is nothing to choose or the id is unknown.
func (m *Menu) chooseRecipe() (*domain.Recipe, error) {
	if !m.listAll() {
		return nil, nil
	}
	id, err := m.in.ReadNextInt("\nEnter the id of the recipe: ")
	if err != nil {
		return nil, err
	}
	recipe := m.repo.FindRecipe(id)
	if recipe == nil {
		m.failure("Recipe id is not valid")
	}
	return recipe, nil
}

// chooseIngredient lists the recipe's ingredients and asks for an id.
func (m *Menu) chooseIngredient(recipe *domain.Recipe) (*domain.Ingredient, error) {
	if recipe.NumberOfIngredients() == 0 {
		m.info("No ingredients for chosen recipe")
		return nil, nil
	}
	m.println(recipe.ListIngredients())
	id, err := m.in.ReadNextInt("\nEnter the id of the ingredient: ")
	if err != nil {
		return nil, err
	}
	ingredient := recipe.FindIngredient(id)
	if ingredient == nil {
		m.failure("Invalid Item Id")
	}
	return ingredient, nil
}

func (m *Menu) addIngredient() error {
	recipe, err := m.chooseRecipe()
	if err != nil || recipe == nil {
		return err
	}
	name, err := m.in.ReadNonBlankLine("\tIngredient Name: ")
	if err != nil {
		return err
	}
	quantity, err := m.in.ReadNextLine("\tIngredient Quantity: ")
	if err != nil {
		return err
	}
	weight, err := m.in.ReadNextInt("\tIngredient weight (grams): ")
	if err != nil {
		return err
	}
	organic, err := m.in.ReadNextBoolean("\tIs the ingredient organic? (y/n): ")
	if err != nil {
		return err
	}

	ingredient := domain.NewIngredient(name, quantity, weight)
	ingredient.IsOrganic = organic
	if recipe.AddIngredient(ingredient) {
		log.Debug(log.CatRepo, "Added ingredient", "recipe", recipe.ID, "ingredient", ingredient.ID)
		m.success("Add Successful")
	} else {
		m.failure("Add Not Successful")
	}
	return nil
}

func (m *Menu) deleteIngredient() error {
	recipe, err := m.chooseRecipe()
	if err != nil || recipe == nil {
		return err
	}
	ingredient, err := m.chooseIngredient(recipe)
	if err != nil || ingredient == nil {
		return err
	}
	if recipe.DeleteIngredient(ingredient.ID) {
		m.success("Delete Successful!")
	} else {
		m.failure("Delete NOT Successful")
	}
	return nil
}

func (m *Menu) updateIngredient() error {
	recipe, err := m.chooseRecipe()
	if err != nil || recipe == nil {
		return err
	}
	ingredient, err := m.chooseIngredient(recipe)
	if err != nil || ingredient == nil {
		return err
	}
	name, err := m.in.ReadNonBlankLine("Enter new name: ")
	if err != nil {
		return err
	}
	quantity, err := m.in.ReadNextLine("Enter new quantity: ")
	if err != nil {
		return err
	}
	weight, err := m.in.ReadNextInt("Enter new weight (in grams): ")
	if err != nil {
		return err
	}
	if recipe.UpdateIngredient(ingredient.ID, domain.NewIngredient(name, quantity, weight)) {
		m.success("Item contents updated")
	} else {
		m.failure("Item contents NOT updated")
	}
	return nil
}

func (m *Menu) searchIngredient() error {
	if m.repo.NumberOfRecipes() == 0 {
		m.info(domain.NoRecipesMessage)
		return nil
	}
	name, err := m.in.ReadNextLine("Enter the ingredient name to search by: ")
	if err != nil {
		return err
	}
	m.println(m.repo.SearchIngredientByName(name))
	return nil
}

func (m *Menu) toggleOrganic() error {
	recipe, err := m.chooseRecipe()
	if err != nil || recipe == nil {
		return err
	}
	ingredient, err := m.chooseIngredient(recipe)
	if err != nil || ingredient == nil {
		return err
	}

	target, label := !ingredient.IsOrganic, "organic"
	current := "non-organic"
	if ingredient.IsOrganic {
		label, current = "non-organic", "organic"
	}
	answer, err := m.in.ReadNextChar(fmt.Sprintf(
		"The ingredient is currently %s, do you want to mark it as %s?\n Enter 'Y' to mark as %s\n Press any key to exit:\n%s",
		current, label, label, promptArrow))
	if err != nil {
		return err
	}
	if answer != 'Y' && answer != 'y' {
		m.info("Organic status unchanged")
		return nil
	}
	recipe.SetIngredientOrganic(ingredient.ID, target)
	m.success("Ingredient marked as " + label)
	return nil
}

//------------
// PERSISTENCE
//------------

func (m *Menu) save() {
	if err := m.repo.Store(); err != nil {
		m.failure(fmt.Sprintf("Error writing to file: %v", err))
		return
	}
	m.success("All recipes successfully saved")
}

func (m *Menu) load() {
	if err := m.repo.Load(); err != nil {
		m.failure(fmt.Sprintf("Error reading from file: %v", err))
		return
	}
	m.success("All recipes successfully loaded")
}
