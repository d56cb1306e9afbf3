package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/zjrosen/recipebook/internal/domain"
	"github.com/zjrosen/recipebook/internal/log"
)

const formatName = "sqlite"

const recipeColumns = `position, id, title, cooking_time, difficulty_level, is_vegan, calories, creator, next_ingredient_id`

const ingredientColumns = `recipe_position, id, name, quantity, weight, is_organic`

// RecipeStore implements domain.Store using SQLite.
// A connection is opened per call and closed before returning.
type RecipeStore struct {
	path string
}

// Ensure RecipeStore implements domain.Store.
var _ domain.Store = (*RecipeStore)(nil)

// NewRecipeStore creates a store backed by the database file at path.
// Nothing is opened until the first Write or Read.
func NewRecipeStore(path string) *RecipeStore {
	return &RecipeStore{path: path}
}

// Path returns the database file path.
func (s *RecipeStore) Path() string { return s.path }

// Format returns "sqlite".
func (s *RecipeStore) Format() string { return formatName }

// Write replaces every stored row with recipes inside one transaction.
// Returns EncodeError on any failure; the previous contents are kept on rollback.
func (s *RecipeStore) Write(recipes []*domain.Recipe) error {
	if err := s.write(recipes); err != nil {
		return &domain.EncodeError{Format: formatName, Path: s.path, Err: err}
	}
	log.Debug(log.CatStore, "Wrote store", "format", formatName, "path", s.path, "recipes", len(recipes))
	return nil
}

func (s *RecipeStore) write(recipes []*domain.Recipe) (err error) {
	db, err := openDB(s.path)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec(`DELETE FROM ingredients`); err != nil {
		return fmt.Errorf("failed to clear ingredients: %w", err)
	}
	if _, err = tx.Exec(`DELETE FROM recipes`); err != nil {
		return fmt.Errorf("failed to clear recipes: %w", err)
	}

	for pos, r := range recipes {
		m := toRecipeModel(pos, r)
		_, err = tx.Exec(
			`INSERT INTO recipes (`+recipeColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			m.Position, m.ID, m.Title, m.CookingTime, m.DifficultyLevel,
			m.IsVegan, m.Calories, m.Creator, m.NextIngredientID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert recipe %d: %w", r.ID, err)
		}
		for _, ing := range r.Ingredients {
			im := toIngredientModel(pos, ing)
			_, err = tx.Exec(
				`INSERT INTO ingredients (`+ingredientColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
				im.RecipePosition, im.ID, im.Name, im.Quantity, im.Weight, im.IsOrganic,
			)
			if err != nil {
				return fmt.Errorf("failed to insert ingredient %d of recipe %d: %w", ing.ID, r.ID, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Read loads every recipe in stored order.
// Returns StoreNotFoundError if the database file does not exist and
// DecodeError if it is not a recipe database.
func (s *RecipeStore) Read() ([]*domain.Recipe, error) {
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		return nil, &domain.StoreNotFoundError{Path: s.path}
	}

	db, err := openReadOnly(s.path)
	if err != nil {
		return nil, &domain.DecodeError{Format: formatName, Path: s.path, Err: err}
	}
	defer func() { _ = db.Close() }()

	recipes, err := readAll(db)
	if err != nil {
		return nil, &domain.DecodeError{Format: formatName, Path: s.path, Err: err}
	}
	log.Debug(log.CatStore, "Read store", "format", formatName, "path", s.path, "recipes", len(recipes))
	return recipes, nil
}

func readAll(db *sql.DB) ([]*domain.Recipe, error) {
	ingredients, err := readIngredients(db)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT ` + recipeColumns + ` FROM recipes ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var recipes []*domain.Recipe
	for rows.Next() {
		var m RecipeModel
		if err := rows.Scan(
			&m.Position, &m.ID, &m.Title, &m.CookingTime, &m.DifficultyLevel,
			&m.IsVegan, &m.Calories, &m.Creator, &m.NextIngredientID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, m.toDomain(ingredients[m.Position]))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipes: %w", err)
	}
	return recipes, nil
}

// readIngredients returns ingredient rows grouped by recipe position.
func readIngredients(db *sql.DB) (map[int][]*IngredientModel, error) {
	rows, err := db.Query(`SELECT ` + ingredientColumns + ` FROM ingredients ORDER BY recipe_position, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query ingredients: %w", err)
	}
	defer func() { _ = rows.Close() }()

	grouped := make(map[int][]*IngredientModel)
	for rows.Next() {
		var m IngredientModel
		if err := rows.Scan(&m.RecipePosition, &m.ID, &m.Name, &m.Quantity, &m.Weight, &m.IsOrganic); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		grouped[m.RecipePosition] = append(grouped[m.RecipePosition], &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ingredients: %w", err)
	}
	return grouped, nil
}
