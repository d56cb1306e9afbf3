package repository

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/recipebook/internal/domain"
	"github.com/zjrosen/recipebook/internal/testutil"
)

// newStandardRepo returns a repository holding Tacos (id 0), Pasta (id 1,
// vegan) and Lasagna (id 2).
func newStandardRepo(t *testing.T) (*Repository, *testutil.MemoryStore) {
	t.Helper()
	store := testutil.NewMemoryStore()
	repo := New(store)
	testutil.NewBuilder().WithStandardRecipes().BuildInto(repo)
	require.Equal(t, 3, repo.NumberOfRecipes())
	return repo, store
}

func titles(recipes []*domain.Recipe) []string {
	out := make([]string, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.Title)
	}
	return out
}

func TestRepository_Add_AssignsSequentialIDs(t *testing.T) {
	repo := New(testutil.NewMemoryStore())

	r := domain.NewRecipe("Tacos", 30, "Easy", 250, "Niall")
	r.ID = 99
	require.True(t, repo.Add(r))
	require.True(t, repo.Add(domain.NewRecipe("Pasta", 20, "Medium", 600, "Aoife")))

	assert.Equal(t, 0, r.ID, "caller-supplied id is overwritten")
	assert.Equal(t, "Pasta", repo.FindRecipe(1).Title)
	assert.Equal(t, 2, repo.NumberOfRecipes())
	assert.False(t, repo.Add(nil))
	assert.Equal(t, 2, repo.NumberOfRecipes())
}

func TestRepository_Add_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		repo := New(testutil.NewMemoryStore())
		n := rapid.IntRange(0, 30).Draw(rt, "n")
		for i := 0; i < n; i++ {
			before := repo.NumberOfRecipes()
			r := domain.NewRecipe(rapid.StringMatching(`[A-Za-z ]{1,12}`).Draw(rt, "title"), 10, "Easy", 100, "x")
			require.True(rt, repo.Add(r))
			require.Equal(rt, before+1, repo.NumberOfRecipes())
			require.Same(rt, r, repo.FindRecipe(r.ID))
		}
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, _ := newStandardRepo(t)

	assert.False(t, repo.Delete(-1))
	assert.False(t, repo.Delete(3))
	require.True(t, repo.Delete(1))
	assert.False(t, repo.Delete(1), "second delete of the same id must fail")
	assert.Nil(t, repo.FindRecipe(1))
	assert.Equal(t, 2, repo.NumberOfRecipes())

	// Ids are never reused after a delete.
	r := domain.NewRecipe("Curry", 45, "Medium", 700, "Sam")
	repo.Add(r)
	assert.Equal(t, 3, r.ID)
}

func TestRepository_UpdateRecipe_PreservesVeganAndIngredients(t *testing.T) {
	repo, _ := newStandardRepo(t)

	fields := domain.NewRecipe("Vegan Pasta", 25, "Easy", 550, "Ciara")
	fields.IsVegan = false
	require.True(t, repo.UpdateRecipe(1, fields))

	got := repo.FindRecipe(1)
	require.NotNil(t, got)
	assert.Equal(t, "Vegan Pasta", got.Title)
	assert.Equal(t, 25, got.CookingTime)
	assert.Equal(t, "Easy", got.DifficultyLevel)
	assert.Equal(t, 550, got.Calories)
	assert.Equal(t, "Ciara", got.Creator)
	assert.True(t, got.IsVegan, "update must not clear the vegan flag")
	assert.Equal(t, 2, got.NumberOfIngredients())
	assert.Equal(t, 1, got.ID)

	assert.False(t, repo.UpdateRecipe(42, fields))
	assert.False(t, repo.UpdateRecipe(0, nil))
}

func TestRepository_Counts(t *testing.T) {
	repo, _ := newStandardRepo(t)

	assert.Equal(t, 3, repo.NumberOfRecipes())
	assert.Equal(t, 1, repo.NumberOfVeganRecipes())
	assert.Equal(t, 2, repo.NumberOfNonVeganRecipes())
}

func TestRepository_Lists(t *testing.T) {
	empty := New(testutil.NewMemoryStore())
	assert.Equal(t, domain.NoRecipesMessage, empty.ListRecipes())
	assert.Equal(t, domain.NoVeganRecipesMessage, empty.ListVeganRecipes())
	assert.Equal(t, domain.NoNonVeganRecipesMessage, empty.ListNonVeganRecipes())

	repo, _ := newStandardRepo(t)
	all := repo.ListRecipes()
	assert.Contains(t, all, "Tacos")
	assert.Contains(t, all, "Pasta")
	assert.Contains(t, all, "Lasagna")

	vegan := repo.ListVeganRecipes()
	assert.Contains(t, vegan, "Pasta")
	assert.NotContains(t, vegan, "Tacos")

	nonVegan := repo.ListNonVeganRecipes()
	assert.Contains(t, nonVegan, "Tacos")
	assert.Contains(t, nonVegan, "Lasagna")
	assert.NotContains(t, nonVegan, "Recipe Title: Pasta")
}

func TestRepository_ListNonVegan_AllVegan(t *testing.T) {
	repo := New(testutil.NewMemoryStore())
	testutil.NewBuilder().WithRecipe("Salad", testutil.Vegan()).BuildInto(repo)

	assert.Equal(t, domain.NoNonVeganRecipesMessage, repo.ListNonVeganRecipes())
	assert.Contains(t, repo.ListVeganRecipes(), "Salad")
}

func TestRepository_MarkRecipeVegan(t *testing.T) {
	repo, _ := newStandardRepo(t)

	require.True(t, repo.MarkRecipeVegan(0))
	assert.True(t, repo.FindRecipe(0).IsVegan)
	assert.False(t, repo.MarkRecipeVegan(0), "already vegan")
	assert.False(t, repo.MarkRecipeVegan(1), "Pasta starts vegan")
	assert.False(t, repo.MarkRecipeVegan(-1))
	assert.False(t, repo.MarkRecipeVegan(3))
	assert.Equal(t, 2, repo.NumberOfVeganRecipes())
}

func TestRepository_MarkRecipeVegan_IsPositional(t *testing.T) {
	repo, _ := newStandardRepo(t)
	require.True(t, repo.Delete(0))

	// Lasagna (id 2) now sits at index 1.
	require.True(t, repo.MarkRecipeVegan(1))
	assert.True(t, repo.FindRecipe(2).IsVegan)
}

func TestRepository_IsValidIndex(t *testing.T) {
	repo, _ := newStandardRepo(t)

	assert.True(t, repo.IsValidIndex(0))
	assert.True(t, repo.IsValidIndex(2))
	assert.False(t, repo.IsValidIndex(3))
	assert.False(t, repo.IsValidIndex(-1))
}

func TestRepository_Recipes_IsSnapshot(t *testing.T) {
	repo, _ := newStandardRepo(t)

	snap := repo.Recipes()
	snap[0] = nil
	assert.NotNil(t, repo.FindRecipe(0))
	assert.Equal(t, []string{"Tacos", "Pasta", "Lasagna"}, titles(repo.Recipes()))
}

func TestRepository_Sorts(t *testing.T) {
	repo, _ := newStandardRepo(t)

	assert.Equal(t, []string{"Tacos", "Pasta", "Lasagna"}, titles(repo.SortedBy("calories", false)))
	assert.Equal(t, []string{"Lasagna", "Pasta", "Tacos"}, titles(repo.SortedBy("calories", true)))
	assert.Equal(t, []string{"Pasta", "Tacos", "Lasagna"}, titles(repo.SortedBy("time", false)))
	assert.Equal(t, []string{"Lasagna", "Tacos", "Pasta"}, titles(repo.SortedBy("time", true)))
	assert.Equal(t, []string{"Tacos", "Pasta", "Lasagna"}, titles(repo.SortedBy("", true)))

	asc := repo.SortByCaloriesAsc()
	assert.Less(t, strings.Index(asc, "Tacos"), strings.Index(asc, "Lasagna"))
	desc := repo.SortByCookingTimeDesc()
	assert.Less(t, strings.Index(desc, "Lasagna"), strings.Index(desc, "Pasta"))

	// Sorting never reorders the collection itself.
	assert.Equal(t, []string{"Tacos", "Pasta", "Lasagna"}, titles(repo.Recipes()))
}

func TestRepository_Sorts_Stable(t *testing.T) {
	repo := New(testutil.NewMemoryStore())
	testutil.NewBuilder().WithCalorieTies().BuildInto(repo)

	assert.Equal(t, []string{"Salad", "Soup A", "Soup B", "Stew"}, titles(repo.SortedBy("calories", false)))
	assert.Equal(t, []string{"Stew", "Soup A", "Soup B", "Salad"}, titles(repo.SortedBy("calories", true)))
	assert.Equal(t, []string{"Salad", "Soup A", "Soup B", "Stew"}, titles(repo.SortedBy("time", false)))
}

func TestRepository_Sorts_Empty(t *testing.T) {
	repo := New(testutil.NewMemoryStore())

	assert.Equal(t, domain.NoRecipesMessage, repo.SortByCaloriesAsc())
	assert.Equal(t, domain.NoRecipesMessage, repo.SortByCaloriesDesc())
	assert.Equal(t, domain.NoRecipesMessage, repo.SortByCookingTimeAsc())
	assert.Equal(t, domain.NoRecipesMessage, repo.SortByCookingTimeDesc())
}

func TestRepository_StoreAndLoad(t *testing.T) {
	repo, store := newStandardRepo(t)
	require.NoError(t, repo.Store())
	assert.Equal(t, 1, store.Writes)

	// Load replaces, never merges.
	repo.Add(domain.NewRecipe("Scratch", 1, "Easy", 1, "x"))
	require.NoError(t, repo.Load())
	assert.Equal(t, []string{"Tacos", "Pasta", "Lasagna"}, titles(repo.Recipes()))

	// Ingredient counters survive the round trip.
	tacos := repo.FindRecipe(0)
	require.NotNil(t, tacos)
	tacos.AddIngredient(domain.NewIngredient("Salsa", "1 jar", 300))
	assert.Equal(t, 2, tacos.FindIngredient(2).ID)
}

func TestRepository_Load_DoesNotResetCounter(t *testing.T) {
	repo, _ := newStandardRepo(t)
	require.NoError(t, repo.Store())

	repo.Add(domain.NewRecipe("Fourth", 1, "Easy", 1, "x"))
	require.NoError(t, repo.Load())
	next := domain.NewRecipe("Fifth", 1, "Easy", 1, "x")
	repo.Add(next)
	assert.Equal(t, 4, next.ID)
}

func TestRepository_Load_MissingStore(t *testing.T) {
	repo := New(testutil.NewMemoryStore())

	err := repo.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
	assert.Zero(t, repo.NumberOfRecipes())
}

func TestRepository_Store_PropagatesError(t *testing.T) {
	repo, store := newStandardRepo(t)
	store.WriteErr = &domain.EncodeError{Format: "yaml", Path: "r.yaml", Err: errors.New("disk full")}

	err := repo.Store()
	require.Error(t, err)

	var encErr *domain.EncodeError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, "yaml", encErr.Format)
}

func TestRepository_Load_KeepsCollectionOnError(t *testing.T) {
	repo, store := newStandardRepo(t)
	store.ReadErr = errors.New("corrupt")

	require.Error(t, repo.Load())
	assert.Equal(t, 3, repo.NumberOfRecipes())
}
