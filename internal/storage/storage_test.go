package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/recipebook/internal/domain"
	"github.com/zjrosen/recipebook/internal/infrastructure/filestore"
	"github.com/zjrosen/recipebook/internal/infrastructure/sqlite"
	"github.com/zjrosen/recipebook/internal/testutil"
)

func TestNew_SelectsBackend(t *testing.T) {
	dir := t.TempDir()

	for _, format := range []string{"yaml", "YML", " xml ", "json"} {
		store, err := New(format, filepath.Join(dir, "r"))
		require.NoError(t, err, format)
		fs, ok := store.(*filestore.Store)
		require.True(t, ok, format)
		assert.Equal(t, Normalize(format), fs.Format())
	}

	store, err := New("sqlite", filepath.Join(dir, "r.db"))
	require.NoError(t, err)
	_, ok := store.(*sqlite.RecipeStore)
	assert.True(t, ok)
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New("toml", "recipes.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"toml"`)
	assert.Contains(t, err.Error(), "yaml, xml, json, sqlite")
}

func TestIsSupported(t *testing.T) {
	for _, f := range Formats() {
		assert.True(t, IsSupported(f), f)
	}
	assert.True(t, IsSupported("yml"))
	assert.False(t, IsSupported(""))
	assert.False(t, IsSupported("csv"))
}

// Every backend honours the same contract.
func TestBackends_SameSemantics(t *testing.T) {
	for _, format := range Formats() {
		t.Run(format, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "recipes."+format)
			store, err := New(format, path)
			require.NoError(t, err)

			_, err = store.Read()
			require.ErrorIs(t, err, domain.ErrStoreNotFound)

			want := testutil.NewBuilder().WithStandardRecipes().Build()
			for i, r := range want {
				r.ID = i * 10
			}
			require.NoError(t, store.Write(want))

			got, err := store.Read()
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}
