package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	s := NewCategoryStore(filepath.Join(t.TempDir(), "categories.yaml"))
	categories, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	s := NewCategoryStore(path)

	in := []Category{
		{Name: "Food", Budget: decimal.NewFromInt(400)},
		{Name: "Transport"},
	}
	require.NoError(t, s.Save(in))

	out, err := s.Load()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Food", out[0].Name)
	assert.True(t, decimal.NewFromInt(400).Equal(out[0].Budget))
	assert.Equal(t, "Transport", out[1].Name)
	assert.True(t, out[1].Budget.IsZero())
}

func TestLoadSortsByName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	content := `categories:
  - name: Transport
  - name: Food
  - name: Groceries
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	categories, err := NewCategoryStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"Food", "Groceries", "Transport"}, Names(categories))
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: {broken"), 0o600))

	_, err := NewCategoryStore(path).Load()
	assert.Error(t, err)
}

func TestSuggest(t *testing.T) {
	known := []string{"Food", "Transport", "Groceries"}

	got, ok := Suggest("Groc", known)
	assert.True(t, ok)
	assert.Equal(t, "Groceries", got)

	got, ok = Suggest("food", known)
	assert.True(t, ok)
	assert.Equal(t, "Food", got)

	got, ok = Suggest("Transprt", known)
	assert.True(t, ok)
	assert.Equal(t, "Transport", got)

	_, ok = Suggest("xyzzy", known)
	assert.False(t, ok)

	_, ok = Suggest("", known)
	assert.False(t, ok)

	_, ok = Suggest("Food", nil)
	assert.False(t, ok)
}
