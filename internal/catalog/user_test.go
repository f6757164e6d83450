package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoadUserCatalogs(t *testing.T) {
	t.Run("missing dir is not an error", func(t *testing.T) {
		c := New()
		err := c.LoadUserCatalogs(filepath.Join(t.TempDir(), "absent"))
		require.NoError(t, err)
		assert.Len(t, c.Categories(), 5)
	})

	t.Run("loads and merges yaml files", func(t *testing.T) {
		dir := t.TempDir()
		writeCatalogFile(t, dir, "custom.yaml", `
categories:
  - key: podcast
    name: Podcast
    description: Audio shows
    subcategories: [interview, solo]
questions:
  podcast:
    interview:
      - "Who is the guest?"
templates:
  podcast:
    interview: "Plan an interview: {answers_summary}"
`)

		c := New()
		require.NoError(t, c.LoadUserCatalogs(dir))

		cat, ok := c.Category("podcast")
		require.True(t, ok)
		assert.Equal(t, []string{"interview", "solo"}, cat.Subcategories)

		qs, ok := c.Questions("podcast", "interview")
		require.True(t, ok)
		assert.Equal(t, []string{"Who is the guest?"}, qs)
	})

	t.Run("bad file is skipped, rest still load", func(t *testing.T) {
		dir := t.TempDir()
		writeCatalogFile(t, dir, "a_broken.yaml", "categories: [not: valid: yaml")
		writeCatalogFile(t, dir, "b_good.yaml", `
questions:
  code:
    web_app:
      - "Replacement question?"
`)

		c := New()
		require.NoError(t, c.LoadUserCatalogs(dir))

		qs, ok := c.Questions("code", "web_app")
		require.True(t, ok)
		assert.Equal(t, []string{"Replacement question?"}, qs)
	})

	t.Run("non-yaml files ignored", func(t *testing.T) {
		dir := t.TempDir()
		writeCatalogFile(t, dir, "notes.txt", "not a catalog")

		c := New()
		require.NoError(t, c.LoadUserCatalogs(dir))
		assert.Len(t, c.Categories(), 5)
	})
}

func TestSaveAndDeleteUserCatalog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "catalogs")
	uc := &UserCatalog{
		Categories: []Category{
			{Key: "design", Name: "Design", Subcategories: []string{"logo"}},
		},
		Questions: map[string]map[string][]string{
			"design": {"logo": {"What brand?"}},
		},
	}

	path, err := SaveUserCatalog(dir, "My Designs", uc)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "my_designs.yaml"), path)

	c := New()
	require.NoError(t, c.LoadUserCatalogs(dir))
	_, ok := c.Category("design")
	assert.True(t, ok)

	require.NoError(t, DeleteUserCatalog(dir, "My Designs"))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Deleting again is a no-op.
	assert.NoError(t, DeleteUserCatalog(dir, "My Designs"))
}

func TestLoadQuestionsFile(t *testing.T) {
	t.Run("one question per line", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "questions.txt")
		require.NoError(t, os.WriteFile(path, []byte("First?\n\n  Second?  \n"), 0644))

		qs, err := LoadQuestionsFile(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"First?", "Second?"}, qs)
	})

	t.Run("caps at the question limit", func(t *testing.T) {
		var content string
		for i := 0; i < MaxUserQuestions+20; i++ {
			content += "A question?\n"
		}
		path := filepath.Join(t.TempDir(), "many.txt")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		qs, err := LoadQuestionsFile(path)
		require.NoError(t, err)
		assert.Len(t, qs, MaxUserQuestions)
	})

	t.Run("empty file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.txt")
		require.NoError(t, os.WriteFile(path, []byte("\n\n"), 0644))

		_, err := LoadQuestionsFile(path)
		assert.Error(t, err)
	})
}
