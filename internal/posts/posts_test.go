package posts

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wrappedIndex = `{
  "posts": [
    {"slug": "blue-in-green", "title": "Blue in Green", "date": "2024-03-05", "category": "Jazz", "snippet": "Voicings."},
    {"slug": "clair-de-lune", "title": "Clair de Lune", "date": "2023-11-20", "category": "classical", "snippet": "Rubato."},
    {"slug": "so-what", "title": "So What", "date": "2024-06-01", "category": "jazz", "snippet": "Modes."}
  ]
}`

const bareIndex = `[
  {"slug": "gymnopedie", "title": "Gymnopédie No. 1", "date": "2022-01-15", "category": "Classical", "snippet": "Space."}
]`

func writeSource(t *testing.T, index string, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, IndexFile), []byte(index), 0o600))
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("x"), 0o600))
	}
	return dir
}

func TestParse(t *testing.T) {
	t.Run("wrapped", func(t *testing.T) {
		entries, err := Parse([]byte(wrappedIndex))
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "blue-in-green", entries[0].Slug)
		assert.Equal(t, "Jazz", entries[0].Category)
	})

	t.Run("bare array", func(t *testing.T) {
		entries, err := Parse([]byte("\n  " + bareIndex))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Gymnopédie No. 1", entries[0].Title)
	})

	t.Run("empty object", func(t *testing.T) {
		entries, err := Parse([]byte(`{}`))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := Parse([]byte(`{"posts": [`))
		assert.Error(t, err)
	})
}

func TestQuery_Apply(t *testing.T) {
	entries, err := Parse([]byte(wrappedIndex))
	require.NoError(t, err)

	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{"newest first", Query{}, []string{"so-what", "blue-in-green", "clair-de-lune"}},
		{"category is case-insensitive", Query{Category: "JAZZ"}, []string{"so-what", "blue-in-green"}},
		{"limit", Query{Limit: 1}, []string{"so-what"}},
		{"zero limit means all", Query{Limit: 0}, []string{"so-what", "blue-in-green", "clair-de-lune"}},
		{"negative limit means all", Query{Limit: -2}, []string{"so-what", "blue-in-green", "clair-de-lune"}},
		{"unknown category", Query{Category: "metal"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, e := range tt.query.Apply(entries) {
				got = append(got, e.Slug)
			}
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "blue-in-green", entries[0].Slug, "Apply must not reorder its input")
}

func TestCategories(t *testing.T) {
	entries, err := Parse([]byte(wrappedIndex))
	require.NoError(t, err)

	cats := Categories(entries)

	assert.Equal(t, []string{"classical", "jazz"}, cats)
	assert.Equal(t, "classical", NextCategory(cats, ""))
	assert.Equal(t, "jazz", NextCategory(cats, "Classical"))
	assert.Equal(t, "", NextCategory(cats, "jazz"))
	assert.Equal(t, "", NextCategory(cats, "metal"))
	assert.Equal(t, "", NextCategory(nil, ""))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Mar 5, 2024", FormatDate("2024-03-05"))
	assert.Equal(t, "Dec 31, 1999", FormatDate("1999-12-31"))
	assert.Equal(t, "soon", FormatDate("soon"))
}

func TestRelative(t *testing.T) {
	now := time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "3 days ago", Relative("2024-03-05", now))
	assert.Equal(t, "", Relative("not a date", now))
}

func TestLoadAll(t *testing.T) {
	a := writeSource(t, wrappedIndex)
	b := writeSource(t, bareIndex)

	entries, err := LoadAll(context.Background(), []string{a, b})

	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, a, entries[0].Dir)
	assert.Equal(t, b, entries[3].Dir)
	assert.Equal(t, "gymnopedie", entries[3].Slug)
}

func TestLoadAll_FailureFailsAll(t *testing.T) {
	a := writeSource(t, wrappedIndex)
	missing := filepath.Join(t.TempDir(), "nowhere")

	entries, err := LoadAll(context.Background(), []string{a, missing})

	require.Error(t, err)
	assert.Nil(t, entries)
}

func TestLoadAll_NoSources(t *testing.T) {
	entries, err := LoadAll(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEntry_Path(t *testing.T) {
	dir := writeSource(t, bareIndex, "gymnopedie.md", "both.html", "both.md")

	p, err := Entry{Slug: "gymnopedie", Dir: dir}.Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "gymnopedie.md"), p)

	p, err = Entry{Slug: "both", Dir: dir}.Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "both.html"), p, "HTML wins over Markdown")

	_, err = Entry{Slug: "ghost", Dir: dir}.Path()
	assert.ErrorIs(t, err, ErrPostNotFound)
}
