package content

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "Rifqi Dwi Putra", c.Profile.Name)
	assert.Len(t, c.Stats, StatCount)
	assert.Len(t, c.Socials, 3)
	assert.Len(t, c.ContactCards, 3)
	assert.NotEmpty(t, c.Notices.Availability)
	assert.NotEmpty(t, c.CTA.Button)
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()

	t.Run("empty path serves the embedded default", func(t *testing.T) {
		c, err := Load(fs, "")
		require.NoError(t, err)
		assert.Equal(t, Default(), c)
	})

	t.Run("reads and validates a file", func(t *testing.T) {
		data := strings.Replace(string(defaultYAML), "Rifqi Dwi Putra", "Ana Lima", 1)
		require.NoError(t, afero.WriteFile(fs, "/site/content.yaml", []byte(data), 0o644))

		c, err := Load(fs, "/site/content.yaml")
		require.NoError(t, err)
		assert.Equal(t, "Ana Lima", c.Profile.Name)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(fs, "/nope.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "/nope.yaml")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fs, "/bad.yaml", []byte("profile: [unterminated"), 0o644))
		_, err := Load(fs, "/bad.yaml")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalid)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Content)
	}{
		{"missing name", func(c *Content) { c.Profile.Name = "" }},
		{"two stats", func(c *Content) { c.Stats = c.Stats[:2] }},
		{"four stats", func(c *Content) { c.Stats = append(c.Stats, c.Stats[0]) }},
		{"bad social link", func(c *Content) { c.Socials[0].Href = "not a url" }},
		{"no contact cards", func(c *Content) { c.ContactCards = nil }},
		{"stat without label", func(c *Content) { c.Stats[1].Label = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}

	assert.NoError(t, Default().Validate())
}

func TestStore_Reload(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/content.yaml", defaultYAML, 0o644))

	store, err := NewStore(fs, "/content.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/content.yaml", store.Path())

	before := store.Get()

	updated := strings.Replace(string(defaultYAML), "Rifqi Dwi Putra", "Ana Lima", 1)
	require.NoError(t, afero.WriteFile(fs, "/content.yaml", []byte(updated), 0o644))
	require.NoError(t, store.Reload())
	assert.Equal(t, "Ana Lima", store.Get().Profile.Name)
	assert.NotSame(t, before, store.Get(), "reloading swaps in a new value")
	assert.Equal(t, "Rifqi Dwi Putra", before.Profile.Name, "readers holding the old value are unaffected")

	require.NoError(t, afero.WriteFile(fs, "/content.yaml", []byte("stats: []"), 0o644))
	assert.Error(t, store.Reload())
	assert.Equal(t, "Ana Lima", store.Get().Profile.Name, "a broken file keeps the previous content")
}

func TestStore_Watch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(path, defaultYAML, 0o644))

	store, err := NewStore(afero.NewOsFs(), path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, store.Watch(ctx))

	updated := strings.Replace(string(defaultYAML), "Rifqi Dwi Putra", "Ana Lima", 1)
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	assert.Eventually(t, func() bool {
		return store.Get().Profile.Name == "Ana Lima"
	}, 2*time.Second, 20*time.Millisecond)

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, "Ana Lima", store.Get().Profile.Name)
}

func TestStore_WatchEmbedded(t *testing.T) {
	store, err := NewStore(afero.NewMemMapFs(), "")
	require.NoError(t, err)
	assert.NoError(t, store.Watch(context.Background()))
}
