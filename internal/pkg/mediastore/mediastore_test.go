package mediastore

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	return NewLocalStore(Config{
		Root:       t.TempDir(),
		PublicPath: "/media",
	})
}

func TestNewKeyKeepsExtensionAndFolder(t *testing.T) {
	key := NewKey("blog_images", "Photo Of Us.JPG")
	assert.True(t, strings.HasPrefix(key, "blog_images/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
	assert.NotContains(t, key, " ")

	// Keys must not collide for identical filenames.
	assert.NotEqual(t, key, NewKey("blog_images", "Photo Of Us.JPG"))
}

func TestLocalStoreSaveAndDelete(t *testing.T) {
	store := newTestStore(t)

	err := store.Save("gallery/2026/08/test.png", strings.NewReader("png-bytes"), "image/png")
	require.NoError(t, err)

	data, err := os.ReadFile(store.Path("gallery/2026/08/test.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, store.Delete("gallery/2026/08/test.png"))

	// Deleting a missing key is not an error.
	assert.NoError(t, store.Delete("gallery/2026/08/test.png"))
}

func TestLocalStoreURL(t *testing.T) {
	store := newTestStore(t)

	assert.Equal(t, "https://example.org/media/a/b.jpg", store.URL("a/b.jpg", "https://example.org"))
	assert.Equal(t, "https://example.org/media/a/b.jpg", store.URL("a/b.jpg", "https://example.org/"))
	assert.Equal(t, "/media/a/b.jpg", store.URL("a/b.jpg", ""))
}

func TestResolveURL(t *testing.T) {
	old := Default()
	SetDefault(newTestStore(t))
	t.Cleanup(func() { SetDefault(old) })

	assert.Nil(t, ResolveURL("", "https://example.org"))
	assert.Nil(t, ResolveURL("   ", "https://example.org"))

	got := ResolveURL("team/pic.jpg", "https://example.org")
	require.NotNil(t, got)
	assert.Equal(t, "https://example.org/media/team/pic.jpg", *got)
}
