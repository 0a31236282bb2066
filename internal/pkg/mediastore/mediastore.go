package mediastore

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store persists uploaded media and resolves stored keys to URLs. Keys are
// relative paths like "blog_images/2026/08/<uuid>.jpg".
type Store interface {
	// Save writes the object under key.
	Save(key string, r io.Reader, contentType string) error
	// Delete removes the object; deleting a missing key is not an error.
	Delete(key string) error
	// URL resolves a key to an absolute URL. baseURL is the request origin
	// and is only used by stores that serve media from the app itself.
	URL(key, baseURL string) string
}

var active Store

// Setup selects the configured store. Local disk is the default; S3 is used
// when MEDIA_DRIVER=s3.
func Setup() error {
	cfg := LoadConfig()
	switch cfg.Driver {
	case "s3":
		s, err := NewS3Store(cfg)
		if err != nil {
			return err
		}
		active = s
	default:
		active = NewLocalStore(cfg)
	}
	return nil
}

// Default returns the active store, initializing a local store on demand so
// tests and tools never hit a nil store.
func Default() Store {
	if active == nil {
		active = NewLocalStore(LoadConfig())
	}
	return active
}

// SetDefault swaps the active store. Used by tests.
func SetDefault(s Store) {
	active = s
}

// NewKey builds a collision-free object key under the given folder, keeping
// the original file extension.
func NewKey(folder, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s/%s%s", strings.Trim(folder, "/"), uuid.NewString(), ext)
}

// ResolveURL maps a stored media reference to an absolute URL, or nil when
// no file is stored. It never fails: an unresolvable reference degrades to
// nil rather than erroring a read.
func ResolveURL(key, baseURL string) *string {
	if strings.TrimSpace(key) == "" {
		return nil
	}
	u := Default().URL(key, baseURL)
	if u == "" {
		return nil
	}
	return &u
}
