package mediastore

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore writes media to a directory the app serves as static files.
type LocalStore struct {
	root       string
	publicPath string
}

func NewLocalStore(cfg Config) *LocalStore {
	return &LocalStore{
		root:       cfg.Root,
		publicPath: strings.TrimSuffix(cfg.PublicPath, "/"),
	}
}

func (s *LocalStore) Save(key string, r io.Reader, _ string) error {
	path := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(f, r)
	return err
}

func (s *LocalStore) Delete(key string) error {
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(key)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// URL joins the request origin with the public media path. Without a known
// origin the relative path is returned, which is still resolvable by the
// frontend.
func (s *LocalStore) URL(key, baseURL string) string {
	rel := s.publicPath + "/" + strings.TrimPrefix(key, "/")
	if baseURL == "" {
		return rel
	}
	return strings.TrimSuffix(baseURL, "/") + rel
}

// Path returns the on-disk location for a stored key.
func (s *LocalStore) Path(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(key))
}
