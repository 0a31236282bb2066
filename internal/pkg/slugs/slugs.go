package slugs

import (
	"fmt"

	"github.com/gosimple/slug"
)

// Checker reports whether a slug is already taken for a given entity type.
// Repositories satisfy this with their SlugExists methods.
type Checker func(slug string) (bool, error)

// Derive produces a URL-safe slug from a human-readable title: lowercased,
// non-alphanumeric runs collapsed to single dashes, edges trimmed.
func Derive(title string) string {
	return slug.Make(title)
}

// Ensure resolves the slug to store for a new record. An explicit slug is
// returned untouched so a collision fails loudly at insert time instead of
// being silently rewritten. A derived slug gets a numeric suffix (-2, -3, …)
// until it is free; the unique index remains the final guard against races.
func Ensure(taken Checker, explicit, title string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	base := Derive(title)
	if base == "" {
		return "", fmt.Errorf("cannot derive slug from %q", title)
	}

	candidate := base
	for i := 2; ; i++ {
		exists, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
