package slugs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func neverTaken(string) (bool, error) { return false, nil }

func TestDerive(t *testing.T) {
	assert.Equal(t, "community-outreach-2026", Derive("Community Outreach 2026"))
	assert.Equal(t, "hello-world", Derive("  Hello,   World!  "))
	assert.Equal(t, "cafe-fundraiser", Derive("Café Fundraiser"))
}

func TestEnsureExplicitSlugPassesThrough(t *testing.T) {
	taken := func(string) (bool, error) { return true, nil }

	// Explicit slugs are never rewritten, even when they collide. The
	// unique index reports the conflict at insert time.
	got, err := Ensure(taken, "my-custom-slug", "Some Title")
	require.NoError(t, err)
	assert.Equal(t, "my-custom-slug", got)
}

func TestEnsureDerivesWhenNoExplicitSlug(t *testing.T) {
	got, err := Ensure(neverTaken, "", "Annual Report 2026")
	require.NoError(t, err)
	assert.Equal(t, "annual-report-2026", got)
}

func TestEnsureSuffixesDerivedCollisions(t *testing.T) {
	existing := map[string]bool{
		"spring-gala":   true,
		"spring-gala-2": true,
	}
	taken := func(s string) (bool, error) { return existing[s], nil }

	got, err := Ensure(taken, "", "Spring Gala")
	require.NoError(t, err)
	assert.Equal(t, "spring-gala-3", got)
}

func TestEnsureFailsOnUnsluggableTitle(t *testing.T) {
	_, err := Ensure(neverTaken, "", "!!!")
	assert.Error(t, err)
}
