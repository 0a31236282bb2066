package main

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The swagger middleware serves this document verbatim, so a broken one
// ships straight to consumers. Validate it the same way a client would.
func TestOpenAPIDocumentIsValid(t *testing.T) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile("public/docs/v1/openapi.yml")
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))

	assert.Equal(t, "Pleroma Springs Content API", doc.Info.Title)

	for _, path := range []string{
		"/categories", "/posts", "/posts/{slug}", "/events",
		"/resources", "/team-members", "/gallery-items",
		"/impact-stats", "/stories",
		"/contact", "/subscribe", "/volunteer", "/partner",
	} {
		assert.NotNil(t, doc.Paths.Find(path), "path %s missing from document", path)
	}
}
