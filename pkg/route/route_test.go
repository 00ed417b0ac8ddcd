package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashToPage(t *testing.T) {
	assert.Equal(t, Home, HashToPage("#/"))
	assert.Equal(t, Demos, HashToPage("#/demos"))
	assert.Equal(t, Resources, HashToPage("#/resources"))
	assert.Equal(t, Presentations, HashToPage("#/presentations"))
}

func TestHashToPageUnmatched(t *testing.T) {
	for _, hash := range []string{
		"",
		"#",
		"#/demo",
		"#/demos/",
		"#/demos/123",
		"#/DEMOS",
		"/demos",
		"#/notfound",
		"#/garbage",
	} {
		assert.Equal(t, NotFound, HashToPage(hash), "hash %q", hash)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, page := range Pages {
		assert.Equal(t, page, HashToPage(PageToHash(page)))
	}
	for _, hash := range []string{"#/", "#/demos", "#/resources", "#/presentations"} {
		assert.Equal(t, hash, PageToHash(HashToPage(hash)))
	}
}

func TestNotFoundHash(t *testing.T) {
	// Arbitrary hashes collapse to the single notfound hash, so NotFound is
	// not a fixed point of hash -> page -> hash.
	assert.Equal(t, "#/notfound", PageToHash(NotFound))
	assert.Equal(t, "#/notfound", PageToHash(Page(99)))
	assert.Equal(t, NotFound, HashToPage(PageToHash(NotFound)))
}

func TestTitles(t *testing.T) {
	assert.Equal(t, "Home", Home.Title())
	assert.Equal(t, "Presentations", Presentations.Title())
	assert.Equal(t, "Not Found", Page(99).Title())
}
