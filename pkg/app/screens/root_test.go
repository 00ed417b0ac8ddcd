package screens

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devcircle/hub/pkg/data"
	"github.com/devcircle/hub/pkg/route"
	"github.com/devcircle/hub/pkg/site"
)

func newTestRoot() *RootScreen {
	return NewRootScreen(site.NewStatic(), nil, nil, "#/")
}

func TestNavigateSwitchesPageAndWritesHash(t *testing.T) {
	r := newTestRoot()

	_, cmd := r.Update(navigateMsg{page: route.Resources})
	assert.Equal(t, route.Resources, r.page)
	if cmd == nil {
		t.Fatal("Expected a hash-write command")
	}

	// The scheduled effect echoes back as a hash change; applying it is
	// idempotent for the page and updates the stored hash.
	msg := cmd()
	assert.Equal(t, hashChangedMsg{hash: "#/resources"}, msg)
	r.Update(msg)
	assert.Equal(t, route.Resources, r.page)
	assert.Equal(t, "#/resources", r.hash)
}

func TestHashChangeResolvesThroughCodec(t *testing.T) {
	r := newTestRoot()

	_, cmd := r.Update(hashChangedMsg{hash: "#/demos"})
	assert.Nil(t, cmd, "hash change carries no follow-up effect")
	assert.Equal(t, route.Demos, r.page)

	r.Update(hashChangedMsg{hash: "#/bogus"})
	assert.Equal(t, route.NotFound, r.page)
	assert.Contains(t, r.View(), "Page not found")
	assert.Contains(t, r.View(), "#/bogus")
}

func TestFetchSuccessReplacesDemos(t *testing.T) {
	r := newTestRoot()

	demos := []data.Demo{{Name: "A", Category: data.CategoryLive, LiveDemoURL: "https://a.example"}}
	r.Update(demosLoadedMsg{demos: demos})
	assert.Equal(t, demos, r.demos)

	r.Update(navigateMsg{page: route.Demos})
	view := r.View()
	live := strings.Index(view, "Live Collaborative Coding")
	a := strings.Index(view, "A")
	examples := strings.Index(view, "Example Demos")
	if live == -1 || a == -1 || examples == -1 {
		t.Fatalf("Missing headings or item in view: %q", view)
	}
	assert.Less(t, live, a, "item should render under the live heading")
	assert.Less(t, a, examples, "item should render before the example group")
}

func TestFetchFailureLeavesStateUnchanged(t *testing.T) {
	r := newTestRoot()

	demos := []data.Demo{{Name: "Kept", Category: data.CategoryExample}}
	r.Update(demosLoadedMsg{demos: demos})

	r.Update(demosLoadedMsg{err: errors.New("boom")})
	assert.Equal(t, demos, r.demos)

	r.Update(resourcesLoadedMsg{err: errors.New("boom")})
	assert.Empty(t, r.resources)
}

func TestNavigationIndependentOfFetchOrder(t *testing.T) {
	r := newTestRoot()

	// Navigate before any fetch has resolved.
	r.Update(navigateMsg{page: route.Resources})

	// A demos fetch landing while resources is shown still updates only the
	// demos list; the rendered body stays the resources view.
	r.Update(demosLoadedMsg{demos: []data.Demo{{Name: "Late demo", Category: data.CategoryLive}}})
	assert.Equal(t, route.Resources, r.page)
	assert.NotContains(t, r.View(), "Late demo")

	r.Update(resourcesLoadedMsg{resources: []data.Resource{{Name: "The Book", Category: data.CategoryBook}}})
	assert.Contains(t, r.View(), "The Book")
}

func TestCacheNeverClobbersFetchedList(t *testing.T) {
	r := newTestRoot()

	fetched := []data.Demo{{Name: "Fresh", Category: data.CategoryLive}}
	r.Update(demosLoadedMsg{demos: fetched})

	r.Update(cacheLoadedMsg{
		demos:     []data.Demo{{Name: "Stale", Category: data.CategoryLive}},
		resources: []data.Resource{{Name: "Cached resource", Category: data.CategoryBook}},
	})
	assert.Equal(t, fetched, r.demos, "cache must not replace a fetched list")
	assert.Len(t, r.resources, 1, "cache fills lists no fetch has replaced yet")
}

func TestHomeBodyIsEmpty(t *testing.T) {
	r := newTestRoot()
	assert.Empty(t, r.renderBody())
}

func TestPresentationLinkRendering(t *testing.T) {
	s := NewPresentationsScreen()
	s.SetItems([]data.Presentation{
		{Name: "Linked Talk", Category: "talk", Author: "Ana", URL: "https://example.org/t"},
		{Name: "Unlinked Talk", Category: "talk", Author: "Bo"},
	})

	view := s.View()
	assert.Contains(t, view, "https://example.org/t")

	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, "Unlinked Talk") {
			assert.NotContains(t, line, "(", "no href for an empty URL")
		}
	}
}

func TestHeaderAlwaysRendered(t *testing.T) {
	r := newTestRoot()
	for _, page := range append(route.Pages, route.NotFound) {
		r.page = page
		view := r.View()
		assert.Contains(t, view, "devcircle")
		assert.Contains(t, view, "github.com/devcircle")
		assert.Contains(t, view, "Demos")
		assert.Contains(t, view, "Resources")
		assert.Contains(t, view, "Presentations")
	}
}
