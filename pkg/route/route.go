// Package route maps URL hash fragments to pages. The site's links use
// fragments like "#/demos" as the only routing signal, so the TUI keeps the
// same codec to stay deep-linkable with the web version.
package route

// Page is one of the fixed set of views the app can display.
type Page int

const (
	Home Page = iota
	Demos
	Resources
	Presentations
	NotFound
)

// Pages lists the navigable pages in header order. NotFound is reachable
// only through an unmatched hash, so it is not listed.
var Pages = []Page{Home, Demos, Resources, Presentations}

var hashes = map[Page]string{
	Home:          "#/",
	Demos:         "#/demos",
	Resources:     "#/resources",
	Presentations: "#/presentations",
	NotFound:      "#/notfound",
}

var titles = map[Page]string{
	Home:          "Home",
	Demos:         "Demos",
	Resources:     "Resources",
	Presentations: "Presentations",
	NotFound:      "Not Found",
}

// HashToPage resolves a hash fragment to a page. Matching is exact: no
// prefixes, no trailing-slash tolerance. Anything unrecognized, including
// "#/notfound" itself, resolves to NotFound.
func HashToPage(hash string) Page {
	switch hash {
	case "#/":
		return Home
	case "#/demos":
		return Demos
	case "#/resources":
		return Resources
	case "#/presentations":
		return Presentations
	}
	return NotFound
}

// PageToHash is the inverse of HashToPage for the four real pages. NotFound
// maps to "#/notfound", so the round trip only holds for defined pages.
func PageToHash(page Page) string {
	if h, ok := hashes[page]; ok {
		return h
	}
	return hashes[NotFound]
}

func (p Page) Title() string {
	if t, ok := titles[p]; ok {
		return t
	}
	return titles[NotFound]
}

func (p Page) Hash() string {
	return PageToHash(p)
}
