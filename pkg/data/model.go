package data

// Demo categories used by the site. The backend does not enforce these;
// anything else is simply never shown.
const (
	CategoryLive    = "live"
	CategoryExample = "example"
)

// Resource categories.
const (
	CategoryBook      = "book"
	CategoryCourse    = "course"
	CategoryCommunity = "community"
)

type Demo struct {
	Name          string
	Category      string // "live" or "example"
	LiveDemoURL   string
	SourceCodeURL string
}

type Resource struct {
	Name     string
	Category string // "book", "course" or "community"
	URL      string
}

type Presentation struct {
	Name     string
	Category string
	Author   string
	URL      string // empty means no recording/slides link
}

// FilterDemos returns the demos whose category matches, preserving the
// original relative order.
func FilterDemos(demos []Demo, category string) []Demo {
	var out []Demo
	for _, d := range demos {
		if d.Category == category {
			out = append(out, d)
		}
	}
	return out
}

// FilterResources returns the resources whose category matches, preserving
// the original relative order.
func FilterResources(resources []Resource, category string) []Resource {
	var out []Resource
	for _, r := range resources {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}
