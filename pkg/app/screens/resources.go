package screens

import (
	"github.com/devcircle/hub/pkg/app/components"
	"github.com/devcircle/hub/pkg/data"
)

// ResourcesScreen groups learning resources by category.
type ResourcesScreen struct {
	list *components.SectionList
}

func NewResourcesScreen() *ResourcesScreen {
	return &ResourcesScreen{list: components.NewSectionList()}
}

func (s *ResourcesScreen) SetItems(resources []data.Resource) {
	s.list.SetSections([]components.Section{
		{Title: "Books", Lines: resourceLines(data.FilterResources(resources, data.CategoryBook))},
		{Title: "Courses", Lines: resourceLines(data.FilterResources(resources, data.CategoryCourse))},
		{Title: "Community", Lines: resourceLines(data.FilterResources(resources, data.CategoryCommunity))},
	})
}

func resourceLines(resources []data.Resource) []string {
	lines := make([]string, len(resources))
	for i, r := range resources {
		lines[i] = components.Link(r.Name, r.URL)
	}
	return lines
}

func (s *ResourcesScreen) View() string {
	return s.list.View()
}
