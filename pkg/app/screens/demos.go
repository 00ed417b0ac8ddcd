package screens

import (
	"fmt"

	"github.com/devcircle/hub/pkg/app/components"
	"github.com/devcircle/hub/pkg/app/styles"
	"github.com/devcircle/hub/pkg/data"
)

// DemosScreen groups demos into the two sublists the site shows. Demos with
// any other category are not rendered.
type DemosScreen struct {
	list *components.SectionList
}

func NewDemosScreen() *DemosScreen {
	return &DemosScreen{list: components.NewSectionList()}
}

func (s *DemosScreen) SetItems(demos []data.Demo) {
	s.list.SetSections([]components.Section{
		{Title: "Live Collaborative Coding", Lines: demoLines(data.FilterDemos(demos, data.CategoryLive))},
		{Title: "Example Demos", Lines: demoLines(data.FilterDemos(demos, data.CategoryExample))},
	})
}

func demoLines(demos []data.Demo) []string {
	lines := make([]string, len(demos))
	for i, d := range demos {
		line := components.Link(d.Name, d.LiveDemoURL)
		if d.SourceCodeURL != "" {
			line += " " + styles.MutedStyle.Render(fmt.Sprintf("src: %s", d.SourceCodeURL))
		}
		lines[i] = line
	}
	return lines
}

func (s *DemosScreen) View() string {
	return s.list.View()
}
