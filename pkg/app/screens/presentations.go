package screens

import (
	"fmt"
	"strings"

	"github.com/devcircle/hub/pkg/app/components"
	"github.com/devcircle/hub/pkg/app/styles"
	"github.com/devcircle/hub/pkg/data"
)

// PresentationsScreen is a flat list in state order. A presentation without a
// URL shows its name as plain text.
type PresentationsScreen struct {
	items []data.Presentation
}

func NewPresentationsScreen() *PresentationsScreen {
	return &PresentationsScreen{}
}

func (s *PresentationsScreen) SetItems(presentations []data.Presentation) {
	s.items = presentations
}

func (s *PresentationsScreen) View() string {
	var b strings.Builder
	for _, p := range s.items {
		b.WriteString(fmt.Sprintf(
			"%s %s %s\n",
			styles.TagStyle.Render(p.Category),
			components.Link(p.Name, p.URL),
			styles.MutedStyle.Render("— "+p.Author),
		))
	}
	return b.String()
}
