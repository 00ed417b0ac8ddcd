package components

import (
	"strings"

	"github.com/devcircle/hub/pkg/app/styles"
)

// Section is one titled sublist in a page body.
type Section struct {
	Title string
	Lines []string
}

// SectionList renders titled sublists in order. Headings are always shown,
// even over an empty group, matching the site's layout.
type SectionList struct {
	Sections []Section
	Width    int
}

func NewSectionList() *SectionList {
	return &SectionList{Width: 80}
}

func (s *SectionList) SetSections(sections []Section) {
	s.Sections = sections
}

func (s *SectionList) View() string {
	var b strings.Builder
	for _, section := range s.Sections {
		b.WriteString(styles.HeadingStyle.Render(section.Title))
		b.WriteString("\n")
		if len(section.Lines) == 0 {
			b.WriteString(styles.MutedStyle.Render("  nothing here yet"))
			b.WriteString("\n")
			continue
		}
		for _, line := range section.Lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}
