package components

import (
	"fmt"

	"github.com/devcircle/hub/pkg/app/styles"
)

// Link renders a name with its URL. An empty URL means "no link": the name
// comes back as inert text with no address attached.
func Link(name, url string) string {
	if url == "" {
		return styles.TextStyle.Render(name)
	}
	return fmt.Sprintf("%s %s", styles.LinkStyle.Render(name), styles.MutedStyle.Render("("+url+")"))
}
