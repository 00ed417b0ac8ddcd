package screens

import (
	"fmt"

	"github.com/devcircle/hub/pkg/app/styles"
)

func notFoundView(hash string) string {
	return fmt.Sprintf(
		"%s\n%s",
		styles.ErrorStyle.Render("Page not found"),
		styles.MutedStyle.Render(fmt.Sprintf("no page matches %q — press 1 for home", hash)),
	)
}
