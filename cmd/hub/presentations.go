package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/devcircle/hub/pkg/data"
)

var presentationsCmd = &cobra.Command{
	Use:   "presentations",
	Short: "List past presentations",
	Long:  "Display the community's past presentations in a table; an empty link column means no recording exists",
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()
		defer logger.Sync()

		presentations := loadPresentations(cmd.Context(), logger)
		if len(presentations) == 0 {
			printEmpty("presentations")
			return
		}

		columns := []table.Column{
			{Title: "Name", Width: 40},
			{Title: "Category", Width: 12},
			{Title: "Author", Width: 20},
			{Title: "Link", Width: 40},
		}

		rows := make([]table.Row, len(presentations))
		for i, p := range presentations {
			rows[i] = table.Row{
				truncateString(p.Name, 38),
				p.Category,
				truncateString(p.Author, 18),
				truncateString(p.URL, 38),
			}
		}

		fmt.Printf("\nPresentations (%d)\n\n", len(presentations))
		fmt.Println(renderTable(columns, rows))
	},
}

func loadPresentations(ctx context.Context, logger *zap.Logger) []data.Presentation {
	src := newSource(logger)
	presentations, err := src.Presentations(ctx)
	if err == nil {
		return presentations
	}
	logger.Warn("falling back to cache", zap.Error(err))

	repo, repoErr := openRepo()
	if repoErr != nil {
		return nil
	}
	defer repo.Close()
	presentations, _ = repo.ListPresentations()
	return presentations
}
