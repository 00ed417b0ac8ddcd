package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/devcircle/hub/pkg/data"
)

var demosCmd = &cobra.Command{
	Use:   "demos",
	Short: "List community demos",
	Long:  "Display the community's live coding sessions and example demos in a table",
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()
		defer logger.Sync()

		demos := loadDemos(cmd.Context(), logger)
		if len(demos) == 0 {
			printEmpty("demos")
			return
		}

		columns := []table.Column{
			{Title: "Name", Width: 36},
			{Title: "Category", Width: 10},
			{Title: "Live Demo", Width: 36},
			{Title: "Source", Width: 36},
		}

		rows := make([]table.Row, len(demos))
		for i, d := range demos {
			rows[i] = table.Row{
				truncateString(d.Name, 34),
				d.Category,
				truncateString(d.LiveDemoURL, 34),
				truncateString(d.SourceCodeURL, 34),
			}
		}

		fmt.Printf("\nDemos (%d)\n\n", len(demos))
		fmt.Println(renderTable(columns, rows))
	},
}

// loadDemos prefers the live API and falls back to the local cache when the
// fetch fails. A failed fetch is logged, never fatal.
func loadDemos(ctx context.Context, logger *zap.Logger) []data.Demo {
	src := newSource(logger)
	demos, err := src.Demos(ctx)
	if err == nil {
		return demos
	}
	logger.Warn("falling back to cache", zap.Error(err))

	repo, repoErr := openRepo()
	if repoErr != nil {
		return nil
	}
	defer repo.Close()
	demos, _ = repo.ListDemos()
	return demos
}
