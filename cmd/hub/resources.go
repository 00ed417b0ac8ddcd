package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/devcircle/hub/pkg/data"
)

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "List learning resources",
	Long:  "Display the community's books, courses and community links in a table",
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()
		defer logger.Sync()

		resources := loadResources(cmd.Context(), logger)
		if len(resources) == 0 {
			printEmpty("resources")
			return
		}

		columns := []table.Column{
			{Title: "Name", Width: 40},
			{Title: "Category", Width: 12},
			{Title: "URL", Width: 46},
		}

		rows := make([]table.Row, len(resources))
		for i, r := range resources {
			rows[i] = table.Row{
				truncateString(r.Name, 38),
				r.Category,
				truncateString(r.URL, 44),
			}
		}

		fmt.Printf("\nLearning resources (%d)\n\n", len(resources))
		fmt.Println(renderTable(columns, rows))
	},
}

func loadResources(ctx context.Context, logger *zap.Logger) []data.Resource {
	src := newSource(logger)
	resources, err := src.Resources(ctx)
	if err == nil {
		return resources
	}
	logger.Warn("falling back to cache", zap.Error(err))

	repo, repoErr := openRepo()
	if repoErr != nil {
		return nil
	}
	defer repo.Close()
	resources, _ = repo.ListResources()
	return resources
}
