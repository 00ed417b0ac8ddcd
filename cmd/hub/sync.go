package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Refresh the local content cache",
	Long:  "Fetch demos, resources and presentations from the site and rewrite the local cache",
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()
		defer logger.Sync()

		repo, err := openRepo()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer repo.Close()

		src := newSource(logger)

		// The three endpoints are independent; fetch them concurrently like
		// the TUI does at startup.
		g, ctx := errgroup.WithContext(cmd.Context())
		g.Go(func() error {
			demos, err := src.Demos(ctx)
			if err != nil {
				return fmt.Errorf("demos: %w", err)
			}
			return repo.ReplaceDemos(demos)
		})
		g.Go(func() error {
			resources, err := src.Resources(ctx)
			if err != nil {
				return fmt.Errorf("resources: %w", err)
			}
			return repo.ReplaceResources(resources)
		})
		g.Go(func() error {
			presentations, err := src.Presentations(ctx)
			if err != nil {
				return fmt.Errorf("presentations: %w", err)
			}
			return repo.ReplacePresentations(presentations)
		})

		if err := g.Wait(); err != nil {
			logger.Error("sync incomplete", zap.Error(err))
			cobra.CheckErr(err)
		}

		fmt.Println("Cache refreshed.")
	},
}
