// Package cmd provides the hub command line. Configuration follows the usual
// precedence: flags over HUB_* environment variables over a .hub.yml file.
package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/devcircle/hub/pkg/app"
	"github.com/devcircle/hub/pkg/data"
	"github.com/devcircle/hub/pkg/site"
)

var rootCmd = &cobra.Command{
	Use:   "hub",
	Short: "Browse the devcircle community site from your terminal",
	Long:  "A terminal client for the devcircle community site: demos, learning resources and presentations, with an offline cache",
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()
		defer logger.Sync()

		repo, err := openRepo()
		if err != nil {
			// The cache is a convenience; the browser works without it.
			logger.Warn("cache unavailable", zap.Error(err))
		}
		if repo != nil {
			defer repo.Close()
		}

		a := app.New(newSource(logger), repo, logger, viper.GetString("route"))
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("api", site.DefaultBaseURL, "base URL of the community site API")
	rootCmd.PersistentFlags().String("cache", "", "path to the content cache (default ~/.hub/cache.db)")
	rootCmd.PersistentFlags().Bool("offline", false, "use the built-in content instead of the API")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.Flags().String("route", "#/", "initial route hash, e.g. \"#/demos\"")

	viper.BindPFlag("api.base_url", rootCmd.PersistentFlags().Lookup("api"))
	viper.BindPFlag("cache.path", rootCmd.PersistentFlags().Lookup("cache"))
	viper.BindPFlag("offline", rootCmd.PersistentFlags().Lookup("offline"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("route", rootCmd.Flags().Lookup("route"))

	rootCmd.AddCommand(demosCmd)
	rootCmd.AddCommand(resourcesCmd)
	rootCmd.AddCommand(presentationsCmd)
	rootCmd.AddCommand(syncCmd)
}

func initConfig() {
	viper.SetConfigName(".hub")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}

	viper.SetEnvPrefix("HUB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// Missing config file is fine; flags and env cover everything.
	_ = viper.ReadInConfig()
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	if level, err := zap.ParseAtomicLevel(viper.GetString("log-level")); err == nil {
		config.Level = level
	}
	// Logs share the terminal with the TUI, so keep them on stderr.
	config.OutputPaths = []string{"stderr"}
	logger, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func newSource(logger *zap.Logger) site.Source {
	if viper.GetBool("offline") {
		return site.NewStatic()
	}
	return site.NewClient(viper.GetString("api.base_url"), logger)
}

func openRepo() (*data.Repository, error) {
	path := viper.GetString("cache.path")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir := filepath.Join(home, ".hub")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "cache.db")
	}
	return data.NewRepository(path)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
