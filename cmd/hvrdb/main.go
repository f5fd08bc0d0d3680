package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hvrdb/internal/config"
	"hvrdb/internal/logger"
	"hvrdb/internal/runner"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:          "hvrdb",
		Short:        "Gift-card store directory batches",
		Long:         `Downloads the hvr store directories, joins branches with their chains, repairs duplicate coordinates and writes category-bounded batches for map import`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./configs", "directory containing hvrdb.yaml")

	rootCmd.AddCommand(createFetchCmd())
	rootCmd.AddCommand(createBuildCmd())
	rootCmd.AddCommand(createRunCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadRunner() (*runner.Runner, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	logger.Setup(cfg.LogLevel)
	return runner.New(cfg, log.Logger), nil
}

// createFetchCmd creates the command downloading upstream datasets
func createFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Download the upstream datasets into the data directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRunner()
			if err != nil {
				return err
			}
			if err := r.Fetch(cmd.Context()); err != nil {
				log.Error().Err(err).Msg("fetch failed")
				return err
			}
			return nil
		},
	}
}

// createBuildCmd creates the command turning downloaded datasets into batches
func createBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build output batches from the downloaded datasets",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRunner()
			if err != nil {
				return err
			}
			batches, err := r.Build(cmd.Context())
			if err != nil {
				log.Error().Err(err).Msg("build failed")
				return err
			}
			log.Info().Int("batches", len(batches)).Msg("build finished")
			return nil
		},
	}
}

// createRunCmd creates the command running fetch and build in sequence
func createRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Fetch the datasets and build batches",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRunner()
			if err != nil {
				return err
			}
			if err := r.Fetch(cmd.Context()); err != nil {
				log.Error().Err(err).Msg("fetch failed")
				return err
			}
			batches, err := r.Build(cmd.Context())
			if err != nil {
				log.Error().Err(err).Msg("build failed")
				return err
			}
			log.Info().Int("batches", len(batches)).Msg("run finished")
			return nil
		},
	}
}
