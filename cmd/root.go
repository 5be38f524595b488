package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/briantroy/rigor/core/config"
	"github.com/briantroy/rigor/core/logger"
	"github.com/briantroy/rigor/core/storage"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "rigor",
	Short: "Object storage client",
	Long: `rigor is a thin client for S3-compatible object storage.
It exposes get, put, delete and list against one configured bucket,
through either the AWS SDK or the MinIO SDK backend.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format so CLI errors stay readable
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

// newClient loads config, builds the logger and constructs the storage
// client shared by every subcommand.
func newClient(ctx context.Context) (storage.Client, *zap.Logger, error) {
	cfg, values, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logg = logger.WithRunID(logg)

	client, err := storage.New(ctx, cfg.Storage, values, logg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return client, logg, nil
}
