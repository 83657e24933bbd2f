package main

import (
	"context"
	"fmt"
	"os"

	"github.com/autohandel/backoffice/internal/backoffice"
	"github.com/autohandel/backoffice/internal/config"
	"github.com/autohandel/backoffice/internal/database"
	"github.com/autohandel/backoffice/pkg/logger"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var overwrite bool
	root := &cobra.Command{
		Use:   "seed",
		Short: "Write the demo vehicles, staff, documents and reminders into storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			written, err := run(cmd.Context(), overwrite)
			if err != nil {
				return err
			}
			if len(written) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to seed; rerun with --overwrite to replace existing data")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d collections: %v\n", len(written), written)
			return nil
		},
	}
	root.Flags().BoolVar(&overwrite, "overwrite", false, "replace collections that already hold records")
	return root
}

func run(ctx context.Context, overwrite bool) ([]string, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.LogLevel)

	stores, err := database.OpenStores(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	defer stores.Close()

	if !stores.KV.HasPrimary() {
		logger.Warnf("seeding the local store only (%s)", cfg.Storage.FallbackPath)
	}
	return backoffice.NewService(stores.KV).PersistSeeds(ctx, overwrite), nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
