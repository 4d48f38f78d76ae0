package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tavernkeep/internal/config"
	"tavernkeep/internal/ingest"
)

var importFull bool

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <backup.json>",
		Short: "Restore a journal backup written by export",
		Args:  cobra.ExactArgs(1),
		RunE:  runImport,
	}
	cmd.Flags().BoolVar(&importFull, "full", false, "Remove saved entries that are not in the backup")
	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Store.Driver == config.DriverNone || cfg.Store.Driver == config.DriverMemory {
		return fmt.Errorf("import needs a persistent data store, but the %q driver is configured", cfg.Store.Driver)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening backup: %w", err)
	}
	defer f.Close()

	backup, problems, err := ingest.ReadBackup(f)
	if err != nil {
		return err
	}

	ds, err := openDataStore(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("opening data store: %w", err)
	}
	defer ds.Close(ctx)

	result, err := ingest.Run(ctx, backup, ds, ingest.Options{Full: importFull})
	if err != nil {
		return err
	}
	result.Errors = append(problems, result.Errors...)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Import complete.")
	fmt.Fprintf(out, "  Entries saved:   %d\n", result.ThingsSaved)
	fmt.Fprintf(out, "  Entries skipped: %d\n", result.ThingsSkipped)
	fmt.Fprintf(out, "  Entries removed: %d\n", result.ThingsRemoved)
	fmt.Fprintf(out, "  Time restored:   %t\n", result.TimeRestored)

	if len(result.Errors) > 0 {
		fmt.Fprintf(out, "\nErrors (%d):\n", len(result.Errors))
		for _, item := range result.Errors {
			fmt.Fprintf(out, "  - %v\n", item)
		}
		return fmt.Errorf("import completed with errors")
	}

	return nil
}
