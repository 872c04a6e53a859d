// Package main implements vocab-import, the content-author tool that bulk
// loads vocabulary items from Excel or CSV files into the study database.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/palabras-app/study-api/internal/config"
	"github.com/palabras-app/study-api/internal/platform/database"
	"github.com/palabras-app/study-api/internal/platform/logger"
	"github.com/palabras-app/study-api/internal/platform/postgres"
	"github.com/palabras-app/study-api/internal/store"
)

func main() {
	opts := defaultImportOptions()

	rootCmd := &cobra.Command{
		Use:   "vocab-import --file vocab.xlsx",
		Short: "Import vocabulary items from an Excel or CSV file",
		Long: `vocab-import bulk loads vocab items into the study database.

Expected columns (in order): infinitive, part of speech, known language
code, learning language code, hint, user notes. Only the infinitive is
required. Rows that fail validation are reported and skipped; the rest
are imported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts)
		},
	}

	rootCmd.Flags().StringVar(&opts.FilePath, "file", "", "path to the .xlsx or .csv file (required)")
	rootCmd.Flags().StringVar(&opts.SheetName, "sheet", opts.SheetName, "Excel sheet to read")
	rootCmd.Flags().BoolVar(&opts.SkipHeader, "skip-header", opts.SkipHeader, "skip the first row")
	rootCmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "parse and validate without writing")
	if err := rootCmd.MarkFlagRequired("file"); err != nil {
		log.Fatalf("failed to mark flag required: %v", err)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runImport(opts importOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	db, dialect, err := database.Open(cfg, appLogger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			appLogger.Error("failed to close database", slog.String("error", cerr.Error()))
		}
	}()

	appLogger.Info("importing vocab items",
		slog.String("file", opts.FilePath),
		slog.String("dialect", dialect),
		slog.Bool("dry_run", opts.DryRun))

	// The whole file imports inside one transaction: a file-level failure
	// leaves the database untouched. Rows skipped for validation reasons do
	// not abort the import.
	var result *importResult
	err = store.RunInTransaction(logger.WithLogger(context.Background(), appLogger), db,
		func(ctx context.Context, tx *sql.Tx) error {
			vocabStore := postgres.NewSQLVocabStore(tx, appLogger)
			result, err = importVocab(ctx, vocabStore, opts)
			return err
		})
	if err != nil {
		return err
	}

	fmt.Printf("Processed %d rows: %d created, %d skipped\n",
		result.TotalProcessed, result.Created, result.Skipped)
	for _, e := range result.Errors {
		fmt.Printf("  %s\n", e)
	}

	if opts.DryRun {
		fmt.Println("Dry run: nothing was written.")
	}
	return nil
}
