package main

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gulfbridge/leads-cli/internal/export"
	"github.com/gulfbridge/leads-cli/internal/ingest"
	"github.com/gulfbridge/leads-cli/internal/model"
	"github.com/gulfbridge/leads-cli/internal/pipeline"
)

var (
	mergeOutput string
	mergeFormat string
	mergeDryRun bool
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge, clean, and deduplicate raw portal drops into one lead list",
	Long: `Sweeps raw/<source>/*.csv drops from every configured portal, cleans each
record, suppresses exact duplicates, merges records that share an identity
(normalized name plus email or phone), and writes the deduplicated list.

Zero raw records is not an error: it means every scraper failed, which is
surfaced as a warning and no output file is written.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		result, err := runMerge(cmd.Context())
		if err != nil {
			return err
		}
		if result == nil {
			return nil // nothing ingested; already logged
		}
		zap.L().Info("merge complete",
			zap.Int("raw_rows", result.RawRows),
			zap.Int("output_rows", result.OutputRows),
			zap.Int("dropped", result.Dropped),
			zap.Int("exact_duplicates", result.ExactDuplicates),
			zap.String("output", result.OutputPath),
		)
		return nil
	},
}

func init() {
	mergeCmd.Flags().StringVar(&mergeOutput, "output", "", "output file path (default: <output_dir>/uae_oil_companies.csv)")
	mergeCmd.Flags().StringVar(&mergeFormat, "format", "csv", "output format: csv, xlsx, or both")
	mergeCmd.Flags().BoolVar(&mergeDryRun, "dry-run", false, "run the pipeline but write no files and record no run")
	rootCmd.AddCommand(mergeCmd)
}

// runMerge executes one full merge pass. It returns nil without error when
// no raw records were available.
func runMerge(ctx context.Context) (*model.RunResult, error) {
	reg, err := ingest.LoadRegistry(cfg.Paths.SourcesYML)
	if err != nil {
		return nil, err
	}

	// Sweep producers in registry order; ingestion order is a correctness
	// input to the pipeline (synthetic keys, first-occurrence dedup), so
	// this stays sequential.
	var records []model.Record
	for _, p := range reg.Producers(cfg.Paths.RawDir, cfg.Fetch.Charset) {
		batch, err := p.Produce(ctx)
		if err != nil {
			return nil, err
		}
		records = append(records, batch...)
	}

	if len(records) == 0 {
		zap.L().Warn("no raw CSV drops found; all scrapers may have failed",
			zap.String("raw_dir", cfg.Paths.RawDir),
		)
		return nil, nil
	}

	codes, err := ingest.LoadExpectedCodes(cfg.Codes.File)
	if err != nil {
		return nil, err
	}

	res := pipeline.Run(records, codes)
	pipeline.LogDiagnostics(res)

	result := &model.RunResult{
		RawRows:         len(records),
		OutputRows:      len(res.Rows),
		Dropped:         res.Dropped,
		ExactDuplicates: res.ExactDuplicates,
		SourceCounts:    res.SourceCounts,
		MissingCodes:    res.MissingCodes,
	}

	if mergeDryRun {
		return result, nil
	}

	outPath := mergeOutput
	if outPath == "" {
		outPath = filepath.Join(cfg.Paths.OutputDir, "uae_oil_companies.csv")
	}
	result.OutputPath = outPath

	st, err := initStore(ctx)
	if err != nil {
		return nil, err
	}
	defer st.Close() //nolint:errcheck
	if err := st.Migrate(ctx); err != nil {
		return nil, err
	}

	run, err := st.CreateRun(ctx)
	if err != nil {
		return nil, err
	}

	if err := writeOutputs(res.Rows, outPath, mergeFormat); err != nil {
		if failErr := st.FailRun(ctx, run.ID, err.Error()); failErr != nil {
			zap.L().Error("record failed run", zap.Error(failErr))
		}
		return nil, err
	}

	if _, err := st.InsertLeads(ctx, run.ID, res.Rows); err != nil {
		zap.L().Warn("persist lead snapshot failed", zap.Error(err))
	}
	if err := st.CompleteRun(ctx, run.ID, result); err != nil {
		return nil, err
	}

	return result, nil
}

// writeOutputs writes the requested formats. CSV and XLSX go to distinct
// paths, so "both" writes them concurrently.
func writeOutputs(rows []model.Record, csvPath, format string) error {
	xlsxPath := strings.TrimSuffix(csvPath, filepath.Ext(csvPath)) + ".xlsx"

	switch format {
	case "csv":
		return export.WriteCSV(rows, csvPath)
	case "xlsx":
		return export.WriteXLSX(rows, xlsxPath)
	case "both":
		var g errgroup.Group
		g.Go(func() error { return export.WriteCSV(rows, csvPath) })
		g.Go(func() error { return export.WriteXLSX(rows, xlsxPath) })
		return g.Wait()
	default:
		return eris.Errorf("merge: unknown format %q", format)
	}
}
