package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gulfbridge/leads-cli/internal/fetcher"
	"github.com/gulfbridge/leads-cli/internal/ingest"
)

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "Manage the oil and gas activity code control list",
}

// -- codes sync --

var codesSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Download the latest activity code list from the chamber portal",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cfg.Codes.URL == "" {
			return eris.New("codes sync: no codes.url configured")
		}

		f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
			UserAgent:  cfg.Fetch.UserAgent,
			Timeout:    time.Duration(cfg.Fetch.TimeoutSecs) * time.Second,
			MaxRetries: cfg.Fetch.MaxRetries,
			RatePerSec: cfg.Fetch.RatePerSec,
		})

		n, err := f.DownloadToFile(cmd.Context(), cfg.Codes.URL, cfg.Codes.File)
		if err != nil {
			return eris.Wrap(err, "codes sync")
		}

		codes, err := ingest.LoadExpectedCodes(cfg.Codes.File)
		if err != nil {
			return eris.Wrap(err, "codes sync: downloaded file unreadable")
		}

		zap.L().Info("activity codes synced",
			zap.String("url", cfg.Codes.URL),
			zap.String("file", cfg.Codes.File),
			zap.Int64("bytes", n),
			zap.Int("codes", len(codes)),
		)
		return nil
	},
}

// -- codes list --

var codesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the activity codes currently on the control list",
	RunE: func(_ *cobra.Command, _ []string) error {
		codes, err := ingest.LoadExpectedCodes(cfg.Codes.File)
		if err != nil {
			return eris.Wrap(err, "codes list")
		}
		if len(codes) == 0 {
			fmt.Fprintln(os.Stderr, "No activity codes loaded; run `leads-cli codes sync` first.")
			return nil
		}
		for _, c := range codes {
			fmt.Println(c)
		}
		return nil
	},
}

func init() {
	codesCmd.AddCommand(codesSyncCmd)
	codesCmd.AddCommand(codesListCmd)
	rootCmd.AddCommand(codesCmd)
}
