package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/hireflow/internal/db"
	"github.com/jonathan/hireflow/internal/logger"
	"github.com/jonathan/hireflow/internal/observability"
	"github.com/jonathan/hireflow/internal/stats"
)

var (
	statsEmployer string
	statsJob      string
	statsSince    string
	statsUntil    string
	statsLimit    int
	statsVerbose  bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize stored applications",
	Long:  `Load applications from PostgreSQL, optionally filtered by employer, job, or submission date range, and print aggregate statistics.`,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsEmployer, "employer", "", "Filter by employer UUID")
	statsCmd.Flags().StringVar(&statsJob, "job", "", "Filter by job UUID")
	statsCmd.Flags().StringVar(&statsSince, "since", "", "Only applications submitted on or after this date (YYYY-MM-DD)")
	statsCmd.Flags().StringVar(&statsUntil, "until", "", "Only applications submitted on or before this date (YYYY-MM-DD)")
	statsCmd.Flags().IntVar(&statsLimit, "limit", 0, "Maximum applications to load (0 = store default)")
	statsCmd.Flags().BoolVar(&statsVerbose, "verbose", false, "Print a formatted summary")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	databaseURL, err := resolveDatabaseURL()
	if err != nil {
		return err
	}

	filters, listFilters, err := parseStatsFilters()
	if err != nil {
		return err
	}
	listFilters.Limit = statsLimit

	log, err := logger.New(flagLogJSON, flagDebug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := db.Connect(ctx, databaseURL, log)
	if err != nil {
		return err
	}
	defer store.Close()

	apps, err := store.ListApplications(ctx, listFilters)
	if err != nil {
		return err
	}

	summary := stats.Summarize(apps, filters)
	if statsVerbose {
		observability.NewPrinter(os.Stdout).PrintStatsSummary(summary)
		return nil
	}

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// resolveDatabaseURL prefers the DATABASE_URL environment variable, falling
// back to the database_url entry of the --config file.
func resolveDatabaseURL() (string, error) {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url, nil
	}
	if loadedConfig.DatabaseURL != "" {
		return loadedConfig.DatabaseURL, nil
	}
	return "", fmt.Errorf("DATABASE_URL environment variable or database_url config entry is required")
}

// parseStatsFilters turns the string flags into aggregation and store
// filters. The date filters are applied both at the store (when listing) and
// in the fold, so partial loads still aggregate consistently.
func parseStatsFilters() (stats.Filters, db.ApplicationFilters, error) {
	var f stats.Filters
	var lf db.ApplicationFilters

	if statsEmployer != "" {
		id, err := uuid.Parse(statsEmployer)
		if err != nil {
			return f, lf, fmt.Errorf("invalid employer id: %w", err)
		}
		f.EmployerID = id
		lf.EmployerID = id
	}
	if statsJob != "" {
		id, err := uuid.Parse(statsJob)
		if err != nil {
			return f, lf, fmt.Errorf("invalid job id: %w", err)
		}
		f.JobID = id
		lf.JobID = id
	}
	if statsSince != "" {
		t, err := time.Parse("2006-01-02", statsSince)
		if err != nil {
			return f, lf, fmt.Errorf("invalid --since date: %w", err)
		}
		f.Since = t
	}
	if statsUntil != "" {
		t, err := time.Parse("2006-01-02", statsUntil)
		if err != nil {
			return f, lf, fmt.Errorf("invalid --until date: %w", err)
		}
		// Inclusive through the end of the day
		f.Until = t.Add(24*time.Hour - time.Nanosecond)
	}
	return f, lf, nil
}
