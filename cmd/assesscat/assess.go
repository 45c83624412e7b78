package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/suggestbot/assesscat/internal/assess"
	"github.com/suggestbot/assesscat/internal/config"
	"github.com/suggestbot/assesscat/internal/observability"
	"github.com/suggestbot/assesscat/internal/ores"
	"github.com/suggestbot/assesscat/internal/replica"
	"github.com/suggestbot/assesscat/internal/report"
	"github.com/suggestbot/assesscat/internal/wp10"
)

var assessCommand = &cobra.Command{
	Use:   "assess <category> <target>",
	Short: "Rank category members predicted well below a target class",
	Long: `Enumerates the members of a category (without the "Category:" prefix) from
the wiki replica database, fetches ORES wp10 quality predictions for their
current revisions, and prints a wikitext table of the articles predicted at
least --distance classes below the target.

The target must be one of the WP 1.0 assessment classes: FA, GA, B, C,
Start, Stub. The default distance of 2 means a target of Stub requires an
article to be predicted C-class or better.`,
	Args: cobra.ExactArgs(2),
	RunE: runAssessCmd,
}

var (
	assessDistance    int
	assessVerbose     bool
	assessDatabaseURL string
	assessORESURL     string
	assessWikiID      string
	assessBatchSize   int
	assessMaxAttempts int
	assessParallelism int
)

func init() {
	assessCommand.Flags().IntVarP(&assessDistance, "distance", "d", 2, "minimum number of classes between target and predicted class")
	assessCommand.Flags().BoolVarP(&assessVerbose, "verbose", "v", false, "write informational output")
	assessCommand.Flags().StringVar(&assessDatabaseURL, "db-url", "", "replica database URL (defaults to REPLICA_DATABASE_URL env var)")
	assessCommand.Flags().StringVar(&assessORESURL, "ores-url", "", "base URL of the ORES scoring service")
	assessCommand.Flags().StringVar(&assessWikiID, "wiki", "", "wiki identifier used in scoring requests (e.g. enwiki)")
	assessCommand.Flags().IntVar(&assessBatchSize, "batch-size", 0, "revisions per scoring request (max 50)")
	assessCommand.Flags().IntVar(&assessMaxAttempts, "max-attempts", 0, "attempts per batch before giving up on it")
	assessCommand.Flags().IntVar(&assessParallelism, "parallelism", 0, "scoring requests in flight at once")

	rootCmd.AddCommand(assessCommand)
}

func runAssessCmd(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg := config.Config{
		Category:    args[0],
		Target:      args[1],
		MinDistance: assessDistance,
		DatabaseURL: assessDatabaseURL,
		ORESBaseURL: assessORESURL,
		WikiID:      assessWikiID,
		BatchSize:   assessBatchSize,
		MaxAttempts: assessMaxAttempts,
		Parallelism: assessParallelism,
		Verbose:     assessVerbose,
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("REPLICA_DATABASE_URL")
	}
	cfg = cfg.MergeWithDefaults(config.Defaults())

	if err := cfg.Validate(); err != nil {
		return err
	}

	// Validation already accepted the target; keep its canonical spelling
	// for filtering and for the report header.
	target, err := wp10.Canonical(cfg.Target)
	if err != nil {
		return err
	}

	var progress *observability.Printer
	if cfg.Verbose {
		progress = observability.NewPrinter(os.Stderr)
	}
	progress.PrintRunSummary(cfg.Category, target, cfg.MinDistance)

	store, err := replica.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	client := ores.NewClient(&ores.Options{
		BaseURL:     cfg.ORESBaseURL,
		WikiID:      cfg.WikiID,
		BatchSize:   cfg.BatchSize,
		MaxAttempts: cfg.MaxAttempts,
		RetryDelay:  cfg.RetryDelay,
		Parallelism: cfg.Parallelism,
		Verbose:     cfg.Verbose,
	})

	ranker := assess.NewRanker(store, client, progress)
	candidates, err := ranker.Rank(ctx, cfg.Category, target, cfg.MinDistance)
	if err != nil {
		return err
	}
	progress.Infof("%d candidates for reassessment", len(candidates))

	fmt.Fprintln(os.Stdout, report.Table(candidates, target))
	return nil
}
