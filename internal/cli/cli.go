// Package cli wires the scraping pipeline into a command-line tool.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/anthonysuherli/featherweight/internal/config"
	"github.com/anthonysuherli/featherweight/internal/fetch"
	"github.com/anthonysuherli/featherweight/internal/ingest/bref"
	"github.com/anthonysuherli/featherweight/internal/logger"
	"github.com/anthonysuherli/featherweight/internal/sink"
)

var (
	flagOutput string
	flagFormat string
)

// NewRootCmd creates the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "featherweight",
		Short: "Fetch and normalize NBA statistics and daily-fantasy salary data",
		Long: `featherweight pulls basketball statistics from the stats API and from
Basketball Reference, and daily-fantasy salary files from DraftKings or
FanDuel exports, normalizing everything into one canonical record schema
with a single fantasy-scoring formula.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger.Init(cfg.LogLevel, cfg.LogFormat)
			runtimeConfig = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&flagOutput, "output", "", "Output file (default stdout)")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "csv", "Output format: csv or json")

	cmd.AddCommand(newSeasonCmd())
	cmd.AddCommand(newGameLogCmd())
	cmd.AddCommand(newTeamRatingsCmd())
	cmd.AddCommand(newLeagueLogCmd())
	cmd.AddCommand(newPlayersCmd())
	cmd.AddCommand(newSalariesCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}

// runtimeConfig is loaded once before any command runs.
var runtimeConfig *config.Config

// Execute runs the CLI and returns a process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// newBRefFetcher builds the fetcher for Basketball Reference scrapes,
// honoring the configured strategy.
func newBRefFetcher() (bref.Fetcher, func(), error) {
	cfg := runtimeConfig
	if cfg.FetchStrategy == "browser" {
		browser, err := fetch.NewBrowser(cfg.FetchDelay)
		if err != nil {
			return nil, nil, fmt.Errorf("starting browser: %w", err)
		}
		return browser, browser.Close, nil
	}

	client := fetch.New(
		fetch.WithDelay(cfg.FetchDelay),
		fetch.WithMaxRetries(cfg.MaxRetries),
	)
	return client, func() {}, nil
}

// openSink resolves the --output/--format flags into a sink plus a
// cleanup function.
func openSink() (sink.Sink, func() error, error) {
	var w io.Writer = os.Stdout
	closer := func() error { return nil }

	if flagOutput != "" {
		f, err := os.Create(flagOutput)
		if err != nil {
			return nil, nil, fmt.Errorf("creating output file: %w", err)
		}
		w = f
		closer = f.Close
	}

	s, err := sink.ForFormat(flagFormat, w)
	if err != nil {
		closer()
		return nil, nil, err
	}
	return s, closer, nil
}
