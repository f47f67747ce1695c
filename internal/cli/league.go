package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anthonysuherli/featherweight/internal/fetch"
	"github.com/anthonysuherli/featherweight/internal/ingest/nbastats"
	"github.com/anthonysuherli/featherweight/internal/logger"
)

func newStatsClient() *nbastats.Client {
	cfg := runtimeConfig
	fetcher := fetch.New(
		fetch.WithDelay(cfg.APIDelay),
		fetch.WithMaxRetries(cfg.MaxRetries),
		fetch.WithHeaders(nbastats.RequiredHeaders()),
	)
	return nbastats.NewClient(fetcher)
}

func newLeagueLogCmd() *cobra.Command {
	var (
		season     string
		seasonType string
		dateFrom   string
		dateTo     string
	)

	cmd := &cobra.Command{
		Use:   "league-log",
		Short: "Fetch all player game logs for a season from the stats API",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := nbastats.ParseSeasonType(seasonType)
			if err != nil {
				return err
			}

			records, err := newStatsClient().LeagueGameLogs(cmd.Context(), season, st, dateFrom, dateTo)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				logger.Get().Warn("no data retrieved")
				return nil
			}

			out, closeSink, err := openSink()
			if err != nil {
				return err
			}
			defer closeSink()

			if err := out.WriteGameStats(records); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			logger.Get().WithField("records", len(records)).Info("wrote league game logs")
			return nil
		},
	}

	cmd.Flags().StringVar(&season, "season", "2024-25", "Season in YYYY-YY form")
	cmd.Flags().StringVar(&seasonType, "season-type", string(nbastats.RegularSeason), "\"Regular Season\" or \"Playoffs\"")
	cmd.Flags().StringVar(&dateFrom, "date-from", "", "Start date filter (MM/DD/YYYY)")
	cmd.Flags().StringVar(&dateTo, "date-to", "", "End date filter (MM/DD/YYYY)")

	return cmd
}

func newPlayersCmd() *cobra.Command {
	var (
		season     string
		activeOnly bool
	)

	cmd := &cobra.Command{
		Use:   "players",
		Short: "Fetch the player index for a season from the stats API",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := newStatsClient().AllPlayers(cmd.Context(), season, activeOnly)
			if err != nil {
				return err
			}

			out, closeSink, err := openSink()
			if err != nil {
				return err
			}
			defer closeSink()

			if err := out.WriteTable(table); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&season, "season", "2024-25", "Season in YYYY-YY form")
	cmd.Flags().BoolVar(&activeOnly, "active", true, "Only current-season players")

	return cmd
}
