package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anthonysuherli/featherweight/internal/ingest/bref"
	"github.com/anthonysuherli/featherweight/internal/logger"
)

func newSeasonCmd() *cobra.Command {
	var (
		season   int
		statType string
		playoffs bool
	)

	cmd := &cobra.Command{
		Use:   "season",
		Short: "Scrape league-wide season stats from Basketball Reference",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := bref.ParseStatType(statType)
			if err != nil {
				return err
			}

			fetcher, closeFetcher, err := newBRefFetcher()
			if err != nil {
				return err
			}
			defer closeFetcher()

			records, err := bref.NewScraper(fetcher).SeasonStats(cmd.Context(), season, st, playoffs)
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
			logger.Get().WithField("records", len(records)).Info("wrote season stats")
			return nil
		},
	}

	cmd.Flags().IntVar(&season, "season", 2025, "Season ending year (e.g. 2025 for 2024-25)")
	cmd.Flags().StringVar(&statType, "stat-type", "per_game", "One of per_game, totals, per_minute, per_poss, advanced")
	cmd.Flags().BoolVar(&playoffs, "playoffs", false, "Fetch playoff stats")

	return cmd
}

func newGameLogCmd() *cobra.Command {
	var (
		player   string
		season   int
		playoffs bool
	)

	cmd := &cobra.Command{
		Use:   "gamelog",
		Short: "Scrape one player's game log from Basketball Reference",
		RunE: func(cmd *cobra.Command, args []string) error {
			fetcher, closeFetcher, err := newBRefFetcher()
			if err != nil {
				return err
			}
			defer closeFetcher()

			records, err := bref.NewScraper(fetcher).PlayerGameLogs(cmd.Context(), player, season, playoffs)
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
			logger.Get().WithField("records", len(records)).Info("wrote game logs")
			return nil
		},
	}

	cmd.Flags().StringVar(&player, "player", "", "Player full name (e.g. \"LeBron James\")")
	cmd.Flags().IntVar(&season, "season", 2025, "Season ending year")
	cmd.Flags().BoolVar(&playoffs, "playoffs", false, "Fetch playoff games")
	cmd.MarkFlagRequired("player")

	return cmd
}

func newTeamRatingsCmd() *cobra.Command {
	var season int

	cmd := &cobra.Command{
		Use:   "team-ratings",
		Short: "Scrape team offensive/defensive ratings from Basketball Reference",
		RunE: func(cmd *cobra.Command, args []string) error {
			fetcher, closeFetcher, err := newBRefFetcher()
			if err != nil {
				return err
			}
			defer closeFetcher()

			table, err := bref.NewScraper(fetcher).TeamRatings(cmd.Context(), season)
			if err != nil {
				return err
			}
			if table.Len() == 0 {
				logger.Get().Warn("no data retrieved")
				return nil
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

	cmd.Flags().IntVar(&season, "season", 2025, "Season ending year")

	return cmd
}
