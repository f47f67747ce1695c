package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anthonysuherli/featherweight/internal/logger"
	"github.com/anthonysuherli/featherweight/internal/salary"
)

func newSalariesCmd() *cobra.Command {
	var (
		file     string
		platform string
	)

	cmd := &cobra.Command{
		Use:   "salaries",
		Short: "Normalize a DraftKings or FanDuel salary CSV export",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := salary.ParsePlatform(platform)
			if err != nil {
				return err
			}

			records, err := salary.Load(file, p)
			if err != nil {
				return err
			}

			out, closeSink, err := openSink()
			if err != nil {
				return err
			}
			defer closeSink()

			if err := out.WriteSalaries(records); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			logger.Get().WithField("records", len(records)).Info("wrote salary records")
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to the salary CSV export")
	cmd.Flags().StringVar(&platform, "platform", "", "draftkings/dk or fanduel/fd (default: auto-detect)")
	cmd.MarkFlagRequired("file")

	return cmd
}
