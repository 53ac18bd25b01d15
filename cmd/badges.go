package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/ghprofile/internal/report"
	"github.com/naka-gawa/ghprofile/internal/usecase"
)

var badgesCmd = &cobra.Command{
	Use:   "badges [username]",
	Short: "Lists the achievement badges, or a user's earned and locked badges",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		if err := checkFormat(format); err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			if format == "json" {
				return report.WriteJSON(out, usecase.Catalogue())
			}
			return report.NewText(out, nil).Catalogue(usecase.Catalogue())
		}

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		profile, err := a.aggregator.Aggregate(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		if format == "json" {
			return report.WriteJSON(out, profile.Badges)
		}
		return report.NewText(out, nil).Badges(profile.Badges)
	},
}

func init() {
	rootCmd.AddCommand(badgesCmd)
	badgesCmd.Flags().StringP("format", "f", "text", "Output format: text or json")
}
