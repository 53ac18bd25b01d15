package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/ghprofile/internal/report"
)

var profileCmd = &cobra.Command{
	Use:   "profile <username>",
	Short: "Shows a GitHub user's profile, stats, languages and badges",
	Long: `Fetches the user and every public repository, then prints the repository
roll-up, language ranking, insights and achievement badges.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		if err := checkFormat(format); err != nil {
			return err
		}
		export, _ := cmd.Flags().GetString("export")

		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		profile, err := a.aggregator.Aggregate(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		if export != "" {
			if export == "-" {
				export = report.ExportFilename(profile.User.Login)
			}
			if err := writeExport(export, report.NewExport(profile, time.Now())); err != nil {
				return err
			}
			a.logger.Info("profile exported", "file", export)
		}

		out := cmd.OutOrStdout()
		if format == "json" {
			return report.WriteJSON(out, profile)
		}
		if err := report.NewText(out, time.Now).Profile(profile); err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%s\n%s\n", report.ShareText(profile.User), report.ProfileURL(profile.User))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.Flags().StringP("format", "f", "text", "Output format: text or json")
	profileCmd.Flags().String("export", "", `Write a JSON export to this file ("-" for <username>-github-profile.json)`)
	profileCmd.Flags().Bool("contributions", false, "Fetch the contribution calendar to compute streaks (requires a token)")
}

// writeExport writes the JSON export to path. The close error is reported
// since a failed flush leaves a truncated file behind.
func writeExport(path string, export report.Export) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	err = report.WriteJSON(f, export)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}
