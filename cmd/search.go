package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/ghprofile/internal/report"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Searches GitHub users and repositories",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		if err := checkFormat(format); err != nil {
			return err
		}
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		result, err := a.aggregator.Search(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		if format == "json" {
			return report.WriteJSON(cmd.OutOrStdout(), result)
		}
		return report.NewText(cmd.OutOrStdout(), nil).Search(result)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringP("format", "f", "text", "Output format: text or json")
}
