package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/ghprofile/internal/report"
	"github.com/naka-gawa/ghprofile/internal/usecase"
)

var reposCmd = &cobra.Command{
	Use:   "repos <username>",
	Short: "Lists a user's repositories with filters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		if err := checkFormat(format); err != nil {
			return err
		}
		tab, _ := cmd.Flags().GetString("tab")
		query, _ := cmd.Flags().GetString("query")
		language, _ := cmd.Flags().GetString("language")
		sortBy, _ := cmd.Flags().GetString("sort")
		filter := usecase.RepoFilter{
			Tab:      usecase.Tab(tab),
			Query:    query,
			Language: language,
			Sort:     usecase.SortOrder(sortBy),
		}
		if err := filter.Validate(); err != nil {
			return err
		}

		login := strings.TrimSpace(args[0])
		if login == "" {
			return fmt.Errorf("%w: username is required", usecase.ErrInvalidInput)
		}

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		repos, err := usecase.CollectRepos(cmd.Context(), a.fetcher, login, a.cfg.GitHub.PerPage)
		if err != nil {
			return fmt.Errorf("failed to list repositories: %w", err)
		}

		filtered := filter.Apply(repos)
		if format == "json" {
			return report.WriteJSON(cmd.OutOrStdout(), filtered)
		}
		return report.NewText(cmd.OutOrStdout(), time.Now).Repos(filtered, usecase.CountTabs(repos))
	},
}

func init() {
	rootCmd.AddCommand(reposCmd)
	reposCmd.Flags().StringP("format", "f", "text", "Output format: text or json")
	reposCmd.Flags().String("tab", string(usecase.TabAll), "Subset to show: all, deployed or popular")
	reposCmd.Flags().StringP("query", "q", "", "Match name, description or topics")
	reposCmd.Flags().StringP("language", "l", "", "Only repositories with this primary language")
	reposCmd.Flags().StringP("sort", "s", string(usecase.SortUpdated), "Sort by updated, stars or name")
}
