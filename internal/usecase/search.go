package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/naka-gawa/ghprofile/internal/domain"
)

// MinSearchLength is the shortest query sent to the search API.
const MinSearchLength = 2

// SearchResult holds users and repositories matching a query.
type SearchResult struct {
	Users []domain.User       `json:"users"`
	Repos []domain.Repository `json:"repos"`
}

// Search looks up users and repositories in parallel. Queries shorter than
// MinSearchLength yield an empty result without touching the API.
func (a *Aggregator) Search(ctx context.Context, query string) (*SearchResult, error) {
	result := &SearchResult{Users: []domain.User{}, Repos: []domain.Repository{}}
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinSearchLength {
		return result, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		users, err := a.fetcher.SearchUsers(egCtx, query)
		if err == nil && users != nil {
			result.Users = users
		}
		return err
	})
	eg.Go(func() error {
		repos, err := a.fetcher.SearchRepos(egCtx, query)
		if err == nil && repos != nil {
			result.Repos = repos
		}
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	a.logger.Debug("search complete", "query", query, "users", len(result.Users), "repos", len(result.Repos))
	return result, nil
}
