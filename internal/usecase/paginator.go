package usecase

import (
	"context"

	"github.com/naka-gawa/ghprofile/internal/domain"
	"github.com/naka-gawa/ghprofile/internal/gateway"
)

// MaxPerPage is the largest page size the GitHub REST API accepts.
const MaxPerPage = 100

// CollectRepos walks the user's repository listing page by page until a
// page comes back shorter than perPage. A failed page aborts the walk and
// no partial list is returned.
func CollectRepos(ctx context.Context, fetcher gateway.Fetcher, login string, perPage int) ([]domain.Repository, error) {
	if perPage <= 0 || perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	repos := []domain.Repository{}
	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pageRepos, err := fetcher.FetchReposPage(ctx, login, page, perPage)
		if err != nil {
			return nil, err
		}
		repos = append(repos, pageRepos...)
		if len(pageRepos) < perPage {
			return repos, nil
		}
	}
}
