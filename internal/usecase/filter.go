package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/naka-gawa/ghprofile/internal/domain"
)

// Tab selects a subset of repositories.
type Tab string

const (
	TabAll      Tab = "all"
	TabDeployed Tab = "deployed"
	TabPopular  Tab = "popular"
)

// SortOrder orders a repository listing.
type SortOrder string

const (
	SortUpdated SortOrder = "updated"
	SortStars   SortOrder = "stars"
	SortName    SortOrder = "name"
)

// RepoFilter narrows and orders a repository list. Zero values mean
// "all repositories, most recently updated first".
type RepoFilter struct {
	Tab      Tab
	Query    string
	Language string
	Sort     SortOrder
}

// TabCounts is the number of repositories under each tab.
type TabCounts struct {
	All      int `json:"all"`
	Deployed int `json:"deployed"`
	Popular  int `json:"popular"`
}

// Validate rejects unknown tabs and sort orders.
func (f RepoFilter) Validate() error {
	switch f.Tab {
	case "", TabAll, TabDeployed, TabPopular:
	default:
		return fmt.Errorf("%w: unknown tab %q", ErrInvalidInput, f.Tab)
	}
	switch f.Sort {
	case "", SortUpdated, SortStars, SortName:
	default:
		return fmt.Errorf("%w: unknown sort order %q", ErrInvalidInput, f.Sort)
	}
	return nil
}

// Apply returns a new slice with the matching repositories in the requested order.
func (f RepoFilter) Apply(repos []domain.Repository) []domain.Repository {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	filtered := make([]domain.Repository, 0, len(repos))
	for _, repo := range repos {
		switch f.Tab {
		case TabDeployed:
			if !IsDeployed(repo) {
				continue
			}
		case TabPopular:
			if repo.StargazersCount == 0 {
				continue
			}
		}
		if query != "" && !matchesQuery(repo, query) {
			continue
		}
		if f.Language != "" && repo.Language != f.Language {
			continue
		}
		filtered = append(filtered, repo)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		switch f.Sort {
		case SortStars:
			return a.StargazersCount > b.StargazersCount
		case SortName:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		default:
			return a.UpdatedAt.After(b.UpdatedAt)
		}
	})
	return filtered
}

func matchesQuery(repo domain.Repository, query string) bool {
	if strings.Contains(strings.ToLower(repo.Name), query) ||
		strings.Contains(strings.ToLower(repo.Description), query) {
		return true
	}
	for _, topic := range repo.Topics {
		if strings.Contains(strings.ToLower(topic), query) {
			return true
		}
	}
	return false
}

// Languages returns the distinct primary languages in alphabetical order.
func Languages(repos []domain.Repository) []string {
	seen := make(map[string]struct{})
	langs := []string{}
	for _, repo := range repos {
		if repo.Language == "" {
			continue
		}
		if _, ok := seen[repo.Language]; ok {
			continue
		}
		seen[repo.Language] = struct{}{}
		langs = append(langs, repo.Language)
	}
	sort.Strings(langs)
	return langs
}

// CountTabs counts the repositories under each tab.
func CountTabs(repos []domain.Repository) TabCounts {
	counts := TabCounts{All: len(repos)}
	for _, repo := range repos {
		if IsDeployed(repo) {
			counts.Deployed++
		}
		if repo.StargazersCount > 0 {
			counts.Popular++
		}
	}
	return counts
}
