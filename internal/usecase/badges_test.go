package usecase

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naka-gawa/ghprofile/internal/domain"
)

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func badgeIDs(badges []domain.Badge) []string {
	ids := make([]string, 0, len(badges))
	for _, b := range badges {
		ids = append(ids, b.ID)
	}
	return ids
}

func TestCatalogue(t *testing.T) {
	assert.Equal(t, []string{
		"star-collector", "repo-master", "rising-star", "influencer", "polyglot",
		"open-source", "deployer", "veteran", "active", "global",
	}, badgeIDs(Catalogue()))
}

func TestEvaluateBadges(t *testing.T) {
	manyRepos := func(n int, mutate func(i int, r *domain.Repository)) []domain.Repository {
		repos := make([]domain.Repository, n)
		for i := range repos {
			repos[i] = repoNamed(fmt.Sprintf("repo-%d", i))
			repos[i].Fork = true
			if mutate != nil {
				mutate(i, &repos[i])
			}
		}
		return repos
	}

	testCases := []struct {
		name   string
		user   domain.User
		repos  []domain.Repository
		earned []string
	}{
		{
			name:   "nothing earned",
			user:   domain.User{CreatedAt: testNow.AddDate(-1, 0, 0)},
			earned: []string{},
		},
		{
			name: "star collector at exactly 100 stars",
			user: domain.User{CreatedAt: testNow},
			repos: manyRepos(1, func(_ int, r *domain.Repository) {
				r.StargazersCount = 100
			}),
			earned: []string{"star-collector"},
		},
		{
			name:   "follower thresholds",
			user:   domain.User{Followers: 5000, PublicRepos: 50, CreatedAt: testNow},
			earned: []string{"repo-master", "rising-star", "influencer"},
		},
		{
			name:   "rising star without influencer",
			user:   domain.User{Followers: 4999, CreatedAt: testNow},
			earned: []string{"rising-star"},
		},
		{
			name: "polyglot needs five distinct languages",
			user: domain.User{CreatedAt: testNow},
			repos: manyRepos(6, func(i int, r *domain.Repository) {
				r.Language = []string{"Go", "Rust", "C", "Zig", "Go", "Python"}[i]
			}),
			earned: []string{"polyglot"},
		},
		{
			name: "open source hero counts original repositories",
			user: domain.User{CreatedAt: testNow},
			repos: manyRepos(12, func(i int, r *domain.Repository) {
				r.Fork = i >= 10
			}),
			earned: []string{"open-source"},
		},
		{
			name: "deployer only counts homepages",
			user: domain.User{CreatedAt: testNow},
			repos: manyRepos(6, func(i int, r *domain.Repository) {
				if i < 4 {
					r.Homepage = "https://example.com"
				}
				r.HasPages = true
			}),
			earned: []string{},
		},
		{
			name: "deployer at five homepages",
			user: domain.User{CreatedAt: testNow},
			repos: manyRepos(5, func(_ int, r *domain.Repository) {
				r.Homepage = "https://example.com"
			}),
			earned: []string{"deployer"},
		},
		{
			name:   "veteran after five years",
			user:   domain.User{CreatedAt: testNow.Add(-veteranAge)},
			earned: []string{"veteran"},
		},
		{
			name:   "not yet a veteran",
			user:   domain.User{CreatedAt: testNow.Add(-veteranAge + time.Hour)},
			earned: []string{},
		},
		{
			name: "active when updated within a month",
			user: domain.User{CreatedAt: testNow},
			repos: manyRepos(2, func(i int, r *domain.Repository) {
				r.UpdatedAt = testNow.AddDate(0, -2, 0)
				if i == 1 {
					r.UpdatedAt = testNow.AddDate(0, 0, -20)
				}
			}),
			earned: []string{"active"},
		},
		{
			name:   "global needs both location and company",
			user:   domain.User{Location: "Tokyo", Company: "ACME", CreatedAt: testNow},
			earned: []string{"global"},
		},
		{
			name:   "location alone is not enough",
			user:   domain.User{Location: "Tokyo", CreatedAt: testNow},
			earned: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			set := EvaluateBadges(&tc.user, tc.repos, testNow)
			assert.Equal(t, tc.earned, badgeIDs(set.Earned))
			require.Equal(t, len(Catalogue()), set.Total())

			seen := make(map[string]bool)
			for _, b := range append(append([]domain.Badge{}, set.Earned...), set.Locked...) {
				assert.False(t, seen[b.ID], "badge %s listed twice", b.ID)
				seen[b.ID] = true
			}
		})
	}
}

func TestEvaluateBadges_LockedKeepsCatalogueOrder(t *testing.T) {
	set := EvaluateBadges(&domain.User{Followers: 1000, CreatedAt: testNow}, nil, testNow)
	assert.Equal(t, []string{"rising-star"}, badgeIDs(set.Earned))
	assert.Equal(t, []string{
		"star-collector", "repo-master", "influencer", "polyglot",
		"open-source", "deployer", "veteran", "active", "global",
	}, badgeIDs(set.Locked))
}
