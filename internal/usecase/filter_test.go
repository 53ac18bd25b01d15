package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/naka-gawa/ghprofile/internal/domain"
)

func filterFixture() []domain.Repository {
	return []domain.Repository{
		{Name: "zeta", Language: "Go", StargazersCount: 5, UpdatedAt: testNow.AddDate(0, 0, -3), Homepage: "https://zeta.dev"},
		{Name: "Alpha", Language: "Rust", StargazersCount: 0, UpdatedAt: testNow.AddDate(0, 0, -1), Description: "A CLI for dashboards"},
		{Name: "beta", Language: "Go", StargazersCount: 12, UpdatedAt: testNow.AddDate(0, 0, -10), Topics: []string{"Dashboard"}},
		{Name: "gamma", StargazersCount: 0, UpdatedAt: testNow.AddDate(0, 0, -2)},
	}
}

func names(repos []domain.Repository) []string {
	out := make([]string, 0, len(repos))
	for _, r := range repos {
		out = append(out, r.Name)
	}
	return out
}

func TestRepoFilter_Apply(t *testing.T) {
	testCases := []struct {
		name     string
		filter   RepoFilter
		expected []string
	}{
		{name: "default sorts by most recent update", filter: RepoFilter{}, expected: []string{"Alpha", "gamma", "zeta", "beta"}},
		{name: "deployed tab", filter: RepoFilter{Tab: TabDeployed}, expected: []string{"zeta"}},
		{name: "popular tab sorted by stars", filter: RepoFilter{Tab: TabPopular, Sort: SortStars}, expected: []string{"beta", "zeta"}},
		{name: "query matches description and topics", filter: RepoFilter{Query: "DASHBOARD"}, expected: []string{"Alpha", "beta"}},
		{name: "language filter", filter: RepoFilter{Language: "Go", Sort: SortName}, expected: []string{"beta", "zeta"}},
		{name: "name sort ignores case", filter: RepoFilter{Sort: SortName}, expected: []string{"Alpha", "beta", "gamma", "zeta"}},
		{name: "no match", filter: RepoFilter{Query: "nothing-like-this"}, expected: []string{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repos := filterFixture()
			assert.Equal(t, tc.expected, names(tc.filter.Apply(repos)))
			assert.Equal(t, "zeta", repos[0].Name, "input must not be reordered")
		})
	}
}

func TestRepoFilter_Validate(t *testing.T) {
	assert.NoError(t, RepoFilter{}.Validate())
	assert.NoError(t, RepoFilter{Tab: TabPopular, Sort: SortStars}.Validate())
	assert.ErrorIs(t, RepoFilter{Tab: "archived"}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, RepoFilter{Sort: "forks"}.Validate(), ErrInvalidInput)
}

func TestLanguagesAndTabCounts(t *testing.T) {
	repos := filterFixture()
	assert.Equal(t, []string{"Go", "Rust"}, Languages(repos))
	assert.Equal(t, TabCounts{All: 4, Deployed: 1, Popular: 2}, CountTabs(repos))
	assert.Equal(t, []string{}, Languages(nil))
}
