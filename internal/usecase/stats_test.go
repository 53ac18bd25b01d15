package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/naka-gawa/ghprofile/internal/domain"
)

func TestIsDeployed(t *testing.T) {
	testCases := []struct {
		name     string
		repo     domain.Repository
		expected bool
	}{
		{name: "homepage", repo: domain.Repository{Homepage: "https://example.com"}, expected: true},
		{name: "github pages", repo: domain.Repository{HasPages: true}, expected: true},
		{name: "topic keyword", repo: domain.Repository{Topics: []string{"cli", "vercel-app"}}, expected: true},
		{name: "topic keyword is case insensitive", repo: domain.Repository{Topics: []string{"Live-Demo"}}, expected: true},
		{name: "unrelated topics", repo: domain.Repository{Topics: []string{"golang", "cli"}}, expected: false},
		{name: "nothing set", repo: domain.Repository{}, expected: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsDeployed(tc.repo))
		})
	}
}

func TestDeploymentURL(t *testing.T) {
	assert.Equal(t, "https://example.com", DeploymentURL(domain.Repository{Homepage: "https://example.com", HasPages: true, Owner: "octocat", Name: "site"}))
	assert.Equal(t, "https://octocat.github.io/site", DeploymentURL(domain.Repository{HasPages: true, Owner: "octocat", Name: "site"}))
	assert.Empty(t, DeploymentURL(domain.Repository{HasPages: true, Name: "site"}))
	assert.Empty(t, DeploymentURL(domain.Repository{Name: "site"}))
}

func TestCalculateRepoStats(t *testing.T) {
	repos := []domain.Repository{
		{Name: "a", Language: "Go", Homepage: "https://a.dev"},
		{Name: "b", Language: "Go", Fork: true},
		{Name: "c", Language: "TypeScript", Topics: []string{"netlify"}},
		{Name: "d", Fork: true, HasPages: true},
	}

	stats := CalculateRepoStats(repos)

	assert.Equal(t, domain.RepoStats{
		Total:     4,
		Deployed:  3,
		Forked:    2,
		Original:  2,
		Languages: domain.LanguageStats{"Go": 2, "TypeScript": 1},
	}, stats)
}

func TestCalculateRepoStats_Empty(t *testing.T) {
	stats := CalculateRepoStats(nil)
	assert.Equal(t, 0, stats.Total)
	assert.NotNil(t, stats.Languages)
	assert.Empty(t, stats.Languages)
}

func TestTopLanguages(t *testing.T) {
	languages := domain.LanguageStats{"Go": 5, "Rust": 2, "Python": 2, "C": 1}

	testCases := []struct {
		name     string
		limit    int
		expected []domain.LanguageRank
	}{
		{
			name:  "ranked by count then name",
			limit: DefaultTopLanguages,
			expected: []domain.LanguageRank{
				{Name: "Go", Count: 5, Percentage: 50},
				{Name: "Python", Count: 2, Percentage: 20},
				{Name: "Rust", Count: 2, Percentage: 20},
				{Name: "C", Count: 1, Percentage: 10},
			},
		},
		{
			name:  "truncated to the limit",
			limit: 2,
			expected: []domain.LanguageRank{
				{Name: "Go", Count: 5, Percentage: 50},
				{Name: "Python", Count: 2, Percentage: 20},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TopLanguages(languages, tc.limit))
		})
	}
}

func TestTopLanguages_Rounding(t *testing.T) {
	ranks := TopLanguages(domain.LanguageStats{"Go": 1, "Rust": 2}, 0)
	assert.Equal(t, []domain.LanguageRank{
		{Name: "Rust", Count: 2, Percentage: 67},
		{Name: "Go", Count: 1, Percentage: 33},
	}, ranks)
}

func TestTopLanguages_Empty(t *testing.T) {
	assert.Equal(t, []domain.LanguageRank{}, TopLanguages(domain.LanguageStats{}, DefaultTopLanguages))
}
