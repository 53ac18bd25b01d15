package usecase

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/naka-gawa/ghprofile/internal/domain"
)

// DefaultTopLanguages is the number of languages shown in a ranking.
const DefaultTopLanguages = 6

// deploymentKeywords mark a repository as published when a topic contains one of them.
var deploymentKeywords = []string{"demo", "live", "vercel", "netlify", "github-pages"}

// IsDeployed reports whether the repository looks published: it has a
// homepage, a deployment-related topic, or GitHub Pages enabled.
func IsDeployed(repo domain.Repository) bool {
	if repo.Homepage != "" || repo.HasPages {
		return true
	}
	for _, topic := range repo.Topics {
		topic = strings.ToLower(topic)
		for _, keyword := range deploymentKeywords {
			if strings.Contains(topic, keyword) {
				return true
			}
		}
	}
	return false
}

// DeploymentURL returns where a published repository can be visited, or "".
func DeploymentURL(repo domain.Repository) string {
	if repo.Homepage != "" {
		return repo.Homepage
	}
	if repo.HasPages && repo.Owner != "" {
		return fmt.Sprintf("https://%s.github.io/%s", repo.Owner, repo.Name)
	}
	return ""
}

// CalculateRepoStats reduces a repository list into summary counts and a
// language frequency table in a single pass.
func CalculateRepoStats(repos []domain.Repository) domain.RepoStats {
	stats := domain.RepoStats{
		Total:     len(repos),
		Languages: domain.LanguageStats{},
	}
	for _, repo := range repos {
		if repo.Fork {
			stats.Forked++
		} else {
			stats.Original++
		}
		if IsDeployed(repo) {
			stats.Deployed++
		}
		if repo.Language != "" {
			stats.Languages[repo.Language]++
		}
	}
	return stats
}

// TopLanguages ranks languages by repository count, ties broken by name.
// A limit <= 0 returns every language.
func TopLanguages(languages domain.LanguageStats, limit int) []domain.LanguageRank {
	total := 0
	for _, count := range languages {
		total += count
	}
	if total == 0 {
		return []domain.LanguageRank{}
	}

	ranks := make([]domain.LanguageRank, 0, len(languages))
	for name, count := range languages {
		ranks = append(ranks, domain.LanguageRank{
			Name:       name,
			Count:      count,
			Percentage: int(math.Round(float64(count) / float64(total) * 100)),
		})
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Count != ranks[j].Count {
			return ranks[i].Count > ranks[j].Count
		}
		return ranks[i].Name < ranks[j].Name
	})

	if limit > 0 && len(ranks) > limit {
		ranks = ranks[:limit]
	}
	return ranks
}
