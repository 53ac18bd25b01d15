package usecase

import (
	"time"

	"github.com/montanaflynn/stats"

	"github.com/naka-gawa/ghprofile/internal/domain"
)

const (
	// StyleContributor is reported when a user forks more than they create.
	StyleContributor = "Active contributor to open source projects"
	// StyleOriginal is reported otherwise.
	StyleOriginal = "Focuses on original project development"

	insightLanguages = 3
	year             = 365 * 24 * time.Hour
)

// Summarize derives the profile insights from already computed stats.
func Summarize(user *domain.User, repos []domain.Repository, repoStats domain.RepoStats, now time.Time) domain.Insights {
	insights := domain.Insights{
		TopLanguages:     TopLanguages(repoStats.Languages, insightLanguages),
		DevelopmentStyle: StyleOriginal,
	}
	if repoStats.Forked > repoStats.Original {
		insights.DevelopmentStyle = StyleContributor
	}

	starCounts := make([]int, 0, len(repos))
	best := -1
	for _, repo := range repos {
		starCounts = append(starCounts, repo.StargazersCount)
		insights.TotalStars += repo.StargazersCount
		if repo.StargazersCount > best {
			best = repo.StargazersCount
			insights.MostStarred = repo.Name
		}
	}
	if len(starCounts) > 0 {
		data := stats.LoadRawData(starCounts)
		if mean, err := stats.Mean(data); err == nil {
			insights.MeanStars, _ = stats.Round(mean, 2)
		}
		if median, err := stats.Median(data); err == nil {
			insights.MedianStars = median
		}
	}

	if !user.CreatedAt.IsZero() && now.After(user.CreatedAt) {
		insights.AccountAgeYears = int(now.Sub(user.CreatedAt) / year)
	}
	return insights
}
