package usecase

import (
	"time"

	"github.com/naka-gawa/ghprofile/internal/domain"
)

// veteranAge is how long an account must exist to count as a veteran.
// A year is 365 days here, leap days are ignored.
const veteranAge = 5 * 365 * 24 * time.Hour

// badgeRule pairs a badge with the predicate that unlocks it.
type badgeRule struct {
	badge     domain.Badge
	condition func(user *domain.User, repos []domain.Repository, now time.Time) bool
}

var badgeRules = []badgeRule{
	{
		badge: domain.Badge{ID: "star-collector", Name: "Star Collector", Description: "Has repositories with 100+ stars", Tier: domain.TierGold},
		condition: func(_ *domain.User, repos []domain.Repository, _ time.Time) bool {
			for _, r := range repos {
				if r.StargazersCount >= 100 {
					return true
				}
			}
			return false
		},
	},
	{
		badge: domain.Badge{ID: "repo-master", Name: "Repo Master", Description: "Has 50+ public repositories", Tier: domain.TierPlatinum},
		condition: func(user *domain.User, _ []domain.Repository, _ time.Time) bool {
			return user.PublicRepos >= 50
		},
	},
	{
		badge: domain.Badge{ID: "rising-star", Name: "Rising Star", Description: "Has 1000+ followers", Tier: domain.TierGold},
		condition: func(user *domain.User, _ []domain.Repository, _ time.Time) bool {
			return user.Followers >= 1000
		},
	},
	{
		badge: domain.Badge{ID: "influencer", Name: "Influencer", Description: "Has 5000+ followers", Tier: domain.TierPlatinum},
		condition: func(user *domain.User, _ []domain.Repository, _ time.Time) bool {
			return user.Followers >= 5000
		},
	},
	{
		badge: domain.Badge{ID: "polyglot", Name: "Polyglot", Description: "Uses 5+ different languages", Tier: domain.TierSilver},
		condition: func(_ *domain.User, repos []domain.Repository, _ time.Time) bool {
			langs := make(map[string]struct{})
			for _, r := range repos {
				if r.Language != "" {
					langs[r.Language] = struct{}{}
				}
			}
			return len(langs) >= 5
		},
	},
	{
		badge: domain.Badge{ID: "open-source", Name: "Open Source Hero", Description: "Has 10+ original repositories", Tier: domain.TierSilver},
		condition: func(_ *domain.User, repos []domain.Repository, _ time.Time) bool {
			return countRepos(repos, func(r domain.Repository) bool { return !r.Fork }) >= 10
		},
	},
	{
		// Only an explicit homepage counts here, not the wider IsDeployed heuristic.
		badge: domain.Badge{ID: "deployer", Name: "Deployer", Description: "Has 5+ deployed projects", Tier: domain.TierBronze},
		condition: func(_ *domain.User, repos []domain.Repository, _ time.Time) bool {
			return countRepos(repos, func(r domain.Repository) bool { return r.Homepage != "" }) >= 5
		},
	},
	{
		badge: domain.Badge{ID: "veteran", Name: "GitHub Veteran", Description: "Member for 5+ years", Tier: domain.TierGold},
		condition: func(user *domain.User, _ []domain.Repository, now time.Time) bool {
			return !user.CreatedAt.IsZero() && now.Sub(user.CreatedAt) >= veteranAge
		},
	},
	{
		badge: domain.Badge{ID: "active", Name: "Active Contributor", Description: "Updated repos in the last month", Tier: domain.TierBronze},
		condition: func(_ *domain.User, repos []domain.Repository, now time.Time) bool {
			monthAgo := now.AddDate(0, -1, 0)
			for _, r := range repos {
				if r.UpdatedAt.After(monthAgo) {
					return true
				}
			}
			return false
		},
	},
	{
		badge: domain.Badge{ID: "global", Name: "Global Developer", Description: "Has location and company info", Tier: domain.TierBronze},
		condition: func(user *domain.User, _ []domain.Repository, _ time.Time) bool {
			return user.Location != "" && user.Company != ""
		},
	},
}

// Catalogue returns every badge in evaluation order.
func Catalogue() []domain.Badge {
	badges := make([]domain.Badge, 0, len(badgeRules))
	for _, rule := range badgeRules {
		badges = append(badges, rule.badge)
	}
	return badges
}

// EvaluateBadges splits the catalogue into earned and locked badges for the
// given user and repositories as of now.
func EvaluateBadges(user *domain.User, repos []domain.Repository, now time.Time) domain.BadgeSet {
	set := domain.BadgeSet{
		Earned: []domain.Badge{},
		Locked: []domain.Badge{},
	}
	for _, rule := range badgeRules {
		if rule.condition(user, repos, now) {
			set.Earned = append(set.Earned, rule.badge)
		} else {
			set.Locked = append(set.Locked, rule.badge)
		}
	}
	return set
}

func countRepos(repos []domain.Repository, keep func(domain.Repository) bool) int {
	n := 0
	for _, r := range repos {
		if keep(r) {
			n++
		}
	}
	return n
}
