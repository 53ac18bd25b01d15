package domain

import "time"

// LanguageStats maps a primary language to the number of repositories using it.
type LanguageStats map[string]int

// RepoStats is the roll-up of a user's repository set.
type RepoStats struct {
	Total     int           `json:"total"`
	Deployed  int           `json:"deployed"`
	Forked    int           `json:"forked"`
	Original  int           `json:"original"`
	Languages LanguageStats `json:"languages"`
}

// LanguageRank is one row of the ranked language table.
type LanguageRank struct {
	Name       string `json:"name"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// ContributionDay is a single cell of the contribution calendar.
type ContributionDay struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// StreakData summarizes consecutive days with contributions.
type StreakData struct {
	CurrentStreak      int `json:"current_streak"`
	LongestStreak      int `json:"longest_streak"`
	TotalContributions int `json:"total_contributions"`
}

// Insights are the derived talking points shown next to a profile.
type Insights struct {
	TopLanguages     []LanguageRank `json:"top_languages"`
	DevelopmentStyle string         `json:"development_style"`
	TotalStars       int            `json:"total_stars"`
	MeanStars        float64        `json:"mean_stars"`
	MedianStars      float64        `json:"median_stars"`
	MostStarred      string         `json:"most_starred,omitempty"`
	AccountAgeYears  int            `json:"account_age_years"`
}

// Profile is everything the dashboard needs for a single user.
type Profile struct {
	User         *User          `json:"user"`
	Repositories []Repository   `json:"repositories"`
	Stats        RepoStats      `json:"stats"`
	TopLanguages []LanguageRank `json:"top_languages"`
	Badges       BadgeSet       `json:"badges"`
	Insights     Insights       `json:"insights"`
	Streak       *StreakData    `json:"streak,omitempty"`
}
