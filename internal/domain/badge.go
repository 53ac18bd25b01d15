package domain

// Tier ranks how hard a badge is to earn.
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// Badge is a named achievement.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Tier        Tier   `json:"tier"`
}

// BadgeSet splits the badge catalogue into earned and locked badges.
// Both slices keep catalogue order.
type BadgeSet struct {
	Earned []Badge `json:"earned"`
	Locked []Badge `json:"locked"`
}

// Total returns the size of the catalogue the set was evaluated against.
func (s BadgeSet) Total() int {
	return len(s.Earned) + len(s.Locked)
}
