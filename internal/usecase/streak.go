package usecase

import (
	"sort"
	"time"

	"github.com/naka-gawa/ghprofile/internal/domain"
)

// ComputeStreak derives streak figures from a contribution calendar.
// The current streak ends on the last calendar day, or on the day before
// when nothing has been contributed on the last day yet.
func ComputeStreak(days []domain.ContributionDay) domain.StreakData {
	sorted := make([]domain.ContributionDay, len(days))
	copy(sorted, days)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	var streak domain.StreakData
	run := 0
	for i, day := range sorted {
		streak.TotalContributions += day.Count
		switch {
		case day.Count == 0:
			run = 0
		case i > 0 && sorted[i-1].Count > 0 && isNextDay(sorted[i-1].Date, day.Date):
			run++
		default:
			run = 1
		}
		if run > streak.LongestStreak {
			streak.LongestStreak = run
		}
	}

	end := len(sorted) - 1
	if end >= 0 && sorted[end].Count == 0 {
		end--
	}
	for i := end; i >= 0 && sorted[i].Count > 0; i-- {
		if i < end && !isNextDay(sorted[i].Date, sorted[i+1].Date) {
			break
		}
		streak.CurrentStreak++
	}
	return streak
}

func isNextDay(prev, next time.Time) bool {
	y1, m1, d1 := prev.AddDate(0, 0, 1).Date()
	y2, m2, d2 := next.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
