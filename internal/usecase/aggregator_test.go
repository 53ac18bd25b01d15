package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/naka-gawa/ghprofile/internal/domain"
)

// TestAggregator_Aggregate uses a table-driven approach to test the aggregator.
func TestAggregator_Aggregate(t *testing.T) {
	user := &domain.User{Login: "octocat", Followers: 1500, Location: "SF", Company: "GitHub", CreatedAt: testNow.AddDate(-10, 0, 0)}
	page1 := []domain.Repository{
		{Name: "site", Language: "Go", Homepage: "https://octo.dev", StargazersCount: 150, UpdatedAt: testNow.AddDate(0, 0, -2)},
		{Name: "fork", Language: "C", Fork: true},
	}
	page2 := []domain.Repository{
		{Name: "lib", Language: "Go", Topics: []string{"demo"}},
	}
	calendarDays := calendar(1, 2, 0, 3)

	testCases := []struct {
		name             string
		contributions    bool
		userErr          error
		repoErr          error
		contributionsErr error
		expectError      error
		expectStreak     *domain.StreakData
	}{
		{
			name: "happy path - aggregates user and all repository pages",
		},
		{
			name:          "contributions enabled - streak attached",
			contributions: true,
			expectStreak:  &domain.StreakData{CurrentStreak: 1, LongestStreak: 2, TotalContributions: 6},
		},
		{
			name:             "contributions failure only drops the streak",
			contributions:    true,
			contributionsErr: errors.New("graphql down"),
		},
		{
			name:        "error case - fetch user fails",
			userErr:     errors.New("user not found"),
			expectError: errors.New("user not found"),
		},
		{
			name:        "error case - repository page fails",
			repoErr:     errors.New("github api error"),
			expectError: errors.New("github api error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange: Set up the test for this specific case ---
			fetcher := new(mockFetcher)
			if tc.userErr != nil {
				fetcher.On("FetchUser", mock.Anything, "octocat").Return(nil, tc.userErr)
			} else {
				fetcher.On("FetchUser", mock.Anything, "octocat").Return(user, nil).Maybe()
			}
			if tc.repoErr != nil {
				fetcher.On("FetchReposPage", mock.Anything, "octocat", 1, 2).Return(nil, tc.repoErr)
			} else {
				fetcher.On("FetchReposPage", mock.Anything, "octocat", 1, 2).Return(page1, nil).Maybe()
				fetcher.On("FetchReposPage", mock.Anything, "octocat", 2, 2).Return(page2, nil).Maybe()
			}
			if tc.contributions {
				if tc.contributionsErr != nil {
					fetcher.On("FetchContributions", mock.Anything, "octocat").Return(nil, tc.contributionsErr)
				} else {
					fetcher.On("FetchContributions", mock.Anything, "octocat").Return(calendarDays, nil)
				}
			}

			aggregator := NewAggregator(fetcher, log.New(io.Discard),
				WithPerPage(2),
				WithContributions(tc.contributions),
				WithClock(func() time.Time { return testNow }),
			)

			// --- Act: Execute the method we want to test ---
			profile, err := aggregator.Aggregate(context.Background(), " octocat ")

			// --- Assert: Check the results ---
			if tc.expectError != nil {
				require.Error(t, err)
				assert.Equal(t, tc.expectError.Error(), err.Error())
				assert.Nil(t, profile)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user, profile.User)
			assert.Equal(t, []string{"site", "fork", "lib"}, names(profile.Repositories))
			assert.Equal(t, domain.RepoStats{
				Total:     3,
				Deployed:  2,
				Forked:    1,
				Original:  2,
				Languages: domain.LanguageStats{"Go": 2, "C": 1},
			}, profile.Stats)
			assert.Equal(t, "Go", profile.TopLanguages[0].Name)
			assert.Equal(t, []string{"star-collector", "rising-star", "veteran", "active", "global"}, badgeIDs(profile.Badges.Earned))
			assert.Equal(t, 150, profile.Insights.TotalStars)
			assert.Equal(t, 10, profile.Insights.AccountAgeYears)
			assert.Equal(t, tc.expectStreak, profile.Streak)

			// Verify that the mock methods were called as expected
			fetcher.AssertExpectations(t)
		})
	}
}

func TestAggregator_Aggregate_BlankLogin(t *testing.T) {
	fetcher := new(mockFetcher)
	aggregator := NewAggregator(fetcher, log.New(io.Discard))

	profile, err := aggregator.Aggregate(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, profile)
	fetcher.AssertNotCalled(t, "FetchUser", mock.Anything, mock.Anything)
}
