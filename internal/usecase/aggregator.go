// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/naka-gawa/ghprofile/internal/domain"
	"github.com/naka-gawa/ghprofile/internal/gateway"
)

// ErrInvalidInput is returned for requests rejected before any API call.
var ErrInvalidInput = errors.New("invalid input")

// Aggregator is the use case for building a GitHub profile.
// It orchestrates the fetching and combining of data.
type Aggregator struct {
	fetcher       gateway.Fetcher
	logger        *log.Logger
	perPage       int
	contributions bool
	now           func() time.Time
}

// Option customizes an Aggregator.
type Option func(*Aggregator)

// WithPerPage sets the page size used when collecting repositories.
func WithPerPage(n int) Option {
	return func(a *Aggregator) { a.perPage = n }
}

// WithContributions enables fetching the contribution calendar for streaks.
func WithContributions(enabled bool) Option {
	return func(a *Aggregator) { a.contributions = enabled }
}

// WithClock replaces time.Now for time-dependent badges and insights.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) { a.now = now }
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(fetcher gateway.Fetcher, logger *log.Logger, opts ...Option) *Aggregator {
	a := &Aggregator{
		fetcher: fetcher,
		logger:  logger,
		perPage: MaxPerPage,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Aggregate fetches the user and the full repository set concurrently and
// derives stats, language ranking, badges and insights from them.
func (a *Aggregator) Aggregate(ctx context.Context, login string) (*domain.Profile, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	a.logger.Debug("starting profile aggregation", "login", login)
	start := time.Now()

	var user *domain.User
	var repos []domain.Repository
	var days []domain.ContributionDay

	// Use an errgroup to fetch all data concurrently.
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		var err error
		user, err = a.fetcher.FetchUser(egCtx, login)
		return err
	})

	eg.Go(func() error {
		var err error
		repos, err = CollectRepos(egCtx, a.fetcher, login, a.perPage)
		return err
	})

	// A missing calendar only drops the streak, it never fails the profile.
	if a.contributions {
		eg.Go(func() error {
			var err error
			days, err = a.fetcher.FetchContributions(egCtx, login)
			if err != nil {
				a.logger.Warn("skipping contribution streak", "login", login, "err", err)
				days = nil
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	now := a.now()
	stats := CalculateRepoStats(repos)
	profile := &domain.Profile{
		User:         user,
		Repositories: repos,
		Stats:        stats,
		TopLanguages: TopLanguages(stats.Languages, DefaultTopLanguages),
		Badges:       EvaluateBadges(user, repos, now),
		Insights:     Summarize(user, repos, stats, now),
	}
	if days != nil {
		streak := ComputeStreak(days)
		profile.Streak = &streak
	}

	a.logger.Info("profile aggregated", "login", login, "repos", len(repos),
		"badges", len(profile.Badges.Earned), "took", time.Since(start).Round(time.Millisecond))
	return profile, nil
}
