package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/naka-gawa/ghprofile/internal/domain"
)

// mockFetcher is a mock implementation of the gateway.Fetcher interface.
// It allows us to simulate the behavior of the GitHub gateway without making real API calls.
type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchUser(ctx context.Context, login string) (*domain.User, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockFetcher) FetchReposPage(ctx context.Context, login string, page, perPage int) ([]domain.Repository, error) {
	args := m.Called(ctx, login, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Repository), args.Error(1)
}

func (m *mockFetcher) SearchUsers(ctx context.Context, query string) ([]domain.User, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *mockFetcher) SearchRepos(ctx context.Context, query string) ([]domain.Repository, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Repository), args.Error(1)
}

func (m *mockFetcher) FetchContributions(ctx context.Context, login string) ([]domain.ContributionDay, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContributionDay), args.Error(1)
}

// repoNamed builds a minimal repository for table cases.
func repoNamed(name string) domain.Repository {
	return domain.Repository{Name: name, FullName: "octocat/" + name, Owner: "octocat"}
}
