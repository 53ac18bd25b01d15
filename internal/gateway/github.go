// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/naka-gawa/ghprofile/internal/domain"
)

// SearchResultLimit is the number of users or repositories returned by a search.
const SearchResultLimit = 5

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	FetchUser(ctx context.Context, login string) (*domain.User, error)
	FetchReposPage(ctx context.Context, login string, page, perPage int) ([]domain.Repository, error)
	SearchUsers(ctx context.Context, query string) ([]domain.User, error)
	SearchRepos(ctx context.Context, query string) ([]domain.Repository, error)
	// FetchContributions needs an authenticated client; the GraphQL API rejects anonymous calls.
	FetchContributions(ctx context.Context, login string) ([]domain.ContributionDay, error)
}

// Options configures the HTTP clients behind the gateway.
type Options struct {
	// Token is optional. Without it requests are anonymous and rate limited harder.
	Token string
	// BaseURL overrides the REST endpoint (GitHub Enterprise).
	BaseURL string
	// GraphQLURL overrides the GraphQL endpoint (GitHub Enterprise).
	GraphQLURL string
	// Timeout bounds a single HTTP request.
	Timeout time.Duration
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	authenticated bool
	logger        *log.Logger
}

// contributionsQuery reads the contribution calendar of a single user.
type contributionsQuery struct {
	User struct {
		ContributionsCollection struct {
			ContributionCalendar struct {
				TotalContributions int
				Weeks              []struct {
					ContributionDays []struct {
						Date              string
						ContributionCount int
					}
				}
			}
		}
	} `graphql:"user(login: $login)"`
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
func NewGitHubGateway(opts Options, logger *log.Logger) (Fetcher, error) {
	var base http.RoundTripper = &loggingRoundTripper{base: http.DefaultTransport, logger: logger}
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(base, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}

	var transport http.RoundTripper = rateLimitWaiter
	if opts.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
		transport = &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		}
	}
	httpClient := &http.Client{Transport: transport, Timeout: opts.Timeout}

	restClient := github.NewClient(httpClient)
	restClient.UserAgent = "ghprofile"
	if opts.BaseURL != "" {
		baseURL, err := url.Parse(strings.TrimSuffix(opts.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("failed to parse base URL: %w", err)
		}
		restClient.BaseURL = baseURL
	}

	graphqlClient := githubv4.NewClient(httpClient)
	if opts.GraphQLURL != "" {
		graphqlClient = githubv4.NewEnterpriseClient(opts.GraphQLURL, httpClient)
	}

	return &GitHubGateway{
		restClient:    restClient,
		graphqlClient: graphqlClient,
		authenticated: opts.Token != "",
		logger:        logger,
	}, nil
}

func (g *GitHubGateway) FetchUser(ctx context.Context, login string) (*domain.User, error) {
	g.logger.Debug("fetching user", "login", login)
	user, _, err := g.restClient.Users.Get(ctx, login)
	if err != nil {
		return nil, classify("fetch user", err)
	}
	u := toUser(user)
	return &u, nil
}

func (g *GitHubGateway) FetchReposPage(ctx context.Context, login string, page, perPage int) ([]domain.Repository, error) {
	g.logger.Debug("fetching repositories", "login", login, "page", page, "per_page", perPage)
	opts := &github.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{Page: page, PerPage: perPage},
	}
	repos, _, err := g.restClient.Repositories.ListByUser(ctx, login, opts)
	if err != nil {
		return nil, classify("list repositories", err)
	}
	result := make([]domain.Repository, 0, len(repos))
	for _, repo := range repos {
		result = append(result, toRepository(repo))
	}
	return result, nil
}

func (g *GitHubGateway) SearchUsers(ctx context.Context, query string) ([]domain.User, error) {
	g.logger.Debug("searching users", "query", query)
	opts := &github.SearchOptions{ListOptions: github.ListOptions{PerPage: SearchResultLimit}}
	result, _, err := g.restClient.Search.Users(ctx, query, opts)
	if err != nil {
		return nil, classify("search users", err)
	}
	users := make([]domain.User, 0, len(result.Users))
	for _, user := range result.Users {
		users = append(users, toUser(user))
	}
	return users, nil
}

func (g *GitHubGateway) SearchRepos(ctx context.Context, query string) ([]domain.Repository, error) {
	g.logger.Debug("searching repositories", "query", query)
	opts := &github.SearchOptions{ListOptions: github.ListOptions{PerPage: SearchResultLimit}}
	result, _, err := g.restClient.Search.Repositories(ctx, query, opts)
	if err != nil {
		return nil, classify("search repositories", err)
	}
	repos := make([]domain.Repository, 0, len(result.Repositories))
	for _, repo := range result.Repositories {
		repos = append(repos, toRepository(repo))
	}
	return repos, nil
}

// FetchContributions returns the user's contribution calendar for the last year,
// ordered by date.
func (g *GitHubGateway) FetchContributions(ctx context.Context, login string) ([]domain.ContributionDay, error) {
	if !g.authenticated {
		return nil, &APIError{Status: http.StatusUnauthorized, Message: "contribution calendar requires a GitHub token", kind: ErrUnauthorized}
	}
	g.logger.Debug("fetching contribution calendar", "login", login)

	var q contributionsQuery
	variables := map[string]interface{}{"login": githubv4.String(login)}
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		return nil, classifyGraphQL("execute GraphQL query for contributions", err)
	}

	var days []domain.ContributionDay
	for _, week := range q.User.ContributionsCollection.ContributionCalendar.Weeks {
		for _, day := range week.ContributionDays {
			date, err := time.Parse(time.DateOnly, day.Date)
			if err != nil {
				return nil, fmt.Errorf("failed to parse contribution date %q: %w", day.Date, err)
			}
			days = append(days, domain.ContributionDay{Date: date, Count: day.ContributionCount})
		}
	}
	g.logger.Debug("fetched contribution calendar", "login", login, "days", len(days),
		"total", q.User.ContributionsCollection.ContributionCalendar.TotalContributions)
	return days, nil
}

func toUser(u *github.User) domain.User {
	return domain.User{
		Login:           u.GetLogin(),
		ID:              u.GetID(),
		AvatarURL:       u.GetAvatarURL(),
		HTMLURL:         u.GetHTMLURL(),
		Name:            u.GetName(),
		Company:         u.GetCompany(),
		Blog:            u.GetBlog(),
		Location:        u.GetLocation(),
		Email:           u.GetEmail(),
		Bio:             u.GetBio(),
		TwitterUsername: u.GetTwitterUsername(),
		PublicRepos:     u.GetPublicRepos(),
		PublicGists:     u.GetPublicGists(),
		Followers:       u.GetFollowers(),
		Following:       u.GetFollowing(),
		CreatedAt:       u.GetCreatedAt().Time,
		UpdatedAt:       u.GetUpdatedAt().Time,
	}
}

func toRepository(r *github.Repository) domain.Repository {
	return domain.Repository{
		ID:              r.GetID(),
		Name:            r.GetName(),
		FullName:        r.GetFullName(),
		HTMLURL:         r.GetHTMLURL(),
		Description:     r.GetDescription(),
		Fork:            r.GetFork(),
		CreatedAt:       r.GetCreatedAt().Time,
		UpdatedAt:       r.GetUpdatedAt().Time,
		PushedAt:        r.GetPushedAt().Time,
		Homepage:        r.GetHomepage(),
		Size:            r.GetSize(),
		StargazersCount: r.GetStargazersCount(),
		WatchersCount:   r.GetWatchersCount(),
		Language:        r.GetLanguage(),
		ForksCount:      r.GetForksCount(),
		OpenIssuesCount: r.GetOpenIssuesCount(),
		Topics:          r.Topics,
		DefaultBranch:   r.GetDefaultBranch(),
		Visibility:      r.GetVisibility(),
		HasPages:        r.GetHasPages(),
		Owner:           r.GetOwner().GetLogin(),
	}
}
