// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// User is the public profile of a GitHub account.
type User struct {
	Login           string    `json:"login"`
	ID              int64     `json:"id"`
	AvatarURL       string    `json:"avatar_url"`
	HTMLURL         string    `json:"html_url"`
	Name            string    `json:"name,omitempty"`
	Company         string    `json:"company,omitempty"`
	Blog            string    `json:"blog,omitempty"`
	Location        string    `json:"location,omitempty"`
	Email           string    `json:"email,omitempty"`
	Bio             string    `json:"bio,omitempty"`
	TwitterUsername string    `json:"twitter_username,omitempty"`
	PublicRepos     int       `json:"public_repos"`
	PublicGists     int       `json:"public_gists"`
	Followers       int       `json:"followers"`
	Following       int       `json:"following"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// DisplayName returns the user's name, falling back to the login.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Login
}

// Repository is a public repository owned by a user.
type Repository struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"`
	HTMLURL         string    `json:"html_url"`
	Description     string    `json:"description,omitempty"`
	Fork            bool      `json:"fork"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	PushedAt        time.Time `json:"pushed_at"`
	Homepage        string    `json:"homepage,omitempty"`
	Size            int       `json:"size"`
	StargazersCount int       `json:"stargazers_count"`
	WatchersCount   int       `json:"watchers_count"`
	Language        string    `json:"language,omitempty"`
	ForksCount      int       `json:"forks_count"`
	OpenIssuesCount int       `json:"open_issues_count"`
	Topics          []string  `json:"topics,omitempty"`
	DefaultBranch   string    `json:"default_branch"`
	Visibility      string    `json:"visibility"`
	HasPages        bool      `json:"has_pages"`
	Owner           string    `json:"owner,omitempty"`
}
