package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/naka-gawa/ghprofile/internal/domain"
)

// ExportRepoLimit caps how many repositories an export carries.
const ExportRepoLimit = 10

// Export is the downloadable snapshot of a profile.
type Export struct {
	User       *domain.User        `json:"user"`
	Repos      []domain.Repository `json:"repos"`
	Stats      domain.RepoStats    `json:"stats"`
	ExportedAt time.Time           `json:"exported_at"`
}

// NewExport snapshots a profile at the given time.
func NewExport(p *domain.Profile, now time.Time) Export {
	repos := p.Repositories
	if len(repos) > ExportRepoLimit {
		repos = repos[:ExportRepoLimit]
	}
	return Export{
		User:       p.User,
		Repos:      repos,
		Stats:      p.Stats,
		ExportedAt: now.UTC(),
	}
}

// ExportFilename is the suggested file name for an export.
func ExportFilename(login string) string {
	return fmt.Sprintf("%s-github-profile.json", login)
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal results to JSON: %w", err)
	}
	return nil
}

// ShareText is the one-line pitch used when sharing a profile.
func ShareText(u *domain.User) string {
	return fmt.Sprintf("Check out %s's GitHub profile with %d repositories and %d followers!",
		u.DisplayName(), u.PublicRepos, u.Followers)
}

// ProfileURL is the canonical GitHub URL of the user.
func ProfileURL(u *domain.User) string {
	return "https://github.com/" + u.Login
}
