package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/naka-gawa/ghprofile/internal/domain"
	"github.com/naka-gawa/ghprofile/internal/usecase"
)

var (
	bold    = color.New(color.Bold)
	faint   = color.New(color.Faint)
	heading = color.New(color.Bold, color.FgBlue)

	tierColors = map[domain.Tier]*color.Color{
		domain.TierBronze:   color.New(color.FgYellow),
		domain.TierSilver:   color.New(color.FgWhite),
		domain.TierGold:     color.New(color.FgHiYellow, color.Bold),
		domain.TierPlatinum: color.New(color.FgCyan, color.Bold),
	}
)

// Text renders human readable reports.
type Text struct {
	w   io.Writer
	now func() time.Time
}

// NewText creates a renderer writing to w.
func NewText(w io.Writer, now func() time.Time) *Text {
	if now == nil {
		now = time.Now
	}
	return &Text{w: w, now: now}
}

// Profile writes the full profile report.
func (t *Text) Profile(p *domain.Profile) error {
	var b strings.Builder
	u := p.User

	fmt.Fprintf(&b, "%s (@%s)\n", bold.Sprint(u.DisplayName()), u.Login)
	if u.Bio != "" {
		fmt.Fprintf(&b, "%s\n", u.Bio)
	}
	for _, field := range []struct{ label, value string }{
		{"Company", u.Company},
		{"Location", u.Location},
		{"Blog", u.Blog},
	} {
		if field.value != "" {
			fmt.Fprintf(&b, "  %s %s\n", faint.Sprint(field.label+":"), field.value)
		}
	}
	fmt.Fprintf(&b, "  %s %s\n", faint.Sprint("Joined:"), FormatDate(u.CreatedAt))
	fmt.Fprintf(&b, "  %d repos · %d gists · %d followers · %d following\n",
		u.PublicRepos, u.PublicGists, u.Followers, u.Following)

	s := p.Stats
	fmt.Fprintf(&b, "\n%s\n", heading.Sprint("Repositories"))
	fmt.Fprintf(&b, "  total %d · original %d · forked %d · deployed %d\n", s.Total, s.Original, s.Forked, s.Deployed)

	if len(p.TopLanguages) > 0 {
		fmt.Fprintf(&b, "\n%s\n", heading.Sprint("Languages"))
		for _, lang := range p.TopLanguages {
			fmt.Fprintf(&b, "  %-14s %3d%% %s\n", lang.Name, lang.Percentage, strings.Repeat("█", max(lang.Percentage/5, 1)))
		}
	}

	in := p.Insights
	fmt.Fprintf(&b, "\n%s\n", heading.Sprint("Insights"))
	fmt.Fprintf(&b, "  %s\n", in.DevelopmentStyle)
	fmt.Fprintf(&b, "  %d total stars (mean %.2f, median %.1f)", in.TotalStars, in.MeanStars, in.MedianStars)
	if in.MostStarred != "" {
		fmt.Fprintf(&b, ", most starred: %s", in.MostStarred)
	}
	fmt.Fprintf(&b, "\n  %d years on GitHub\n", in.AccountAgeYears)

	if p.Streak != nil {
		fmt.Fprintf(&b, "\n%s\n", heading.Sprint("Streak"))
		fmt.Fprintf(&b, "  current %d days · longest %d days · %d contributions\n",
			p.Streak.CurrentStreak, p.Streak.LongestStreak, p.Streak.TotalContributions)
	}

	if _, err := io.WriteString(t.w, b.String()); err != nil {
		return err
	}
	return t.Badges(p.Badges)
}

// Badges writes the earned and locked badges.
func (t *Text) Badges(set domain.BadgeSet) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s %d / %d\n", heading.Sprint("Achievements"), len(set.Earned), set.Total())
	for _, badge := range set.Earned {
		c := tierColors[badge.Tier]
		fmt.Fprintf(&b, "  ✔ %s %s\n", c.Sprintf("%-18s", badge.Name), faint.Sprintf("[%s] %s", badge.Tier, badge.Description))
	}
	for _, badge := range set.Locked {
		fmt.Fprintf(&b, "  %s\n", faint.Sprintf("✗ %-18s [%s] %s", badge.Name, badge.Tier, badge.Description))
	}
	_, err := io.WriteString(t.w, b.String())
	return err
}

// Catalogue writes every badge definition.
func (t *Text) Catalogue(badges []domain.Badge) error {
	var b strings.Builder
	for _, badge := range badges {
		fmt.Fprintf(&b, "%-16s %s %s\n", badge.ID, tierColors[badge.Tier].Sprintf("%-9s", badge.Tier), badge.Description)
	}
	_, err := io.WriteString(t.w, b.String())
	return err
}

// Repos writes a repository listing with deployment links and update times.
func (t *Text) Repos(repos []domain.Repository, counts usecase.TabCounts) error {
	var b strings.Builder
	now := t.now()
	fmt.Fprintf(&b, "%s all %d · deployed %d · popular %d\n",
		heading.Sprint("Repositories"), counts.All, counts.Deployed, counts.Popular)
	if len(repos) == 0 {
		fmt.Fprintln(&b, faint.Sprint("No repositories match your filters"))
	}
	for _, repo := range repos {
		name := bold.Sprint(repo.Name)
		if repo.Fork {
			name += faint.Sprint(" (fork)")
		}
		fmt.Fprintf(&b, "%s ★%d", name, repo.StargazersCount)
		if repo.Language != "" {
			fmt.Fprintf(&b, " · %s", repo.Language)
		}
		if !repo.UpdatedAt.IsZero() {
			fmt.Fprintf(&b, " · updated %s", RelativeTime(repo.UpdatedAt, now))
		}
		fmt.Fprintln(&b)
		if repo.Description != "" {
			fmt.Fprintf(&b, "  %s\n", repo.Description)
		}
		if url := usecase.DeploymentURL(repo); url != "" {
			fmt.Fprintf(&b, "  %s %s\n", faint.Sprint("live:"), url)
		}
	}
	_, err := io.WriteString(t.w, b.String())
	return err
}

// Search writes search hits.
func (t *Text) Search(result *usecase.SearchResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", heading.Sprint("Users"))
	for _, u := range result.Users {
		fmt.Fprintf(&b, "  %s %s\n", bold.Sprint(u.Login), faint.Sprint(u.HTMLURL))
	}
	fmt.Fprintf(&b, "%s\n", heading.Sprint("Repositories"))
	for _, r := range result.Repos {
		fmt.Fprintf(&b, "  %s ★%d %s\n", bold.Sprint(r.FullName), r.StargazersCount, faint.Sprint(r.Description))
	}
	_, err := io.WriteString(t.w, b.String())
	return err
}
