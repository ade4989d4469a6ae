package config

import (
	"strings"
	"time"

	"github.com/urfave/cli/v2"
)

// Config holds the immutable parameters of one generation run.
type Config struct {
	NoWeekends bool
	MaxCommits int
	Frequency  int
	Repository string
	UserName   string
	UserEmail  string
	DaysBefore int
	DaysAfter  int

	Token   string
	Message string
	DryRun  bool
	JSON    bool
}

func ParseConfig(c *cli.Context) (*Config, error) {
	return &Config{
		NoWeekends: c.Bool("no_weekends"),
		MaxCommits: c.Int("max_commits"),
		Frequency:  c.Int("frequency"),
		Repository: c.String("repository"),
		UserName:   c.String("user_name"),
		UserEmail:  c.String("user_email"),
		DaysBefore: c.Int("days_before"),
		DaysAfter:  c.Int("days_after"),
		Token:      c.String("token"),
		Message:    c.String("message"),
		DryRun:     c.Bool("dry_run"),
		JSON:       c.Bool("json"),
	}, nil
}

// TargetDirectory derives the repository directory name: the remote URL's
// final path segment with its extension trimmed, or a timestamped default
// when no remote is configured.
func (cfg *Config) TargetDirectory(now time.Time) string {
	if cfg.Repository == "" {
		return "repository-" + now.Format("2006-01-02-15-04-05")
	}

	start := strings.LastIndex(cfg.Repository, "/") + 1
	end := strings.LastIndex(cfg.Repository, ".")
	// dotless final segment: keep it whole rather than slicing garbage
	if end < start {
		end = len(cfg.Repository)
	}
	return cfg.Repository[start:end]
}
