// Package remote parses remote repository URLs and optionally ensures
// the hosted repository exists before the final push.
package remote

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// URL is a parsed remote location. Both HTTPS and scp-like SSH forms
// are accepted.
type URL struct {
	Raw   string
	Host  string
	Owner string
	Name  string
}

// Parse splits a remote URL into host, owner and repository name with
// the .git extension trimmed.
func Parse(raw string) (URL, error) {
	host, path := "", ""

	switch {
	case strings.Contains(raw, "://"):
		u, err := url.Parse(raw)
		if err != nil {
			return URL{}, fmt.Errorf("parsing remote url: %w", err)
		}
		host = u.Host
		path = strings.Trim(u.Path, "/")
	case strings.Contains(raw, "@") && strings.Contains(raw, ":"):
		// scp-like form: git@host:owner/name.git
		rest := raw[strings.Index(raw, "@")+1:]
		idx := strings.Index(rest, ":")
		host = rest[:idx]
		path = strings.Trim(rest[idx+1:], "/")
	default:
		return URL{}, fmt.Errorf("unrecognized remote url: %s", raw)
	}

	parts := strings.Split(path, "/")
	if len(parts) < 2 {
		return URL{}, fmt.Errorf("remote url has no owner/name path: %s", raw)
	}

	name := strings.TrimSuffix(parts[len(parts)-1], ".git")
	owner := strings.Join(parts[:len(parts)-1], "/")

	return URL{Raw: raw, Host: host, Owner: owner, Name: name}, nil
}

// Preflight ensures the hosted repository exists so the push has a
// target, creating it (private) when missing. Unknown hosts and empty
// tokens skip silently; the push is attempted either way.
func Preflight(ctx context.Context, token string, u URL) error {
	if token == "" {
		return nil
	}

	switch {
	case strings.Contains(u.Host, "github"):
		return ensureGithubRepo(ctx, token, u)
	case strings.Contains(u.Host, "gitlab"):
		return ensureGitlabProject(token, u)
	}
	return nil
}
