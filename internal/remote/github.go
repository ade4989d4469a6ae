package remote

import (
	"context"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

func newGithubClient(ctx context.Context, token string) *gh.Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return gh.NewClient(oauth2.NewClient(ctx, ts))
}

func ensureGithubRepo(ctx context.Context, token string, u URL) error {
	client := newGithubClient(ctx, token)

	_, resp, err := client.Repositories.Get(ctx, u.Owner, u.Name)
	if err == nil {
		return nil
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("checking repository %s/%s: %w", u.Owner, u.Name, err)
	}

	repo := &gh.Repository{
		Name:    gh.String(u.Name),
		Private: gh.Bool(true),
	}
	// empty org creates under the authenticated user
	if _, _, err := client.Repositories.Create(ctx, "", repo); err != nil {
		return fmt.Errorf("creating repository %s: %w", u.Name, err)
	}
	return nil
}
