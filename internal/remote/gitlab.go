package remote

import (
	"fmt"
	"net/http"

	gl "gitlab.com/gitlab-org/api/client-go"
)

func ensureGitlabProject(token string, u URL) error {
	client, err := gl.NewClient(token)
	if err != nil {
		return fmt.Errorf("creating gitlab client: %w", err)
	}

	path := u.Owner + "/" + u.Name
	_, resp, err := client.Projects.GetProject(path, nil)
	if err == nil {
		return nil
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("checking project %s: %w", path, err)
	}

	opts := &gl.CreateProjectOptions{
		Path:       gl.Ptr(u.Name),
		Visibility: gl.Ptr(gl.PrivateVisibility),
	}
	if _, _, err := client.Projects.CreateProject(opts); err != nil {
		return fmt.Errorf("creating project %s: %w", u.Name, err)
	}
	return nil
}
