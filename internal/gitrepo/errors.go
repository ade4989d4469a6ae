package gitrepo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDirectoryExists is the one fatal condition of repository creation:
// the target directory is already present.
var ErrDirectoryExists = errors.New("target directory already exists")

// GitError carries the command, its arguments and captured output of a
// failed external invocation. Callers may inspect it or, matching the
// historical behavior, warn and continue.
type GitError struct {
	Op     string
	Args   []string
	Output string
	Err    error
}

func (e *GitError) Error() string {
	msg := fmt.Sprintf("%s %s: %v", e.Op, strings.Join(e.Args, " "), e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	}
	return msg
}

func (e *GitError) Unwrap() error {
	return e.Err
}
