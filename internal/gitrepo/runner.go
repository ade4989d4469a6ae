// Package gitrepo drives the external git binary to build the
// synthesized history.
package gitrepo

import (
	"os/exec"
)

// Runner executes one external command in the given directory and
// blocks until it exits, returning combined stdout+stderr. The working
// directory is always passed explicitly; nothing here chdirs.
type Runner interface {
	Run(dir, name string, arg ...string) (string, error)
}

type execRunner struct{}

// NewRunner returns the production Runner backed by os/exec.
func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) Run(dir, name string, arg ...string) (string, error) {
	cmd := exec.Command(name, arg...)
	if dir != "" {
		cmd.Dir = dir
	}

	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), &GitError{
			Op:     name,
			Args:   arg,
			Output: string(out),
			Err:    err,
		}
	}
	return string(out), nil
}
