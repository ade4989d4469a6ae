package gitrepo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ContributionFile is the tracked file each commit appends to.
const ContributionFile = "README.md"

// Repo is the local repository being generated.
type Repo struct {
	Dir    string
	runner Runner
}

func New(dir string, runner Runner) *Repo {
	return &Repo{Dir: dir, runner: runner}
}

func (r *Repo) git(arg ...string) error {
	_, err := r.runner.Run(r.Dir, "git", arg...)
	return err
}

// Create makes the target directory. An existing directory is fatal and
// is never retried.
func (r *Repo) Create() error {
	if err := os.Mkdir(r.Dir, 0755); err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%w: %s", ErrDirectoryExists, r.Dir)
		}
		return fmt.Errorf("creating %s: %w", r.Dir, err)
	}
	return nil
}

// Init initializes the repository with "main" as the primary branch.
func (r *Repo) Init() error {
	return r.git("init", "-b", "main")
}

// ConfigureIdentity applies local user.name and user.email overrides.
// Empty values are skipped.
func (r *Repo) ConfigureIdentity(name, email string) error {
	var errs []error
	if name != "" {
		errs = append(errs, r.git("config", "user.name", name))
	}
	if email != "" {
		errs = append(errs, r.git("config", "user.email", email))
	}
	return errors.Join(errs...)
}

// Contribute appends the label to the tracked file, stages everything
// and commits with the authored date forced to at. The --date value
// keeps the historical literal quoting around the timestamp. A file
// write failure is fatal; git failures are returned but the remaining
// commands still run.
func (r *Repo) Contribute(label string, at time.Time) error {
	f, err := os.OpenFile(filepath.Join(r.Dir, ContributionFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("appending to %s: %w", ContributionFile, err)
	}
	if _, err := f.WriteString(label + "\n\n"); err != nil {
		f.Close()
		return fmt.Errorf("appending to %s: %w", ContributionFile, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("appending to %s: %w", ContributionFile, err)
	}

	return errors.Join(
		r.git("add", "."),
		r.git("commit", "-m", label, "--date", `"`+at.Format("2006-01-02 15:04:05")+`"`),
	)
}

// SetupRemote registers url as origin, forces the local branch name to
// main and pushes with upstream tracking. Failures do not stop the
// remaining commands.
func (r *Repo) SetupRemote(url string) error {
	return errors.Join(
		r.git("remote", "add", "origin", url),
		r.git("branch", "-M", "main"),
		r.git("push", "-u", "origin", "main"),
	)
}
