// Package service wires configuration, schedule synthesis and the
// repository driver into one run.
package service

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"time"

	"github.com/gitseed/gitseed/internal/config"
	"github.com/gitseed/gitseed/internal/display"
	"github.com/gitseed/gitseed/internal/gitrepo"
	"github.com/gitseed/gitseed/internal/message"
	"github.com/gitseed/gitseed/internal/remote"
	"github.com/gitseed/gitseed/internal/schedule"
	"github.com/schollz/progressbar/v3"
)

type Orchestrator struct {
	cfg    *config.Config
	runner gitrepo.Runner
	rng    *rand.Rand
	now    func() time.Time
}

func NewOrchestrator(cfg *config.Config) *Orchestrator {
	return &Orchestrator{
		cfg:    cfg,
		runner: gitrepo.NewRunner(),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
	}
}

// Run executes the whole generation: synthesize the schedule, create
// and initialize the repository, commit once per synthesized date, then
// optionally wire up and push to the remote. Git failures warn and the
// run continues; only filesystem and template errors are fatal.
func (o *Orchestrator) Run(ctx context.Context) error {
	tpl, err := message.New(o.cfg.Message)
	if err != nil {
		return err
	}

	// the run's start instant anchors both the window and the default
	// directory name
	now := o.now()

	dates := schedule.Generate(schedule.Params{
		DaysBefore: o.cfg.DaysBefore,
		DaysAfter:  o.cfg.DaysAfter,
		Frequency:  o.cfg.Frequency,
		MaxCommits: o.cfg.MaxCommits,
		NoWeekends: o.cfg.NoWeekends,
	}, o.rng, now)

	if o.cfg.DryRun {
		if o.cfg.JSON {
			return display.WritePlanJSON(os.Stdout, dates)
		}
		display.PlanTable(dates)
		return nil
	}

	dir := o.cfg.TargetDirectory(now)
	display.RunHeader(dir, len(dates))

	repo := gitrepo.New(dir, o.runner)
	if err := repo.Create(); err != nil {
		return err
	}
	warnGit(repo.Init())
	if o.cfg.UserName != "" || o.cfg.UserEmail != "" {
		warnGit(repo.ConfigureIdentity(o.cfg.UserName, o.cfg.UserEmail))
	}

	bar := progressbar.NewOptions(len(dates),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("[cyan]Planting commits 🌱[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	for _, at := range dates {
		err := repo.Contribute(tpl.Render(at), at)
		if err != nil && !isGitError(err) {
			return err
		}
		warnGit(err)
		bar.Add(1)
	}

	if o.cfg.Repository != "" {
		o.preflight(ctx)
		warnGit(repo.SetupRemote(o.cfg.Repository))
	}

	display.Summary()
	return nil
}

// preflight makes sure the hosted repository exists before the push.
// Every failure here is advisory; the push happens regardless.
func (o *Orchestrator) preflight(ctx context.Context) {
	if o.cfg.Token == "" {
		return
	}
	u, err := remote.Parse(o.cfg.Repository)
	if err != nil {
		display.Warn(err)
		return
	}
	if err := remote.Preflight(ctx, o.cfg.Token, u); err != nil {
		display.Warn(err)
	}
}

func isGitError(err error) bool {
	var gerr *gitrepo.GitError
	return errors.As(err, &gerr)
}

func warnGit(err error) {
	if err != nil && isGitError(err) {
		display.Warn(err)
	}
}
