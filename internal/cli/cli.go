package cli

import (
	"github.com/gitseed/gitseed/internal/utils"
	"github.com/urfave/cli/v2"
)

const helpTemplate = `{{.Name}} - {{.Usage}}

Usage: {{.HelpName}} [options]

Options:
   {{range .VisibleFlags}}{{.}}
   {{end}}`

// NewApp builds the gitseed command line app around the given action.
func NewApp(action cli.ActionFunc) *cli.App {
	cli.AppHelpTemplate = helpTemplate

	return &cli.App{
		Name:    "gitseed",
		Usage:   "generate a synthetic git commit history across a date range",
		Version: "v" + utils.GetVersion(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "no_weekends",
				Aliases: []string{"nw"},
				Usage:   "do not commit on weekends",
			},
			&cli.IntFlag{
				Name:    "max_commits",
				Aliases: []string{"mc"},
				Value:   10,
				Usage:   "maximum commits per day (1-20)",
			},
			&cli.IntFlag{
				Name:    "frequency",
				Aliases: []string{"fr"},
				Value:   80,
				Usage:   "percentage of days to commit",
			},
			&cli.StringFlag{
				Name:    "repository",
				Aliases: []string{"r"},
				Usage:   "remote git repository URL in SSH or HTTPS format",
			},
			&cli.StringFlag{
				Name:    "user_name",
				Aliases: []string{"un"},
				Usage:   "overrides user.name git config",
			},
			&cli.StringFlag{
				Name:    "user_email",
				Aliases: []string{"ue"},
				Usage:   "overrides user.email git config",
			},
			&cli.IntFlag{
				Name:    "days_before",
				Aliases: []string{"db"},
				Value:   365,
				Usage:   "number of days before current date to start commits",
			},
			&cli.IntFlag{
				Name:    "days_after",
				Aliases: []string{"da"},
				Value:   0,
				Usage:   "number of days after current date to end commits",
			},
			&cli.StringFlag{
				Name:    "token",
				Aliases: []string{"t"},
				Usage:   "hosting API token, enables remote repository preflight",
				EnvVars: []string{"GITSEED_TOKEN"},
			},
			&cli.StringFlag{
				Name:    "message",
				Aliases: []string{"m"},
				Value:   "Contribution: {date} {time}",
				Usage:   "commit message template, placeholders {date} {time} {datetime}",
			},
			&cli.BoolFlag{
				Name:    "dry_run",
				Aliases: []string{"d"},
				Usage:   "show the commit plan without touching the filesystem",
			},
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "with --dry_run, print the plan as JSON",
			},
		},
		Action: action,
	}
}
