// Package message renders the per-commit label from a template.
package message

import (
	"fmt"
	"time"

	"github.com/valyala/fasttemplate"
)

// DefaultTemplate reproduces the historical commit label.
const DefaultTemplate = "Contribution: {date} {time}"

// Template renders commit labels for synthesized timestamps.
type Template struct {
	ft *fasttemplate.Template
}

// New parses a label template. Placeholders use single braces:
// {date}, {time} and {datetime}; unknown placeholders pass through
// unchanged.
func New(tpl string) (*Template, error) {
	ft, err := fasttemplate.NewTemplate(tpl, "{", "}")
	if err != nil {
		return nil, fmt.Errorf("parsing message template: %w", err)
	}
	return &Template{ft: ft}, nil
}

func (t *Template) Render(at time.Time) string {
	return t.ft.ExecuteStringStd(map[string]interface{}{
		"date":     at.Format("2006-01-02"),
		"time":     at.Format("15:04"),
		"datetime": at.Format("2006-01-02 15:04"),
	})
}
