// Package display owns all user-facing terminal output.
package display

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"
)

// Plan is the dry-run view of a commit schedule, grouped by day.
type Plan struct {
	TotalCommits int       `json:"total_commits"`
	Days         []PlanDay `json:"days"`
}

type PlanDay struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}

// BuildPlan groups a chronological schedule into per-day buckets.
func BuildPlan(dates []time.Time) Plan {
	plan := Plan{TotalCommits: len(dates), Days: []PlanDay{}}
	for _, d := range dates {
		day := d.Format("2006-01-02")
		if n := len(plan.Days); n == 0 || plan.Days[n-1].Date != day {
			plan.Days = append(plan.Days, PlanDay{Date: day})
		}
		last := &plan.Days[len(plan.Days)-1]
		last.Times = append(last.Times, d.Format("15:04"))
	}
	return plan
}

// RunHeader announces what the run is about to do.
func RunHeader(dir string, commits int) {
	color.Blue("\nTarget directory: %s", dir)
	color.Blue("Planned commits: %d", commits)
	fmt.Println()
}

// PlanTable renders the dry-run plan for humans.
func PlanTable(dates []time.Time) {
	plan := BuildPlan(dates)

	color.Blue("\nCommit plan (%d commits over %d days):\n", plan.TotalCommits, len(plan.Days))
	for _, day := range plan.Days {
		fmt.Printf("  %s  %2d commit(s)", day.Date, len(day.Times))
		if len(day.Times) > 0 {
			fmt.Printf("  %s-%s", day.Times[0], day.Times[len(day.Times)-1])
		}
		fmt.Println()
	}
	if plan.TotalCommits == 0 {
		color.Yellow("  (empty schedule)")
	}
}

// WritePlanJSON encodes the dry-run plan for machines.
func WritePlanJSON(w io.Writer, dates []time.Time) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(BuildPlan(dates)); err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	return nil
}

// Warn prints a non-fatal problem and lets the run continue.
func Warn(err error) {
	color.Yellow("⚠️  %v", err)
}

// Summary prints the single success notice that ends a run.
func Summary() {
	color.Green("\nRepository generation completed successfully!")
}
