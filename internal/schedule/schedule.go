package schedule

import (
	"math/rand"
	"time"
)

// Params controls commit date synthesis for a single run.
type Params struct {
	DaysBefore int
	DaysAfter  int
	Frequency  int // percent chance that a candidate day receives commits
	MaxCommits int // per-day ceiling, clamped to [1,20] at draw time
	NoWeekends bool
}

func DefaultParams() Params {
	return Params{
		DaysBefore: 365,
		DaysAfter:  0,
		Frequency:  80,
		MaxCommits: 10,
	}
}

// Anchor pins now to 20:00 with seconds and sub-seconds zeroed. Every
// synthesized date is this instant shifted by whole days plus a minute offset.
func Anchor(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 20, 0, 0, 0, now.Location())
}

// Generate synthesizes the ordered commit schedule for the window
// [now-DaysBefore, now+DaysAfter). Dates come out chronological: days in
// order, minute offsets increasing within a day. The result is not
// reproducible unless rng is seeded by the caller.
func Generate(p Params, rng *rand.Rand, now time.Time) []time.Time {
	start := Anchor(now).AddDate(0, 0, -p.DaysBefore)

	var dates []time.Time
	for n := 0; n < p.DaysBefore+p.DaysAfter; n++ {
		day := start.AddDate(0, 0, n)

		// weekend days consume no draws at all
		if p.NoWeekends && isWeekend(day) {
			continue
		}

		// the draw range is inclusive of 100, so frequency=100 still skips
		// a day once in 101 draws
		if rng.Intn(101) >= p.Frequency {
			continue
		}

		// the final count is drawn against a bound that is itself freshly
		// drawn for the day
		count := rng.Intn(contributionsPerDay(p.MaxCommits, rng)) + 1
		for m := 0; m < count; m++ {
			dates = append(dates, day.Add(time.Duration(m)*time.Minute))
		}
	}

	return dates
}

// contributionsPerDay draws the per-day commit bound from [1, MaxCommits]
// with MaxCommits clamped into [1,20].
func contributionsPerDay(maxCommits int, rng *rand.Rand) int {
	limit := maxCommits
	if limit > 20 {
		limit = 20
	}
	if limit < 1 {
		limit = 1
	}
	return rng.Intn(limit) + 1
}

func isWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
