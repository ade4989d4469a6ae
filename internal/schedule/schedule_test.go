package schedule

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.March, 13, 9, 41, 27, 500, time.UTC)

func TestAnchor_pins_evening(t *testing.T) {
	t.Parallel()

	got := Anchor(testNow)

	assert.Equal(t, time.Date(2024, time.March, 13, 20, 0, 0, 0, time.UTC), got)
}

func TestGenerate_window_containment(t *testing.T) {
	t.Parallel()

	p := Params{DaysBefore: 30, DaysAfter: 5, Frequency: 80, MaxCommits: 10}
	rng := rand.New(rand.NewSource(42))

	dates := Generate(p, rng, testNow)

	start := Anchor(testNow).AddDate(0, 0, -30)
	end := Anchor(testNow).AddDate(0, 0, 5).Add(20 * time.Minute)
	for _, d := range dates {
		assert.False(t, d.Before(start), "date %v before window start %v", d, start)
		assert.True(t, d.Before(end), "date %v past window end %v", d, end)
		assert.Equal(t, 20, d.Hour())
	}
}

func TestGenerate_no_weekends(t *testing.T) {
	t.Parallel()

	p := Params{DaysBefore: 60, Frequency: 100, MaxCommits: 5, NoWeekends: true}
	rng := rand.New(rand.NewSource(7))

	dates := Generate(p, rng, testNow)

	require.NotEmpty(t, dates)
	for _, d := range dates {
		wd := d.Weekday()
		assert.NotEqual(t, time.Saturday, wd)
		assert.NotEqual(t, time.Sunday, wd)
	}
}

func TestGenerate_zero_frequency_is_empty(t *testing.T) {
	t.Parallel()

	p := Params{DaysBefore: 100, Frequency: 0, MaxCommits: 10}
	rng := rand.New(rand.NewSource(1))

	assert.Empty(t, Generate(p, rng, testNow))
}

func TestGenerate_full_frequency_covers_most_days(t *testing.T) {
	t.Parallel()

	// frequency=100 still misses a day once in 101 draws, so the bound
	// tolerates a few rare exclusions
	p := Params{DaysBefore: 50, Frequency: 100, MaxCommits: 10}
	rng := rand.New(rand.NewSource(99))

	dates := Generate(p, rng, testNow)

	days := map[string]bool{}
	for _, d := range dates {
		days[d.Format("2006-01-02")] = true
	}
	assert.GreaterOrEqual(t, len(days), 40)
}

func TestGenerate_clamps_high_max_commits(t *testing.T) {
	t.Parallel()

	p := Params{DaysBefore: 120, Frequency: 100, MaxCommits: 1000}
	rng := rand.New(rand.NewSource(3))

	perDay := map[string]int{}
	for _, d := range Generate(p, rng, testNow) {
		perDay[d.Format("2006-01-02")]++
	}

	require.NotEmpty(t, perDay)
	for day, n := range perDay {
		assert.LessOrEqual(t, n, 20, "day %s", day)
	}
}

func TestGenerate_clamps_low_max_commits(t *testing.T) {
	t.Parallel()

	p := Params{DaysBefore: 60, Frequency: 100, MaxCommits: -5}
	rng := rand.New(rand.NewSource(11))

	perDay := map[string]int{}
	for _, d := range Generate(p, rng, testNow) {
		perDay[d.Format("2006-01-02")]++
	}

	require.NotEmpty(t, perDay)
	for day, n := range perDay {
		assert.Equal(t, 1, n, "day %s", day)
	}
}

func TestGenerate_is_chronological(t *testing.T) {
	t.Parallel()

	p := Params{DaysBefore: 90, Frequency: 80, MaxCommits: 15}
	rng := rand.New(rand.NewSource(5))

	dates := Generate(p, rng, testNow)

	require.NotEmpty(t, dates)
	for i := 1; i < len(dates); i++ {
		assert.True(t, dates[i].After(dates[i-1]), "dates[%d] not after dates[%d]", i, i-1)
	}
}

func TestGenerate_one_week_single_commits(t *testing.T) {
	t.Parallel()

	p := Params{DaysBefore: 7, Frequency: 100, MaxCommits: 1}
	rng := rand.New(rand.NewSource(21))

	dates := Generate(p, rng, testNow)

	assert.LessOrEqual(t, len(dates), 7)
	for _, d := range dates {
		assert.Equal(t, 0, d.Minute(), "single-commit days carry no minute offset")
	}
}
