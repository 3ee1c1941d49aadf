package stats

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/forge/internal/models"
	"github.com/ayoisaiah/forge/internal/testutil"
	"github.com/ayoisaiah/forge/store"
)

// week holds day totals of 9h, 7h and 8h.
func week() []*models.Session {
	return []*models.Session{
		testutil.Finished("2024-03-11", "08:00:00", "13:00:00", 18000),
		testutil.Finished("2024-03-11", "14:00:00", "18:00:00", 14400),
		testutil.Finished("2024-03-12", "09:00:00", "16:00:00", 25200),
		testutil.Finished("2024-03-13", "06:00:00", "09:00:00", 10800),
		testutil.Finished("2024-03-13", "10:00:00", "13:00:00", 10800),
		testutil.Finished("2024-03-13", "14:00:00", "16:00:00", 7200),
		{Date: "2024-03-13", StartTime: "17:00:00"},
		testutil.Finished("2024-02-28", "09:00:00", "10:00:00", 3600),
	}
}

func dates(days []models.DaySummary) []string {
	out := make([]string, len(days))

	for i := range days {
		out[i] = days[i].Date
	}

	return out
}

type summaryGolden struct {
	days []models.DaySummary
	name string
}

func (s summaryGolden) Output() ([]byte, string) {
	b, err := json.MarshalIndent(s.days, "", "  ")
	if err != nil {
		panic(err)
	}

	return b, s.name
}

func TestSummarize(t *testing.T) {
	thisWeek := &models.Filter{Since: "2024-03-11", Until: "2024-03-17"}

	testCases := []struct {
		Name     string
		Opts     SummaryOptions
		Expected []string
		Err      error
	}{
		{
			Name:     "default sort",
			Opts:     SummaryOptions{Filter: thisWeek},
			Expected: []string{"2024-03-13", "2024-03-12", "2024-03-11"},
		},
		{
			Name:     "failed days",
			Opts:     SummaryOptions{Filter: thisWeek, Status: "failed"},
			Expected: []string{"2024-03-12"},
		},
		{
			Name:     "passed days any case",
			Opts:     SummaryOptions{Filter: thisWeek, Status: "PASSED", Sort: SortDate},
			Expected: []string{"2024-03-11", "2024-03-13"},
		},
		{
			Name:     "total at least 8h",
			Opts:     SummaryOptions{Total: "gte:8h", Sort: SortTotal},
			Expected: []string{"2024-03-13", "2024-03-11"},
		},
		{
			Name:     "average below 3h",
			Opts:     SummaryOptions{Average: "lt:3h"},
			Expected: []string{"2024-03-13", "2024-02-28"},
		},
		{
			Name:     "exact total",
			Opts:     SummaryOptions{Total: "eq:7h"},
			Expected: []string{"2024-03-12"},
		},
		{
			Name:     "average desc",
			Opts:     SummaryOptions{Filter: thisWeek, Sort: SortAverageDesc},
			Expected: []string{"2024-03-12", "2024-03-11", "2024-03-13"},
		},
		{
			Name:     "status then date",
			Opts:     SummaryOptions{Sort: SortStatus},
			Expected: []string{"2024-02-28", "2024-03-12", "2024-03-11", "2024-03-13"},
		},
		{
			Name:     "lower goal",
			Opts:     SummaryOptions{Status: "failed", Goal: 7200},
			Expected: []string{"2024-02-28"},
		},
		{Name: "missing op", Opts: SummaryOptions{Total: "8h"}, Err: ErrInvalidFilterFormat},
		{Name: "unknown op", Opts: SummaryOptions{Total: "ne:8h"}, Err: ErrInvalidFilterFormat},
		{Name: "bad duration", Opts: SummaryOptions{Average: "gt:8 hours"}, Err: ErrInvalidFilterFormat},
		{Name: "empty duration", Opts: SummaryOptions{Average: "gt:"}, Err: ErrInvalidFilterFormat},
		{Name: "bad status", Opts: SummaryOptions{Status: "skipped"}, Err: ErrInvalidStatus},
		{Name: "bad sort", Opts: SummaryOptions{Sort: "count"}, Err: ErrInvalidSortKey},
	}

	for _, driver := range []string{store.DriverBolt, store.DriverSQLite} {
		db := testutil.NewStore(t, driver, week()...)

		for _, tc := range testCases {
			t.Run(driver+"/"+tc.Name, func(t *testing.T) {
				got, err := Summarize(context.Background(), db, tc.Opts)
				if tc.Err != nil {
					assert.ErrorIs(t, err, tc.Err)
					return
				}

				assert.NoError(t, err)
				assert.Equal(t, tc.Expected, dates(got))
			})
		}
	}
}

func TestSummarizeGolden(t *testing.T) {
	db := testutil.NewStore(t, store.DriverBolt, week()...)

	days, err := Summarize(context.Background(), db, SummaryOptions{
		Filter: &models.Filter{Month: "2024-03"},
	})
	assert.NoError(t, err)

	testutil.CompareGoldenFile(t, summaryGolden{days: days, name: "summary_week"})
}

func TestGroupByDayStatus(t *testing.T) {
	days := GroupByDay(week(), 0)

	got := make(map[string]models.Status)
	for _, d := range days {
		got[d.Date] = d.Status
	}

	assert.Equal(t, map[string]models.Status{
		"2024-03-11": models.Passed,
		"2024-03-12": models.Failed,
		"2024-03-13": models.Passed,
		"2024-02-28": models.Failed,
	}, got)
}
