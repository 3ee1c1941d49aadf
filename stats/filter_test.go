package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/forge/internal/models"
	"github.com/ayoisaiah/forge/internal/timeutil"
)

var friday = time.Date(2024, time.March, 15, 14, 0, 0, 0, time.UTC)

func TestNewFilter(t *testing.T) {
	testCases := []struct {
		Name     string
		Opts     FilterOptions
		Expected *models.Filter
		Err      error
	}{
		{Name: "empty", Expected: &models.Filter{}},
		{
			Name:     "relative date",
			Opts:     FilterOptions{Date: "yesterday"},
			Expected: &models.Filter{Date: "2024-03-14"},
		},
		{
			Name:     "this month",
			Opts:     FilterOptions{Month: "this_month"},
			Expected: &models.Filter{Month: "2024-03"},
		},
		{
			Name:     "last week until today",
			Opts:     FilterOptions{Since: "last_week", Until: "today"},
			Expected: &models.Filter{Since: "2024-03-04", Until: "2024-03-15"},
		},
		{
			Name:     "year range",
			Opts:     FilterOptions{Since: "2023", Until: "this_year"},
			Expected: &models.Filter{Since: "2023", Until: "2024"},
		},
		{
			Name:     "since only",
			Opts:     FilterOptions{Since: "2024-02"},
			Expected: &models.Filter{Since: "2024-02"},
		},
		{
			Name: "month with date",
			Opts: FilterOptions{Month: "2024-03", Date: "2024-03-01"},
			Err:  ErrConflictingFilters,
		},
		{
			Name: "month with since",
			Opts: FilterOptions{Month: "2024-03", Since: "2024-03-01"},
			Err:  ErrConflictingFilters,
		},
		{
			Name: "month given a day",
			Opts: FilterOptions{Month: "2024-03-01"},
			Err:  ErrGranularity,
		},
		{
			Name: "date given a month",
			Opts: FilterOptions{Date: "last_month"},
			Err:  ErrGranularity,
		},
		{
			Name: "mixed granularity",
			Opts: FilterOptions{Since: "2024-03", Until: "2024-03-20"},
			Err:  ErrGranularityMismatch,
		},
		{
			Name: "since after until",
			Opts: FilterOptions{Since: "2024-03-20", Until: "2024-03-01"},
			Err:  ErrSinceAfterUntil,
		},
		{
			Name: "unknown keyword",
			Opts: FilterOptions{Since: "fortnight"},
			Err:  timeutil.ErrInvalidDateExpr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got, err := NewFilter(tc.Opts, friday)
			if tc.Err != nil {
				assert.ErrorIs(t, err, tc.Err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.Expected, got)
		})
	}
}
