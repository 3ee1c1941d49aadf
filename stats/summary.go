package stats

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/ayoisaiah/forge/internal/models"
	"github.com/ayoisaiah/forge/internal/timeutil"
	"github.com/ayoisaiah/forge/store"
)

// DefaultGoal is the daily total in seconds a day needs to pass.
const DefaultGoal int64 = 8 * 60 * 60

// Summary sort keys.
const (
	SortDate        = "date"
	SortDateDesc    = "date-desc"
	SortAverage     = "average"
	SortAverageDesc = "average-desc"
	SortTotal       = "total"
	SortTotalDesc   = "total-desc"
	SortStatus      = "status"
	SortStatusDesc  = "status-desc"
)

// SortKeys lists the accepted summary sort keys.
var SortKeys = []string{
	SortDate,
	SortDateDesc,
	SortAverage,
	SortAverageDesc,
	SortTotal,
	SortTotalDesc,
	SortStatus,
	SortStatusDesc,
}

// SummaryOptions controls which days are summarised and in what order.
type SummaryOptions struct {
	Filter *models.Filter
	// Status keeps only passed or failed days.
	Status string
	// Average and Total are "<op>:<duration>" filters such as "gte:2h".
	Average string
	Total   string
	Sort    string
	Goal    int64
}

type metricFilter struct {
	op    string
	value int64
}

func (m *metricFilter) match(v int64) bool {
	if m == nil {
		return true
	}

	switch m.op {
	case "gt":
		return v > m.value
	case "lt":
		return v < m.value
	case "eq":
		return v == m.value
	case "gte":
		return v >= m.value
	default:
		return v <= m.value
	}
}

// parseMetricFilter parses filters of the form "gte:2h30m".
func parseMetricFilter(s string) (*metricFilter, error) {
	if s == "" {
		return nil, nil
	}

	op, value, ok := strings.Cut(s, ":")
	if !ok {
		return nil, ErrInvalidFilterFormat.Fmt(s)
	}

	op = strings.ToLower(strings.TrimSpace(op))

	if !slices.Contains([]string{"gt", "lt", "eq", "gte", "lte"}, op) {
		return nil, ErrInvalidFilterFormat.Fmt(s)
	}

	seconds, err := timeutil.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return nil, ErrInvalidFilterFormat.Fmt(s).Wrap(err)
	}

	return &metricFilter{op: op, value: seconds}, nil
}

func parseStatus(s string) (models.Status, error) {
	switch strings.ToLower(s) {
	case "":
		return "", nil
	case strings.ToLower(string(models.Passed)):
		return models.Passed, nil
	case strings.ToLower(string(models.Failed)):
		return models.Failed, nil
	default:
		return "", ErrInvalidStatus.Fmt(s)
	}
}

// GroupByDay folds sessions into one summary per date. Running sessions
// count towards the number of sessions but add no time.
func GroupByDay(sessions []*models.Session, goal int64) []models.DaySummary {
	if goal <= 0 {
		goal = DefaultGoal
	}

	index := make(map[string]int)

	var days []models.DaySummary

	for _, s := range sessions {
		i, ok := index[s.Date]
		if !ok {
			i = len(days)
			index[s.Date] = i

			days = append(days, models.DaySummary{Date: s.Date})
		}

		days[i].Count++

		if s.Duration != nil {
			days[i].Total += *s.Duration
		}
	}

	for i := range days {
		days[i].Average = days[i].Total / int64(days[i].Count)

		days[i].Status = models.Failed
		if days[i].Total >= goal {
			days[i].Status = models.Passed
		}
	}

	return days
}

// SortDays orders day summaries in place. Ties fall back to date order.
func SortDays(days []models.DaySummary, key string) error {
	if key == "" {
		key = SortDateDesc
	}

	if !slices.Contains(SortKeys, key) {
		return ErrInvalidSortKey.Fmt(key, strings.Join(SortKeys, ", "))
	}

	field, desc := strings.CutSuffix(key, "-desc")

	slices.SortStableFunc(days, func(a, b models.DaySummary) int {
		if desc {
			a, b = b, a
		}

		var c int

		switch field {
		case SortAverage:
			c = cmp.Compare(a.Average, b.Average)
		case SortTotal:
			c = cmp.Compare(a.Total, b.Total)
		case SortStatus:
			c = cmp.Compare(a.Status, b.Status)
		}

		if c != 0 {
			return c
		}

		return cmp.Compare(a.Date, b.Date)
	})

	return nil
}

// Summarize groups the matching sessions by day, applies the status and
// metric filters, and sorts the result. Every filter is validated before the
// store is read.
func Summarize(
	ctx context.Context,
	db store.DB,
	opts SummaryOptions,
) ([]models.DaySummary, error) {
	status, err := parseStatus(opts.Status)
	if err != nil {
		return nil, err
	}

	avg, err := parseMetricFilter(opts.Average)
	if err != nil {
		return nil, err
	}

	total, err := parseMetricFilter(opts.Total)
	if err != nil {
		return nil, err
	}

	if opts.Sort != "" && !slices.Contains(SortKeys, opts.Sort) {
		return nil, ErrInvalidSortKey.Fmt(opts.Sort, strings.Join(SortKeys, ", "))
	}

	sessions, err := db.GetSessions(ctx, opts.Filter, "")
	if err != nil {
		return nil, err
	}

	days := slices.DeleteFunc(GroupByDay(sessions, opts.Goal), func(d models.DaySummary) bool {
		if status != "" && d.Status != status {
			return true
		}

		return !avg.match(d.Average) || !total.match(d.Total)
	})

	err = SortDays(days, opts.Sort)
	if err != nil {
		return nil, err
	}

	return days, nil
}
