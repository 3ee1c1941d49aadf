package timeutil

import (
	"time"
)

// Granularity is the precision of a date expression.
type Granularity int

const (
	Day Granularity = iota + 1
	Month
	Year
)

func (g Granularity) String() string {
	switch g {
	case Day:
		return "day"
	case Month:
		return "month"
	case Year:
		return "year"
	default:
		return "unknown"
	}
}

// Expr is a resolved date expression: either a literal date, month or year,
// or a relative keyword such as "last_week" evaluated against a reference
// time.
type Expr struct {
	// Value is the canonical YYYY-MM-DD, YYYY-MM or YYYY form.
	Value string
	// Keyword is the relative keyword the expression was resolved from, if
	// any.
	Keyword     string
	Granularity Granularity
}

// Relative reports whether the expression came from a keyword.
func (e Expr) Relative() bool {
	return e.Keyword != ""
}

type relativeFunc func(now time.Time) (string, Granularity)

var relativeDates = map[string]relativeFunc{
	"today": func(now time.Time) (string, Granularity) {
		return Date(now), Day
	},
	"yesterday": func(now time.Time) (string, Granularity) {
		return Date(now.AddDate(0, 0, -1)), Day
	},
	"tomorrow": func(now time.Time) (string, Granularity) {
		return Date(now.AddDate(0, 0, 1)), Day
	},
	"this_week": func(now time.Time) (string, Granularity) {
		return Date(weekStart(now)), Day
	},
	"last_week": func(now time.Time) (string, Granularity) {
		return Date(weekStart(now).AddDate(0, 0, -7)), Day
	},
	"this_month": func(now time.Time) (string, Granularity) {
		return now.Format(MonthLayout), Month
	},
	"last_month": func(now time.Time) (string, Granularity) {
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return first.AddDate(0, 0, -1).Format(MonthLayout), Month
	},
	"this_year": func(now time.Time) (string, Granularity) {
		return now.Format(YearLayout), Year
	},
	"last_year": func(now time.Time) (string, Granularity) {
		return now.AddDate(-1, 0, 0).Format(YearLayout), Year
	},
}

// RelativeKeywords lists the accepted relative date keywords.
var RelativeKeywords = []string{
	"today",
	"yesterday",
	"tomorrow",
	"this_week",
	"last_week",
	"this_month",
	"last_month",
	"this_year",
	"last_year",
}

var literalLayouts = []struct {
	layout      string
	granularity Granularity
}{
	{DateLayout, Day},
	{MonthLayout, Month},
	{YearLayout, Year},
}

// weekStart returns the Monday of the week containing t.
func weekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7

	return RoundToStart(t).AddDate(0, 0, -offset)
}

// ParseExpr resolves a date argument against now. field names the argument
// in error messages.
func ParseExpr(field, s string, now time.Time) (Expr, error) {
	if fn, ok := relativeDates[s]; ok {
		v, g := fn(now)

		return Expr{Value: v, Keyword: s, Granularity: g}, nil
	}

	for _, l := range literalLayouts {
		t, err := time.Parse(l.layout, s)
		if err != nil || t.Format(l.layout) != s {
			continue
		}

		return Expr{Value: s, Granularity: l.granularity}, nil
	}

	return Expr{}, ErrInvalidDateExpr.Fmt(field, s)
}
