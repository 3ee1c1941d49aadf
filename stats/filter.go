package stats

import (
	"time"

	"github.com/ayoisaiah/forge/internal/models"
	"github.com/ayoisaiah/forge/internal/timeutil"
)

// FilterOptions holds raw date arguments as typed by the user.
type FilterOptions struct {
	Date  string
	Since string
	Until string
	Month string
}

// NewFilter resolves the date arguments against now and validates that they
// can be combined.
func NewFilter(opts FilterOptions, now time.Time) (*models.Filter, error) {
	if opts.Month != "" && (opts.Date != "" || opts.Since != "" || opts.Until != "") {
		return nil, ErrConflictingFilters
	}

	f := &models.Filter{}

	if opts.Month != "" {
		expr, err := timeutil.ParseExpr("month", opts.Month, now)
		if err != nil {
			return nil, err
		}

		if expr.Granularity != timeutil.Month {
			return nil, ErrGranularity.Fmt("--month", timeutil.Month, opts.Month)
		}

		f.Month = expr.Value

		return f, nil
	}

	if opts.Date != "" {
		expr, err := timeutil.ParseExpr("date", opts.Date, now)
		if err != nil {
			return nil, err
		}

		if expr.Granularity != timeutil.Day {
			return nil, ErrGranularity.Fmt("--date", timeutil.Day, opts.Date)
		}

		f.Date = expr.Value
	}

	var since, until timeutil.Expr

	if opts.Since != "" {
		var err error

		since, err = timeutil.ParseExpr("since", opts.Since, now)
		if err != nil {
			return nil, err
		}

		f.Since = since.Value
	}

	if opts.Until != "" {
		var err error

		until, err = timeutil.ParseExpr("until", opts.Until, now)
		if err != nil {
			return nil, err
		}

		f.Until = until.Value
	}

	if f.Since != "" && f.Until != "" {
		if since.Granularity != until.Granularity {
			return nil, ErrGranularityMismatch.Fmt(opts.Since, opts.Until)
		}

		if f.Since > f.Until {
			return nil, ErrSinceAfterUntil.Fmt(f.Since, f.Until)
		}
	}

	return f, nil
}
