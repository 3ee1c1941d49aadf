package models

import (
	"strings"
)

type (
	// Session is one stored focus interval. EndTime and Duration are nil
	// while the session is still running.
	Session struct {
		EndTime   *string `json:"end_time"`
		Duration  *int64  `json:"duration"`
		Date      string  `json:"date"`
		StartTime string  `json:"start_time"`
		ID        int64   `json:"id"`
	}

	// LeaderboardEntry is one ranked row for a single day.
	LeaderboardEntry struct {
		Date     string `json:"date"`
		Name     string `json:"name"`
		Duration int64  `json:"duration"`
	}

	// DaySummary aggregates the sessions recorded on a single day.
	DaySummary struct {
		Date    string `json:"date"`
		Status  Status `json:"status"`
		Count   int    `json:"count"`
		Average int64  `json:"average"`
		Total   int64  `json:"total"`
	}

	// Status reports whether a day reached the daily goal.
	Status string

	// SortKey orders the rows of a session listing.
	SortKey string

	// Filter restricts a session query by date. Values are canonical
	// YYYY, YYYY-MM or YYYY-MM-DD strings. Date and Month match exactly,
	// Since and Until compare on their own granularity.
	Filter struct {
		Date  string
		Month string
		Since string
		Until string
	}
)

const (
	Passed Status = "Passed"
	Failed Status = "Failed"
)

const (
	SortDate          SortKey = "date"
	SortDateDesc      SortKey = "date-desc"
	SortStartTime     SortKey = "start-time"
	SortStartTimeDesc SortKey = "start-time-desc"
	SortDuration      SortKey = "duration"
	SortDurationDesc  SortKey = "duration-desc"
)

// SortKeys lists the valid listing sort keys.
var SortKeys = []SortKey{
	SortDate,
	SortDateDesc,
	SortStartTime,
	SortStartTimeDesc,
	SortDuration,
	SortDurationDesc,
}

// Running reports whether the session has not been stopped yet.
func (s *Session) Running() bool {
	return s.EndTime == nil
}

// Clone returns a deep copy of the session.
func (s *Session) Clone() *Session {
	c := *s

	if s.EndTime != nil {
		end := *s.EndTime
		c.EndTime = &end
	}

	if s.Duration != nil {
		d := *s.Duration
		c.Duration = &d
	}

	return &c
}

// Empty reports whether the filter matches every session.
func (f *Filter) Empty() bool {
	return f == nil || (f.Date == "" && f.Month == "" && f.Since == "" &&
		f.Until == "")
}

// Match reports whether a session date satisfies the filter.
func (f *Filter) Match(date string) bool {
	if f.Empty() {
		return true
	}

	if f.Date != "" {
		return date == f.Date
	}

	if f.Month != "" {
		return strings.HasPrefix(date, f.Month)
	}

	if f.Since != "" && truncate(date, len(f.Since)) < f.Since {
		return false
	}

	if f.Until != "" && truncate(date, len(f.Until)) > f.Until {
		return false
	}

	return true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n]
}

// String is a helper for pointer fields.
func String(s string) *string {
	return &s
}

// Int64 is a helper for pointer fields.
func Int64(i int64) *int64 {
	return &i
}
