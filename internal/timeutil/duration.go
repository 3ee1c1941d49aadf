package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	secondsInAMinute = 60
	secondsInAnHour  = 3600
)

var durationRegex = regexp.MustCompile(`^(?:(\d+)h)?(?:(\d+)m)?(?:(\d+)s)?$`)

// FormatSeconds renders an elapsed number of seconds as HH:MM:SS. Hours are
// not wrapped at 24. A nil value renders as "N/A".
func FormatSeconds(seconds *int64) string {
	if seconds == nil {
		return "N/A"
	}

	s := *seconds

	hrs := s / secondsInAnHour
	mins := (s % secondsInAnHour) / secondsInAMinute
	secs := s % secondsInAMinute

	return fmt.Sprintf("%02d:%02d:%02d", hrs, mins, secs)
}

// ParseDuration converts a compact duration such as 2h30m, 45m or 90s into
// seconds. Components must appear in h, m, s order and at least one must be
// present.
func ParseDuration(s string) (int64, error) {
	m := durationRegex.FindStringSubmatch(s)
	if m == nil || s == "" {
		return 0, ErrInvalidDuration.Fmt(s)
	}

	multipliers := []int64{secondsInAnHour, secondsInAMinute, 1}

	var total int64

	for i, mult := range multipliers {
		if m[i+1] == "" {
			continue
		}

		n, err := strconv.ParseInt(m[i+1], 10, 64)
		if err != nil {
			return 0, ErrInvalidDuration.Fmt(s)
		}

		total += n * mult
	}

	return total, nil
}
