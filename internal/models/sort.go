package models

import (
	"cmp"
	"slices"
)

// SortSessions orders sessions in place. Unknown keys fall back to SortDate.
// Running sessions have no duration and order before every finished one
// when sorting by duration. Ties are broken on the storage id.
func SortSessions(sessions []*Session, key SortKey) {
	slices.SortStableFunc(sessions, func(a, b *Session) int {
		var c int

		switch key {
		case SortDateDesc:
			c = cmp.Compare(b.Date, a.Date)
		case SortStartTime:
			c = cmp.Compare(a.StartTime, b.StartTime)
		case SortStartTimeDesc:
			c = cmp.Compare(b.StartTime, a.StartTime)
		case SortDuration:
			c = cmp.Compare(durationOrMin(a), durationOrMin(b))
		case SortDurationDesc:
			c = cmp.Compare(durationOrMin(b), durationOrMin(a))
		default:
			c = cmp.Compare(a.Date, b.Date)
		}

		if c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})
}

func durationOrMin(s *Session) int64 {
	if s.Duration == nil {
		return -1
	}

	return *s.Duration
}
