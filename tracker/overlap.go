package tracker

import (
	"context"

	"github.com/ayoisaiah/forge/internal/models"
)

// HasOverlap reports whether the interval [start, end) conflicts with any of
// the given sessions, which must all share the candidate's date. A nil end
// probes whether start falls inside an existing interval. The session with
// id excludeID is ignored; pass 0 to check against every session.
//
// Clock times are canonical HH:MM:SS strings so they compare
// lexicographically. Touching boundaries do not overlap. A running session
// extends to the end of its day.
func HasOverlap(
	sessions []*models.Session,
	start string,
	end *string,
	excludeID int64,
) bool {
	for _, s := range sessions {
		if excludeID != 0 && s.ID == excludeID {
			continue
		}

		if conflicts(s, start, end) {
			return true
		}
	}

	return false
}

func conflicts(s *models.Session, start string, end *string) bool {
	if end == nil {
		return s.StartTime <= start && (s.EndTime == nil || *s.EndTime > start)
	}

	newEnd := *end

	if s.EndTime == nil {
		return s.StartTime <= start || s.StartTime < newEnd
	}

	oldEnd := *s.EndTime

	startsInside := s.StartTime <= start && oldEnd > start
	endsInside := s.StartTime < newEnd && oldEnd >= newEnd
	contained := s.StartTime >= start && oldEnd <= newEnd

	return startsInside || endsInside || contained
}

// hasOverlap checks a candidate interval against the sessions stored on
// date.
func (t *Tracker) hasOverlap(
	ctx context.Context,
	date, start string,
	end *string,
	excludeID int64,
) (bool, error) {
	sessions, err := t.db.GetSessions(ctx, &models.Filter{Date: date}, "")
	if err != nil {
		return false, ErrPersistence.Wrap(err)
	}

	return HasOverlap(sessions, start, end, excludeID), nil
}

// checkOverlap returns ErrOverlap if the candidate interval conflicts with a
// stored session.
func (t *Tracker) checkOverlap(
	ctx context.Context,
	date, start string,
	end *string,
	excludeID int64,
) error {
	overlap, err := t.hasOverlap(ctx, date, start, end, excludeID)
	if err != nil {
		return err
	}

	if overlap {
		return ErrOverlap.Fmt(date)
	}

	return nil
}
