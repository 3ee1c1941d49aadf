package stats

import (
	"context"
	"math/rand/v2"
	"slices"

	"github.com/maruel/natural"

	"github.com/ayoisaiah/forge/internal/models"
	"github.com/ayoisaiah/forge/store"
)

const (
	rivalMin int64 = 6 * 60 * 60
	rivalMax int64 = 9 * 60 * 60
)

// DefaultRivals are the names ranked against the user when none are
// configured.
var DefaultRivals = []string{
	"Amelia Winslow",
	"Florence Spencer",
	"Beatrice Hamilton",
	"Ivy Lancaster",
	"Henry Whitmore",
	"William Prescott",
	"Charlotte Sinclair",
	"James Harrington",
	"Sebastian Holloway",
	"Eleanor Hastings",
	"Theodore Beckett",
	"Oliver",
	"Arthur Caldwell",
	"Rosalind Ashford",
}

// LeaderboardOptions configures a ranking for a single day.
type LeaderboardOptions struct {
	Rand   *rand.Rand
	Date   string
	Name   string
	Rivals []string
}

// Leaderboard ranks the user's focused time on opts.Date against a set of
// rivals. Rivals get a random 6 to 9 hour total the first time a day is
// ranked and keep it afterwards, while the user's entry is refreshed on every
// call. Entries are ordered by duration, longest first.
func Leaderboard(
	ctx context.Context,
	db store.DB,
	opts LeaderboardOptions,
) ([]models.LeaderboardEntry, error) {
	rivals := opts.Rivals
	if len(rivals) == 0 {
		rivals = DefaultRivals
	}

	intn := rand.Int64N
	if opts.Rand != nil {
		intn = opts.Rand.Int64N
	}

	sessions, err := db.GetSessions(ctx, &models.Filter{Date: opts.Date}, "")
	if err != nil {
		return nil, err
	}

	var total int64

	for _, s := range sessions {
		if s.Duration != nil {
			total += *s.Duration
		}
	}

	existing, err := db.Leaderboard(ctx, opts.Date)
	if err != nil {
		return nil, err
	}

	entries := []models.LeaderboardEntry{
		{Date: opts.Date, Name: opts.Name, Duration: total},
	}

	if len(existing) == 0 {
		for _, name := range rivals {
			if name == opts.Name {
				continue
			}

			entries = append(entries, models.LeaderboardEntry{
				Date:     opts.Date,
				Name:     name,
				Duration: rivalMin + intn(rivalMax-rivalMin+1),
			})
		}
	}

	err = db.UpsertLeaderboard(ctx, entries...)
	if err != nil {
		return nil, err
	}

	board, err := db.Leaderboard(ctx, opts.Date)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(board, func(a, b models.LeaderboardEntry) int {
		switch {
		case a.Duration != b.Duration:
			if a.Duration > b.Duration {
				return -1
			}

			return 1
		case natural.Less(a.Name, b.Name):
			return -1
		case natural.Less(b.Name, a.Name):
			return 1
		default:
			return 0
		}
	})

	return board, nil
}
