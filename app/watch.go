package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/forge/internal/models"
	"github.com/ayoisaiah/forge/internal/ui/live"
	"github.com/ayoisaiah/forge/tracker"
)

// storeSource serves the live view. The store is opened per call so that
// other forge commands can use it while the view is on screen.
type storeSource struct {
	env *appEnv
}

func (s storeSource) Running(ctx context.Context) (*models.Session, error) {
	tr, db, err := s.env.open()
	if err != nil {
		return nil, err
	}

	defer db.Close()

	return tr.Running(ctx)
}

func (s storeSource) DayTotal(ctx context.Context, date string) (int64, error) {
	tr, db, err := s.env.open()
	if err != nil {
		return 0, err
	}

	defer db.Close()

	return tr.DayTotal(ctx, date)
}

func (s storeSource) Stop(ctx context.Context) (*tracker.StopResult, error) {
	tr, db, err := s.env.open()
	if err != nil {
		return nil, err
	}

	defer db.Close()

	res, err := tr.Stop(ctx)
	if err != nil {
		return nil, err
	}

	err = db.SetLastCommand(ctx, "stop")
	if err != nil {
		s.env.log.WarnContext(ctx, "unable to record last command")
	}

	return res, nil
}

// watch runs the live view until the session ends or the user quits.
func watch(ctx *cli.Context, e *appEnv) error {
	m := live.New(
		storeSource{env: e},
		e.cfg.Goal.Seconds,
		e.cfg.Display.DarkTheme,
		live.WithClock(e.now),
		live.WithLogger(e.log),
	)

	p := tea.NewProgram(m, tea.WithContext(ctx.Context))

	_, err := p.Run()
	if err != nil {
		return err
	}

	if m.Err() != nil {
		return m.Err()
	}

	if res := m.Result(); res != nil {
		reportStop(ctx, e, res)
	}

	return nil
}
