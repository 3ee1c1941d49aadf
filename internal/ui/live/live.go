// Package live renders the running session in the terminal until it is
// stopped or the view is closed
package live

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/forge/internal/models"
	"github.com/ayoisaiah/forge/internal/timeutil"
	"github.com/ayoisaiah/forge/tracker"
)

const (
	padding  = 2
	maxWidth = 60

	// refreshEvery is the number of ticks between store reads, so a session
	// stopped from another terminal is noticed.
	refreshEvery = 5
)

// Source is the view's window on the session store.
type Source interface {
	Running(ctx context.Context) (*models.Session, error)
	DayTotal(ctx context.Context, date string) (int64, error)
	Stop(ctx context.Context) (*tracker.StopResult, error)
}

type (
	tickMsg time.Time

	refreshMsg struct {
		session *models.Session
		err     error
		today   int64
	}

	stoppedMsg struct {
		result *tracker.StopResult
		err    error
	}
)

// Model is the bubbletea model of the live view.
type Model struct {
	src      Source
	now      func() time.Time
	session  *models.Session
	result   *tracker.StopResult
	err      error
	log      *slog.Logger
	styles   styles
	help     help.Model
	progress progress.Model
	goal     int64
	today    int64
	ticks    int
	loaded   bool
}

// Option configures a Model.
type Option func(*Model)

// WithClock overrides the time source.
func WithClock(fn func() time.Time) Option {
	return func(m *Model) {
		m.now = fn
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		m.log = l
	}
}

// New returns a live view over src measured against a daily goal in
// seconds.
func New(src Source, goal int64, dark bool, opts ...Option) *Model {
	m := &Model{
		src:      src,
		now:      time.Now,
		log:      slog.New(slog.DiscardHandler),
		styles:   newStyles(dark),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
		goal:     goal,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Result returns the stop result if the session was stopped from the view.
func (m *Model) Result() *tracker.StopResult {
	return m.result
}

// Err returns the error that closed the view, if any.
func (m *Model) Err() error {
	return m.err
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) refresh() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		sess, err := m.src.Running(ctx)
		if err != nil {
			return refreshMsg{err: err}
		}

		today, err := m.src.DayTotal(ctx, timeutil.Date(m.now()))

		return refreshMsg{session: sess, today: today, err: err}
	}
}

func (m *Model) stop() tea.Cmd {
	return func() tea.Msg {
		result, err := m.src.Stop(context.Background())

		return stoppedMsg{result: result, err: err}
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.refresh(), tick())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.ticks++

		if m.ticks%refreshEvery == 0 {
			return m, tea.Batch(m.refresh(), tick())
		}

		return m, tick()

	case refreshMsg:
		m.loaded = true
		m.session, m.today, m.err = msg.session, msg.today, msg.err

		if m.err != nil || m.session == nil {
			return m, tea.Quit
		}

		return m, nil

	case stoppedMsg:
		m.result, m.err = msg.result, msg.err

		if m.log.Enabled(context.Background(), slog.LevelDebug) {
			m.log.Debug(spew.Sdump(msg))
		}

		return m, tea.Quit

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, defaultKeymap.stop):
			if m.session == nil {
				return m, nil
			}

			return m, m.stop()

		case key.Matches(msg, defaultKeymap.quit):
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)

		return m, nil

	case progress.FrameMsg:
		p, cmd := m.progress.Update(msg)
		m.progress, _ = p.(progress.Model)

		return m, cmd
	}

	return m, nil
}

// Elapsed returns the whole seconds since sess started.
func Elapsed(sess *models.Session, now time.Time) int64 {
	start, err := timeutil.Combine(sess.Date, sess.StartTime, now.Location())
	if err != nil {
		return 0
	}

	return max(timeutil.SecondsBetween(start, now), 0)
}

func (m *Model) View() string {
	if !m.loaded || m.session == nil || m.result != nil {
		return ""
	}

	now := m.now()
	elapsed := Elapsed(m.session, now)

	// a session that began yesterday only adds its part since midnight
	todayPart := elapsed
	if m.session.Date != timeutil.Date(now) {
		todayPart = timeutil.SecondsBetween(timeutil.RoundToStart(now), now)
	}

	total := m.today + todayPart

	var s strings.Builder

	s.WriteString(m.styles.title.Render("Focus session in progress"))
	s.WriteString(m.styles.hint.Render(
		fmt.Sprintf("  since %s %s", m.session.Date, m.session.StartTime),
	))
	s.WriteString("\n\n")
	s.WriteString(m.styles.clock.Render(timeutil.FormatSeconds(&elapsed)))
	s.WriteString("\n\n")

	percent := 1.0
	if m.goal > 0 && total < m.goal {
		percent = float64(total) / float64(m.goal)
	}

	s.WriteString(m.progress.ViewAs(percent))
	s.WriteString("\n")

	goalText := fmt.Sprintf(
		"today %s of %s",
		timeutil.FormatSeconds(&total),
		timeutil.FormatSeconds(&m.goal),
	)

	if total >= m.goal {
		s.WriteString(m.styles.success.Render(goalText + " (goal reached)"))
	} else {
		s.WriteString(m.styles.failure.Render(goalText))
	}

	s.WriteString("\n\n" + m.help.ShortHelpView([]key.Binding{
		defaultKeymap.stop,
		defaultKeymap.quit,
	}))

	return m.styles.base.Render(s.String())
}
