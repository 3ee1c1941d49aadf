// Package notify alerts the user when the daily focus goal is reached
package notify

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/forge/internal/timeutil"
)

// Notifier sends a desktop notification and runs the configured session
// command.
type Notifier struct {
	notify     func(title, message, icon string) error
	run        func(ctx context.Context, name string, args ...string) error
	sessionCmd string
	enabled    bool
}

// New returns a Notifier. Desktop notifications are skipped when enabled is
// false. An empty sessionCmd runs nothing.
func New(enabled bool, sessionCmd string) *Notifier {
	return &Notifier{
		notify:     beeep.Notify,
		run:        runCommand,
		sessionCmd: sessionCmd,
		enabled:    enabled,
	}
}

func runCommand(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// iconPath returns the notification icon, or an empty string if none is
// installed.
func iconPath() string {
	p, _ := xdg.SearchDataFile(filepath.Join("forge", "icon.png"))

	return p
}

// GoalReached reports that today's total has passed the goal.
func (n *Notifier) GoalReached(ctx context.Context, total, goal int64) error {
	if n.enabled {
		msg := fmt.Sprintf(
			"You focused for %s today (goal: %s)",
			timeutil.FormatSeconds(&total),
			timeutil.FormatSeconds(&goal),
		)

		err := n.notify("Daily goal reached", msg, iconPath())
		if err != nil {
			return fmt.Errorf("unable to display notification: %w", err)
		}
	}

	return n.RunSessionCmd(ctx)
}

// RunSessionCmd executes the configured session command.
func (n *Notifier) RunSessionCmd(ctx context.Context) error {
	if n.sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(n.sessionCmd)
	if err != nil {
		return fmt.Errorf("unable to parse session_cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	return n.run(ctx, cmdSlice[0], cmdSlice[1:]...)
}
