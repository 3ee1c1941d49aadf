// Package ui renders forge output in the terminal
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme switches to the light variants of each colour, which read better
// on dark terminal backgrounds.
var DarkTheme bool

type colorPair struct {
	light pterm.Color
	dark  pterm.Color
}

func (c colorPair) sprint(a any) string {
	if DarkTheme {
		return c.dark.Sprint(a)
	}

	return c.light.Sprint(a)
}

var (
	green     = colorPair{pterm.FgGreen, pterm.FgLightGreen}
	red       = colorPair{pterm.FgRed, pterm.FgLightRed}
	cyan      = colorPair{pterm.FgCyan, pterm.FgLightCyan}
	highlight = colorPair{pterm.FgBlack, pterm.FgLightWhite}
)

func Green(a any) string {
	return green.sprint(a)
}

func Red(a any) string {
	return red.sprint(a)
}

func Cyan(a any) string {
	return cyan.sprint(a)
}

func Highlight(a any) string {
	return highlight.sprint(a)
}
