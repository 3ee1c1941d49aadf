package live

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	stop key.Binding
	quit key.Binding
}

var defaultKeymap = keymap{
	stop: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stop session"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "close (keeps running)"),
	),
}
