// Package keymap holds the TUI key bindings and the hints each view shows.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/messages"
)

// KeyMap is every binding the TUI reacts to.
type KeyMap struct {
	Quit key.Binding
	Help key.Binding
	Back key.Binding

	Up     key.Binding
	Down   key.Binding
	Select key.Binding

	// Cast tosses the coins, from the menu or the result view.
	Cast      key.Binding
	Interpret key.Binding

	// Table paging.
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Trigrams key.Binding
}

func bind(help, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
}

// DefaultKeyMap returns the bindings the views are written against.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: bind("q", "quit", "q", "ctrl+c"),
		Help: bind("?", "help", "?"),
		Back: bind("esc", "back", "esc"),

		Up:     bind("↑/k", "up", "up", "k"),
		Down:   bind("↓/j", "down", "down", "j"),
		Select: bind("enter", "select", "enter"),

		Cast:      bind("c", "cast", "c"),
		Interpret: bind("i", "interpret", "i"),

		PageUp:   bind("pgup", "page up", "pgup", "ctrl+u"),
		PageDown: bind("pgdn", "page down", "pgdown", "ctrl+d"),
		Top:      bind("g", "top", "home", "g"),
		Bottom:   bind("G", "bottom", "end", "G"),
		Trigrams: bind("t", "trigrams", "t"),
	}
}

// ForView returns the hints the status bar shows while view is active.
func (k *KeyMap) ForView(view messages.ViewType) []key.Binding {
	switch view {
	case messages.ViewResult:
		return []key.Binding{k.Cast, k.Interpret, k.Back}
	case messages.ViewTable:
		return []key.Binding{k.PageDown, k.Trigrams, k.Back}
	case messages.ViewManual:
		return []key.Binding{k.Select, k.Back}
	case messages.ViewSettings:
		return []key.Binding{k.Select, k.Back}
	case messages.ViewHelp:
		return []key.Binding{k.Back, k.Quit}
	default:
		return []key.Binding{k.Cast, k.Help, k.Quit}
	}
}

// FullHelp groups every binding for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back},
		{k.Cast, k.Interpret},
		{k.PageUp, k.PageDown, k.Top, k.Bottom, k.Trigrams},
		{k.Help, k.Quit},
	}
}
