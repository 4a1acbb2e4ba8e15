// Package messages holds the tea.Msg types passed between the TUI app and
// its views.
package messages

import (
	"github.com/custodia-labs/suanming/internal/core/domain"
)

// ViewType names a screen.
type ViewType int

// Screens, in menu order.
const (
	ViewMenu ViewType = iota
	ViewManual
	ViewResult
	ViewTable
	ViewSettings
	ViewHelp
)

var viewNames = [...]string{
	ViewMenu:     "menu",
	ViewManual:   "manual",
	ViewResult:   "result",
	ViewTable:    "table",
	ViewSettings: "settings",
	ViewHelp:     "help",
}

func (v ViewType) String() string {
	if v < 0 || int(v) >= len(viewNames) {
		return "unknown"
	}
	return viewNames[v]
}

// ViewChanged switches the active screen.
type ViewChanged struct {
	View ViewType
}

// CastRequested tosses the coins.
type CastRequested struct{}

// NotationSubmitted builds a figure from six symbols such as "+++AB-".
type NotationSubmitted struct {
	Notation string
}

// CastCompleted ends a coin or manual cast.
type CastCompleted struct {
	Result domain.CastingResult
	Err    error
}

// InterpretRequested asks the model about the figure on screen.
type InterpretRequested struct {
	Question string
}

// InterpretCompleted ends an interpretation.
type InterpretCompleted struct {
	Reading domain.Reading
	Err     error
}

// SettingsLoaded answers a settings read.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved answers a settings write.
type SettingsSaved struct {
	Err error
}

// ErrorOccurred puts Err on the status bar.
type ErrorOccurred struct {
	Err error
}

// Quit exits the program.
type Quit struct{}
