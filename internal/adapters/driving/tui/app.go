package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/views/manual"
	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/views/result"
	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/views/table"
	"github.com/custodia-labs/suanming/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	menuView     *menu.View
	manualView   *manual.View
	resultView   *result.View
	tableView    *table.View
	settingsView *settings.View
	statusBar    *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if ports == nil {
		return nil, ErrInvalidPorts
	}
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		menuView:     menu.NewView(s, km),
		manualView:   manual.NewView(s),
		resultView:   result.NewView(s, ports.canInterpret()),
		tableView:    table.NewView(s, ports.Symbols),
		settingsView: settings.NewView(s, ports.Settings),
		statusBar:    status.NewBar(s, km),
		currentView:  messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle("suanming - 算命")
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, a.updateActive(msg)

	case spinner.TickMsg:
		return a, a.statusBar.Update(msg)

	case messages.CastRequested:
		return a, a.cast()

	case messages.NotationSubmitted:
		res, err := a.ports.Casting.Manual(msg.Notation)
		if err != nil {
			a.err = err
			a.manualView.SetError(err)
			return a, nil
		}
		return a, func() tea.Msg { return messages.CastCompleted{Result: res} }

	case messages.CastCompleted:
		if msg.Err != nil {
			a.fail(msg.Err)
			return a, nil
		}
		a.err = nil
		a.manualView.Reset()
		a.resultView.SetResult(msg.Result)
		a.setView(messages.ViewResult)
		a.statusBar.Note(resultSummary(msg.Result))
		return a, nil

	case messages.InterpretRequested:
		return a, tea.Batch(a.statusBar.Busy("Interpreting"), a.interpret(msg.Question))

	case messages.InterpretCompleted:
		a.resultView, cmd = a.resultView.Update(msg)
		if msg.Err != nil {
			a.fail(msg.Err)
		} else if res := a.resultView.Result(); res != nil {
			a.statusBar.Done(resultSummary(*res))
		} else {
			a.statusBar.Done("")
		}
		return a, cmd

	case messages.ViewChanged:
		a.setView(msg.View)
		switch msg.View {
		case messages.ViewManual:
			a.manualView.Reset()
			return a, a.manualView.Init()
		case messages.ViewSettings:
			a.settingsView.Reset()
			return a, a.settingsView.Init()
		case messages.ViewMenu:
			a.statusBar.Clear()
		case messages.ViewHelp, messages.ViewResult, messages.ViewTable:
		}
		return a, nil

	case messages.SettingsLoaded, messages.SettingsSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.fail(msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, a.updateActive(msg)
}

func (a *App) setView(v messages.ViewType) {
	a.currentView = v
	a.statusBar.SetView(v)
}

func (a *App) fail(err error) {
	a.err = err
	a.statusBar.Fail(err)
}

// updateActive forwards msg to the active view.
func (a *App) updateActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewManual:
		a.manualView, cmd = a.manualView.Update(msg)
	case messages.ViewResult:
		a.resultView, cmd = a.resultView.Update(msg)
	case messages.ViewTable:
		a.tableView, cmd = a.tableView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
		if k, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(k, a.keymap.Back):
				return func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }
			case key.Matches(k, a.keymap.Quit):
				return tea.Quit
			}
		}
	}

	return cmd
}

// cast tosses the coins. Narration is always off while the alt screen is up.
func (a *App) cast() tea.Cmd {
	casting := a.ports.Casting
	opts := a.castOptions()
	return func() tea.Msg {
		return messages.CastCompleted{Result: casting.Cast(opts)}
	}
}

// castOptions applies the saved cast.seed. Settings are read on every cast
// so an edit in the settings view takes effect on the next one.
func (a *App) castOptions() domain.CastOptions {
	opts := domain.CastOptions{Quiet: true}
	if a.ports.Settings == nil {
		return opts
	}
	settings, err := a.ports.Settings.Get()
	if err != nil || settings == nil || settings.Cast.Seed == 0 {
		return opts
	}
	seed := settings.Cast.Seed
	opts.Seed = &seed
	return opts
}

func (a *App) interpret(question string) tea.Cmd {
	res := a.resultView.Result()
	if res == nil || a.ports.Interpretation == nil {
		return func() tea.Msg {
			return messages.InterpretCompleted{Err: domain.ErrLLMUnavailable}
		}
	}

	ctx := a.ctx
	svc := a.ports.Interpretation
	current := *res
	return func() tea.Msg {
		reading, err := svc.Interpret(ctx, current, question)
		return messages.InterpretCompleted{Reading: reading, Err: err}
	}
}

func resultSummary(r domain.CastingResult) string {
	if r.HasChanges() {
		return fmt.Sprintf("%s -> %s", r.Primary.Name, r.Changed.Name)
	}
	return r.Primary.Name
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewManual:
		body = a.manualView.View()
	case messages.ViewResult:
		body = a.resultView.View()
	case messages.ViewTable:
		body = a.tableView.View()
	case messages.ViewSettings:
		body = a.settingsView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	case messages.ViewMenu:
		body = a.menuView.View()
	default:
		body = a.menuView.View()
	}

	return body + "\n" + a.statusBar.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")

	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-12s %s\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}

	b.WriteString(a.styles.Subtitle.Render("Manual notation"))
	b.WriteString("\n")
	b.WriteString("  Six symbols, bottom line first:\n")
	b.WriteString("  +  young yang (七)    -  young yin (八)\n")
	b.WriteString("  B  old yang (九)      A  old yin (六)\n")
	b.WriteString("  Example: +++AB-\n\n")

	b.WriteString(a.styles.Help.Render("[esc] back to menu"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Result returns the result currently shown, nil before the first cast.
func (a *App) Result() *domain.CastingResult {
	return a.resultView.Result()
}

// Reading returns the interpretation currently shown.
func (a *App) Reading() *domain.Reading {
	return a.resultView.Reading()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	// One row for the status bar.
	h := height - 1
	a.menuView.SetDimensions(width, h)
	a.manualView.SetDimensions(width, h)
	a.resultView.SetDimensions(width, h)
	a.tableView.SetDimensions(width, h)
	a.settingsView.SetDimensions(width, h)
	a.statusBar.SetWidth(width)
}
