package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/workly-labs/workly-cli/internal/adapters/driving/tui/keymap"
	"github.com/workly-labs/workly-cli/internal/adapters/driving/tui/messages"
	"github.com/workly-labs/workly-cli/internal/adapters/driving/tui/styles"
	"github.com/workly-labs/workly-cli/internal/adapters/driving/tui/views/contracts"
	"github.com/workly-labs/workly-cli/internal/adapters/driving/tui/views/jobs"
	"github.com/workly-labs/workly-cli/internal/adapters/driving/tui/views/menu"
	"github.com/workly-labs/workly-cli/internal/adapters/driving/tui/views/reports"
	"github.com/workly-labs/workly-cli/internal/adapters/driving/tui/views/search"
	"github.com/workly-labs/workly-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	menuView      *menu.View
	jobsView      *jobs.View
	searchView    *search.View
	contractsView *contracts.View
	reportsView   *reports.View

	currentView messages.ViewType

	// sessionErr is set when the session ended; the app quits with it.
	sessionErr error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		menuView:      menu.NewView(s),
		jobsView:      jobs.NewView(s, km, ports.Jobs, ports.Contracts),
		searchView:    search.NewView(s, km, ports.Jobs, ports.Contracts),
		contractsView: contracts.NewView(s, km, ports.Contracts),
		reportsView:   reports.NewView(s, ports.Reports),
		currentView:   messages.ViewMenu,
	}, nil
}

// WithContext sets the context used for every service call.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.jobsView.WithContext(ctx)
	a.searchView.WithContext(ctx)
	a.contractsView.WithContext(ctx)
	a.reportsView.WithContext(ctx)
	return a
}

// Init implements tea.Model. It runs the session guard before anything else.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("workly"),
		a.checkSession(),
	)
}

func (a *App) checkSession() tea.Cmd {
	session, ctx := a.ports.Session, a.ctx
	return func() tea.Msg {
		return messages.SessionChecked{Err: session.EnsureValid(ctx)}
	}
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message router
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if err := loggedOut(msg); err != nil {
		return a.endSession(err)
	}

	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case messages.SessionChecked:
		if msg.Err != nil {
			return a.endSession(msg.Err)
		}
		if cred := a.ports.Session.Credential(); cred != nil {
			a.menuView.SetUser(cred.Name)
		}
		return a, nil

	case messages.SessionEnded:
		return a.endSession(msg.Err)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.currentView == messages.ViewHelp {
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
			}
			return a, nil
		}
		if msg.String() == "?" && a.currentView != messages.ViewSearch {
			a.currentView = messages.ViewHelp
			return a, nil
		}

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewJobs:
			return a, a.jobsView.Init()
		case messages.ViewSearch:
			a.searchView.Reset()
			return a, a.searchView.Init()
		case messages.ViewContracts:
			return a, a.contractsView.Init()
		case messages.ViewReports:
			return a, a.reportsView.Init()
		case messages.ViewMenu, messages.ViewHelp:
		}
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewJobs:
		a.jobsView, cmd = a.jobsView.Update(msg)
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewContracts:
		a.contractsView, cmd = a.contractsView.Update(msg)
	case messages.ViewReports:
		a.reportsView, cmd = a.reportsView.Update(msg)
	case messages.ViewHelp:
	}
	return a, cmd
}

// loggedOut returns the error carried by msg when it signals the session is gone.
func loggedOut(msg tea.Msg) error {
	var err error
	switch m := msg.(type) {
	case messages.JobsLoaded:
		err = m.Err
	case messages.SearchCompleted:
		err = m.Err
	case messages.ContractAdded:
		err = m.Err
	case messages.ContractsLoaded:
		err = m.Err
	case messages.ContractUpdated:
		err = m.Err
	case messages.ReportsLoaded:
		err = m.Err
	case messages.ErrorOccurred:
		err = m.Err
	}
	if errors.Is(err, domain.ErrLoggedOut) {
		return err
	}
	return nil
}

func (a *App) endSession(err error) (tea.Model, tea.Cmd) {
	if err == nil {
		err = domain.ErrLoggedOut
	}
	a.sessionErr = err
	return a, tea.Quit
}

// View implements tea.Model.
func (a *App) View() string {
	if a.sessionErr != nil {
		return a.styles.Error.Render("Session expired, please log in.") + "\n"
	}
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewJobs:
		return a.jobsView.View()
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewContracts:
		return a.contractsView.View()
	case messages.ViewReports:
		return a.reportsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewMenu:
		return a.menuView.View()
	default:
		return a.menuView.View()
	}
}

func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Jobs:
  j/k, ↑/↓    Move selection
  h/l, ←/→    Previous / next page
  c           Claim the selected job
  r           Reload

Search:
  (type)      Enter keyword
  tab         Match titles or skills
  enter       Search
  n           New search

Contracts:
  s           Move to the next status
  x           Cancel the contract
  r           Reload

[esc] back to menu`
}

// SessionErr returns the error that ended the session, or nil.
func (a *App) SessionErr() error {
	return a.sessionErr
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Ready returns whether the app has been sized.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.jobsView.SetDimensions(width, height)
	a.searchView.SetDimensions(width, height)
	a.contractsView.SetDimensions(width, height)
	a.reportsView.SetDimensions(width, height)
}
