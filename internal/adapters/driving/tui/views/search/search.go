// Package search provides the job keyword search view for the TUI.
package search

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/workly-labs/workly-cli/internal/adapters/driving/tui/components/input"
	"github.com/workly-labs/workly-cli/internal/adapters/driving/tui/components/list"
	"github.com/workly-labs/workly-cli/internal/adapters/driving/tui/components/status"
	"github.com/workly-labs/workly-cli/internal/adapters/driving/tui/keymap"
	"github.com/workly-labs/workly-cli/internal/adapters/driving/tui/messages"
	"github.com/workly-labs/workly-cli/internal/adapters/driving/tui/styles"
	"github.com/workly-labs/workly-cli/internal/adapters/driving/tui/views/jobs"
	"github.com/workly-labs/workly-cli/internal/core/domain"
	"github.com/workly-labs/workly-cli/internal/core/ports/driving"
)

// View represents the search view with input, results list, and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.JobList
	statusbar *status.Bar

	jobService      driving.JobService
	contractService driving.ContractService
	ctx             context.Context

	width      int
	height     int
	ready      bool
	err        error
	focusInput bool // true = typing the keyword, false = navigating results
}

// NewView creates a new search view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	jobService driving.JobService,
	contractService driving.ContractService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetHints(km.ResultsHelp())

	return &View{
		styles:          s,
		keymap:          km,
		input:           input.NewSearchInput(s),
		list:            list.NewJobList(s),
		statusbar:       bar,
		jobService:      jobService,
		contractService: contractService,
		ctx:             context.Background(),
		width:           80,
		height:          24,
		focusInput:      true,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ContractAdded:
		if msg.Err != nil {
			v.statusbar.SetMessage("Claim: " + msg.Err.Error())
		} else {
			v.statusbar.SetMessage("Contract added: " + msg.LinkHash)
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	if v.focusInput {
		v.input, cmd = v.input.Update(msg)
	}
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if v.focusInput {
		switch msg.Type {
		case tea.KeyEnter:
			keyword := v.input.Value()
			if keyword == "" {
				return v, nil
			}
			v.statusbar.SetState(status.StateLoading)
			v.statusbar.SetMessage("")
			v.focusInput = false
			v.input.Blur()
			return v, v.performSearch(keyword, v.input.Field())
		case tea.KeyTab:
			v.input.ToggleField()
			return v, nil
		default:
			var cmd tea.Cmd
			v.input, cmd = v.input.Update(msg)
			return v, cmd
		}
	}

	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Up):
		v.list.MoveUp()
	case keymap.Matches(key, v.keymap.Down):
		v.list.MoveDown()
	case keymap.Matches(key, v.keymap.NewSearch):
		v.focusInput = true
		v.input.SetValue("")
		return v, v.input.Focus()
	case keymap.Matches(key, v.keymap.Claim):
		if job := v.list.SelectedJob(); job != nil {
			v.statusbar.SetMessage("Claiming...")
			return v, jobs.Claim(v.ctx, v.contractService, job.LinkHash)
		}
	}
	return v, nil
}

// performSearch runs the keyword search.
func (v *View) performSearch(keyword string, field domain.SearchField) tea.Cmd {
	svc, ctx := v.jobService, v.ctx
	return func() tea.Msg {
		if svc == nil {
			return messages.ErrorOccurred{Err: ErrNoJobService}
		}
		found, err := svc.Search(ctx, keyword, field)
		return messages.SearchCompleted{Keyword: keyword, Jobs: found, Err: err}
	}
}

// handleSearchCompleted processes search results.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.err = nil
	v.list.SetJobs(msg.Jobs)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetMessage("")
	v.statusbar.SetCount(len(msg.Jobs), "jobs")
	v.focusInput = false
	v.input.Blur()
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)
	sections = append(sections, v.styles.Title.Render("Search jobs"), "")
	sections = append(sections, v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	if !v.focusInput && v.list.IsEmpty() && v.err == nil {
		sections = append(sections, v.styles.Muted.Render("No jobs match."))
	} else {
		sections = append(sections, v.list.View())
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-10) // header, input, status
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current keyword.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the keyword.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Field returns the field the keyword is matched against.
func (v *View) Field() domain.SearchField {
	return v.input.Field()
}

// Results returns the current results.
func (v *View) Results() []domain.Job {
	return v.list.Jobs()
}

// SelectedJob returns the highlighted job.
func (v *View) SelectedJob() *domain.Job {
	return v.list.SelectedJob()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// StatusMessage returns the status bar message.
func (v *View) StatusMessage() string {
	return v.statusbar.Message()
}

// Reset resets the view to initial input mode.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.list.SetJobs(nil)
	v.err = nil
	v.statusbar.Clear()
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}
