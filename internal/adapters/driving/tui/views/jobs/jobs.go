// Package jobs provides the paged job listing view for the TUI.
package jobs

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/workly-labs/workly-cli/internal/adapters/driving/tui/components/list"
	"github.com/workly-labs/workly-cli/internal/adapters/driving/tui/components/status"
	"github.com/workly-labs/workly-cli/internal/adapters/driving/tui/keymap"
	"github.com/workly-labs/workly-cli/internal/adapters/driving/tui/messages"
	"github.com/workly-labs/workly-cli/internal/adapters/driving/tui/styles"
	"github.com/workly-labs/workly-cli/internal/core/domain"
	"github.com/workly-labs/workly-cli/internal/core/ports/driving"
)

// ErrNoJobService indicates that no job service was provided.
var ErrNoJobService = errors.New("job service is required")

// ErrNoContractService indicates that no contract service was provided.
var ErrNoContractService = errors.New("contract service is required")

// View is the paged job listing.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	list      *list.JobList
	statusbar *status.Bar

	jobService      driving.JobService
	contractService driving.ContractService
	ctx             context.Context

	page    *domain.JobPage
	pageNum int
	width   int
	height  int
	ready   bool
	loading bool
	err     error
}

// NewView creates a new jobs view.
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
	bar.SetHints(km.JobsHelp())

	return &View{
		styles:          s,
		keymap:          km,
		list:            list.NewJobList(s),
		statusbar:       bar,
		jobService:      jobService,
		contractService: contractService,
		ctx:             context.Background(),
		width:           80,
		height:          24,
	}
}

// WithContext sets the context for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the current page.
func (v *View) Init() tea.Cmd {
	return v.load(v.pageNum)
}

// Update handles messages for the jobs view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.JobsLoaded:
		v.handleLoaded(msg)
		return v, nil

	case messages.ContractAdded:
		if msg.Err != nil {
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage("Claim: " + msg.Err.Error())
		} else {
			v.statusbar.SetState(status.StateReady)
			v.statusbar.SetMessage("Contract added: " + msg.LinkHash)
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }
	}
	if v.loading {
		return v, nil
	}

	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Up):
		v.list.MoveUp()
	case keymap.Matches(key, v.keymap.Down):
		v.list.MoveDown()
	case keymap.Matches(key, v.keymap.NextPage):
		if v.page != nil && v.page.HasNext() {
			return v, v.load(v.pageNum + 1)
		}
	case keymap.Matches(key, v.keymap.PrevPage):
		if v.pageNum > 0 {
			return v, v.load(v.pageNum - 1)
		}
	case keymap.Matches(key, v.keymap.Reload):
		return v, v.load(v.pageNum)
	case keymap.Matches(key, v.keymap.Claim):
		if job := v.list.SelectedJob(); job != nil {
			v.statusbar.SetMessage("Claiming...")
			return v, Claim(v.ctx, v.contractService, job.LinkHash)
		}
	}
	return v, nil
}

// load fetches a zero-based page.
func (v *View) load(page int) tea.Cmd {
	v.loading = true
	v.statusbar.SetState(status.StateLoading)
	v.statusbar.SetMessage("")

	svc, ctx := v.jobService, v.ctx
	return func() tea.Msg {
		if svc == nil {
			return messages.JobsLoaded{Err: ErrNoJobService}
		}
		p, err := svc.List(ctx, page, 0)
		return messages.JobsLoaded{Page: p, Err: err}
	}
}

// Claim returns a command that adds linkHash as a contract.
func Claim(ctx context.Context, svc driving.ContractService, linkHash string) tea.Cmd {
	return func() tea.Msg {
		if svc == nil {
			return messages.ContractAdded{LinkHash: linkHash, Err: ErrNoContractService}
		}
		return messages.ContractAdded{LinkHash: linkHash, Err: svc.Add(ctx, linkHash)}
	}
}

func (v *View) handleLoaded(msg messages.JobsLoaded) {
	v.loading = false
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.err = nil
	v.page = msg.Page
	if msg.Page == nil {
		v.list.SetJobs(nil)
		v.statusbar.SetState(status.StateReady)
		return
	}
	v.pageNum = msg.Page.Page
	v.list.SetJobs(msg.Page.Jobs)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetCount(int(msg.Page.TotalElements), "jobs")
}

// View renders the jobs view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	header := v.styles.Title.Render("Jobs")
	if v.page != nil && v.page.TotalPages > 0 {
		header += v.styles.Muted.Render(fmt.Sprintf("  page %d of %d", v.page.Page+1, v.page.TotalPages))
	}

	sections := []string{header, ""}
	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}
	sections = append(sections, v.list.View(), "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.list.SetDimensions(width, height-6)
	v.statusbar.SetWidth(width)
}

// Page returns the loaded page, or nil before the first load.
func (v *View) Page() *domain.JobPage {
	return v.page
}

// PageNum returns the zero-based page number shown.
func (v *View) PageNum() int {
	return v.pageNum
}

// SelectedJob returns the highlighted job.
func (v *View) SelectedJob() *domain.Job {
	return v.list.SelectedJob()
}

// Loading reports whether a page request is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}

// StatusMessage returns the status bar message.
func (v *View) StatusMessage() string {
	return v.statusbar.Message()
}
