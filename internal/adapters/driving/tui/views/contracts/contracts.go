// Package contracts provides the contracts view for the TUI.
package contracts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/workly-labs/workly-cli/internal/adapters/driving/tui/components/status"
	"github.com/workly-labs/workly-cli/internal/adapters/driving/tui/keymap"
	"github.com/workly-labs/workly-cli/internal/adapters/driving/tui/messages"
	"github.com/workly-labs/workly-cli/internal/adapters/driving/tui/styles"
	"github.com/workly-labs/workly-cli/internal/adapters/driving/format"
	"github.com/workly-labs/workly-cli/internal/core/domain"
	"github.com/workly-labs/workly-cli/internal/core/ports/driving"
)

// ErrNoContractService indicates that no contract service was provided.
var ErrNoContractService = errors.New("contract service is required")

// View lists the user's contracts and changes their status.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar
	service   driving.ContractService
	ctx       context.Context

	contracts []domain.Contract
	selected  int
	width     int
	height    int
	ready     bool
	loading   bool
	err       error
}

// NewView creates a new contracts view.
func NewView(s *styles.Styles, km *keymap.KeyMap, service driving.ContractService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetHints(km.ContractsHelp())

	return &View{
		styles:    s,
		keymap:    km,
		statusbar: bar,
		service:   service,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the contracts.
func (v *View) Init() tea.Cmd {
	return v.load()
}

// Update handles messages for the contracts view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ContractsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.err = nil
		v.contracts = msg.Contracts
		if v.selected >= len(v.contracts) {
			v.selected = max(len(v.contracts)-1, 0)
		}
		v.statusbar.SetState(status.StateResults)
		v.statusbar.SetCount(len(v.contracts), "contracts")
		return v, nil

	case messages.ContractUpdated:
		if msg.Err != nil {
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.statusbar.SetMessage(fmt.Sprintf("%s is now %s", msg.LinkHash, msg.Status.Label()))
		return v, v.reload()

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
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(key, v.keymap.Down):
		if v.selected < len(v.contracts)-1 {
			v.selected++
		}
	case keymap.Matches(key, v.keymap.Reload):
		return v, v.load()
	case keymap.Matches(key, v.keymap.CycleStatus):
		if c := v.SelectedContract(); c != nil {
			return v, v.update(c.LinkHash, NextStatus(c.Status))
		}
	case keymap.Matches(key, v.keymap.Close):
		if c := v.SelectedContract(); c != nil && c.Status != domain.ContractCancelled {
			return v, v.update(c.LinkHash, domain.ContractCancelled)
		}
	}
	return v, nil
}

// NextStatus returns the status after s in display order, wrapping around.
func NextStatus(s domain.ContractStatus) domain.ContractStatus {
	all := domain.AllContractStatuses
	for i, st := range all {
		if st == s {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

func (v *View) load() tea.Cmd {
	v.statusbar.SetMessage("")
	return v.reload()
}

// reload fetches the list and keeps the current status message.
func (v *View) reload() tea.Cmd {
	v.loading = true
	v.statusbar.SetState(status.StateLoading)

	svc, ctx := v.service, v.ctx
	return func() tea.Msg {
		if svc == nil {
			return messages.ContractsLoaded{Err: ErrNoContractService}
		}
		list, err := svc.List(ctx)
		return messages.ContractsLoaded{Contracts: list, Err: err}
	}
}

func (v *View) update(linkHash string, st domain.ContractStatus) tea.Cmd {
	svc, ctx := v.service, v.ctx
	return func() tea.Msg {
		if svc == nil {
			return messages.ContractUpdated{LinkHash: linkHash, Status: st, Err: ErrNoContractService}
		}
		err := svc.UpdateStatus(ctx, linkHash, st)
		return messages.ContractUpdated{LinkHash: linkHash, Status: st, Err: err}
	}
}

// View renders the contracts view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{v.styles.Title.Render("My contracts"), ""}
	switch {
	case v.err != nil:
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()))
	case len(v.contracts) == 0 && !v.loading:
		sections = append(sections, v.styles.Muted.Render("No contracts yet. Claim a job from the job list with 'c'."))
	default:
		sections = append(sections, v.renderList())
	}
	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderList() string {
	lines := make([]string, 0, len(v.contracts))
	titleWidth := max(v.width-36, 10)
	for i := range v.contracts {
		c := &v.contracts[i]
		title := []rune(strings.Join(strings.Fields(c.Title), " "))
		if len(title) > titleWidth {
			title = append(title[:titleWidth-3], []rune("...")...)
		}

		cursor := "  "
		name := v.styles.Normal.Render(string(title))
		if i == v.selected {
			cursor = "> "
			name = v.styles.Selected.Render(string(title))
		}
		budget := v.styles.Budget.Render(format.Budget(c.MinBudget, c.MaxBudget))
		lines = append(lines, fmt.Sprintf("%s%-12s %s  %s", cursor, v.styles.Status(c.Status), name, budget))
	}
	return strings.Join(lines, "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.statusbar.SetWidth(width)
}

// Contracts returns the loaded contracts.
func (v *View) Contracts() []domain.Contract {
	return v.contracts
}

// SelectedContract returns the highlighted contract, or nil if none.
func (v *View) SelectedContract() *domain.Contract {
	if v.selected < 0 || v.selected >= len(v.contracts) {
		return nil
	}
	return &v.contracts[v.selected]
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// StatusMessage returns the status bar message.
func (v *View) StatusMessage() string {
	return v.statusbar.Message()
}
