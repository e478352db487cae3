// Package reports provides the reports view for the TUI.
package reports

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/workly-labs/workly-cli/internal/adapters/driving/tui/messages"
	"github.com/workly-labs/workly-cli/internal/adapters/driving/tui/styles"
	"github.com/workly-labs/workly-cli/internal/adapters/driving/format"
	"github.com/workly-labs/workly-cli/internal/core/domain"
	"github.com/workly-labs/workly-cli/internal/core/ports/driving"
)

// ErrNoReportService indicates that no report service was provided.
var ErrNoReportService = errors.New("report service is required")

// View shows the financial, contract and skill reports.
type View struct {
	styles  *styles.Styles
	service driving.ReportService
	ctx     context.Context

	reports *domain.Reports
	width   int
	height  int
	ready   bool
	loading bool
	err     error
}

// NewView creates a new reports view.
func NewView(s *styles.Styles, service driving.ReportService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:  s,
		service: service,
		ctx:     context.Background(),
		width:   80,
		height:  24,
	}
}

// WithContext sets the context for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the reports.
func (v *View) Init() tea.Cmd {
	v.loading = true
	svc, ctx := v.service, v.ctx
	return func() tea.Msg {
		if svc == nil {
			return messages.ReportsLoaded{Err: ErrNoReportService}
		}
		r, err := svc.All(ctx)
		return messages.ReportsLoaded{Reports: r, Err: err}
	}
}

// Update handles messages for the reports view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case messages.ReportsLoaded:
		v.loading = false
		v.reports, v.err = msg.Reports, msg.Err

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }
		case "r":
			if !v.loading {
				return v, v.Init()
			}
		}
	}
	return v, nil
}

// View renders the reports.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{v.styles.Title.Render("Reports"), ""}
	switch {
	case v.loading:
		sections = append(sections, v.styles.Muted.Render("Loading..."))
	case v.err != nil:
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()))
	case v.reports != nil:
		sections = append(sections, v.renderFinancial(), "", v.renderSummary(), "", v.renderLanguages())
	}
	sections = append(sections, "", v.styles.Help.Render("[r] Reload  [esc] Back"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderFinancial() string {
	f := v.reports.Financial
	lines := []string{
		v.styles.Subtitle.Render("Financial"),
		fmt.Sprintf("  Minimum total  %s", v.styles.Budget.Render(format.BRL(f.TotalMinBudget))),
		fmt.Sprintf("  Maximum total  %s", v.styles.Budget.Render(format.BRL(f.TotalMaxBudget))),
		fmt.Sprintf("  Average        %s", v.styles.Budget.Render(format.BRL(f.AvgBudget))),
	}
	return strings.Join(lines, "\n")
}

func (v *View) renderSummary() string {
	lines := []string{v.styles.Subtitle.Render("Contracts by status")}
	if len(v.reports.Summary) == 0 {
		return strings.Join(append(lines, v.styles.Muted.Render("  No contracts.")), "\n")
	}
	for _, s := range v.reports.Summary {
		lines = append(lines, fmt.Sprintf("  %-10s %4d  %s",
			s.Status.Label(), s.TotalContracts, format.BRL(s.TotalBudget)))
	}
	return strings.Join(lines, "\n")
}

// renderLanguages draws a bar per skill scaled to the most used one.
func (v *View) renderLanguages() string {
	lines := []string{v.styles.Subtitle.Render("Skills")}
	if len(v.reports.Languages) == 0 {
		return strings.Join(append(lines, v.styles.Muted.Render("  No skills recorded.")), "\n")
	}

	var top int64
	for _, l := range v.reports.Languages {
		top = max(top, l.Total)
	}
	barWidth := max(v.width-32, 10)
	for _, l := range v.reports.Languages {
		n := 0
		if top > 0 {
			n = int(l.Total * int64(barWidth) / top)
		}
		lines = append(lines, fmt.Sprintf("  %-16s %s %d",
			l.Language, v.styles.Budget.Render(strings.Repeat("█", n)), l.Total))
	}
	return strings.Join(lines, "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Reports returns the loaded reports.
func (v *View) Reports() *domain.Reports {
	return v.reports
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
