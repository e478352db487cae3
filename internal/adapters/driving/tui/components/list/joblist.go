// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/workly-labs/workly-cli/internal/adapters/driving/tui/styles"
	"github.com/workly-labs/workly-cli/internal/adapters/driving/format"
	"github.com/workly-labs/workly-cli/internal/core/domain"
)

// linesPerJob is the height of one rendered job: title, details, skills.
const linesPerJob = 3

// JobList displays jobs in a navigable list.
type JobList struct {
	jobs     []domain.Job
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewJobList creates a new job list component.
func NewJobList(s *styles.Styles) *JobList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &JobList{
		styles: s,
		width:  80,
		height: 12,
	}
}

// Init initialises the job list.
func (r *JobList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *JobList) Update(msg tea.Msg) (*JobList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the job list, scrolled so the selection is visible.
func (r *JobList) View() string {
	if len(r.jobs) == 0 {
		return r.styles.Muted.Render("No jobs")
	}

	visible := r.height / linesPerJob
	if visible < 1 {
		visible = 1
	}
	start := 0
	if r.selected >= visible {
		start = r.selected - visible + 1
	}
	end := min(start+visible, len(r.jobs))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, r.renderJob(i, &r.jobs[i]))
	}
	return strings.Join(lines, "\n")
}

func (r *JobList) renderJob(index int, job *domain.Job) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	maxTitle := max(r.width-4, 10)
	title := clip(job.Title, maxTitle)
	if title == "" {
		title = "(Untitled)"
	}

	var titleLine string
	if index == r.selected {
		titleLine = r.styles.Selected.Render(fmt.Sprintf("%s%-*s", indicator, maxTitle, title))
	} else {
		titleLine = r.styles.Normal.Render(indicator + title)
	}

	details := "    " + r.styles.Budget.Render(format.Budget(job.MinBudget, job.MaxBudget))
	if job.Source != "" {
		details += r.styles.Muted.Render("  " + job.Source)
	}
	if !job.ScrapedAt.IsZero() {
		details += r.styles.Muted.Render("  " + job.ScrapedAt.Format("02/01/2006"))
	}

	skills := r.styles.Subtitle.Render("    " + clip(job.Skills, max(r.width-6, 20)))
	return titleLine + "\n" + details + "\n" + skills
}

// clip flattens whitespace and shortens s to n runes.
func clip(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// SetJobs replaces the list and resets the selection.
func (r *JobList) SetJobs(jobs []domain.Job) {
	r.jobs = jobs
	r.selected = 0
}

// Jobs returns the current jobs.
func (r *JobList) Jobs() []domain.Job {
	return r.jobs
}

// Selected returns the index of the selected job.
func (r *JobList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *JobList) SetSelected(index int) {
	if index >= 0 && index < len(r.jobs) {
		r.selected = index
	}
}

// SelectedJob returns the currently selected job, or nil if none.
func (r *JobList) SelectedJob() *domain.Job {
	if r.selected < 0 || r.selected >= len(r.jobs) {
		return nil
	}
	return &r.jobs[r.selected]
}

// MoveUp moves selection up.
func (r *JobList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *JobList) MoveDown() {
	if r.selected < len(r.jobs)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *JobList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of jobs.
func (r *JobList) Count() int {
	return len(r.jobs)
}

// IsEmpty returns whether the list is empty.
func (r *JobList) IsEmpty() bool {
	return len(r.jobs) == 0
}
