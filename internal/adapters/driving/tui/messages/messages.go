// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/workly-labs/workly-cli/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewJobs is the paged job listing.
	ViewJobs
	// ViewSearch is the keyword search view.
	ViewSearch
	// ViewContracts lists the user's contracts.
	ViewContracts
	// ViewReports shows the user's reports.
	ViewReports
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewJobs:
		return "jobs"
	case ViewSearch:
		return "search"
	case ViewContracts:
		return "contracts"
	case ViewReports:
		return "reports"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// JobsLoaded carries one page of the job listing.
type JobsLoaded struct {
	Page *domain.JobPage
	Err  error
}

// SearchCompleted carries keyword search results back to the model.
type SearchCompleted struct {
	Keyword string
	Jobs    []domain.Job
	Err     error
}

// ContractAdded signals a job was claimed.
type ContractAdded struct {
	LinkHash string
	Err      error
}

// ContractsLoaded carries the user's contracts.
type ContractsLoaded struct {
	Contracts []domain.Contract
	Err       error
}

// ContractUpdated signals a contract status change completed.
type ContractUpdated struct {
	LinkHash string
	Status   domain.ContractStatus
	Err      error
}

// ReportsLoaded carries the three reports.
type ReportsLoaded struct {
	Reports *domain.Reports
	Err     error
}

// SessionChecked carries the result of the start-up session guard.
type SessionChecked struct {
	Err error
}

// SessionEnded signals the session is gone and the user must log in again.
type SessionEnded struct {
	Err error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
