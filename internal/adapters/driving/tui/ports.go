// Package tui provides an interactive terminal user interface for browsing jobs.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/workly-labs/workly-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
type Ports struct {
	// Session guards the TUI and names the signed-in user.
	Session driving.SessionManager

	// Jobs lists and searches jobs.
	Jobs driving.JobService

	// Contracts manages claimed jobs.
	Contracts driving.ContractService

	// Reports loads the user's reports. Optional.
	Reports driving.ReportService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Session == nil {
		return ErrMissingSession
	}
	if p.Jobs == nil {
		return ErrMissingJobService
	}
	if p.Contracts == nil {
		return ErrMissingContractService
	}
	return nil
}
