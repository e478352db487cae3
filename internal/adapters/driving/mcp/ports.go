package mcp

import (
	"github.com/workly-labs/workly-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Session guards every tool call.
	Session driving.SessionManager

	// Jobs lists and searches jobs.
	Jobs driving.JobService

	// Contracts manages claimed jobs. Optional.
	Contracts driving.ContractService

	// Reports loads the user's reports. Optional.
	Reports driving.ReportService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p == nil || p.Session == nil {
		return ErrMissingSession
	}
	if p.Jobs == nil {
		return ErrMissingJobService
	}
	return nil
}
