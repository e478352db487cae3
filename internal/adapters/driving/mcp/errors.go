// Package mcp provides an MCP (Model Context Protocol) server adapter for Workly.
// It lets AI assistants browse jobs, manage contracts and read reports
// on behalf of the signed-in user.
package mcp

import "errors"

// ErrMissingSession is returned when the session manager is not provided.
var ErrMissingSession = errors.New("mcp: session manager is required")

// ErrMissingJobService is returned when the job service is not provided.
var ErrMissingJobService = errors.New("mcp: job service is required")

// ErrSessionExpired is returned by tools once the user must log in again.
var ErrSessionExpired = errors.New("session expired, please run 'workly login'")
