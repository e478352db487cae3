package tui

import "errors"

// ErrMissingSession is returned when the session manager is not provided.
var ErrMissingSession = errors.New("tui: session manager is required")

// ErrMissingJobService is returned when the job service is not provided.
var ErrMissingJobService = errors.New("tui: job service is required")

// ErrMissingContractService is returned when the contract service is not provided.
var ErrMissingContractService = errors.New("tui: contract service is required")
