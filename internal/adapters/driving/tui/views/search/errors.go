package search

import "errors"

// ErrNoJobService indicates that no job service was provided.
var ErrNoJobService = errors.New("job service is required")
