package services

import (
	"context"
	"strings"

	"github.com/workly-labs/workly-cli/internal/core/domain"
	"github.com/workly-labs/workly-cli/internal/core/ports/driven"
	"github.com/workly-labs/workly-cli/internal/core/ports/driving"
	"github.com/workly-labs/workly-cli/internal/logger"
)

// Ensure JobService implements the interface.
var _ driving.JobService = (*JobService)(nil)

// JobService browses and searches scraped jobs.
type JobService struct {
	gateway  driven.JobsGateway
	pageSize int
}

// NewJobService creates a job service. pageSize <= 0 uses domain.DefaultPageSize.
func NewJobService(gateway driven.JobsGateway, pageSize int) *JobService {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	return &JobService{
		gateway:  gateway,
		pageSize: pageSize,
	}
}

// List returns one zero-based page of jobs.
func (s *JobService) List(ctx context.Context, page, size int) (*domain.JobPage, error) {
	if s.gateway == nil {
		return nil, domain.ErrNotImplemented
	}
	if page < 0 {
		return nil, domain.ErrInvalidInput
	}
	if size <= 0 {
		size = s.pageSize
	}

	logger.Debug("Listing jobs: page=%d size=%d", page, size)
	return s.gateway.ListJobs(ctx, page, size)
}

// Search matches keyword against titles or skills.
// A blank keyword returns no jobs without calling the backend.
func (s *JobService) Search(ctx context.Context, keyword string, field domain.SearchField) ([]domain.Job, error) {
	if s.gateway == nil {
		return nil, domain.ErrNotImplemented
	}

	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		logger.Debug("Empty keyword, returning no jobs")
		return nil, nil
	}
	if field == "" {
		field = domain.SearchByTitle
	}
	if !field.IsValid() {
		return nil, domain.ErrInvalidInput
	}

	logger.Debug("Searching jobs: keyword=%q field=%s", keyword, field)
	return s.gateway.SearchJobs(ctx, domain.JobSearch{Keyword: keyword, Type: field})
}
