package httpapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/workly-labs/workly-cli/internal/core/domain"
)

const (
	pathJobs       = "/api/jobs"
	pathJobsSearch = "/api/jobs/search"
)

// ListJobs returns one zero-based page of jobs.
func (c *Client) ListJobs(ctx context.Context, page, size int) (*domain.JobPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var result domain.JobPage
	if err := c.do(ctx, http.MethodGet, pathJobs+"?"+query.Encode(), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchJobs matches a keyword against job titles or skills.
// The backend reads the criteria from the body of a GET request.
func (c *Client) SearchJobs(ctx context.Context, search domain.JobSearch) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := c.do(ctx, http.MethodGet, pathJobsSearch, search, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}
