package cli

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workly-labs/workly-cli/internal/core/domain"
)

func budget(f float64) *float64 { return &f }

func sampleJobs() []domain.Job {
	return []domain.Job{
		{Title: "Go backend developer", LinkHash: "h1", Source: "workana", Skills: "Go, PostgreSQL",
			MinBudget: budget(1500), MaxBudget: budget(3000)},
		{Title: "React landing page", LinkHash: "h2", Source: "99freelas", Skills: "React"},
	}
}

func TestJobsListCmd(t *testing.T) {
	t.Run("converts to zero-based page", func(t *testing.T) {
		ts := setupTestServices(t)
		var gotPage, gotSize int
		ts.Jobs.ListFunc = func(_ context.Context, page, size int) (*domain.JobPage, error) {
			gotPage, gotSize = page, size
			return &domain.JobPage{Jobs: sampleJobs(), Page: page, TotalPages: 4, TotalElements: 40}, nil
		}

		out, err := runCommand(t, "", "jobs", "list", "--page", "2", "--size", "10")

		require.NoError(t, err)
		assert.Equal(t, 1, gotPage)
		assert.Equal(t, 10, gotSize)
		assert.Contains(t, out, "Go backend developer")
		assert.Contains(t, out, "h2")
		assert.Contains(t, out, "Page 2 of 4 (40 jobs)")
		assert.Contains(t, out, "Next: workly jobs list --page 3")
	})

	t.Run("last page has no next hint", func(t *testing.T) {
		ts := setupTestServices(t)
		ts.Jobs.ListFunc = func(_ context.Context, page, _ int) (*domain.JobPage, error) {
			return &domain.JobPage{Jobs: sampleJobs(), Page: page, TotalPages: 1, TotalElements: 2}, nil
		}

		out, err := runCommand(t, "", "jobs", "list")

		require.NoError(t, err)
		assert.NotContains(t, out, "Next:")
	})

	t.Run("empty page", func(t *testing.T) {
		setupTestServices(t)

		out, err := runCommand(t, "", "jobs", "list")

		require.NoError(t, err)
		assert.Contains(t, out, "No jobs found.")
	})

	t.Run("rejects page zero", func(t *testing.T) {
		setupTestServices(t)

		_, err := runCommand(t, "", "jobs", "list", "--page", "0")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "page must be 1 or greater")
	})

	t.Run("json output", func(t *testing.T) {
		ts := setupTestServices(t)
		ts.Jobs.ListFunc = func(context.Context, int, int) (*domain.JobPage, error) {
			return &domain.JobPage{Jobs: sampleJobs(), TotalPages: 1}, nil
		}

		out, err := runCommand(t, "", "jobs", "list", "--json")

		require.NoError(t, err)
		var page domain.JobPage
		require.NoError(t, json.Unmarshal([]byte(out), &page))
		assert.Len(t, page.Jobs, 2)
	})

	t.Run("service failure", func(t *testing.T) {
		ts := setupTestServices(t)
		ts.Jobs.ListFunc = func(context.Context, int, int) (*domain.JobPage, error) {
			return nil, &domain.APIError{Status: 500, Message: "boom"}
		}

		_, err := runCommand(t, "", "jobs", "list")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing jobs failed")
	})
}

func TestJobsSearchCmd(t *testing.T) {
	t.Run("searches titles by default", func(t *testing.T) {
		ts := setupTestServices(t)
		var gotKeyword string
		var gotField domain.SearchField
		ts.Jobs.SearchFunc = func(_ context.Context, keyword string, field domain.SearchField) ([]domain.Job, error) {
			gotKeyword, gotField = keyword, field
			return sampleJobs()[:1], nil
		}

		out, err := runCommand(t, "", "jobs", "search", "golang")

		require.NoError(t, err)
		assert.Equal(t, "golang", gotKeyword)
		assert.Equal(t, domain.SearchByTitle, gotField)
		assert.Contains(t, out, "1 jobs found")
	})

	t.Run("skills flag", func(t *testing.T) {
		ts := setupTestServices(t)
		var gotField domain.SearchField
		ts.Jobs.SearchFunc = func(_ context.Context, _ string, field domain.SearchField) ([]domain.Job, error) {
			gotField = field
			return nil, nil
		}

		out, err := runCommand(t, "", "jobs", "search", "react", "--skills")

		require.NoError(t, err)
		assert.Equal(t, domain.SearchBySkills, gotField)
		assert.Contains(t, out, "No jobs found.")
	})

	t.Run("requires keyword", func(t *testing.T) {
		setupTestServices(t)

		_, err := runCommand(t, "", "jobs", "search")

		assert.Error(t, err)
	})

	t.Run("failure", func(t *testing.T) {
		ts := setupTestServices(t)
		ts.Jobs.SearchFunc = func(context.Context, string, domain.SearchField) ([]domain.Job, error) {
			return nil, errors.New("timeout")
		}

		_, err := runCommand(t, "", "jobs", "search", "go")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "search failed")
	})
}
