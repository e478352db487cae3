package driving

import (
	"context"

	"github.com/workly-labs/workly-cli/internal/core/domain"
)

// JobService browses and searches scraped jobs.
type JobService interface {
	// List returns one zero-based page. size <= 0 uses the configured page size.
	List(ctx context.Context, page, size int) (*domain.JobPage, error)

	// Search matches keyword against the given field. An empty field searches titles.
	Search(ctx context.Context, keyword string, field domain.SearchField) ([]domain.Job, error)
}

// ContractService manages the user's claimed jobs.
type ContractService interface {
	List(ctx context.Context) ([]domain.Contract, error)
	Add(ctx context.Context, linkHash string) error
	UpdateStatus(ctx context.Context, linkHash string, status domain.ContractStatus) error
	// Close marks a contract as cancelled.
	Close(ctx context.Context, linkHash string) error
}

// ReportService loads the user's reports.
type ReportService interface {
	// All loads the three reports concurrently.
	All(ctx context.Context) (*domain.Reports, error)
	Summary(ctx context.Context) ([]domain.ContractSummary, error)
	Financial(ctx context.Context) (*domain.FinancialReport, error)
	Languages(ctx context.Context) ([]domain.LanguageUsage, error)
}
