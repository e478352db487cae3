package driven

import (
	"context"

	"github.com/workly-labs/workly-cli/internal/core/domain"
)

// JobsGateway reads the scraped job listing.
type JobsGateway interface {
	// ListJobs returns one page of jobs. page is zero-based.
	ListJobs(ctx context.Context, page, size int) (*domain.JobPage, error)

	// SearchJobs returns every job whose title or skills match the keyword.
	SearchJobs(ctx context.Context, search domain.JobSearch) ([]domain.Job, error)
}

// ContractsGateway manages the user's claimed jobs.
type ContractsGateway interface {
	// ListContracts returns the user's contracts. An empty list is not an error.
	ListContracts(ctx context.Context) ([]domain.Contract, error)

	// AddContract claims the job identified by linkHash.
	AddContract(ctx context.Context, linkHash string) error

	// UpdateContractStatus changes the status of a claimed job.
	UpdateContractStatus(ctx context.Context, linkHash string, status domain.ContractStatus) error
}

// ReportsGateway reads the aggregated reports.
type ReportsGateway interface {
	ContractSummary(ctx context.Context) ([]domain.ContractSummary, error)
	FinancialReport(ctx context.Context) (*domain.FinancialReport, error)
	LanguageUsage(ctx context.Context) ([]domain.LanguageUsage, error)
}

// AccountGateway reads and edits the signed-in account.
type AccountGateway interface {
	UserDetails(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.User, error)
	UpdatePassword(ctx context.Context, update domain.PasswordUpdate) error
}

// WorklyAPI aggregates every authenticated endpoint group.
type WorklyAPI interface {
	JobsGateway
	ContractsGateway
	ReportsGateway
	AccountGateway
}
