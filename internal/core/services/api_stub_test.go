package services

import (
	"context"
	"sync"

	"github.com/workly-labs/workly-cli/internal/core/domain"
	"github.com/workly-labs/workly-cli/internal/core/ports/driven"
)

var _ driven.WorklyAPI = (*stubAPI)(nil)

// stubAPI records calls and returns canned results.
type stubAPI struct {
	mu    sync.Mutex
	calls []string

	page      *domain.JobPage
	jobs      []domain.Job
	contracts []domain.Contract
	summary   []domain.ContractSummary
	financial *domain.FinancialReport
	languages []domain.LanguageUsage
	user      *domain.User
	err       error

	lastSearch   domain.JobSearch
	lastPage     int
	lastSize     int
	lastLinkHash string
	lastStatus   domain.ContractStatus
	lastProfile  domain.ProfileUpdate
	lastPassword domain.PasswordUpdate
}

func (a *stubAPI) record(call string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls = append(a.calls, call)
}

func (a *stubAPI) callCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.calls)
}

func (a *stubAPI) ListJobs(_ context.Context, page, size int) (*domain.JobPage, error) {
	a.record("ListJobs")
	a.lastPage, a.lastSize = page, size
	return a.page, a.err
}

func (a *stubAPI) SearchJobs(_ context.Context, search domain.JobSearch) ([]domain.Job, error) {
	a.record("SearchJobs")
	a.lastSearch = search
	return a.jobs, a.err
}

func (a *stubAPI) ListContracts(context.Context) ([]domain.Contract, error) {
	a.record("ListContracts")
	return a.contracts, a.err
}

func (a *stubAPI) AddContract(_ context.Context, linkHash string) error {
	a.record("AddContract")
	a.lastLinkHash = linkHash
	return a.err
}

func (a *stubAPI) UpdateContractStatus(_ context.Context, linkHash string, status domain.ContractStatus) error {
	a.record("UpdateContractStatus")
	a.lastLinkHash, a.lastStatus = linkHash, status
	return a.err
}

func (a *stubAPI) ContractSummary(context.Context) ([]domain.ContractSummary, error) {
	a.record("ContractSummary")
	return a.summary, a.err
}

func (a *stubAPI) FinancialReport(context.Context) (*domain.FinancialReport, error) {
	a.record("FinancialReport")
	if a.err != nil {
		return nil, a.err
	}
	return a.financial, nil
}

func (a *stubAPI) LanguageUsage(context.Context) ([]domain.LanguageUsage, error) {
	a.record("LanguageUsage")
	return a.languages, a.err
}

func (a *stubAPI) UserDetails(context.Context) (*domain.User, error) {
	a.record("UserDetails")
	return a.user, a.err
}

func (a *stubAPI) UpdateProfile(_ context.Context, update domain.ProfileUpdate) (*domain.User, error) {
	a.record("UpdateProfile")
	a.lastProfile = update
	return a.user, a.err
}

func (a *stubAPI) UpdatePassword(_ context.Context, update domain.PasswordUpdate) error {
	a.record("UpdatePassword")
	a.lastPassword = update
	return a.err
}
