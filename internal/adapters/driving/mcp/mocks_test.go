package mcp

import (
	"context"

	"github.com/workly-labs/workly-cli/internal/core/domain"
)

// mockSession is a mock implementation of driving.SessionManager.
type mockSession struct {
	err    error
	checks int
}

func (m *mockSession) Login(context.Context, string, string) (*domain.Credential, error) {
	return nil, m.err
}

func (m *mockSession) Logout(context.Context) error { return nil }
func (m *mockSession) AccessToken() (string, bool) { return "token", m.err == nil }
func (m *mockSession) IsExpired(string) bool { return m.err != nil }
func (m *mockSession) Refresh(context.Context, string) error { return m.err }
func (m *mockSession) Credential() *domain.Credential { return nil }
func (m *mockSession) Reload(context.Context) error { return nil }
func (m *mockSession) Watch(context.Context) error { return nil }

func (m *mockSession) EnsureValid(context.Context) error {
	m.checks++
	return m.err
}

func (m *mockSession) State() domain.SessionState {
	if m.err != nil {
		return domain.SessionLoggedOut
	}
	return domain.SessionValid
}

// mockJobService is a mock implementation of driving.JobService.
type mockJobService struct {
	page      *domain.JobPage
	results   []domain.Job
	err       error
	gotPage   int
	gotField  domain.SearchField
	gotSearch string
}

func (m *mockJobService) List(_ context.Context, page, _ int) (*domain.JobPage, error) {
	m.gotPage = page
	return m.page, m.err
}

func (m *mockJobService) Search(_ context.Context, keyword string, field domain.SearchField) ([]domain.Job, error) {
	m.gotSearch, m.gotField = keyword, field
	return m.results, m.err
}

// mockContractService is a mock implementation of driving.ContractService.
type mockContractService struct {
	contracts []domain.Contract
	err       error
	added     string
	updated   domain.ContractStatus
}

func (m *mockContractService) List(context.Context) ([]domain.Contract, error) {
	return m.contracts, m.err
}

func (m *mockContractService) Add(_ context.Context, linkHash string) error {
	m.added = linkHash
	return m.err
}

func (m *mockContractService) UpdateStatus(_ context.Context, _ string, status domain.ContractStatus) error {
	m.updated = status
	return m.err
}

func (m *mockContractService) Close(context.Context, string) error { return m.err }

// mockReportService is a mock implementation of driving.ReportService.
type mockReportService struct {
	reports *domain.Reports
	err     error
}

func (m *mockReportService) All(context.Context) (*domain.Reports, error) { return m.reports, m.err }

func (m *mockReportService) Summary(context.Context) ([]domain.ContractSummary, error) {
	return m.reports.Summary, m.err
}

func (m *mockReportService) Financial(context.Context) (*domain.FinancialReport, error) {
	return &m.reports.Financial, m.err
}

func (m *mockReportService) Languages(context.Context) ([]domain.LanguageUsage, error) {
	return m.reports.Languages, m.err
}
