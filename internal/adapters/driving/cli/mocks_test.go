package cli

import (
	"context"

	"github.com/workly-labs/workly-cli/internal/core/domain"
	"github.com/workly-labs/workly-cli/internal/core/ports/driving"
)

// MockSessionManager implements driving.SessionManager for testing.
type MockSessionManager struct {
	LoginFunc       func(ctx context.Context, email, password string) (*domain.Credential, error)
	LogoutFunc      func(ctx context.Context) error
	EnsureValidFunc func(ctx context.Context) error
	Cred            *domain.Credential
	Watched         bool
}

func (m *MockSessionManager) Login(ctx context.Context, email, password string) (*domain.Credential, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return &domain.Credential{AccessToken: "a", RefreshToken: "r"}, nil
}

func (m *MockSessionManager) Logout(ctx context.Context) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx)
	}
	m.Cred = nil
	return nil
}

func (m *MockSessionManager) AccessToken() (string, bool) {
	if m.Cred == nil {
		return "", false
	}
	return m.Cred.AccessToken, true
}

func (m *MockSessionManager) IsExpired(string) bool { return false }

func (m *MockSessionManager) EnsureValid(ctx context.Context) error {
	if m.EnsureValidFunc != nil {
		return m.EnsureValidFunc(ctx)
	}
	return nil
}

func (m *MockSessionManager) Refresh(context.Context, string) error { return nil }

func (m *MockSessionManager) State() domain.SessionState {
	if m.Cred == nil {
		return domain.SessionLoggedOut
	}
	return domain.SessionValid
}

func (m *MockSessionManager) Credential() *domain.Credential { return m.Cred.Clone() }

func (m *MockSessionManager) Reload(context.Context) error { return nil }

func (m *MockSessionManager) Watch(context.Context) error {
	m.Watched = true
	return nil
}

// MockAccountService implements driving.AccountService for testing.
type MockAccountService struct {
	RegisterFunc       func(ctx context.Context, reg domain.Registration) error
	DetailsFunc        func(ctx context.Context) (*domain.User, error)
	UpdateProfileFunc  func(ctx context.Context, update domain.ProfileUpdate) (*domain.User, error)
	UpdatePasswordFunc func(ctx context.Context, update domain.PasswordUpdate) error
}

func (m *MockAccountService) Register(ctx context.Context, reg domain.Registration) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, reg)
	}
	return nil
}

func (m *MockAccountService) Details(ctx context.Context) (*domain.User, error) {
	if m.DetailsFunc != nil {
		return m.DetailsFunc(ctx)
	}
	return &domain.User{}, nil
}

func (m *MockAccountService) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, update)
	}
	return &domain.User{Name: update.Name, Email: update.Email}, nil
}

func (m *MockAccountService) UpdatePassword(ctx context.Context, update domain.PasswordUpdate) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, update)
	}
	return nil
}

// MockJobService implements driving.JobService for testing.
type MockJobService struct {
	ListFunc   func(ctx context.Context, page, size int) (*domain.JobPage, error)
	SearchFunc func(ctx context.Context, keyword string, field domain.SearchField) ([]domain.Job, error)
}

func (m *MockJobService) List(ctx context.Context, page, size int) (*domain.JobPage, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, size)
	}
	return &domain.JobPage{Page: page}, nil
}

func (m *MockJobService) Search(ctx context.Context, keyword string, field domain.SearchField) ([]domain.Job, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, keyword, field)
	}
	return nil, nil
}

// MockContractService implements driving.ContractService for testing.
type MockContractService struct {
	ListFunc         func(ctx context.Context) ([]domain.Contract, error)
	AddFunc          func(ctx context.Context, linkHash string) error
	UpdateStatusFunc func(ctx context.Context, linkHash string, status domain.ContractStatus) error
	CloseFunc        func(ctx context.Context, linkHash string) error
}

func (m *MockContractService) List(ctx context.Context) ([]domain.Contract, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockContractService) Add(ctx context.Context, linkHash string) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, linkHash)
	}
	return nil
}

func (m *MockContractService) UpdateStatus(ctx context.Context, linkHash string, status domain.ContractStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, linkHash, status)
	}
	return nil
}

func (m *MockContractService) Close(ctx context.Context, linkHash string) error {
	if m.CloseFunc != nil {
		return m.CloseFunc(ctx, linkHash)
	}
	return nil
}

// MockReportService implements driving.ReportService for testing.
type MockReportService struct {
	Reports *domain.Reports
	Err     error
}

func (m *MockReportService) All(context.Context) (*domain.Reports, error) {
	if m.Reports == nil && m.Err == nil {
		return &domain.Reports{}, nil
	}
	return m.Reports, m.Err
}

func (m *MockReportService) Summary(ctx context.Context) ([]domain.ContractSummary, error) {
	r, err := m.All(ctx)
	if err != nil {
		return nil, err
	}
	return r.Summary, nil
}

func (m *MockReportService) Financial(ctx context.Context) (*domain.FinancialReport, error) {
	r, err := m.All(ctx)
	if err != nil {
		return nil, err
	}
	return &r.Financial, nil
}

func (m *MockReportService) Languages(ctx context.Context) ([]domain.LanguageUsage, error) {
	r, err := m.All(ctx)
	if err != nil {
		return nil, err
	}
	return r.Languages, nil
}

// MockSettingsService implements driving.SettingsService for testing.
type MockSettingsService struct {
	Settings domain.AppSettings
	Path     string
	SaveErr  error
}

func (m *MockSettingsService) Get() (*domain.AppSettings, error) {
	s := m.Settings
	return &s, nil
}

func (m *MockSettingsService) Save(settings *domain.AppSettings) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Settings = *settings
	return nil
}

func (m *MockSettingsService) SetBaseURL(baseURL string) error {
	m.Settings.API.BaseURL = baseURL
	return m.SaveErr
}

func (m *MockSettingsService) SetCredentialStore(kind domain.CredentialStoreKind) error {
	m.Settings.Session.Store = kind
	return m.SaveErr
}

func (m *MockSettingsService) SetPageSize(size int) error {
	m.Settings.Jobs.PageSize = size
	return m.SaveErr
}

func (m *MockSettingsService) ConfigPath() string { return m.Path }

var (
	_ driving.SessionManager  = (*MockSessionManager)(nil)
	_ driving.AccountService  = (*MockAccountService)(nil)
	_ driving.JobService      = (*MockJobService)(nil)
	_ driving.ContractService = (*MockContractService)(nil)
	_ driving.ReportService   = (*MockReportService)(nil)
	_ driving.SettingsService = (*MockSettingsService)(nil)
)
