package reports

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workly-labs/workly-cli/internal/adapters/driving/tui/messages"
	"github.com/workly-labs/workly-cli/internal/core/domain"
)

type mockReportService struct {
	reports *domain.Reports
	err     error
	calls   int
}

func (m *mockReportService) All(context.Context) (*domain.Reports, error) {
	m.calls++
	return m.reports, m.err
}

func (m *mockReportService) Summary(context.Context) ([]domain.ContractSummary, error) {
	return m.reports.Summary, m.err
}

func (m *mockReportService) Financial(context.Context) (*domain.FinancialReport, error) {
	return &m.reports.Financial, m.err
}

func (m *mockReportService) Languages(context.Context) ([]domain.LanguageUsage, error) {
	return m.reports.Languages, m.err
}

func sampleReports() *domain.Reports {
	return &domain.Reports{
		Financial: domain.FinancialReport{TotalMinBudget: 1500, TotalMaxBudget: 4200.5, AvgBudget: 2850.25},
		Summary: []domain.ContractSummary{
			{Status: domain.ContractActive, TotalContracts: 2, TotalBudget: 3000},
		},
		Languages: []domain.LanguageUsage{
			{Language: "Go", Total: 4},
			{Language: "SQL", Total: 2},
		},
	}
}

func TestView_LoadsAndRenders(t *testing.T) {
	svc := &mockReportService{reports: sampleReports()}
	v := NewView(nil, svc)
	v.SetDimensions(100, 40)

	cmd := v.Init()
	assert.Contains(t, v.View(), "Loading...")
	v.Update(cmd())

	view := v.View()
	assert.Contains(t, view, "R$ 1.500,00")
	assert.Contains(t, view, "R$ 4.200,50")
	assert.Contains(t, view, "Ativo")
	assert.Contains(t, view, "Go")
	assert.Contains(t, view, "█")
}

func TestView_EmptyReports(t *testing.T) {
	v := NewView(nil, &mockReportService{reports: &domain.Reports{}})
	v.SetDimensions(100, 40)

	v.Update(v.Init()())

	assert.Contains(t, v.View(), "No contracts.")
	assert.Contains(t, v.View(), "No skills recorded.")
}

func TestView_Error(t *testing.T) {
	v := NewView(nil, &mockReportService{err: errors.New("timeout")})
	v.SetDimensions(100, 40)

	v.Update(v.Init()())

	require.Error(t, v.Err())
	assert.Contains(t, v.View(), "Error: timeout")
}

func TestView_NoService(t *testing.T) {
	v := NewView(nil, nil)

	v.Update(v.Init()())

	assert.ErrorIs(t, v.Err(), ErrNoReportService)
}

func TestView_Reload(t *testing.T) {
	svc := &mockReportService{reports: sampleReports()}
	v := NewView(nil, svc)
	v.Update(v.Init()())

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	require.NotNil(t, cmd)
	v.Update(cmd())

	assert.Equal(t, 2, svc.calls)
}

func TestView_Esc(t *testing.T) {
	v := NewView(nil, nil)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}
