package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workly-labs/workly-cli/internal/core/domain"
)

func TestReportService_All(t *testing.T) {
	api := &stubAPI{
		financial: &domain.FinancialReport{TotalMinBudget: 100, TotalMaxBudget: 300, AvgBudget: 200},
		summary:   []domain.ContractSummary{{Status: domain.ContractActive, TotalContracts: 2, TotalBudget: 300}},
		languages: []domain.LanguageUsage{{Language: "Go", Total: 2}},
	}
	service := NewReportService(api)

	reports, err := service.All(context.Background())

	require.NoError(t, err)
	assert.InDelta(t, 200.0, reports.Financial.AvgBudget, 0.001)
	assert.Len(t, reports.Summary, 1)
	assert.Equal(t, "Go", reports.Languages[0].Language)
	assert.Equal(t, 3, api.callCount())
}

func TestReportService_All_Error(t *testing.T) {
	api := &stubAPI{err: errors.New("backend down")}
	service := NewReportService(api)

	reports, err := service.All(context.Background())

	require.Error(t, err)
	assert.Nil(t, reports)
	assert.Contains(t, err.Error(), "backend down")
}

func TestReportService_Individual(t *testing.T) {
	api := &stubAPI{
		financial: &domain.FinancialReport{AvgBudget: 50},
		summary:   []domain.ContractSummary{{Status: domain.ContractPending}},
		languages: []domain.LanguageUsage{{Language: "Java", Total: 1}},
	}
	service := NewReportService(api)
	ctx := context.Background()

	financial, err := service.Financial(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, financial.AvgBudget, 0.001)

	summary, err := service.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ContractPending, summary[0].Status)

	languages, err := service.Languages(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Java", languages[0].Language)
}

func TestReportService_NilGateway(t *testing.T) {
	service := NewReportService(nil)

	_, err := service.All(context.Background())
	require.ErrorIs(t, err, domain.ErrNotImplemented)
}
