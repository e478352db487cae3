package httpapi

import (
	"context"
	"net/http"

	"github.com/workly-labs/workly-cli/internal/core/domain"
)

const (
	pathReportSummary   = "/api/reports/summary"
	pathReportFinancial = "/api/reports/financial"
	pathReportLanguages = "/api/reports/languages"
)

// ContractSummary returns contract totals grouped by status.
func (c *Client) ContractSummary(ctx context.Context) ([]domain.ContractSummary, error) {
	var summary []domain.ContractSummary
	if err := c.do(ctx, http.MethodGet, pathReportSummary, nil, &summary); err != nil {
		return nil, err
	}
	return summary, nil
}

// FinancialReport returns budget totals.
func (c *Client) FinancialReport(ctx context.Context) (*domain.FinancialReport, error) {
	var report domain.FinancialReport
	if err := c.do(ctx, http.MethodGet, pathReportFinancial, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// LanguageUsage returns how often each skill appears in the user's contracts.
func (c *Client) LanguageUsage(ctx context.Context) ([]domain.LanguageUsage, error) {
	var usage []domain.LanguageUsage
	if err := c.do(ctx, http.MethodGet, pathReportLanguages, nil, &usage); err != nil {
		return nil, err
	}
	return usage, nil
}
