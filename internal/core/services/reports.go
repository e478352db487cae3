package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/workly-labs/workly-cli/internal/core/domain"
	"github.com/workly-labs/workly-cli/internal/core/ports/driven"
	"github.com/workly-labs/workly-cli/internal/core/ports/driving"
)

// Ensure ReportService implements the interface.
var _ driving.ReportService = (*ReportService)(nil)

// ReportService loads the user's reports.
type ReportService struct {
	gateway driven.ReportsGateway
}

// NewReportService creates a new report service.
func NewReportService(gateway driven.ReportsGateway) *ReportService {
	return &ReportService{
		gateway: gateway,
	}
}

// All loads the three reports concurrently. The first failure cancels the rest.
func (s *ReportService) All(ctx context.Context) (*domain.Reports, error) {
	if s.gateway == nil {
		return nil, domain.ErrNotImplemented
	}

	var reports domain.Reports
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		financial, err := s.gateway.FinancialReport(gctx)
		if err != nil {
			return fmt.Errorf("financial report: %w", err)
		}
		reports.Financial = *financial
		return nil
	})
	g.Go(func() error {
		summary, err := s.gateway.ContractSummary(gctx)
		if err != nil {
			return fmt.Errorf("contract summary: %w", err)
		}
		reports.Summary = summary
		return nil
	})
	g.Go(func() error {
		languages, err := s.gateway.LanguageUsage(gctx)
		if err != nil {
			return fmt.Errorf("language usage: %w", err)
		}
		reports.Languages = languages
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &reports, nil
}

// Summary returns contract totals by status.
func (s *ReportService) Summary(ctx context.Context) ([]domain.ContractSummary, error) {
	if s.gateway == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.gateway.ContractSummary(ctx)
}

// Financial returns budget totals.
func (s *ReportService) Financial(ctx context.Context) (*domain.FinancialReport, error) {
	if s.gateway == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.gateway.FinancialReport(ctx)
}

// Languages returns skill usage counts.
func (s *ReportService) Languages(ctx context.Context) ([]domain.LanguageUsage, error) {
	if s.gateway == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.gateway.LanguageUsage(ctx)
}
