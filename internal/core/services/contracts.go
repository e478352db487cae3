package services

import (
	"context"
	"strings"

	"github.com/workly-labs/workly-cli/internal/core/domain"
	"github.com/workly-labs/workly-cli/internal/core/ports/driven"
	"github.com/workly-labs/workly-cli/internal/core/ports/driving"
)

// Ensure ContractService implements the interface.
var _ driving.ContractService = (*ContractService)(nil)

// ContractService manages the user's claimed jobs.
type ContractService struct {
	gateway driven.ContractsGateway
}

// NewContractService creates a new contract service.
func NewContractService(gateway driven.ContractsGateway) *ContractService {
	return &ContractService{
		gateway: gateway,
	}
}

// List returns the user's contracts.
func (s *ContractService) List(ctx context.Context) ([]domain.Contract, error) {
	if s.gateway == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.gateway.ListContracts(ctx)
}

// Add claims a job.
func (s *ContractService) Add(ctx context.Context, linkHash string) error {
	if s.gateway == nil {
		return domain.ErrNotImplemented
	}
	linkHash = strings.TrimSpace(linkHash)
	if linkHash == "" {
		return domain.ErrInvalidInput
	}
	return s.gateway.AddContract(ctx, linkHash)
}

// UpdateStatus changes the status of a claimed job.
func (s *ContractService) UpdateStatus(ctx context.Context, linkHash string, status domain.ContractStatus) error {
	if s.gateway == nil {
		return domain.ErrNotImplemented
	}
	linkHash = strings.TrimSpace(linkHash)
	if linkHash == "" || !status.IsValid() {
		return domain.ErrInvalidInput
	}
	return s.gateway.UpdateContractStatus(ctx, linkHash, status)
}

// Close marks a contract as cancelled.
func (s *ContractService) Close(ctx context.Context, linkHash string) error {
	return s.UpdateStatus(ctx, linkHash, domain.ContractCancelled)
}
