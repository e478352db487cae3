package httpapi

import (
	"context"
	"net/http"

	"github.com/workly-labs/workly-cli/internal/core/domain"
)

const pathContracts = "/api/users/contracts"

type addContractRequest struct {
	LinkHash string `json:"linkHash"`
}

type updateContractRequest struct {
	LinkHash  string                `json:"linkHash"`
	NewStatus domain.ContractStatus `json:"newStatus"`
}

// ListContracts returns the user's contracts. The backend answers 204 when there are none.
func (c *Client) ListContracts(ctx context.Context) ([]domain.Contract, error) {
	var contracts []domain.Contract
	if err := c.do(ctx, http.MethodGet, pathContracts, nil, &contracts); err != nil {
		return nil, err
	}
	if contracts == nil {
		contracts = []domain.Contract{}
	}
	return contracts, nil
}

// AddContract claims the job identified by linkHash.
func (c *Client) AddContract(ctx context.Context, linkHash string) error {
	return c.do(ctx, http.MethodPost, pathContracts, addContractRequest{LinkHash: linkHash}, nil)
}

// UpdateContractStatus changes the status of a claimed job.
func (c *Client) UpdateContractStatus(ctx context.Context, linkHash string, status domain.ContractStatus) error {
	req := updateContractRequest{LinkHash: linkHash, NewStatus: status}
	return c.do(ctx, http.MethodPatch, pathContracts, req, nil)
}
