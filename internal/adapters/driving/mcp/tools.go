package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/workly-labs/workly-cli/internal/adapters/driving/format"
	"github.com/workly-labs/workly-cli/internal/core/domain"
)

// errNoContracts is returned when contract tools run without a contract service.
var errNoContracts = errors.New("contracts are not available")

// ListJobsInput is the input schema for the list_jobs tool.
type ListJobsInput struct {
	Page int `json:"page,omitempty" jsonschema:"page number starting at 1 (default 1)"`
	Size int `json:"size,omitempty" jsonschema:"jobs per page (default from settings)"`
}

// ListJobsOutput is the output schema for the list_jobs tool.
type ListJobsOutput struct {
	Jobs          []JobOutput `json:"jobs"`
	Page          int         `json:"page"`
	TotalPages    int         `json:"total_pages"`
	TotalElements int64       `json:"total_elements"`
}

// SearchJobsInput is the input schema for the search_jobs tool.
type SearchJobsInput struct {
	Keyword string `json:"keyword" jsonschema:"keyword to match"`
	Field   string `json:"field,omitempty" jsonschema:"title or skills (default title)"`
}

// SearchJobsOutput is the output schema for the search_jobs tool.
type SearchJobsOutput struct {
	Jobs  []JobOutput `json:"jobs"`
	Count int         `json:"count"`
}

// JobOutput represents a single job.
type JobOutput struct {
	Title       string `json:"title"`
	LinkHash    string `json:"link_hash"`
	Link        string `json:"link"`
	Source      string `json:"source"`
	Skills      string `json:"skills"`
	Budget      string `json:"budget"`
	Description string `json:"description,omitempty"`
}

// LinkHashInput identifies a job or contract.
type LinkHashInput struct {
	LinkHash string `json:"link_hash" jsonschema:"the job's link hash"`
}

// UpdateStatusInput is the input schema for the update_contract_status tool.
type UpdateStatusInput struct {
	LinkHash string `json:"link_hash" jsonschema:"the contract's link hash"`
	Status   string `json:"status" jsonschema:"active, inactive, pending, completed or cancelled"`
}

// ContractsOutput is the output schema for the list_contracts tool.
type ContractsOutput struct {
	Contracts []ContractOutput `json:"contracts"`
	Count     int              `json:"count"`
}

// ContractOutput represents a single contract.
type ContractOutput struct {
	Title    string `json:"title"`
	LinkHash string `json:"link_hash"`
	Status   string `json:"status"`
	Label    string `json:"label"`
	Budget   string `json:"budget"`
	Skills   string `json:"skills"`
}

// AckOutput confirms a state-changing tool.
type AckOutput struct {
	Message string `json:"message"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_jobs",
		Description: "List scraped jobs one page at a time",
	}, s.handleListJobs)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_jobs",
		Description: "Search jobs by title or skills",
	}, s.handleSearchJobs)

	if s.ports.Contracts != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_contracts",
			Description: "List the jobs the user has claimed",
		}, s.handleListContracts)

		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "claim_job",
			Description: "Claim a job as a new contract",
		}, s.handleClaimJob)

		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "update_contract_status",
			Description: "Change the status of a contract",
		}, s.handleUpdateStatus)
	}

	if s.ports.Reports != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "get_reports",
			Description: "Financial, contract and skill reports for the user",
		}, s.handleReports)
	}
}

func (s *Server) handleListJobs(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListJobsInput,
) (*mcp.CallToolResult, ListJobsOutput, error) {
	if err := s.guard(ctx); err != nil {
		return nil, ListJobsOutput{}, err
	}

	page := max(input.Page, 1)
	result, err := s.ports.Jobs.List(ctx, page-1, input.Size)
	if err != nil {
		return nil, ListJobsOutput{}, sessionError(err)
	}

	return nil, ListJobsOutput{
		Jobs:          toJobOutputs(result.Jobs),
		Page:          result.Page + 1,
		TotalPages:    result.TotalPages,
		TotalElements: result.TotalElements,
	}, nil
}

func (s *Server) handleSearchJobs(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchJobsInput,
) (*mcp.CallToolResult, SearchJobsOutput, error) {
	if err := s.guard(ctx); err != nil {
		return nil, SearchJobsOutput{}, err
	}

	jobs, err := s.ports.Jobs.Search(ctx, input.Keyword, domain.SearchField(input.Field))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return nil, SearchJobsOutput{}, fmt.Errorf("invalid search field %q: use title or skills", input.Field)
		}
		return nil, SearchJobsOutput{}, sessionError(err)
	}

	out := toJobOutputs(jobs)
	return nil, SearchJobsOutput{Jobs: out, Count: len(out)}, nil
}

func (s *Server) handleListContracts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, ContractsOutput, error) {
	if err := s.guard(ctx); err != nil {
		return nil, ContractsOutput{}, err
	}
	if s.ports.Contracts == nil {
		return nil, ContractsOutput{}, errNoContracts
	}

	contracts, err := s.ports.Contracts.List(ctx)
	if err != nil {
		return nil, ContractsOutput{}, sessionError(err)
	}

	out := ContractsOutput{
		Contracts: make([]ContractOutput, len(contracts)),
		Count:     len(contracts),
	}
	for i := range contracts {
		c := &contracts[i]
		out.Contracts[i] = ContractOutput{
			Title:    c.Title,
			LinkHash: c.LinkHash,
			Status:   c.Status.String(),
			Label:    c.Status.Label(),
			Budget:   format.Budget(c.MinBudget, c.MaxBudget),
			Skills:   c.Skills,
		}
	}
	return nil, out, nil
}

func (s *Server) handleClaimJob(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LinkHashInput,
) (*mcp.CallToolResult, AckOutput, error) {
	if err := s.guard(ctx); err != nil {
		return nil, AckOutput{}, err
	}
	if s.ports.Contracts == nil {
		return nil, AckOutput{}, errNoContracts
	}

	if err := s.ports.Contracts.Add(ctx, input.LinkHash); err != nil {
		return nil, AckOutput{}, sessionError(err)
	}
	return nil, AckOutput{Message: "Contract added: " + input.LinkHash}, nil
}

func (s *Server) handleUpdateStatus(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpdateStatusInput,
) (*mcp.CallToolResult, AckOutput, error) {
	if err := s.guard(ctx); err != nil {
		return nil, AckOutput{}, err
	}
	if s.ports.Contracts == nil {
		return nil, AckOutput{}, errNoContracts
	}

	status, err := domain.ParseContractStatus(input.Status)
	if err != nil {
		return nil, AckOutput{}, fmt.Errorf("unknown status %q", input.Status)
	}
	if err := s.ports.Contracts.UpdateStatus(ctx, input.LinkHash, status); err != nil {
		return nil, AckOutput{}, sessionError(err)
	}
	return nil, AckOutput{
		Message: fmt.Sprintf("Contract %s is now %s", input.LinkHash, status.Label()),
	}, nil
}

func (s *Server) handleReports(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, domain.Reports, error) {
	if err := s.guard(ctx); err != nil {
		return nil, domain.Reports{}, err
	}

	reports, err := s.ports.Reports.All(ctx)
	if err != nil {
		return nil, domain.Reports{}, sessionError(err)
	}
	return nil, *reports, nil
}

func toJobOutputs(jobs []domain.Job) []JobOutput {
	out := make([]JobOutput, len(jobs))
	for i := range jobs {
		j := &jobs[i]
		out[i] = JobOutput{
			Title:       j.Title,
			LinkHash:    j.LinkHash,
			Link:        j.Link,
			Source:      j.Source,
			Skills:      j.Skills,
			Budget:      format.Budget(j.MinBudget, j.MaxBudget),
			Description: j.Description,
		}
	}
	return out
}
