package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for Workly resources.
	uriScheme = "workly://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "jobs/{page}",
		Name:        "jobs-page",
		Description: "One page of the job listing, numbered from 1",
		MIMEType:    "application/json",
	}, s.handleJobsResource)

	if s.ports.Contracts != nil {
		s.server.AddResource(&mcp.Resource{
			URI:         uriScheme + "contracts",
			Name:        "contracts",
			Description: "The jobs the user has claimed",
			MIMEType:    "application/json",
		}, s.handleContractsResource)
	}

	if s.ports.Reports != nil {
		s.server.AddResource(&mcp.Resource{
			URI:         uriScheme + "reports",
			Name:        "reports",
			Description: "Financial, contract and skill reports",
			MIMEType:    "application/json",
		}, s.handleReportsResource)
	}
}

// handleJobsResource returns one page of jobs.
func (s *Server) handleJobsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	page, ok := extractPage(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err := s.guard(ctx); err != nil {
		return nil, err
	}

	result, err := s.ports.Jobs.List(ctx, page-1, 0)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", sessionError(err))
	}

	return jsonResource(req.Params.URI, ListJobsOutput{
		Jobs:          toJobOutputs(result.Jobs),
		Page:          result.Page + 1,
		TotalPages:    result.TotalPages,
		TotalElements: result.TotalElements,
	})
}

// handleContractsResource returns the user's contracts.
func (s *Server) handleContractsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	_, out, err := s.handleListContracts(ctx, nil, struct{}{})
	if err != nil {
		return nil, fmt.Errorf("listing contracts: %w", err)
	}
	return jsonResource(req.Params.URI, out.Contracts)
}

// handleReportsResource returns the user's reports.
func (s *Server) handleReportsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	_, out, err := s.handleReports(ctx, nil, struct{}{})
	if err != nil {
		return nil, fmt.Errorf("loading reports: %w", err)
	}
	return jsonResource(req.Params.URI, out)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractPage extracts the page number from a URI like workly://jobs/{page}.
func extractPage(uri string) (int, bool) {
	const prefix = uriScheme + "jobs/"

	if !strings.HasPrefix(uri, prefix) {
		return 0, false
	}

	page, err := strconv.Atoi(strings.TrimPrefix(uri, prefix))
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}
