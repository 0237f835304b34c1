package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/remote-staffing/match-engine/internal/models"
	"github.com/remote-staffing/match-engine/internal/ranker"
)

// MatchCandidatesInput is the MCP tool input schema for ranking candidates
// against a job (matches HTTP API field names).
type MatchCandidatesInput struct {
	JobID string `json:"job_id" jsonschema:"job posting identifier"`
	TopN  int    `json:"top_n,omitempty" jsonschema:"maximum number of matches to return (default: 5)"`
}

// MatchJobsInput is the MCP tool input schema for ranking jobs against a
// candidate.
type MatchJobsInput struct {
	CandidateID string `json:"candidate_id" jsonschema:"candidate identifier"`
	TopN        int    `json:"top_n,omitempty" jsonschema:"maximum number of matches to return (default: 5)"`
}

// NewMatchCandidatesHandler returns a tool handler that ranks candidates for
// a job. Pass the returned function to mcp.AddTool.
func NewMatchCandidatesHandler(rnk *ranker.Ranker) func(context.Context, *mcp.CallToolRequest, MatchCandidatesInput) (*mcp.CallToolResult, models.MatchResponse, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input MatchCandidatesInput) (*mcp.CallToolResult, models.MatchResponse, error) {
		return MatchCandidates(ctx, rnk, req, input)
	}
}

// MatchCandidates runs the matching pipeline in job_to_candidates mode.
func MatchCandidates(
	ctx context.Context,
	rnk *ranker.Ranker,
	req *mcp.CallToolRequest,
	input MatchCandidatesInput,
) (*mcp.CallToolResult, models.MatchResponse, error) {
	matchRequest := models.MatchRequest{JobID: input.JobID}
	if input.TopN > 0 {
		matchRequest.TopN = &input.TopN
	}
	result, err := rnk.Match(ctx, matchRequest)
	return nil, result, err
}

// NewMatchJobsHandler returns a tool handler that ranks jobs for a
// candidate. Pass the returned function to mcp.AddTool.
func NewMatchJobsHandler(rnk *ranker.Ranker) func(context.Context, *mcp.CallToolRequest, MatchJobsInput) (*mcp.CallToolResult, models.MatchResponse, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input MatchJobsInput) (*mcp.CallToolResult, models.MatchResponse, error) {
		return MatchJobs(ctx, rnk, req, input)
	}
}

// MatchJobs runs the matching pipeline in candidate_to_jobs mode.
func MatchJobs(
	ctx context.Context,
	rnk *ranker.Ranker,
	req *mcp.CallToolRequest,
	input MatchJobsInput,
) (*mcp.CallToolResult, models.MatchResponse, error) {
	matchRequest := models.MatchRequest{CandidateID: input.CandidateID}
	if input.TopN > 0 {
		matchRequest.TopN = &input.TopN
	}
	result, err := rnk.Match(ctx, matchRequest)
	return nil, result, err
}
