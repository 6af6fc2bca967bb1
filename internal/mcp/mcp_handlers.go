package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/oakline/prism/core"
	"github.com/oakline/prism/internal/contract"
	"github.com/oakline/prism/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

// argBool reads a boolean argument, tolerating absence.
func argBool(request mcp.CallToolRequest, key string) bool {
	v, ok := request.GetArguments()[key].(bool)
	return ok && v
}

// argFloat reads a numeric argument. JSON numbers decode as float64.
func argFloat(request mcp.CallToolRequest, key string) float64 {
	v, _ := request.GetArguments()[key].(float64)
	return v
}

func (h *toolHandler) handleComputePrioritization(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	assessmentID := int64(request.GetInt("assessment_id", 0))
	if assessmentID <= 0 {
		return mcp.NewToolResultError("assessment_id must be a positive integer"), nil
	}
	opts := core.ComputeOptions{NoCache: argBool(request, "regenerate")}

	orchestrator := core.NewOrchestrator(h.baseCfg.Clone(), h.mgr)
	snap, err := orchestrator.ComputePrioritization(ctx, assessmentID, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("computation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(snap, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	assessmentID := int64(request.GetInt("assessment_id", 0))
	if assessmentID <= 0 {
		return mcp.NewToolResultError("assessment_id must be a positive integer"), nil
	}

	snap, err := h.mgr.Reports().GetLatestReport(ctx, assessmentID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("report lookup failed: %v", err)), nil
	}
	if snap == nil {
		return mcp.NewToolResultError(fmt.Sprintf("no report found for assessment %d", assessmentID)), nil
	}

	jsonData, _ := json.MarshalIndent(snap, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetWeights(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	orgID := int64(request.GetInt("organization_id", 0))
	if orgID <= 0 {
		return mcp.NewToolResultError("organization_id must be a positive integer"), nil
	}
	industry := request.GetString("industry", "")
	stage := request.GetString("company_stage", "")

	weights, err := core.ResolveOrganizationWeights(ctx, h.mgr.Weights(), orgID, industry, stage)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("weight resolution failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(weights, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleSetWeights(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	orgID := int64(request.GetInt("organization_id", 0))
	if orgID <= 0 {
		return mcp.NewToolResultError("organization_id must be a positive integer"), nil
	}

	w := schema.OrganizationScoreWeights{
		OrganizationID:         orgID,
		AdoptionRate:           argFloat(request, "adoption_rate"),
		TimeSaved:              argFloat(request, "time_saved"),
		CostEfficiency:         argFloat(request, "cost_efficiency"),
		PerformanceImprovement: argFloat(request, "performance_improvement"),
		ToolSprawlReduction:    argFloat(request, "tool_sprawl_reduction"),
	}

	stored, err := h.mgr.Weights().UpsertWeights(ctx, w)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("weight update failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(stored, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
