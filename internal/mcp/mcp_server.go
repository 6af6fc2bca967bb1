// Package mcp provides the Model Context Protocol (MCP) server
// implementation, exposing the scoring engine as tools.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/oakline/prism/internal/contract"
)

// NewMCPServer initializes and configures the Prism MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Prism Prioritization Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: compute_prioritization ---
	s.AddTool(mcp.NewTool("compute_prioritization",
		mcp.WithDescription("Compute the prioritization report for an assessment: scored roles, value/effort heatmap, adoption score and ROI projection. Returns a cached snapshot unless regenerate is set."),
		mcp.WithNumber("assessment_id", mcp.Description("The assessment to score."), mcp.Required()),
		mcp.WithBoolean("regenerate", mcp.Description("Force a fresh computation even when a snapshot exists.")),
	), h.handleComputePrioritization)

	// --- 2. Tool: get_report ---
	s.AddTool(mcp.NewTool("get_report",
		mcp.WithDescription("Fetch the latest stored report snapshot for an assessment without computing anything."),
		mcp.WithNumber("assessment_id", mcp.Description("The assessment whose report to fetch."), mcp.Required()),
	), h.handleGetReport)

	// --- 3. Tool: get_weights ---
	s.AddTool(mcp.NewTool("get_weights",
		mcp.WithDescription("Resolve the adoption-score weight vector for an organization, synthesizing defaults from industry and company stage when none is stored."),
		mcp.WithNumber("organization_id", mcp.Description("The organization whose weights to resolve."), mcp.Required()),
		mcp.WithString("industry", mcp.Description("Industry used for default synthesis when no vector is stored.")),
		mcp.WithString("company_stage", mcp.Description("Company stage used for default synthesis when no vector is stored.")),
	), h.handleGetWeights)

	// --- 4. Tool: set_weights ---
	s.AddTool(mcp.NewTool("set_weights",
		mcp.WithDescription("Store an organization's adoption-score weight vector. The five weights must sum to 1.0 (within 0.05)."),
		mcp.WithNumber("organization_id", mcp.Description("The organization to update."), mcp.Required()),
		mcp.WithNumber("adoption_rate", mcp.Description("Weight for the adoption rate component."), mcp.Required()),
		mcp.WithNumber("time_saved", mcp.Description("Weight for the time saved component."), mcp.Required()),
		mcp.WithNumber("cost_efficiency", mcp.Description("Weight for the cost efficiency component."), mcp.Required()),
		mcp.WithNumber("performance_improvement", mcp.Description("Weight for the performance improvement component."), mcp.Required()),
		mcp.WithNumber("tool_sprawl_reduction", mcp.Description("Weight for the tool sprawl reduction component."), mcp.Required()),
	), h.handleSetWeights)

	return s
}

// StartMCPServer starts the Prism MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
