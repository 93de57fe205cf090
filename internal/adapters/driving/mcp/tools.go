package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/chembalance/internal/core/domain"
)

// BalanceInput is the input schema for the balance tool.
type BalanceInput struct {
	Equation string `json:"equation" jsonschema:"unbalanced equation such as H2 + O2 = H2O (-> is accepted for =)"`
}

// BalanceOutput is the output schema for the balance tool.
type BalanceOutput struct {
	Original     string  `json:"original"`
	Balanced     string  `json:"balanced"`
	Coefficients []int64 `json:"coefficients"`
	Nullity      int     `json:"nullity"`
}

// ExplainInput is the input schema for the explain tool.
type ExplainInput struct {
	Equation string `json:"equation" jsonschema:"equation to analyse"`
}

// ExplainOutput is the output schema for the explain tool.
type ExplainOutput struct {
	Elements  []string   `json:"elements"`
	Compounds []string   `json:"compounds"`
	Matrix    [][]int64  `json:"matrix"`
	Rank      int        `json:"rank"`
	Nullity   int        `json:"nullity"`
	Basis     [][]string `json:"basis"`
}

// HistoryInput is the input schema for the history tool.
type HistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"return only the most recent entries (0 returns all)"`
}

// HistoryOutput is the output schema for the history tool.
type HistoryOutput struct {
	Entries []HistoryEntryOutput `json:"entries"`
	Count   int                  `json:"count"`
}

// HistoryEntryOutput represents a single history entry.
type HistoryEntryOutput struct {
	ID       string `json:"id"`
	Original string `json:"original"`
	Balanced string `json:"balanced"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "balance",
		Description: "Balance a chemical equation with minimal positive integer coefficients",
	}, s.handleBalance)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "explain",
		Description: "Show the stoichiometric matrix, its rank and the null-space basis of an equation",
	}, s.handleExplain)

	if s.ports.History != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "history",
			Description: "List previously balanced equations, oldest first",
		}, s.handleHistory)
	}
}

// handleBalance handles the balance tool invocation.
func (s *Server) handleBalance(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input BalanceInput,
) (*mcp.CallToolResult, BalanceOutput, error) {
	result, err := s.ports.Balance.Balance(ctx, input.Equation)
	if err != nil {
		return nil, BalanceOutput{}, toolError(err)
	}

	return nil, BalanceOutput{
		Original:     result.Original,
		Balanced:     result.Text,
		Coefficients: result.Coefficients(),
		Nullity:      result.Nullity,
	}, nil
}

// handleExplain handles the explain tool invocation.
func (s *Server) handleExplain(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExplainInput,
) (*mcp.CallToolResult, ExplainOutput, error) {
	exp, err := s.ports.Balance.Explain(ctx, input.Equation)
	if err != nil {
		return nil, ExplainOutput{}, toolError(err)
	}

	basis := make([][]string, len(exp.Basis))
	for i, v := range exp.Basis {
		basis[i] = make([]string, len(v))
		for j, q := range v {
			basis[i][j] = q.RatString()
		}
	}

	return nil, ExplainOutput{
		Elements:  exp.Matrix.Elements,
		Compounds: exp.Matrix.Columns,
		Matrix:    exp.Matrix.Entries,
		Rank:      len(exp.PivotColumns),
		Nullity:   exp.Nullity(),
		Basis:     basis,
	}, nil
}

// handleHistory handles the history tool invocation.
func (s *Server) handleHistory(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input HistoryInput,
) (*mcp.CallToolResult, HistoryOutput, error) {
	entries, err := s.ports.History.List(ctx)
	if err != nil {
		return nil, HistoryOutput{}, err
	}

	if input.Limit > 0 && input.Limit < len(entries) {
		entries = entries[len(entries)-input.Limit:]
	}

	output := HistoryOutput{
		Entries: make([]HistoryEntryOutput, len(entries)),
		Count:   len(entries),
	}
	for i, e := range entries {
		output.Entries[i] = HistoryEntryOutput{ID: e.ID, Original: e.Original, Balanced: e.Balanced}
	}
	return nil, output, nil
}

// toolError prefixes err with its machine-readable code.
func toolError(err error) error {
	return fmt.Errorf("%s: %w", domain.ErrorCode(err), err)
}
