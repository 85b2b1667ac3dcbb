package llmclient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/docweave/docweave/analysis"
)

var _ analysis.Analyzer = (*Client)(nil)

// AnalyzeFile analyzes one source file with this client.
func (c *Client) AnalyzeFile(ctx context.Context, path, content string, actx analysis.Context) (*analysis.FileAnalysis, error) {
	prompt := analysis.DefaultTemplates().FileAnalysisPrompt(path, actx)
	result, err := StructuredWithRetry[analysis.FileAnalysis](ctx, c, prompt, content)
	if err != nil {
		return nil, fmt.Errorf("analyzing file %s: %w", path, err)
	}
	return &result, nil
}

// AnalyzeDirectory synthesizes child analyses into a directory summary.
func (c *Client) AnalyzeDirectory(ctx context.Context, path string, children []analysis.ChildAnalysis, actx analysis.Context) (*analysis.DirectoryAnalysis, error) {
	prompt := analysis.DefaultTemplates().DirectorySynthesisPrompt(path, actx)
	content, err := json.MarshalIndent(children, "", "  ")
	if err != nil {
		return nil, &ParseError{LLMError{Message: "serializing child analyses", Cause: err}}
	}
	result, err := StructuredWithRetry[analysis.DirectoryAnalysis](ctx, c, prompt, string(content))
	if err != nil {
		return nil, fmt.Errorf("analyzing directory %s: %w", path, err)
	}
	return &result, nil
}

// AnalyzeProject synthesizes child analyses into a project overview.
func (c *Client) AnalyzeProject(ctx context.Context, root string, children []analysis.ChildAnalysis, actx analysis.Context) (*analysis.ProjectAnalysis, error) {
	prompt := analysis.DefaultTemplates().ProjectAnalysisPrompt(root, actx)
	content, err := json.MarshalIndent(children, "", "  ")
	if err != nil {
		return nil, &ParseError{LLMError{Message: "serializing child analyses", Cause: err}}
	}
	result, err := StructuredWithRetry[analysis.ProjectAnalysis](ctx, c, prompt, string(content))
	if err != nil {
		return nil, fmt.Errorf("analyzing project %s: %w", root, err)
	}
	return &result, nil
}
