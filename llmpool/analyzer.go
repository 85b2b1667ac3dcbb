package llmpool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/docweave/docweave/analysis"
)

var _ analysis.Analyzer = (*Pool)(nil)

// AnalyzeFile analyzes one source file through the pool.
func (p *Pool) AnalyzeFile(ctx context.Context, path, content string, actx analysis.Context) (*analysis.FileAnalysis, error) {
	prompt := analysis.DefaultTemplates().FileAnalysisPrompt(path, actx)
	result, err := Execute[analysis.FileAnalysis](ctx, p, prompt, content)
	if err != nil {
		return nil, fmt.Errorf("analyzing file %s: %w", path, err)
	}
	return &result, nil
}

// AnalyzeDirectory synthesizes child analyses into a directory summary.
func (p *Pool) AnalyzeDirectory(ctx context.Context, path string, children []analysis.ChildAnalysis, actx analysis.Context) (*analysis.DirectoryAnalysis, error) {
	prompt := analysis.DefaultTemplates().DirectorySynthesisPrompt(path, actx)
	content, err := json.MarshalIndent(children, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing child analyses: %w", err)
	}
	result, err := Execute[analysis.DirectoryAnalysis](ctx, p, prompt, string(content))
	if err != nil {
		return nil, fmt.Errorf("analyzing directory %s: %w", path, err)
	}
	return &result, nil
}

// AnalyzeProject synthesizes child analyses into a project overview.
func (p *Pool) AnalyzeProject(ctx context.Context, root string, children []analysis.ChildAnalysis, actx analysis.Context) (*analysis.ProjectAnalysis, error) {
	prompt := analysis.DefaultTemplates().ProjectAnalysisPrompt(root, actx)
	content, err := json.MarshalIndent(children, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing child analyses: %w", err)
	}
	result, err := Execute[analysis.ProjectAnalysis](ctx, p, prompt, string(content))
	if err != nil {
		return nil, fmt.Errorf("analyzing project %s: %w", root, err)
	}
	return &result, nil
}
