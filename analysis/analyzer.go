package analysis

import "context"

// Analyzer produces structured analyses at file, directory and project
// granularity. Both a single client and a pool of clients implement it, so
// callers can swap one for the other without caring which they hold.
type Analyzer interface {
	// AnalyzeFile analyzes one source file from its content.
	AnalyzeFile(ctx context.Context, path, content string, actx Context) (*FileAnalysis, error)

	// AnalyzeDirectory synthesizes child analyses into a directory summary.
	AnalyzeDirectory(ctx context.Context, path string, children []ChildAnalysis, actx Context) (*DirectoryAnalysis, error)

	// AnalyzeProject synthesizes child analyses into a project overview.
	AnalyzeProject(ctx context.Context, root string, children []ChildAnalysis, actx Context) (*ProjectAnalysis, error)
}
