package analysis

import (
	_ "embed"
	"strings"
)

//go:embed templates/file_analysis.txt
var fileAnalysisTemplate string

//go:embed templates/directory_analysis.txt
var directoryAnalysisTemplate string

//go:embed templates/project_analysis.txt
var projectAnalysisTemplate string

// PromptTemplates holds the system prompt templates used for each analysis
// level. Placeholders in curly braces are substituted at build time.
type PromptTemplates struct {
	FileAnalysis       string
	DirectorySynthesis string
	ProjectAnalysis    string
}

// DefaultTemplates returns the embedded templates.
func DefaultTemplates() PromptTemplates {
	return PromptTemplates{
		FileAnalysis:       fileAnalysisTemplate,
		DirectorySynthesis: directoryAnalysisTemplate,
		ProjectAnalysis:    projectAnalysisTemplate,
	}
}

// FileAnalysisPrompt renders the file analysis system prompt.
func (t PromptTemplates) FileAnalysisPrompt(path string, actx Context) string {
	r := strings.NewReplacer(
		"{FILE_PATH}", path,
		"{PROJECT_TYPE}", string(actx.ProjectType),
		"{ANALYSIS_DEPTH}", string(actx.AnalysisDepth),
		"{TARGET_AUDIENCE}", string(actx.TargetAudience),
	)
	return r.Replace(t.FileAnalysis)
}

// DirectorySynthesisPrompt renders the directory synthesis system prompt.
func (t PromptTemplates) DirectorySynthesisPrompt(path string, actx Context) string {
	r := strings.NewReplacer(
		"{DIRECTORY_PATH}", path,
		"{PROJECT_TYPE}", string(actx.ProjectType),
	)
	return r.Replace(t.DirectorySynthesis)
}

// ProjectAnalysisPrompt renders the project analysis system prompt.
func (t PromptTemplates) ProjectAnalysisPrompt(root string, actx Context) string {
	r := strings.NewReplacer(
		"{PROJECT_ROOT}", root,
		"{PROJECT_TYPE}", string(actx.ProjectType),
	)
	return r.Replace(t.ProjectAnalysis)
}
