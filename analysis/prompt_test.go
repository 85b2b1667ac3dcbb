package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileAnalysisPromptSubstitution(t *testing.T) {
	actx := Context{
		ProjectType:    ProjectLibrary,
		TargetAudience: AudienceHumanDeveloper,
		AnalysisDepth:  DepthDeep,
	}

	prompt := DefaultTemplates().FileAnalysisPrompt("src/main.go", actx)

	assert.Contains(t, prompt, "src/main.go")
	assert.Contains(t, prompt, "Library")
	assert.Contains(t, prompt, "HumanDeveloper")
	assert.Contains(t, prompt, "Deep")
	assert.NotContains(t, prompt, "{FILE_PATH}")
	assert.NotContains(t, prompt, "{PROJECT_TYPE}")
	assert.NotContains(t, prompt, "{ANALYSIS_DEPTH}")
	assert.NotContains(t, prompt, "{TARGET_AUDIENCE}")
}

func TestDirectorySynthesisPromptSubstitution(t *testing.T) {
	prompt := DefaultTemplates().DirectorySynthesisPrompt("pkg/store", DefaultContext())

	assert.Contains(t, prompt, "pkg/store")
	assert.Contains(t, prompt, "Unknown")
	assert.NotContains(t, prompt, "{DIRECTORY_PATH}")
	assert.NotContains(t, prompt, "{PROJECT_TYPE}")
}

func TestProjectAnalysisPromptSubstitution(t *testing.T) {
	prompt := DefaultTemplates().ProjectAnalysisPrompt("/srv/repo", DefaultContext())

	assert.Contains(t, prompt, "/srv/repo")
	assert.NotContains(t, prompt, "{PROJECT_ROOT}")
}

func TestDefaultContext(t *testing.T) {
	actx := DefaultContext()
	assert.Equal(t, ProjectUnknown, actx.ProjectType)
	assert.Equal(t, AudienceHumanDeveloper, actx.TargetAudience)
	assert.Equal(t, DepthStandard, actx.AnalysisDepth)
}
