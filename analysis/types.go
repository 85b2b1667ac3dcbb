package analysis

// FileAnalysis is the structured result of analyzing one source file.
type FileAnalysis struct {
	FilePath             string      `json:"file_path" jsonschema:"description=Path to the file being analyzed"`
	FileType             string      `json:"file_type" jsonschema:"description=File extension or type (e.g. 'go'\\, 'ts'\\, 'py')"`
	Summary              string      `json:"summary" jsonschema:"description=Brief 2-3 sentence description of what this file does and its role in the system"`
	ExternalDependencies []string    `json:"external_dependencies" jsonschema:"description=External libraries\\, services or system dependencies this file uses"`
	PublicInterfaces     []Interface `json:"public_interfaces" jsonschema:"description=Public functions\\, types or modules that other components can use"`
}

// DirectoryAnalysis synthesizes the analyses of a directory's children.
type DirectoryAnalysis struct {
	DirectoryPath        string      `json:"directory_path" jsonschema:"description=Path to the directory being analyzed"`
	DepthLevel           int         `json:"depth_level" jsonschema:"description=Directory nesting level from project root (0 = root)"`
	Summary              string      `json:"summary" jsonschema:"description=High-level description of what this directory accomplishes within the larger system"`
	ChildSummaries       []string    `json:"child_summaries" jsonschema:"description=Condensed summaries from immediate child files and directories"`
	KeyComponents        []string    `json:"key_components" jsonschema:"description=Most important components\\, files or modules in this directory"`
	ExternalDependencies []string    `json:"external_dependencies" jsonschema:"description=Consolidated external dependencies from all child components"`
	PublicInterfaces     []Interface `json:"public_interfaces" jsonschema:"description=Main interfaces this directory exposes to other parts of the system"`
}

// ProjectAnalysis is the top-level synthesis for a whole project.
type ProjectAnalysis struct {
	ProjectOverview           string      `json:"project_overview" jsonschema:"description=Executive summary of what this software does and its primary value proposition"`
	ArchitectureSummary       string      `json:"architecture_summary" jsonschema:"description=High-level description of how the system is structured and organized"`
	CoreTechnologies          []string    `json:"core_technologies" jsonschema:"description=Primary technologies\\, frameworks and significant dependencies"`
	MainInterfaces            []Interface `json:"main_interfaces" jsonschema:"description=Interfaces into the project"`
	DevelopmentConsiderations []string    `json:"development_considerations" jsonschema:"description=Key requirements for running or deploying this software"`
	ExtensionPoints           []string    `json:"extension_points" jsonschema:"description=Areas where the system is designed to be extended or customized"`
	RiskFactors               []Interface `json:"risk_factors" jsonschema:"description=Potential technical risks or dependencies that could cause issues"`
}

// Interface names one public surface a component exposes.
type Interface struct {
	Name          string        `json:"name" jsonschema:"description=Name of the interface (function name\\, type name\\, API endpoint\\, etc.)"`
	InterfaceType InterfaceType `json:"interface_type" jsonschema:"description=Category of interface this represents"`
	Description   string        `json:"description" jsonschema:"description=What this interface provides and how other components can use it"`
}

// InterfaceType categorizes an Interface.
type InterfaceType string

const (
	InterfaceFunction      InterfaceType = "Function"
	InterfaceStruct        InterfaceType = "Struct"
	InterfaceTrait         InterfaceType = "Trait"
	InterfaceModule        InterfaceType = "Module"
	InterfaceAPI           InterfaceType = "Api"
	InterfaceConfiguration InterfaceType = "Configuration"
	InterfaceDataModel     InterfaceType = "DataModel"
)

// ChildAnalysis carries either a file or a directory result when feeding
// child summaries into a synthesis request.
type ChildAnalysis struct {
	File      *FileAnalysis      `json:"file,omitempty"`
	Directory *DirectoryAnalysis `json:"directory,omitempty"`
}

// ProjectType hints what kind of codebase is being analyzed.
type ProjectType string

const (
	ProjectWebApplication ProjectType = "WebApplication"
	ProjectLibrary        ProjectType = "Library"
	ProjectCLITool        ProjectType = "CliTool"
	ProjectSystemService  ProjectType = "SystemService"
	ProjectDeveloperTool  ProjectType = "DeveloperTool"
	ProjectUnknown        ProjectType = "Unknown"
)

// Audience selects who the produced documentation is for.
type Audience string

const (
	AudienceLLMConsumption         Audience = "LlmConsumption"
	AudienceHumanDeveloper         Audience = "HumanDeveloper"
	AudienceTechnicalDocumentation Audience = "TechnicalDocumentation"
)

// Depth selects how much detail analysis should go into.
type Depth string

const (
	DepthSurface  Depth = "Surface"  // just interfaces and dependencies
	DepthStandard Depth = "Standard" // full analysis
	DepthDeep     Depth = "Deep"     // include implementation details
)

// Context parameterizes every analysis request.
type Context struct {
	ProjectType    ProjectType
	TargetAudience Audience
	AnalysisDepth  Depth
}

// DefaultContext returns a standard-depth context for an unknown project
// aimed at human developers.
func DefaultContext() Context {
	return Context{
		ProjectType:    ProjectUnknown,
		TargetAudience: AudienceHumanDeveloper,
		AnalysisDepth:  DepthStandard,
	}
}
