package entity

type ToolCategory string

const (
	ToolCategoryAssessment ToolCategory = "assessment"
	ToolCategoryDocuments  ToolCategory = "documents"
	ToolCategoryPlanning   ToolCategory = "planning"
	ToolCategoryAnalytics  ToolCategory = "analytics"
)

// Tool is one catalog entry. Tools are static configuration, not created at
// runtime; the slug is the stable identifier used in routes and history rows.
type Tool struct {
	Slug        string
	Name        string
	Description string
	Category    ToolCategory
	// AccessLevel is the minimum tier required to use the tool.
	// An empty value means free (fail open on missing configuration).
	AccessLevel   PlanTier
	DefaultInputs map[string]interface{}
}
