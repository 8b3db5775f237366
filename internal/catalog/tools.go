package catalog

import "smart-tools-be/internal/entity"

// tools is the static catalog of offered capabilities. AccessLevel is the
// minimum tier; entries that omit it are normalized to free in init, so a
// configuration gap can only ever fail open.
var tools = []entity.Tool{
	{
		Slug:        "quiz-generator",
		Name:        "Quiz Generator",
		Description: "Turn any topic into a ready-to-print quiz",
		Category:    entity.ToolCategoryAssessment,
		AccessLevel: entity.PlanTierFree,
		DefaultInputs: map[string]interface{}{
			"question_count": 10,
			"difficulty":     "medium",
		},
	},
	{
		Slug:        "certificate-maker",
		Name:        "Certificate Maker",
		Description: "Personalized award certificates for a whole class",
		Category:    entity.ToolCategoryDocuments,
		AccessLevel: entity.PlanTierFree,
		DefaultInputs: map[string]interface{}{
			"template": "classic",
		},
	},
	{
		Slug:        "schedule-builder",
		Name:        "Schedule Builder",
		Description: "Weekly timetable with conflict detection",
		Category:    entity.ToolCategoryPlanning,
		AccessLevel: entity.PlanTierPro,
		DefaultInputs: map[string]interface{}{
			"days":         5,
			"periods":      8,
			"break_length": 15,
		},
	},
	{
		Slug:        "grade-calculator",
		Name:        "Grade Calculator",
		Description: "Weighted grades and class averages",
		Category:    entity.ToolCategoryAnalytics,
		AccessLevel: entity.PlanTierPro,
		DefaultInputs: map[string]interface{}{
			"scale": "percentage",
		},
	},
	{
		Slug:        "performance-analyzer",
		Name:        "Performance Analyzer",
		Description: "Trends and insights across assessments",
		Category:    entity.ToolCategoryAnalytics,
		AccessLevel: entity.PlanTierBusiness,
		DefaultInputs: map[string]interface{}{
			"window": "semester",
		},
	},
}

func init() {
	for i := range tools {
		if tools[i].AccessLevel == "" {
			tools[i].AccessLevel = entity.PlanTierFree
		}
	}
}

// Tools returns the full tool catalog in declaration order.
func Tools() []entity.Tool {
	out := make([]entity.Tool, len(tools))
	copy(out, tools)
	return out
}

// FindTool looks up a tool by slug.
func FindTool(slug string) (entity.Tool, bool) {
	for _, t := range tools {
		if t.Slug == slug {
			return t, true
		}
	}
	return entity.Tool{}, false
}
