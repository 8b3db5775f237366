package entity

// PlanTier is the closed set of plan identifiers, ordered by capability.
type PlanTier string

const (
	PlanTierFree       PlanTier = "free"
	PlanTierPro        PlanTier = "pro"
	PlanTierBusiness   PlanTier = "business"
	PlanTierEnterprise PlanTier = "enterprise"
)

// ExportFormat identifies a downloadable output format.
type ExportFormat string

const (
	ExportFormatTxt   ExportFormat = "txt"
	ExportFormatPdf   ExportFormat = "pdf"
	ExportFormatWord  ExportFormat = "word"
	ExportFormatExcel ExportFormat = "excel"
	ExportFormatJSON  ExportFormat = "json"
)

// LimitUnlimited is the sentinel for limits without a cap.
const LimitUnlimited = -1

type Plan struct {
	Tier         PlanTier
	Name         string
	Tagline      string
	MonthlyPrice float64
	YearlyPrice  float64
	// Daily Usage Limits (reset lazily on calendar-day change)
	MaxRunsPerDay int // -1 = unlimited
	// Storage Limits (cumulative)
	MaxSavedProjects int // -1 = unlimited
	StorageQuotaMB   int // -1 = unlimited
	// Capabilities
	AllowedExportFormats []ExportFormat
	// Display Settings
	Features      []string // Bullet list for the pricing modal
	IsMostPopular bool
	SortOrder     int
}

// AllowsExport reports whether format is in the plan's allowed set.
func (p Plan) AllowsExport(format ExportFormat) bool {
	for _, f := range p.AllowedExportFormats {
		if f == format {
			return true
		}
	}
	return false
}
