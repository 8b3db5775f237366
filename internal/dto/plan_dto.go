package dto

// PlanResponse is one pricing card, returned by GET /api/plans (public).
type PlanResponse struct {
	Tier                 string        `json:"tier"`
	Name                 string        `json:"name"`
	Tagline              string        `json:"tagline"`
	MonthlyPrice         float64       `json:"monthly_price"`
	YearlyPrice          float64       `json:"yearly_price"`
	YearlySavingsPercent int           `json:"yearly_savings_percent"`
	Limits               PlanLimitsDTO `json:"limits"`
	ExportFormats        []string      `json:"export_formats"`
	Features             []string      `json:"features"`
	IsMostPopular        bool          `json:"is_most_popular"`
}

// PlanLimitsDTO mirrors the plan's numeric limits; -1 = unlimited.
type PlanLimitsDTO struct {
	MaxRunsPerDay    int `json:"max_runs_per_day"`
	MaxSavedProjects int `json:"max_saved_projects"`
	StorageQuotaMB   int `json:"storage_quota_mb"`
}

type PlanInfo struct {
	Tier string `json:"tier"`
	Name string `json:"name"`
}
