package dto

import "time"

// UsageLimit represents a single limit status; -1 = unlimited.
type UsageLimit struct {
	Used     int        `json:"used"`
	Limit    int        `json:"limit"`
	CanUse   bool       `json:"can_use"`
	ResetsAt *time.Time `json:"resets_at,omitempty"` // daily limits only
}

// DailyLimits for usage that resets on calendar-day rollover.
type DailyLimits struct {
	Runs   UsageLimit     `json:"runs"`
	ByTool map[string]int `json:"by_tool,omitempty"`
}

// StorageLimits for cumulative resources.
type StorageLimits struct {
	Projects       UsageLimit `json:"projects"`
	StorageQuotaMB int        `json:"storage_quota_mb"`
}

// UsageStatusResponse is returned by GET /api/user/usage-status.
type UsageStatusResponse struct {
	Plan             PlanInfo      `json:"plan"`
	Daily            DailyLimits   `json:"daily"`
	Storage          StorageLimits `json:"storage"`
	UpgradeAvailable bool          `json:"upgrade_available"`
}
