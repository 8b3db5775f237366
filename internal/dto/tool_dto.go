package dto

import "smart-tools-be/internal/entitlement"

// ToolResponse is one catalog entry with the caller's entitlement decision
// attached, so list views can render lock overlays without extra round trips.
type ToolResponse struct {
	Slug          string                 `json:"slug"`
	Name          string                 `json:"name"`
	Description   string                 `json:"description"`
	Category      string                 `json:"category"`
	AccessLevel   string                 `json:"access_level"`
	DefaultInputs map[string]interface{} `json:"default_inputs,omitempty"`
	Entitlement   entitlement.Decision   `json:"entitlement"`
	Lock          *entitlement.LockInfo  `json:"lock,omitempty"`
}

// RunToolRequest carries the client-side run result to be metered and saved.
// The calculators themselves run in the SPA; the server enforces plan gating
// and quota and keeps the history.
type RunToolRequest struct {
	Title  string                 `json:"title"`
	Input  map[string]interface{} `json:"input"`
	Output map[string]interface{} `json:"output"`
}

const (
	RunStatusCompleted    = "completed"
	RunStatusLocked       = "locked"
	RunStatusLimitReached = "limit_reached"
)

// RunToolResponse reports the outcome of a run attempt. Denials are normal
// outcomes, not errors: Status tells the caller which branch to render.
type RunToolResponse struct {
	Status        string                `json:"status"`
	RunsToday     int                   `json:"runs_today"`
	RunsRemaining int                   `json:"runs_remaining"` // -1 = unlimited
	Saved         bool                  `json:"saved"`
	Project       *ProjectResponse      `json:"project,omitempty"`
	Lock          *entitlement.LockInfo `json:"lock,omitempty"`
}
