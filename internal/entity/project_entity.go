package entity

import (
	"time"

	"github.com/google/uuid"
)

// SavedProject is the history record of a completed tool run. Counted against
// the plan's MaxSavedProjects; past projects are never gated retroactively.
type SavedProject struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	ToolSlug       string
	Title          string
	InputSnapshot  map[string]interface{}
	OutputSnapshot map[string]interface{}
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
