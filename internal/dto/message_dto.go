package dto

import (
	"time"

	"github.com/google/uuid"
)

// ToolRunMessage is the in-process topic payload emitted after every
// completed run and drained by the analytics consumer.
type ToolRunMessage struct {
	UserId     uuid.UUID  `json:"user_id"`
	ToolSlug   string     `json:"tool_slug"`
	ProjectId  *uuid.UUID `json:"project_id,omitempty"`
	RunsToday  int        `json:"runs_today"`
	OccurredAt time.Time  `json:"occurred_at"`
}
