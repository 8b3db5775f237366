package entity

import (
	"time"

	"github.com/google/uuid"
)

// AnalyticsEvent is an append-only usage event row, written by the in-process
// consumer that drains the tool-run topic.
type AnalyticsEvent struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	Type       string
	ToolSlug   *string
	Payload    map[string]interface{}
	OccurredAt time.Time
}
