package dto

import (
	"time"

	"smart-tools-be/internal/entitlement"

	"github.com/google/uuid"
)

type ProjectResponse struct {
	Id        uuid.UUID              `json:"id"`
	ToolSlug  string                 `json:"tool_slug"`
	Title     string                 `json:"title"`
	Input     map[string]interface{} `json:"input,omitempty"`
	Output    map[string]interface{} `json:"output,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

type ProjectListResponse struct {
	Projects []*ProjectResponse `json:"projects"`
	Total    int64              `json:"total"`
	Capacity UsageLimit         `json:"capacity"`
}

// ExportResult is either rendered file content (Allowed) or the lock payload
// for the paywall overlay. Formats the server does not render natively (pdf,
// word, excel) come back as a JSON descriptor the client-side renderer
// consumes.
type ExportResult struct {
	Allowed     bool                  `json:"allowed"`
	Format      string                `json:"format"`
	FileName    string                `json:"file_name,omitempty"`
	ContentType string                `json:"content_type,omitempty"`
	Content     []byte                `json:"content,omitempty"`
	Lock        *entitlement.LockInfo `json:"lock,omitempty"`
}
