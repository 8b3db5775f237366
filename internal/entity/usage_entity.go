package entity

// UsageDateLayout is the day key format. The day boundary follows the server's
// local clock; rollover is detected by comparing date strings, not timers.
const UsageDateLayout = "2006-01-02"

// UsageRecord is the single day-keyed counter per user. It is created on the
// first run of a new day and only ever incremented until the next rollover or
// an explicit reset.
type UsageRecord struct {
	Date      string         `json:"date"`
	RunsCount int            `json:"runs_count"`
	ByTool    map[string]int `json:"by_tool,omitempty"`
}
