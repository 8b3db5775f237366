// Package usage counts tool runs per calendar day against the plan's daily
// limit. State is one JSON blob per user in an injected key-value store; the
// day boundary is the server's local date, detected lazily on the next access
// rather than by a timer.
package usage

import (
	"encoding/json"
	"time"

	"smart-tools-be/internal/entity"

	"github.com/google/uuid"
)

// Store is the persistence collaborator. Writes may silently fail and reads
// may come back empty; the meter degrades to a fresh state in both cases so
// metering failures never block a tool run.
type Store interface {
	Get(key string) (string, bool)
	Set(key string, value string)
	Delete(key string)
}

// Versioned key namespace; bump the version if the record shape changes.
const usageKeyPrefix = "smarttools:v1:usage:"

type Meter struct {
	store Store
	now   func() time.Time
}

func NewMeter(store Store) *Meter {
	return &Meter{
		store: store,
		now:   time.Now,
	}
}

// WithClock overrides the meter's clock. Used by tests to simulate day
// rollover; production code keeps the default time.Now.
func (m *Meter) WithClock(now func() time.Time) *Meter {
	m.now = now
	return m
}

func (m *Meter) key(userId uuid.UUID) string {
	return usageKeyPrefix + userId.String()
}

func (m *Meter) today() string {
	return m.now().Format(entity.UsageDateLayout)
}

// recordToday loads the stored record, treating a missing key, corrupt blob,
// or a record dated any other day as no record at all. Re-reading on the same
// day is stable, so the implicit rollover is idempotent.
func (m *Meter) recordToday(userId uuid.UUID) entity.UsageRecord {
	fresh := entity.UsageRecord{Date: m.today()}
	raw, ok := m.store.Get(m.key(userId))
	if !ok {
		return fresh
	}
	var rec entity.UsageRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return fresh
	}
	if rec.Date != fresh.Date {
		return fresh
	}
	return rec
}

// RunsToday returns the number of runs recorded today, 0 for a fresh day or
// an unavailable store.
func (m *Meter) RunsToday(userId uuid.UUID) int {
	return m.recordToday(userId).RunsCount
}

// BreakdownToday returns today's per-tool run counts.
func (m *Meter) BreakdownToday(userId uuid.UUID) map[string]int {
	return m.recordToday(userId).ByTool
}

// CanRunNow is the pre-flight quota check. Callers must check before running
// and only call RecordRun after a confirmed successful run; the two are not
// atomic, which is accepted for the single-writer-per-user case.
func (m *Meter) CanRunNow(plan entity.Plan, userId uuid.UUID) bool {
	if plan.MaxRunsPerDay == entity.LimitUnlimited {
		return true
	}
	return m.RunsToday(userId) < plan.MaxRunsPerDay
}

// RecordRun increments today's counter. Called only after a tool run produced
// a result, so failed runs never consume quota. A store write failure is
// swallowed; undercounting is acceptable, blocking the user is not.
func (m *Meter) RecordRun(userId uuid.UUID, toolSlug string) {
	rec := m.recordToday(userId)
	rec.RunsCount++
	if toolSlug != "" {
		if rec.ByTool == nil {
			rec.ByTool = make(map[string]int)
		}
		rec.ByTool[toolSlug]++
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return
	}
	m.store.Set(m.key(userId), string(raw))
}

// ResetToday zeroes the counter for the current day. Only reachable from the
// explicit clear-data path, never from the quota check.
func (m *Meter) ResetToday(userId uuid.UUID) {
	m.store.Delete(m.key(userId))
}

// ResetsAt returns the next local midnight, for quota countdowns in the UI.
func (m *Meter) ResetsAt() time.Time {
	now := m.now()
	return time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
}
