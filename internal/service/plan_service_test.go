package service

import (
	"context"
	"testing"

	"smart-tools-be/internal/entity"
	"smart-tools-be/internal/repository/memory"
	"smart-tools-be/internal/usage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newPlanServiceForTest(f *fakeFactory) (PlanService, *usage.Meter) {
	meter := usage.NewMeter(memory.NewKVStore())
	return NewPlanService(f, meter), meter
}

func TestGetAllPlans(t *testing.T) {
	f := newFakeFactory()
	svc, _ := newPlanServiceForTest(f)

	plans, err := svc.GetAllPlans(context.Background())
	assert.NoError(t, err)
	assert.Len(t, plans, 4)

	assert.Equal(t, "free", plans[0].Tier)
	assert.Equal(t, "enterprise", plans[3].Tier)
	assert.Equal(t, 20, plans[1].YearlySavingsPercent)
	assert.Equal(t, 0, plans[0].YearlySavingsPercent)
	assert.True(t, plans[1].IsMostPopular)
	assert.Equal(t, entity.LimitUnlimited, plans[3].Limits.MaxRunsPerDay)
}

func TestGetUserUsageStatusFreeTier(t *testing.T) {
	f := newFakeFactory()
	svc, meter := newPlanServiceForTest(f)
	userId := uuid.New()

	meter.RecordRun(userId, "quiz-generator")
	meter.RecordRun(userId, "certificate-maker")
	seedProject(f, userId, "saved one")

	status, err := svc.GetUserUsageStatus(context.Background(), userId)
	assert.NoError(t, err)

	assert.Equal(t, "free", status.Plan.Tier)
	assert.Equal(t, 2, status.Daily.Runs.Used)
	assert.Equal(t, 10, status.Daily.Runs.Limit)
	assert.True(t, status.Daily.Runs.CanUse)
	assert.NotNil(t, status.Daily.Runs.ResetsAt)
	assert.Equal(t, 1, status.Daily.ByTool["quiz-generator"])

	assert.Equal(t, 1, status.Storage.Projects.Used)
	assert.Equal(t, 3, status.Storage.Projects.Limit)
	assert.True(t, status.UpgradeAvailable)
}

func TestGetUserUsageStatusAtCap(t *testing.T) {
	f := newFakeFactory()
	svc, meter := newPlanServiceForTest(f)
	userId := uuid.New()

	for i := 0; i < 10; i++ {
		meter.RecordRun(userId, "quiz-generator")
	}

	status, err := svc.GetUserUsageStatus(context.Background(), userId)
	assert.NoError(t, err)
	assert.False(t, status.Daily.Runs.CanUse)
}

func TestGetUserUsageStatusEnterprise(t *testing.T) {
	f := newFakeFactory()
	svc, _ := newPlanServiceForTest(f)
	userId := uuid.New()
	subscribe(f, userId, entity.PlanTierEnterprise)

	status, err := svc.GetUserUsageStatus(context.Background(), userId)
	assert.NoError(t, err)
	assert.Equal(t, "enterprise", status.Plan.Tier)
	assert.Equal(t, entity.LimitUnlimited, status.Daily.Runs.Limit)
	assert.True(t, status.Daily.Runs.CanUse)
	assert.False(t, status.UpgradeAvailable)
}
