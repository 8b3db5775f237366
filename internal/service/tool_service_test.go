package service

import (
	"context"
	"testing"
	"time"

	"smart-tools-be/internal/catalog"
	"smart-tools-be/internal/dto"
	"smart-tools-be/internal/entity"
	"smart-tools-be/internal/repository/memory"
	"smart-tools-be/internal/usage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func subscribe(f *fakeFactory, userId uuid.UUID, tier entity.PlanTier) {
	f.state.subscriptions = append(f.state.subscriptions, &entity.UserSubscription{
		Id:                 uuid.New(),
		UserId:             userId,
		Tier:               tier,
		Status:             entity.SubscriptionStatusActive,
		PaymentStatus:      entity.PaymentStatusPaid,
		CurrentPeriodStart: time.Now(),
		CurrentPeriodEnd:   time.Now().AddDate(1, 0, 0),
		CreatedAt:          time.Now(),
	})
}

func newToolServiceForTest(f *fakeFactory) (IToolService, *usage.Meter, *fakePublisher) {
	meter := usage.NewMeter(memory.NewKVStore())
	pub := &fakePublisher{}
	return NewToolService(f, meter, pub, nil), meter, pub
}

func TestListToolsMarksLockedTools(t *testing.T) {
	f := newFakeFactory()
	svc, _, _ := newToolServiceForTest(f)
	userId := uuid.New() // no subscription row, resolves to free

	tools, err := svc.ListTools(context.Background(), userId)
	assert.NoError(t, err)
	assert.Len(t, tools, len(catalog.Tools()))

	for _, tool := range tools {
		if tool.Entitlement.Allowed {
			assert.Nil(t, tool.Lock, "allowed tool %s must not carry a lock", tool.Slug)
		} else {
			assert.NotNil(t, tool.Lock, "locked tool %s must carry a lock", tool.Slug)
		}
	}

	bySlug := map[string]*dto.ToolResponse{}
	for _, tool := range tools {
		bySlug[tool.Slug] = tool
	}
	assert.True(t, bySlug["quiz-generator"].Entitlement.Allowed)
	assert.False(t, bySlug["schedule-builder"].Entitlement.Allowed)
	assert.False(t, bySlug["performance-analyzer"].Entitlement.Allowed)
}

func TestRunToolCompletedSavesProject(t *testing.T) {
	f := newFakeFactory()
	svc, meter, pub := newToolServiceForTest(f)
	userId := uuid.New()

	res, err := svc.RunTool(context.Background(), userId, "quiz-generator", &dto.RunToolRequest{
		Title:  "Algebra quiz",
		Input:  map[string]interface{}{"topic": "algebra"},
		Output: map[string]interface{}{"questions": 10},
	})
	assert.NoError(t, err)
	assert.Equal(t, dto.RunStatusCompleted, res.Status)
	assert.Equal(t, 1, res.RunsToday)
	assert.Equal(t, 9, res.RunsRemaining)
	assert.True(t, res.Saved)
	assert.NotNil(t, res.Project)
	assert.Equal(t, "Algebra quiz", res.Project.Title)

	assert.Len(t, f.state.projects, 1)
	assert.Equal(t, 1, meter.RunsToday(userId))
	assert.Len(t, pub.published, 1, "completed run must emit one analytics message")
}

func TestRunToolLockedForInsufficientTier(t *testing.T) {
	f := newFakeFactory()
	svc, meter, pub := newToolServiceForTest(f)
	userId := uuid.New()
	subscribe(f, userId, entity.PlanTierPro)

	res, err := svc.RunTool(context.Background(), userId, "performance-analyzer", &dto.RunToolRequest{
		Output: map[string]interface{}{"trend": "up"},
	})
	assert.NoError(t, err, "a gated tool is a result, not an error")
	assert.Equal(t, dto.RunStatusLocked, res.Status)
	assert.NotNil(t, res.Lock)
	assert.Equal(t, "Business", res.Lock.RequiredPlanName)

	// A locked run consumes nothing and saves nothing.
	assert.Equal(t, 0, meter.RunsToday(userId))
	assert.Empty(t, f.state.projects)
	assert.Empty(t, pub.published)
}

func TestRunToolLimitReached(t *testing.T) {
	f := newFakeFactory()
	svc, meter, _ := newToolServiceForTest(f)
	userId := uuid.New()

	free := catalog.Resolve(entity.PlanTierFree)
	for i := 0; i < free.MaxRunsPerDay; i++ {
		meter.RecordRun(userId, "quiz-generator")
	}

	res, err := svc.RunTool(context.Background(), userId, "quiz-generator", &dto.RunToolRequest{
		Output: map[string]interface{}{},
	})
	assert.NoError(t, err)
	assert.Equal(t, dto.RunStatusLimitReached, res.Status)
	assert.Equal(t, 0, res.RunsRemaining)
	assert.Equal(t, free.MaxRunsPerDay, meter.RunsToday(userId), "a denied run must not increment the counter")
}

func TestRunToolFullShelfStillRuns(t *testing.T) {
	f := newFakeFactory()
	svc, meter, _ := newToolServiceForTest(f)
	userId := uuid.New()

	free := catalog.Resolve(entity.PlanTierFree)
	for i := 0; i < free.MaxSavedProjects; i++ {
		f.state.projects = append(f.state.projects, &entity.SavedProject{
			Id:       uuid.New(),
			UserId:   userId,
			ToolSlug: "quiz-generator",
		})
	}

	res, err := svc.RunTool(context.Background(), userId, "quiz-generator", &dto.RunToolRequest{
		Output: map[string]interface{}{"questions": 5},
	})
	assert.NoError(t, err)
	assert.Equal(t, dto.RunStatusCompleted, res.Status)
	assert.False(t, res.Saved, "full project shelf must not block the run")
	assert.Nil(t, res.Project)
	assert.Len(t, f.state.projects, free.MaxSavedProjects)
	assert.Equal(t, 1, meter.RunsToday(userId), "the run still counts")
}

func TestRunToolUnknownSlug(t *testing.T) {
	f := newFakeFactory()
	svc, _, _ := newToolServiceForTest(f)

	_, err := svc.RunTool(context.Background(), uuid.New(), "nope", &dto.RunToolRequest{})
	assert.Error(t, err)
}

func TestRunToolEnterpriseNeverLimited(t *testing.T) {
	f := newFakeFactory()
	svc, meter, _ := newToolServiceForTest(f)
	userId := uuid.New()
	subscribe(f, userId, entity.PlanTierEnterprise)

	for i := 0; i < 600; i++ {
		meter.RecordRun(userId, "performance-analyzer")
	}

	res, err := svc.RunTool(context.Background(), userId, "performance-analyzer", &dto.RunToolRequest{
		Output: map[string]interface{}{},
	})
	assert.NoError(t, err)
	assert.Equal(t, dto.RunStatusCompleted, res.Status)
	assert.Equal(t, entity.LimitUnlimited, res.RunsRemaining)
}
