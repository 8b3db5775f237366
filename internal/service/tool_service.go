package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"smart-tools-be/internal/catalog"
	"smart-tools-be/internal/dto"
	"smart-tools-be/internal/entitlement"
	"smart-tools-be/internal/entity"
	"smart-tools-be/internal/repository/specification"
	"smart-tools-be/internal/repository/unitofwork"
	"smart-tools-be/internal/usage"

	"smart-tools-be/pkg/events"
	pktNats "smart-tools-be/pkg/nats"

	"github.com/google/uuid"
)

type IToolService interface {
	ListTools(ctx context.Context, userId uuid.UUID) ([]*dto.ToolResponse, error)
	RunTool(ctx context.Context, userId uuid.UUID, slug string, req *dto.RunToolRequest) (*dto.RunToolResponse, error)
}

type toolService struct {
	uowFactory       unitofwork.RepositoryFactory
	meter            *usage.Meter
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewToolService(
	uowFactory unitofwork.RepositoryFactory,
	meter *usage.Meter,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) IToolService {
	return &toolService{
		uowFactory:       uowFactory,
		meter:            meter,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

// ListTools returns the full catalog with the caller's entitlement decision
// per tool. Locked tools stay visible; the SPA renders them with an overlay.
func (s *toolService) ListTools(ctx context.Context, userId uuid.UUID) ([]*dto.ToolResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tier := resolveTier(ctx, uow, userId)

	tools := catalog.Tools()
	result := make([]*dto.ToolResponse, 0, len(tools))
	for _, tool := range tools {
		decision := entitlement.CanUseTool(tier, tool)
		item := &dto.ToolResponse{
			Slug:          tool.Slug,
			Name:          tool.Name,
			Description:   tool.Description,
			Category:      string(tool.Category),
			AccessLevel:   string(tool.AccessLevel),
			DefaultInputs: tool.DefaultInputs,
			Entitlement:   decision,
		}
		if !decision.Allowed {
			lock := entitlement.ToolLockInfo(tool, tier)
			item.Lock = &lock
		}
		result = append(result, item)
	}
	return result, nil
}

// RunTool is the metered run path: entitlement gate, then quota gate, then
// record-and-save. Denials come back as statuses, not errors, so the
// controller can map them to 403/429 while the response body still carries
// the overlay payload.
func (s *toolService) RunTool(ctx context.Context, userId uuid.UUID, slug string, req *dto.RunToolRequest) (*dto.RunToolResponse, error) {
	tool, found := catalog.FindTool(slug)
	if !found {
		return nil, errors.New("tool not found")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	tier := resolveTier(ctx, uow, userId)
	plan := catalog.Resolve(tier)

	// 1. Plan gate
	decision := entitlement.CanUseTool(tier, tool)
	if !decision.Allowed {
		lock := entitlement.ToolLockInfo(tool, tier)
		return &dto.RunToolResponse{
			Status:        dto.RunStatusLocked,
			RunsToday:     s.meter.RunsToday(userId),
			RunsRemaining: s.runsRemaining(plan, userId),
			Lock:          &lock,
		}, nil
	}

	// 2. Daily quota gate
	if !s.meter.CanRunNow(plan, userId) {
		s.publishEvent(ctx, events.TypeQuotaExceeded, map[string]interface{}{
			"user_id":   userId.String(),
			"tool_slug": tool.Slug,
			"tier":      string(tier),
			"limit":     plan.MaxRunsPerDay,
		})
		return &dto.RunToolResponse{
			Status:        dto.RunStatusLimitReached,
			RunsToday:     s.meter.RunsToday(userId),
			RunsRemaining: 0,
		}, nil
	}

	// 3. Save the result as a project if there is room. A full project shelf
	// does not block the run itself.
	var projectDTO *dto.ProjectResponse
	saved := false
	if req.Output != nil {
		projectCount, err := uow.ProjectRepository().Count(ctx, specification.UserOwnedBy{UserID: userId})
		if err != nil {
			return nil, err
		}
		if plan.MaxSavedProjects == entity.LimitUnlimited || int(projectCount) < plan.MaxSavedProjects {
			title := req.Title
			if title == "" {
				title = tool.Name + " " + time.Now().Format("2006-01-02 15:04")
			}
			project := &entity.SavedProject{
				Id:             uuid.New(),
				UserId:         userId,
				ToolSlug:       tool.Slug,
				Title:          title,
				InputSnapshot:  req.Input,
				OutputSnapshot: req.Output,
				CreatedAt:      time.Now(),
				UpdatedAt:      time.Now(),
			}
			if err := uow.ProjectRepository().Create(ctx, project); err != nil {
				return nil, err
			}
			saved = true
			projectDTO = &dto.ProjectResponse{
				Id:        project.Id,
				ToolSlug:  project.ToolSlug,
				Title:     project.Title,
				CreatedAt: project.CreatedAt,
			}
		}
	}

	// 4. Count the run only after it succeeded end to end.
	s.meter.RecordRun(userId, tool.Slug)
	runsToday := s.meter.RunsToday(userId)

	// 5. Notify the analytics consumer. Best effort; the run already
	// happened.
	msg := dto.ToolRunMessage{
		UserId:     userId,
		ToolSlug:   tool.Slug,
		RunsToday:  runsToday,
		OccurredAt: time.Now(),
	}
	if projectDTO != nil {
		msg.ProjectId = &projectDTO.Id
	}
	if payload, err := json.Marshal(msg); err == nil {
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			log.Printf("[WARN] Failed to publish tool run message: %v", err)
		}
	}

	s.publishEvent(ctx, events.TypeToolRunCompleted, map[string]interface{}{
		"user_id":   userId.String(),
		"tool_slug": tool.Slug,
		"saved":     saved,
	})

	return &dto.RunToolResponse{
		Status:        dto.RunStatusCompleted,
		RunsToday:     runsToday,
		RunsRemaining: s.runsRemaining(plan, userId),
		Saved:         saved,
		Project:       projectDTO,
	}, nil
}

func (s *toolService) runsRemaining(plan entity.Plan, userId uuid.UUID) int {
	if plan.MaxRunsPerDay == entity.LimitUnlimited {
		return entity.LimitUnlimited
	}
	remaining := plan.MaxRunsPerDay - s.meter.RunsToday(userId)
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

func (s *toolService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events.New(eventType, data)); err != nil {
		log.Printf("[WARN] Failed to publish %s event: %v", eventType, err)
	}
}
