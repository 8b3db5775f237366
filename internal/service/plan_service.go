// Service for the public pricing catalog and per-user usage limit status.
package service

import (
	"context"

	"smart-tools-be/internal/catalog"
	"smart-tools-be/internal/dto"
	"smart-tools-be/internal/entity"
	"smart-tools-be/internal/repository/specification"
	"smart-tools-be/internal/repository/unitofwork"
	"smart-tools-be/internal/usage"

	"github.com/google/uuid"
)

type PlanService interface {
	// Public
	GetAllPlans(ctx context.Context) ([]*dto.PlanResponse, error)

	// User
	GetUserUsageStatus(ctx context.Context, userId uuid.UUID) (*dto.UsageStatusResponse, error)
}

type planService struct {
	uowFactory unitofwork.RepositoryFactory
	meter      *usage.Meter
}

func NewPlanService(uowFactory unitofwork.RepositoryFactory, meter *usage.Meter) PlanService {
	return &planService{
		uowFactory: uowFactory,
		meter:      meter,
	}
}

// GetAllPlans returns all pricing cards in display order. The catalog is
// static, so no storage round trip happens here.
func (s *planService) GetAllPlans(ctx context.Context) ([]*dto.PlanResponse, error) {
	plans := catalog.Plans()
	result := make([]*dto.PlanResponse, 0, len(plans))
	for _, plan := range plans {
		formats := make([]string, 0, len(plan.AllowedExportFormats))
		for _, f := range plan.AllowedExportFormats {
			formats = append(formats, string(f))
		}
		result = append(result, &dto.PlanResponse{
			Tier:                 string(plan.Tier),
			Name:                 plan.Name,
			Tagline:              plan.Tagline,
			MonthlyPrice:         plan.MonthlyPrice,
			YearlyPrice:          plan.YearlyPrice,
			YearlySavingsPercent: catalog.YearlySavingsPercent(plan.Tier),
			Limits: dto.PlanLimitsDTO{
				MaxRunsPerDay:    plan.MaxRunsPerDay,
				MaxSavedProjects: plan.MaxSavedProjects,
				StorageQuotaMB:   plan.StorageQuotaMB,
			},
			ExportFormats: formats,
			Features:      plan.Features,
			IsMostPopular: plan.IsMostPopular,
		})
	}
	return result, nil
}

// GetUserUsageStatus returns current usage vs limits for a user.
func (s *planService) GetUserUsageStatus(ctx context.Context, userId uuid.UUID) (*dto.UsageStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan := catalog.Resolve(resolveTier(ctx, uow, userId))

	projectCount, err := uow.ProjectRepository().Count(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	runsToday := s.meter.RunsToday(userId)
	resetsAt := s.meter.ResetsAt()

	return &dto.UsageStatusResponse{
		Plan: dto.PlanInfo{
			Tier: string(plan.Tier),
			Name: plan.Name,
		},
		Daily: dto.DailyLimits{
			Runs: dto.UsageLimit{
				Used:     runsToday,
				Limit:    plan.MaxRunsPerDay,
				CanUse:   plan.MaxRunsPerDay == entity.LimitUnlimited || runsToday < plan.MaxRunsPerDay,
				ResetsAt: &resetsAt,
			},
			ByTool: s.meter.BreakdownToday(userId),
		},
		Storage: dto.StorageLimits{
			Projects: dto.UsageLimit{
				Used:   int(projectCount),
				Limit:  plan.MaxSavedProjects,
				CanUse: plan.MaxSavedProjects == entity.LimitUnlimited || int(projectCount) < plan.MaxSavedProjects,
			},
			StorageQuotaMB: plan.StorageQuotaMB,
		},
		UpgradeAvailable: plan.Tier != entity.PlanTierEnterprise,
	}, nil
}
