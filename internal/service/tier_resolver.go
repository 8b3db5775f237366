package service

import (
	"context"

	"smart-tools-be/internal/entity"
	"smart-tools-be/internal/repository/specification"
	"smart-tools-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// resolveTier returns the tier of the user's active subscription. No row, an
// inactive row, or a lookup error all resolve to free; billing hiccups must
// never escalate into a blocked account.
func resolveTier(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) entity.PlanTier {
	sub, err := uow.SubscriptionRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByStatus{Status: string(entity.SubscriptionStatusActive)},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil || sub == nil {
		return entity.PlanTierFree
	}
	return sub.Tier
}
