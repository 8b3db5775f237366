package contract

import (
	"context"

	"smart-tools-be/internal/entity"
	"smart-tools-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *entity.UserSubscription) error
	Update(ctx context.Context, subscription *entity.UserSubscription) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserSubscription, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserSubscription, error)
	CountActiveSubscribers(ctx context.Context) (int, error)
}
