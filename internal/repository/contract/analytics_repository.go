package contract

import (
	"context"

	"smart-tools-be/internal/entity"
	"smart-tools-be/internal/repository/specification"
)

type AnalyticsRepository interface {
	Create(ctx context.Context, event *entity.AnalyticsEvent) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
