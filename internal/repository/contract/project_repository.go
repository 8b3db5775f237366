package contract

import (
	"context"

	"smart-tools-be/internal/entity"
	"smart-tools-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *entity.SavedProject) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SavedProject, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SavedProject, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error
}
