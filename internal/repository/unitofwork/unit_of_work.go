package unitofwork

import (
	"context"

	"smart-tools-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	SubscriptionRepository() contract.SubscriptionRepository
	ProjectRepository() contract.ProjectRepository
	AnalyticsRepository() contract.AnalyticsRepository
}
