package service

import (
	"context"
	"sort"

	"smart-tools-be/internal/entity"
	"smart-tools-be/internal/repository/contract"
	"smart-tools-be/internal/repository/specification"
	"smart-tools-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory doubles for the unit of work and its repositories. Specifications
// are interpreted by type switch instead of SQL.

type fakeState struct {
	users         []*entity.User
	subscriptions []*entity.UserSubscription
	projects      []*entity.SavedProject
	analytics     []*entity.AnalyticsEvent
}

type fakeFactory struct {
	state *fakeState
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{state: &fakeState{}}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{state: f.state}
}

type fakeUow struct {
	state *fakeState
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository {
	return &fakeUserRepo{state: u.state}
}

func (u *fakeUow) SubscriptionRepository() contract.SubscriptionRepository {
	return &fakeSubscriptionRepo{state: u.state}
}

func (u *fakeUow) ProjectRepository() contract.ProjectRepository {
	return &fakeProjectRepo{state: u.state}
}

func (u *fakeUow) AnalyticsRepository() contract.AnalyticsRepository {
	return &fakeAnalyticsRepo{state: u.state}
}

type specFilter struct {
	id       *uuid.UUID
	email    *string
	userId   *uuid.UUID
	status   *string
	toolSlug *string
	orderBy  *specification.OrderBy
}

func parseSpecs(specs []specification.Specification) specFilter {
	var f specFilter
	for _, s := range specs {
		switch v := s.(type) {
		case specification.ByID:
			id := v.ID
			f.id = &id
		case specification.ByEmail:
			email := v.Email
			f.email = &email
		case specification.UserOwnedBy:
			userId := v.UserID
			f.userId = &userId
		case specification.ByStatus:
			status := v.Status
			f.status = &status
		case specification.ByToolSlug:
			slug := v.Slug
			f.toolSlug = &slug
		case specification.OrderBy:
			order := v
			f.orderBy = &order
		}
	}
	return f
}

// --- Users ---

type fakeUserRepo struct {
	state *fakeState
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.state.users = append(r.state.users, user)
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	for i, u := range r.state.users {
		if u.Id == user.Id {
			r.state.users[i] = user
		}
	}
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	f := parseSpecs(specs)
	for _, u := range r.state.users {
		if f.id != nil && u.Id != *f.id {
			continue
		}
		if f.email != nil && u.Email != *f.email {
			continue
		}
		return u, nil
	}
	return nil, nil
}

// --- Subscriptions ---

type fakeSubscriptionRepo struct {
	state *fakeState
}

func (r *fakeSubscriptionRepo) Create(ctx context.Context, sub *entity.UserSubscription) error {
	r.state.subscriptions = append(r.state.subscriptions, sub)
	return nil
}

func (r *fakeSubscriptionRepo) Update(ctx context.Context, sub *entity.UserSubscription) error {
	for i, s := range r.state.subscriptions {
		if s.Id == sub.Id {
			r.state.subscriptions[i] = sub
		}
	}
	return nil
}

func (r *fakeSubscriptionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	out := r.state.subscriptions[:0]
	for _, s := range r.state.subscriptions {
		if s.Id != id {
			out = append(out, s)
		}
	}
	r.state.subscriptions = out
	return nil
}

func (r *fakeSubscriptionRepo) matches(f specFilter, s *entity.UserSubscription) bool {
	if f.id != nil && s.Id != *f.id {
		return false
	}
	if f.userId != nil && s.UserId != *f.userId {
		return false
	}
	if f.status != nil && string(s.Status) != *f.status {
		return false
	}
	return true
}

func (r *fakeSubscriptionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserSubscription, error) {
	subs, err := r.FindAll(ctx, specs...)
	if err != nil || len(subs) == 0 {
		return nil, err
	}
	return subs[0], nil
}

func (r *fakeSubscriptionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserSubscription, error) {
	f := parseSpecs(specs)
	var out []*entity.UserSubscription
	for _, s := range r.state.subscriptions {
		if r.matches(f, s) {
			out = append(out, s)
		}
	}
	if f.orderBy != nil && f.orderBy.Field == "created_at" {
		sort.SliceStable(out, func(i, j int) bool {
			if f.orderBy.Desc {
				return out[i].CreatedAt.After(out[j].CreatedAt)
			}
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	}
	return out, nil
}

func (r *fakeSubscriptionRepo) CountActiveSubscribers(ctx context.Context) (int, error) {
	count := 0
	for _, s := range r.state.subscriptions {
		if s.Status == entity.SubscriptionStatusActive {
			count++
		}
	}
	return count, nil
}

// --- Projects ---

type fakeProjectRepo struct {
	state *fakeState
}

func (r *fakeProjectRepo) Create(ctx context.Context, project *entity.SavedProject) error {
	r.state.projects = append(r.state.projects, project)
	return nil
}

func (r *fakeProjectRepo) matches(f specFilter, p *entity.SavedProject) bool {
	if f.id != nil && p.Id != *f.id {
		return false
	}
	if f.userId != nil && p.UserId != *f.userId {
		return false
	}
	if f.toolSlug != nil && p.ToolSlug != *f.toolSlug {
		return false
	}
	return true
}

func (r *fakeProjectRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SavedProject, error) {
	f := parseSpecs(specs)
	for _, p := range r.state.projects {
		if r.matches(f, p) {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProjectRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SavedProject, error) {
	f := parseSpecs(specs)
	var out []*entity.SavedProject
	for _, p := range r.state.projects {
		if r.matches(f, p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (r *fakeProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	out := r.state.projects[:0]
	for _, p := range r.state.projects {
		if p.Id != id {
			out = append(out, p)
		}
	}
	r.state.projects = out
	return nil
}

func (r *fakeProjectRepo) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	out := r.state.projects[:0]
	for _, p := range r.state.projects {
		if p.UserId != userId {
			out = append(out, p)
		}
	}
	r.state.projects = out
	return nil
}

// --- Analytics ---

type fakeAnalyticsRepo struct {
	state *fakeState
}

func (r *fakeAnalyticsRepo) Create(ctx context.Context, event *entity.AnalyticsEvent) error {
	r.state.analytics = append(r.state.analytics, event)
	return nil
}

func (r *fakeAnalyticsRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.state.analytics)), nil
}

// --- Publisher ---

type fakePublisher struct {
	published [][]byte
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	p.published = append(p.published, payload)
	return nil
}
