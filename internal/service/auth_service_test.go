package service

import (
	"context"
	"testing"

	"smart-tools-be/internal/dto"
	"smart-tools-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestRegisterCreatesFreeSubscription(t *testing.T) {
	f := newFakeFactory()
	svc := NewAuthService(f, 72)

	res, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "teacher@example.com",
		Password: "password123",
		FullName: "Test Teacher",
	})
	assert.NoError(t, err)
	assert.Equal(t, "teacher@example.com", res.Email)

	assert.Len(t, f.state.users, 1)
	assert.Len(t, f.state.subscriptions, 1)
	sub := f.state.subscriptions[0]
	assert.Equal(t, entity.PlanTierFree, sub.Tier)
	assert.Equal(t, entity.SubscriptionStatusActive, sub.Status)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	f := newFakeFactory()
	svc := NewAuthService(f, 72)
	req := &dto.RegisterRequest{
		Email:    "teacher@example.com",
		Password: "password123",
		FullName: "Test Teacher",
	}

	_, err := svc.Register(context.Background(), req)
	assert.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.Error(t, err)
	assert.Len(t, f.state.users, 1)
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	f := newFakeFactory()
	svc := NewAuthService(f, 72)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "teacher@example.com",
		Password: "password123",
		FullName: "Test Teacher",
	})
	assert.NoError(t, err)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "teacher@example.com",
		Password: "password123",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, "free", res.User.Tier)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "teacher@example.com",
		Password: "wrong",
	})
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.Error(t, err)
}

func TestLoginReflectsSubscribedTier(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	f := newFakeFactory()
	svc := NewAuthService(f, 72)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "pro@example.com",
		Password: "password123",
		FullName: "Pro Teacher",
	})
	assert.NoError(t, err)
	subscribe(f, f.state.users[0].Id, entity.PlanTierPro)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "pro@example.com",
		Password: "password123",
	})
	assert.NoError(t, err)
	assert.Equal(t, "pro", res.User.Tier)
}
