package service

import (
	"context"
	"crypto/sha512"
	"fmt"
	"testing"
	"time"

	"smart-tools-be/internal/dto"
	"smart-tools-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func signWebhook(req *dto.MidtransWebhookRequest, serverKey string) {
	input := req.OrderId + req.StatusCode + req.GrossAmount + serverKey
	req.SignatureKey = fmt.Sprintf("%x", sha512.Sum512([]byte(input)))
}

func pendingSubscription(f *fakeFactory, tier entity.PlanTier) *entity.UserSubscription {
	sub := &entity.UserSubscription{
		Id:                 uuid.New(),
		UserId:             uuid.New(),
		Tier:               tier,
		BillingPeriod:      entity.BillingPeriodMonthly,
		Status:             entity.SubscriptionStatusInactive,
		PaymentStatus:      entity.PaymentStatusPending,
		CurrentPeriodStart: time.Now(),
		CurrentPeriodEnd:   time.Now().AddDate(0, 1, 0),
		CreatedAt:          time.Now(),
	}
	f.state.subscriptions = append(f.state.subscriptions, sub)
	return sub
}

func TestHandleNotificationActivatesOnSettlement(t *testing.T) {
	t.Setenv("MIDTRANS_SERVER_KEY", "test-server-key")

	f := newFakeFactory()
	svc := NewPaymentService(f, nil)
	sub := pendingSubscription(f, entity.PlanTierPro)

	req := &dto.MidtransWebhookRequest{
		OrderId:           sub.Id.String(),
		StatusCode:        "200",
		GrossAmount:       "999.00",
		TransactionStatus: "settlement",
	}
	signWebhook(req, "test-server-key")

	assert.NoError(t, svc.HandleNotification(context.Background(), req))
	assert.Equal(t, entity.SubscriptionStatusActive, f.state.subscriptions[0].Status)
	assert.Equal(t, entity.PaymentStatusPaid, f.state.subscriptions[0].PaymentStatus)
}

func TestHandleNotificationRejectsBadSignature(t *testing.T) {
	t.Setenv("MIDTRANS_SERVER_KEY", "test-server-key")

	f := newFakeFactory()
	svc := NewPaymentService(f, nil)
	sub := pendingSubscription(f, entity.PlanTierPro)

	req := &dto.MidtransWebhookRequest{
		OrderId:           sub.Id.String(),
		StatusCode:        "200",
		GrossAmount:       "999.00",
		TransactionStatus: "settlement",
		SignatureKey:      "forged",
	}

	assert.Error(t, svc.HandleNotification(context.Background(), req))
	assert.Equal(t, entity.SubscriptionStatusInactive, f.state.subscriptions[0].Status)
}

func TestHandleNotificationDeactivatesOnFailure(t *testing.T) {
	t.Setenv("MIDTRANS_SERVER_KEY", "test-server-key")

	f := newFakeFactory()
	svc := NewPaymentService(f, nil)
	sub := pendingSubscription(f, entity.PlanTierBusiness)

	req := &dto.MidtransWebhookRequest{
		OrderId:           sub.Id.String(),
		StatusCode:        "202",
		GrossAmount:       "999.00",
		TransactionStatus: "expire",
	}
	signWebhook(req, "test-server-key")

	assert.NoError(t, svc.HandleNotification(context.Background(), req))
	assert.Equal(t, entity.SubscriptionStatusInactive, f.state.subscriptions[0].Status)
	assert.Equal(t, entity.PaymentStatusFailed, f.state.subscriptions[0].PaymentStatus)
}

func TestHandleNotificationIgnoresPending(t *testing.T) {
	t.Setenv("MIDTRANS_SERVER_KEY", "test-server-key")

	f := newFakeFactory()
	svc := NewPaymentService(f, nil)
	sub := pendingSubscription(f, entity.PlanTierPro)

	req := &dto.MidtransWebhookRequest{
		OrderId:           sub.Id.String(),
		StatusCode:        "201",
		GrossAmount:       "999.00",
		TransactionStatus: "pending",
	}
	signWebhook(req, "test-server-key")

	assert.NoError(t, svc.HandleNotification(context.Background(), req))
	assert.Equal(t, entity.PaymentStatusPending, f.state.subscriptions[0].PaymentStatus)
}

func TestGetSubscriptionStatusFallsBackToFree(t *testing.T) {
	f := newFakeFactory()
	svc := NewPaymentService(f, nil)

	status, err := svc.GetSubscriptionStatus(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Equal(t, "free", status.Tier)
	assert.False(t, status.Active)
}

func TestCancelSubscription(t *testing.T) {
	f := newFakeFactory()
	svc := NewPaymentService(f, nil)
	userId := uuid.New()
	subscribe(f, userId, entity.PlanTierPro)

	assert.NoError(t, svc.CancelSubscription(context.Background(), userId))
	assert.Equal(t, entity.SubscriptionStatusCanceled, f.state.subscriptions[0].Status)

	// Second cancel has nothing left to cancel.
	assert.Error(t, svc.CancelSubscription(context.Background(), userId))
}

func TestCancelSubscriptionSkipsFreeRow(t *testing.T) {
	f := newFakeFactory()
	svc := NewPaymentService(f, nil)
	userId := uuid.New()
	subscribe(f, userId, entity.PlanTierFree)

	assert.Error(t, svc.CancelSubscription(context.Background(), userId))
	assert.Equal(t, entity.SubscriptionStatusActive, f.state.subscriptions[0].Status)
}
