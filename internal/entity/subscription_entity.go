package entity

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string
type PaymentStatus string
type BillingPeriod string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusInactive SubscriptionStatus = "inactive"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"

	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"

	BillingPeriodMonthly BillingPeriod = "monthly"
	BillingPeriodYearly  BillingPeriod = "yearly"
)

// UserSubscription records which plan tier a user is on. The plan itself is
// static configuration (see internal/catalog); only the membership is stored.
// A user without an active subscription is treated as free.
type UserSubscription struct {
	Id                    uuid.UUID
	UserId                uuid.UUID
	Tier                  PlanTier
	BillingPeriod         BillingPeriod
	Status                SubscriptionStatus
	PaymentStatus         PaymentStatus
	MidtransTransactionId *string
	CurrentPeriodStart    time.Time
	CurrentPeriodEnd      time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
