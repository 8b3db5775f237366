package dto

import (
	"time"

	"github.com/google/uuid"
)

type CheckoutRequest struct {
	Tier          string `json:"tier" validate:"required,oneof=pro business enterprise"`
	BillingPeriod string `json:"billing_period" validate:"required,oneof=monthly yearly"`
	FirstName     string `json:"first_name" validate:"required"`
	LastName      string `json:"last_name"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
	Country       string `json:"country"`
}

type CheckoutResponse struct {
	OrderId     uuid.UUID `json:"order_id"`
	SnapToken   string    `json:"snap_token"`
	RedirectURL string    `json:"redirect_url"`
}

// MidtransWebhookRequest is the payment notification payload.
type MidtransWebhookRequest struct {
	OrderId           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}

type SubscriptionStatusResponse struct {
	Tier             string     `json:"tier"`
	Status           string     `json:"status"`
	PaymentStatus    string     `json:"payment_status"`
	BillingPeriod    string     `json:"billing_period,omitempty"`
	CurrentPeriodEnd *time.Time `json:"current_period_end,omitempty"`
	Active           bool       `json:"active"`
}
