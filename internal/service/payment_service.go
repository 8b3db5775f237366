package service

import (
	"context"
	"crypto/sha512"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"smart-tools-be/internal/catalog"
	"smart-tools-be/internal/dto"
	"smart-tools-be/internal/entity"
	"smart-tools-be/internal/repository/specification"
	"smart-tools-be/internal/repository/unitofwork"

	"smart-tools-be/pkg/events"
	pktNats "smart-tools-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type IPaymentService interface {
	CreateCheckout(ctx context.Context, userId uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error
	GetSubscriptionStatus(ctx context.Context, userId uuid.UUID) (*dto.SubscriptionStatusResponse, error)
	CancelSubscription(ctx context.Context, userId uuid.UUID) error
}

type paymentService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewPaymentService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) IPaymentService {
	return &paymentService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

// CreateCheckout opens a pending subscription for the requested tier and
// returns the Snap token. Activation happens in HandleNotification; until
// then the user keeps their current tier.
func (s *paymentService) CreateCheckout(ctx context.Context, userId uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	tier := entity.PlanTier(req.Tier)
	plan := catalog.Resolve(tier)
	if plan.Tier != tier {
		return nil, errors.New("unknown plan tier")
	}
	if plan.MonthlyPrice == 0 {
		return nil, errors.New("free plan requires no checkout")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	currentTier := resolveTier(ctx, uow, userId)
	if catalog.CompareTiers(currentTier, tier) >= 0 {
		return nil, errors.New("already subscribed to this tier or higher")
	}

	price := plan.MonthlyPrice
	periodEnd := time.Now().AddDate(0, 1, 0)
	if req.BillingPeriod == string(entity.BillingPeriodYearly) {
		price = plan.YearlyPrice
		periodEnd = time.Now().AddDate(1, 0, 0)
	}

	subId := uuid.New()
	sub := &entity.UserSubscription{
		Id:                 subId,
		UserId:             userId,
		Tier:               tier,
		BillingPeriod:      entity.BillingPeriod(req.BillingPeriod),
		Status:             entity.SubscriptionStatusInactive,
		PaymentStatus:      entity.PaymentStatusPending,
		CurrentPeriodStart: time.Now(),
		CurrentPeriodEnd:   periodEnd,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.SubscriptionRepository().Create(ctx, sub); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// External call stays outside the DB transaction.
	var sClient snap.Client
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	env := midtrans.Sandbox
	if os.Getenv("MIDTRANS_ENV") == "production" {
		env = midtrans.Production
	}
	sClient.New(serverKey, env)

	frontendURL := os.Getenv("CLIENT_URL")
	finishRedirectURL := fmt.Sprintf("%s/app?payment=success", frontendURL)

	// Prices are USD; Snap takes the amount in the smallest unit.
	amount := int64(math.Round(price * 100))

	midtransPostalCode := req.PostalCode
	if len(midtransPostalCode) > 5 {
		midtransPostalCode = midtransPostalCode[:5]
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  subId.String(),
			GrossAmt: amount,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Callbacks: &snap.Callbacks{
			Finish: finishRedirectURL,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.FirstName,
			LName: req.LastName,
			Email: req.Email,
			Phone: req.Phone,
			BillAddr: &midtrans.CustomerAddress{
				FName:    req.FirstName,
				LName:    req.LastName,
				Phone:    req.Phone,
				City:     req.City,
				Postcode: midtransPostalCode,
			},
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    string(plan.Tier),
				Price: amount,
				Qty:   1,
				Name:  fmt.Sprintf("%s plan (%s)", plan.Name, req.BillingPeriod),
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}

	if s.eventPublisher != nil {
		evt := events.New(events.TypeSubscriptionCreated, map[string]interface{}{
			"user_id":        userId.String(),
			"tier":           string(tier),
			"billing_period": req.BillingPeriod,
			"amount":         price,
			"currency":       "USD",
		})
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", events.TypeSubscriptionCreated, err)
		}
	}

	return &dto.CheckoutResponse{
		OrderId:     subId,
		SnapToken:   snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}

func (s *paymentService) HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error {
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	if serverKey == "" {
		return fmt.Errorf("server configuration error")
	}

	// Midtrans signature = SHA512(order_id + status_code + gross_amount + server_key)
	signatureInput := req.OrderId + req.StatusCode + req.GrossAmount + serverKey
	expectedSignature := fmt.Sprintf("%x", sha512.Sum512([]byte(signatureInput)))
	if req.SignatureKey != expectedSignature {
		return fmt.Errorf("invalid signature")
	}

	subId, err := uuid.Parse(req.OrderId)
	if err != nil {
		return fmt.Errorf("invalid order id format")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: subId})
	if err != nil {
		return err
	}
	if sub == nil {
		return fmt.Errorf("subscription not found")
	}

	var newStatus entity.SubscriptionStatus
	var newPaymentStatus entity.PaymentStatus

	switch req.TransactionStatus {
	case "capture", "settlement":
		newStatus = entity.SubscriptionStatusActive
		newPaymentStatus = entity.PaymentStatusPaid
	case "deny", "cancel", "expire":
		newStatus = entity.SubscriptionStatusInactive
		newPaymentStatus = entity.PaymentStatusFailed
	case "pending":
		return nil
	default:
		return nil
	}

	if sub.Status == newStatus && sub.PaymentStatus == newPaymentStatus {
		return nil
	}

	sub.Status = newStatus
	sub.PaymentStatus = newPaymentStatus
	sub.UpdatedAt = time.Now()

	if err := uow.SubscriptionRepository().Update(ctx, sub); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	if newPaymentStatus == entity.PaymentStatusPaid && s.eventPublisher != nil {
		evt := events.New(events.TypeSubscriptionPaid, map[string]interface{}{
			"user_id": sub.UserId.String(),
			"tier":    string(sub.Tier),
		})
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", events.TypeSubscriptionPaid, err)
		}
	}
	return nil
}

func (s *paymentService) GetSubscriptionStatus(ctx context.Context, userId uuid.UUID) (*dto.SubscriptionStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subs, err := uow.SubscriptionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	var activeSub *entity.UserSubscription
	for _, sub := range subs {
		if sub.Status == entity.SubscriptionStatusActive && sub.CurrentPeriodEnd.After(time.Now()) {
			activeSub = sub
			break
		}
	}
	if activeSub == nil {
		// Payment settled but the status webhook may still be in flight.
		for _, sub := range subs {
			if sub.PaymentStatus == entity.PaymentStatusPaid && sub.CurrentPeriodEnd.After(time.Now()) {
				activeSub = sub
				break
			}
		}
	}

	if activeSub == nil {
		return &dto.SubscriptionStatusResponse{
			Tier:          string(entity.PlanTierFree),
			Status:        string(entity.SubscriptionStatusInactive),
			PaymentStatus: string(entity.PaymentStatusPaid),
			Active:        false,
		}, nil
	}

	return &dto.SubscriptionStatusResponse{
		Tier:             string(activeSub.Tier),
		Status:           string(activeSub.Status),
		PaymentStatus:    string(activeSub.PaymentStatus),
		BillingPeriod:    string(activeSub.BillingPeriod),
		CurrentPeriodEnd: &activeSub.CurrentPeriodEnd,
		Active:           activeSub.Status == entity.SubscriptionStatusActive,
	}, nil
}

// CancelSubscription marks the active paid subscription canceled. The tier
// resolver stops seeing it, so the account falls back to free immediately.
func (s *paymentService) CancelSubscription(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subs, err := uow.SubscriptionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByStatus{Status: string(entity.SubscriptionStatusActive)},
	)
	if err != nil {
		return err
	}

	canceled := false
	for _, sub := range subs {
		if sub.Tier == entity.PlanTierFree {
			continue
		}
		sub.Status = entity.SubscriptionStatusCanceled
		sub.UpdatedAt = time.Now()
		if err := uow.SubscriptionRepository().Update(ctx, sub); err != nil {
			return err
		}
		canceled = true
	}
	if !canceled {
		return errors.New("no active paid subscription")
	}
	return nil
}
