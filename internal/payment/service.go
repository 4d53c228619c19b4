package payment

import (
	"context"
	"fmt"

	"nova-ecart-be/internal/logger"
	"nova-ecart-be/internal/order"

	"go.uber.org/zap"
)

const defaultCurrency = "USDT"

type Service interface {
	CreatePayment(ctx context.Context, userID string, req PaymentRequest) (*PaymentResponse, error)

	// VerifyCallback checks the signature over the raw callback body.
	VerifyCallback(payload []byte, sig string) bool

	// ProcessCallback relays a verified callback into the order store. The
	// caller must have verified the signature first; no verification happens
	// here.
	ProcessCallback(ctx context.Context, payload CallbackPayload) (*CallbackResult, error)

	GetStatus(ctx context.Context, orderID string) (order.Status, error)
	ListOrders(ctx context.Context, userID string) ([]order.Order, error)
}

type service struct {
	gateway Gateway
	orders  order.Repository
	apiKey  string
}

func NewService(gateway Gateway, orders order.Repository, apiKey string) Service {
	return &service{
		gateway: gateway,
		orders:  orders,
		apiKey:  apiKey,
	}
}

func (s *service) CreatePayment(ctx context.Context, userID string, req PaymentRequest) (*PaymentResponse, error) {
	log := logger.FromCtx(ctx)

	if req.ProductID == "" {
		return nil, fmt.Errorf("%w: product_id is required", ErrValidation)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if req.Currency == "" {
		req.Currency = defaultCurrency
	}

	resp, err := s.gateway.CreatePayment(ctx, req.ProductID, req.Amount, req.Currency)
	if err != nil {
		return nil, err
	}

	o := &order.Order{
		ID:        resp.OrderID,
		UserID:    userID,
		ProductID: req.ProductID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Status:    order.StatusPending,
	}
	if err := s.orders.Create(ctx, o); err != nil {
		log.Error("failed to persist order",
			zap.String("order_id", o.ID),
			zap.Error(err),
		)
		return nil, err
	}

	log.Info("payment created",
		zap.String("order_id", o.ID),
		zap.String("user_id", userID),
	)

	return resp, nil
}

func (s *service) VerifyCallback(payload []byte, sig string) bool {
	return VerifySignature(payload, sig, s.apiKey)
}

func (s *service) ProcessCallback(ctx context.Context, payload CallbackPayload) (*CallbackResult, error) {
	log := logger.FromCtx(ctx)

	if payload.OrderID == "" {
		return nil, fmt.Errorf("%w: order_id is required", ErrMalformedCallback)
	}
	if payload.Status == "" {
		return nil, fmt.Errorf("%w: status is required", ErrMalformedCallback)
	}

	status := order.Status(payload.Status)
	if !status.Terminal() {
		// Interim notifications (confirmation counts, processing states)
		// don't move the order; acknowledge without touching the store.
		log.Info("ignoring non-final callback status",
			zap.String("order_id", payload.OrderID),
			zap.String("status", payload.Status),
		)
		return &CallbackResult{
			OrderID:   payload.OrderID,
			Status:    payload.Status,
			Processed: false,
		}, nil
	}

	updated, err := s.orders.UpdateStatusIf(ctx, payload.OrderID, order.StatusPending, status)
	if err != nil {
		return nil, err
	}

	log.Info("order status updated from callback",
		zap.String("order_id", updated.ID),
		zap.String("status", string(updated.Status)),
	)

	return &CallbackResult{
		OrderID:   updated.ID,
		Status:    string(updated.Status),
		Processed: true,
	}, nil
}

func (s *service) GetStatus(ctx context.Context, orderID string) (order.Status, error) {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return "", err
	}
	return o.Status, nil
}

func (s *service) ListOrders(ctx context.Context, userID string) ([]order.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}
