package payment

import (
	"context"

	"storepay-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const defaultCurrency = "INR"

// Service owns the gateway credentials and orchestrates the two
// payment operations. Immutable after construction, safe for
// concurrent use.
type Service struct {
	keyID     string
	keySecret string
	currency  string
	gateway   Gateway
}

type Option func(*Service)

func WithCurrency(currency string) Option {
	return func(s *Service) { s.currency = currency }
}

func WithGateway(g Gateway) Option {
	return func(s *Service) { s.gateway = g }
}

func WithBaseURL(baseURL string) Option {
	return func(s *Service) {
		s.gateway = NewRazorpayGateway(s.keyID, s.keySecret, baseURL)
	}
}

// NewService fails fast on empty credentials: an invalid deployment
// must never accept a single request.
func NewService(keyID, keySecret string, opts ...Option) (*Service, error) {
	if keyID == "" || keySecret == "" {
		return nil, ErrMissingCredentials
	}

	s := &Service{
		keyID:     keyID,
		keySecret: keySecret,
		currency:  defaultCurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.gateway == nil {
		s.gateway = NewRazorpayGateway(keyID, keySecret, "")
	}

	return s, nil
}

// KeyID returns the public key identifier shown to the storefront.
func (s *Service) KeyID() string {
	return s.keyID
}

// MinorUnits converts a decimal currency amount to the gateway's
// minor unit, rounding half up. Done in decimal space: in float64
// 2.005*100 is 200.4999…, which would truncate a legitimate half-cent
// up-round.
func MinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// InitiatePayment creates a gateway order for the given amount in
// whole currency units. productID and userID travel as opaque notes;
// the gateway echoes them back but we never interpret them.
func (s *Service) InitiatePayment(ctx context.Context, amount float64, productID, userID string) (*InitiationResult, error) {
	minor := MinorUnits(amount)
	if minor < 1 {
		return nil, ErrInvalidAmount
	}

	order := OrderRequest{
		AmountMinor: minor,
		Currency:    s.currency,
		Receipt:     newReceipt(),
		Notes: map[string]string{
			"productId": productID,
			"userId":    userID,
		},
	}

	logger.FromCtx(ctx).Info("Initiating payment",
		zap.Int64("amount_minor", minor),
		zap.String("product_id", productID),
		zap.String("user_id", userID),
	)

	record, err := s.gateway.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	return &InitiationResult{
		OrderID:     record.OrderID,
		AmountMinor: record.AmountMinor,
		Currency:    record.Currency,
		KeyID:       s.keyID,
	}, nil
}

// VerifyPayment checks the checkout callback signature against the
// stored secret. Pure function of its inputs: there is no order
// ledger, so a previously observed valid signature for the same
// order/payment pair verifies again. Callers needing replay
// protection must keep their own ledger.
func (s *Service) VerifyPayment(ctx context.Context, orderID, paymentID, signature string) bool {
	valid := VerifySignature(orderID, paymentID, signature, s.keySecret)

	logger.FromCtx(ctx).Info("Payment signature verification",
		zap.String("order_id", orderID),
		zap.String("payment_id", paymentID),
		zap.Bool("valid", valid),
	)

	return valid
}
