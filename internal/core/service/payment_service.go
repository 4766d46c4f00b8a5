package service

import (
	"context"
	"errors"
	"math"

	"github.com/rs/zerolog"

	"github.com/trtonmoy/rhythmic-academy-server/internal/core/ports"
)

var ErrInvalidAmount = errors.New("invalid payment amount")

const paymentCurrency = "usd"

// PaymentService converts a catalog price into a payment intent through
// the external provider and hands the opaque client secret back to the
// caller.
type PaymentService struct {
	provider ports.PaymentProvider
	logger   zerolog.Logger
}

func NewPaymentService(provider ports.PaymentProvider, logger zerolog.Logger) *PaymentService {
	return &PaymentService{provider: provider, logger: logger}
}

// CreateIntent creates a payment intent for price, expressed in whole
// currency units. Amounts are sent to the provider in cents.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", ErrInvalidAmount
	}

	amount := int64(math.Round(price * 100))
	secret, err := s.provider.CreatePaymentIntent(ctx, amount, paymentCurrency)
	if err != nil {
		s.logger.Error().Err(err).Float64("price", price).Msg("payment intent failed")
		return "", err
	}

	return secret, nil
}
