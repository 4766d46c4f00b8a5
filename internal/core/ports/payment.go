package ports

import "context"

// PaymentProvider is the external payment collaborator: it creates a
// payment intent for an amount in minor units and returns the opaque
// client secret the frontend completes the charge with.
type PaymentProvider interface {
	CreatePaymentIntent(ctx context.Context, amountCents int64, currency string) (clientSecret string, err error)
}

// PaymentService converts a catalog price into a payment intent.
type PaymentService interface {
	CreateIntent(ctx context.Context, price float64) (clientSecret string, err error)
}
