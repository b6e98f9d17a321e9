package payment

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go"
	"github.com/stripe/stripe-go/client"
)

// StripeGateway implements Gateway on top of Stripe PaymentIntents. The
// secret key is injected by the caller; there is no global configuration.
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway constructs a gateway client for the given secret key.
func NewStripeGateway(secretKey string) (*StripeGateway, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("stripe secret key is required")
	}
	return &StripeGateway{api: client.New(secretKey, nil)}, nil
}

// CreateOrder opens a PaymentIntent for the amount and returns its handle.
func (g *StripeGateway) CreateOrder(ctx context.Context, amount int64, currency string, metadata map[string]string) (*Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}
	return &Order{
		OrderID:      intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       amount,
		Currency:     currency,
	}, nil
}

// OrderSettled fetches the PaymentIntent and reports whether Stripe has
// collected the payment.
func (g *StripeGateway) OrderSettled(ctx context.Context, orderID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	intent, err := g.api.PaymentIntents.Get(orderID, nil)
	if err != nil {
		return false, fmt.Errorf("get payment intent: %w", err)
	}
	return intent.Status == stripe.PaymentIntentStatusSucceeded, nil
}
