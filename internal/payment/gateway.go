// Package payment abstracts the external payment gateway. The core only
// ever asks the gateway for an order handle; confirmation arrives later via
// the gateway's callback.
package payment

import "context"

// Order is the handle returned by the gateway for a pending payment. The
// client completes checkout against ClientSecret; OrderID is what the
// confirmation callback references.
type Order struct {
	OrderID      string
	ClientSecret string
	Amount       int64
	Currency     string
}

// Gateway creates payment orders with an external provider. Amount is in
// minor currency units and must already be validated as positive before the
// gateway is called.
type Gateway interface {
	CreateOrder(ctx context.Context, amount int64, currency string, metadata map[string]string) (*Order, error)
	// OrderSettled reports whether the provider has actually collected the
	// payment for the order. Confirmation callbacks carry nothing but an
	// order handle, so the provider is the authority on settlement.
	OrderSettled(ctx context.Context, orderID string) (bool, error)
}
