// Package gateway adapts the external hosted-checkout payment provider.
package gateway

import "context"

// LineItem is one billable line of a checkout session. UnitAmount is in the
// smallest currency unit.
type LineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int64
}

// Session is a created hosted-checkout session.
type Session struct {
	ID  string
	URL string
}

// Provider creates hosted checkout sessions with an external payment
// provider. A single failed attempt aborts the place-order request; no
// retries are performed here.
type Provider interface {
	CreateCheckoutSession(ctx context.Context, items []LineItem, currency, successURL, cancelURL string) (*Session, error)
}
