package interfaces

import "context"

// ICheckoutGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The order use case treats it as optional: when configured it creates a
// hosted checkout for the order total and returns the link customers pay at.
type ICheckoutGateway interface {
	CreateCheckoutLink(ctx context.Context, orderNumber, title string, amount float64) (string, error)
}
