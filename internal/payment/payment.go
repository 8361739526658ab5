// internal/payment/payment.go
package payment

import "context"

// Gateway creates orders on the external payment processor. One
// outbound call per order, no retries; retry policy belongs to callers.
type Gateway interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*OrderRecord, error)
}
