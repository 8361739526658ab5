package payment

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCredentials = errors.New("gateway key id and key secret are required")
	ErrInvalidAmount      = errors.New("amount must convert to at least one minor unit")
)

// GatewayError wraps any failure talking to the payment gateway:
// network errors, timeouts, non-success responses, undecodable bodies.
type GatewayError struct {
	Op    string
	Cause error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("razorpay %s: %v", e.Op, e.Cause)
}

func (e *GatewayError) Unwrap() error {
	return e.Cause
}
