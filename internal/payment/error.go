package payment

import (
	"errors"
	"fmt"
)

var (
	ErrValidation        = errors.New("invalid payment request")
	ErrSignatureMismatch = errors.New("callback signature mismatch")
	ErrMalformedCallback = errors.New("malformed callback payload")
)

// GatewayError carries the remote response body (or transport error) from a
// failed exchange with the payment gateway.
type GatewayError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cryptomus: %v", e.Err)
	}
	return fmt.Sprintf("cryptomus: status %d: %s", e.StatusCode, e.Body)
}

func (e *GatewayError) Unwrap() error { return e.Err }
