package domain

import (
	"errors"
	"fmt"
)

var (
	// Common domain errors
	ErrNotFound          = errors.New("entity not found")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrUnauthorized      = errors.New("caller identity not established")
	ErrNotConfigured     = errors.New("service not configured")
	ErrSignatureMismatch = errors.New("payment signature mismatch")
	ErrOperationFailed   = errors.New("operation failed")
)

// GatewayError carries a non-2xx gateway reply verbatim so the caller can see
// the provider's own error semantics. Status and Body are forwarded as-is and
// never re-parsed.
type GatewayError struct {
	Status int
	Body   []byte
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway returned status %d", e.Status)
}
