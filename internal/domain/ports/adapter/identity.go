package adapter

import "context"

// IdentityVerifier validates a bearer token issued by the identity provider
// and yields the stable subject id used to key entitlement records.
type IdentityVerifier interface {
	VerifySubject(ctx context.Context, token string) (string, error)
}
