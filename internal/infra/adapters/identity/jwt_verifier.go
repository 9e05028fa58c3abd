// File: internal/infra/adapters/identity/jwt_verifier.go
package identity

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"checkout-backend/internal/domain"
	"checkout-backend/internal/domain/ports/adapter"
)

var _ adapter.IdentityVerifier = (*JWTVerifier)(nil)

// JWTVerifier validates HS256 bearer tokens issued by the identity provider
// and returns the token's subject claim. Any parse, signature or expiry
// failure maps to domain.ErrUnauthorized; the token is never retried.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) VerifySubject(_ context.Context, token string) (string, error) {
	if len(v.secret) == 0 {
		return "", domain.ErrNotConfigured
	}
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return v.secret, nil
	})
	if err != nil || !tkn.Valid || claims.Subject == "" {
		return "", domain.ErrUnauthorized
	}
	return claims.Subject, nil
}
