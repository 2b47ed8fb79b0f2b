package guard

import (
	"context"

	"github.com/spec-kit/role-gate/internal/auth"
)

// TokenDecoder verifies a raw token and returns its claims.
type TokenDecoder interface {
	Decode(token string) (*auth.Claims, error)
}

// Restricted requires a verifiable token in header and attaches the decoded
// claims to the request. The header value is used as-is.
func Restricted(codec TokenDecoder, header string) Guard {
	return func(_ context.Context, req *Request) error {
		token := req.Header(header)
		if token == "" {
			return ErrTokenMissing
		}
		claims, err := codec.Decode(token)
		if err != nil {
			return ErrTokenInvalid
		}
		req.Identity = claims
		return nil
	}
}
