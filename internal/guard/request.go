package guard

import (
	"net/http"

	"github.com/spec-kit/role-gate/internal/auth"
	"github.com/spec-kit/role-gate/internal/domain"
	apperrors "github.com/spec-kit/role-gate/pkg/util/errorutil"
)

// Payload holds the body fields guards and handlers read.
type Payload struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	RoleName string `json:"role_name" form:"role_name"`
}

// Request is the per-request state threaded through a pipeline. It is owned
// by a single in-flight request and must not be shared.
type Request struct {
	header func(key string) string
	decode func(out any) error

	payload   Payload
	decoded   bool
	decodeErr error

	// Identity is set by Restricted once the token verifies.
	Identity *auth.Claims
	// RoleName is set by ValidateRoleName to the trimmed, defaulted value.
	RoleName string
	// Account is set by UsernameExists to the account it found. It may come
	// from the cache and then has no PasswordHash.
	Account *domain.Account
}

// NewRequest builds a Request. decode unmarshals the body into its argument;
// either function may be nil.
func NewRequest(header func(key string) string, decode func(out any) error) *Request {
	return &Request{header: header, decode: decode}
}

// Header returns the raw value of the named header.
func (r *Request) Header(key string) string {
	if r.header == nil {
		return ""
	}
	return r.header(key)
}

// Payload decodes the body on first use and caches the result.
func (r *Request) Payload() (*Payload, error) {
	if !r.decoded {
		r.decoded = true
		if r.decode != nil {
			if err := r.decode(&r.payload); err != nil {
				r.decodeErr = &apperrors.DomainError{
					Code:       "VALIDATION_FAILED",
					Message:    "invalid payload",
					HTTPStatus: http.StatusBadRequest,
					Err:        err,
				}
			}
		}
	}
	if r.decodeErr != nil {
		return nil, r.decodeErr
	}
	return &r.payload, nil
}
