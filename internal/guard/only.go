package guard

import (
	"context"
	"errors"

	apperrors "github.com/spec-kit/role-gate/pkg/util/errorutil"
)

var errIdentityMissing = errors.New("role guard reached without a verified identity")

// Only requires the verified identity to carry exactly roleName.
// It must run after Restricted; without an identity it fails closed with an
// internal error.
func Only(roleName string) Guard {
	return func(_ context.Context, req *Request) error {
		if req.Identity == nil {
			return apperrors.NewInternalError(errIdentityMissing)
		}
		if req.Identity.RoleName != roleName {
			return ErrRoleMismatch
		}
		return nil
	}
}
