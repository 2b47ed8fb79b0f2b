package guard

import (
	"net/http"

	apperrors "github.com/spec-kit/role-gate/pkg/util/errorutil"
)

// Rejection codes.
const (
	CodeTokenMissing      = "TOKEN_MISSING"
	CodeTokenInvalid      = "TOKEN_INVALID"
	CodeRoleMismatch      = "ROLE_MISMATCH"
	CodeUnknownUsername   = "UNKNOWN_USERNAME"
	CodeRoleNameForbidden = "ROLE_NAME_FORBIDDEN"
	CodeRoleNameTooLong   = "ROLE_NAME_TOO_LONG"
)

// Rejections with fixed messages. Messages are rendered to callers verbatim.
var (
	ErrTokenMissing    = apperrors.NewDomainError(CodeTokenMissing, "Token required", http.StatusUnauthorized)
	ErrTokenInvalid    = apperrors.NewDomainError(CodeTokenInvalid, "Token invalid", http.StatusUnauthorized)
	ErrRoleMismatch    = apperrors.NewDomainError(CodeRoleMismatch, "This is not for you", http.StatusForbidden)
	ErrUnknownUsername = apperrors.NewDomainError(CodeUnknownUsername, "Invalid credentials", http.StatusUnauthorized)
)
