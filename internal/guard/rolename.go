package guard

import (
	"context"
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/spec-kit/role-gate/internal/domain"
	apperrors "github.com/spec-kit/role-gate/pkg/util/errorutil"
)

// MaxRoleNameLength is counted in characters after trimming.
const MaxRoleNameLength = 32

// Violation is a single failed role name rule.
type Violation struct {
	Code    string
	Message string
}

type roleNameRule struct {
	code string
	rule validation.Rule
}

// Order matters: the first violation is the one reported.
var roleNameRules = []roleNameRule{
	{
		code: CodeRoleNameForbidden,
		rule: validation.By(func(value interface{}) error {
			if s, _ := value.(string); s == domain.ReservedRoleName {
				return errors.New("Role name can not be admin")
			}
			return nil
		}),
	},
	{
		code: CodeRoleNameTooLong,
		rule: validation.RuneLength(0, MaxRoleNameLength).Error("Role name can not be longer than 32 chars"),
	},
}

// NormalizeRoleName trims raw and substitutes the default role when empty.
func NormalizeRoleName(raw string) string {
	roleName := strings.TrimSpace(raw)
	if roleName == "" {
		return domain.DefaultRoleName
	}
	return roleName
}

// RoleNameViolations normalizes raw and evaluates every rule against it,
// returning the normalized value and all violations in rule order.
func RoleNameViolations(raw string) (string, []Violation) {
	roleName := NormalizeRoleName(raw)

	var violations []Violation
	for _, r := range roleNameRules {
		if err := r.rule.Validate(roleName); err != nil {
			violations = append(violations, Violation{Code: r.code, Message: err.Error()})
		}
	}
	return roleName, violations
}

// ValidateRoleName normalizes the body role_name and stores it on the
// request. Only the first violation is reported.
func ValidateRoleName() Guard {
	return func(_ context.Context, req *Request) error {
		payload, err := req.Payload()
		if err != nil {
			return err
		}
		roleName, violations := RoleNameViolations(payload.RoleName)
		if len(violations) > 0 {
			first := violations[0]
			return apperrors.NewUnprocessable(first.Code, first.Message)
		}
		req.RoleName = roleName
		return nil
	}
}
