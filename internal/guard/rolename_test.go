package guard

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRoleName_Accepts(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{name: "empty object", body: `{}`, want: "student"},
		{name: "no body", body: ``, want: "student"},
		{name: "blank", body: `{"role_name":"   "}`, want: "student"},
		{name: "trimmed", body: `{"role_name":"  teacher  "}`, want: "teacher"},
		{name: "exactly 32", body: `{"role_name":"` + strings.Repeat("r", 32) + `"}`, want: strings.Repeat("r", 32)},
		{name: "admin is case sensitive", body: `{"role_name":"Admin"}`, want: "Admin"},
		{name: "multibyte counted by character", body: `{"role_name":"` + strings.Repeat("é", 32) + `"}`, want: strings.Repeat("é", 32)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := jsonRequest(nil, tc.body)
			require.NoError(t, ValidateRoleName()(context.Background(), req))
			assert.Equal(t, tc.want, req.RoleName)
		})
	}
}

func TestValidateRoleName_Rejects(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		message string
	}{
		{name: "admin", body: `{"role_name":"admin"}`, message: "Role name can not be admin"},
		{name: "padded admin", body: `{"role_name":"  admin  "}`, message: "Role name can not be admin"},
		{name: "33 chars", body: `{"role_name":"a_role_name_that_is_exactly_33_chars"}`, message: "Role name can not be longer than 32 chars"},
		{name: "33 padded", body: `{"role_name":"  ` + strings.Repeat("x", 33) + `  "}`, message: "Role name can not be longer than 32 chars"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := jsonRequest(nil, tc.body)
			err := ValidateRoleName()(context.Background(), req)
			assertRejected(t, err, http.StatusUnprocessableEntity, tc.message)
			assert.Empty(t, req.RoleName)
		})
	}
}

func TestValidateRoleName_InvalidBody(t *testing.T) {
	err := ValidateRoleName()(context.Background(), jsonRequest(nil, `{"role_name":["a"]}`))
	assertRejected(t, err, http.StatusBadRequest, "invalid payload")
}

func TestRoleNameViolations_ListsEveryFailure(t *testing.T) {
	value, violations := RoleNameViolations(strings.Repeat("z", 40))
	assert.Equal(t, strings.Repeat("z", 40), value)
	require.Len(t, violations, 1)
	assert.Equal(t, CodeRoleNameTooLong, violations[0].Code)

	_, violations = RoleNameViolations(" admin ")
	require.Len(t, violations, 1)
	assert.Equal(t, CodeRoleNameForbidden, violations[0].Code)
	assert.Equal(t, "Role name can not be admin", violations[0].Message)
}

func TestRoleNameViolations_Idempotent(t *testing.T) {
	inputs := []string{"", "  teacher  ", "student", strings.Repeat("q", 32), " a b "}
	for _, in := range inputs {
		once, violations := RoleNameViolations(in)
		require.Empty(t, violations)

		twice, violations := RoleNameViolations(once)
		require.Empty(t, violations)
		assert.Equal(t, once, twice)
	}
}
