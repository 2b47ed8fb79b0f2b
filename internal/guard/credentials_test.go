package guard

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/role-gate/internal/domain"
	"github.com/spec-kit/role-gate/internal/repository"
	apperrors "github.com/spec-kit/role-gate/pkg/util/errorutil"
)

type finderFunc func(ctx context.Context, username string) (*domain.Account, error)

func (f finderFunc) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return f(ctx, username)
}

func knownUsers(names ...string) finderFunc {
	return func(_ context.Context, username string) (*domain.Account, error) {
		for _, n := range names {
			if n == username {
				return &domain.Account{Username: n}, nil
			}
		}
		return nil, repository.ErrAccountNotFound
	}
}

func TestUsernameExists(t *testing.T) {
	guard := UsernameExists(knownUsers("bob", "sue"))

	cases := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "known", body: `{"username":"bob","password":"1234"}`},
		{name: "known without password", body: `{"username":"sue"}`},
		{name: "known with extra fields", body: `{"username":"sue","role_name":"admin"}`},
		{name: "unknown", body: `{"username":"ghost","password":"1234"}`, wantErr: true},
		{name: "exact match only", body: `{"username":"Bob"}`, wantErr: true},
		{name: "missing username", body: `{}`, wantErr: true},
		{name: "empty body", body: ``, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := jsonRequest(nil, tc.body)
			err := guard(context.Background(), req)
			if !tc.wantErr {
				assert.NoError(t, err)
				if assert.NotNil(t, req.Account) {
					assert.NotEmpty(t, req.Account.Username)
				}
				return
			}
			assertRejected(t, err, http.StatusUnauthorized, "Invalid credentials")
			assert.Nil(t, req.Account)
		})
	}
}

func TestUsernameExists_StoreFailurePassesThrough(t *testing.T) {
	boom := errors.New("connection refused")
	guard := UsernameExists(finderFunc(func(context.Context, string) (*domain.Account, error) {
		return nil, boom
	}))

	err := guard(context.Background(), jsonRequest(nil, `{"username":"bob"}`))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "INTERNAL_ERROR", apperrors.ToDomainError(err).Code)
}

func TestUsernameExists_UsesRequestContext(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "marker")

	var seen any
	guard := UsernameExists(finderFunc(func(ctx context.Context, username string) (*domain.Account, error) {
		seen = ctx.Value(ctxKey{})
		return &domain.Account{Username: username}, nil
	}))

	assert.NoError(t, guard(ctx, jsonRequest(nil, `{"username":"bob"}`)))
	assert.Equal(t, "marker", seen)
}
