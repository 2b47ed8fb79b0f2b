package guard

import (
	"context"
	"errors"

	"github.com/spec-kit/role-gate/internal/repository"
)

// UsernameExists rejects requests whose body username has no account.
// Only existence is checked; the found account is attached to the request and
// password verification is left to the handler.
// Lookup failures other than not-found are returned unchanged.
func UsernameExists(accounts repository.AccountFinder) Guard {
	return func(ctx context.Context, req *Request) error {
		payload, err := req.Payload()
		if err != nil {
			return err
		}
		if payload.Username == "" {
			return ErrUnknownUsername
		}
		account, err := accounts.FindByUsername(ctx, payload.Username)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return ErrUnknownUsername
			}
			return err
		}
		req.Account = account
		return nil
	}
}
