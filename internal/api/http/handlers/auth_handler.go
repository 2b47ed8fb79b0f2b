package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/role-gate/internal/api/dto"
	"github.com/spec-kit/role-gate/internal/api/http/gate"
	"github.com/spec-kit/role-gate/internal/auth"
	"github.com/spec-kit/role-gate/internal/domain"
	"github.com/spec-kit/role-gate/internal/guard"
	"github.com/spec-kit/role-gate/internal/repository"
	apperrors "github.com/spec-kit/role-gate/pkg/util/errorutil"
)

// AuthHandler exposes account registration and credential checks.
type AuthHandler struct {
	accounts    repository.AccountRepository
	credentials repository.AccountFinder
	bcryptCost  int
}

// NewAuthHandler constructs handler. credentials must return accounts with
// their password hash, so it is the uncached store.
func NewAuthHandler(accounts repository.AccountRepository, credentials repository.AccountFinder, bcryptCost int) *AuthHandler {
	return &AuthHandler{accounts: accounts, credentials: credentials, bcryptCost: bcryptCost}
}

// Register handles POST /api/auth/register. The role name guard must run first.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	req := gate.RequestFrom(c)
	payload, err := req.Payload()
	if err != nil {
		return err
	}

	creds := dto.RegisterRequest{Username: payload.Username, Password: payload.Password}
	if err := creds.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	roleName := req.RoleName
	if roleName == "" {
		roleName = domain.DefaultRoleName
	}

	hash, err := auth.HashPassword(creds.Password, h.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	account := &domain.Account{
		Username:     creds.Username,
		PasswordHash: hash,
		RoleName:     roleName,
	}
	if err := h.accounts.Create(c.UserContext(), account); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return apperrors.NewConflict("username taken")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewAccountResponse(*account))
}

// Login handles POST /api/auth/login. The username existence guard runs
// first and attaches the account; the store is only read again when that
// account came from the cache without its hash. No token is issued.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	req := gate.RequestFrom(c)
	payload, err := req.Payload()
	if err != nil {
		return err
	}

	account := req.Account
	if account == nil || account.PasswordHash == "" {
		account, err = h.credentials.FindByUsername(c.UserContext(), payload.Username)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return guard.ErrUnknownUsername
			}
			return err
		}
	}
	if !auth.PasswordMatches(account.PasswordHash, payload.Password) {
		return guard.ErrUnknownUsername
	}

	return c.JSON(dto.MessageResponse{Message: "welcome, " + account.Username})
}
