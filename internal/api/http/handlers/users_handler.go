package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/role-gate/internal/api/dto"
	"github.com/spec-kit/role-gate/internal/repository"
	apperrors "github.com/spec-kit/role-gate/pkg/util/errorutil"
)

// UsersHandler serves account listings to authenticated callers.
type UsersHandler struct {
	accounts repository.AccountRepository
}

// NewUsersHandler constructs handler.
func NewUsersHandler(accounts repository.AccountRepository) *UsersHandler {
	return &UsersHandler{accounts: accounts}
}

// List handles GET /api/users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	accounts, err := h.accounts.List(c.UserContext())
	if err != nil {
		return err
	}

	out := make([]dto.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, dto.NewAccountResponse(account))
	}
	return c.JSON(out)
}

// Get handles GET /api/users/:username.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	account, err := h.accounts.FindByUsername(c.UserContext(), c.Params("username"))
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return apperrors.NewNotFound("account")
		}
		return err
	}
	return c.JSON(dto.NewAccountResponse(*account))
}
