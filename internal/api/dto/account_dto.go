package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"

	"github.com/spec-kit/role-gate/internal/domain"
)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// RegisterRequest holds the credential fields of an account-creation body.
// role_name is handled by the role name guard before the handler runs.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks required fields.
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.RuneLength(1, 128)),
		validation.Field(&r.Password, validation.Required, validation.Length(1, MaxPasswordBytes)),
	)
}

// AccountResponse is the public view of an account.
type AccountResponse struct {
	AccountID uuid.UUID `json:"account_id"`
	Username  string    `json:"username"`
	RoleName  string    `json:"role_name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAccountResponse strips private fields from account.
func NewAccountResponse(account domain.Account) AccountResponse {
	return AccountResponse{
		AccountID: account.ID,
		Username:  account.Username,
		RoleName:  account.RoleName,
		CreatedAt: account.CreatedAt,
	}
}

// MessageResponse carries a human readable message.
type MessageResponse struct {
	Message string `json:"message"`
}
