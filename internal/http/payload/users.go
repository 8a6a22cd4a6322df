package payload

import (
	"accountd/internal/core"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Username, validation.Required, validation.Length(3, 255)),
		validation.Field(&c.Email, validation.Required, is.Email),
		validation.Field(&c.Password, validation.Required, validation.Length(8, 72)),
	)
}

func (c CreateUserRequest) ToCoreRegisterMessage() core.RegisterMessage {
	return core.RegisterMessage{
		Username: c.Username,
		Email:    c.Email,
		Password: c.Password,
	}
}
