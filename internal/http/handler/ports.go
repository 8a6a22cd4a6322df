package handler

import (
	"accountd/internal/core"
	"context"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name UserService . UserService
type UserService interface {
	Register(ctx context.Context, msg core.RegisterMessage) (core.UserRecord, error)
	Lookup(ctx context.Context, username string) (core.UserRecord, error)
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	List(ctx context.Context, token string) ([]core.UserRecord, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}
