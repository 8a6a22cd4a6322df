package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"accountd/internal/core"
	"accountd/internal/http/handler/middleware"
	"accountd/internal/http/payload"
	tokenIssuer "accountd/pkg/jwt"

	"go.uber.org/zap"
)

var (
	CreateUser = "POST /api/users"
	GetUser    = "GET /api/users/{username}"
	ListUsers  = "GET /api/users"
	Login      = "POST /api/login"
	Health     = "GET /healthz"
)

type UserHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	accounts         UserService
}

func NewUserHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, userService UserService) *UserHandler {
	return &UserHandler{
		logs:             logger,
		requestValidator: requestValidator,
		accounts:         userService,
	}
}

func (h *UserHandler) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var createReq payload.CreateUserRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &createReq)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not create user",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateUser,
			"request_id", requestId)
		return
	}

	record, err := h.accounts.Register(r.Context(), createReq.ToCoreRegisterMessage())
	if err != nil {
		resp := Response{
			Message: "Could not create user",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserExists) {
			httpCode = http.StatusConflict
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("user creation failed",
			"error", err,
			"handler", CreateUser,
			"request_id", requestId)
		return
	}

	h.logs.Infow("user created",
		"username", record.Username,
		"handler", CreateUser,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "User created",
		Data:    record,
	}, http.StatusCreated, requestId)
}

func (h *UserHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	username := r.PathValue("username")
	if username == "" {
		h.respond(w, Response{
			Message: "Could not retrieve user",
			Error:   "username path parameter is required",
		}, http.StatusBadRequest,
			requestId)
		return
	}

	record, err := h.accounts.Lookup(r.Context(), username)
	if err != nil {
		resp := Response{
			Message: "Could not retrieve user",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to get user",
			"error", err,
			"handler", GetUser,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Data: record,
	}, http.StatusOK, requestId)
}

func (h *UserHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	authToken := r.Header.Get("AUTH_TOKEN")
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", ListUsers, "request_id", requestId)
		return
	}

	records, err := h.accounts.List(r.Context(), authToken)
	if err != nil {
		resp := Response{
			Message: "Could not list users",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrNotSuperuser) {
			httpCode = http.StatusForbidden
			resp.Error = err.Error()
		} else if errors.Is(err, tokenIssuer.ErrTokenNotValid) || errors.Is(err, tokenIssuer.ErrTokenExpired) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to list users",
			"error", err,
			"handler", ListUsers,
			"request_id", requestId)
		return
	}

	resp := map[string][]core.UserRecord{
		"users": records,
	}

	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *UserHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var authReq payload.AuthRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &authReq)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	token, err := h.accounts.Authenticate(r.Context(), authReq.ToCoreAuthMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) ||
			errors.Is(err, core.ErrIncorrectPassword) ||
			errors.Is(err, core.ErrUserInactive) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *UserHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.respond(w, map[string]string{"status": "ok"}, http.StatusOK, requestID(r))
}

func (h *UserHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	if reqIdCtx := r.Context().Value(middleware.RequestIDKey); reqIdCtx != nil {
		return reqIdCtx.(string)
	}
	return ""
}
