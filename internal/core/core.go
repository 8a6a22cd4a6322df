package core

import (
	"accountd/internal/repository"
	tokenIssuer "accountd/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrUserExists error = errors.New("user already exists")
var ErrUserInactive error = errors.New("user is inactive")
var ErrNotSuperuser error = errors.New("superuser privileges required")

// Accounts provides user registration, lookup and authentication on top of
// the user repository.
type Accounts struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
	tokenTTL  time.Duration
}

// NewAccounts is a constructor function for the Accounts type. The token TTL
// is expressed in hours.
func NewAccounts(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, tokenTTLHours int) *Accounts {
	return &Accounts{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
		tokenTTL:  time.Duration(tokenTTLHours),
	}
}

// HashPassword produces a bcrypt hash of the given plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Register hashes the password and persists a new active user. Uniqueness of
// username and email is enforced by the storage engine.
func (a *Accounts) Register(ctx context.Context, msg RegisterMessage) (UserRecord, error) {
	hash, err := HashPassword(msg.Password)
	if err != nil {
		return UserRecord{}, err
	}

	user := repository.User{
		ID:           uuid.NewString(),
		Username:     msg.Username,
		Email:        msg.Email,
		PasswordHash: hash,
		IsActive:     true,
	}

	err = a.repo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return UserRecord{}, ErrUserExists
		}
		return UserRecord{}, fmt.Errorf("create user: %w", err)
	}

	a.logs.Infow("user registered", "username", user.Username, "userId", user.ID)

	return a.userToRecord(user), nil
}

// Lookup returns the user with the given username.
func (a *Accounts) Lookup(ctx context.Context, username string) (UserRecord, error) {
	user, err := a.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserRecord{}, ErrUserNotFound
		}
		return UserRecord{}, fmt.Errorf("get user from db: %w", err)
	}

	return a.userToRecord(user), nil
}

// Authenticate checks the provided credentials against the database. The
// identifier may be a username or an email address. On success it returns a
// signed JWT for the user.
func (a *Accounts) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := a.repo.GetUserByUsername(ctx, msg.Username)
	if errors.Is(err, repository.ErrUserNotFound) && strings.Contains(msg.Username, "@") {
		user, err = a.repo.GetUserByEmail(ctx, msg.Username)
	}
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	if !user.IsActive {
		return "", ErrUserInactive
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Superuser:  user.IsSuperuser,
		Expiration: a.tokenTTL,
	}
	token := a.jwtIssuer.Generate(tokenInfo)
	signed, err := a.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// List returns all users. The caller must present a token carrying the
// superuser claim.
func (a *Accounts) List(ctx context.Context, token string) ([]UserRecord, error) {
	claims, err := a.jwtIssuer.Validate(token)
	if err != nil {
		return nil, fmt.Errorf("validate jwt token: %w", err)
	}

	if superuser, ok := claims["superuser"].(bool); !ok || !superuser {
		return nil, ErrNotSuperuser
	}

	users, err := a.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	a.logs.Infow("users listed", "count", len(users), "requestedBy", claims["sub"])

	records := make([]UserRecord, len(users))
	for i, user := range users {
		records[i] = a.userToRecord(user)
	}

	return records, nil
}

func (a *Accounts) userToRecord(user repository.User) UserRecord {
	return UserRecord{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		IsActive:    user.IsActive,
		IsSuperuser: user.IsSuperuser,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}
