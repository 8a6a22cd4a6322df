package repository

import (
	"accountd/internal/db"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrUserExists error = errors.New("user already exists")

type UserRepository struct {
	db Storage
}

func NewUserRepository(db Storage) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// MigrateAndSeed creates the schema for the user model and seeds the
// bootstrap superuser when the table is empty. Seeding is skipped when no
// superuser credentials are configured.
func (r *UserRepository) MigrateAndSeed(ctx context.Context, username, email, passwordHash string) error {
	err := r.db.MigrateModels(&User{})
	if err != nil {
		return fmt.Errorf("migrate model(s): %w", err)
	}

	if username == "" || passwordHash == "" {
		return nil
	}

	users := []User{
		{
			ID:           uuid.NewString(),
			Username:     username,
			Email:        email,
			PasswordHash: passwordHash,
			IsActive:     true,
			IsSuperuser:  true,
		},
	}
	err = r.db.SeedRecords(ctx, &users)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user User) error {
	err := r.db.SaveRecords(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrUserExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "email", email, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]User, error) {
	users := []User{}
	err := r.db.GetAll(ctx, &users)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}
