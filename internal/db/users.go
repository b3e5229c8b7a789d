package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/skillgenie/skillgenie/internal/types"
)

// ErrEmailExists indicates the email is already registered.
var ErrEmailExists = errors.New("email already registered")

// ErrUserNotFound indicates no user matched the lookup.
var ErrUserNotFound = errors.New("user not found")

// CreateUser inserts a new account and returns it.
func (db *DB) CreateUser(ctx context.Context, name, email, passwordHash string) (*types.User, error) {
	user := &types.User{ID: uuid.New(), Name: name, Email: email}

	err := db.pool.QueryRow(ctx,
		`INSERT INTO users (id, name, email, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		user.ID, name, email, passwordHash,
	).Scan(&user.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "unique") || strings.Contains(err.Error(), "duplicate") {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetUserByEmail returns the user and stored password hash for an email.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*types.User, string, error) {
	var (
		user types.User
		hash string
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at FROM users WHERE email = $1`,
		email,
	).Scan(&user.ID, &user.Name, &user.Email, &hash, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, "", ErrUserNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	return &user, hash, nil
}
