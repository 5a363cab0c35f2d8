// Copyright (c) 2026 Openboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/buivan/openboard/internal/platform/apperr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the PostgreSQL implementation of [Repository].
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Create persists a new account into the board.account table.
//
// # Returns
//
// Returns [apperr.Conflict] if the nickname is already registered. The unique
// index is the single source of truth; the service-level pre-check only
// shortcuts the common case.
func (repository *PostgresRepository) Create(ctx context.Context, user *User) error {
	const query = `
		INSERT INTO board.account (
			id, nickname, passwordhash, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5)`

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := repository.pool.Exec(ctx, query,
		user.ID,
		user.Nickname,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return apperr.Conflict("Nickname is already taken")
		}
		return fmt.Errorf("postgres_user_repo_create_failed: %w", err)
	}

	return nil
}

// FindByNickname retrieves an account by its unique nickname.
//
// # Returns
//
// Returns [*User] if found, or [apperr.NotFound] if no account exists.
func (repository *PostgresRepository) FindByNickname(ctx context.Context, nickname string) (*User, error) {
	const query = `
		SELECT id, nickname, passwordhash, createdat, updatedat
		FROM board.account
		WHERE nickname = $1`

	user := &User{}
	err := repository.pool.QueryRow(ctx, query, nickname).Scan(
		&user.ID,
		&user.Nickname,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("postgres_user_repo_find_by_nickname_failed: %w", err)
	}

	return user, nil
}

// FindByID retrieves an account by its primary key.
func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*User, error) {
	const query = `
		SELECT id, nickname, passwordhash, createdat, updatedat
		FROM board.account
		WHERE id = $1`

	user := &User{}
	err := repository.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Nickname,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("postgres_user_repo_find_by_id_failed: %w", err)
	}

	return user, nil
}
