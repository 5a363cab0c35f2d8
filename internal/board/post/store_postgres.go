// Copyright (c) 2026 Openboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/buivan/openboard/internal/platform/apperr"
	"github.com/buivan/openboard/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the PostgreSQL implementation of [Repository].
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Create persists a new post into the board.post table.
func (repository *PostgresRepository) Create(ctx context.Context, post *Post) error {
	const query = `
		INSERT INTO board.post (
			id, authorid, title, content, passwordhash, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	now := time.Now()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.UpdatedAt = now

	_, err := repository.pool.Exec(ctx, query,
		post.ID,
		post.AuthorID,
		post.Title,
		post.Content,
		post.secretHash,
		post.CreatedAt,
		post.UpdatedAt,
	)

	if err != nil {
		return dberr.Wrap(err, "post_create")
	}

	return nil
}

// List returns all posts, newest first. Content is deliberately excluded;
// the board index only shows titles.
func (repository *PostgresRepository) List(ctx context.Context) ([]Summary, error) {
	const query = `
		SELECT p.id, a.nickname, p.title, p.createdat
		FROM board.post p
		JOIN board.account a ON a.id = p.authorid
		ORDER BY p.createdat DESC`

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_post_repo_list_failed: %w", err)
	}
	defer rows.Close()

	summaries := make([]Summary, 0)
	for rows.Next() {
		var summary Summary
		if err := rows.Scan(
			&summary.ID,
			&summary.Author,
			&summary.Title,
			&summary.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres_post_repo_scan_failed: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_post_repo_rows_failed: %w", err)
	}

	return summaries, nil
}

// FindByID retrieves a single post joined with its author profile.
//
// # Returns
//
// Returns [*Post] if found, or [apperr.NotFound] if no post exists.
func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*Post, error) {
	const query = `
		SELECT p.id, p.authorid, a.nickname, p.title, p.content,
		       COALESCE(p.passwordhash, ''), p.createdat, p.updatedat
		FROM board.post p
		JOIN board.account a ON a.id = p.authorid
		WHERE p.id = $1`

	post := &Post{}
	err := repository.pool.QueryRow(ctx, query, id).Scan(
		&post.ID,
		&post.AuthorID,
		&post.Author,
		&post.Title,
		&post.Content,
		&post.secretHash,
		&post.CreatedAt,
		&post.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Post")
		}
		return nil, fmt.Errorf("postgres_post_repo_find_failed: %w", err)
	}

	return post, nil
}

// Update persists changes to a post's title and content.
func (repository *PostgresRepository) Update(ctx context.Context, post *Post) error {
	const query = `
		UPDATE board.post
		SET title = $2, content = $3, updatedat = $4
		WHERE id = $1`

	post.UpdatedAt = time.Now()
	tag, err := repository.pool.Exec(ctx, query,
		post.ID,
		post.Title,
		post.Content,
		post.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_post_repo_update_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Post")
	}

	return nil
}

// Delete permanently removes a post. The ON DELETE CASCADE constraint on
// board.comment removes its comments in the same statement.
func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	const query = "DELETE FROM board.post WHERE id = $1"

	tag, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("postgres_post_repo_delete_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Post")
	}

	return nil
}

// Exists reports whether a post with the given ID exists.
func (repository *PostgresRepository) Exists(ctx context.Context, id string) (bool, error) {
	const query = "SELECT EXISTS (SELECT 1 FROM board.post WHERE id = $1)"

	var exists bool
	if err := repository.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres_post_repo_exists_failed: %w", err)
	}

	return exists, nil
}
