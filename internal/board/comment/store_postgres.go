// Copyright (c) 2026 Openboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

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

// Create persists a new comment into the board.comment table.
func (repository *PostgresRepository) Create(ctx context.Context, comment *Comment) error {
	const query = `
		INSERT INTO board.comment (
			id, postid, authorid, body, passwordhash, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	now := time.Now()
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = now
	}
	comment.UpdatedAt = now

	_, err := repository.pool.Exec(ctx, query,
		comment.ID,
		comment.PostID,
		comment.AuthorID,
		comment.Body,
		comment.secretHash,
		comment.CreatedAt,
		comment.UpdatedAt,
	)

	if err != nil {
		// A foreign key violation means the parent post vanished between the
		// existence check and the insert.
		return dberr.Wrap(err, "comment_create")
	}

	return nil
}

// ListForPost returns all comments on a post, newest first, joined with the
// author's nickname.
func (repository *PostgresRepository) ListForPost(ctx context.Context, postID string) ([]Comment, error) {
	const query = `
		SELECT c.id, c.postid, c.authorid, a.nickname, c.body,
		       c.createdat, c.updatedat
		FROM board.comment c
		JOIN board.account a ON a.id = c.authorid
		WHERE c.postid = $1
		ORDER BY c.createdat DESC`

	rows, err := repository.pool.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("postgres_comment_repo_list_failed: %w", err)
	}
	defer rows.Close()

	comments := make([]Comment, 0)
	for rows.Next() {
		var comment Comment
		if err := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.AuthorID,
			&comment.Author,
			&comment.Body,
			&comment.CreatedAt,
			&comment.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres_comment_repo_scan_failed: %w", err)
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_comment_repo_rows_failed: %w", err)
	}

	return comments, nil
}

// FindByID retrieves a single comment joined with its author's nickname.
//
// # Returns
//
// Returns [*Comment] if found, or [apperr.NotFound] if no comment exists.
func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*Comment, error) {
	const query = `
		SELECT c.id, c.postid, c.authorid, a.nickname, c.body,
		       COALESCE(c.passwordhash, ''), c.createdat, c.updatedat
		FROM board.comment c
		JOIN board.account a ON a.id = c.authorid
		WHERE c.id = $1`

	comment := &Comment{}
	err := repository.pool.QueryRow(ctx, query, id).Scan(
		&comment.ID,
		&comment.PostID,
		&comment.AuthorID,
		&comment.Author,
		&comment.Body,
		&comment.secretHash,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Comment")
		}
		return nil, fmt.Errorf("postgres_comment_repo_find_failed: %w", err)
	}

	return comment, nil
}

// Update persists changes to a comment's body.
func (repository *PostgresRepository) Update(ctx context.Context, comment *Comment) error {
	const query = `
		UPDATE board.comment
		SET body = $2, updatedat = $3
		WHERE id = $1`

	comment.UpdatedAt = time.Now()
	tag, err := repository.pool.Exec(ctx, query,
		comment.ID,
		comment.Body,
		comment.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_comment_repo_update_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Comment")
	}

	return nil
}

// Delete permanently removes a comment.
func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	const query = "DELETE FROM board.comment WHERE id = $1"

	tag, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("postgres_comment_repo_delete_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Comment")
	}

	return nil
}
