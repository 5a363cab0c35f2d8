// Copyright (c) 2026 Openboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"

	"github.com/buivan/openboard/internal/board/ownership"
	"github.com/buivan/openboard/internal/platform/apperr"
	"github.com/buivan/openboard/internal/platform/validate"
	"github.com/buivan/openboard/pkg/uuid"
)

// Service implements the comment use cases.
type Service struct {
	repository Repository
	posts      PostChecker
	guard      ownership.Policy
}

// NewService constructs a new [Service] with its dependencies.
func NewService(repository Repository, posts PostChecker, guard ownership.Policy) *Service {
	return &Service{
		repository: repository,
		posts:      posts,
		guard:      guard,
	}
}

// CreateInput holds the data required to comment on a post.
type CreateInput struct {
	PostID   string
	AuthorID string
	Body     string
}

// Create validates and persists a new comment on an existing post.
//
// The parent post is checked explicitly so a comment on a missing post
// answers 404 rather than surfacing a foreign key error.
func (service *Service) Create(ctx context.Context, input CreateInput) (*Comment, error) {
	// ── 1. Validation ─────────────────────────────────────────────────────

	validator := &validate.Validator{}
	validator.
		Required("comment", input.Body).
		MaxLen("comment", input.Body, BodyMaxLen)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// ── 2. Parent Existence ───────────────────────────────────────────────

	exists, err := service.posts.Exists(ctx, input.PostID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Post")
	}

	// ── 3. Persistence ────────────────────────────────────────────────────

	comment := &Comment{
		ID:       uuid.New(),
		PostID:   input.PostID,
		AuthorID: input.AuthorID,
		Body:     input.Body,
	}

	if err := service.repository.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// ListForPost returns all comments on a post, newest first.
//
// An empty thread answers [apperr.NotFound]: board clients treat "no
// comments yet" as a 404 and render their own placeholder.
func (service *Service) ListForPost(ctx context.Context, postID string) ([]Comment, error) {
	exists, err := service.posts.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Post")
	}

	comments, err := service.repository.ListForPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if len(comments) == 0 {
		return nil, apperr.NotFound("Comments")
	}

	return comments, nil
}

// UpdateInput holds the data for an owner-guarded comment edit.
type UpdateInput struct {
	ID   string
	Body string
}

// Update edits a comment after verifying ownership. Existence is checked
// before ownership, so a missing comment answers 404 to anyone.
func (service *Service) Update(ctx context.Context, claim ownership.Claim, input UpdateInput) (*Comment, error) {
	comment, err := service.repository.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if err := service.guard.Authorize(claim, comment); err != nil {
		return nil, err
	}

	validator := &validate.Validator{}
	validator.
		Required("comment", input.Body).
		MaxLen("comment", input.Body, BodyMaxLen)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	comment.Body = input.Body

	if err := service.repository.Update(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// Delete removes a comment after verifying ownership.
func (service *Service) Delete(ctx context.Context, claim ownership.Claim, id string) error {
	comment, err := service.repository.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := service.guard.Authorize(claim, comment); err != nil {
		return err
	}

	return service.repository.Delete(ctx, id)
}
