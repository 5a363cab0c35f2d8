// Copyright (c) 2026 Openboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import (
	"context"

	"github.com/buivan/openboard/internal/board/ownership"
	"github.com/buivan/openboard/internal/platform/validate"
	"github.com/buivan/openboard/pkg/uuid"
)

// Service implements the post use cases.
type Service struct {
	repository Repository
	guard      ownership.Policy
}

// NewService constructs a new [Service] with its dependencies.
func NewService(repository Repository, guard ownership.Policy) *Service {
	return &Service{
		repository: repository,
		guard:      guard,
	}
}

// CreateInput holds the data required to author a new post.
type CreateInput struct {
	AuthorID string
	Title    string
	Content  string
}

// Create validates and persists a brand new post.
func (service *Service) Create(ctx context.Context, input CreateInput) (*Post, error) {
	validator := &validate.Validator{}
	validator.
		Required("title", input.Title).
		MaxLen("title", input.Title, TitleMaxLen).
		Required("content", input.Content).
		MaxLen("content", input.Content, ContentMaxLen)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	post := &Post{
		ID:       uuid.New(),
		AuthorID: input.AuthorID,
		Title:    input.Title,
		Content:  input.Content,
	}

	if err := service.repository.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// List returns every post, newest first.
func (service *Service) List(ctx context.Context) ([]Summary, error) {
	return service.repository.List(ctx)
}

// Get retrieves a single post by ID.
func (service *Service) Get(ctx context.Context, id string) (*Post, error) {
	return service.repository.FindByID(ctx, id)
}

// UpdateInput holds the data for an owner-guarded post edit.
type UpdateInput struct {
	ID      string
	Title   string
	Content string
}

// Update edits a post after verifying ownership.
//
// # Flow
//
// Existence is checked before ownership: a missing post answers 404 even to
// a caller who would not have owned it. This ordering is part of the
// observable contract.
func (service *Service) Update(ctx context.Context, claim ownership.Claim, input UpdateInput) (*Post, error) {
	// ── 1. Existence Check ────────────────────────────────────────────────

	post, err := service.repository.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	// ── 2. Ownership Check ────────────────────────────────────────────────

	if err := service.guard.Authorize(claim, post); err != nil {
		return nil, err
	}

	// ── 3. Validation & Persistence ───────────────────────────────────────

	validator := &validate.Validator{}
	validator.
		Required("title", input.Title).
		MaxLen("title", input.Title, TitleMaxLen).
		Required("content", input.Content).
		MaxLen("content", input.Content, ContentMaxLen)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	post.Title = input.Title
	post.Content = input.Content

	if err := service.repository.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// Delete removes a post after verifying ownership. Comments on the post are
// removed by the schema's cascading foreign key.
func (service *Service) Delete(ctx context.Context, claim ownership.Claim, id string) error {
	post, err := service.repository.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := service.guard.Authorize(claim, post); err != nil {
		return err
	}

	return service.repository.Delete(ctx, id)
}

// Exists reports whether a post exists. The comment service uses this to
// refuse comments on missing posts.
func (service *Service) Exists(ctx context.Context, id string) (bool, error) {
	return service.repository.Exists(ctx, id)
}
