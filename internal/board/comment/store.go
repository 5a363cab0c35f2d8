// Copyright (c) 2026 Openboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import "context"

// Repository defines the persistence contract for comments.
type Repository interface {
	// Create persists a brand new comment.
	Create(ctx context.Context, comment *Comment) error

	// ListForPost returns all comments on a post, newest first.
	ListForPost(ctx context.Context, postID string) ([]Comment, error)

	// FindByID retrieves a single comment.
	FindByID(ctx context.Context, id string) (*Comment, error)

	// Update persists changes to a comment's body.
	Update(ctx context.Context, comment *Comment) error

	// Delete permanently removes a comment.
	Delete(ctx context.Context, id string) error
}

// PostChecker answers whether a parent post exists. The post domain provides
// the implementation; the interface keeps the packages decoupled.
type PostChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}
