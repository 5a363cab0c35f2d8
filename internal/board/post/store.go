// Copyright (c) 2026 Openboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import "context"

// Repository defines the persistence contract for posts.
type Repository interface {
	// Create persists a brand new post.
	Create(ctx context.Context, post *Post) error

	// List returns all posts, newest first, without content.
	List(ctx context.Context) ([]Summary, error)

	// FindByID retrieves a single post with its author profile.
	FindByID(ctx context.Context, id string) (*Post, error)

	// Update persists changes to a post's title and content.
	Update(ctx context.Context, post *Post) error

	// Delete permanently removes a post. Comments follow via the schema's
	// cascading foreign key.
	Delete(ctx context.Context, id string) error

	// Exists reports whether a post with the given ID exists.
	Exists(ctx context.Context, id string) (bool, error)
}
