// Copyright (c) 2026 Openboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package comment implements the comment domain: commenting on posts,
// listing a post's thread, and owner-guarded mutation.
package comment

import "time"

// Comment represents a single comment on a post.
//
// The JSON shape is flat: the author's ID and nickname sit next to the body
// rather than under a nested object. Board clients render the thread
// directly from this shape.
type Comment struct {
	ID        string    `json:"commentId"`
	PostID    string    `json:"-"`
	AuthorID  string    `json:"userId"`
	Author    string    `json:"nickname"`
	Body      string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`

	// secretHash is the bcrypt hash of the legacy per-comment password,
	// empty for comments created under the identity ownership model.
	secretHash string
}

// # Ownership

// OwnerID returns the account ID the comment belongs to.
func (comment *Comment) OwnerID() string { return comment.AuthorID }

// SecretHash returns the legacy per-comment password hash, if any.
func (comment *Comment) SecretHash() string { return comment.secretHash }

// BodyMaxLen caps comment length.
const BodyMaxLen = 2000
