// Copyright (c) 2026 Openboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package post implements the board post domain: authoring, listing, and
// owner-guarded mutation of posts.
package post

import "time"

// Post represents a single board post.
//
// Author carries the nickname as a bare string under the 'user' key. Board
// clients read it as a literal, not as a nested profile object.
type Post struct {
	ID        string    `json:"postId"`
	AuthorID  string    `json:"-"`
	Author    string    `json:"user"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`

	// secretHash is the bcrypt hash of the legacy per-post password, empty
	// for posts created under the identity ownership model.
	secretHash string
}

// Summary is the list-view shape of a post. Content is omitted to keep the
// board index light.
type Summary struct {
	ID        string    `json:"postId"`
	Author    string    `json:"user"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

// Summarize converts a post to its list-view shape.
func (post *Post) Summarize() Summary {
	return Summary{
		ID:        post.ID,
		Author:    post.Author,
		Title:     post.Title,
		CreatedAt: post.CreatedAt,
	}
}

// # Ownership

// OwnerID returns the account ID the post belongs to.
func (post *Post) OwnerID() string { return post.AuthorID }

// SecretHash returns the legacy per-post password hash, if any.
func (post *Post) SecretHash() string { return post.secretHash }

// Content policy limits.
const (
	TitleMaxLen   = 200
	ContentMaxLen = 10000
)
