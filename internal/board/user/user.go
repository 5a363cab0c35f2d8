// Copyright (c) 2026 Openboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package user implements the member account domain: signup, login, logout,
// and identity resolution for the session middleware.
package user

import "time"

// User represents a registered member account.
//
// # Security
//
// PasswordHash is never serialized. The JSON tags expose only the public
// profile fields used when embedding the author into post responses.
type User struct {
	ID           string    `json:"userId"`
	Nickname     string    `json:"nickname"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// Account policy limits.
const (
	// NicknameMinLen is the minimum nickname length in characters.
	NicknameMinLen = 3

	// NicknameMaxLen caps nickname length for storage sanity.
	NicknameMaxLen = 30

	// PasswordMinLen is the minimum password length in characters.
	PasswordMinLen = 4
)
