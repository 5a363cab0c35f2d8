// Copyright (c) 2026 Openboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import (
	"context"
	"time"
)

// Repository defines the persistence contract for member accounts.
//
// Implementations map storage-level failures to [apperr.AppError] values so
// the service layer never sees driver errors.
type Repository interface {
	// Create persists a brand new account.
	Create(ctx context.Context, user *User) error

	// FindByNickname retrieves an account by its unique nickname.
	FindByNickname(ctx context.Context, nickname string) (*User, error)

	// FindByID retrieves an account by its primary key.
	FindByID(ctx context.Context, id string) (*User, error)
}

// Denylist tracks credentials revoked before their natural expiry.
//
// Entries carry a TTL matching the credential's remaining lifetime, so the
// store cleans itself up without a background sweeper.
type Denylist interface {
	// Revoke marks a credential as unusable for the given duration.
	Revoke(ctx context.Context, token string, ttl time.Duration) error

	// IsRevoked reports whether a credential has been revoked.
	IsRevoked(ctx context.Context, token string) (bool, error)
}
