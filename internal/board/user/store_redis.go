// Copyright (c) 2026 Openboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/buivan/openboard/internal/platform/constants"
	"github.com/buivan/openboard/internal/platform/sec"
)

// RedisDenylist implements [Denylist] on top of Redis with automatic expiry.
//
// Keys are SHA-256 digests of the raw credential — never the credential
// itself — under the auth:denylist: prefix.
type RedisDenylist struct {
	client *redis.Client
}

// NewRedisDenylist creates the Redis implementation of [Denylist].
func NewRedisDenylist(client *redis.Client) *RedisDenylist {
	return &RedisDenylist{client: client}
}

// Revoke marks a credential as unusable for the given duration.
//
// The TTL should match the credential's full validity window; once the
// credential would have expired on its own, the entry is useless and Redis
// drops it.
func (denylist *RedisDenylist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	key := denylistKey(token)

	if err := denylist.client.Set(ctx, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis_denylist_revoke_failed: %w", err)
	}

	return nil
}

// IsRevoked reports whether a credential has been revoked.
func (denylist *RedisDenylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	key := denylistKey(token)

	err := denylist.client.Get(ctx, key).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis_denylist_check_failed: %w", err)
	}

	return true, nil
}

// denylistKey derives the Redis key for a credential.
func denylistKey(token string) string {
	return constants.RedisPrefixDenylist + sec.HashToken(token)
}
