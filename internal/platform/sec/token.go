// Copyright (c) 2026 Openboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, Token Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via narrow interfaces.
package sec

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// # Verification Failures

// Verification failures are typed so that the session middleware can answer
// with a failure-kind-specific message.
var (
	// ErrTokenMalformed indicates the credential could not be parsed at all.
	ErrTokenMalformed = errors.New("sec: token is malformed")

	// ErrTokenExpired indicates the validity window has elapsed.
	ErrTokenExpired = errors.New("sec: token has expired")

	// ErrTokenTampered indicates the signature does not match the payload.
	ErrTokenTampered = errors.New("sec: token signature is invalid")
)

// TokenCodec issues and verifies HS256-signed bearer tokens.
//
// The signing secret is process-wide configuration injected at construction —
// never a package-level global — so tests can run multiple codecs with
// different secrets side by side.
type TokenCodec struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenCodec creates a TokenCodec.
//
// # Parameters
//   - secret: The symmetric HMAC signing key.
//   - issuer: The 'iss' claim stamped into every token.
//   - ttl: Validity window for issued tokens. Zero disables expiry.
func NewTokenCodec(secret, issuer string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// Issue creates a signed token whose subject is the given account ID.
//
// The token embeds the subject and issued-at timestamp; it is never persisted
// server-side and acts as a pure bearer capability.
func (codec *TokenCodec) Issue(subjectID string) (string, error) {
	currentTime := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:  subjectID,
		Issuer:   codec.issuer,
		IssuedAt: jwt.NewNumericDate(currentTime),
	}
	if codec.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(currentTime.Add(codec.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(codec.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature and validity of a token string and returns the
// subject account ID it was issued for.
//
// # Failure Modes
//   - [ErrTokenExpired] when the validity window has elapsed.
//   - [ErrTokenTampered] when the signature check fails.
//   - [ErrTokenMalformed] for anything that cannot be parsed.
func (codec *TokenCodec) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
			}
			return codec.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrTokenTampered
		default:
			return "", ErrTokenMalformed
		}
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrTokenMalformed
	}

	return claims.Subject, nil
}

// HashToken returns the hex-encoded SHA-256 digest of a token.
//
// Raw credentials are never used as storage keys; only their digest is.
func HashToken(token string) string {
	digest := sha256.Sum256([]byte(token))
	return hex.EncodeToString(digest[:])
}
