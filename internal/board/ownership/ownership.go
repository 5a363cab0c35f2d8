// Copyright (c) 2026 Openboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ownership implements the authorization guard for resource mutations.
//
// # Architecture
//
// Authorization is deliberately separated from authentication. The session
// middleware answers "who is calling?"; this package answers "may this caller
// mutate this resource?". Services consult a [Policy] before every update or
// delete, and the policy alone decides.
//
// Two policies exist because the board changed its ownership model over time:
//
//   - [IdentityMatch]: The caller's resolved account ID must equal the
//     resource owner's ID. This is the current model for all resources.
//   - [SecretMatch]: The caller proves ownership by presenting the resource's
//     plain-text secret, compared against the stored hash. This is the older
//     password-per-resource model, retained so historical data created under
//     it can still be administered.
package ownership

import (
	"github.com/buivan/openboard/internal/platform/apperr"
	"github.com/buivan/openboard/internal/platform/sec"
)

// Claim carries everything a caller can present to prove ownership.
type Claim struct {
	// SubjectID is the resolved account ID of the caller. Empty for anonymous.
	SubjectID string

	// Secret is the plain-text resource secret, if the caller supplied one.
	// Only consulted by [SecretMatch].
	Secret string
}

// Owned is implemented by any resource that can be authorized against.
type Owned interface {
	// OwnerID returns the account ID the resource belongs to.
	OwnerID() string

	// SecretHash returns the bcrypt hash of the resource secret, or an empty
	// string for resources created under the identity model.
	SecretHash() string
}

// Policy decides whether a claim is sufficient to mutate a resource.
//
// Implementations return nil to allow the mutation, or an [apperr.AppError]
// describing the denial. They never return raw errors.
type Policy interface {
	Authorize(claim Claim, resource Owned) error
}

// # Identity Model

// IdentityMatch authorizes a mutation when the claim subject is the owner.
type IdentityMatch struct{}

// Authorize implements [Policy].
func (IdentityMatch) Authorize(claim Claim, resource Owned) error {
	if claim.SubjectID == "" {
		return apperr.Unauthorized("Authentication required")
	}
	if claim.SubjectID != resource.OwnerID() {
		return apperr.OwnershipDenied("Only the owner can modify this resource.")
	}
	return nil
}

// # Secret Model (legacy)

// SecretMatch authorizes a mutation when the presented secret matches the
// resource's stored hash.
type SecretMatch struct{}

// Authorize implements [Policy].
func (SecretMatch) Authorize(claim Claim, resource Owned) error {
	hash := resource.SecretHash()
	if hash == "" {
		// A resource without a secret cannot be administered under this model.
		return apperr.OwnershipDenied("Password does not match.")
	}
	if !sec.CheckPasswordHash(claim.Secret, hash) {
		return apperr.OwnershipDenied("Password does not match.")
	}
	return nil
}
