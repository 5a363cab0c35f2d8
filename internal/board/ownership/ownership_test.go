// Copyright (c) 2026 Openboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ownership_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buivan/openboard/internal/board/ownership"
	"github.com/buivan/openboard/internal/platform/apperr"
	"github.com/buivan/openboard/internal/platform/sec"
)

// fakeResource implements [ownership.Owned] for tests.
type fakeResource struct {
	ownerID    string
	secretHash string
}

func (r fakeResource) OwnerID() string    { return r.ownerID }
func (r fakeResource) SecretHash() string { return r.secretHash }

/*
TestIdentityMatch_Owner verifies the owner may mutate their resource.
*/
func TestIdentityMatch_Owner(t *testing.T) {
	policy := ownership.IdentityMatch{}
	resource := fakeResource{ownerID: "user-1"}

	err := policy.Authorize(ownership.Claim{SubjectID: "user-1"}, resource)
	assert.NoError(t, err)
}

/*
TestIdentityMatch_Stranger verifies a non-owner is denied with the legacy
401 status and FORBIDDEN code.
*/
func TestIdentityMatch_Stranger(t *testing.T) {
	policy := ownership.IdentityMatch{}
	resource := fakeResource{ownerID: "user-1"}

	err := policy.Authorize(ownership.Claim{SubjectID: "user-2"}, resource)
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "FORBIDDEN", appErr.Code)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPStatus)
}

/*
TestIdentityMatch_Anonymous verifies an empty subject is rejected outright.
*/
func TestIdentityMatch_Anonymous(t *testing.T) {
	policy := ownership.IdentityMatch{}
	resource := fakeResource{ownerID: "user-1"}

	err := policy.Authorize(ownership.Claim{}, resource)
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}

/*
TestSecretMatch verifies the legacy password-per-resource model.
*/
func TestSecretMatch(t *testing.T) {
	hash, err := sec.HashPassword("resource-pass")
	require.NoError(t, err)

	policy := ownership.SecretMatch{}

	// 1. Correct secret is accepted regardless of identity
	err = policy.Authorize(ownership.Claim{Secret: "resource-pass"}, fakeResource{secretHash: hash})
	assert.NoError(t, err)

	// 2. Wrong secret is denied
	err = policy.Authorize(ownership.Claim{Secret: "wrong"}, fakeResource{secretHash: hash})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperr.As(err).HTTPStatus)

	// 3. A resource without a stored secret cannot pass this model
	err = policy.Authorize(ownership.Claim{Secret: "resource-pass"}, fakeResource{})
	assert.Error(t, err)
}
