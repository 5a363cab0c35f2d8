// Copyright (c) 2026 Openboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buivan/openboard/internal/platform/apperr"
	"github.com/buivan/openboard/internal/platform/validate"
)

var alnumRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

/*
TestValidator_PassingChain verifies that a fully valid chain returns nil.
*/
func TestValidator_PassingChain(t *testing.T) {
	v := &validate.Validator{}
	err := v.
		Required("nickname", "alice").
		MinLen("nickname", "alice", 3).
		Pattern("nickname", "alice", alnumRegex, "letters and digits only").
		Required("password", "s3cret").
		MinLen("password", "s3cret", 4).
		NotContains("password", "s3cret", "alice", "must not contain nickname").
		Err()

	assert.NoError(t, err)
}

/*
TestValidator_CollectsAllFailures verifies that every failed rule contributes
a field error instead of short-circuiting at the first.
*/
func TestValidator_CollectsAllFailures(t *testing.T) {
	v := &validate.Validator{}
	err := v.
		Required("nickname", "").
		MinLen("password", "ab", 4).
		Custom("confirmPassword", true, "does not match").
		Err()

	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Len(t, appErr.Details, 3)
}

/*
TestValidator_Pattern verifies character set enforcement and the empty-value
skip rule.
*/
func TestValidator_Pattern(t *testing.T) {
	// 1. Violation is reported
	v := &validate.Validator{}
	err := v.Pattern("nickname", "al ice!", alnumRegex, "letters and digits only").Err()
	require.Error(t, err)

	// 2. Empty values are skipped — Required owns the missing-field error
	v = &validate.Validator{}
	err = v.Pattern("nickname", "", alnumRegex, "letters and digits only").Err()
	assert.NoError(t, err)
}

/*
TestValidator_NotContains verifies the forbidden-substring rule.
*/
func TestValidator_NotContains(t *testing.T) {
	// 1. Password embedding the nickname fails
	v := &validate.Validator{}
	err := v.NotContains("password", "xxaliceyy", "alice", "must not contain nickname").Err()
	require.Error(t, err)

	// 2. Disjoint values pass
	v = &validate.Validator{}
	err = v.NotContains("password", "s3cret", "alice", "must not contain nickname").Err()
	assert.NoError(t, err)

	// 3. Blank forbidden string never fails
	v = &validate.Validator{}
	err = v.NotContains("password", "anything", "", "must not contain nickname").Err()
	assert.NoError(t, err)
}

/*
TestValidator_MinMaxLen verifies rune-based length counting.
*/
func TestValidator_MinMaxLen(t *testing.T) {
	v := &validate.Validator{}
	err := v.MinLen("nickname", "ab", 3).Err()
	require.Error(t, err)

	// Multibyte runes count as single characters.
	v = &validate.Validator{}
	err = v.MaxLen("title", "héllo", 5).Err()
	assert.NoError(t, err)
}

/*
TestValidator_UUID verifies UUID format checks.
*/
func TestValidator_UUID(t *testing.T) {
	v := &validate.Validator{}
	err := v.UUID("postId", "0190a6a0-1111-7abc-8def-0123456789ab").Err()
	assert.NoError(t, err)

	v = &validate.Validator{}
	err = v.UUID("postId", "not-a-uuid").Err()
	assert.Error(t, err)
}
