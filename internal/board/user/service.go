// Copyright (c) 2026 Openboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/buivan/openboard/internal/platform/apperr"
	"github.com/buivan/openboard/internal/platform/sec"
	"github.com/buivan/openboard/internal/platform/validate"
	"github.com/buivan/openboard/pkg/uuid"
)

// nicknameRegex enforces ASCII letters and digits only.
var nicknameRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// TokenIssuer defines the contract for minting bearer credentials.
type TokenIssuer interface {
	// Issue creates a signed token whose subject is the given account ID.
	Issue(subjectID string) (string, error)
}

// Service implements the member account use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, signup,
// or login logic must be reviewed before merging.
type Service struct {
	repository Repository
	denylist   Denylist
	tokens     TokenIssuer
	tokenTTL   time.Duration
}

// NewService constructs a new [Service] with its dependencies.
func NewService(repository Repository, denylist Denylist, tokens TokenIssuer, tokenTTL time.Duration) *Service {
	return &Service{
		repository: repository,
		denylist:   denylist,
		tokens:     tokens,
		tokenTTL:   tokenTTL,
	}
}

// SignupInput holds the data required to enroll a new member.
type SignupInput struct {
	Nickname        string
	Password        string
	ConfirmPassword string
}

// Signup validates, hashes, and persists a brand new member account.
//
// # Returns
//   - The newly created [*User].
//   - [apperr.ValidationError] if any policy rule fails.
//   - [apperr.Conflict] if the nickname is already registered.
//
// # Business Rules
//   - Nicknames are at least 3 characters, letters and digits only.
//   - Passwords are at least 4 characters and must not contain the nickname.
//   - Password and confirmation must match exactly.
func (service *Service) Signup(ctx context.Context, input SignupInput) (*User, error) {
	// ── 1. Policy Validation ──────────────────────────────────────────────

	validator := &validate.Validator{}
	validator.
		Required("nickname", input.Nickname).
		MinLen("nickname", input.Nickname, NicknameMinLen).
		MaxLen("nickname", input.Nickname, NicknameMaxLen).
		Pattern("nickname", input.Nickname, nicknameRegex, "Only letters and digits are allowed").
		Required("password", input.Password).
		MinLen("password", input.Password, PasswordMinLen).
		NotContains("password", input.Password, input.Nickname, "Password must not contain the nickname").
		Custom("confirm", input.Password != input.ConfirmPassword, "Password confirmation does not match")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// ── 2. Uniqueness Check ───────────────────────────────────────────────

	// Shortcut the common duplicate case; the unique index in board.account
	// remains the authoritative guard against races.
	if _, err := service.repository.FindByNickname(ctx, input.Nickname); err == nil {
		return nil, apperr.Conflict("Nickname is already taken")
	}

	// ── 3. Security ───────────────────────────────────────────────────────

	// Prevent storing plain-text passwords. Default cost balances security
	// and CPU utilization during signup spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("user_service_hash_failed: %w", err)
	}

	// ── 4. Persistence ────────────────────────────────────────────────────

	user := &User{
		ID:           uuid.New(), // Time-sortable ID to prevent PG index fragmentation.
		Nickname:     input.Nickname,
		PasswordHash: hashedPassword,
	}

	if err := service.repository.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Nickname string
	Password string
}

// Login validates member credentials and issues a bearer credential.
//
// # Returns
//   - The signed token string and the authenticated [*User].
//   - [apperr.PreconditionFailed] when the nickname is unknown.
//   - [apperr.ValidationError] when the password does not match.
//
// The two failure modes carry different statuses on purpose: the board's
// clients render a "check your nickname" hint for the first and a generic
// "login failed" for the second, and they key on the status to do it.
func (service *Service) Login(ctx context.Context, input LoginInput) (string, *User, error) {
	// ── 1. Fetch Account ──────────────────────────────────────────────────

	user, err := service.repository.FindByNickname(ctx, input.Nickname)
	if err != nil {
		return "", nil, apperr.PreconditionFailed("Check your nickname or password.")
	}

	// ── 2. Security Verification ──────────────────────────────────────────

	// bcrypt comparison is constant-time against the stored hash.
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return "", nil, apperr.ValidationError("Login failed.")
	}

	// ── 3. Token Issuance ─────────────────────────────────────────────────

	token, err := service.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("user_service_token_issue_failed: %w", err)
	}

	return token, user, nil
}

// Logout revokes the presented credential for the remainder of its lifetime.
//
// The token itself cannot be invalidated — it is a pure bearer capability —
// so the denylist entry blocks it at the session middleware instead. The
// entry's TTL equals the full token lifetime: conservative, but guaranteed
// to outlive any remaining validity window.
func (service *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		// Nothing to revoke; logout is idempotent.
		return nil
	}

	if err := service.denylist.Revoke(ctx, token, service.tokenTTL); err != nil {
		return fmt.Errorf("user_service_logout_failed: %w", err)
	}

	return nil
}

// FindActor resolves an account ID into the identity the session middleware
// attaches to the request context.
func (service *Service) FindActor(ctx context.Context, id string) (*sec.Actor, error) {
	user, err := service.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &sec.Actor{ID: user.ID, Nickname: user.Nickname}, nil
}
