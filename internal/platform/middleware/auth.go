// Copyright (c) 2026 Openboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/buivan/openboard/internal/platform/apperr"
	"github.com/buivan/openboard/internal/platform/constants"
	"github.com/buivan/openboard/internal/platform/ctxutil"
	"github.com/buivan/openboard/internal/platform/respond"
	"github.com/buivan/openboard/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify bearer tokens.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the token codec
// implementation, allowing us to easily inject mocks during unit testing.
type TokenVerifier interface {
	Verify(tokenString string) (subjectID string, err error)
}

// ActorDirectory resolves a token subject into a live identity.
//
// The lookup doubles as a revocation check: a subject whose account was
// deleted after the token was issued must no longer authenticate.
type ActorDirectory interface {
	FindActor(ctx context.Context, id string) (*sec.Actor, error)
}

// TokenDenylist reports whether a specific credential has been revoked
// (e.g. by logout) before its natural expiry.
type TokenDenylist interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// Authenticate resolves the bearer credential of a protected request.
//
// # Flow
//  1. Extract the credential from the 'Authorization' header or, failing
//     that, the legacy 'authorization' cookie. Both carry "Bearer <token>".
//  2. Verify the token signature and validity window.
//  3. Reject tokens revoked via the denylist.
//  4. Resolve the subject through [ActorDirectory]; a missing account is a
//     hard rejection even if the signature is valid.
//  5. Attach the resolved [*sec.Actor] and the raw token to the context.
//
// On ANY failure the credential cookie is cleared to force re-authentication,
// and the response is a 401 with a failure-kind-specific message. The
// middleware never writes to the credential store.
func Authenticate(verifier TokenVerifier, directory ActorDirectory, denylist TokenDenylist) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// 1. Extract the credential from header or legacy cookie
			credential := extractCredential(request)
			if credential == "" {
				reject(writer, request, apperr.Unauthorized("Authentication token is missing."))
				return
			}

			parts := strings.SplitN(credential, " ", 2)
			if len(parts) != 2 || parts[0] != constants.BearerScheme {
				reject(writer, request, apperr.Unauthorized("Token type does not match."))
				return
			}
			tokenString := parts[1]

			// 2. Verify the token signature and validity window
			subjectID, err := verifier.Verify(tokenString)
			if err != nil {
				reject(writer, request, apperr.Unauthorized(verificationMessage(err)))
				return
			}

			// 3. Reject tokens revoked before natural expiry
			revoked, err := denylist.IsRevoked(request.Context(), tokenString)
			if err != nil {
				respond.Error(writer, request, apperr.Internal(err))
				return
			}
			if revoked {
				reject(writer, request, apperr.Unauthorized("Token has been revoked."))
				return
			}

			// 4. Resolve the subject into a live identity
			actor, err := directory.FindActor(request.Context(), subjectID)
			if err != nil {
				reject(writer, request, apperr.Unauthorized("User no longer exists."))
				return
			}

			// 5. Inject the identity and raw credential into the context
			ctx := ctxutil.WithActor(request.Context(), actor)
			ctx = ctxutil.WithCredential(ctx, tokenString)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// extractCredential returns the raw "Bearer <token>" value from the request.
//
// The Authorization header wins; the legacy cookie slot is the fallback.
func extractCredential(request *http.Request) string {
	if header := request.Header.Get(constants.HeaderAuthorization); header != "" {
		return header
	}

	cookie, err := request.Cookie(constants.CredentialCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// verificationMessage maps a codec failure to its client-facing message.
//
// Distinct messages per failure kind are part of the observable contract:
// clients distinguish an expired session (silent re-login) from a tampered
// one (forced logout with warning).
func verificationMessage(err error) string {
	switch {
	case errors.Is(err, sec.ErrTokenExpired):
		return "Token has expired."
	case errors.Is(err, sec.ErrTokenTampered):
		return "Token has been tampered with."
	default:
		return "Token is malformed."
	}
}

// reject clears the client-held credential and writes the 401 response.
func reject(writer http.ResponseWriter, request *http.Request, err error) {
	ClearCredentialCookie(writer)
	respond.Error(writer, request, err)
}

// ClearCredentialCookie expires the legacy credential cookie on the client.
func ClearCredentialCookie(writer http.ResponseWriter) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.CredentialCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
