// Copyright (c) 2026 Openboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buivan/openboard/internal/platform/ctxutil"
	"github.com/buivan/openboard/internal/platform/middleware"
	"github.com/buivan/openboard/internal/platform/sec"
)

// fakeVerifier maps token strings to canned outcomes.
type fakeVerifier struct {
	subjects map[string]string
	errs     map[string]error
}

func (v *fakeVerifier) Verify(tokenString string) (string, error) {
	if err, ok := v.errs[tokenString]; ok {
		return "", err
	}
	if subject, ok := v.subjects[tokenString]; ok {
		return subject, nil
	}
	return "", sec.ErrTokenMalformed
}

// fakeDirectory resolves known subjects.
type fakeDirectory struct {
	actors map[string]*sec.Actor
}

func (d *fakeDirectory) FindActor(_ context.Context, id string) (*sec.Actor, error) {
	if actor, ok := d.actors[id]; ok {
		return actor, nil
	}
	return nil, assert.AnError
}

// fakeDenylist marks specific tokens as revoked.
type fakeDenylist struct {
	revoked map[string]bool
}

func (d *fakeDenylist) IsRevoked(_ context.Context, token string) (bool, error) {
	return d.revoked[token], nil
}

// newAuthHarness builds the middleware around a downstream handler that
// records the resolved identity.
func newAuthHarness() (http.Handler, *sec.Actor, *string) {
	verifier := &fakeVerifier{
		subjects: map[string]string{
			"good-token":     "user-1",
			"orphan-token":   "user-gone",
			"revoked-token":  "user-1",
			"expired-token":  "",
			"tampered-token": "",
		},
		errs: map[string]error{
			"expired-token":  sec.ErrTokenExpired,
			"tampered-token": sec.ErrTokenTampered,
		},
	}
	directory := &fakeDirectory{
		actors: map[string]*sec.Actor{
			"user-1": {ID: "user-1", Nickname: "alice"},
		},
	}
	denylist := &fakeDenylist{
		revoked: map[string]bool{"revoked-token": true},
	}

	var seenActor sec.Actor
	var seenCredential string
	downstream := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if actor := ctxutil.GetActor(request.Context()); actor != nil {
			seenActor = *actor
		}
		seenCredential = ctxutil.GetCredential(request.Context())
		writer.WriteHeader(http.StatusOK)
	})

	handler := middleware.Authenticate(verifier, directory, denylist)(downstream)
	return handler, &seenActor, &seenCredential
}

// doAuth performs a request with the given Authorization header.
func doAuth(t *testing.T, handler http.Handler, header string) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		request.Header.Set("Authorization", header)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

// responseMessage extracts the message field of an error envelope.
func responseMessage(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope.Message
}

/*
TestAuthenticate_Success verifies the happy path injects the identity and
the raw credential into the request context.
*/
func TestAuthenticate_Success(t *testing.T) {
	handler, seenActor, seenCredential := newAuthHarness()

	recorder := doAuth(t, handler, "Bearer good-token")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "user-1", seenActor.ID)
	assert.Equal(t, "alice", seenActor.Nickname)
	assert.Equal(t, "good-token", *seenCredential)
}

/*
TestAuthenticate_CookieFallback verifies the legacy 'authorization' cookie
is accepted when the header is absent.
*/
func TestAuthenticate_CookieFallback(t *testing.T) {
	handler, seenActor, _ := newAuthHarness()

	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.AddCookie(&http.Cookie{Name: "authorization", Value: "Bearer good-token"})
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "user-1", seenActor.ID)
}

/*
TestAuthenticate_Failures verifies each failure kind answers 401 with its
distinct message and clears the credential cookie.
*/
func TestAuthenticate_Failures(t *testing.T) {
	cases := []struct {
		name    string
		header  string
		message string
	}{
		{"missing credential", "", "Authentication token is missing."},
		{"wrong scheme", "Basic good-token", "Token type does not match."},
		{"no scheme", "good-token", "Token type does not match."},
		{"expired", "Bearer expired-token", "Token has expired."},
		{"tampered", "Bearer tampered-token", "Token has been tampered with."},
		{"malformed", "Bearer garbage", "Token is malformed."},
		{"revoked", "Bearer revoked-token", "Token has been revoked."},
		{"deleted account", "Bearer orphan-token", "User no longer exists."},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			handler, _, _ := newAuthHarness()

			recorder := doAuth(t, handler, testCase.header)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.Equal(t, testCase.message, responseMessage(t, recorder))

			// The credential cookie must be expired on every rejection.
			cookies := recorder.Result().Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, "authorization", cookies[0].Name)
			assert.Equal(t, -1, cookies[0].MaxAge)
		})
	}
}
