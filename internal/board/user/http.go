// Copyright (c) 2026 Openboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/buivan/openboard/internal/platform/constants"
	"github.com/buivan/openboard/internal/platform/ctxutil"
	"github.com/buivan/openboard/internal/platform/middleware"
	requestutil "github.com/buivan/openboard/internal/platform/request"
	"github.com/buivan/openboard/internal/platform/respond"
)

// Handler implements the member account HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the account endpoints on the given router.
//
// # Endpoints
//   - POST /signup : Creates a new member account.
//   - POST /login  : Authenticates and issues a bearer credential.
//   - POST /logout : Revokes the presented credential (authenticated).
func (handler *Handler) RegisterRoutes(router chi.Router, authenticate func(http.Handler) http.Handler) {
	router.Post("/signup", handler.signup)
	router.Post("/login", handler.login)

	router.Group(func(protected chi.Router) {
		protected.Use(authenticate)
		protected.Post("/logout", handler.logout)
	})
}

// signupRequest represents the JSON payload expected for account creation.
type signupRequest struct {
	Nickname        string `json:"nickname"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm"`
}

// signup handles POST /signup requests.
//
// # Returns
//   - Writes HTTP 201 Created with an acknowledgement message.
//   - Writes HTTP 400 Bad Request if policy validation fails.
//   - Writes HTTP 409 Conflict if the nickname is taken.
func (handler *Handler) signup(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input signupRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Application Execution ──────────────────────────────────────────

	// Policy validation (length, character set, confirmation) lives in the
	// service so every caller gets the same rules.
	_, err := handler.service.Signup(request.Context(), SignupInput{
		Nickname:        input.Nickname,
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Presentation Output ────────────────────────────────────────────

	respond.Message(writer, http.StatusCreated, "Successfully signed up.")
}

// loginRequest represents the JSON payload expected for authentication.
type loginRequest struct {
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

// loginResponse carries the issued credential.
type loginResponse struct {
	Token string `json:"token"`
}

// login handles POST /login requests.
//
// # Returns
//   - Writes HTTP 200 OK with the token, and mirrors it into the legacy
//     'authorization' cookie as "Bearer <token>".
//   - Writes HTTP 412 Precondition Failed for an unknown nickname.
//   - Writes HTTP 400 Bad Request for a wrong password.
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Application Execution ──────────────────────────────────────────

	token, _, err := handler.service.Login(request.Context(), LoginInput{
		Nickname: input.Nickname,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Presentation Output ────────────────────────────────────────────

	// Browser clients read the cookie, API clients read the body. The cookie
	// stores the full scheme-prefixed value; Go quotes it because of the
	// embedded space, and unquotes it transparently on the way back in.
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.CredentialCookieName,
		Value:    constants.BearerScheme + " " + token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	respond.JSON(writer, http.StatusOK, loginResponse{Token: token})
}

// logout handles POST /logout requests.
//
// # Returns
//   - Writes HTTP 200 OK with an acknowledgement message and clears the
//     credential cookie.
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	// The session middleware stashed the raw credential during resolution.
	token := ctxutil.GetCredential(request.Context())

	if err := handler.service.Logout(request.Context(), token); err != nil {
		respond.Error(writer, request, err)
		return
	}

	middleware.ClearCredentialCookie(writer)
	respond.Message(writer, http.StatusOK, "Successfully logged out.")
}
