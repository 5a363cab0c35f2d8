// Copyright (c) 2026 Openboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/buivan/openboard/internal/board/ownership"
	requestutil "github.com/buivan/openboard/internal/platform/request"
	"github.com/buivan/openboard/internal/platform/respond"
)

// Handler implements the comment HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// threadEnvelope wraps a post's comment thread.
//
// The key is 'comments', not 'data' — board clients parse the thread
// endpoint with its own envelope.
type threadEnvelope struct {
	Comments []Comment `json:"comments"`
}

// RegisterRoutes mounts the comment endpoints on the given router.
//
// # Endpoints
//   - GET    /posts/{postId}/comments             : Lists a post's thread (public).
//   - POST   /posts/{postId}/comments             : Adds a comment (authenticated).
//   - PUT    /posts/{postId}/comments/{commentId} : Edits a comment (authenticated, owner only).
//   - DELETE /posts/{postId}/comments/{commentId} : Removes a comment (authenticated, owner only).
func (handler *Handler) RegisterRoutes(router chi.Router, authenticate func(http.Handler) http.Handler) {
	router.Get("/posts/{postId}/comments", handler.list)

	router.Group(func(protected chi.Router) {
		protected.Use(authenticate)
		protected.Post("/posts/{postId}/comments", handler.create)
		protected.Put("/posts/{postId}/comments/{commentId}", handler.update)
		protected.Delete("/posts/{postId}/comments/{commentId}", handler.remove)
	})
}

// commentRequest represents the JSON payload for adding or editing a comment.
type commentRequest struct {
	Comment string `json:"comment"`
}

// create handles POST /posts/{postId}/comments requests.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	actor, err := requestutil.RequiredActor(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input commentRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	_, err = handler.service.Create(request.Context(), CreateInput{
		PostID:   requestutil.Param(request, "postId"),
		AuthorID: actor.ID,
		Body:     input.Comment,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, http.StatusCreated, "Successfully created.")
}

// list handles GET /posts/{postId}/comments requests.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	comments, err := handler.service.ListForPost(request.Context(), requestutil.Param(request, "postId"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, threadEnvelope{Comments: comments})
}

// update handles PUT /posts/{postId}/comments/{commentId} requests.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	actor, err := requestutil.RequiredActor(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input commentRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	_, err = handler.service.Update(request.Context(),
		ownership.Claim{SubjectID: actor.ID},
		UpdateInput{
			ID:   requestutil.Param(request, "commentId"),
			Body: input.Comment,
		},
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, http.StatusOK, "Successfully updated.")
}

// remove handles DELETE /posts/{postId}/comments/{commentId} requests.
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	actor, err := requestutil.RequiredActor(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	err = handler.service.Delete(request.Context(),
		ownership.Claim{SubjectID: actor.ID},
		requestutil.Param(request, "commentId"),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, http.StatusOK, "Successfully deleted.")
}
