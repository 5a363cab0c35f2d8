// Copyright (c) 2026 Openboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/buivan/openboard/internal/board/ownership"
	requestutil "github.com/buivan/openboard/internal/platform/request"
	"github.com/buivan/openboard/internal/platform/respond"
)

// Handler implements the post HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the post endpoints on the given router.
//
// # Endpoints
//   - GET    /posts          : Lists all posts, newest first (public).
//   - GET    /posts/{postId} : Reads a single post (public).
//   - POST   /posts          : Creates a post (authenticated).
//   - PUT    /posts/{postId} : Edits a post (authenticated, owner only).
//   - DELETE /posts/{postId} : Removes a post (authenticated, owner only).
func (handler *Handler) RegisterRoutes(router chi.Router, authenticate func(http.Handler) http.Handler) {
	router.Get("/posts", handler.list)
	router.Get("/posts/{postId}", handler.get)

	router.Group(func(protected chi.Router) {
		protected.Use(authenticate)
		protected.Post("/posts", handler.create)
		protected.Put("/posts/{postId}", handler.update)
		protected.Delete("/posts/{postId}", handler.remove)
	})
}

// postRequest represents the JSON payload for creating or editing a post.
type postRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// create handles POST /posts requests.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	actor, err := requestutil.RequiredActor(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input postRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	_, err = handler.service.Create(request.Context(), CreateInput{
		AuthorID: actor.ID,
		Title:    input.Title,
		Content:  input.Content,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, http.StatusCreated, "Successfully created.")
}

// list handles GET /posts requests.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	summaries, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Data(writer, http.StatusOK, summaries)
}

// get handles GET /posts/{postId} requests.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	postID := requestutil.Param(request, "postId")

	found, err := handler.service.Get(request.Context(), postID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Data(writer, http.StatusOK, found)
}

// update handles PUT /posts/{postId} requests.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	actor, err := requestutil.RequiredActor(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input postRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	_, err = handler.service.Update(request.Context(),
		ownership.Claim{SubjectID: actor.ID},
		UpdateInput{
			ID:      requestutil.Param(request, "postId"),
			Title:   input.Title,
			Content: input.Content,
		},
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, http.StatusOK, "Successfully updated.")
}

// remove handles DELETE /posts/{postId} requests.
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	actor, err := requestutil.RequiredActor(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	err = handler.service.Delete(request.Context(),
		ownership.Claim{SubjectID: actor.ID},
		requestutil.Param(request, "postId"),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, http.StatusOK, "Successfully deleted.")
}
