// Copyright (c) 2026 Openboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buivan/openboard/internal/board/comment"
	"github.com/buivan/openboard/internal/board/ownership"
	"github.com/buivan/openboard/internal/platform/apperr"
)

// memoryRepository is an in-memory [comment.Repository] for tests.
type memoryRepository struct {
	comments map[string]*comment.Comment
	order    []string
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{comments: make(map[string]*comment.Comment)}
}

func (r *memoryRepository) Create(_ context.Context, c *comment.Comment) error {
	clone := *c
	r.comments[c.ID] = &clone
	r.order = append(r.order, c.ID)
	return nil
}

func (r *memoryRepository) ListForPost(_ context.Context, postID string) ([]comment.Comment, error) {
	// Newest first, matching the DESC ordering of the SQL implementation.
	result := make([]comment.Comment, 0)
	for i := len(r.order) - 1; i >= 0; i-- {
		if c := r.comments[r.order[i]]; c != nil && c.PostID == postID {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (*comment.Comment, error) {
	if found, ok := r.comments[id]; ok {
		clone := *found
		return &clone, nil
	}
	return nil, apperr.NotFound("Comment")
}

func (r *memoryRepository) Update(_ context.Context, c *comment.Comment) error {
	stored, ok := r.comments[c.ID]
	if !ok {
		return apperr.NotFound("Comment")
	}
	stored.Body = c.Body
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.comments[id]; !ok {
		return apperr.NotFound("Comment")
	}
	delete(r.comments, id)
	return nil
}

// fakePosts implements [comment.PostChecker] over a fixed set of post IDs.
type fakePosts struct {
	existing map[string]bool
}

func (p *fakePosts) Exists(_ context.Context, id string) (bool, error) {
	return p.existing[id], nil
}

func newTestService() (*comment.Service, *memoryRepository) {
	repository := newMemoryRepository()
	posts := &fakePosts{existing: map[string]bool{"post-1": true}}
	return comment.NewService(repository, posts, ownership.IdentityMatch{}), repository
}

/*
TestCommentCreate verifies commenting on an existing post and the 404 for a
missing parent.
*/
func TestCommentCreate(t *testing.T) {
	service, _ := newTestService()

	// 1. Valid comment persists
	created, err := service.Create(context.Background(), comment.CreateInput{
		PostID: "post-1", AuthorID: "user-1", Body: "Nice post",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "post-1", created.PostID)

	// 2. Missing parent post answers 404
	_, err = service.Create(context.Background(), comment.CreateInput{
		PostID: "missing-post", AuthorID: "user-1", Body: "Into the void",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)

	// 3. Empty body fails validation
	_, err = service.Create(context.Background(), comment.CreateInput{
		PostID: "post-1", AuthorID: "user-1",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus)
}

/*
TestCommentList verifies newest-first ordering and the 404-on-empty contract.
*/
func TestCommentList(t *testing.T) {
	service, _ := newTestService()

	// 1. An empty thread answers 404, not an empty array
	_, err := service.ListForPost(context.Background(), "post-1")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)

	// 2. A missing post also answers 404
	_, err = service.ListForPost(context.Background(), "missing-post")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)

	// 3. Comments come back newest first
	for _, body := range []string{"first", "second", "third"} {
		_, err := service.Create(context.Background(), comment.CreateInput{
			PostID: "post-1", AuthorID: "user-1", Body: body,
		})
		require.NoError(t, err)
	}

	comments, err := service.ListForPost(context.Background(), "post-1")
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "third", comments[0].Body)
	assert.Equal(t, "first", comments[2].Body)
}

/*
TestCommentUpdate verifies owner-guarded editing with existence checked
before ownership.
*/
func TestCommentUpdate(t *testing.T) {
	service, _ := newTestService()

	created, err := service.Create(context.Background(), comment.CreateInput{
		PostID: "post-1", AuthorID: "user-1", Body: "Original",
	})
	require.NoError(t, err)

	// 1. Stranger denied with the legacy 401
	_, err = service.Update(context.Background(),
		ownership.Claim{SubjectID: "user-2"},
		comment.UpdateInput{ID: created.ID, Body: "Hijack"},
	)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperr.As(err).HTTPStatus)

	// 2. Missing comment answers 404 even to a stranger
	_, err = service.Update(context.Background(),
		ownership.Claim{SubjectID: "user-2"},
		comment.UpdateInput{ID: "missing", Body: "x"},
	)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)

	// 3. Owner succeeds
	updated, err := service.Update(context.Background(),
		ownership.Claim{SubjectID: "user-1"},
		comment.UpdateInput{ID: created.ID, Body: "Edited"},
	)
	require.NoError(t, err)
	assert.Equal(t, "Edited", updated.Body)
}

/*
TestCommentDelete verifies owner-guarded removal.
*/
func TestCommentDelete(t *testing.T) {
	service, repository := newTestService()

	created, err := service.Create(context.Background(), comment.CreateInput{
		PostID: "post-1", AuthorID: "user-1", Body: "Removable",
	})
	require.NoError(t, err)

	// 1. Stranger denied
	err = service.Delete(context.Background(), ownership.Claim{SubjectID: "user-2"}, created.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperr.As(err).HTTPStatus)

	// 2. Owner succeeds
	err = service.Delete(context.Background(), ownership.Claim{SubjectID: "user-1"}, created.ID)
	require.NoError(t, err)

	_, err = repository.FindByID(context.Background(), created.ID)
	assert.Error(t, err)
}
