// Copyright (c) 2026 Openboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post_test

import (
	"context"
	"net/http"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buivan/openboard/internal/board/ownership"
	"github.com/buivan/openboard/internal/board/post"
	"github.com/buivan/openboard/internal/platform/apperr"
)

// memoryRepository is an in-memory [post.Repository] for tests.
type memoryRepository struct {
	posts map[string]*post.Post
	clock time.Time
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		posts: make(map[string]*post.Post),
		clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *memoryRepository) Create(_ context.Context, p *post.Post) error {
	// Monotonic timestamps so list ordering is deterministic.
	r.clock = r.clock.Add(time.Minute)
	p.CreatedAt = r.clock
	p.UpdatedAt = r.clock
	clone := *p
	r.posts[p.ID] = &clone
	return nil
}

func (r *memoryRepository) List(_ context.Context) ([]post.Summary, error) {
	summaries := make([]post.Summary, 0, len(r.posts))
	for _, p := range r.posts {
		summaries = append(summaries, p.Summarize())
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})
	return summaries, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (*post.Post, error) {
	if found, ok := r.posts[id]; ok {
		clone := *found
		return &clone, nil
	}
	return nil, apperr.NotFound("Post")
}

func (r *memoryRepository) Update(_ context.Context, p *post.Post) error {
	stored, ok := r.posts[p.ID]
	if !ok {
		return apperr.NotFound("Post")
	}
	stored.Title = p.Title
	stored.Content = p.Content
	stored.UpdatedAt = time.Now()
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return apperr.NotFound("Post")
	}
	delete(r.posts, id)
	return nil
}

func (r *memoryRepository) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.posts[id]
	return ok, nil
}

func newTestService() (*post.Service, *memoryRepository) {
	repository := newMemoryRepository()
	return post.NewService(repository, ownership.IdentityMatch{}), repository
}

/*
TestPostCreate verifies authoring and input validation.
*/
func TestPostCreate(t *testing.T) {
	service, _ := newTestService()

	// 1. Valid input persists
	created, err := service.Create(context.Background(), post.CreateInput{
		AuthorID: "user-1", Title: "Hello", Content: "First post",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "user-1", created.OwnerID())

	// 2. Missing title fails validation
	_, err = service.Create(context.Background(), post.CreateInput{
		AuthorID: "user-1", Content: "no title",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus)

	// 3. Missing content fails validation
	_, err = service.Create(context.Background(), post.CreateInput{
		AuthorID: "user-1", Title: "no content",
	})
	assert.Error(t, err)
}

/*
TestPostList verifies newest-first ordering and the content-free list shape.
*/
func TestPostList(t *testing.T) {
	service, _ := newTestService()

	for _, title := range []string{"first", "second", "third"} {
		_, err := service.Create(context.Background(), post.CreateInput{
			AuthorID: "user-1", Title: title, Content: "body of " + title,
		})
		require.NoError(t, err)
	}

	summaries, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	// Newest first.
	assert.Equal(t, "third", summaries[0].Title)
	assert.Equal(t, "second", summaries[1].Title)
	assert.Equal(t, "first", summaries[2].Title)
}

/*
TestPostUpdate_Owner verifies the owner can edit their post.
*/
func TestPostUpdate_Owner(t *testing.T) {
	service, _ := newTestService()

	created, err := service.Create(context.Background(), post.CreateInput{
		AuthorID: "user-1", Title: "Hello", Content: "First post",
	})
	require.NoError(t, err)

	updated, err := service.Update(context.Background(),
		ownership.Claim{SubjectID: "user-1"},
		post.UpdateInput{ID: created.ID, Title: "Hello v2", Content: "Edited"},
	)
	require.NoError(t, err)
	assert.Equal(t, "Hello v2", updated.Title)
	assert.Equal(t, "Edited", updated.Content)
}

/*
TestPostUpdate_Stranger verifies a non-owner is denied with the legacy 401.
*/
func TestPostUpdate_Stranger(t *testing.T) {
	service, _ := newTestService()

	created, err := service.Create(context.Background(), post.CreateInput{
		AuthorID: "user-1", Title: "Hello", Content: "First post",
	})
	require.NoError(t, err)

	_, err = service.Update(context.Background(),
		ownership.Claim{SubjectID: "user-2"},
		post.UpdateInput{ID: created.ID, Title: "Hijack", Content: "nope"},
	)
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPStatus)
	assert.Equal(t, "FORBIDDEN", appErr.Code)
}

/*
TestPostUpdate_Missing verifies a missing post answers 404 before any
ownership decision, even for a stranger.
*/
func TestPostUpdate_Missing(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Update(context.Background(),
		ownership.Claim{SubjectID: "user-2"},
		post.UpdateInput{ID: "missing", Title: "x", Content: "y"},
	)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)
}

/*
TestPostDelete verifies owner-guarded removal.
*/
func TestPostDelete(t *testing.T) {
	service, repository := newTestService()

	created, err := service.Create(context.Background(), post.CreateInput{
		AuthorID: "user-1", Title: "Hello", Content: "First post",
	})
	require.NoError(t, err)

	// 1. Stranger denied
	err = service.Delete(context.Background(), ownership.Claim{SubjectID: "user-2"}, created.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperr.As(err).HTTPStatus)

	// 2. Owner succeeds
	err = service.Delete(context.Background(), ownership.Claim{SubjectID: "user-1"}, created.ID)
	require.NoError(t, err)

	exists, err := repository.Exists(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	// 3. Second delete answers 404
	err = service.Delete(context.Background(), ownership.Claim{SubjectID: "user-1"}, created.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)
}
