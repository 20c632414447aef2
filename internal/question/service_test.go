package question

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	"github.com/gokatarajesh/trivia-api/internal/db/repository/repotest"
)

func newTestService(store *repotest.MemStore) *Service {
	return NewService(
		repository.NewQuestionRepository(store),
		repository.NewCategoryRepository(store),
		ServiceOptions{PageSize: 10},
	)
}

func ptr[T any](v T) *T { return &v }

func TestServiceList(t *testing.T) {
	svc := newTestService(repotest.Seeded(25))
	ctx := context.Background()

	first, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, first.Questions, 10)
	assert.Equal(t, int64(25), first.Total)
	assert.Len(t, first.Categories, 6)
	assert.Equal(t, "Science", first.Categories[1])
	assert.Equal(t, int32(1), first.Questions[0].ID)

	last, err := svc.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, last.Questions, 5)
	assert.Equal(t, int32(21), last.Questions[0].ID)
	assert.Equal(t, int32(25), last.Questions[4].ID)

	past, err := svc.List(ctx, 4)
	require.NoError(t, err)
	assert.NotNil(t, past.Questions)
	assert.Empty(t, past.Questions)
	assert.Equal(t, int64(25), past.Total)
}

func TestServiceCreateAppearsInList(t *testing.T) {
	svc := newTestService(repotest.Seeded(25))
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateRequest{
		Question:   ptr("Q"),
		Answer:     ptr("A"),
		Category:   ptr(FlexInt(1)),
		Difficulty: ptr(FlexInt(1)),
	})
	require.NoError(t, err)
	assert.Equal(t, int32(26), created.ID)
	assert.Equal(t, Question{ID: 26, Question: "Q", Answer: "A", Category: 1, Difficulty: 1}, created)

	listing, err := svc.List(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(26), listing.Total)
	assert.Contains(t, listing.Questions, created)
}

func TestServiceCreatePassesMissingFieldsToStore(t *testing.T) {
	svc := newTestService(repotest.Seeded(1))

	_, err := svc.Create(context.Background(), CreateRequest{Question: ptr("Q")})
	assert.ErrorIs(t, err, repotest.ErrNullValue)
}

func TestServiceDelete(t *testing.T) {
	svc := newTestService(repotest.Seeded(5))
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, 3))
	assert.ErrorIs(t, svc.Delete(ctx, 3), ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 9999), ErrNotFound)

	_, err := svc.Get(ctx, 3)
	assert.ErrorIs(t, err, ErrNotFound)

	listing, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), listing.Total)
}

func TestServiceSearch(t *testing.T) {
	svc := newTestService(repotest.Seeded(25))
	ctx := context.Background()

	// "Question 1" and "Question 10".."Question 19"
	first, err := svc.Search(ctx, "question 1", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(11), first.Total)
	assert.Len(t, first.Questions, 10)

	second, err := svc.Search(ctx, "question 1", 2)
	require.NoError(t, err)
	assert.Len(t, second.Questions, 1)

	upper, err := svc.Search(ctx, "QUESTION 2", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), upper.Total)
	for _, q := range upper.Questions {
		assert.True(t, strings.Contains(strings.ToLower(q.Question), "question 2"), q.Question)
	}

	all, err := svc.Search(ctx, "", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(25), all.Total)

	literal, err := svc.Search(ctx, "%", 1)
	require.NoError(t, err)
	assert.Empty(t, literal.Questions)
}

func TestServiceByCategory(t *testing.T) {
	svc := newTestService(repotest.Seeded(25))
	ctx := context.Background()

	listing, err := svc.ByCategory(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), listing.Total)
	for _, q := range listing.Questions {
		assert.Equal(t, int32(1), q.Category)
	}

	unknown, err := svc.ByCategory(ctx, 99, 1)
	require.NoError(t, err)
	assert.NotNil(t, unknown.Questions)
	assert.Empty(t, unknown.Questions)
}

func TestServiceWrapsStoreErrors(t *testing.T) {
	store := repotest.Seeded(3)
	storeErr := errors.New("connection refused")
	store.Err = storeErr
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.List(ctx, 1)
	assert.ErrorIs(t, err, storeErr)

	_, err = svc.Categories(ctx)
	assert.ErrorIs(t, err, storeErr)

	err = svc.Delete(ctx, 1)
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestNewServiceDefaultsPageSize(t *testing.T) {
	svc := NewService(nil, nil, ServiceOptions{})
	assert.Equal(t, DefaultPageSize, svc.pageSize)
}
