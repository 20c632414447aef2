package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

type mockCategoryStore struct {
	mock.Mock
}

func (m *mockCategoryStore) ListCategories(ctx context.Context) ([]sqlcgen.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]sqlcgen.Category), args.Error(1)
}

func TestCategoryRepository_List(t *testing.T) {
	store := new(mockCategoryStore)
	repo := NewCategoryRepository(store)

	expect := []sqlcgen.Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}}
	store.On("ListCategories", mock.Anything).Return(expect, nil)

	got, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expect, got)
	store.AssertExpectations(t)
}
