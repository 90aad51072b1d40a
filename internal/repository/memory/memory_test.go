package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

func TestQuestionRepositoryAssignsIDs(t *testing.T) {
	repo := NewQuestionRepository(
		domain.Question{ID: 7, Question: "Seven?"},
		domain.Question{Question: "Unnumbered?"},
	)
	ctx := context.Background()

	q := &domain.Question{Question: "New?"}
	require.NoError(t, repo.Create(ctx, q))
	assert.Greater(t, q.ID, 7)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].ID < all[1].ID && all[1].ID < all[2].ID)
}

func TestQuestionRepositoryReturnsCopies(t *testing.T) {
	repo := NewQuestionRepository(domain.Question{ID: 1, Question: "Original?"})
	ctx := context.Background()

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	all[0].Question = "Changed?"

	found, err := repo.Search(ctx, "original")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestCategoryRepositoryGetByID(t *testing.T) {
	repo := NewCategoryRepository(domain.Category{ID: 2, Type: "Art"}, domain.Category{ID: 1, Type: "Science"})

	categories, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, categories[0].ID)

	_, err = repo.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}
