package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/repository/memory"
)

var testCategories = []domain.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
}

func seedQuestions(n int) []domain.Question {
	questions := make([]domain.Question, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, domain.Question{
			ID:         i,
			Question:   fmt.Sprintf("Question %d?", i),
			Answer:     fmt.Sprintf("Answer %d", i),
			Category:   i%2 + 1,
			Difficulty: i%5 + 1,
		})
	}
	return questions
}

func newQuestionService(n int) (*QuestionService, *memory.QuestionRepository, *memory.CategoryRepository) {
	questions := memory.NewQuestionRepository(seedQuestions(n)...)
	categories := memory.NewCategoryRepository(testCategories...)
	return NewQuestionService(questions, categories, 0), questions, categories
}

func TestQuestionServicePagesCoverAllQuestions(t *testing.T) {
	svc, _, _ := newQuestionService(23)
	ctx := context.Background()

	seen := make(map[int]bool)
	for page := 1; ; page++ {
		result, err := svc.Page(ctx, page)
		require.NoError(t, err)
		assert.Equal(t, 23, result.Total)
		assert.LessOrEqual(t, len(result.Questions), DefaultQuestionsPerPage)
		if len(result.Questions) == 0 {
			break
		}
		for _, q := range result.Questions {
			assert.False(t, seen[q.ID], "question %d listed twice", q.ID)
			seen[q.ID] = true
		}
	}
	assert.Len(t, seen, 23)
}

func TestQuestionServicePageIncludesCategories(t *testing.T) {
	svc, _, _ := newQuestionService(3)

	result, err := svc.Page(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "Science", 2: "Art", 3: "Geography"}, result.Categories)
}

func TestQuestionServicePageOutOfRange(t *testing.T) {
	svc, _, _ := newQuestionService(5)

	for _, page := range []int{2, 1000, math.MaxInt} {
		result, err := svc.Page(context.Background(), page)
		require.NoError(t, err)
		assert.NotNil(t, result.Questions)
		assert.Empty(t, result.Questions)
		assert.Equal(t, 5, result.Total)
	}
}

func TestQuestionServicePageBelowOne(t *testing.T) {
	svc, _, _ := newQuestionService(5)

	result, err := svc.Page(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, result.Questions, 5)
}

func TestQuestionServicePageRepositoryError(t *testing.T) {
	svc, questions, _ := newQuestionService(5)
	dbErr := errors.New("connection refused")
	questions.Err = dbErr

	_, err := svc.Page(context.Background(), 1)
	assert.ErrorIs(t, err, dbErr)
}

func TestQuestionServiceSearch(t *testing.T) {
	questions := memory.NewQuestionRepository(
		domain.Question{Question: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", Category: 5, Difficulty: 4},
		domain.Question{Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: 4, Difficulty: 2},
		domain.Question{Question: "What was the title of the 1990 fantasy directed by Tim Burton?", Answer: "Edward Scissorhands", Category: 5, Difficulty: 3},
	)
	svc := NewQuestionService(questions, memory.NewCategoryRepository(testCategories...), 10)
	ctx := context.Background()

	found, err := svc.Search(ctx, "TITLE")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Maya Angelou", found[0].Answer)

	found, err = svc.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, found, 3)

	found, err = svc.Search(ctx, "xyzzy")
	require.NoError(t, err)
	assert.NotNil(t, found)
	assert.Empty(t, found)
}

func TestQuestionServiceCreateAndDelete(t *testing.T) {
	svc, _, _ := newQuestionService(2)
	ctx := context.Background()

	id, err := svc.Create(ctx, &domain.Question{Question: "Q?", Answer: "A", Category: 1, Difficulty: 1})
	require.NoError(t, err)
	assert.Greater(t, id, 2)

	require.NoError(t, svc.Delete(ctx, id))
	assert.ErrorIs(t, svc.Delete(ctx, id), domain.ErrQuestionNotFound)

	page, err := svc.Page(ctx, 1)
	require.NoError(t, err)
	for _, q := range page.Questions {
		assert.NotEqual(t, id, q.ID)
	}
}

func TestQuestionServiceByCategory(t *testing.T) {
	svc, _, _ := newQuestionService(6)

	category, questions, err := svc.ByCategory(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Art", category.Type)
	require.Len(t, questions, 3)
	for _, q := range questions {
		assert.Equal(t, 2, q.Category)
	}

	category, questions, err = svc.ByCategory(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Geography", category.Type)
	assert.Empty(t, questions)
}

func TestQuestionServiceByCategoryNotFound(t *testing.T) {
	svc, _, _ := newQuestionService(6)

	_, _, err := svc.ByCategory(context.Background(), 1000)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestCategoryServiceMap(t *testing.T) {
	svc := NewCategoryService(memory.NewCategoryRepository(testCategories...))

	categories, err := svc.Map(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Geography", categories[3])
	assert.Len(t, categories, 3)
}
