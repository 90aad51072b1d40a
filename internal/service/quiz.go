package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// QuizService picks quiz questions
type QuizService struct {
	questionRepo domain.QuestionRepository
	categoryRepo domain.CategoryRepository
	intn         func(n int) int
}

// NewQuizService creates a new quiz service
func NewQuizService(questionRepo domain.QuestionRepository, categoryRepo domain.CategoryRepository) *QuizService {
	return &QuizService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		intn:         rand.IntN,
	}
}

// NextQuestion picks a random question from the category pool that is not in previous.
// It returns domain.ErrNoMoreQuestions once previous covers the whole pool.
func (s *QuizService) NextQuestion(ctx context.Context, category domain.QuizCategory, previous []int) (*domain.Question, error) {
	pool, err := s.pool(ctx, category)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	remaining := make([]*domain.Question, 0, len(pool))
	for _, q := range pool {
		if _, ok := seen[q.ID]; !ok {
			remaining = append(remaining, q)
		}
	}

	if len(remaining) == 0 {
		return nil, domain.ErrNoMoreQuestions
	}

	return remaining[s.intn(len(remaining))], nil
}

func (s *QuizService) pool(ctx context.Context, category domain.QuizCategory) ([]*domain.Question, error) {
	if category.IsAll() {
		questions, err := s.questionRepo.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list questions: %w", err)
		}
		return questions, nil
	}

	if _, err := s.categoryRepo.GetByID(ctx, category.ID); err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.ListByCategory(ctx, category.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions for category %d: %w", category.ID, err)
	}
	return questions, nil
}
