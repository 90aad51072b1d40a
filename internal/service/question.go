package service

import (
	"context"
	"fmt"
	"math"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// DefaultQuestionsPerPage is the page size used when none is configured
const DefaultQuestionsPerPage = 10

// QuestionService handles question listing, search and mutation
type QuestionService struct {
	questionRepo domain.QuestionRepository
	categoryRepo domain.CategoryRepository
	perPage      int
}

// NewQuestionService creates a new question service
func NewQuestionService(questionRepo domain.QuestionRepository, categoryRepo domain.CategoryRepository, perPage int) *QuestionService {
	if perPage <= 0 {
		perPage = DefaultQuestionsPerPage
	}
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		perPage:      perPage,
	}
}

// QuestionPage is one page of the question listing
type QuestionPage struct {
	Questions  []*domain.Question
	Total      int
	Categories map[int]string
}

// Page returns the 1-based page of questions. Pages past the end are empty.
func (s *QuestionService) Page(ctx context.Context, page int) (*QuestionPage, error) {
	if page < 1 {
		page = 1
	}

	questions := []*domain.Question{}
	if page-1 <= math.MaxInt/s.perPage {
		var err error
		questions, err = s.questionRepo.List(ctx, s.perPage, (page-1)*s.perPage)
		if err != nil {
			return nil, fmt.Errorf("failed to list questions: %w", err)
		}
	}

	total, err := s.questionRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}

	categories, err := categoryMap(ctx, s.categoryRepo)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Questions:  questions,
		Total:      total,
		Categories: categories,
	}, nil
}

// Search returns questions whose text contains term, ignoring case.
// An empty term matches every question.
func (s *QuestionService) Search(ctx context.Context, term string) ([]*domain.Question, error) {
	questions, err := s.questionRepo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	return questions, nil
}

// Create stores a new question and returns its ID
func (s *QuestionService) Create(ctx context.Context, question *domain.Question) (int, error) {
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return 0, err
	}
	return question.ID, nil
}

// Delete permanently removes a question
func (s *QuestionService) Delete(ctx context.Context, id int) error {
	return s.questionRepo.Delete(ctx, id)
}

// ByCategory returns a category and every question that belongs to it
func (s *QuestionService) ByCategory(ctx context.Context, categoryID int) (*domain.Category, []*domain.Question, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, nil, err
	}

	questions, err := s.questionRepo.ListByCategory(ctx, category.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list questions for category %d: %w", category.ID, err)
	}

	return category, questions, nil
}
