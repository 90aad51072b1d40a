package domain

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrNoMoreQuestions  = errors.New("no more questions")
)

// QuestionRepository defines the interface for question-related operations
type QuestionRepository interface {
	// List retrieves a window of questions ordered by ID
	List(ctx context.Context, limit, offset int) ([]*Question, error)

	// ListAll retrieves every question ordered by ID
	ListAll(ctx context.Context) ([]*Question, error)

	// ListByCategory retrieves every question of a category
	ListByCategory(ctx context.Context, categoryID int) ([]*Question, error)

	// Search retrieves questions whose text contains term, ignoring case
	Search(ctx context.Context, term string) ([]*Question, error)

	// Count returns the total number of questions
	Count(ctx context.Context) (int, error)

	// Create creates a new question and sets its ID
	Create(ctx context.Context, question *Question) error

	// Delete deletes a question
	Delete(ctx context.Context, id int) error
}

// Question represents a trivia question
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}
