package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

const (
	listQuestionsQuery = `
		SELECT id, question, answer, category, difficulty
		FROM questions
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	listAllQuestionsQuery = `
		SELECT id, question, answer, category, difficulty
		FROM questions
		ORDER BY id
	`
	listQuestionsByCategoryQuery = `
		SELECT id, question, answer, category, difficulty
		FROM questions
		WHERE category = $1
		ORDER BY id
	`
	searchQuestionsQuery = `
		SELECT id, question, answer, category, difficulty
		FROM questions
		WHERE question ILIKE $1
		ORDER BY id
	`
	createQuestionQuery = `
		INSERT INTO questions (question, answer, category, difficulty)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	countQuestionsQuery = `SELECT COUNT(*) FROM questions`
	deleteQuestionQuery = `DELETE FROM questions WHERE id = $1`
)

// likeEscaper escapes LIKE metacharacters so search terms match literally
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// QuestionRepository implements the domain.QuestionRepository interface
type QuestionRepository struct {
	db DB
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db DB) *QuestionRepository {
	return &QuestionRepository{
		db: db,
	}
}

// List retrieves a window of questions ordered by ID
func (r *QuestionRepository) List(ctx context.Context, limit, offset int) ([]*domain.Question, error) {
	return r.query(ctx, "list questions", listQuestionsQuery, limit, offset)
}

// ListAll retrieves every question ordered by ID
func (r *QuestionRepository) ListAll(ctx context.Context) ([]*domain.Question, error) {
	return r.query(ctx, "list all questions", listAllQuestionsQuery)
}

// ListByCategory retrieves every question of a category
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]*domain.Question, error) {
	return r.query(ctx, "list questions by category", listQuestionsByCategoryQuery, categoryID)
}

// Search retrieves questions whose text contains term, ignoring case
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]*domain.Question, error) {
	return r.query(ctx, "search questions", searchQuestionsQuery, "%"+likeEscaper.Replace(term)+"%")
}

// Count returns the total number of questions
func (r *QuestionRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, countQuestionsQuery).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return count, nil
}

// Create creates a new question
func (r *QuestionRepository) Create(ctx context.Context, question *domain.Question) error {
	err := r.db.QueryRow(ctx, createQuestionQuery,
		question.Question,
		question.Answer,
		question.Category,
		question.Difficulty,
	).Scan(&question.ID)
	if err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

// Delete deletes a question
func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx, deleteQuestionQuery, id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

func (r *QuestionRepository) query(ctx context.Context, op, sql string, args ...any) ([]*domain.Question, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	defer rows.Close()

	questions := make([]*domain.Question, 0)
	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, &q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating questions: %w", err)
	}

	return questions, nil
}

var _ domain.QuestionRepository = (*QuestionRepository)(nil)
