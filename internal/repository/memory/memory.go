// Package memory provides in-memory repositories for tests and local tooling.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// QuestionRepository is an in-memory domain.QuestionRepository
type QuestionRepository struct {
	mu        sync.RWMutex
	nextID    int
	questions map[int]domain.Question

	// Err, when set, is returned by every method
	Err error
}

// NewQuestionRepository creates a repository seeded with questions.
// Seeded questions without an ID are assigned one.
func NewQuestionRepository(seed ...domain.Question) *QuestionRepository {
	r := &QuestionRepository{nextID: 1, questions: make(map[int]domain.Question)}
	for _, q := range seed {
		if q.ID != 0 {
			r.questions[q.ID] = q
			r.nextID = max(r.nextID, q.ID+1)
		}
	}
	for _, q := range seed {
		if q.ID == 0 {
			q.ID = r.nextID
			r.nextID++
			r.questions[q.ID] = q
		}
	}
	return r
}

// List retrieves a window of questions ordered by ID
func (r *QuestionRepository) List(_ context.Context, limit, offset int) ([]*domain.Question, error) {
	all, err := r.filter(func(domain.Question) bool { return true })
	if err != nil {
		return nil, err
	}
	if offset >= len(all) {
		return []*domain.Question{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

// ListAll retrieves every question ordered by ID
func (r *QuestionRepository) ListAll(_ context.Context) ([]*domain.Question, error) {
	return r.filter(func(domain.Question) bool { return true })
}

// ListByCategory retrieves every question of a category
func (r *QuestionRepository) ListByCategory(_ context.Context, categoryID int) ([]*domain.Question, error) {
	return r.filter(func(q domain.Question) bool { return q.Category == categoryID })
}

// Search retrieves questions whose text contains term, ignoring case
func (r *QuestionRepository) Search(_ context.Context, term string) ([]*domain.Question, error) {
	term = strings.ToLower(term)
	return r.filter(func(q domain.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), term)
	})
}

// Count returns the total number of questions
func (r *QuestionRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return 0, r.Err
	}
	return len(r.questions), nil
}

// Create stores a question and assigns its ID
func (r *QuestionRepository) Create(_ context.Context, question *domain.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	question.ID = r.nextID
	r.nextID++
	r.questions[question.ID] = *question
	return nil
}

// Delete deletes a question
func (r *QuestionRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.questions[id]; !ok {
		return domain.ErrQuestionNotFound
	}
	delete(r.questions, id)
	return nil
}

// filter returns copies of the matching questions ordered by ID
func (r *QuestionRepository) filter(match func(domain.Question) bool) ([]*domain.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}

	out := make([]*domain.Question, 0, len(r.questions))
	for _, q := range r.questions {
		if match(q) {
			out = append(out, &q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// CategoryRepository is an in-memory domain.CategoryRepository
type CategoryRepository struct {
	categories []domain.Category

	// Err, when set, is returned by every method
	Err error
}

// NewCategoryRepository creates a repository holding the given categories
func NewCategoryRepository(categories ...domain.Category) *CategoryRepository {
	sorted := append([]domain.Category(nil), categories...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return &CategoryRepository{categories: sorted}
}

// List retrieves every category ordered by ID
func (r *CategoryRepository) List(_ context.Context) ([]*domain.Category, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]*domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, &c)
	}
	return out, nil
}

// GetByID retrieves a category by its ID
func (r *CategoryRepository) GetByID(_ context.Context, id int) (*domain.Category, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	for _, c := range r.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

var (
	_ domain.QuestionRepository = (*QuestionRepository)(nil)
	_ domain.CategoryRepository = (*CategoryRepository)(nil)
)
