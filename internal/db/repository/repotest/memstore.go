// Package repotest provides an in-memory query store for exercising the
// repositories without Postgres.
package repotest

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

// ErrNullValue mimics a NOT NULL violation for inserts with missing fields.
var ErrNullValue = errors.New("null value violates not-null constraint")

// MemStore implements the question and category query sets over maps.
type MemStore struct {
	mu         sync.Mutex
	nextID     int32
	questions  map[int32]sqlcgen.Question
	categories []sqlcgen.Category

	// Err, when set, is returned by every query.
	Err error
}

func NewMemStore() *MemStore {
	return &MemStore{nextID: 1, questions: map[int32]sqlcgen.Question{}}
}

// Seeded returns a store with the default categories and n questions spread
// round-robin across them. Question i (1-based) reads "Question i".
func Seeded(n int) *MemStore {
	s := NewMemStore()
	s.AddCategory("Science")
	s.AddCategory("Art")
	s.AddCategory("Geography")
	s.AddCategory("History")
	s.AddCategory("Entertainment")
	s.AddCategory("Sports")
	for i := 0; i < n; i++ {
		s.AddQuestion(sqlcgen.Question{
			Question:   "Question " + strconv.Itoa(i+1),
			Answer:     "Answer " + strconv.Itoa(i+1),
			Category:   int32(i%len(s.categories)) + 1,
			Difficulty: int32(i%5) + 1,
		})
	}
	return s
}

func (s *MemStore) AddCategory(label string) sqlcgen.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := sqlcgen.Category{ID: int32(len(s.categories)) + 1, Type: label}
	s.categories = append(s.categories, c)
	return c
}

// AddQuestion stores q under the next id, ignoring q.ID.
func (s *MemStore) AddQuestion(q sqlcgen.Question) sqlcgen.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	q.ID = s.nextID
	s.nextID++
	s.questions[q.ID] = q
	return q
}

func (s *MemStore) ListCategories(_ context.Context) ([]sqlcgen.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]sqlcgen.Category(nil), s.categories...), nil
}

func (s *MemStore) CountQuestions(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	return int64(len(s.questions)), nil
}

func (s *MemStore) ListQuestions(_ context.Context, arg sqlcgen.ListQuestionsParams) ([]sqlcgen.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	all := s.sorted(func(sqlcgen.Question) bool { return true })
	if arg.Offset >= int64(len(all)) {
		return nil, nil
	}
	end := arg.Offset + arg.Limit
	if end > int64(len(all)) {
		end = int64(len(all))
	}
	return all[arg.Offset:end], nil
}

func (s *MemStore) ListQuestionsByCategory(_ context.Context, category int32) ([]sqlcgen.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.sorted(func(q sqlcgen.Question) bool { return q.Category == category }), nil
}

// SearchQuestions understands the "%escaped-term%" patterns the repository builds.
func (s *MemStore) SearchQuestions(_ context.Context, pattern string) ([]sqlcgen.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	term := strings.TrimSuffix(strings.TrimPrefix(pattern, "%"), "%")
	term = strings.NewReplacer(`\\`, `\`, `\%`, `%`, `\_`, `_`).Replace(term)
	term = strings.ToLower(term)
	return s.sorted(func(q sqlcgen.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), term)
	}), nil
}

func (s *MemStore) GetQuestion(_ context.Context, id int32) (sqlcgen.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return sqlcgen.Question{}, s.Err
	}
	q, ok := s.questions[id]
	if !ok {
		return sqlcgen.Question{}, pgx.ErrNoRows
	}
	return q, nil
}

func (s *MemStore) InsertQuestion(_ context.Context, arg sqlcgen.InsertQuestionParams) (sqlcgen.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return sqlcgen.Question{}, s.Err
	}
	if !arg.Question.Valid || !arg.Answer.Valid || !arg.Category.Valid || !arg.Difficulty.Valid {
		return sqlcgen.Question{}, ErrNullValue
	}
	q := sqlcgen.Question{
		ID:         s.nextID,
		Question:   arg.Question.String,
		Answer:     arg.Answer.String,
		Category:   arg.Category.Int32,
		Difficulty: arg.Difficulty.Int32,
	}
	s.nextID++
	s.questions[q.ID] = q
	return q, nil
}

func (s *MemStore) DeleteQuestion(_ context.Context, id int32) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	if _, ok := s.questions[id]; !ok {
		return 0, nil
	}
	delete(s.questions, id)
	return 1, nil
}

func (s *MemStore) ListQuizCandidateIDs(_ context.Context, arg sqlcgen.ListQuizCandidateIDsParams) ([]int32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if arg.Excluded == nil {
		return nil, nil
	}
	excluded := make(map[int32]struct{}, len(arg.Excluded))
	for _, id := range arg.Excluded {
		excluded[id] = struct{}{}
	}
	var ids []int32
	for _, q := range s.sorted(func(q sqlcgen.Question) bool {
		if _, skip := excluded[q.ID]; skip {
			return false
		}
		return !arg.Category.Valid || q.Category == arg.Category.Int32
	}) {
		ids = append(ids, q.ID)
	}
	return ids, nil
}

func (s *MemStore) sorted(keep func(sqlcgen.Question) bool) []sqlcgen.Question {
	var out []sqlcgen.Question
	for _, q := range s.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
