package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

// ErrNotFound is returned when a lookup or delete matches no row.
var ErrNotFound = errors.New("record not found")

type questionStore interface {
	CountQuestions(ctx context.Context) (int64, error)
	ListQuestions(ctx context.Context, arg sqlcgen.ListQuestionsParams) ([]sqlcgen.Question, error)
	ListQuestionsByCategory(ctx context.Context, category int32) ([]sqlcgen.Question, error)
	SearchQuestions(ctx context.Context, pattern string) ([]sqlcgen.Question, error)
	GetQuestion(ctx context.Context, id int32) (sqlcgen.Question, error)
	InsertQuestion(ctx context.Context, arg sqlcgen.InsertQuestionParams) (sqlcgen.Question, error)
	DeleteQuestion(ctx context.Context, id int32) (int64, error)
	ListQuizCandidateIDs(ctx context.Context, arg sqlcgen.ListQuizCandidateIDsParams) ([]int32, error)
}

// QuestionRepository wraps sqlc queries for question access.
type QuestionRepository struct {
	store questionStore
}

func NewQuestionRepository(store questionStore) *QuestionRepository {
	return &QuestionRepository{store: store}
}

func (r *QuestionRepository) Count(ctx context.Context) (int64, error) {
	return r.store.CountQuestions(ctx)
}

// ListPage returns up to limit questions ordered by id, skipping offset rows.
func (r *QuestionRepository) ListPage(ctx context.Context, limit, offset int64) ([]sqlcgen.Question, error) {
	return r.store.ListQuestions(ctx, sqlcgen.ListQuestionsParams{Limit: limit, Offset: offset})
}

func (r *QuestionRepository) ListByCategory(ctx context.Context, category int32) ([]sqlcgen.Question, error) {
	return r.store.ListQuestionsByCategory(ctx, category)
}

// Search matches term as a literal, case-insensitive substring of the question text.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]sqlcgen.Question, error) {
	return r.store.SearchQuestions(ctx, "%"+EscapeLike(term)+"%")
}

func (r *QuestionRepository) Get(ctx context.Context, id int32) (sqlcgen.Question, error) {
	q, err := r.store.GetQuestion(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return sqlcgen.Question{}, ErrNotFound
	}
	return q, err
}

func (r *QuestionRepository) Insert(ctx context.Context, params sqlcgen.InsertQuestionParams) (sqlcgen.Question, error) {
	return r.store.InsertQuestion(ctx, params)
}

// Delete removes a question, returning ErrNotFound when nothing matched.
func (r *QuestionRepository) Delete(ctx context.Context, id int32) error {
	n, err := r.store.DeleteQuestion(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// QuizCandidateIDs lists ids eligible for quiz selection. A category of 0
// disables the category filter.
func (r *QuestionRepository) QuizCandidateIDs(ctx context.Context, category int32, excluded []int32) ([]int32, error) {
	params := sqlcgen.ListQuizCandidateIDsParams{Excluded: excluded}
	if category != 0 {
		params.Category = pgtype.Int4{Int32: category, Valid: true}
	}
	// a nil slice is sent as NULL, and NOT (id = ANY(NULL)) matches nothing
	if params.Excluded == nil {
		params.Excluded = []int32{}
	}
	return r.store.ListQuizCandidateIDs(ctx, params)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE metacharacters using backslash as the escape character.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
