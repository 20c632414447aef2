package question

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

// ErrNotFound reports a question id with no stored record.
var ErrNotFound = errors.New("question not found")

// Service implements listing, search and mutation of trivia questions.
type Service struct {
	questions  *repository.QuestionRepository
	categories *repository.CategoryRepository
	pageSize   int
}

type ServiceOptions struct {
	PageSize int
}

func NewService(questions *repository.QuestionRepository, categories *repository.CategoryRepository, opts ServiceOptions) *Service {
	size := opts.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Service{
		questions:  questions,
		categories: categories,
		pageSize:   size,
	}
}

// Categories returns every category keyed by id.
func (s *Service) Categories(ctx context.Context) (map[int32]string, error) {
	rows, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make(map[int32]string, len(rows))
	for _, c := range rows {
		out[c.ID] = c.Type
	}
	return out, nil
}

// List returns one page of all questions. The page window is pushed into
// the query; Total counts the whole table.
func (s *Service) List(ctx context.Context, page int) (Listing, error) {
	total, err := s.questions.Count(ctx)
	if err != nil {
		return Listing{}, fmt.Errorf("count questions: %w", err)
	}

	questions := []Question{}
	if offset, ok := Offset(page, s.pageSize); ok && int64(offset) < total {
		rows, err := s.questions.ListPage(ctx, int64(s.pageSize), int64(offset))
		if err != nil {
			return Listing{}, fmt.Errorf("list questions: %w", err)
		}
		questions = FormatAll(rows)
	}

	categories, err := s.Categories(ctx)
	if err != nil {
		return Listing{}, err
	}

	return Listing{Questions: questions, Total: total, Categories: categories}, nil
}

// Search pages through questions whose text contains term, ignoring case.
// An empty term matches every question.
func (s *Service) Search(ctx context.Context, term string, page int) (Listing, error) {
	rows, err := s.questions.Search(ctx, term)
	if err != nil {
		return Listing{}, fmt.Errorf("search questions: %w", err)
	}
	return s.paginate(rows, page), nil
}

// ByCategory pages through the questions of one category. Unknown
// categories yield an empty listing.
func (s *Service) ByCategory(ctx context.Context, categoryID int32, page int) (Listing, error) {
	rows, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return Listing{}, fmt.Errorf("list category %d: %w", categoryID, err)
	}
	return s.paginate(rows, page), nil
}

func (s *Service) paginate(rows []sqlcgen.Question, page int) Listing {
	return Listing{
		Questions: FormatAll(Paginate(page, rows, s.pageSize)),
		Total:     int64(len(rows)),
	}
}

// Get loads a single question, returning ErrNotFound if it does not exist.
func (s *Service) Get(ctx context.Context, id int32) (Question, error) {
	row, err := s.questions.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return Question{}, ErrNotFound
	}
	if err != nil {
		return Question{}, fmt.Errorf("get question %d: %w", id, err)
	}
	return Format(row), nil
}

// Create stores a new question. Missing fields are not validated here; the
// store's constraints decide.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Question, error) {
	params := sqlcgen.InsertQuestionParams{}
	if req.Question != nil {
		params.Question = pgtype.Text{String: *req.Question, Valid: true}
	}
	if req.Answer != nil {
		params.Answer = pgtype.Text{String: *req.Answer, Valid: true}
	}
	if req.Category != nil {
		params.Category = pgtype.Int4{Int32: int32(*req.Category), Valid: true}
	}
	if req.Difficulty != nil {
		params.Difficulty = pgtype.Int4{Int32: int32(*req.Difficulty), Valid: true}
	}

	row, err := s.questions.Insert(ctx, params)
	if err != nil {
		return Question{}, fmt.Errorf("insert question: %w", err)
	}
	return Format(row), nil
}

// Delete removes a question, returning ErrNotFound if it does not exist.
func (s *Service) Delete(ctx context.Context, id int32) error {
	err := s.questions.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	return nil
}
