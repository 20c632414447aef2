package quiz

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	"github.com/gokatarajesh/trivia-api/internal/question"
)

// AnyCategory disables the category filter.
const AnyCategory int32 = 0

// Selector draws the next quiz question from the candidate pool: every
// question outside the excluded set, optionally restricted to one category.
type Selector struct {
	candidates *repository.QuestionRepository
	questions  *question.Service
	intn       func(n int) int
}

type SelectorOptions struct {
	// Intn returns a uniform int in [0, n). Defaults to math/rand/v2.IntN.
	Intn func(n int) int
}

// NewSelector draws candidate ids from candidates and loads the chosen
// question through questions.
func NewSelector(candidates *repository.QuestionRepository, questions *question.Service, opts SelectorOptions) *Selector {
	intn := opts.Intn
	if intn == nil {
		intn = rand.IntN
	}
	return &Selector{candidates: candidates, questions: questions, intn: intn}
}

// Next returns one question chosen uniformly from the candidate pool, or
// nil when the pool is empty.
func (s *Selector) Next(ctx context.Context, categoryID int32, excluded []int32) (*question.Question, error) {
	ids, err := s.candidates.QuizCandidateIDs(ctx, categoryID, excluded)
	if err != nil {
		return nil, fmt.Errorf("list quiz candidates: %w", err)
	}

	for len(ids) > 0 {
		i := s.intn(len(ids))
		q, err := s.questions.Get(ctx, ids[i])
		if errors.Is(err, question.ErrNotFound) {
			// deleted since the candidate query; draw again from the rest
			ids[i] = ids[len(ids)-1]
			ids = ids[:len(ids)-1]
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load quiz question %d: %w", ids[i], err)
		}
		selections.WithLabelValues(outcomeSelected).Inc()
		return &q, nil
	}

	selections.WithLabelValues(outcomeExhausted).Inc()
	return nil, nil
}
