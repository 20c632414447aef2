package repository

import (
	"fmt"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

func sqlQuestion(id, category int32) sqlcgen.Question {
	return sqlcgen.Question{
		ID:         id,
		Question:   fmt.Sprintf("Question %d", id),
		Answer:     fmt.Sprintf("Answer %d", id),
		Category:   category,
		Difficulty: 1,
	}
}
