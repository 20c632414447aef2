package question

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

// Question is the formatted record delivered to clients.
type Question struct {
	ID         int32  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int32  `json:"category"`
	Difficulty int32  `json:"difficulty"`
}

// Format renders a stored row as a transport record.
func Format(row sqlcgen.Question) Question {
	return Question{
		ID:         row.ID,
		Question:   row.Question,
		Answer:     row.Answer,
		Category:   row.Category,
		Difficulty: row.Difficulty,
	}
}

// FormatAll formats rows, never returning nil so empty pages encode as [].
func FormatAll(rows []sqlcgen.Question) []Question {
	out := make([]Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, Format(row))
	}
	return out
}

// CreateRequest is the add-question payload. Absent fields stay nil and
// reach the store as NULL.
type CreateRequest struct {
	Question   *string  `json:"question"`
	Answer     *string  `json:"answer"`
	Category   *FlexInt `json:"category"`
	Difficulty *FlexInt `json:"difficulty"`
}

// Listing is one page of questions plus the totals the client renders.
type Listing struct {
	Questions  []Question
	Total      int64
	Categories map[int32]string
}

// FlexInt decodes a JSON number or a numeric string. The client keys
// categories by the string form of their id and echoes that back.
type FlexInt int32

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if bytes.Equal(raw, []byte("null")) {
		return nil
	}
	s := string(raw)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid integer %s", data)
	}
	*n = FlexInt(v)
	return nil
}
