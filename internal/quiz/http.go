package quiz

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/question"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// Request is the POST /api/quizzes payload.
type Request struct {
	QuizCategory      *CategoryRef       `json:"quiz_category"`
	PreviousQuestions []question.FlexInt `json:"previous_questions"`
}

// CategoryRef identifies the quiz category; id 0 means any category.
// The id is required.
type CategoryRef struct {
	ID   *question.FlexInt `json:"id"`
	Type string            `json:"type,omitempty"`
}

// HTTPHandler serves the quiz endpoint.
type HTTPHandler struct {
	selector *Selector
	logger   zerolog.Logger
}

func NewHTTPHandler(selector *Selector, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{selector: selector, logger: logger}
}

// HandleNext handles POST /api/quizzes. An exhausted pool answers
// {"success": true, "question": null}.
func (h *HTTPHandler) HandleNext(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w, http.MethodPost)
		return
	}

	var req Request
	if err := question.DecodeJSON(w, r, &req); err != nil || req.QuizCategory == nil || req.QuizCategory.ID == nil {
		httperrors.RespondBadRequest(w)
		return
	}
	categoryID := int32(*req.QuizCategory.ID)

	excluded := make([]int32, 0, len(req.PreviousQuestions))
	for _, id := range req.PreviousQuestions {
		excluded = append(excluded, int32(id))
	}

	logger := logging.FromContextOr(r.Context(), h.logger).With().Str("component", "quiz_http").Logger()

	next, err := h.selector.Next(r.Context(), categoryID, excluded)
	if err != nil {
		logger.Error().Err(err).Msg("quiz selection failed")
		httperrors.RespondInternalError(w)
		return
	}
	if next == nil {
		logger.Debug().Int32("category", categoryID).Int("seen", len(excluded)).Msg("quiz pool exhausted")
	}

	question.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"question": next,
	})
}
