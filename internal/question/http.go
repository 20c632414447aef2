package question

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

const maxBodyBytes = 1 << 20

// HTTPHandler exposes the question and category endpoints.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandler constructs a question HTTP handler.
func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger,
	}
}

// HandleCategories handles GET /api/categories
func (h *HTTPHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w, http.MethodGet)
		return
	}

	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"categories": categories,
	})
}

// HandleQuestions handles GET and POST /api/questions
func (h *HTTPHandler) HandleQuestions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		httperrors.RespondMethodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

func (h *HTTPHandler) list(w http.ResponseWriter, r *http.Request) {
	listing, err := h.svc.List(r.Context(), ParsePage(r.URL.Query().Get("page")))
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"questions":       listing.Questions,
		"total_questions": listing.Total,
		"categories":      listing.Categories,
	})
}

func (h *HTTPHandler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		httperrors.RespondBadRequest(w)
		return
	}

	created, err := h.svc.Create(r.Context(), req)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	h.log(r).Info().Int32("question_id", created.ID).Msg("question created")
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"last_inserted_id": created.ID,
	})
}

// HandleQuestion handles DELETE /api/questions/{id}
func (h *HTTPHandler) HandleQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := PathID(r, "id")
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}
	if r.Method != http.MethodDelete {
		httperrors.RespondMethodNotAllowed(w, http.MethodDelete)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httperrors.RespondNotFound(w)
			return
		}
		h.internalError(w, r, err)
		return
	}

	h.log(r).Info().Int32("question_id", id).Msg("question deleted")
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"deleted": id,
	})
}

type searchRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

// HandleSearch handles POST /api/search-questions?page=N
func (h *HTTPHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w, http.MethodPost)
		return
	}

	var req searchRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		httperrors.RespondBadRequest(w)
		return
	}
	term := ""
	if req.SearchTerm != nil {
		term = *req.SearchTerm
	}

	listing, err := h.svc.Search(r.Context(), term, ParsePage(r.URL.Query().Get("page")))
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"questions":       listing.Questions,
		"total_questions": listing.Total,
	})
}

// HandleCategoryQuestions handles GET /api/categories/{id}/questions?page=N
func (h *HTTPHandler) HandleCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	id, ok := PathID(r, "id")
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w, http.MethodGet)
		return
	}

	listing, err := h.svc.ByCategory(r.Context(), id, ParsePage(r.URL.Query().Get("page")))
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        listing.Questions,
		"total_questions":  listing.Total,
		"current_category": id,
	})
}

func (h *HTTPHandler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.log(r).Error().Err(err).Msg("question request failed")
	httperrors.RespondInternalError(w)
}

func (h *HTTPHandler) log(r *http.Request) *zerolog.Logger {
	logger := logging.FromContextOr(r.Context(), h.logger).With().Str("component", "question_http").Logger()
	return &logger
}

// PathID parses a non-negative int32 path wildcard. Anything else is
// reported as not ok, which routes treat as an unknown resource.
func PathID(r *http.Request, name string) (int32, bool) {
	v, err := strconv.ParseUint(r.PathValue(name), 10, 31)
	if err != nil {
		return 0, false
	}
	return int32(v), true
}

// DecodeJSON reads a single JSON document from the request body into dst.
// Empty and oversized bodies, and bodies with data after the document, are errors.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty request body")
		}
		return fmt.Errorf("decode request body: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("request body must hold a single JSON document")
	}
	return nil
}

// WriteJSON encodes payload with the given status.
func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
