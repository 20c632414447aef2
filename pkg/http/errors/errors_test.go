package errors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNotFound(rec)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":404}`, rec.Body.String())
}

func TestRespondBadRequest(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondBadRequest(rec)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":400}`, rec.Body.String())
}

func TestRespondMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondMethodNotAllowed(rec, http.MethodGet, http.MethodPost)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, []string{"GET", "POST"}, rec.Header().Values("Allow"))
	assert.JSONEq(t, `{"error":405}`, rec.Body.String())
}
