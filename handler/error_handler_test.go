package handler_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/growbuddy/handler"
	"github.com/dmitrymomot/growbuddy/pkg/requestid"
	"github.com/dmitrymomot/growbuddy/pkg/validator"
)

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	t.Run("logs client errors as warnings", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		req := httptest.NewRequest(http.MethodPost, "/plants", nil)
		req = req.WithContext(requestid.WithContext(req.Context(), "req-1"))
		rec := httptest.NewRecorder()

		handler.NewErrorHandler(log)(handler.NewContext(rec, req), validator.ValidationErrors{
			{Field: "name", Message: "Plant name is required"},
		})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "request_id=req-1")
		assert.Contains(t, buf.String(), "status_code=422")
	})

	t.Run("logs server errors as errors", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		rec := httptest.NewRecorder()
		handler.NewErrorHandler(log)(handler.NewContext(rec, httptest.NewRequest(http.MethodGet, "/", nil)), errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "boom")
	})
}
