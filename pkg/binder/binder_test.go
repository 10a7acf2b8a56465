package binder_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/growbuddy/pkg/binder"
	"github.com/dmitrymomot/growbuddy/pkg/validator"
)

func newRequest(contentType, body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	return r
}

func TestRecord(t *testing.T) {
	t.Parallel()

	bind := binder.Record()

	t.Run("json object", func(t *testing.T) {
		t.Parallel()
		var record validator.Record
		err := bind(newRequest("application/json; charset=utf-8", `{"name":"Rosie","health":42.0}`), &record)
		require.NoError(t, err)
		assert.Equal(t, "Rosie", record["name"])
		assert.Equal(t, json.Number("42.0"), record["health"])
	})

	t.Run("url-encoded form", func(t *testing.T) {
		t.Parallel()
		var record validator.Record
		err := bind(newRequest("application/x-www-form-urlencoded", "name=Rosie&type=Flower&type=Herb&location="), &record)
		require.NoError(t, err)
		assert.Equal(t, validator.Record{"name": "Rosie", "type": "Flower", "location": ""}, record)
	})

	t.Run("json array is rejected", func(t *testing.T) {
		t.Parallel()
		var record validator.Record
		err := bind(newRequest("application/json", `[1,2]`), &record)
		require.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("null is rejected", func(t *testing.T) {
		t.Parallel()
		var record validator.Record
		err := bind(newRequest("application/json", `null`), &record)
		require.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("trailing data", func(t *testing.T) {
		t.Parallel()
		var record validator.Record
		err := bind(newRequest("application/json", `{"name":"a"} {}`), &record)
		require.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()
		var record validator.Record
		err := bind(newRequest("", `{}`), &record)
		require.ErrorIs(t, err, binder.ErrMissingContentType)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		t.Parallel()
		var record validator.Record
		err := bind(newRequest("text/plain", "name"), &record)
		require.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("other targets are skipped", func(t *testing.T) {
		t.Parallel()
		var target struct{ Name string }
		err := bind(newRequest("application/json", `{}`), &target)
		require.ErrorIs(t, err, binder.ErrBinderNotApplicable)
	})
}

func TestJSON(t *testing.T) {
	t.Parallel()

	type request struct {
		Text    string             `json:"text"`
		Records []validator.Record `json:"records"`
	}

	bind := binder.JSON()

	t.Run("decodes struct", func(t *testing.T) {
		t.Parallel()
		var req request
		err := bind(newRequest("application/json", `{"text":"hi","records":[{"name":"A","water_level":7}]}`), &req)
		require.NoError(t, err)
		assert.Equal(t, "hi", req.Text)
		require.Len(t, req.Records, 1)
		assert.Equal(t, json.Number("7"), req.Records[0]["water_level"])
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		t.Parallel()
		var req request
		err := bind(newRequest("application/json", `{"txt":"hi"}`), &req)
		require.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()
		var req request
		err := bind(newRequest("application/json", ""), &req)
		require.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("body too large", func(t *testing.T) {
		t.Parallel()
		var req request
		body := `{"text":"` + strings.Repeat("a", binder.DefaultMaxJSONSize) + `"}`
		err := bind(newRequest("application/json", body), &req)
		require.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("form is not accepted", func(t *testing.T) {
		t.Parallel()
		var req request
		err := bind(newRequest("application/x-www-form-urlencoded", "text=hi"), &req)
		require.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})
}
