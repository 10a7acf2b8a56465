package binder

import (
	"fmt"
	"mime"
	"net/http"

	"github.com/dmitrymomot/growbuddy/pkg/validator"
)

const (
	mediaJSON = "application/json"
	mediaForm = "application/x-www-form-urlencoded"
)

// Record creates a binder for candidate plant records. The body may be a
// JSON object or a url-encoded form; for repeated form keys the first value
// wins. Targets other than *validator.Record return ErrBinderNotApplicable.
func Record() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		target, ok := v.(*validator.Record)
		if !ok {
			return ErrBinderNotApplicable
		}

		mediaType, err := requestMediaType(r)
		if err != nil {
			return err
		}

		switch mediaType {
		case mediaJSON:
			record := validator.Record{}
			if err := decodeJSON(r.Body, &record); err != nil {
				return err
			}
			if record == nil {
				return fmt.Errorf("%w: expected a JSON object", ErrFailedToParseJSON)
			}
			*target = record
			return nil

		case mediaForm:
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			record := make(validator.Record, len(r.PostForm))
			for key, values := range r.PostForm {
				if len(values) > 0 {
					record[key] = values[0]
				}
			}
			*target = record
			return nil

		default:
			return fmt.Errorf("%w: got %s, expected %s or %s", ErrUnsupportedMediaType, mediaType, mediaJSON, mediaForm)
		}
	}
}

func requestMediaType(r *http.Request) (string, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return "", fmt.Errorf("%w: missing content-type header", ErrMissingContentType)
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}
	return mediaType, nil
}
