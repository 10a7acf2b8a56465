package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/growbuddy/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "name", Message: "too short"})
		assert.Equal(t, "validation failed: name: too short", errs.Error())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "name", Message: "too short"})
		errs.Add(validator.ValidationError{Field: "type", Message: "unknown"})
		assert.Equal(t, "validation failed: name: too short; type: unknown", errs.Error())
	})
}

func TestValidationErrors_Helpers(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "name", Message: "too short"},
		{Field: "name", Message: "bad characters"},
		{Field: "location", Message: "missing comma"},
	}

	assert.True(t, errs.Has("name"))
	assert.False(t, errs.Has("type"))
	assert.Equal(t, []string{"too short", "bad characters"}, errs.Get("name"))
	assert.Equal(t, []string{"name", "location"}, errs.Fields())
	assert.Equal(t, []string{"too short", "bad characters", "missing comma"}, errs.Messages())
	assert.Equal(t, map[string][]string{
		"name":     {"too short", "bad characters"},
		"location": {"missing comma"},
	}, errs.ByField())
	assert.False(t, errs.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		record := validator.Record{"name": "Desert Star", "type": "Succulent"}
		err := validator.Apply(
			validator.Required(validator.Default().MustLookup(validator.FieldName), record),
			validator.MatchesField(validator.Default().MustLookup(validator.FieldType), record["type"]),
		)
		assert.NoError(t, err)
	})

	t.Run("collects failures", func(t *testing.T) {
		err := validator.Apply(
			validator.MatchesField(validator.Default().MustLookup(validator.FieldType), "Shrub"),
			validator.MatchesField(validator.Default().MustLookup(validator.FieldSeason), 42),
			validator.Required(validator.Default().MustLookup(validator.FieldName), validator.Record{"type": "Herb"}),
		)
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.Equal(t, "validation.type", verrs[0].Code)
		assert.Equal(t, "Season format is invalid", verrs[1].Message)
		assert.Equal(t, "validation.required", verrs[2].Code)
		assert.Equal(t, "Plant name is required", verrs[2].Message)
	})

	t.Run("matches field rule with record message", func(t *testing.T) {
		rule := validator.Default().MustLookup(validator.FieldLocation)
		err := validator.Apply(validator.MatchesField(rule, "Nowhere"))
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "location", verrs[0].Field)
		assert.Equal(t, "Location must be in format: City, State/Country", verrs[0].Message)
		assert.Equal(t, "validation.location", verrs[0].Code)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("plain")))

	wrapped := fmt.Errorf("creating plant: %w", validator.ValidationErrors{{Field: "name", Message: "x"}})
	assert.Len(t, validator.ExtractValidationErrors(wrapped), 1)
	assert.True(t, validator.IsValidationError(wrapped))
	assert.True(t, errors.Is(wrapped, validator.ErrValidationFailed))
	assert.False(t, validator.IsValidationError(errors.New("plain")))
}
