package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/growbuddy/pkg/validator"
)

func TestValidateField(t *testing.T) {
	rule := validator.Default().MustLookup(validator.FieldPlantID)

	t.Run("accepts matching value", func(t *testing.T) {
		ok, msg := validator.ValidateField("PLT-AB1234", rule)
		assert.True(t, ok)
		assert.Empty(t, msg)
	})

	t.Run("rejects mismatching value with message", func(t *testing.T) {
		ok, msg := validator.ValidateField("PLT-ab1234", rule)
		assert.False(t, ok)
		assert.Equal(t, "Plant ID format is invalid", msg)
	})

	t.Run("rejects non-string values without panicking", func(t *testing.T) {
		for _, v := range []any{nil, 42, 3.5, true, []string{"PLT-AB1234"}} {
			ok, msg := validator.ValidateField(v, rule)
			assert.False(t, ok)
			assert.Equal(t, "Plant ID must be a string", msg)
		}
	})
}

func TestValidatorField(t *testing.T) {
	v := validator.New(nil)

	ok, msg := v.Field(validator.FieldDiseaseName, "APHIDS")
	assert.True(t, ok)
	assert.Empty(t, msg)

	ok, _ = v.Field(validator.FieldDiseaseName, "Plant Cancer")
	assert.False(t, ok)

	ok, msg = v.Field("unknown", "x")
	assert.False(t, ok)
	assert.Equal(t, "unknown field unknown", msg)
}

func TestValidateRecord(t *testing.T) {
	t.Run("required fields only pass", func(t *testing.T) {
		out := validator.ValidateRecord(validator.Record{"name": "Desert Star", "type": "Succulent"})
		assert.True(t, out.Valid)
		assert.Empty(t, out.Errors)
		assert.NoError(t, out.Err())
		assert.Equal(t, map[validator.Field]bool{"name": true, "type": true}, out.Fields)
	})

	t.Run("empty optional fields are treated as not supplied", func(t *testing.T) {
		out := validator.ValidateRecord(validator.Record{
			"name":        "Desert Star",
			"type":        "Succulent",
			"care_notes":  "",
			"location":    "",
			"owner_email": nil,
		})
		assert.True(t, out.Valid)
		assert.NotContains(t, out.Fields, validator.FieldLocation)
	})

	t.Run("malformed optional field fails", func(t *testing.T) {
		out := validator.ValidateRecord(validator.Record{
			"name":        "Desert Star",
			"type":        "Succulent",
			"owner_email": "not-an-email",
		})
		assert.False(t, out.Valid)
		assert.Equal(t, []string{"Email format is invalid"}, out.Errors)
		assert.False(t, out.Fields[validator.FieldEmail])
		assert.True(t, out.Fields[validator.FieldName])
	})

	t.Run("absent fields are skipped", func(t *testing.T) {
		out := validator.ValidateRecord(validator.Record{"location": "Dublin, Ireland"})
		assert.True(t, out.Valid)
	})

	t.Run("empty required field is validated", func(t *testing.T) {
		out := validator.ValidateRecord(validator.Record{"name": "", "type": "Herb"})
		assert.False(t, out.Valid)
		assert.Equal(t, []string{"Plant name must be 2-30 characters, letters, numbers, spaces, hyphens, or apostrophes only"}, out.Errors)
	})

	t.Run("collects every failure in field order", func(t *testing.T) {
		out := validator.ValidateRecord(validator.Record{
			"owner_email": "bad",
			"location":    "Nowhere",
			"care_notes":  "salads & sandwiches",
			"type":        "Shrub",
			"name":        "X",
		})
		require.False(t, out.Valid)
		assert.Equal(t, []string{
			"Plant name must be 2-30 characters, letters, numbers, spaces, hyphens, or apostrophes only",
			"Plant type must be one of: Flower, Herb, Succulent, Vegetable, Tree",
			"Care notes can only contain letters, numbers, spaces, and basic punctuation (max 200 characters)",
			"Location must be in format: City, State/Country",
			"Email format is invalid",
		}, out.Errors)

		verrs := validator.ExtractValidationErrors(out.Err())
		require.Len(t, verrs, 5)
		assert.Equal(t, []string{"name", "type", "care_notes", "location", "owner_email"}, verrs.Fields())
		assert.True(t, errors.Is(out.Err(), validator.ErrValidationFailed))
	})

	t.Run("non-string value fails its field", func(t *testing.T) {
		out := validator.ValidateRecord(validator.Record{"name": 12345, "type": "Tree"})
		assert.False(t, out.Valid)
		assert.False(t, out.Fields[validator.FieldName])
	})

	t.Run("explicit field list restricts the check", func(t *testing.T) {
		out := validator.ValidateRecord(validator.Record{"name": "X", "hex_color": "#00FF00"}, validator.FieldHexColor)
		assert.True(t, out.Valid)
		assert.Equal(t, map[validator.Field]bool{"hex_color": true}, out.Fields)
	})

	t.Run("fields unknown to the catalog fail", func(t *testing.T) {
		out := validator.ValidateRecord(validator.Record{"colour": "red"}, "colour")
		assert.False(t, out.Valid)
		assert.Equal(t, []string{"unknown field colour"}, out.Errors)
	})
}

func TestValidatorWithCustomCatalog(t *testing.T) {
	c := validator.MustCatalog(
		validator.RuleSpec{Field: validator.FieldName, Label: "Name", Expr: `^[a-z]+$`, Message: "lowercase only"},
	)
	v := validator.New(c)

	out := v.Record(validator.Record{"name": "Rose", "type": "whatever"})
	assert.False(t, out.Valid)
	assert.Equal(t, []string{"lowercase only", "unknown field type"}, out.Errors)
	assert.Same(t, c, v.Catalog())
}

func TestExtractMatches(t *testing.T) {
	t.Run("returns matches in order", func(t *testing.T) {
		got := validator.ExtractMatches("The Flower had a ROOT and a stem; trees aside.", validator.PlantMentionPattern)
		assert.Equal(t, []string{"Flower", "ROOT", "stem"}, got)
	})

	t.Run("finds dates and numbers", func(t *testing.T) {
		assert.Equal(t, []string{"2024-03-01", "2024-04-15"},
			validator.ExtractMatches("fed 2024-03-01, repotted 2024-04-15", validator.DateMentionPattern))
		assert.Equal(t, []string{"12.5", "3", "100"},
			validator.ExtractMatches("Watered with 12.5 units, 3 times, 100 total", validator.NumberPattern))
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		got := validator.ExtractMatches("nothing to see", validator.DateMentionPattern)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("zero pattern yields empty slice", func(t *testing.T) {
		got := validator.ExtractMatches("anything", validator.Pattern{})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestSanitize(t *testing.T) {
	letters := validator.MustPattern(`[A-Za-z\s]+`, "letters and spaces")
	assert.Equal(t, "Rose Garden", validator.Sanitize("Rose! Garden#42", letters))
	assert.Equal(t, "", validator.Sanitize("1234", letters))
	assert.Equal(t, "", validator.Sanitize("Rose", validator.Pattern{}))
}

func TestExamples(t *testing.T) {
	t.Parallel()

	want := map[validator.Field][]bool{
		validator.FieldName:        {true, true, true, true, false, false, false},
		validator.FieldEmail:       {true, true, true, false, false, false},
		validator.FieldLocation:    {true, true, true, false, true, false},
		validator.FieldDiseaseName: {true, true, true, true, false, false},
	}

	for field, expected := range want {
		t.Run(string(field), func(t *testing.T) {
			t.Parallel()
			rule := validator.Default().MustLookup(field)
			examples := validator.Examples[field]
			require.Len(t, examples, len(expected))
			for i, example := range examples {
				assert.Equal(t, expected[i], rule.Match(example), "example %q", example)
			}
		})
	}
}
