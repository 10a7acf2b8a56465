package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/growbuddy/pkg/validator"
)

func TestDefaultCatalogBoundaries(t *testing.T) {
	cases := map[validator.Field]struct {
		accept []string
		reject []string
	}{
		validator.FieldName: {
			accept: []string{"ab", strings.Repeat("a", 30), "Rose Garden", "Basil-Supreme", "O'Malley's Oak", "123 Plant"},
			reject: []string{"X", strings.Repeat("a", 31), "Plant@Home", "", "Rose\nGarden!"},
		},
		validator.FieldType: {
			accept: []string{"Flower", "Herb", "Succulent", "Vegetable", "Tree"},
			reject: []string{"flower", "Flowers", "Shrub", ""},
		},
		validator.FieldCareNotes: {
			accept: []string{"", "Needs daily watering and weekly fertilizer.", "Harvest leaves regularly for best flavor!", "Café corner, why not?", strings.Repeat("n", 200)},
			reject: []string{"Great for salads & sandwiches!", strings.Repeat("n", 201), "50% shade"},
		},
		validator.FieldStatValue: {
			accept: []string{"0", "9", "50", "99", "100"},
			reject: []string{"101", "-1", "05", "1000", "", "50.0"},
		},
		validator.FieldPlantID: {
			accept: []string{"PLT-AB1234", "PLT-ZZ0000"},
			reject: []string{"PLT-ab1234", "PLT-A1234", "PLT-AB123", "plt-AB1234", "PLT-AB12345"},
		},
		validator.FieldDate: {
			accept: []string{"2024-01-15", "2024-13-45"},
			reject: []string{"2024-1-15", "24-01-15", "2024/01/15"},
		},
		validator.FieldTime: {
			accept: []string{"00:00", "23:59", "29:59"},
			reject: []string{"30:00", "12:60", "9:30", "12:5"},
		},
		validator.FieldEmail: {
			accept: []string{"donlj@example.com", "user.name+tag@domain.org", "test@sub.domain.com", "test.user+garden@example.co.uk"},
			reject: []string{"invalid.email", "@domain.com", "user@", "user@domain.c"},
		},
		validator.FieldLocation: {
			accept: []string{"San Francisco, California", "Dublin, Ireland", "New York City, New York", "Dublin,Ireland", "California, "},
			reject: []string{"San Francisco", "California,", "123 Main St, CA", "Paris, Ile, France"},
		},
		validator.FieldDiseaseName: {
			accept: []string{"APHIDS", "aphids", "Aphid", "Root Rot", "root   rot", "Fungal Infection", "Nutrient Deficiency", "powdery mildew", "Leaf Spot", "SUNBURN", "Overwatering"},
			reject: []string{"Plant Cancer", "Unknown Disease", "rootrot", "aphidss"},
		},
		validator.FieldWaterAmount: {
			accept: []string{"1", "12.5", "99.99", "100", "100.5"},
			reject: []string{"0", "101", "12.345", "05", ".5", "-3"},
		},
		validator.FieldHexColor: {
			accept: []string{"#A1b2C3", "#000000"},
			reject: []string{"A1B2C3", "#12345", "#GGGGGG", "#1234567"},
		},
		validator.FieldTrait: {
			accept: []string{"Fast Growing", "Fragrant", "Low Maintenance", "Decorative"},
			reject: []string{"fragrant", "Tall", "Fast  Growing"},
		},
		validator.FieldSeason: {
			accept: []string{"Spring", "Fall", "Autumn"},
			reject: []string{"autumn", "Monsoon"},
		},
		validator.FieldWeather: {
			accept: []string{"Sunny", "Snow", "Foggy"},
			reject: []string{"Snowy", "sunny"},
		},
	}

	catalog := validator.Default()
	for field, tc := range cases {
		rule, ok := catalog.Lookup(field)
		require.True(t, ok, "missing rule for %s", field)

		t.Run(string(field), func(t *testing.T) {
			for _, v := range tc.accept {
				assert.True(t, rule.Match(v), "%s should accept %q", field, v)
			}
			for _, v := range tc.reject {
				assert.False(t, rule.Match(v), "%s should reject %q", field, v)
			}
		})
	}
}

func TestDefaultCatalogFields(t *testing.T) {
	fields := validator.Default().Fields()
	assert.Len(t, fields, 15)
	assert.Equal(t, validator.FieldName, fields[0])
	assert.Equal(t, validator.FieldWeather, fields[len(fields)-1])

	fields[0] = "mutated"
	assert.Equal(t, validator.FieldName, validator.Default().Fields()[0], "Fields must return a copy")
}

func TestEnumerationsAgreeWithCatalog(t *testing.T) {
	c := validator.Default()
	for _, v := range validator.PlantTypes {
		assert.True(t, c.MustLookup(validator.FieldType).Match(v), v)
	}
	for _, v := range validator.PlantTraits {
		assert.True(t, c.MustLookup(validator.FieldTrait).Match(v), v)
	}
	for _, v := range validator.DiseaseNames {
		assert.True(t, c.MustLookup(validator.FieldDiseaseName).Match(v), v)
	}
	for _, v := range validator.Seasons {
		assert.True(t, c.MustLookup(validator.FieldSeason).Match(v), v)
	}
	for _, v := range validator.WeatherConditions {
		assert.True(t, c.MustLookup(validator.FieldWeather).Match(v), v)
	}
}

func TestNewCatalog(t *testing.T) {
	t.Run("builds a custom catalog", func(t *testing.T) {
		c, err := validator.NewCatalog(validator.RuleSpec{Field: "code", Expr: `^[A-Z]{3}$`})
		require.NoError(t, err)

		rule, ok := c.Lookup("code")
		require.True(t, ok)
		assert.Equal(t, "code", rule.Label)
		assert.Equal(t, "code format is invalid", rule.Message)
		assert.True(t, rule.Match("ABC"))

		_, ok = c.Lookup(validator.FieldName)
		assert.False(t, ok)
	})

	t.Run("rejects duplicate fields", func(t *testing.T) {
		_, err := validator.NewCatalog(
			validator.RuleSpec{Field: "code", Expr: `^a$`},
			validator.RuleSpec{Field: "code", Expr: `^b$`},
		)
		assert.ErrorIs(t, err, validator.ErrDuplicateField)
	})

	t.Run("rejects invalid patterns", func(t *testing.T) {
		_, err := validator.NewCatalog(validator.RuleSpec{Field: "code", Expr: `^(a$`})
		assert.ErrorIs(t, err, validator.ErrInvalidPattern)
	})

	t.Run("must lookup panics on unknown field", func(t *testing.T) {
		assert.Panics(t, func() { validator.Default().MustLookup("nope") })
	})
}
