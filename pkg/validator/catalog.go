package validator

import (
	"fmt"
	"slices"
)

// Field identifies a rule in the catalog. Record fields use the same names
// as the keys of a candidate record.
type Field string

const (
	FieldName        Field = "name"
	FieldType        Field = "type"
	FieldCareNotes   Field = "care_notes"
	FieldStatValue   Field = "stat_value"
	FieldPlantID     Field = "plant_id"
	FieldDate        Field = "date"
	FieldTime        Field = "time"
	FieldEmail       Field = "owner_email"
	FieldLocation    Field = "location"
	FieldDiseaseName Field = "disease_name"
	FieldWaterAmount Field = "water_amount"
	FieldHexColor    Field = "hex_color"
	FieldTrait       Field = "trait"
	FieldSeason      Field = "season"
	FieldWeather     Field = "weather"
)

func (f Field) String() string { return string(f) }

// PlantTypes, PlantTraits, DiseaseNames, Seasons and WeatherConditions list
// the closed enumerations encoded in the catalog.
var (
	PlantTypes        = []string{"Flower", "Herb", "Succulent", "Vegetable", "Tree"}
	PlantTraits       = []string{"Fast Growing", "Drought Resistant", "Disease Resistant", "High Yield", "Colorful", "Fragrant", "Cold Hardy", "Heat Tolerant", "Low Maintenance", "Decorative"}
	DiseaseNames      = []string{"Root Rot", "Aphids", "Fungal Infection", "Nutrient Deficiency", "Overwatering", "Sunburn", "Leaf Spot", "Powdery Mildew"}
	Seasons           = []string{"Spring", "Summer", "Fall", "Autumn", "Winter"}
	WeatherConditions = []string{"Sunny", "Rainy", "Cloudy", "Windy", "Stormy", "Foggy", "Snow"}
)

// FieldRule binds a field to its pattern.
// Label is used in per-field messages, Message in record-level messages.
type FieldRule struct {
	Field   Field
	Label   string
	Message string
	Pattern
}

// Match reports whether value satisfies the rule.
func (r FieldRule) Match(value string) bool {
	return r.MatchString(value)
}

// RuleSpec is the uncompiled form of a FieldRule.
type RuleSpec struct {
	Field       Field
	Label       string
	Expr        string
	Description string
	Message     string
}

// Catalog is an immutable set of field rules.
type Catalog struct {
	rules map[Field]FieldRule
	order []Field
}

// NewCatalog compiles specs into a catalog. Fields keep declaration order.
func NewCatalog(specs ...RuleSpec) (*Catalog, error) {
	c := &Catalog{
		rules: make(map[Field]FieldRule, len(specs)),
		order: make([]Field, 0, len(specs)),
	}
	for _, rs := range specs {
		if _, exists := c.rules[rs.Field]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, rs.Field)
		}
		p, err := NewPattern(rs.Expr, rs.Description)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", rs.Field, err)
		}
		label := rs.Label
		if label == "" {
			label = string(rs.Field)
		}
		message := rs.Message
		if message == "" {
			message = label + " format is invalid"
		}
		c.rules[rs.Field] = FieldRule{Field: rs.Field, Label: label, Message: message, Pattern: p}
		c.order = append(c.order, rs.Field)
	}
	return c, nil
}

// MustCatalog is like NewCatalog but panics on error.
func MustCatalog(specs ...RuleSpec) *Catalog {
	c, err := NewCatalog(specs...)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the rule registered for field.
func (c *Catalog) Lookup(field Field) (FieldRule, bool) {
	r, ok := c.rules[field]
	return r, ok
}

// MustLookup returns the rule for field or panics. Use only with the
// package constants against the default catalog.
func (c *Catalog) MustLookup(field Field) FieldRule {
	r, ok := c.rules[field]
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrUnknownField, field))
	}
	return r
}

// Fields returns the declared fields in order.
func (c *Catalog) Fields() []Field {
	return slices.Clone(c.order)
}

// Rules returns the rules in declaration order.
func (c *Catalog) Rules() []FieldRule {
	out := make([]FieldRule, 0, len(c.order))
	for _, f := range c.order {
		out = append(out, c.rules[f])
	}
	return out
}

// DefaultRules is the rule table behind Default.
var DefaultRules = []RuleSpec{
	{
		Field:       FieldName,
		Label:       "Plant name",
		Expr:        `^[A-Za-z0-9\s\-']{2,30}$`,
		Description: "2-30 characters: letters, numbers, spaces, hyphens, apostrophes",
		Message:     "Plant name must be 2-30 characters, letters, numbers, spaces, hyphens, or apostrophes only",
	},
	{
		Field:       FieldType,
		Label:       "Plant type",
		Expr:        `^(Flower|Herb|Succulent|Vegetable|Tree)$`,
		Description: "one of Flower, Herb, Succulent, Vegetable, Tree",
		Message:     "Plant type must be one of: Flower, Herb, Succulent, Vegetable, Tree",
	},
	{
		Field:       FieldCareNotes,
		Label:       "Care notes",
		Expr:        `^[\p{L}\p{N}_\s.,!?'-]{0,200}$`,
		Description: "letters, numbers, spaces, basic punctuation (max 200 chars)",
		Message:     "Care notes can only contain letters, numbers, spaces, and basic punctuation (max 200 characters)",
	},
	{
		Field:       FieldStatValue,
		Label:       "Stat value",
		Expr:        `^(?:100|[1-9]?\d)$`,
		Description: "integer from 0 to 100",
	},
	{
		Field:       FieldPlantID,
		Label:       "Plant ID",
		Expr:        `^PLT-[A-Z]{2}\d{4}$`,
		Description: "PLT- followed by two uppercase letters and four digits",
	},
	{
		Field:       FieldDate,
		Label:       "Date",
		Expr:        `^\d{4}-\d{2}-\d{2}$`,
		Description: "YYYY-MM-DD",
	},
	{
		Field:       FieldTime,
		Label:       "Time",
		Expr:        `^[0-2]\d:[0-5]\d$`,
		Description: "HH:MM",
	},
	{
		Field:       FieldEmail,
		Label:       "Email",
		Expr:        `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`,
		Description: "valid email address format",
		Message:     "Email format is invalid",
	},
	{
		Field:       FieldLocation,
		Label:       "Location",
		Expr:        `^[A-Za-z\s]+,\s*[A-Za-z\s]+$`,
		Description: "City, State/Country",
		Message:     "Location must be in format: City, State/Country",
	},
	{
		Field:       FieldDiseaseName,
		Label:       "Disease name",
		Expr:        `(?i)^(root\s+rot|aphids?|fungal\s+infection|nutrient\s+deficiency|overwatering|sunburn|leaf\s+spot|powdery\s+mildew)$`,
		Description: "a recognized plant disease",
	},
	{
		Field:       FieldWaterAmount,
		Label:       "Water amount",
		Expr:        `^(?:[1-9]\d?|100)(?:\.\d{1,2})?$`,
		Description: "1-100 with up to two decimal places",
	},
	{
		Field:       FieldHexColor,
		Label:       "Hex color",
		Expr:        `^#[A-Fa-f0-9]{6}$`,
		Description: "# followed by six hex digits",
	},
	{
		Field:       FieldTrait,
		Label:       "Plant trait",
		Expr:        `^(Fast Growing|Drought Resistant|Disease Resistant|High Yield|Colorful|Fragrant|Cold Hardy|Heat Tolerant|Low Maintenance|Decorative)$`,
		Description: "one of the predefined plant traits",
	},
	{
		Field:       FieldSeason,
		Label:       "Season",
		Expr:        `^(Spring|Summer|Fall|Autumn|Winter)$`,
		Description: "Spring, Summer, Fall, Autumn or Winter",
	},
	{
		Field:       FieldWeather,
		Label:       "Weather",
		Expr:        `^(Sunny|Rainy|Cloudy|Windy|Stormy|Foggy|Snow)$`,
		Description: "Sunny, Rainy, Cloudy, Windy, Stormy, Foggy or Snow",
	},
}

var defaultCatalog = MustCatalog(DefaultRules...)

// Default returns the shared built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}
