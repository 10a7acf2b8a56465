package validator

import "strings"

// Examples holds sample inputs for the pattern tester, valid ones first.
var Examples = map[Field][]string{
	FieldName: {
		"Rose Garden",
		"Basil-Supreme",
		"O'Malley's Oak",
		"123 Plant",
		"X",
		strings.Repeat("A", 31),
		"Plant@Home",
	},
	FieldEmail: {
		"donlj@example.com",
		"user.name+tag@domain.org",
		"test@sub.domain.com",
		"invalid.email",
		"@domain.com",
		"user@",
	},
	FieldLocation: {
		"San Francisco, California",
		"Dublin, Ireland",
		"New York City, New York",
		"San Francisco",
		"California, ",
		"123 Main St, CA",
	},
	FieldDiseaseName: {
		"Root Rot",
		"Aphids",
		"Fungal Infection",
		"Nutrient Deficiency",
		"Plant Cancer",
		"Unknown Disease",
	},
}
