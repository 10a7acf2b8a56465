package analyzer

import (
	"github.com/dmitrymomot/growbuddy/pkg/plant"
	"github.com/dmitrymomot/growbuddy/pkg/validator"
)

// ExtractPlantMentions finds plant related keywords in text, ignoring case.
func ExtractPlantMentions(text string) []string {
	return validator.ExtractMatches(text, validator.PlantMentionPattern)
}

// ExtractDates collects YYYY-MM-DD dates mentioned in care history notes.
func ExtractDates(history []plant.CareEntry) []string {
	dates := []string{}
	for _, entry := range history {
		dates = append(dates, validator.ExtractMatches(entry.Note, validator.DateMentionPattern)...)
	}
	return dates
}

// ExtractNumbers finds integer and decimal numbers in text.
func ExtractNumbers(text string) []string {
	return validator.ExtractMatches(text, validator.NumberPattern)
}
