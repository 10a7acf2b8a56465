package plant

import (
	"fmt"
	"math/rand/v2"

	"github.com/dmitrymomot/growbuddy/pkg/validator"
)

const (
	idLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	idDigits  = "0123456789"
)

// GenerateID returns a random plant ID of the form PLT-XX0000.
// A nil rng uses the global source. It never fails: if the generated ID does
// not pass the plant_id rule, a PLT-AA prefixed ID is returned instead.
func GenerateID(rng *rand.Rand) string {
	return generateID(intn(rng), validator.Default().MustLookup(validator.FieldPlantID).Match)
}

func generateID(n func(int) int, valid func(string) bool) string {
	buf := make([]byte, 0, 10)
	buf = append(buf, "PLT-"...)
	for range 2 {
		buf = append(buf, idLetters[n(len(idLetters))])
	}
	for range 4 {
		buf = append(buf, idDigits[n(len(idDigits))])
	}
	id := string(buf)
	if valid(id) {
		return id
	}
	return fmt.Sprintf("PLT-AA%04d", 1000+n(9000))
}

func intn(rng *rand.Rand) func(int) int {
	if rng == nil {
		return rand.IntN
	}
	return rng.IntN
}
