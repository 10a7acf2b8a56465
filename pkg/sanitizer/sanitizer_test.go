package sanitizer_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/growbuddy/pkg/sanitizer"
)

func TestKeepMatching(t *testing.T) {
	t.Run("joins every match", func(t *testing.T) {
		re := regexp.MustCompile(`[A-Za-z ]+`)
		assert.Equal(t, "Rose Garden", sanitizer.KeepMatching("Rose@ Garden#1", re))
	})

	t.Run("returns empty string when nothing matches", func(t *testing.T) {
		re := regexp.MustCompile(`\d+`)
		assert.Equal(t, "", sanitizer.KeepMatching("no digits here", re))
	})

	t.Run("nil pattern yields empty string", func(t *testing.T) {
		assert.Equal(t, "", sanitizer.KeepMatching("anything", nil))
	})
}

func TestFold(t *testing.T) {
	assert.Equal(t, sanitizer.Fold("aphids"), sanitizer.Fold("APHIDS"))
	assert.True(t, sanitizer.EqualFold("Root Rot", "root rot"))
	assert.True(t, sanitizer.EqualFold("STRASSE", "straße"))
	assert.False(t, sanitizer.EqualFold("Leaf Spot", "Leaf Spots"))
}

func TestFormInput(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, "Desert Star", sanitizer.FormInput("  Desert Star \n"))
	})

	t.Run("normalizes line breaks inside text", func(t *testing.T) {
		assert.Equal(t, "water weekly\nfeed monthly", sanitizer.FormInput("water weekly\r\nfeed monthly\r\n"))
	})

	t.Run("drops control characters", func(t *testing.T) {
		assert.Equal(t, "Rose", sanitizer.FormInput("Ro\x00se\x1b"))
	})
}

func TestClampMax(t *testing.T) {
	assert.Equal(t, 100.0, sanitizer.ClampMax(112.25, 100))
	assert.Equal(t, 42, sanitizer.ClampMax(42, 100))
}

func TestRemoveControlChars(t *testing.T) {
	assert.Equal(t, "ab\tc\n", sanitizer.RemoveControlChars("a\x00b\tc\x07\n"))
}
