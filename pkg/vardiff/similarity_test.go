package vardiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	t.Run("Identical", func(t *testing.T) {
		assert.Equal(t, 1.0, Similarity("led the migration", "led the migration"))
	})

	t.Run("Both empty", func(t *testing.T) {
		assert.Equal(t, 1.0, Similarity("", ""))
	})

	t.Run("One side empty", func(t *testing.T) {
		assert.Equal(t, 0.0, Similarity("", "gone"))
		assert.Equal(t, 0.0, Similarity("gone", ""))
	})

	t.Run("Small edit stays close to 1", func(t *testing.T) {
		got := Similarity("Shipped the billing engine", "Shipped the billing engines")
		assert.Greater(t, got, 0.9)
		assert.Less(t, got, 1.0)
	})

	t.Run("Disjoint text scores low", func(t *testing.T) {
		got := Similarity("alpha beta gamma", "wholly unrelated words here")
		assert.Less(t, got, 0.5)
	})

	t.Run("Bounded", func(t *testing.T) {
		pairs := [][2]string{
			{"a", "aaaa"},
			{"résumé", "resume"},
			{"one two", "two one"},
		}
		for _, p := range pairs {
			got := Similarity(p[0], p[1])
			assert.GreaterOrEqual(t, got, 0.0, "Similarity(%q, %q)", p[0], p[1])
			assert.LessOrEqual(t, got, 1.0, "Similarity(%q, %q)", p[0], p[1])
		}
	})

	t.Run("Symmetric-ish ordering", func(t *testing.T) {
		a := Similarity("the quick fox", "the fast fox")
		b := Similarity("the fast fox", "the quick fox")
		assert.InDelta(t, a, b, 1e-9)
	})
}
