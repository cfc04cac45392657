package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickRandom(t *testing.T) {
	candidates := []string{"u1", "u2", "u3", "u4"}

	t.Run("returns distinct members of the pool", func(t *testing.T) {
		for range 50 {
			picked := pickRandom(candidates, 2)
			assert.Len(t, picked, 2)
			assert.NotEqual(t, picked[0], picked[1])
			assert.Subset(t, candidates, picked)
		}
	})

	t.Run("caps at pool size", func(t *testing.T) {
		assert.ElementsMatch(t, []string{"u1"}, pickRandom([]string{"u1"}, 2))
		assert.Empty(t, pickRandom(nil, 2))
		assert.Empty(t, pickRandom(candidates, 0))
	})

	t.Run("does not mutate input", func(t *testing.T) {
		in := []string{"a", "b", "c"}
		for range 20 {
			pickRandom(in, 2)
		}
		assert.Equal(t, []string{"a", "b", "c"}, in)
	})

	t.Run("every candidate can be chosen", func(t *testing.T) {
		seen := map[string]bool{}
		for range 500 {
			seen[pickRandom(candidates, 1)[0]] = true
		}
		assert.Len(t, seen, len(candidates))
	})
}
