package service

import "math/rand/v2"

// pickRandom returns up to n distinct elements of candidates chosen uniformly at random.
// It runs a partial Fisher-Yates shuffle on a copy.
func pickRandom(candidates []string, n int) []string {
	if n > len(candidates) {
		n = len(candidates)
	}
	if n <= 0 {
		return []string{}
	}

	pool := make([]string, len(candidates))
	copy(pool, candidates)

	for i := range n {
		//nolint:gosec // G404: reviewer selection has no security requirement
		j := i + rand.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:n]
}
