// Package adaptive implements weighted question sampling and the weight
// feedback loop that biases future draws toward previously missed items.
package adaptive

import (
	"math/rand"

	"github.com/abhisek/aptiq/internal/questionbank"
)

// Sample draws min(count, len(pool)) distinct questions from pool using
// roulette-wheel selection without replacement. Each question's draw
// probability is proportional to its weight (1.0 when absent from the map);
// the weight mass is renormalized after every draw. The result is shuffled a
// final time so position in the test carries no information about weight.
//
// Pure function of its inputs plus rng.
func Sample(rng *rand.Rand, pool []questionbank.Question, count int, weights map[string]float64) []questionbank.Question {
	if count > len(pool) {
		count = len(pool)
	}
	if count <= 0 {
		return nil
	}

	candidates := make([]questionbank.Question, len(pool))
	copy(candidates, pool)

	picked := make([]questionbank.Question, 0, count)
	for len(picked) < count {
		var total float64
		for _, q := range candidates {
			total += weightOf(weights, q.ID)
		}

		target := rng.Float64() * total
		idx := len(candidates) - 1
		var cum float64
		for i, q := range candidates {
			cum += weightOf(weights, q.ID)
			if target < cum {
				idx = i
				break
			}
		}

		picked = append(picked, candidates[idx])
		candidates[idx] = candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]
	}

	rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	return picked
}

func weightOf(weights map[string]float64, id string) float64 {
	if w, ok := weights[id]; ok && w > 0 {
		return w
	}
	return 1.0
}
