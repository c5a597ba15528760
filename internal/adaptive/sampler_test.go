package adaptive

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/aptiq/internal/questionbank"
)

func makePool(n int) []questionbank.Question {
	pool := make([]questionbank.Question, n)
	for i := range pool {
		pool[i] = questionbank.Question{
			ID:           fmt.Sprintf("Q%03d", i),
			Category:     "numerical",
			Prompt:       fmt.Sprintf("question %d", i),
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: 0,
		}
	}
	return pool
}

func TestSampleReturnsDistinctItems(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pool := makePool(10)

	got := Sample(rng, pool, 5, nil)
	require.Len(t, got, 5)

	seen := map[string]bool{}
	for _, q := range got {
		assert.False(t, seen[q.ID], "question %s drawn twice", q.ID)
		seen[q.ID] = true
	}
}

func TestSampleCountExceedsPool(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pool := makePool(3)

	got := Sample(rng, pool, 20, nil)
	assert.Len(t, got, 3)
}

func TestSampleEmptyPool(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	assert.Empty(t, Sample(rng, nil, 5, nil))
	assert.Empty(t, Sample(rng, makePool(5), 0, nil))
}

func TestSampleDoesNotMutatePool(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pool := makePool(10)

	Sample(rng, pool, 5, nil)
	for i, q := range pool {
		assert.Equal(t, fmt.Sprintf("Q%03d", i), q.ID)
	}
}

func TestSampleOrderVariesAcrossRuns(t *testing.T) {
	pool := makePool(10)

	first := Sample(rand.New(rand.NewSource(1)), pool, 5, nil)
	varies := false
	for seed := int64(2); seed < 12; seed++ {
		next := Sample(rand.New(rand.NewSource(seed)), pool, 5, nil)
		for i := range first {
			if next[i].ID != first[i].ID {
				varies = true
			}
		}
	}
	assert.True(t, varies, "every seeded run produced the identical ordering")
}

func TestSampleUniformWhenWeightsEqual(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pool := makePool(10)

	const trials = 10000
	counts := map[string]int{}
	for range trials {
		for _, q := range Sample(rng, pool, 5, nil) {
			counts[q.ID]++
		}
	}

	// Each of the 10 items should be drawn in roughly half the trials.
	expected := float64(trials) * 0.5
	for _, q := range pool {
		deviation := math.Abs(float64(counts[q.ID])-expected) / expected
		assert.Less(t, deviation, 0.05, "item %s drawn %d times, expected ~%.0f", q.ID, counts[q.ID], expected)
	}
}

func TestSampleFavorsHeavyWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	pool := makePool(10)
	weights := map[string]float64{"Q000": MaxWeight}

	const trials = 5000
	var heavy, light int
	for range trials {
		for _, q := range Sample(rng, pool, 3, weights) {
			if q.ID == "Q000" {
				heavy++
			} else if q.ID == "Q001" {
				light++
			}
		}
	}
	assert.Greater(t, heavy, light*2, "a 5x-weighted item should be drawn far more often (heavy=%d light=%d)", heavy, light)
}
