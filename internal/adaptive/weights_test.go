package adaptive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/aptiq/internal/questionbank"
)

func singleQuestion(id string) []questionbank.Question {
	return []questionbank.Question{{
		ID:           id,
		Options:      []string{"a", "b", "c", "d"},
		CorrectIndex: 1,
	}}
}

func TestUpdateWeightsOutcomes(t *testing.T) {
	qs := singleQuestion("Q1")

	tests := []struct {
		name    string
		answers map[int]int
		start   float64
		want    float64
	}{
		{"unanswered boosts", map[int]int{}, 1.0, 1.5},
		{"wrong boosts", map[int]int{0: 3}, 1.0, 1.3},
		{"correct decays to floor", map[int]int{0: 1}, 1.0, 1.0},
		{"correct decays from above", map[int]int{0: 1}, 2.0, 1.6},
		{"unanswered caps at max", map[int]int{}, 4.0, 5.0},
		{"wrong caps at max", map[int]int{0: 0}, 4.5, 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weights := map[string]float64{"Q1": tt.start}
			got := UpdateWeights(qs, tt.answers, weights)
			assert.InDelta(t, tt.want, got["Q1"], 1e-9)
		})
	}
}

func TestUpdateWeightsMissedTwice(t *testing.T) {
	qs := singleQuestion("Q1")
	wrong := map[int]int{0: 3}

	w := UpdateWeights(qs, wrong, nil)
	assert.InDelta(t, 1.3, w["Q1"], 1e-9)

	w = UpdateWeights(qs, wrong, w)
	assert.InDelta(t, 1.69, w["Q1"], 1e-9)
}

func TestUpdateWeightsUnansweredSaturates(t *testing.T) {
	qs := singleQuestion("Q1")
	skipped := map[int]int{}

	w := map[string]float64{}
	path := []float64{1.5, 2.25, 3.375}
	for _, want := range path {
		w = UpdateWeights(qs, skipped, w)
		assert.InDelta(t, want, w["Q1"], 1e-9)
	}

	for range 5 {
		w = UpdateWeights(qs, skipped, w)
	}
	assert.InDelta(t, MaxWeight, w["Q1"], 1e-9)
}

func TestUpdateWeightsStaysBounded(t *testing.T) {
	qs := singleQuestion("Q1")

	w := map[string]float64{}
	for i := range 50 {
		var answers map[int]int
		switch i % 3 {
		case 0:
			answers = map[int]int{} // skipped
		case 1:
			answers = map[int]int{0: 0} // wrong
		default:
			answers = map[int]int{0: 1} // correct
		}
		w = UpdateWeights(qs, answers, w)
		assert.GreaterOrEqual(t, w["Q1"], MinWeight)
		assert.LessOrEqual(t, w["Q1"], MaxWeight)
	}
}

func TestUpdateWeightsPreservesUnrelatedEntries(t *testing.T) {
	qs := singleQuestion("Q1")
	weights := map[string]float64{"OTHER": 2.5}

	got := UpdateWeights(qs, map[int]int{0: 1}, weights)
	assert.InDelta(t, 2.5, got["OTHER"], 1e-9)
	assert.InDelta(t, 2.5, weights["OTHER"], 1e-9, "input map must not be mutated")
	_, touched := weights["Q1"]
	assert.False(t, touched, "input map must not gain entries")
}
