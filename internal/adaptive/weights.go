package adaptive

import "github.com/abhisek/aptiq/internal/questionbank"

// Weight bounds. A saturated question is five times as likely to be drawn as
// a never-missed one; repeated correct answers decay back to the floor.
const (
	MinWeight = 1.0
	MaxWeight = 5.0
)

// Multipliers applied per outcome of a completed session.
const (
	unansweredFactor = 1.5
	wrongFactor      = 1.3
	correctFactor    = 0.8
)

// UpdateWeights returns a copy of weights adjusted for one completed session.
// questions is the frozen session order and answers maps question index to
// the selected option. Unanswered questions are boosted hardest, wrong
// answers less so, and correct answers decay toward the floor. Results are
// clamped to [MinWeight, MaxWeight]. The input map is not mutated.
func UpdateWeights(questions []questionbank.Question, answers map[int]int, weights map[string]float64) map[string]float64 {
	merged := make(map[string]float64, len(weights)+len(questions))
	for id, w := range weights {
		merged[id] = w
	}

	for i, q := range questions {
		w := merged[q.ID]
		if w <= 0 {
			w = MinWeight
		}

		choice, answered := answers[i]
		switch {
		case !answered:
			w *= unansweredFactor
		case choice != q.CorrectIndex:
			w *= wrongFactor
		default:
			w *= correctFactor
		}

		merged[q.ID] = clampWeight(w)
	}
	return merged
}

func clampWeight(w float64) float64 {
	if w < MinWeight {
		return MinWeight
	}
	if w > MaxWeight {
		return MaxWeight
	}
	return w
}
