package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradeLabel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "Outstanding"},
		{90, "Outstanding"},
		{89, "Excellent"},
		{80, "Excellent"},
		{75, "Good"},
		{65, "Satisfactory"},
		{50, "Below Average"},
		{49, "Needs Significant Improvement"},
		{0, "Needs Significant Improvement"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeLabel(tt.score), "score %d", tt.score)
	}
}
