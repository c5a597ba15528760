package session

// GradeLabel maps a 0-100 score to its performance band.
func GradeLabel(score int) string {
	switch {
	case score >= 90:
		return "Outstanding"
	case score >= 80:
		return "Excellent"
	case score >= 70:
		return "Good"
	case score >= 60:
		return "Satisfactory"
	case score >= 50:
		return "Below Average"
	default:
		return "Needs Significant Improvement"
	}
}
