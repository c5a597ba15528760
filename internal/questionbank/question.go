package questionbank

// Difficulty grades a question for display and analytics.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question is a single multiple-choice assessment item.
// Records are immutable after construction: consumers must never mutate
// Options or any other field.
type Question struct {
	// ID uniquely identifies the question across the whole bank.
	// Static items use short codes ("N001"); generated items use
	// synthesized identifiers ("gen-numerical-<stamp>-<n>").
	ID string

	// Category is the bank category key, e.g. "numerical".
	Category string

	// Subcategory is the sub-format within the category, e.g. "ratios".
	Subcategory string

	// Difficulty is the authored difficulty grade.
	Difficulty Difficulty

	// Prompt is the question text shown to the candidate. Plain text.
	Prompt string

	// Options are the answer choices, in presentation order.
	// At least 2, normally 4. Never mutated after creation.
	Options []string

	// CorrectIndex is the index into Options of the right answer.
	// Always in range [0, len(Options)).
	CorrectIndex int

	// Explanation is the worked solution shown during review.
	Explanation string

	// Passage is an optional reading passage displayed above the prompt.
	// Empty means the question has no passage.
	Passage string

	// Diagram is an optional plain-text figure (table, pattern grid).
	// Empty means the question has no diagram.
	Diagram string
}

// CategoryInfo describes a category for selection screens.
type CategoryInfo struct {
	Key         string
	Name        string
	Description string
}

// CategoryBlended is the pseudo-category that draws from every pool.
const CategoryBlended = "blended"

// categoryCatalog lists the real categories in presentation order.
var categoryCatalog = []CategoryInfo{
	{Key: "numerical", Name: "Numerical Reasoning", Description: "Percentages, ratios, data tables"},
	{Key: "verbal", Name: "Verbal Reasoning", Description: "Comprehension, True/False/Cannot Say"},
	{Key: "logical", Name: "Logical Reasoning", Description: "Sequences, analogies, syllogisms"},
	{Key: "abstract", Name: "Abstract Reasoning", Description: "Patterns, rotations, matrices"},
	{Key: "watson_glaser", Name: "Watson-Glaser", Description: "Critical thinking, inferences"},
	{Key: "sjt", Name: "Situational Judgement", Description: "Professional scenarios"},
	{Key: "mechanical", Name: "Mechanical Reasoning", Description: "Gears, levers, physics"},
	{Key: "spatial", Name: "Spatial Reasoning", Description: "Visualization, folding, rotation"},
	{Key: "iq", Name: "IQ & Aptitude", Description: "General intelligence, patterns"},
}
