package questionbank

func iqPool() []Question {
	return []Question{
		{
			ID: "I001", Category: "iq", Subcategory: "puzzles", Difficulty: DifficultyMedium,
			Prompt:       "A bat and a ball cost £1.10 together. The bat costs £1.00 more than the ball. How much is the ball?",
			Options:      []string{"10p", "5p", "15p", "1p"},
			CorrectIndex: 1,
			Explanation:  "If the ball is 5p, the bat is £1.05 and together they make £1.10. The intuitive 10p answer gives £1.20.",
		},
		{
			ID: "I002", Category: "iq", Subcategory: "odd_one_out", Difficulty: DifficultyEasy,
			Prompt:       "Which is the odd one out: Dog, Cat, Snake, Rabbit?",
			Options:      []string{"Dog", "Cat", "Snake", "Rabbit"},
			CorrectIndex: 2,
			Explanation:  "Dog, cat, and rabbit are mammals with fur; a snake is a reptile.",
		},
		{
			ID: "I003", Category: "iq", Subcategory: "logic", Difficulty: DifficultyMedium,
			Prompt:       "Maya is taller than Nia. Nia is taller than Omar. Who is shortest?",
			Options:      []string{"Maya", "Nia", "Omar", "Cannot be determined"},
			CorrectIndex: 2,
			Explanation:  "The heights chain transitively: Maya > Nia > Omar, so Omar is shortest.",
		},
		{
			ID: "I004", Category: "iq", Subcategory: "sequences", Difficulty: DifficultyMedium,
			Prompt:       "Which letter comes next: J, F, M, A, M, J, J, ...?",
			Options:      []string{"A", "S", "J", "O"},
			CorrectIndex: 0,
			Explanation:  "The letters are the months' initials: January through July, so August comes next.",
		},
		{
			ID: "I005", Category: "iq", Subcategory: "puzzles", Difficulty: DifficultyHard,
			Prompt:       "If 5 machines take 5 minutes to make 5 widgets, how long do 100 machines take to make 100 widgets?",
			Options:      []string{"100 minutes", "20 minutes", "5 minutes", "1 minute"},
			CorrectIndex: 2,
			Explanation:  "Each machine makes one widget in 5 minutes, so 100 machines make 100 widgets in the same 5 minutes.",
		},
		{
			ID: "I006", Category: "iq", Subcategory: "puzzles", Difficulty: DifficultyHard,
			Prompt:       "A lily pad patch doubles in size every day and covers a lake in 48 days. How long to cover half the lake?",
			Options:      []string{"24 days", "47 days", "46 days", "12 days"},
			CorrectIndex: 1,
			Explanation:  "The patch doubles daily, so it covers half the lake exactly one day before covering all of it: day 47.",
		},
	}
}
