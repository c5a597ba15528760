package questionbank

func logicalPool() []Question {
	return []Question{
		{
			ID: "L001", Category: "logical", Subcategory: "sequences", Difficulty: DifficultyEasy,
			Prompt:       "What comes next in the sequence: 2, 6, 12, 20, 30, ...?",
			Options:      []string{"40", "42", "44", "36"},
			CorrectIndex: 1,
			Explanation:  "The differences grow by 2 each step: +4, +6, +8, +10, so the next difference is +12 and 30 + 12 = 42.",
		},
		{
			ID: "L002", Category: "logical", Subcategory: "sequences", Difficulty: DifficultyMedium,
			Prompt:       "What comes next in the sequence: 3, 4, 7, 11, 18, 29, ...?",
			Options:      []string{"47", "40", "43", "36"},
			CorrectIndex: 0,
			Explanation:  "Each term is the sum of the previous two: 18 + 29 = 47.",
		},
		{
			ID: "L003", Category: "logical", Subcategory: "syllogisms", Difficulty: DifficultyMedium,
			Prompt:       "All accountants are analytical. Some analytical people are introverts. Which conclusion must be true?",
			Options:      []string{"Some accountants are introverts", "All introverts are analytical", "No valid conclusion about accountants and introverts follows", "Some introverts are accountants"},
			CorrectIndex: 2,
			Explanation:  "The analytical people who are introverts need not overlap with accountants, so no conclusion linking accountants and introverts follows.",
		},
		{
			ID: "L004", Category: "logical", Subcategory: "analogies", Difficulty: DifficultyEasy,
			Prompt:       "Book is to Library as Painting is to:",
			Options:      []string{"Frame", "Gallery", "Artist", "Canvas"},
			CorrectIndex: 1,
			Explanation:  "A library is a place where books are kept and displayed; a gallery serves the same role for paintings.",
		},
		{
			ID: "L005", Category: "logical", Subcategory: "analogies", Difficulty: DifficultyMedium,
			Prompt:       "Drought is to Rain as Fatigue is to:",
			Options:      []string{"Exercise", "Weakness", "Rest", "Illness"},
			CorrectIndex: 2,
			Explanation:  "Rain relieves a drought; rest relieves fatigue.",
		},
		{
			ID: "L006", Category: "logical", Subcategory: "deduction", Difficulty: DifficultyMedium,
			Prompt:       "Five colleagues sit in a row. Priya sits left of Tom but right of Ana. Ben sits at the far right. Carl sits between Tom and Ben. Who sits in the middle?",
			Options:      []string{"Priya", "Tom", "Carl", "Ana"},
			CorrectIndex: 1,
			Explanation:  "The order is Ana, Priya, Tom, Carl, Ben, so Tom is in the middle.",
		},
		{
			ID: "L007", Category: "logical", Subcategory: "sequences", Difficulty: DifficultyHard,
			Prompt:       "What comes next in the sequence: 1, 1, 2, 6, 24, 120, ...?",
			Options:      []string{"620", "600", "720", "240"},
			CorrectIndex: 2,
			Explanation:  "Each term is multiplied by an increasing integer: ×1, ×2, ×3, ×4, ×5, so 120 × 6 = 720 (the factorials).",
		},
		{
			ID: "L008", Category: "logical", Subcategory: "syllogisms", Difficulty: DifficultyHard,
			Prompt:       "No managers are contractors. All contractors are badge holders. Which conclusion must be true?",
			Options:      []string{"No badge holders are managers", "Some badge holders are not managers", "All badge holders are contractors", "Some managers are badge holders"},
			CorrectIndex: 1,
			Explanation:  "Contractors are badge holders and are not managers, so at least those badge holders are not managers.",
		},
		{
			ID: "L009", Category: "logical", Subcategory: "coding", Difficulty: DifficultyMedium,
			Prompt:       "In a certain code, CABLE is written as DBCMF. How is PLANT written?",
			Options:      []string{"QMBOU", "QNBOU", "OMBOU", "QMBPU"},
			CorrectIndex: 0,
			Explanation:  "Each letter shifts forward by one: P→Q, L→M, A→B, N→O, T→U gives QMBOU.",
		},
		{
			ID: "L010", Category: "logical", Subcategory: "deduction", Difficulty: DifficultyEasy,
			Prompt:       "If all reports are reviewed on Fridays and today a report was reviewed, what must be true?",
			Options:      []string{"Today is Friday", "The report was late", "Nothing must be true; reviews may also happen on other days", "Every report was reviewed today"},
			CorrectIndex: 2,
			Explanation:  "\"All reports are reviewed on Fridays\" does not exclude reviews on other days, so no conclusion about today follows.",
		},
	}
}
