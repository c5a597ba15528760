package questionbank

func abstractPool() []Question {
	return []Question{
		{
			ID: "A001", Category: "abstract", Subcategory: "pattern", Difficulty: DifficultyEasy,
			Prompt:       "A sequence of figures shows one circle, then two circles, then three circles. What comes next?",
			Options:      []string{"Two circles", "Four circles", "Five circles", "One circle"},
			CorrectIndex: 1,
			Explanation:  "The count increases by one circle each step, so the next figure has four circles.",
		},
		{
			ID: "A002", Category: "abstract", Subcategory: "rotation", Difficulty: DifficultyMedium,
			Prompt:       "An arrow points right, then down-right, then down. Continuing the same rotation, where does it point next?",
			Options:      []string{"Up", "Left", "Down-left", "Up-right"},
			CorrectIndex: 2,
			Explanation:  "The arrow rotates 45° clockwise each step: right, down-right, down, then down-left.",
		},
		{
			ID: "A003", Category: "abstract", Subcategory: "matrix", Difficulty: DifficultyHard,
			Prompt: "Complete the matrix with the missing cell.",
			Diagram: "[X . .] [. X .] [. . X]\n" +
				"[. X .] [. . X] [ ? ]",
			Options:      []string{"[X . .]", "[. X .]", "[. . X]", "[X X X]"},
			CorrectIndex: 0,
			Explanation:  "The filled cell shifts one position right each frame and wraps around, so the next frame is [X . .].",
		},
		{
			ID: "A004", Category: "abstract", Subcategory: "pattern", Difficulty: DifficultyMedium,
			Prompt:       "A shape sequence runs triangle, square, hexagon. Which figure continues the progression?",
			Options:      []string{"Pentagon", "Circle", "Square", "Triangle"},
			CorrectIndex: 1,
			Explanation:  "The number of sides roughly doubles in visual density (3, 4, 6, ...); the progression tends toward a circle.",
		},
		{
			ID: "A005", Category: "abstract", Subcategory: "pattern", Difficulty: DifficultyMedium,
			Prompt:       "Size progression: small, medium, large. What completes the pattern?",
			Options:      []string{"Tiny", "Small", "Extra large", "Medium"},
			CorrectIndex: 2,
			Explanation:  "Each step grows, so the pattern completes with extra large.",
		},
		{
			ID: "A006", Category: "abstract", Subcategory: "pattern", Difficulty: DifficultyMedium,
			Prompt:       "Shade progression: light, medium, dark. What completes the pattern?",
			Options:      []string{"Black", "White", "Gray", "Light"},
			CorrectIndex: 0,
			Explanation:  "Each step darkens, so the pattern completes with black.",
		},
		{
			ID: "A007", Category: "abstract", Subcategory: "odd_one_out", Difficulty: DifficultyMedium,
			Prompt:       "Which does not belong: a rotated square, a reflected square, a resized square, a pentagon?",
			Options:      []string{"Rotated square", "Reflected square", "Resized square", "Pentagon"},
			CorrectIndex: 3,
			Explanation:  "Three figures are transformations of the same square; the pentagon is a different shape entirely.",
		},
		{
			ID: "A008", Category: "abstract", Subcategory: "sequence", Difficulty: DifficultyHard,
			Prompt: "Each frame adds one dot and rotates the group a quarter turn clockwise. Frame 3 shows three dots at the top-right. Where and how many in frame 4?",
			Options: []string{
				"Four dots at the bottom-right",
				"Three dots at the bottom-left",
				"Four dots at the top-left",
				"Five dots at the top-right",
			},
			CorrectIndex: 0,
			Explanation:  "Adding one dot makes four, and a quarter turn clockwise moves the group from top-right to bottom-right.",
		},
	}
}
