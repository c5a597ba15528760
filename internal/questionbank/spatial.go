package questionbank

func spatialPool() []Question {
	return []Question{
		{
			ID: "SP001", Category: "spatial", Subcategory: "rotation", Difficulty: DifficultyMedium,
			Prompt:       "The letter F is rotated 90° clockwise. Which description matches the result?",
			Options:      []string{"The vertical stroke becomes horizontal, arms pointing down", "The letter is mirrored left-to-right", "The letter is unchanged", "The letter is upside down"},
			CorrectIndex: 0,
			Explanation:  "A 90° clockwise rotation turns the upright stroke horizontal with the two arms pointing downward.",
		},
		{
			ID: "SP002", Category: "spatial", Subcategory: "folding", Difficulty: DifficultyHard,
			Prompt: "A cube net is laid out as a cross with faces numbered 1 to 6. When folded into a cube, which face is opposite face 3?",
			Diagram: "    [1]\n" +
				"[2] [3] [4] [5]\n" +
				"    [6]",
			Options:      []string{"Face 5", "Face 4", "Face 2", "Face 6"},
			CorrectIndex: 0,
			Explanation:  "When the cross net folds into a cube, face 3 and face 5 end up on opposite sides.",
		},
		{
			ID: "SP003", Category: "spatial", Subcategory: "mirror", Difficulty: DifficultyMedium,
			Prompt:       "Which of these looks the same in a vertical mirror?",
			Options:      []string{"The letter R", "The letter A", "The letter P", "The letter G"},
			CorrectIndex: 1,
			Explanation:  "The letter A is symmetric about a vertical axis, so its mirror image is unchanged.",
		},
		{
			ID: "SP004", Category: "spatial", Subcategory: "folding", Difficulty: DifficultyMedium,
			Prompt:       "A square of paper is folded in half twice, and one corner is cut off. How many holes appear when unfolded, if the cut corner was the folded centre?",
			Options:      []string{"One hole at a corner", "Two holes at the edges", "One hole in the centre", "Four holes"},
			CorrectIndex: 2,
			Explanation:  "The folded centre corresponds to the single centre point of the sheet, so unfolding reveals one central hole.",
		},
		{
			ID: "SP005", Category: "spatial", Subcategory: "rotation", Difficulty: DifficultyHard,
			Prompt:       "A die shows 3 on top and 2 facing you. It is tipped forward once (toward you). What is now on top?",
			Options:      []string{"5", "6", "1", "4"},
			CorrectIndex: 0,
			Explanation:  "Tipping forward brings the back face to the top; with 3 up and 2 front, the back face is 5.",
		},
		{
			ID: "SP006", Category: "spatial", Subcategory: "assembly", Difficulty: DifficultyMedium,
			Prompt:       "A 3×3×3 cube is painted on all outer faces and cut into 27 unit cubes. How many unit cubes have no paint?",
			Options:      []string{"0", "1", "6", "8"},
			CorrectIndex: 1,
			Explanation:  "Only the single cube at the very centre is hidden from every painted face.",
		},
	}
}
