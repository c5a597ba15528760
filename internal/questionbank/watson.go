package questionbank

const flexWorkPassage = "A study found that 70% of Fortune 500 companies now offer flexible working arrangements. " +
	"Employee satisfaction scores at these companies average 15% higher than industry norms. However, 40% of " +
	"managers report difficulty coordinating team activities."

func watsonGlaserPool() []Question {
	inferenceScale := []string{"True", "Probably True", "Insufficient Data", "Probably False", "False"}

	return []Question{
		{
			ID: "W001", Category: "watson_glaser", Subcategory: "inference", Difficulty: DifficultyHard,
			Passage:      flexWorkPassage,
			Prompt:       "Flexible working always improves company performance.",
			Options:      inferenceScale,
			CorrectIndex: 4,
			Explanation:  "The passage reports higher satisfaction but also coordination difficulties; \"always\" is too absolute. False.",
		},
		{
			ID: "W002", Category: "watson_glaser", Subcategory: "inference", Difficulty: DifficultyMedium,
			Passage:      flexWorkPassage,
			Prompt:       "Some managers struggle with flexible work arrangements.",
			Options:      inferenceScale,
			CorrectIndex: 0,
			Explanation:  "40% of managers reporting coordination difficulty makes this directly supported. True.",
		},
		{
			ID: "W003", Category: "watson_glaser", Subcategory: "assumption", Difficulty: DifficultyHard,
			Prompt: "Statement: \"We should invest in AI training for all staff to remain competitive.\"\n" +
				"Proposed assumption: AI skills will be essential for all roles in the future.",
			Options:      []string{"Assumption Made", "Assumption Not Made"},
			CorrectIndex: 0,
			Explanation:  "Recommending AI training for everyone presupposes the skills matter for every role. Assumption made.",
		},
		{
			ID: "W004", Category: "watson_glaser", Subcategory: "deduction", Difficulty: DifficultyMedium,
			Prompt: "Premises: All team leaders must have PMP certification. Sarah is a team leader.\n" +
				"Conclusion: Sarah has PMP certification.",
			Options:      []string{"Conclusion Follows", "Conclusion Does Not Follow"},
			CorrectIndex: 0,
			Explanation:  "By strict deduction from the premises, the conclusion follows.",
		},
		{
			ID: "W005", Category: "watson_glaser", Subcategory: "evaluation", Difficulty: DifficultyMedium,
			Prompt: "Should companies ban social media during work hours?\n" +
				"Argument: No, because employees need breaks to maintain productivity.",
			Options:      []string{"Strong Argument", "Weak Argument"},
			CorrectIndex: 1,
			Explanation:  "The argument addresses breaks, not social media use during work hours specifically. Weak.",
		},
		{
			ID: "W006", Category: "watson_glaser", Subcategory: "inference", Difficulty: DifficultyHard,
			Passage: "Research shows remote workers are 13% more productive. 68% report higher satisfaction. " +
				"However, 25% feel isolated.",
			Prompt:       "Remote work benefits all employees equally.",
			Options:      inferenceScale,
			CorrectIndex: 4,
			Explanation:  "With 25% feeling isolated, the benefit is clearly not equal for everyone. False.",
		},
		{
			ID: "W007", Category: "watson_glaser", Subcategory: "interpretation", Difficulty: DifficultyMedium,
			Prompt: "Information: A department's error rate fell from 4% to 2% after introducing peer review.\n" +
				"Proposed interpretation: The error rate halved after peer review was introduced.",
			Options:      []string{"Interpretation Follows", "Interpretation Does Not Follow"},
			CorrectIndex: 0,
			Explanation:  "4% to 2% is a halving of the error rate; the interpretation follows from the information given.",
		},
		{
			ID: "W008", Category: "watson_glaser", Subcategory: "deduction", Difficulty: DifficultyHard,
			Prompt: "Premises: Some auditors are statisticians. All statisticians are numerate.\n" +
				"Conclusion: All auditors are numerate.",
			Options:      []string{"Conclusion Follows", "Conclusion Does Not Follow"},
			CorrectIndex: 1,
			Explanation:  "Only some auditors are statisticians, so the premises say nothing about the rest. Does not follow.",
		},
	}
}
