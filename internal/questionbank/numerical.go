package questionbank

func numericalPool() []Question {
	return []Question{
		{
			ID: "N001", Category: "numerical", Subcategory: "percentages", Difficulty: DifficultyMedium,
			Prompt:       "A company's revenue increased by 15% from £2.4 million. What is the new revenue?",
			Options:      []string{"£2.76m", "£2.64m", "£2.88m", "£2.52m"},
			CorrectIndex: 0,
			Explanation:  "£2.4m × 1.15 = £2.76m.",
		},
		{
			ID: "N002", Category: "numerical", Subcategory: "percentages", Difficulty: DifficultyMedium,
			Prompt:       "After a 12% discount, an item costs £308. What was the original price?",
			Options:      []string{"£340", "£350", "£360", "£345"},
			CorrectIndex: 1,
			Explanation:  "88% of the original = £308, so the original = £308 ÷ 0.88 = £350.",
		},
		{
			ID: "N003", Category: "numerical", Subcategory: "ratios", Difficulty: DifficultyEasy,
			Prompt:       "Divide £720 in the ratio 5:3:4.",
			Options:      []string{"£300 : £180 : £240", "£360 : £216 : £144", "£250 : £150 : £200", "£400 : £240 : £320"},
			CorrectIndex: 0,
			Explanation:  "Total parts = 12, so each part is £720 ÷ 12 = £60. The shares are 5×60 = £300, 3×60 = £180, 4×60 = £240.",
		},
		{
			ID: "N004", Category: "numerical", Subcategory: "currency", Difficulty: DifficultyMedium,
			Prompt:       "If £1 = $1.25 and €1 = $1.10, how many euros equal £500?",
			Options:      []string{"€550", "€625", "€568", "€575"},
			CorrectIndex: 2,
			Explanation:  "£500 = $625. Then $625 ÷ 1.10 = €568.18, which rounds to €568.",
		},
		{
			ID: "N005", Category: "numerical", Subcategory: "data_table", Difficulty: DifficultyMedium,
			Prompt: "Using the quarterly figures shown, what was the average quarterly profit?",
			Diagram: "Quarter | Sales (£k) | Costs (£k)\n" +
				"Q1      | 450        | 320\n" +
				"Q2      | 520        | 380\n" +
				"Q3      | 480        | 350\n" +
				"Q4      | 610        | 420",
			Options:      []string{"£150k", "£147.5k", "£145k", "£152.5k"},
			CorrectIndex: 1,
			Explanation:  "Profits are Q1 £130k, Q2 £140k, Q3 £130k, Q4 £190k. Average = (130+140+130+190) ÷ 4 = £147.5k.",
		},
		{
			ID: "N006", Category: "numerical", Subcategory: "finance", Difficulty: DifficultyHard,
			Prompt:       "An investment grows at 8% compound interest for 3 years. What is the growth factor?",
			Options:      []string{"1.24", "1.26", "1.25", "1.2597"},
			CorrectIndex: 3,
			Explanation:  "(1.08)³ = 1.08 × 1.08 × 1.08 = 1.259712 ≈ 1.2597.",
		},
		{
			ID: "N007", Category: "numerical", Subcategory: "finance", Difficulty: DifficultyMedium,
			Prompt:       "A share price drops 20% then rises 25%. What is the net change?",
			Options:      []string{"No change", "+5%", "-5%", "+2%"},
			CorrectIndex: 0,
			Explanation:  "Start at 100: a 20% drop gives 80, then a 25% rise gives 100 again. Net change is 0%.",
		},
		{
			ID: "N008", Category: "numerical", Subcategory: "rates", Difficulty: DifficultyMedium,
			Prompt:       "A train travels 360 km in 2 hours 24 minutes. What is its average speed?",
			Options:      []string{"144 km/h", "160 km/h", "150 km/h", "140 km/h"},
			CorrectIndex: 2,
			Explanation:  "2h 24m = 2.4 hours. Speed = 360 ÷ 2.4 = 150 km/h.",
		},
		{
			ID: "N009", Category: "numerical", Subcategory: "rates", Difficulty: DifficultyHard,
			Prompt:       "Machine A produces 240 units/hour and machine B produces 180 units/hour. Working together for 6 hours, how many units do they produce?",
			Options:      []string{"2,520", "2,400", "2,640", "2,340"},
			CorrectIndex: 0,
			Explanation:  "Combined rate is 420 units/hour. 420 × 6 = 2,520 units.",
		},
		{
			ID: "N010", Category: "numerical", Subcategory: "statistics", Difficulty: DifficultyMedium,
			Prompt:       "The average of 5 numbers is 24. Four of them are 18, 22, 28 and 30. What is the fifth?",
			Options:      []string{"20", "22", "24", "26"},
			CorrectIndex: 1,
			Explanation:  "The total must be 5 × 24 = 120. The four given numbers sum to 98, so the fifth is 120 − 98 = 22.",
		},
		{
			ID: "N011", Category: "numerical", Subcategory: "statistics", Difficulty: DifficultyHard,
			Prompt:       "A dataset has mean 50 and standard deviation 10. Roughly what percentage of a normal distribution falls between 40 and 60?",
			Options:      []string{"95%", "50%", "68%", "75%"},
			CorrectIndex: 2,
			Explanation:  "40 to 60 is ±1 standard deviation from the mean, which covers about 68% of a normal distribution.",
		},
		{
			ID: "N012", Category: "numerical", Subcategory: "percentages", Difficulty: DifficultyEasy,
			Prompt:       "What is 15% of 80 plus 25% of 120?",
			Options:      []string{"42", "45", "40", "48"},
			CorrectIndex: 0,
			Explanation:  "15% of 80 = 12 and 25% of 120 = 30, so the total is 42.",
		},
	}
}
