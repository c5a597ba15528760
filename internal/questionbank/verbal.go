package questionbank

const cloudPassage = "Cloud computing has revolutionized enterprise IT infrastructure over the past decade. " +
	"Organizations have migrated from capital-intensive on-premise data centers to operational expenditure " +
	"models offered by hyperscale providers. This shift enables elastic scaling, geographic redundancy, and " +
	"access to managed services that would be prohibitively expensive to build internally. However, concerns " +
	"persist regarding data sovereignty, vendor lock-in, and the environmental impact of energy-intensive data " +
	"centers. Regulatory frameworks like GDPR have introduced complexity in cross-border data flows, forcing " +
	"providers to invest in regional infrastructure and compliance certifications."

const qePassage = "Quantitative easing (QE) programs implemented by central banks following the 2008 financial " +
	"crisis expanded balance sheets to unprecedented levels. The Bank of England's asset purchases reached " +
	"£895 billion by 2022. While QE successfully stabilized financial markets and lowered borrowing costs, " +
	"critics argue it exacerbated wealth inequality by inflating asset prices, disproportionately benefitting " +
	"existing asset holders. The transmission mechanism through financial markets rather than direct fiscal " +
	"transfers meant households without significant asset portfolios saw limited direct benefit, while facing " +
	"higher housing costs and potential future inflationary pressures."

func verbalPool() []Question {
	tfc := []string{"True", "False", "Cannot Say"}

	return []Question{
		{
			ID: "V001", Category: "verbal", Subcategory: "comprehension", Difficulty: DifficultyMedium,
			Passage:      cloudPassage,
			Prompt:       "Cloud computing eliminates all IT infrastructure costs for organizations.",
			Options:      tfc,
			CorrectIndex: 1,
			Explanation:  "The passage says the spend shifts from capital to operational expenditure; it does not say costs are eliminated. False.",
		},
		{
			ID: "V002", Category: "verbal", Subcategory: "comprehension", Difficulty: DifficultyMedium,
			Passage:      cloudPassage,
			Prompt:       "GDPR has required cloud providers to expand their physical infrastructure.",
			Options:      tfc,
			CorrectIndex: 0,
			Explanation:  "The passage explicitly states GDPR is \"forcing providers to invest in regional infrastructure\". True.",
		},
		{
			ID: "V003", Category: "verbal", Subcategory: "comprehension", Difficulty: DifficultyHard,
			Passage:      qePassage,
			Prompt:       "QE programs directly transferred money to all UK households equally.",
			Options:      tfc,
			CorrectIndex: 1,
			Explanation:  "Transmission was through financial markets, not direct transfers, and benefits were disproportionate. False.",
		},
		{
			ID: "V004", Category: "verbal", Subcategory: "comprehension", Difficulty: DifficultyHard,
			Passage:      qePassage,
			Prompt:       "The Bank of England's QE program exceeded £1 trillion.",
			Options:      tfc,
			CorrectIndex: 1,
			Explanation:  "The passage states £895 billion, which is less than £1 trillion. False.",
		},
		{
			ID: "V005", Category: "verbal", Subcategory: "synonym", Difficulty: DifficultyMedium,
			Prompt:       "Choose the word most similar to: ABSTEMIOUS",
			Options:      []string{"Gluttonous", "Temperate", "Extravagant", "Loud"},
			CorrectIndex: 1,
			Explanation:  "Abstemious means abstaining from excess, especially in food and drink. Its synonym is temperate.",
		},
		{
			ID: "V006", Category: "verbal", Subcategory: "synonym", Difficulty: DifficultyHard,
			Prompt:       "Choose the word most similar to: ESCHEW",
			Options:      []string{"Pursue", "Embrace", "Avoid", "Welcome"},
			CorrectIndex: 2,
			Explanation:  "Eschew means to deliberately avoid. Its synonym is avoid.",
		},
		{
			ID: "V007", Category: "verbal", Subcategory: "synonym", Difficulty: DifficultyMedium,
			Prompt:       "Choose the word most similar to: PRAGMATIC",
			Options:      []string{"Practical", "Idealistic", "Theoretical", "Impractical"},
			CorrectIndex: 0,
			Explanation:  "Pragmatic means dealing with things sensibly and realistically. Its synonym is practical.",
		},
		{
			ID: "V008", Category: "verbal", Subcategory: "antonym", Difficulty: DifficultyMedium,
			Prompt:       "Choose the word most opposite to: VENERATE",
			Options:      []string{"Respect", "Worship", "Honor", "Despise"},
			CorrectIndex: 3,
			Explanation:  "Venerate means to regard with great respect. Its antonym is despise.",
		},
		{
			ID: "V009", Category: "verbal", Subcategory: "antonym", Difficulty: DifficultyHard,
			Prompt:       "Choose the word most opposite to: UBIQUITOUS",
			Options:      []string{"Rare", "Common", "Widespread", "Universal"},
			CorrectIndex: 0,
			Explanation:  "Ubiquitous means present everywhere. Its antonym is rare.",
		},
		{
			ID: "V010", Category: "verbal", Subcategory: "completion", Difficulty: DifficultyMedium,
			Prompt:       "The CEO's _______ approach to risk management prevented the company from pursuing aggressive expansion strategies.",
			Options:      []string{"reckless", "cautious", "innovative", "aggressive"},
			CorrectIndex: 1,
			Explanation:  "The sentence describes preventing aggressive expansion, so \"cautious\" fits best.",
		},
	}
}
