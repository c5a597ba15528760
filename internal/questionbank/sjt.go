package questionbank

func sjtPool() []Question {
	return []Question{
		{
			ID: "S001", Category: "sjt", Subcategory: "workplace", Difficulty: DifficultyMedium,
			Prompt: "You notice a colleague consistently arriving 30 minutes late, affecting team deadlines. What do you do first?",
			Options: []string{
				"Report them to HR immediately",
				"Speak privately with them to understand the situation",
				"Tell other team members about the issue",
				"Ignore it as it's not your responsibility",
			},
			CorrectIndex: 1,
			Explanation:  "Direct, professional communication comes before escalation: speak privately first.",
		},
		{
			ID: "S002", Category: "sjt", Subcategory: "client", Difficulty: DifficultyHard,
			Prompt: "A major client demands a feature that would require bypassing security protocols. Your manager is on leave. What do you do?",
			Options: []string{
				"Explain security risks and propose alternative solutions",
				"Implement it to keep the client happy",
				"Refuse and terminate the client relationship",
				"Wait for your manager to return",
			},
			CorrectIndex: 0,
			Explanation:  "Explaining the risks and proposing alternatives maintains integrity while still addressing the client's needs.",
		},
		{
			ID: "S003", Category: "sjt", Subcategory: "team", Difficulty: DifficultyMedium,
			Prompt: "Two team members have conflicting approaches to a project. Both are valid but incompatible. As project lead, you should:",
			Options: []string{
				"Choose one approach arbitrarily",
				"Split the team and do both separately",
				"Facilitate a discussion to find an integrated solution",
				"Escalate to senior management immediately",
			},
			CorrectIndex: 2,
			Explanation:  "Facilitating a discussion is collaborative problem-solving, the key leadership move here.",
		},
		{
			ID: "S004", Category: "sjt", Subcategory: "ethics", Difficulty: DifficultyHard,
			Prompt: "You discover a minor error in a report already sent to a client. The error doesn't affect conclusions. You should:",
			Options: []string{
				"Notify the client promptly with corrected information",
				"Say nothing as it doesn't affect conclusions",
				"Correct it only if the client notices",
				"Blame the error on a system glitch",
			},
			CorrectIndex: 0,
			Explanation:  "Prompt, transparent correction builds long-term trust.",
		},
		{
			ID: "S005", Category: "sjt", Subcategory: "workplace", Difficulty: DifficultyMedium,
			Prompt: "You're overwhelmed with work and deadlines are at risk. The best first action is to:",
			Options: []string{
				"Work overtime silently",
				"Discuss priorities with your manager",
				"Let some deadlines slip quietly",
				"Complain to colleagues",
			},
			CorrectIndex: 1,
			Explanation:  "Raising the load with your manager lets priorities be rebalanced before deadlines are missed.",
		},
		{
			ID: "S006", Category: "sjt", Subcategory: "workplace", Difficulty: DifficultyMedium,
			Prompt: "You disagree with your manager's decision. You should:",
			Options: []string{
				"Go above their head",
				"Comply silently",
				"Tell the team you disagree",
				"Present your concerns with evidence privately",
			},
			CorrectIndex: 3,
			Explanation:  "A private, evidence-based conversation is the professional way to challenge a decision.",
		},
		{
			ID: "S007", Category: "sjt", Subcategory: "workplace", Difficulty: DifficultyMedium,
			Prompt: "A colleague takes credit for your work in a meeting. Your first step is to:",
			Options: []string{
				"Discuss it privately with them",
				"Confront them publicly",
				"Email their manager",
				"Do nothing",
			},
			CorrectIndex: 0,
			Explanation:  "Address it directly and privately first; escalate only if that fails.",
		},
	}
}
