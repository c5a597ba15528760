package questionbank

func mechanicalPool() []Question {
	return []Question{
		{
			ID: "M001", Category: "mechanical", Subcategory: "gears", Difficulty: DifficultyMedium,
			Prompt:       "Gear A (20 teeth) drives Gear B (40 teeth). If Gear A rotates clockwise at 100 RPM, what does Gear B do?",
			Options:      []string{"Clockwise at 200 RPM", "Counter-clockwise at 50 RPM", "Counter-clockwise at 200 RPM", "Clockwise at 50 RPM"},
			CorrectIndex: 1,
			Explanation:  "Meshed gears rotate in opposite directions, and twice the teeth means half the speed: counter-clockwise at 50 RPM.",
		},
		{
			ID: "M002", Category: "mechanical", Subcategory: "levers", Difficulty: DifficultyMedium,
			Prompt:       "A 2-metre lever has its fulcrum 0.5 m from a load. How much effort at the far end lifts a 100 kg load?",
			Options:      []string{"100 kg", "50 kg", "33.3 kg", "25 kg"},
			CorrectIndex: 2,
			Explanation:  "The effort arm is 1.5 m and the load arm 0.5 m, so effort = 100 × 0.5 / 1.5 ≈ 33.3 kg.",
		},
		{
			ID: "M003", Category: "mechanical", Subcategory: "pressure", Difficulty: DifficultyMedium,
			Prompt:       "Water flows through a pipe that narrows to half its diameter. What happens to the flow speed in the narrow section?",
			Options:      []string{"It halves", "It doubles", "It quadruples", "It stays the same"},
			CorrectIndex: 2,
			Explanation:  "Half the diameter gives a quarter of the cross-sectional area, so the same volume must flow four times faster.",
		},
		{
			ID: "M004", Category: "mechanical", Subcategory: "pulleys", Difficulty: DifficultyMedium,
			Prompt:       "A block and tackle with four supporting rope segments lifts a 200 kg load. Ignoring friction, what effort is needed?",
			Options:      []string{"200 kg", "100 kg", "50 kg", "25 kg"},
			CorrectIndex: 2,
			Explanation:  "Four supporting segments share the load equally, so the effort is 200 / 4 = 50 kg.",
		},
		{
			ID: "M005", Category: "mechanical", Subcategory: "gears", Difficulty: DifficultyHard,
			Prompt:       "Three gears mesh in a line: A drives B, B drives C. A rotates clockwise. Which way does C rotate?",
			Options:      []string{"Clockwise", "Counter-clockwise", "It does not rotate", "It alternates"},
			CorrectIndex: 0,
			Explanation:  "Each mesh reverses direction: A clockwise, B counter-clockwise, C clockwise again.",
		},
		{
			ID: "M006", Category: "mechanical", Subcategory: "forces", Difficulty: DifficultyEasy,
			Prompt:       "Two people push a box with 30 N and 20 N in the same direction. Friction resists with 10 N. What is the net force?",
			Options:      []string{"60 N", "40 N", "50 N", "20 N"},
			CorrectIndex: 1,
			Explanation:  "The pushes add to 50 N and friction subtracts 10 N, leaving a net force of 40 N.",
		},
	}
}
