package catalog

// Challenges returns the discoverable challenges in their canonical order.
func Challenges() []Challenge {
	return []Challenge{
		{
			ID:           1,
			Title:        "Meatless Monday",
			Description:  "Skip meat for one day a week to reduce your carbon footprint",
			Category:     ChallengeFood,
			Difficulty:   DifficultyEasy,
			Impact:       ImpactMedium,
			Duration:     "4 weeks",
			Participants: 2458,
		},
		{
			ID:           2,
			Title:        "Zero Waste Week",
			Description:  "Minimize your waste production for one full week",
			Category:     ChallengeWaste,
			Difficulty:   DifficultyMedium,
			Impact:       ImpactHigh,
			Duration:     "1 week",
			Participants: 1245,
		},
		{
			ID:           3,
			Title:        "Public Transport Challenge",
			Description:  "Use only public transportation for all your travel needs",
			Category:     ChallengeTransport,
			Difficulty:   DifficultyMedium,
			Impact:       ImpactHigh,
			Duration:     "2 weeks",
			Participants: 1876,
		},
		{
			ID:           4,
			Title:        "Energy Saving Sprint",
			Description:  "Reduce your home energy consumption by 20% in one month",
			Category:     ChallengeEnergy,
			Difficulty:   DifficultyMedium,
			Impact:       ImpactHigh,
			Duration:     "1 month",
			Participants: 3241,
		},
		{
			ID:           5,
			Title:        "5-Minute Shower",
			Description:  "Limit your showers to 5 minutes to conserve water",
			Category:     ChallengeWater,
			Difficulty:   DifficultyEasy,
			Impact:       ImpactMedium,
			Duration:     "2 weeks",
			Participants: 4251,
		},
		{
			ID:           6,
			Title:        "Plastic-Free Shopping",
			Description:  "Avoid all single-use plastics when shopping for one month",
			Category:     ChallengeWaste,
			Difficulty:   DifficultyHard,
			Impact:       ImpactHigh,
			Duration:     "1 month",
			Participants: 1548,
		},
		{
			ID:           7,
			Title:        "Plant Power",
			Description:  "Adopt a plant-based diet for two weeks",
			Category:     ChallengeFood,
			Difficulty:   DifficultyMedium,
			Impact:       ImpactHigh,
			Duration:     "2 weeks",
			Participants: 2134,
		},
		{
			ID:           8,
			Title:        "Home Energy Audit",
			Description:  "Conduct a thorough energy audit of your home and implement changes",
			Category:     ChallengeEnergy,
			Difficulty:   DifficultyMedium,
			Impact:       ImpactHigh,
			Duration:     "1 month",
			Participants: 987,
		},
	}
}

// ActiveChallenges returns the challenges the sample user is working on.
func ActiveChallenges() []ActiveChallenge {
	return []ActiveChallenge{
		{
			ID:          2,
			Title:       "Zero Waste Week",
			Description: "Minimize your waste production for one full week",
			Category:    ChallengeWaste,
			Difficulty:  DifficultyMedium,
			Impact:      ImpactHigh,
			Duration:    "1 week",
			Progress:    60,
			DaysLeft:    3,
		},
		{
			ID:          5,
			Title:       "5-Minute Shower",
			Description: "Limit your showers to 5 minutes to conserve water",
			Category:    ChallengeWater,
			Difficulty:  DifficultyEasy,
			Impact:      ImpactMedium,
			Duration:    "2 weeks",
			Progress:    85,
			DaysLeft:    2,
		},
	}
}

// CompletedChallenges returns the challenges the sample user has finished.
func CompletedChallenges() []CompletedChallenge {
	return []CompletedChallenge{
		{
			ID:            1,
			Title:         "Meatless Monday",
			Description:   "Skip meat for one day a week to reduce your carbon footprint",
			Category:      ChallengeFood,
			Difficulty:    DifficultyEasy,
			Impact:        ImpactMedium,
			CompletedDate: "2025-05-28",
			ImpactSaved:   "52 kg CO₂e",
		},
	}
}
