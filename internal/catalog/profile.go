package catalog

// Profile returns the sample signed-in user.
func Profile() UserProfile {
	return UserProfile{
		Name:      "Emma Johnson",
		Email:     "emma@example.com",
		Location:  "Seattle, WA",
		JoinDate:  "March 2025",
		AvatarRef: "https://images.pexels.com/photos/3771807/pexels-photo-3771807.jpeg?auto=compress&cs=tinysrgb&w=400",
		Stats: UserStats{
			CarbonSaved:         "3.2 tons",
			ActiveChallenges:    2,
			CompletedChallenges: 7,
			EcoPoints:           1240,
			Trees:               12,
			WaterSaved:          "2,450 gal",
		},
	}
}

// Badges returns the achievements earned by the sample user.
func Badges() []Badge {
	return []Badge{
		{ID: 1, Name: "Early Adopter", Description: "Joined ClimateAction in our first month", Icon: "🌱"},
		{ID: 2, Name: "Challenge Champion", Description: "Completed 5+ eco challenges", Icon: "🏆"},
		{ID: 3, Name: "Carbon Reducer", Description: "Reduced carbon footprint by 20%", Icon: "🌍"},
		{ID: 4, Name: "Community Leader", Description: "Organized a local climate initiative", Icon: "👥"},
		{ID: 5, Name: "Eco Shopper", Description: "Made 10+ purchases from sustainable brands", Icon: "🛍️"},
	}
}

// ImpactHistory returns the monthly carbon history shown on the profile chart.
func ImpactHistory() []MonthlyImpact {
	return []MonthlyImpact{
		{Month: "Jan", CarbonKg: 420},
		{Month: "Feb", CarbonKg: 390},
		{Month: "Mar", CarbonKg: 360},
		{Month: "Apr", CarbonKg: 320},
		{Month: "May", CarbonKg: 290},
	}
}

// ActivityFeed returns the most recent profile activity, newest first.
func ActivityFeed() []Activity {
	return []Activity{
		{ID: 1, Type: "challenge", Title: `Completed "Zero Waste Week" challenge`, When: "2 days ago"},
		{ID: 2, Type: "footprint", Title: "Reduced carbon footprint by 12% this month", When: "1 week ago"},
		{ID: 3, Type: "community", Title: "Joined Beach Cleanup event", When: "2 weeks ago"},
		{ID: 4, Type: "purchase", Title: "Purchased Reusable Produce Bags", When: "3 weeks ago"},
	}
}
