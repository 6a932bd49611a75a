package catalog

// DefaultMapCenter is where the community map opens (Seattle).
var DefaultMapCenter = Coordinates{Latitude: 47.6062, Longitude: -122.3321} //nolint:gochecknoglobals // Read-only value type.

// DefaultMapZoom is the initial zoom level of the community map.
const DefaultMapZoom = 11

// CommunityEvents returns the upcoming community events.
func CommunityEvents() []CommunityEvent {
	return []CommunityEvent{
		{
			ID:           1,
			Title:        "Beach Cleanup",
			Description:  "Help clean up Golden Gardens Beach and protect marine life.",
			Date:         "2025-06-12",
			Time:         "9:00 AM - 12:00 PM",
			Location:     "Golden Gardens Park",
			Category:     EventCleanup,
			Participants: 24,
			Coordinates:  Coordinates{Latitude: 47.6917, Longitude: -122.4032},
		},
		{
			ID:           2,
			Title:        "Community Garden Planting",
			Description:  "Plant vegetables and flowers in our neighborhood garden.",
			Date:         "2025-06-15",
			Time:         "10:00 AM - 2:00 PM",
			Location:     "Beacon Hill Community Garden",
			Category:     EventGardening,
			Participants: 12,
			Coordinates:  Coordinates{Latitude: 47.5876, Longitude: -122.3109},
		},
		{
			ID:           3,
			Title:        "Tree Planting Initiative",
			Description:  "Help restore the local forest by planting native trees.",
			Date:         "2025-06-20",
			Time:         "8:00 AM - 1:00 PM",
			Location:     "Discovery Park",
			Category:     EventPlanting,
			Participants: 35,
			Coordinates:  Coordinates{Latitude: 47.6615, Longitude: -122.4058},
		},
		{
			ID:           4,
			Title:        "Sustainable Living Workshop",
			Description:  "Learn about composting, urban gardening, and sustainable practices.",
			Date:         "2025-06-18",
			Time:         "6:00 PM - 8:00 PM",
			Location:     "Seattle Public Library",
			Category:     EventEducation,
			Participants: 18,
			Coordinates:  Coordinates{Latitude: 47.6067, Longitude: -122.3325},
		},
		{
			ID:           5,
			Title:        "Renewable Energy Fair",
			Description:  "Explore solar, wind, and other renewable energy technologies.",
			Date:         "2025-06-25",
			Time:         "11:00 AM - 4:00 PM",
			Location:     "Seattle Center",
			Category:     EventEducation,
			Participants: 45,
			Coordinates:  Coordinates{Latitude: 47.6220, Longitude: -122.3517},
		},
	}
}
