package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChallengeCategory(t *testing.T) {
	tests := []struct {
		input string
		want  ChallengeCategory
	}{
		{"food", ChallengeFood},
		{"waste", ChallengeWaste},
		{"transport", ChallengeTransport},
		{"energy", ChallengeEnergy},
		{"water", ChallengeWater},
		{"Food", ChallengeUnknown},
		{"", ChallengeUnknown},
		{"unknown", ChallengeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseChallengeCategory(tt.input))
		})
	}
}

func TestParseDifficultyAndImpact(t *testing.T) {
	assert.Equal(t, DifficultyEasy, ParseDifficulty("easy"))
	assert.Equal(t, DifficultyMedium, ParseDifficulty("MEDIUM"))
	assert.Equal(t, DifficultyHard, ParseDifficulty(" Hard "))
	assert.Equal(t, DifficultyUnknown, ParseDifficulty("extreme"))

	assert.Equal(t, ImpactLow, ParseImpact("LOW"))
	assert.Equal(t, ImpactMedium, ParseImpact("medium"))
	assert.Equal(t, ImpactHigh, ParseImpact("High"))
	assert.Equal(t, ImpactUnknown, ParseImpact(""))
}

func TestParseEventAndProductCategory(t *testing.T) {
	assert.Equal(t, EventPlanting, ParseEventCategory("planting"))
	assert.Equal(t, EventUnknown, ParseEventCategory("concert"))
	assert.Equal(t, "Gardening", EventGardening.Title())

	assert.Equal(t, ProductTech, ParseProductCategory("tech"))
	assert.Equal(t, ProductUnknown, ParseProductCategory("garden"))
	assert.Equal(t, "Kitchen & Dining", ProductKitchen.DisplayName())
	assert.Equal(t, "Other", ProductUnknown.DisplayName())
}

func TestSampleDataUsesKnownLabels(t *testing.T) {
	for _, c := range Challenges() {
		assert.Equal(t, c.Category, ParseChallengeCategory(string(c.Category)), "challenge %d", c.ID)
		assert.NotEqual(t, DifficultyUnknown, ParseDifficulty(string(c.Difficulty)))
		assert.NotEqual(t, ImpactUnknown, ParseImpact(string(c.Impact)))
	}
	for _, e := range CommunityEvents() {
		assert.Equal(t, e.Category, ParseEventCategory(string(e.Category)), "event %d", e.ID)
	}
	for _, p := range Products() {
		assert.Equal(t, p.Category, ParseProductCategory(string(p.Category)), "product %d", p.ID)
		assert.GreaterOrEqual(t, p.EcoScore, 0.0)
		assert.LessOrEqual(t, p.EcoScore, 10.0)
		assert.LessOrEqual(t, p.Rating, 5.0)
	}
	for _, a := range ActiveChallenges() {
		assert.GreaterOrEqual(t, a.Progress, 0)
		assert.LessOrEqual(t, a.Progress, 100)
	}
}

func TestSampleDataIDsAreUnique(t *testing.T) {
	seen := map[int]bool{}
	for _, c := range Challenges() {
		require.False(t, seen[c.ID], "duplicate challenge id %d", c.ID)
		seen[c.ID] = true
	}

	seen = map[int]bool{}
	for _, e := range CommunityEvents() {
		require.False(t, seen[e.ID], "duplicate event id %d", e.ID)
		seen[e.ID] = true
	}

	seen = map[int]bool{}
	for _, p := range Products() {
		require.False(t, seen[p.ID], "duplicate product id %d", p.ID)
		seen[p.ID] = true
	}
}

func TestCollectionsAreIndependentCopies(t *testing.T) {
	first := Products()
	first[0].Name = "mutated"
	first[0].Badges[0] = "mutated"

	second := Products()
	assert.Equal(t, "Bamboo Toothbrush Set", second[0].Name)
	assert.Equal(t, "Plastic-Free", second[0].Badges[0])

	challenges := Challenges()
	challenges[0].Participants = -1
	assert.Equal(t, 2458, Challenges()[0].Participants)
}

func TestProductPopularity(t *testing.T) {
	p := Product{Rating: 4.5, Reviews: 10}
	assert.InDelta(t, 45.0, p.Popularity(), 1e-9)
}

func TestChallengeIDsMayRepeatAcrossLists(t *testing.T) {
	ids := map[int]bool{}
	for _, c := range Challenges() {
		ids[c.ID] = true
	}
	for _, a := range ActiveChallenges() {
		assert.True(t, ids[a.ID], "active challenge %d should reference a discoverable challenge", a.ID)
	}
	for _, c := range CompletedChallenges() {
		assert.True(t, ids[c.ID])
	}
}

func TestEnvironmentData(t *testing.T) {
	aq := AirQualityReading()
	assert.Equal(t, 42, aq.AQI)
	assert.Equal(t, "North Seattle Station", aq.Station)
	assert.Equal(t, Pollutants{PM25: 12, PM10: 24, O3: 38, NO2: 15}, aq.Pollutants)

	require.Len(t, LocalConditions(), 4)
	assert.Equal(t, "78°F", LocalConditions()[0].Value)

	trend := CarbonTrend()
	require.Len(t, trend, 6)
	assert.Equal(t, "Jun", trend[5].Month)
	assert.InDelta(t, 210.0, trend[5].CarbonKg, 1e-9)

	total := 0
	for _, s := range FootprintBreakdown() {
		assert.NotEmpty(t, s.Color)
		total += s.Percent
	}
	assert.Equal(t, 100, total)

	require.Len(t, DashboardStats(), 4)
}
