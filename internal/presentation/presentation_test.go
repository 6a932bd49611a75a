package presentation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/ecodash/internal/catalog"
)

func TestChallengeCategoryColor(t *testing.T) {
	tests := []struct {
		category catalog.ChallengeCategory
		want     string
	}{
		{catalog.ChallengeFood, "#10b981"},
		{catalog.ChallengeWaste, "#8b5cf6"},
		{catalog.ChallengeTransport, "#3b82f6"},
		{catalog.ChallengeEnergy, "#f59e0b"},
		{catalog.ChallengeWater, "#0ea5e9"},
		{catalog.ChallengeUnknown, "#6b7280"},
		{catalog.ChallengeCategory("extreme"), "#6b7280"},
		{catalog.ChallengeCategory("FOOD"), "#6b7280"},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			got := ChallengeCategoryColor(tt.category)
			assert.Equal(t, tt.want, got.Hex)
			assert.Equal(t, tt.want, string(got.Lipgloss()))
		})
	}
}

func TestDifficultyStyle(t *testing.T) {
	tests := []struct {
		input catalog.Difficulty
		want  string
	}{
		{"Easy", "bg-green-100 text-green-800"},
		{"easy", "bg-green-100 text-green-800"},
		{"MEDIUM", "bg-yellow-100 text-yellow-800"},
		{"Hard", "bg-red-100 text-red-800"},
		{"extreme", "bg-gray-100 text-gray-800"},
		{"", "bg-gray-100 text-gray-800"},
	}
	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			assert.Equal(t, tt.want, DifficultyStyle(tt.input).Class)
		})
	}
}

func TestImpactStyle(t *testing.T) {
	tests := []struct {
		input catalog.Impact
		want  string
	}{
		{"Low", "bg-blue-100 text-blue-800"},
		{"medium", "bg-purple-100 text-purple-800"},
		{"High", "bg-indigo-100 text-indigo-800"},
		{"unknown", "bg-gray-100 text-gray-800"},
	}
	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			assert.Equal(t, tt.want, ImpactStyle(tt.input).Class)
		})
	}
	assert.Equal(t, NeutralStyle, ImpactStyle("Critical"))
}

func TestEventCategory(t *testing.T) {
	tests := []struct {
		category  catalog.EventCategory
		wantHex   string
		wantGlyph string
	}{
		{catalog.EventCleanup, "#0891b2", "🧹"},
		{catalog.EventGardening, "#65a30d", "🌱"},
		{catalog.EventPlanting, "#16a34a", "🌳"},
		{catalog.EventEducation, "#8b5cf6", "📚"},
		{catalog.EventCategory("concert"), "#6b7280", "📍"},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.wantHex, EventCategoryColor(tt.category).Hex)
			assert.Equal(t, tt.wantGlyph, EventCategoryGlyph(tt.category))
		})
	}
}

func TestEcoScoreTier(t *testing.T) {
	tests := []struct {
		score     float64
		want      Tier
		wantClass string
	}{
		{10, TierExcellent, "text-emerald-600"},
		{9.5, TierExcellent, "text-emerald-600"},
		{9.0, TierExcellent, "text-emerald-600"},
		{8.999, TierGood, "text-green-600"},
		{7.0, TierGood, "text-green-600"},
		{6.999, TierFair, "text-yellow-600"},
		{5.0, TierFair, "text-yellow-600"},
		{4.999, TierPoor, "text-red-600"},
		{0, TierPoor, "text-red-600"},
		{-1, TierPoor, "text-red-600"},
		{math.NaN(), TierPoor, "text-red-600"},
	}
	for _, tt := range tests {
		t.Run(tt.wantClass, func(t *testing.T) {
			assert.Equal(t, tt.want, EcoScoreTier(tt.score))
			assert.Equal(t, tt.wantClass, EcoScoreStyle(tt.score).Class)
		})
	}
	assert.Equal(t, EcoScoreTier(9.0), EcoScoreTier(9.5))
	assert.Equal(t, "fair", TierFair.String())
}

func TestAQIStyle(t *testing.T) {
	tests := []struct {
		aqi       int
		want      AQILevel
		wantColor string
	}{
		{0, AQIGood, "green-500"},
		{42, AQIGood, "green-500"},
		{50, AQIGood, "green-500"},
		{51, AQIModerate, "yellow-500"},
		{100, AQIModerate, "yellow-500"},
		{101, AQIUnhealthySensitive, "orange-500"},
		{150, AQIUnhealthySensitive, "orange-500"},
		{151, AQIUnhealthy, "red-500"},
		{200, AQIUnhealthy, "red-500"},
		{201, AQIVeryUnhealthy, "purple-500"},
		{300, AQIVeryUnhealthy, "purple-500"},
		{301, AQIHazardous, "rose-900"},
		{999, AQIHazardous, "rose-900"},
		{-5, AQIGood, "green-500"},
	}
	for _, tt := range tests {
		t.Run(tt.wantColor, func(t *testing.T) {
			assert.Equal(t, tt.want, AQILevelOf(tt.aqi))
			assert.Equal(t, tt.wantColor, AQIStyle(tt.aqi).Name)
		})
	}
	assert.Equal(t, "Good", AQIGood.String())
	assert.Equal(t, "Unhealthy for Sensitive Groups", AQIUnhealthySensitive.String())
	assert.Equal(t, "#881337", AQIHazardous.Color().Hex)
}

func TestAQIGaugeFraction(t *testing.T) {
	assert.InDelta(t, 0.084, AQIGaugeFraction(42), 1e-9)
	assert.InDelta(t, 0.0, AQIGaugeFraction(-10), 1e-9)
	assert.InDelta(t, 1.0, AQIGaugeFraction(AQIScaleMax), 1e-9)
	assert.InDelta(t, 1.0, AQIGaugeFraction(900), 1e-9)
}

func TestStyleRender(t *testing.T) {
	assert.Contains(t, DifficultyStyle("Easy").Render("Easy"), "Easy")
	assert.Contains(t, Emerald500.Style().Render("food"), "food")
}
