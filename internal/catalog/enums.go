package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ChallengeCategory is the topic a challenge belongs to.
type ChallengeCategory string

// Challenge categories.
const (
	ChallengeFood      ChallengeCategory = "food"
	ChallengeWaste     ChallengeCategory = "waste"
	ChallengeTransport ChallengeCategory = "transport"
	ChallengeEnergy    ChallengeCategory = "energy"
	ChallengeWater     ChallengeCategory = "water"
	ChallengeUnknown   ChallengeCategory = "unknown"
)

// ChallengeCategories lists the known challenge categories in display order.
func ChallengeCategories() []ChallengeCategory {
	return []ChallengeCategory{ChallengeFood, ChallengeWaste, ChallengeTransport, ChallengeEnergy, ChallengeWater}
}

// ParseChallengeCategory maps a label to its category. Matching is exact,
// like the filter dropdown values; anything else is ChallengeUnknown.
func ParseChallengeCategory(s string) ChallengeCategory {
	for _, c := range ChallengeCategories() {
		if string(c) == s {
			return c
		}
	}
	return ChallengeUnknown
}

// Difficulty is how demanding a challenge is.
type Difficulty string

// Challenge difficulties.
const (
	DifficultyEasy    Difficulty = "Easy"
	DifficultyMedium  Difficulty = "Medium"
	DifficultyHard    Difficulty = "Hard"
	DifficultyUnknown Difficulty = "Unknown"
)

// ParseDifficulty maps a label to a Difficulty, ignoring case.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy
	case "medium":
		return DifficultyMedium
	case "hard":
		return DifficultyHard
	default:
		return DifficultyUnknown
	}
}

// Impact is the expected environmental payoff of a challenge.
type Impact string

// Challenge impacts.
const (
	ImpactLow     Impact = "Low"
	ImpactMedium  Impact = "Medium"
	ImpactHigh    Impact = "High"
	ImpactUnknown Impact = "Unknown"
)

// ParseImpact maps a label to an Impact, ignoring case.
func ParseImpact(s string) Impact {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return ImpactLow
	case "medium":
		return ImpactMedium
	case "high":
		return ImpactHigh
	default:
		return ImpactUnknown
	}
}

// EventCategory classifies a community event.
type EventCategory string

// Event categories.
const (
	EventCleanup   EventCategory = "cleanup"
	EventGardening EventCategory = "gardening"
	EventPlanting  EventCategory = "planting"
	EventEducation EventCategory = "education"
	EventUnknown   EventCategory = "unknown"
)

// EventCategories lists the known event categories in display order.
func EventCategories() []EventCategory {
	return []EventCategory{EventCleanup, EventGardening, EventPlanting, EventEducation}
}

// ParseEventCategory maps a label to its category; unmatched labels are EventUnknown.
func ParseEventCategory(s string) EventCategory {
	for _, c := range EventCategories() {
		if string(c) == s {
			return c
		}
	}
	return EventUnknown
}

// Title returns the capitalized label shown on event chips.
func (c EventCategory) Title() string {
	return cases.Title(language.English).String(string(c))
}

// ProductCategory is the marketplace department of a product.
type ProductCategory string

// Product categories.
const (
	ProductPersonal ProductCategory = "personal"
	ProductKitchen  ProductCategory = "kitchen"
	ProductFashion  ProductCategory = "fashion"
	ProductHome     ProductCategory = "home"
	ProductTech     ProductCategory = "tech"
	ProductOffice   ProductCategory = "office"
	ProductUnknown  ProductCategory = "unknown"
)

// ProductCategories lists the known product categories in the marketplace dropdown order.
func ProductCategories() []ProductCategory {
	return []ProductCategory{ProductKitchen, ProductPersonal, ProductFashion, ProductHome, ProductTech, ProductOffice}
}

// ParseProductCategory maps a label to its category; unmatched labels are ProductUnknown.
func ParseProductCategory(s string) ProductCategory {
	for _, c := range ProductCategories() {
		if string(c) == s {
			return c
		}
	}
	return ProductUnknown
}

// DisplayName returns the dropdown label for the category.
func (c ProductCategory) DisplayName() string {
	switch c {
	case ProductKitchen:
		return "Kitchen & Dining"
	case ProductPersonal:
		return "Personal Care"
	case ProductFashion:
		return "Fashion & Accessories"
	case ProductHome:
		return "Home & Garden"
	case ProductTech:
		return "Tech & Gadgets"
	case ProductOffice:
		return "Office Supplies"
	case ProductUnknown:
		return "Other"
	default:
		return string(c)
	}
}
