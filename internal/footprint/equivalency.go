package footprint

import (
	"fmt"
	"math"
)

// EquivalencyType is a category of real-world comparison.
type EquivalencyType int

const (
	// EquivalencyMilesDriven compares CO2e to miles driven in an average passenger vehicle.
	EquivalencyMilesDriven EquivalencyType = iota

	// EquivalencySmartphonesCharged compares CO2e to full smartphone charges.
	EquivalencySmartphonesCharged

	// EquivalencyTreeSeedlings compares CO2e to tree seedlings grown for 10 years.
	EquivalencyTreeSeedlings
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	case EquivalencyTreeSeedlings:
		return "TreeSeedlings"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// EquivalencyResult is one calculated comparison.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// EquivalencyOutput holds every comparison for one footprint value.
type EquivalencyOutput struct {
	InputKg float64             `json:"input_kg"`
	Results []EquivalencyResult `json:"results"`

	// DisplayText is the prose form, e.g.
	// "Equivalent to driving ~368,063 miles or charging ~8.6 million smartphones".
	DisplayText string `json:"display_text"`

	// OffsetText states how many seedlings would absorb the same amount.
	OffsetText string `json:"offset_text"`

	IsEmpty bool `json:"is_empty"`
}

// Equivalencies converts a kg CO2e amount into relatable comparisons.
//
// Amounts below MinEquivalencyThresholdKg yield an empty output without error.
// Negative amounts return ErrNegativeValue; NaN, Inf or overflowing results
// return ErrCalculationOverflow.
func Equivalencies(kg float64) (EquivalencyOutput, error) {
	if math.IsInf(kg, 0) || math.IsNaN(kg) {
		return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
	}
	if kg < 0 {
		return EquivalencyOutput{IsEmpty: true}, ErrNegativeValue
	}
	if kg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}, nil
	}

	miles := kg / EPAMilesDrivenFactor
	phones := kg / EPASmartphoneChargeFactor
	trees := kg / EPATreeSeedlingFactor

	if math.IsInf(miles, 0) || math.IsInf(phones, 0) {
		return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
	}

	milesFormatted := formatEquivalencyValue(miles)
	phonesFormatted := formatEquivalencyValue(phones)
	treesFormatted := formatEquivalencyValue(trees)

	return EquivalencyOutput{
		InputKg: kg,
		Results: []EquivalencyResult{
			{
				Type:           EquivalencyMilesDriven,
				Value:          miles,
				FormattedValue: milesFormatted,
				Label:          "miles driven",
			},
			{
				Type:           EquivalencySmartphonesCharged,
				Value:          phones,
				FormattedValue: phonesFormatted,
				Label:          "smartphones charged",
			},
			{
				Type:           EquivalencyTreeSeedlings,
				Value:          trees,
				FormattedValue: treesFormatted,
				Label:          "tree seedlings grown for 10 years",
			},
		},
		DisplayText: fmt.Sprintf("Equivalent to driving %s miles or charging %s smartphones",
			approximate(miles), approximate(phones)),
		OffsetText: fmt.Sprintf("Offsetting it takes %s tree seedlings grown for 10 years", approximate(trees)),
	}, nil
}

func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}

// approximate formats v for prose. FormatLarge already marks its
// abbreviations with "~", so only exact counts get the prefix here.
func approximate(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return "~" + FormatNumber(int64(math.Round(v)))
}
