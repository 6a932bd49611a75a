package footprint

import "math"

// CarbonEstimate is the weekly footprint in kg CO2e, broken down by section.
type CarbonEstimate struct {
	Transportation float64 `json:"transportation"`
	Home           float64 `json:"home"`
	Consumption    float64 `json:"consumption"`
	Total          float64 `json:"total"`
}

// Estimate computes the weekly footprint. It is total over non-negative
// inputs and has no side effects.
func Estimate(in LifestyleInputs) CarbonEstimate {
	transportation := float64(in.CarMiles)*CarMileWeight +
		float64(in.PublicTransit)*PublicTransitWeight +
		float64(in.FlightHours)*FlightHourWeight
	home := float64(in.ElectricityUsage)*ElectricityWeight +
		float64(in.NaturalGas)*NaturalGasWeight
	consumption := float64(in.Groceries)*GroceriesWeight +
		float64(in.Restaurants)*RestaurantWeight +
		float64(in.Clothing)*ClothingItemWeight

	return CarbonEstimate{
		Transportation: transportation,
		Home:           home,
		Consumption:    consumption,
		Total:          transportation + home + consumption,
	}
}

// Annual extrapolates the weekly total to a year.
func (e CarbonEstimate) Annual() float64 {
	return e.Total * WeeksPerYear
}

// AnnualTons is the annual total in whole metric tons, as shown under the headline.
func (e CarbonEstimate) AnnualTons() int64 {
	return Round(e.Annual() / KgPerMetricTon)
}

// ScalePercent is the fill of the annual footprint gauge, capped at 100.
func (e CarbonEstimate) ScalePercent() float64 {
	return math.Min(maxScalePercent, e.Annual()/scalePercentDivisor)
}

// Section returns the weekly total of one section.
func (e CarbonEstimate) Section(s Section) float64 {
	switch s {
	case SectionTransportation:
		return e.Transportation
	case SectionHome:
		return e.Home
	case SectionConsumption:
		return e.Consumption
	default:
		return 0
	}
}

// Round rounds a value for display. Halves round away from zero.
func Round(v float64) int64 {
	return int64(math.Round(v))
}
