package footprint

// Emission weights, kg CO2e per unit of each counter.
const (
	CarMileWeight       = 0.4
	PublicTransitWeight = 0.2
	FlightHourWeight    = 90.0
	ElectricityWeight   = 0.9
	NaturalGasWeight    = 5.3
	GroceriesWeight     = 1.2
	RestaurantWeight    = 3.5
	ClothingItemWeight  = 15.0
	WeeksPerYear        = 52
	KgPerMetricTon      = 1000.0
	scalePercentDivisor = 120.0
	maxScalePercent     = 100.0
)

// Benchmarks shown next to the annual estimate.
const (
	// GlobalAverageKg is the average annual footprint per person worldwide.
	GlobalAverageKg = 4400.0

	// ScaleMaxKg is the right-hand end of the annual footprint gauge.
	ScaleMaxKg = 12000.0

	// TargetKg2050 is the per-person annual footprint consistent with 2050 climate goals.
	TargetKg2050 = 2000.0
)

// EPA Formula Constants (2024 Edition)
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
//
//	equivalency = kg_CO2e / factor
const (
	// EPAMilesDrivenFactor is kg CO2e per mile for an average passenger vehicle.
	EPAMilesDrivenFactor = 0.192

	// EPASmartphoneChargeFactor is kg CO2e per smartphone charge.
	EPASmartphoneChargeFactor = 0.00822

	// EPATreeSeedlingFactor is kg CO2e absorbed per tree seedling grown for 10 years.
	EPATreeSeedlingFactor = 60.0
)

// Display thresholds.
const (
	// MinEquivalencyThresholdKg is the smallest total that gets equivalencies.
	MinEquivalencyThresholdKg = 1.0

	// LargeNumberThreshold switches to "~X.X million" formatting.
	LargeNumberThreshold = 1_000_000

	// BillionThreshold switches to "~X.X billion" formatting.
	BillionThreshold = 1_000_000_000
)
