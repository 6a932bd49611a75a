// Package footprint estimates a personal weekly carbon footprint from a
// small set of lifestyle counters.
//
// The estimate is a fixed linear weighting per category:
//
//	transportation = carMiles*0.4 + publicTransit*0.2 + flightHours*90
//	home           = electricityUsage*0.9 + naturalGas*5.3
//	consumption    = groceries*1.2 + restaurants*3.5 + clothing*15
//
// Some counters are labeled monthly or yearly but are summed into the weekly
// figure as-is. Existing displayed numbers depend on that, so the weights
// and units must not be "corrected" here.
//
// It also converts an annual total into relatable equivalencies (miles
// driven, smartphones charged) using EPA conversion factors.
package footprint
