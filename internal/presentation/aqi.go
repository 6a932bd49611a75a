package presentation

// AQILevel is an air quality index band, cleanest first.
type AQILevel int

// AQI levels. Upper bounds are inclusive.
const (
	AQIGood               AQILevel = iota // aqi <= 50
	AQIModerate                           // aqi <= 100
	AQIUnhealthySensitive                 // aqi <= 150
	AQIUnhealthy                          // aqi <= 200
	AQIVeryUnhealthy                      // aqi <= 300
	AQIHazardous
)

const (
	aqiGoodMax          = 50
	aqiModerateMax      = 100
	aqiSensitiveMax     = 150
	aqiUnhealthyMax     = 200
	aqiVeryUnhealthyMax = 300

	// AQIScaleMax is the top of the gauge.
	AQIScaleMax = 500
)

// AQI colors.
//
//nolint:gochecknoglobals // Read-only palette.
var (
	Green500  = Color{Name: "green-500", Hex: "#22c55e"}
	Yellow500 = Color{Name: "yellow-500", Hex: "#eab308"}
	Orange500 = Color{Name: "orange-500", Hex: "#f97316"}
	Red500    = Color{Name: "red-500", Hex: "#ef4444"}
	Purple500 = Color{Name: "purple-500", Hex: "#a855f7"}
	Rose900   = Color{Name: "rose-900", Hex: "#881337"}
)

// AQILevelOf buckets an air quality index.
func AQILevelOf(aqi int) AQILevel {
	switch {
	case aqi <= aqiGoodMax:
		return AQIGood
	case aqi <= aqiModerateMax:
		return AQIModerate
	case aqi <= aqiSensitiveMax:
		return AQIUnhealthySensitive
	case aqi <= aqiUnhealthyMax:
		return AQIUnhealthy
	case aqi <= aqiVeryUnhealthyMax:
		return AQIVeryUnhealthy
	default:
		return AQIHazardous
	}
}

// String returns the level name.
func (l AQILevel) String() string {
	switch l {
	case AQIGood:
		return "Good"
	case AQIModerate:
		return "Moderate"
	case AQIUnhealthySensitive:
		return "Unhealthy for Sensitive Groups"
	case AQIUnhealthy:
		return "Unhealthy"
	case AQIVeryUnhealthy:
		return "Very Unhealthy"
	default:
		return "Hazardous"
	}
}

// Color returns the indicator color of the level.
func (l AQILevel) Color() Color {
	switch l {
	case AQIGood:
		return Green500
	case AQIModerate:
		return Yellow500
	case AQIUnhealthySensitive:
		return Orange500
	case AQIUnhealthy:
		return Red500
	case AQIVeryUnhealthy:
		return Purple500
	default:
		return Rose900
	}
}

// AQIStyle returns the indicator color for an air quality index.
func AQIStyle(aqi int) Color {
	return AQILevelOf(aqi).Color()
}

// AQIGaugeFraction is the filled share of the gauge, clamped to [0, 1].
func AQIGaugeFraction(aqi int) float64 {
	return min(1, max(0, float64(aqi)/AQIScaleMax))
}
