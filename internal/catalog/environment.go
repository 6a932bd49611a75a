package catalog

// Pollutants are station readings. Particulates are in µg/m³, gases in ppb.
type Pollutants struct {
	PM25 int `json:"pm25"`
	PM10 int `json:"pm10"`
	O3   int `json:"o3"`
	NO2  int `json:"no2"`
}

// AirQuality is the latest reading from the local monitoring station.
type AirQuality struct {
	AQI        int        `json:"aqi"`
	Status     string     `json:"status"`
	Station    string     `json:"station"`
	Pollutants Pollutants `json:"pollutants"`
}

// LocalCondition is one weather tile on the dashboard.
type LocalCondition struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// FootprintShare is one slice of the footprint breakdown chart.
type FootprintShare struct {
	Name    string `json:"name"`
	Percent int    `json:"percent"`
	Color   string `json:"color"`
}

// Stat is a headline tile on the dashboard.
type Stat struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// AirQualityReading returns the sample station reading.
func AirQualityReading() AirQuality {
	return AirQuality{
		AQI:     42,
		Status:  "Good",
		Station: "North Seattle Station",
		Pollutants: Pollutants{
			PM25: 12,
			PM10: 24,
			O3:   38,
			NO2:  15,
		},
	}
}

// LocalConditions returns the weather tiles.
func LocalConditions() []LocalCondition {
	return []LocalCondition{
		{Name: "Temperature", Value: "78°F"},
		{Name: "Air Quality", Value: "Good"},
		{Name: "Wind", Value: "5 mph"},
		{Name: "UV Index", Value: "Moderate"},
	}
}

// CarbonTrend returns the monthly footprint shown on the dashboard chart.
func CarbonTrend() []MonthlyImpact {
	return []MonthlyImpact{
		{Month: "Jan", CarbonKg: 280},
		{Month: "Feb", CarbonKg: 260},
		{Month: "Mar", CarbonKg: 270},
		{Month: "Apr", CarbonKg: 240},
		{Month: "May", CarbonKg: 220},
		{Month: "Jun", CarbonKg: 210},
	}
}

// FootprintBreakdown returns the share of each footprint source. Shares sum to 100.
func FootprintBreakdown() []FootprintShare {
	return []FootprintShare{
		{Name: "Transport", Percent: 35, Color: "#0284c7"},
		{Name: "Energy", Percent: 30, Color: "#f59e0b"},
		{Name: "Food", Percent: 20, Color: "#10b981"},
		{Name: "Shopping", Percent: 15, Color: "#8b5cf6"},
	}
}

// DashboardStats returns the headline tiles.
func DashboardStats() []Stat {
	return []Stat{
		{Title: "Carbon Saved", Value: "2.4 tons"},
		{Title: "Energy Usage", Value: "-15%"},
		{Title: "Water Saved", Value: "340 gal"},
		{Title: "Eco Points", Value: "1,240"},
	}
}
