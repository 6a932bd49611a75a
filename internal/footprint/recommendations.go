package footprint

// Recommendation is a reduction tip shown under the estimate.
type Recommendation struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Section     Section `json:"section"`
}

// Recommendations returns the static reduction tips. They are not derived
// from the current inputs.
func Recommendations() []Recommendation {
	return []Recommendation{
		{Title: "Reduce car travel by 20%", Description: "This could save 499 kg CO₂e annually", Section: SectionTransportation},
		{Title: "Switch to renewable energy", Description: "This could save 1,240 kg CO₂e annually", Section: SectionHome},
		{Title: "Eat local, seasonal food", Description: "This could save 312 kg CO₂e annually", Section: SectionConsumption},
		{Title: "Offset your next flight", Description: "This could offset 360 kg CO₂e", Section: SectionTransportation},
	}
}
