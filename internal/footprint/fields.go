package footprint

import (
	"fmt"
	"strings"
)

// Field identifies one lifestyle counter.
type Field int

// Lifestyle counters, in the order they appear on the calculator.
const (
	CarMiles Field = iota
	PublicTransit
	FlightHours
	ElectricityUsage
	NaturalGas
	Groceries
	Restaurants
	Clothing
)

// Section groups counters that feed the same category total.
type Section string

// Calculator sections.
const (
	SectionTransportation Section = "transportation"
	SectionHome           Section = "home"
	SectionConsumption    Section = "consumption"
)

// Title returns the heading shown for the section.
func (s Section) Title() string {
	switch s {
	case SectionTransportation:
		return "Transportation"
	case SectionHome:
		return "Home Energy"
	case SectionConsumption:
		return "Consumption"
	default:
		return string(s)
	}
}

// FieldInfo describes how a counter is labeled and stepped.
type FieldInfo struct {
	Field   Field
	Key     string
	Label   string
	Unit    string
	Step    int
	Section Section
}

//nolint:gochecknoglobals // Read-only lookup table indexed by Field.
var fieldInfos = [...]FieldInfo{
	CarMiles:         {CarMiles, "carMiles", "Car miles per week", "miles", 10, SectionTransportation},
	PublicTransit:    {PublicTransit, "publicTransit", "Public transit trips per month", "trips", 5, SectionTransportation},
	FlightHours:      {FlightHours, "flightHours", "Flight hours per year", "hours", 1, SectionTransportation},
	ElectricityUsage: {ElectricityUsage, "electricityUsage", "Monthly electricity usage", "kWh", 50, SectionHome},
	NaturalGas:       {NaturalGas, "naturalGas", "Monthly natural gas usage", "therms", 5, SectionHome},
	Groceries:        {Groceries, "groceries", "Weekly grocery spending", "$", 20, SectionConsumption},
	Restaurants:      {Restaurants, "restaurants", "Monthly restaurant visits", "visits", 1, SectionConsumption},
	Clothing:         {Clothing, "clothing", "New clothing items per month", "items", 1, SectionConsumption},
}

// Fields returns every counter in calculator order.
func Fields() []Field {
	out := make([]Field, len(fieldInfos))
	for i := range fieldInfos {
		out[i] = Field(i)
	}
	return out
}

// Valid reports whether f names a known counter.
func (f Field) Valid() bool {
	return f >= 0 && int(f) < len(fieldInfos)
}

// Info returns the metadata for f. Unknown fields return a zero FieldInfo with Step 1.
func (f Field) Info() FieldInfo {
	if !f.Valid() {
		return FieldInfo{Field: f, Key: f.String(), Step: 1}
	}
	return fieldInfos[f]
}

// Step returns the increment used by the stepper buttons.
func (f Field) Step() int { return f.Info().Step }

// String returns the camelCase key of the field.
func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldInfos[f].Key
}

// ParseField resolves a field key. Matching ignores case, dashes and
// underscores, so "car-miles", "car_miles" and "carMiles" are equivalent.
func ParseField(name string) (Field, error) {
	want := normalizeKey(name)
	for i := range fieldInfos {
		if normalizeKey(fieldInfos[i].Key) == want {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "").Replace(s)
}

// SectionFields pairs a section with its counters.
type SectionFields struct {
	Section Section
	Fields  []Field
}

// Sections returns the calculator sections with their counters in display order.
func Sections() []SectionFields {
	out := []SectionFields{
		{Section: SectionTransportation},
		{Section: SectionHome},
		{Section: SectionConsumption},
	}
	for _, f := range Fields() {
		for i := range out {
			if out[i].Section == f.Info().Section {
				out[i].Fields = append(out[i].Fields, f)
			}
		}
	}
	return out
}
