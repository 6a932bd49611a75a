package footprint

import "math"

// LifestyleInputs are the calculator counters. All values are non-negative.
type LifestyleInputs struct {
	CarMiles         int `json:"car_miles"         yaml:"car_miles"`
	PublicTransit    int `json:"public_transit"    yaml:"public_transit"`
	FlightHours      int `json:"flight_hours"      yaml:"flight_hours"`
	ElectricityUsage int `json:"electricity_usage" yaml:"electricity_usage"`
	NaturalGas       int `json:"natural_gas"       yaml:"natural_gas"`
	Groceries        int `json:"groceries"         yaml:"groceries"`
	Restaurants      int `json:"restaurants"       yaml:"restaurants"`
	Clothing         int `json:"clothing"          yaml:"clothing"`
}

// DefaultInputs returns the counters the calculator starts with.
func DefaultInputs() LifestyleInputs {
	return LifestyleInputs{
		CarMiles:         120,
		PublicTransit:    30,
		FlightHours:      4,
		ElectricityUsage: 400,
		NaturalGas:       50,
		Groceries:        200,
		Restaurants:      10,
		Clothing:         3,
	}
}

// Get returns the value of one counter. Unknown fields read as zero.
func (in LifestyleInputs) Get(f Field) int {
	if p := in.ptr(f); p != nil {
		return *p
	}
	return 0
}

// With returns a copy of in with f set to v, clamped at zero.
func (in LifestyleInputs) With(f Field, v int) LifestyleInputs {
	if p := in.ptr(f); p != nil {
		*p = max(0, v)
	}
	return in
}

// Adjust returns in with f moved by delta and clamped at zero. There is no
// upper bound beyond saturating at math.MaxInt, and no other counter changes.
func Adjust(in LifestyleInputs, f Field, delta int) LifestyleInputs {
	return in.With(f, saturatingAdd(in.Get(f), delta))
}

// saturatingAdd adds delta to a non-negative v, stopping at math.MaxInt
// instead of wrapping.
func saturatingAdd(v, delta int) int {
	if delta > 0 && v > math.MaxInt-delta {
		return math.MaxInt
	}
	return v + delta
}

// Increment moves f up by its step.
func Increment(in LifestyleInputs, f Field) LifestyleInputs {
	return Adjust(in, f, f.Step())
}

// Decrement moves f down by its step, stopping at zero.
func Decrement(in LifestyleInputs, f Field) LifestyleInputs {
	return Adjust(in, f, -f.Step())
}

// Set validates and assigns an absolute value, for callers that take user
// input. Unlike With it rejects negative values instead of clamping them.
func Set(in LifestyleInputs, f Field, v int) (LifestyleInputs, error) {
	if v < 0 {
		return in, ErrNegativeValue
	}
	return in.With(f, v), nil
}

// ptr returns the address of f inside the receiver copy.
func (in *LifestyleInputs) ptr(f Field) *int {
	switch f {
	case CarMiles:
		return &in.CarMiles
	case PublicTransit:
		return &in.PublicTransit
	case FlightHours:
		return &in.FlightHours
	case ElectricityUsage:
		return &in.ElectricityUsage
	case NaturalGas:
		return &in.NaturalGas
	case Groceries:
		return &in.Groceries
	case Restaurants:
		return &in.Restaurants
	case Clothing:
		return &in.Clothing
	default:
		return nil
	}
}
