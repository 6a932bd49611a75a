package footprint

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrUnknownField indicates a counter name that is not part of LifestyleInputs.
	ErrUnknownField = constError("unknown lifestyle field")

	// ErrNegativeValue indicates an attempt to set a counter below zero.
	ErrNegativeValue = constError("lifestyle value cannot be negative")

	// ErrCalculationOverflow indicates a value too large to format safely.
	ErrCalculationOverflow = constError("calculation overflow")
)
