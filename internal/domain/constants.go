package domain

// Scheduling constants
const (
	// HorizonDays is the forward window within which dates are generated
	HorizonDays = 42

	// RoundCycleDays is the cadence of a standard cleaning round
	RoundCycleDays = 28

	// FridayCycleDays is the cadence for Friday-only postcodes
	FridayCycleDays = 7

	// DefaultRoundCapacity is used when neither the round nor a
	// Friday-only prefix overrides the capacity
	DefaultRoundCapacity = 8

	// LimitedThresholdRatio is the fraction of capacity at or below which
	// a date is classified as limited
	LimitedThresholdRatio = 0.25
)

// Friday-exception labels
const (
	SpecialRuleFridayOnly = "Friday Only"

	// FridayFallbackArea is used when a Friday-only postcode has no
	// matching round entry to borrow an area name from
	FridayFallbackArea = "Friday Service Area"
)

// Time format constants
const (
	DateFormat    = "2006-01-02" // YYYY-MM-DD
	DisplayFormat = "02 Jan"     // zero-padded day + 3-letter month
)
