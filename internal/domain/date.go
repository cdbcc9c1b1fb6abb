package domain

import "time"

// DateStatus represents the occupancy classification of a service date
type DateStatus string

const (
	StatusAvailable DateStatus = "available"
	StatusLimited   DateStatus = "limited"
	StatusFull      DateStatus = "full"
)

// AvailableDate represents a single serviceable date for a round.
// Instances are built fresh on every query and never persisted.
//
// Capacity is a ceiling, not live availability: RemainingCapacity equals
// Capacity unless an occupancy provider supplying committed booking counts
// is wired into the availability use case.
type AvailableDate struct {
	DisplayLabel      string      // e.g. "15 Jan"
	FullDate          time.Time   // local midnight of the service date
	Year              int
	Area              string
	BookingType       BookingType
	Capacity          int
	RemainingCapacity int
	Status            DateStatus
	SpecialRule       string // empty unless a scheduling exception applies
}

// IsFull returns true if the date has no remaining capacity
func (d *AvailableDate) IsFull() bool {
	return d.RemainingCapacity <= 0
}

// HasSpecialRule returns true if a scheduling exception applies to this date
func (d *AvailableDate) HasSpecialRule() bool {
	return d.SpecialRule != ""
}

// StatusFor classifies a date given its capacity and remaining capacity.
// A date is limited once remaining capacity drops to a quarter of the
// ceiling (rounded down, never less than one unit).
func StatusFor(capacity, remaining int) DateStatus {
	if remaining <= 0 {
		return StatusFull
	}
	threshold := int(float64(capacity) * LimitedThresholdRatio)
	if threshold < 1 {
		threshold = 1
	}
	if remaining <= threshold {
		return StatusLimited
	}
	return StatusAvailable
}
