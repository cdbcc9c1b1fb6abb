package schedule

import "github.com/avonwash/WCS-AvailabilityService/internal/domain"

// Resolution is the outcome of mapping a batch of customer postcodes onto
// the round table.
type Resolution struct {
	// Entries are all rounds whose prefix set intersects the input.
	// A postcode served by two routes yields both entries.
	Entries []domain.ScheduleEntry

	// FridayOnly is set when any input postcode falls under the Friday
	// exception. A mixed batch of Friday and regular postcodes collapses
	// the whole query to the Friday-only path.
	FridayOnly bool
}

// Covered reports whether the input matched anything at all
func (r Resolution) Covered() bool {
	return r.FridayOnly || len(r.Entries) > 0
}

// Resolve maps raw customer postcodes onto the table. Inputs are uppercased
// and stripped of whitespace before prefix matching; blank inputs are
// ignored. No match yields an empty resolution, which callers must treat as
// "area not covered" rather than an error.
func (t *Table) Resolve(postcodes []string) Resolution {
	var res Resolution

	normalized := make([]string, 0, len(postcodes))
	for _, raw := range postcodes {
		pc := domain.NormalizePostcode(raw)
		if pc == "" {
			continue
		}
		normalized = append(normalized, pc)
		if t.fridayOnly.Matches(pc) {
			res.FridayOnly = true
		}
	}

	for _, entry := range t.entries {
		if entry.MatchesAny(normalized) {
			res.Entries = append(res.Entries, entry)
		}
	}

	return res
}

// FridayCapacityFor returns the weekly capacity for a Friday-only batch:
// the first matching prefix override wins, then the first matching round's
// capacity, then the global default.
func (t *Table) FridayCapacityFor(postcodes []string) int {
	for _, raw := range postcodes {
		pc := domain.NormalizePostcode(raw)
		if pc == "" {
			continue
		}
		if capacity, ok := t.fridayOnly.CapacityFor(pc); ok {
			return capacity
		}
	}

	res := t.Resolve(postcodes)
	if len(res.Entries) > 0 {
		return res.Entries[0].Capacity
	}
	return domain.DefaultRoundCapacity
}
