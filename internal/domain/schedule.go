package domain

import (
	"strings"
	"time"
)

// ScheduleEntry represents one cleaning round: a set of postcode prefixes
// serviced on a fixed weekday every four weeks. The anchor label is a
// historical "DD Mon" date (no year) from which the perpetual 28-day cycle
// is projected forward, so the entry never needs a yearly update.
// Entries are static configuration, loaded once and never mutated.
// Multiple entries may share postcode prefixes across different weekdays
// when overlapping areas belong to more than one route.
type ScheduleEntry struct {
	Postcodes []string     // normalized postcode prefixes, matched by prefix
	Area      string       // human-readable round name
	Anchor    string       // "DD Mon" anchor label, e.g. "14 Apr"
	Weekday   time.Weekday // 0=Sunday .. 6=Saturday
	Capacity  int          // jobs per round visit
}

// Matches reports whether the entry serves the given postcode.
// The postcode must already be normalized (see NormalizePostcode).
func (e *ScheduleEntry) Matches(postcode string) bool {
	for _, prefix := range e.Postcodes {
		if strings.HasPrefix(postcode, prefix) {
			return true
		}
	}
	return false
}

// MatchesAny reports whether the entry serves any of the given postcodes
func (e *ScheduleEntry) MatchesAny(postcodes []string) bool {
	for _, pc := range postcodes {
		if e.Matches(pc) {
			return true
		}
	}
	return false
}

// FridayOnlyRule flags postcode prefixes that are serviced every Friday
// regardless of the round weekday their area would otherwise get.
// Capacities maps each exempt prefix to its weekly capacity; a zero value
// means "fall back to the matching round's capacity, else the default".
type FridayOnlyRule struct {
	Capacities map[string]int
}

// Matches reports whether the given normalized postcode is Friday-only
func (r *FridayOnlyRule) Matches(postcode string) bool {
	for prefix := range r.Capacities {
		if strings.HasPrefix(postcode, prefix) {
			return true
		}
	}
	return false
}

// CapacityFor returns the capacity override for the first matching prefix
func (r *FridayOnlyRule) CapacityFor(postcode string) (int, bool) {
	for prefix, capacity := range r.Capacities {
		if strings.HasPrefix(postcode, prefix) && capacity > 0 {
			return capacity, true
		}
	}
	return 0, false
}

// NormalizePostcode uppercases a raw postcode and strips all whitespace,
// so "ba6 8bh" and "BA6  8BH" both compare as "BA68BH".
func NormalizePostcode(raw string) string {
	return strings.ToUpper(strings.Join(strings.Fields(raw), ""))
}
