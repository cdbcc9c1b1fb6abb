// Package schedule owns the static round configuration: which postcode
// prefixes are cleaned in which area, on which weekday, at what capacity,
// and which prefixes fall under the Friday-only exception. The table is
// immutable once loaded; operators edit the TOML file rather than code.
package schedule

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/avonwash/WCS-AvailabilityService/internal/domain"
)

// Table is the full round schedule plus the Friday-only exception rule
type Table struct {
	entries    []domain.ScheduleEntry
	fridayOnly domain.FridayOnlyRule
}

// fileTable mirrors the schedule TOML file layout
type fileTable struct {
	Rounds     []fileRound    `toml:"round"`
	FridayOnly map[string]int `toml:"friday_only"`
}

type fileRound struct {
	Postcodes []string `toml:"postcodes"`
	Area      string   `toml:"area"`
	Anchor    string   `toml:"anchor"`
	Weekday   int      `toml:"weekday"`
	Capacity  int      `toml:"capacity"`
}

// Default returns the built-in round schedule, used when no schedule file
// is configured and as the baseline the shipped schedule.toml mirrors.
func Default() *Table {
	t, err := build([]domain.ScheduleEntry{
		{Postcodes: []string{"BS26", "BS29"}, Area: "Axbridge & Banwell", Anchor: "07 Apr", Weekday: time.Tuesday, Capacity: 8},
		{Postcodes: []string{"BS25"}, Area: "Winscombe & Sandford", Anchor: "14 Apr", Weekday: time.Tuesday, Capacity: 6},
		{Postcodes: []string{"BS27", "BS28"}, Area: "Cheddar & Wedmore", Anchor: "21 Apr", Weekday: time.Wednesday, Capacity: 8},
		{Postcodes: []string{"BS27", "BA5"}, Area: "Wells Road Run", Anchor: "16 Mar", Weekday: time.Thursday, Capacity: 10},
		{Postcodes: []string{"BS40", "BS41"}, Area: "Chew Valley", Anchor: "03 Aug", Weekday: time.Monday, Capacity: 6},
		{Postcodes: []string{"BA4"}, Area: "Shepton Mallet", Anchor: "09 Feb", Weekday: time.Thursday, Capacity: 8},
		{Postcodes: []string{"BA3"}, Area: "Radstock & Midsomer Norton", Anchor: "23 Feb", Weekday: time.Monday, Capacity: 8},
	}, domain.FridayOnlyRule{
		Capacities: map[string]int{
			"BA6":  10, // Glastonbury
			"BA16": 8,  // Street
		},
	})
	if err != nil {
		panic(err)
	}
	return t
}

// Load reads a round schedule from a TOML file. A bad file is a startup
// error, never a silent fallback.
func Load(path string) (*Table, error) {
	var ft fileTable
	if _, err := toml.DecodeFile(path, &ft); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadTable, path, err)
	}

	entries := make([]domain.ScheduleEntry, 0, len(ft.Rounds))
	for _, r := range ft.Rounds {
		entries = append(entries, domain.ScheduleEntry{
			Postcodes: r.Postcodes,
			Area:      r.Area,
			Anchor:    r.Anchor,
			Weekday:   time.Weekday(r.Weekday),
			Capacity:  r.Capacity,
		})
	}

	return build(entries, domain.FridayOnlyRule{Capacities: ft.FridayOnly})
}

// build normalizes and validates a table
func build(entries []domain.ScheduleEntry, fridayOnly domain.FridayOnlyRule) (*Table, error) {
	for i := range entries {
		e := &entries[i]
		if e.Area == "" {
			return nil, fmt.Errorf("%w: round %d has no area name", ErrInvalidTable, i)
		}
		if len(e.Postcodes) == 0 {
			return nil, fmt.Errorf("%w: round %q has no postcode prefixes", ErrInvalidTable, e.Area)
		}
		if e.Weekday < time.Sunday || e.Weekday > time.Saturday {
			return nil, fmt.Errorf("%w: round %q has weekday %d out of range", ErrInvalidTable, e.Area, e.Weekday)
		}
		if _, _, err := ParseAnchor(e.Anchor); err != nil {
			return nil, fmt.Errorf("%w: round %q: %v", ErrInvalidTable, e.Area, err)
		}
		if e.Capacity <= 0 {
			e.Capacity = domain.DefaultRoundCapacity
		}
		for j, pc := range e.Postcodes {
			e.Postcodes[j] = domain.NormalizePostcode(pc)
		}
	}

	normalized := make(map[string]int, len(fridayOnly.Capacities))
	for prefix, capacity := range fridayOnly.Capacities {
		normalized[domain.NormalizePostcode(prefix)] = capacity
	}
	fridayOnly.Capacities = normalized

	return &Table{entries: entries, fridayOnly: fridayOnly}, nil
}

// Rounds returns a copy of the configured round entries
func (t *Table) Rounds() []domain.ScheduleEntry {
	out := make([]domain.ScheduleEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// FridayOnlyPrefixes returns the configured Friday-only prefix capacities
func (t *Table) FridayOnlyPrefixes() map[string]int {
	out := make(map[string]int, len(t.fridayOnly.Capacities))
	for prefix, capacity := range t.fridayOnly.Capacities {
		out[prefix] = capacity
	}
	return out
}
