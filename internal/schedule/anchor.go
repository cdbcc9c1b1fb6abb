package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var monthsByAbbrev = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// ParseAnchor parses a "DD Mon" anchor label such as "14 Apr" into its day
// and month. The month is matched on its first three letters, case
// insensitively, so "14 April" is accepted too.
func ParseAnchor(label string) (int, time.Month, error) {
	fields := strings.Fields(label)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidAnchor, label)
	}

	day, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: non-numeric day in %q", ErrInvalidAnchor, label)
	}
	if day < 1 || day > 31 {
		return 0, 0, fmt.Errorf("%w: day %d out of range in %q", ErrInvalidAnchor, day, label)
	}

	name := strings.ToLower(fields[1])
	if len(name) < 3 {
		return 0, 0, fmt.Errorf("%w: unknown month in %q", ErrInvalidAnchor, label)
	}
	month, ok := monthsByAbbrev[name[:3]]
	if !ok {
		return 0, 0, fmt.Errorf("%w: unknown month in %q", ErrInvalidAnchor, label)
	}

	return day, month, nil
}
