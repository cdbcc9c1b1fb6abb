package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingType(t *testing.T) {
	bt, err := ParseBookingType("")
	require.NoError(t, err)
	assert.Equal(t, BookingStandard, bt)

	bt, err = ParseBookingType("emergency")
	require.NoError(t, err)
	assert.Equal(t, BookingEmergency, bt)

	_, err = ParseBookingType("sameday")
	assert.Error(t, err)
}

func TestBookingType_IncludesHolidays(t *testing.T) {
	assert.False(t, BookingStandard.IncludesHolidays())
	assert.False(t, BookingPriority.IncludesHolidays())
	assert.True(t, BookingEmergency.IncludesHolidays())
}

func TestNormalizePostcode(t *testing.T) {
	assert.Equal(t, "BA68BH", NormalizePostcode("ba6 8bh"))
	assert.Equal(t, "BS262AB", NormalizePostcode("  bs26  2ab "))
	assert.Equal(t, "", NormalizePostcode("   "))
}

func TestScheduleEntry_Matches(t *testing.T) {
	entry := ScheduleEntry{Postcodes: []string{"BS26", "BS29"}}

	assert.True(t, entry.Matches("BS262AB"))
	assert.True(t, entry.Matches("BS29"))
	assert.False(t, entry.Matches("BS2"))
	assert.False(t, entry.Matches("BA5"))

	assert.True(t, entry.MatchesAny([]string{"ZZ99", "BS262AB"}))
	assert.False(t, entry.MatchesAny([]string{"ZZ99"}))
}

func TestFridayOnlyRule(t *testing.T) {
	rule := FridayOnlyRule{Capacities: map[string]int{"BA6": 10, "BA16": 0}}

	assert.True(t, rule.Matches("BA68BH"))
	assert.True(t, rule.Matches("BA160HW"))
	assert.False(t, rule.Matches("BS26"))

	capacity, ok := rule.CapacityFor("BA68BH")
	assert.True(t, ok)
	assert.Equal(t, 10, capacity)

	// Zero capacity means "no override"
	_, ok = rule.CapacityFor("BA160HW")
	assert.False(t, ok)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		capacity, remaining int
		want                DateStatus
	}{
		{8, 8, StatusAvailable},
		{8, 3, StatusAvailable},
		{8, 2, StatusLimited},
		{8, 1, StatusLimited},
		{8, 0, StatusFull},
		{8, -1, StatusFull},
		// Small capacities keep a minimum threshold of one unit
		{2, 1, StatusLimited},
		{2, 2, StatusAvailable},
		{1, 1, StatusLimited},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.capacity, tt.remaining),
			"capacity=%d remaining=%d", tt.capacity, tt.remaining)
	}
}
