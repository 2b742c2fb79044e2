package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sriramindia007/finflux-leadmanagement-sub000/types"
)

func TestTimeToMins(t *testing.T) {
	assert.Equal(t, 0, TimeToMins("00:00"))
	assert.Equal(t, 570, TimeToMins("09:30"))
	assert.Equal(t, 1170, TimeToMins("19:30"))
}

func TestMinsToTime(t *testing.T) {
	assert.Equal(t, "00:00", MinsToTime(0))
	assert.Equal(t, "09:30", MinsToTime(570))
	assert.Equal(t, "19:00", MinsToTime(1140))
}

func TestTimeRoundTrip(t *testing.T) {
	for m := 0; m < 24*60; m += 30 {
		assert.Equal(t, m, TimeToMins(MinsToTime(m)))
	}
}

func TestGenerateSlots_FullDay(t *testing.T) {
	slots := GenerateSlots(DayStart, DayEnd)
	require.Len(t, slots, 21)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "19:00", slots[len(slots)-1])
	assert.NotContains(t, slots, "19:30")
}

func TestSlotsNeeded(t *testing.T) {
	cases := []struct {
		duration int
		want     int
	}{
		{0, 0},
		{1, 1},
		{30, 1},
		{31, 2},
		{80, 3},
		{90, 3},
		{91, 4},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SlotsNeeded(tc.duration), "duration %d", tc.duration)
	}
}

func TestInsideWindow(t *testing.T) {
	windows := []types.AvailabilityWindow{
		{Start: "08:00", End: "13:00"},
		{Start: "14:00", End: "19:00"},
	}

	cases := []struct {
		name  string
		slot  string
		slots int
		want  bool
	}{
		{"fits first window", "09:00", 3, true},
		{"ends exactly at window end", "11:30", 3, true},
		{"spills past window end", "12:00", 3, false},
		{"inside lunch gap", "13:00", 1, false},
		{"fits second window", "14:00", 3, true},
		{"starts before any window", "07:30", 1, false},
		{"single slot at window edge", "12:30", 1, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, InsideWindow(tc.slot, tc.slots, windows))
		})
	}
}

func TestInsideWindow_NoWindows(t *testing.T) {
	assert.False(t, InsideWindow("10:00", 1, nil))
}
