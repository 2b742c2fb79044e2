package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sriramindia007/finflux-leadmanagement-sub000/types"
)

func TestMeetingDuration(t *testing.T) {
	assert.Equal(t, 20, MeetingDuration(0))
	assert.Equal(t, 80, MeetingDuration(20))
	assert.Equal(t, 170, MeetingDuration(50))
}

func TestRecommendSlot_NoWindowsMeansNoSlot(t *testing.T) {
	res := RecommendSlot(20, nil, 0.82, 0.91, 16, false)
	assert.Empty(t, res.BestSlot)
	assert.Empty(t, res.AllFeasible)
	assert.Nil(t, res.TopBreakdown)
	assert.Equal(t, 80, res.Duration)
}

func TestRecommendSlot_EndToEnd(t *testing.T) {
	windows := []types.AvailabilityWindow{
		{Start: "08:00", End: "13:00"},
		{Start: "14:00", End: "19:00"},
	}
	res := RecommendSlot(20, windows, 0.82, 0.91, 16, false)

	// 10 + 20*3 + 10 = 80 mins, three 30-minute slots
	require.Equal(t, 80, res.Duration)

	// morning window admits 09:00..11:30, afternoon 14:00..17:30
	require.Len(t, res.AllFeasible, 14)
	for _, fs := range res.AllFeasible {
		assert.True(t, InsideWindow(fs.Slot, 3, windows), "slot %s outside windows", fs.Slot)
	}

	// 10:00 peaks the time-of-day curve and must win
	assert.Equal(t, "10:00", res.BestSlot)

	// recomputed breakdown must agree with the ranked score
	require.NotNil(t, res.TopBreakdown)
	assert.Equal(t, res.AllFeasible[0].Score, res.TopBreakdown.Total)

	// 0.82*0.40 + 0.91*0.30 - (16/60)*0.15 + 1.0*0.15, each term rounded
	assert.InDelta(t, 0.711, res.TopBreakdown.Total, 1e-9)
}

func TestRecommendSlot_StableTieBreakByGridOrder(t *testing.T) {
	windows := []types.AvailabilityWindow{{Start: "08:00", End: "13:00"}}
	res := RecommendSlot(20, windows, 0.82, 0.91, 16, false)

	// 09:30 and 10:30 are equidistant from the 10:00 peak; grid order decides
	require.True(t, len(res.AllFeasible) >= 3)
	assert.Equal(t, "10:00", res.AllFeasible[0].Slot)
	assert.Equal(t, "09:30", res.AllFeasible[1].Slot)
	assert.Equal(t, "10:30", res.AllFeasible[2].Slot)
}

func TestRecommendSlot_RankedDescending(t *testing.T) {
	windows := []types.AvailabilityWindow{
		{Start: "09:00", End: "19:30"},
	}
	res := RecommendSlot(10, windows, 0.75, 0.85, 45, false)
	for i := 1; i < len(res.AllFeasible); i++ {
		assert.GreaterOrEqual(t, res.AllFeasible[i-1].Score, res.AllFeasible[i].Score)
	}
}

func TestRecommendSlot_OccupancyIsCallerConcern(t *testing.T) {
	// the recommender ignores existing bookings; callers filter with SlotOccupied
	windows := []types.AvailabilityWindow{{Start: "09:00", End: "13:00"}}
	schedule := []types.ScheduleEntry{
		{CentreName: "Hosur Centre", Start: "10:00", End: "11:30"},
	}

	res := RecommendSlot(20, windows, 0.82, 0.91, 16, false)
	assert.Equal(t, "10:00", res.BestSlot)

	var free []types.FeasibleSlot
	for _, fs := range res.AllFeasible {
		if occ := SlotOccupied(fs.Slot, res.Duration, schedule, ""); !occ.Occupied {
			free = append(free, fs)
		}
	}
	require.NotEmpty(t, free)
	assert.Equal(t, "11:30", free[0].Slot)
}
