package scheduling

import (
	"sort"

	"github.com/sriramindia007/finflux-leadmanagement-sub000/types"
)

const (
	baseMeetingMins = 10
	minsPerMember   = 3
	bufferMins      = 10
)

// MeetingDuration is the linear duration model for a centre meeting: a fixed
// setup time, three minutes per member, and a wind-down buffer.
func MeetingDuration(totalMembers int) int {
	return baseMeetingMins + totalMembers*minsPerMember + bufferMins
}

// RecommendSlot ranks every slot in the operating day that fits the centre's
// availability windows, best first. Occupancy against an officer's existing
// bookings is deliberately not checked here: window fit answers "what suits the
// centre", and callers layer schedule conflicts on top with SlotOccupied.
func RecommendSlot(totalMembers int, windows []types.AvailabilityWindow, attendanceRate, collectionRate float64, travelTimeMins int, isNewCentre bool) types.RecommendationResult {
	duration := MeetingDuration(totalMembers)
	needed := SlotsNeeded(duration)
	travelHours := float64(travelTimeMins) / 60.0

	feasible := []types.FeasibleSlot{}
	for _, slot := range GenerateSlots(DayStart, DayEnd) {
		if !InsideWindow(slot, needed, windows) {
			continue
		}
		score, _ := ScoreSlot(slot, attendanceRate, collectionRate, travelHours, isNewCentre)
		feasible = append(feasible, types.FeasibleSlot{Slot: slot, Score: score})
	}

	// stable: grid order breaks score ties
	sort.SliceStable(feasible, func(i, j int) bool {
		return feasible[i].Score > feasible[j].Score
	})

	result := types.RecommendationResult{
		Duration:    duration,
		AllFeasible: feasible,
	}
	if len(feasible) > 0 {
		result.BestSlot = feasible[0].Slot
		_, breakdown := ScoreSlot(feasible[0].Slot, attendanceRate, collectionRate, travelHours, isNewCentre)
		result.TopBreakdown = &breakdown
	}
	return result
}
