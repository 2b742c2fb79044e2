package scheduling

import (
	"math"

	"github.com/sriramindia007/finflux-leadmanagement-sub000/types"
)

const (
	attendanceWeight = 0.40
	collectionWeight = 0.30
	travelWeight     = 0.15
	timeOfDayWeight  = 0.15
)

// timeOfDayScore is the hand-tuned attendance curve over the hour of day
// (9.5 = 09:30). Centres turn out best mid-morning, dip after lunch, recover a
// little mid-afternoon and fall away in the evening.
func timeOfDayScore(hour float64) float64 {
	switch {
	case hour >= 8.5 && hour <= 11.5:
		return 1.0 - math.Abs(hour-10.0)/3.0
	case hour <= 13.0:
		return 0.4 - (hour-11.5)*0.2
	case hour <= 14.5:
		return 0.1
	case hour <= 16.0:
		return 0.3 + (hour-14.5)*0.1
	default:
		return math.Max(0, 0.45-(hour-16.0)*0.2)
	}
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}

// ScoreSlot computes the composite desirability of starting a meeting at
// slotStart. Travel beyond one hour is capped so a distant centre cannot drown
// out the other factors. Each contribution is rounded to 4 decimals before
// summing, so the stored breakdown always adds up to the stored total.
// isNewCentre does not change the formula; it is carried through for the
// explanation wording only.
func ScoreSlot(slotStart string, attendanceRate, collectionRate, travelHours float64, isNewCentre bool) (float64, types.ScoreBreakdown) {
	hour := float64(TimeToMins(slotStart)) / 60.0
	tod := timeOfDayScore(hour)
	travelPenalty := math.Min(travelHours, 1.0)

	attContribution := round4(attendanceRate * attendanceWeight)
	collContribution := round4(collectionRate * collectionWeight)
	travelContribution := round4(travelPenalty * travelWeight)
	todContribution := round4(tod * timeOfDayWeight)
	total := round4(attContribution + collContribution - travelContribution + todContribution)

	breakdown := types.ScoreBreakdown{
		AttendanceRate:     attendanceRate,
		CollectionRate:     collectionRate,
		TravelHours:        travelHours,
		TravelPenalty:      travelPenalty,
		TimeOfDayScore:     tod,
		AttContribution:    attContribution,
		CollContribution:   collContribution,
		TravelContribution: travelContribution,
		TodContribution:    todContribution,
		Total:              total,
	}
	return total, breakdown
}
