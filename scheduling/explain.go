package scheduling

import (
	"fmt"
	"math"

	"github.com/sriramindia007/finflux-leadmanagement-sub000/types"
)

// ExplainSlot turns a score breakdown into an ordered list of human-readable
// reasons for the field officer. It never recomputes the score; everything is
// read straight off the breakdown. A collection rate below 80% deliberately
// adds no sentence: collections are only mentioned when they are a selling
// point.
func ExplainSlot(slotStart string, b types.ScoreBreakdown, durationMins int, isNewCentre bool) []string {
	reasons := make([]string, 0, 5)
	hour := float64(TimeToMins(slotStart)) / 60.0

	switch {
	case b.TimeOfDayScore >= 0.8:
		reasons = append(reasons, fmt.Sprintf("%s is in the peak morning window, when centre attendance is historically strongest.", slotStart))
	case b.TimeOfDayScore >= 0.5:
		reasons = append(reasons, fmt.Sprintf("%s is a good morning slot with solid expected turnout.", slotStart))
	case hour >= 13 && hour <= 14:
		reasons = append(reasons, fmt.Sprintf("%s falls in the post-lunch dip; attendance tends to be weakest here.", slotStart))
	default:
		reasons = append(reasons, fmt.Sprintf("%s is an afternoon slot, a secondary choice for most centres.", slotStart))
	}

	if isNewCentre {
		reasons = append(reasons, "New centre: scored with a conservative baseline until real attendance history accrues.")
	} else if b.AttendanceRate >= 0.85 {
		reasons = append(reasons, fmt.Sprintf("High attendance rate (%.0f%%) makes this centre a reliable visit.", b.AttendanceRate*100))
	} else if b.AttendanceRate >= 0.70 {
		reasons = append(reasons, fmt.Sprintf("Average attendance rate (%.0f%%); expect a typical turnout.", b.AttendanceRate*100))
	} else {
		reasons = append(reasons, fmt.Sprintf("Low attendance rate (%.0f%%); consider confirming with the centre leader beforehand.", b.AttendanceRate*100))
	}

	if b.CollectionRate >= 0.90 {
		reasons = append(reasons, fmt.Sprintf("Excellent collection rate (%.0f%%).", b.CollectionRate*100))
	} else if b.CollectionRate >= 0.80 {
		reasons = append(reasons, fmt.Sprintf("Good collection rate (%.0f%%).", b.CollectionRate*100))
	}

	travelMins := int(math.Round(b.TravelHours * 60))
	if travelMins <= 15 {
		reasons = append(reasons, fmt.Sprintf("Short hop from the previous stop (about %d mins).", travelMins))
	} else if travelMins <= 30 {
		reasons = append(reasons, fmt.Sprintf("Moderate travel from the previous stop (about %d mins).", travelMins))
	} else {
		reasons = append(reasons, fmt.Sprintf("Longer leg (about %d mins of travel), still within the day's reach.", travelMins))
	}

	reasons = append(reasons, fmt.Sprintf("Meeting duration: %d mins (%dh %dm).", durationMins, durationMins/60, durationMins%60))
	return reasons
}
