package scheduling

import (
	"math"

	"github.com/sriramindia007/finflux-leadmanagement-sub000/types"
)

const (
	// straight-line to road distance inflation
	roadFactor = 1.4
	// field officers move by two-wheeler on rural roads
	avgSpeedKmph = 25.0
	// minimum dead time between any two meetings
	minTravelMins = 5
)

// ChainedTravel estimates travel to the target centre from the last-ending
// booking of the day, or from the officer's base location when the day is still
// empty. Km is the road-inflated distance rounded to one decimal.
func ChainedTravel(daySchedule []types.ScheduleEntry, targetLat, targetLng, baseLat, baseLng float64) types.TravelEstimate {
	fromLat, fromLng := baseLat, baseLng
	if len(daySchedule) > 0 {
		last := daySchedule[0]
		for _, entry := range daySchedule[1:] {
			// zero-padded "HH:MM" sorts correctly as text
			if entry.End > last.End {
				last = entry
			}
		}
		fromLat, fromLng = last.Lat, last.Lng
	}

	km := HaversineDistance(fromLat, fromLng, targetLat, targetLng) * roadFactor
	mins := int(math.Floor(km / avgSpeedKmph * 60))
	if mins < minTravelMins {
		mins = minTravelMins
	}

	return types.TravelEstimate{
		Mins: mins,
		Km:   math.Round(km*10) / 10,
	}
}
