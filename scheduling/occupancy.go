package scheduling

import "github.com/sriramindia007/finflux-leadmanagement-sub000/types"

// SlotOccupied tests whether a candidate interval collides with any booked
// meeting in the day's schedule. Intervals are half-open, so a slot ending
// exactly when another starts is not a collision. ignoreCentre excludes a
// centre's own booking when re-scoring its current slot.
func SlotOccupied(startStr string, durationMins int, schedule []types.ScheduleEntry, ignoreCentre string) types.Occupancy {
	s := TimeToMins(startStr)
	e := s + durationMins

	for _, booked := range schedule {
		if ignoreCentre != "" && booked.CentreName == ignoreCentre {
			continue
		}
		bs := TimeToMins(booked.Start)
		be := TimeToMins(booked.End)
		if max(s, bs) < min(e, be) {
			return types.Occupancy{Occupied: true, CentreName: booked.CentreName}
		}
	}
	return types.Occupancy{Occupied: false}
}
