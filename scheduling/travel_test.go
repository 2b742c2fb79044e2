package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sriramindia007/finflux-leadmanagement-sub000/types"
)

func TestChainedTravel_EmptyScheduleUsesBase(t *testing.T) {
	// one degree of longitude on the equator is ~111.19 km; inflated by 1.4
	// that is ~155.7 km, or 373 minutes at 25 km/h (floored)
	est := ChainedTravel(nil, 0, 1, 0, 0)
	assert.Equal(t, 373, est.Mins)
	assert.InDelta(t, 155.7, est.Km, 1e-9)
}

func TestChainedTravel_UsesLastEndingBooking(t *testing.T) {
	schedule := []types.ScheduleEntry{
		{CentreName: "Hosur Centre", Lat: 0, Lng: 0, Start: "10:00", End: "11:00"},
		{CentreName: "Attibele Centre", Lat: 0, Lng: 1, Start: "12:00", End: "13:00"},
	}
	// base is far away; the estimate must chain from Attibele (ends latest),
	// which sits exactly on the target
	est := ChainedTravel(schedule, 0, 1, 10, 10)
	assert.Equal(t, minTravelMins, est.Mins)
	assert.InDelta(t, 0.0, est.Km, 1e-9)
}

func TestChainedTravel_OrderOfEntriesIrrelevant(t *testing.T) {
	a := types.ScheduleEntry{CentreName: "A", Lat: 0, Lng: 0, Start: "10:00", End: "11:00"}
	b := types.ScheduleEntry{CentreName: "B", Lat: 0, Lng: 1, Start: "12:00", End: "13:00"}

	est1 := ChainedTravel([]types.ScheduleEntry{a, b}, 0, 2, 5, 5)
	est2 := ChainedTravel([]types.ScheduleEntry{b, a}, 0, 2, 5, 5)
	assert.Equal(t, est1, est2)
}

func TestChainedTravel_FiveMinuteFloor(t *testing.T) {
	// same point: raw travel time is zero, floor must kick in
	est := ChainedTravel(nil, 12.9716, 77.5946, 12.9716, 77.5946)
	assert.Equal(t, 5, est.Mins)
	assert.Equal(t, 0.0, est.Km)
}
