package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sriramindia007/finflux-leadmanagement-sub000/types"
)

var daySchedule = []types.ScheduleEntry{
	{CentreName: "Hosur Centre", Start: "10:00", End: "11:00"},
	{CentreName: "Attibele Centre", Start: "14:00", End: "15:30"},
}

func TestSlotOccupied_Collision(t *testing.T) {
	res := SlotOccupied("09:30", 60, daySchedule, "")
	assert.True(t, res.Occupied)
	assert.Equal(t, "Hosur Centre", res.CentreName)
}

func TestSlotOccupied_Free(t *testing.T) {
	res := SlotOccupied("11:30", 60, daySchedule, "")
	assert.False(t, res.Occupied)
	assert.Empty(t, res.CentreName)
}

func TestSlotOccupied_TouchingBoundariesDoNotCollide(t *testing.T) {
	// ends exactly when Hosur starts
	res := SlotOccupied("09:00", 60, daySchedule, "")
	assert.False(t, res.Occupied)

	// starts exactly when Hosur ends
	res = SlotOccupied("11:00", 60, daySchedule, "")
	assert.False(t, res.Occupied)
}

func TestSlotOccupied_IgnoresOwnCentre(t *testing.T) {
	res := SlotOccupied("10:00", 60, daySchedule, "Hosur Centre")
	assert.False(t, res.Occupied)

	// other bookings still collide
	res = SlotOccupied("14:30", 60, daySchedule, "Hosur Centre")
	assert.True(t, res.Occupied)
	assert.Equal(t, "Attibele Centre", res.CentreName)
}

func TestSlotOccupied_EmptySchedule(t *testing.T) {
	res := SlotOccupied("10:00", 90, nil, "")
	assert.False(t, res.Occupied)
}
