package scheduling

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sriramindia007/finflux-leadmanagement-sub000/types"
)

const (
	slotSizeMins = 30

	// DayStart and DayEnd bound the operating day for centre visits.
	DayStart = "09:00"
	DayEnd   = "19:30"
)

// TimeToMins converts a zero-padded "HH:MM" string to minutes since midnight.
func TimeToMins(t string) int {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m
}

// MinsToTime converts minutes since midnight back to "HH:MM".
func MinsToTime(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// GenerateSlots produces every 30-minute candidate start time from dayStart up
// to but excluding dayEnd.
func GenerateSlots(dayStart, dayEnd string) []string {
	start := TimeToMins(dayStart)
	end := TimeToMins(dayEnd)

	var slots []string
	for t := start; t < end; t += slotSizeMins {
		slots = append(slots, MinsToTime(t))
	}
	return slots
}

// SlotsNeeded is the number of 30-minute slots a meeting of the given duration
// occupies, rounded up.
func SlotsNeeded(durationMins int) int {
	return (durationMins + slotSizeMins - 1) / slotSizeMins
}

// InsideWindow reports whether the half-open interval starting at slotStart and
// spanning nSlots slots fits entirely within at least one availability window.
func InsideWindow(slotStart string, nSlots int, windows []types.AvailabilityWindow) bool {
	s := TimeToMins(slotStart)
	e := s + nSlots*slotSizeMins
	for _, w := range windows {
		if s >= TimeToMins(w.Start) && e <= TimeToMins(w.End) {
			return true
		}
	}
	return false
}
