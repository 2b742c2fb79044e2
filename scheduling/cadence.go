package scheduling

import (
	"fmt"
	"strings"
	"time"

	"github.com/sriramindia007/finflux-leadmanagement-sub000/types"
)

var weekdayNames = []string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// CheckFrequency matches a proposed meeting date against a centre's stated
// cadence text, e.g. "Every 4 weeks, on Wednesday". The check is advisory: a
// missing cadence or date is never a failure, only a mismatched weekday is.
func CheckFrequency(frequencyText string, meetingDate time.Time) types.FrequencyCheck {
	if strings.TrimSpace(frequencyText) == "" || meetingDate.IsZero() {
		return types.FrequencyCheck{
			IsValid: true,
			Message: "Meeting cadence not configured; any day is acceptable.",
		}
	}

	// take the weekday name appearing earliest in the text
	lower := strings.ToLower(frequencyText)
	expected := ""
	firstIdx := -1
	for _, day := range weekdayNames {
		if idx := strings.Index(lower, day); idx >= 0 && (firstIdx < 0 || idx < firstIdx) {
			firstIdx = idx
			expected = day
		}
	}

	if expected == "" {
		return types.FrequencyCheck{
			IsValid: true,
			Message: "Flexible cadence; no fixed meeting day stated.",
		}
	}

	actual := strings.ToLower(meetingDate.Weekday().String())
	if actual == expected {
		return types.FrequencyCheck{
			IsValid: true,
			Message: fmt.Sprintf("Proposed date falls on a %s, matching the centre's cadence.", titleCase(expected)),
		}
	}

	return types.FrequencyCheck{
		IsValid: false,
		Message: fmt.Sprintf("Centre meets on %s, but %s is a %s.",
			titleCase(expected), meetingDate.Format("2 Jan 2006"), titleCase(actual)),
	}
}

func titleCase(day string) string {
	if day == "" {
		return day
	}
	return strings.ToUpper(day[:1]) + day[1:]
}
