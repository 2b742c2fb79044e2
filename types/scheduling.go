package types

// Coordinate is a WGS 84 point in decimal degrees.
type Coordinate struct {
	Lat float64 `firestore:"lat" json:"lat"`
	Lng float64 `firestore:"lng" json:"lng"`
}

// ScheduleEntry is an already-booked centre meeting on an officer's day.
// Times are zero-padded "HH:MM" strings, so plain string comparison orders them.
type ScheduleEntry struct {
	CentreName string  `firestore:"centreName" json:"centreName"`
	Lat        float64 `firestore:"lat" json:"lat"`
	Lng        float64 `firestore:"lng" json:"lng"`
	Start      string  `firestore:"start" json:"start"`
	End        string  `firestore:"end" json:"end"`
}

// AvailabilityWindow marks a block of the day during which meetings may be
// scheduled, e.g. 08:00-13:00. Windows are caller-supplied and assumed
// non-overlapping; nothing here validates that.
type AvailabilityWindow struct {
	Start string `firestore:"start" json:"start"`
	End   string `firestore:"end" json:"end"`
}

// CentreProfile is the slice of a centre document the visit recommender needs.
// AttendanceRate and CollectionRate are nil only for brand-new centres; callers
// substitute the conservative baselines before scoring.
type CentreProfile struct {
	ID             string   `firestore:"-" json:"id"`
	Name           string   `firestore:"name" json:"name"`
	Members        int      `firestore:"members" json:"members"`
	AttendanceRate *float64 `firestore:"attendanceRate" json:"attendanceRate"`
	CollectionRate *float64 `firestore:"collectionRate" json:"collectionRate"`
	IsNewCentre    bool     `firestore:"isNewCentre" json:"isNewCentre"`
	Lat            float64  `firestore:"lat" json:"lat"`
	Lng            float64  `firestore:"lng" json:"lng"`
	FrequencyText  string   `firestore:"frequencyText" json:"frequencyText"`
}

// TravelEstimate is a chained travel-time estimate between two stops.
type TravelEstimate struct {
	Mins int     `json:"mins"`
	Km   float64 `json:"km"`
}

// FrequencyCheck is the advisory result of matching a proposed meeting date
// against a centre's stated cadence. It never blocks scheduling.
type FrequencyCheck struct {
	IsValid bool   `json:"isValid"`
	Message string `json:"message"`
}

// Occupancy reports whether a candidate interval collides with a booked meeting.
type Occupancy struct {
	Occupied   bool   `json:"occupied"`
	CentreName string `json:"centreName,omitempty"`
}

// ScoreBreakdown is the full factor decomposition of a slot score. Each
// contribution is rounded to 4 decimal places before the total is formed, so
// Total == Att + Coll - Travel + Tod within rounding.
type ScoreBreakdown struct {
	AttendanceRate     float64 `json:"attendance_rate"`
	CollectionRate     float64 `json:"collection_rate"`
	TravelHours        float64 `json:"travel_hours"`
	TravelPenalty      float64 `json:"travel_penalty"`
	TimeOfDayScore     float64 `json:"time_of_day_score"`
	AttContribution    float64 `json:"att_contribution"`
	CollContribution   float64 `json:"coll_contribution"`
	TravelContribution float64 `json:"travel_contribution"`
	TodContribution    float64 `json:"tod_contribution"`
	Total              float64 `json:"total"`
}

// FeasibleSlot is one scored candidate start time.
type FeasibleSlot struct {
	Slot  string  `json:"slot"`
	Score float64 `json:"score"`
}

// RecommendationResult is the recommender's answer for one centre visit.
// BestSlot is empty iff AllFeasible is empty.
type RecommendationResult struct {
	BestSlot     string          `json:"bestSlot,omitempty"`
	Duration     int             `json:"duration"`
	AllFeasible  []FeasibleSlot  `json:"allFeasible"`
	TopBreakdown *ScoreBreakdown `json:"topBreakdown,omitempty"`
}
