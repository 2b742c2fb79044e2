package handlers

import (
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sriramindia007/finflux-leadmanagement-sub000/db"
	"github.com/sriramindia007/finflux-leadmanagement-sub000/scheduling"
	"github.com/sriramindia007/finflux-leadmanagement-sub000/types"
)

// Baseline rates substituted for centres with no history yet. The scoring core
// never applies these itself; resolving them is this caller's job.
const (
	baselineAttendanceRate = 0.78
	baselineCollectionRate = 0.82
)

type recommendRequest struct {
	CentreID  string                     `json:"centreId" binding:"required"`
	OfficerID string                     `json:"officerId"`
	Date      string                     `json:"date" binding:"required"` // YYYY-MM-DD
	Base      types.Coordinate           `json:"base"`
	Windows   []types.AvailabilityWindow `json:"windows"`
	Schedule  []types.ScheduleEntry      `json:"schedule"`
}

// RecommendVisit is the orchestration layer over the scheduling core: it
// prepares travel and cadence inputs, asks the recommender for window-fitting
// slots, then layers the officer's schedule conflicts on top and explains the
// winner.
func RecommendVisit(c *gin.Context, client *firestore.Client) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meetingDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, use YYYY-MM-DD"})
		return
	}

	centre, err := db.GetCentre(client, req.CentreID)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "centre not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	schedule := req.Schedule
	if schedule == nil && req.OfficerID != "" {
		schedule, err = db.GetDaySchedule(client, req.OfficerID, req.Date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	travel := scheduling.ChainedTravel(schedule, centre.Lat, centre.Lng, req.Base.Lat, req.Base.Lng)
	freqCheck := scheduling.CheckFrequency(centre.FrequencyText, meetingDate)

	attendance, collection, isNew := resolveRates(centre)
	rec := scheduling.RecommendSlot(centre.Members, req.Windows, attendance, collection, travel.Mins, isNew)

	// feasible AND not colliding with the officer's existing bookings
	free := []types.FeasibleSlot{}
	for _, fs := range rec.AllFeasible {
		if occ := scheduling.SlotOccupied(fs.Slot, rec.Duration, schedule, centre.Name); !occ.Occupied {
			free = append(free, fs)
		}
	}

	var explanation []string
	if rec.BestSlot != "" && rec.TopBreakdown != nil {
		explanation = scheduling.ExplainSlot(rec.BestSlot, *rec.TopBreakdown, rec.Duration, isNew)
	}

	c.JSON(http.StatusOK, gin.H{
		"centreId":       centre.ID,
		"travel":         travel,
		"frequencyCheck": freqCheck,
		"recommendation": rec,
		"freeSlots":      free,
		"explanation":    explanation,
	})
}

// resolveRates fills in the conservative baselines for brand-new centres with
// no recorded history.
func resolveRates(centre types.CentreProfile) (attendance, collection float64, isNew bool) {
	attendance = baselineAttendanceRate
	collection = baselineCollectionRate
	isNew = centre.IsNewCentre

	if centre.AttendanceRate != nil {
		attendance = *centre.AttendanceRate
	} else {
		isNew = true
	}
	if centre.CollectionRate != nil {
		collection = *centre.CollectionRate
	} else {
		isNew = true
	}
	return attendance, collection, isNew
}

// ExplainVisitSlot explains any candidate slot, not just the recommended one.
func ExplainVisitSlot(c *gin.Context, client *firestore.Client) {
	var req struct {
		CentreID   string `json:"centreId" binding:"required"`
		Slot       string `json:"slot" binding:"required"`
		TravelMins int    `json:"travelMins"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	centre, err := db.GetCentre(client, req.CentreID)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "centre not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	attendance, collection, isNew := resolveRates(centre)
	duration := scheduling.MeetingDuration(centre.Members)
	_, breakdown := scheduling.ScoreSlot(req.Slot, attendance, collection, float64(req.TravelMins)/60.0, isNew)

	c.JSON(http.StatusOK, gin.H{
		"slot":        req.Slot,
		"breakdown":   breakdown,
		"explanation": scheduling.ExplainSlot(req.Slot, breakdown, duration, isNew),
	})
}
