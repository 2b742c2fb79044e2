package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sriramindia007/finflux-leadmanagement-sub000/types"
)

// MeetingRecord is one held centre meeting, kept in a centre's "meetings"
// subcollection. Attendance and collection rates roll up from these.
type MeetingRecord struct {
	Date      string  `firestore:"date"` // YYYY-MM-DD
	Attended  int     `firestore:"attended"`
	Members   int     `firestore:"members"`
	Collected float64 `firestore:"collected"`
	Due       float64 `firestore:"due"`
}

// GetCentre fetches a single centre profile by document ID.
func GetCentre(client *firestore.Client, centreID string) (types.CentreProfile, error) {
	ctx := context.Background()
	var centre types.CentreProfile

	doc, err := client.Collection(centresCollection).Doc(centreID).Get(ctx)
	if err != nil {
		return centre, err
	}
	if err := doc.DataTo(&centre); err != nil {
		return centre, fmt.Errorf("error converting document to CentreProfile: %w", err)
	}
	centre.ID = doc.Ref.ID
	return centre, nil
}

// ListCentres returns every centre profile.
func ListCentres(client *firestore.Client) ([]types.CentreProfile, error) {
	ctx := context.Background()

	var centres []types.CentreProfile
	iter := client.Collection(centresCollection).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating centres: %w", err)
		}

		var centre types.CentreProfile
		if err := doc.DataTo(&centre); err != nil {
			return nil, fmt.Errorf("error converting document %s to CentreProfile: %w", doc.Ref.ID, err)
		}
		centre.ID = doc.Ref.ID
		centres = append(centres, centre)
	}
	return centres, nil
}

// GetRecentMeetings returns the most recent meeting records for a centre,
// newest first.
func GetRecentMeetings(client *firestore.Client, centreID string, limit int) ([]MeetingRecord, error) {
	ctx := context.Background()

	docs, err := client.Collection(centresCollection).
		Doc(centreID).
		Collection("meetings").
		OrderBy("date", firestore.Desc).
		Limit(limit).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("error fetching meetings for centre %s: %w", centreID, err)
	}

	var meetings []MeetingRecord
	for _, doc := range docs {
		var m MeetingRecord
		if err := doc.DataTo(&m); err != nil {
			return nil, fmt.Errorf("error converting meeting doc for centre %s: %w", centreID, err)
		}
		meetings = append(meetings, m)
	}
	return meetings, nil
}

// UpdateCentreRates writes freshly rolled-up performance rates onto a centre.
// A centre with real history is no longer "new".
func UpdateCentreRates(client *firestore.Client, centreID string, attendanceRate, collectionRate float64) error {
	ctx := context.Background()

	_, err := client.Collection(centresCollection).Doc(centreID).Set(ctx, map[string]interface{}{
		"attendanceRate": attendanceRate,
		"collectionRate": collectionRate,
		"isNewCentre":    false,
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update rates for centre %s: %w", centreID, err)
	}
	return nil
}

// GetDaySchedule reads an officer's booked meetings for one day
// (officers/{id}/schedules/{YYYY-MM-DD}). A missing document is an empty day,
// not an error.
func GetDaySchedule(client *firestore.Client, officerID, date string) ([]types.ScheduleEntry, error) {
	ctx := context.Background()

	doc, err := client.Collection(officersCollection).
		Doc(officerID).
		Collection("schedules").
		Doc(date).
		Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching schedule %s/%s: %w", officerID, date, err)
	}

	var day struct {
		Entries []types.ScheduleEntry `firestore:"entries"`
	}
	if err := doc.DataTo(&day); err != nil {
		return nil, fmt.Errorf("error converting schedule doc %s/%s: %w", officerID, date, err)
	}
	return day.Entries, nil
}
