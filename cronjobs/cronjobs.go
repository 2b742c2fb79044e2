package cronjobs

import (
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/robfig/cron/v3"

	"github.com/sriramindia007/finflux-leadmanagement-sub000/db"
	"github.com/sriramindia007/finflux-leadmanagement-sub000/types"
)

const (
	// NEW leads untouched this long go dormant
	staleLeadAge = 30 * 24 * time.Hour
	// rates roll up over the trailing meetings
	rateWindowMeetings = 12
	// centres with fewer held meetings keep their baseline treatment
	minMeetingsForRates = 3
)

func InitCronJobs(firestoreClient *firestore.Client) {
	log.Println("\nStarting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	// Stale lead sweep: nightly at 02:30
	_, err := c.AddFunc("30 2 * * *", func() {
		log.Println("\nCronJob: Stale Lead Sweep Running")
		sweepStaleLeads(firestoreClient)
	})
	if err != nil {
		log.Println("Error scheduling Stale Lead Sweep:", err)
	}

	// Centre rate refresh: Sundays at 03:00
	_, err = c.AddFunc("0 3 * * 0", func() {
		log.Println("\nCronJob: Centre Rate Refresh Running")
		refreshCentreRates(firestoreClient)
	})
	if err != nil {
		log.Println("Error scheduling Centre Rate Refresh:", err)
	}

	c.Start()
}

// sweepStaleLeads moves NEW leads nobody has touched in 30 days to DORMANT so
// they drop out of the active intake queue.
func sweepStaleLeads(client *firestore.Client) {
	cutoff := time.Now().UTC().Add(-staleLeadAge)
	leads, err := db.ListStaleNewLeads(client, cutoff)
	if err != nil {
		log.Printf("Stale lead query failed: %v", err)
		return
	}

	moved := 0
	for _, lead := range leads {
		if err := db.UpdateLeadStatus(client, lead.ID, types.LeadStatusDormant); err != nil {
			log.Printf("Failed to park lead %s: %v", lead.ID, err)
			continue
		}
		moved++
	}
	log.Printf("Stale lead sweep done: %d of %d leads moved to DORMANT", moved, len(leads))
}

// refreshCentreRates rolls the trailing meeting records up into each centre's
// attendance and collection rates.
func refreshCentreRates(client *firestore.Client) {
	centres, err := db.ListCentres(client)
	if err != nil {
		log.Printf("Centre listing failed: %v", err)
		return
	}

	updated := 0
	for _, centre := range centres {
		meetings, err := db.GetRecentMeetings(client, centre.ID, rateWindowMeetings)
		if err != nil {
			log.Printf("Meetings fetch failed for centre %s: %v", centre.ID, err)
			continue
		}
		if len(meetings) < minMeetingsForRates {
			continue
		}

		var attended, members int
		var collected, due float64
		for _, m := range meetings {
			attended += m.Attended
			members += m.Members
			collected += m.Collected
			due += m.Due
		}
		if members == 0 || due == 0 {
			continue
		}

		attendanceRate := float64(attended) / float64(members)
		collectionRate := collected / due
		if err := db.UpdateCentreRates(client, centre.ID, attendanceRate, collectionRate); err != nil {
			log.Printf("Rate update failed for centre %s: %v", centre.ID, err)
			continue
		}
		updated++
	}
	log.Printf("Centre rate refresh done: %d of %d centres updated", updated, len(centres))
}
