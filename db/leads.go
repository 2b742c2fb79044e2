package db

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/sriramindia007/finflux-leadmanagement-sub000/types"
)

// CreateLead writes a new lead document under its pre-assigned ID.
func CreateLead(client *firestore.Client, lead types.Lead) error {
	ctx := context.Background()
	_, err := client.Collection(leadsCollection).Doc(lead.ID).Set(ctx, lead)
	if err != nil {
		return fmt.Errorf("failed to create lead %s: %w", lead.ID, err)
	}
	return nil
}

// GetLead fetches a single lead by document ID.
func GetLead(client *firestore.Client, leadID string) (types.Lead, error) {
	ctx := context.Background()
	var lead types.Lead

	doc, err := client.Collection(leadsCollection).Doc(leadID).Get(ctx)
	if err != nil {
		return lead, err
	}
	if err := doc.DataTo(&lead); err != nil {
		return lead, fmt.Errorf("error converting document to Lead: %w", err)
	}
	lead.ID = doc.Ref.ID
	return lead, nil
}

// ListLeads returns all leads, optionally filtered by status.
func ListLeads(client *firestore.Client, status string) ([]types.Lead, error) {
	ctx := context.Background()

	query := client.Collection(leadsCollection).Query
	if status != "" {
		query = query.Where("status", "==", status)
	}

	var leads []types.Lead
	iter := query.Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating leads: %w", err)
		}

		var lead types.Lead
		if err := doc.DataTo(&lead); err != nil {
			return nil, fmt.Errorf("error converting document %s to Lead: %w", doc.Ref.ID, err)
		}
		lead.ID = doc.Ref.ID
		leads = append(leads, lead)
	}
	return leads, nil
}

// ListStaleNewLeads returns NEW leads last touched before the cutoff. Used by
// the nightly dormancy sweep.
func ListStaleNewLeads(client *firestore.Client, cutoff time.Time) ([]types.Lead, error) {
	ctx := context.Background()

	docs, err := client.Collection(leadsCollection).
		Where("status", "==", types.LeadStatusNew).
		Where("updatedAt", "<", cutoff).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}

	var leads []types.Lead
	for _, doc := range docs {
		var lead types.Lead
		if err := doc.DataTo(&lead); err != nil {
			return nil, err
		}
		lead.ID = doc.Ref.ID
		leads = append(leads, lead)
	}
	return leads, nil
}

// UpdateLead merges the given fields into a lead document.
func UpdateLead(client *firestore.Client, leadID string, fields map[string]interface{}) error {
	ctx := context.Background()
	fields["updatedAt"] = time.Now().UTC()

	_, err := client.Collection(leadsCollection).Doc(leadID).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update lead %s: %w", leadID, err)
	}
	return nil
}

// UpdateLeadStatus moves a lead to a new status.
func UpdateLeadStatus(client *firestore.Client, leadID, status string) error {
	ctx := context.Background()
	updates := []firestore.Update{
		{Path: "status", Value: status},
		{Path: "updatedAt", Value: time.Now().UTC()},
	}

	_, err := client.Collection(leadsCollection).Doc(leadID).Update(ctx, updates)
	if err != nil {
		return fmt.Errorf("failed to update status for lead %s: %w", leadID, err)
	}
	return nil
}

// DeleteLead removes a lead document.
func DeleteLead(client *firestore.Client, leadID string) error {
	ctx := context.Background()
	_, err := client.Collection(leadsCollection).Doc(leadID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete lead %s: %w", leadID, err)
	}
	return nil
}
