package types

import "time"

// Lead statuses. A lead moves NEW -> CONTACTED -> QUALIFIED -> CONVERTED, and can
// drop out to REJECTED or DORMANT along the way.
const (
	LeadStatusNew       = "NEW"
	LeadStatusContacted = "CONTACTED"
	LeadStatusQualified = "QUALIFIED"
	LeadStatusConverted = "CONVERTED"
	LeadStatusRejected  = "REJECTED"
	LeadStatusDormant   = "DORMANT"
)

// allowed forward moves per status
var leadTransitions = map[string][]string{
	LeadStatusNew:       {LeadStatusContacted, LeadStatusRejected, LeadStatusDormant},
	LeadStatusContacted: {LeadStatusQualified, LeadStatusRejected, LeadStatusDormant},
	LeadStatusQualified: {LeadStatusConverted, LeadStatusRejected, LeadStatusDormant},
	LeadStatusDormant:   {LeadStatusContacted, LeadStatusRejected},
}

// CanTransition reports whether a lead may move from one status to another.
// Terminal statuses (CONVERTED, REJECTED) have no outgoing moves.
func CanTransition(from, to string) bool {
	for _, next := range leadTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsLeadStatus reports whether s is one of the known lead statuses.
func IsLeadStatus(s string) bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified,
		LeadStatusConverted, LeadStatusRejected, LeadStatusDormant:
		return true
	}
	return false
}

// Lead is a prospective member captured at intake.
type Lead struct {
	ID             string    `firestore:"-" json:"id"`
	Name           string    `firestore:"name" json:"name"`
	Phone          string    `firestore:"phone" json:"phone"`
	Pincode        string    `firestore:"pincode" json:"pincode"`
	Locality       string    `firestore:"locality,omitempty" json:"locality,omitempty"`
	CentreID       string    `firestore:"centreId,omitempty" json:"centreId,omitempty"`
	Age            int       `firestore:"age" json:"age"`
	MonthlyIncome  float64   `firestore:"monthlyIncome" json:"monthlyIncome"`
	ExistingLoans  int       `firestore:"existingLoans" json:"existingLoans"`
	HasBankAccount bool      `firestore:"hasBankAccount" json:"hasBankAccount"`
	YearsInArea    int       `firestore:"yearsInArea" json:"yearsInArea"`
	Source         string    `firestore:"source,omitempty" json:"source,omitempty"`
	Status         string    `firestore:"status" json:"status"`
	PrequalBand    string    `firestore:"prequalBand,omitempty" json:"prequalBand,omitempty"`
	PrequalScore   float64   `firestore:"prequalScore,omitempty" json:"prequalScore,omitempty"`
	Notes          string    `firestore:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt      time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// PincodeInfo is the resolved locality for an Indian postal code.
type PincodeInfo struct {
	Pincode  string  `json:"pincode"`
	Locality string  `json:"locality"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}
