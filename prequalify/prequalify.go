package prequalify

import (
	"fmt"

	"github.com/sriramindia007/finflux-leadmanagement-sub000/types"
)

// Bands returned by Evaluate. The band drives the branch workflow, not an
// automated decision.
const (
	BandGreen = "GREEN"
	BandAmber = "AMBER"
	BandRed   = "RED"
)

// --- Rule weights and thresholds ---
// These mirror the ops team's manual intake checklist; the total tops out at 100.
const (
	minAge    = 21
	maxAge    = 58
	agePoints = 25.0

	goodIncomeThreshold = 8000.0
	okIncomeThreshold   = 5000.0
	goodIncomePoints    = 30.0
	okIncomePoints      = 20.0
	lowIncomePoints     = 5.0

	noLoansPoints  = 25.0
	oneLoanPoints  = 15.0
	manyLoanPoints = 5.0

	bankAccountPoints = 10.0

	settledYears    = 2
	settledPoints   = 10.0
	newInAreaPoints = 5.0

	greenThreshold = 75.0
	amberThreshold = 50.0
)

// Evaluate runs the weighted-rule checklist over intake data and returns a
// banded score with one reason per rule. Pure; all context comes in as input.
func Evaluate(in types.PrequalInput) types.PrequalResult {
	score := 0.0
	var reasons []string

	if in.Age >= minAge && in.Age <= maxAge {
		score += agePoints
		reasons = append(reasons, fmt.Sprintf("Age %d is within the lendable band (%d-%d).", in.Age, minAge, maxAge))
	} else {
		reasons = append(reasons, fmt.Sprintf("Age %d is outside the lendable band (%d-%d).", in.Age, minAge, maxAge))
	}

	switch {
	case in.MonthlyIncome >= goodIncomeThreshold:
		score += goodIncomePoints
		reasons = append(reasons, fmt.Sprintf("Monthly income %.0f clears the preferred threshold.", in.MonthlyIncome))
	case in.MonthlyIncome >= okIncomeThreshold:
		score += okIncomePoints
		reasons = append(reasons, fmt.Sprintf("Monthly income %.0f is acceptable.", in.MonthlyIncome))
	default:
		score += lowIncomePoints
		reasons = append(reasons, fmt.Sprintf("Monthly income %.0f is below the acceptable threshold.", in.MonthlyIncome))
	}

	switch {
	case in.ExistingLoans == 0:
		score += noLoansPoints
		reasons = append(reasons, "No existing loans.")
	case in.ExistingLoans == 1:
		score += oneLoanPoints
		reasons = append(reasons, "One existing loan; within tolerance.")
	default:
		score += manyLoanPoints
		reasons = append(reasons, fmt.Sprintf("%d existing loans; high leverage.", in.ExistingLoans))
	}

	if in.HasBankAccount {
		score += bankAccountPoints
		reasons = append(reasons, "Has a bank account.")
	} else {
		reasons = append(reasons, "No bank account; disbursal needs account opening first.")
	}

	if in.YearsInArea >= settledYears {
		score += settledPoints
		reasons = append(reasons, fmt.Sprintf("Settled in the area for %d years.", in.YearsInArea))
	} else {
		score += newInAreaPoints
		reasons = append(reasons, "Recently moved to the area; verify residence.")
	}

	band, recommendation := bandFor(score)
	return types.PrequalResult{
		Score:          score,
		Band:           band,
		Recommendation: recommendation,
		Reasons:        reasons,
	}
}

func bandFor(score float64) (string, string) {
	switch {
	case score >= greenThreshold:
		return BandGreen, "Proceed to field verification."
	case score >= amberThreshold:
		return BandAmber, "Collect additional documents before proceeding."
	default:
		return BandRed, "Do not proceed without branch manager approval."
	}
}
