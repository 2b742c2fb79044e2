package types

// PrequalInput is the subset of intake data the weighted-rule evaluator reads.
type PrequalInput struct {
	Age            int     `json:"age"`
	MonthlyIncome  float64 `json:"monthlyIncome"`
	ExistingLoans  int     `json:"existingLoans"`
	HasBankAccount bool    `json:"hasBankAccount"`
	YearsInArea    int     `json:"yearsInArea"`
}

// PrequalResult is the banded outcome of prequalification. The band drives the
// branch workflow; Reasons mirror each rule that fired.
type PrequalResult struct {
	Score          float64  `json:"score"`
	Band           string   `json:"band"`
	Recommendation string   `json:"recommendation"`
	Reasons        []string `json:"reasons"`
}
