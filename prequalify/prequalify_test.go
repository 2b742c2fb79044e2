package prequalify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sriramindia007/finflux-leadmanagement-sub000/types"
)

func TestEvaluate_Bands(t *testing.T) {
	cases := []struct {
		name      string
		input     types.PrequalInput
		wantBand  string
		wantScore float64
	}{
		{
			name: "strong applicant is green",
			input: types.PrequalInput{
				Age: 32, MonthlyIncome: 9000, ExistingLoans: 0,
				HasBankAccount: true, YearsInArea: 5,
			},
			wantBand:  BandGreen,
			wantScore: 100,
		},
		{
			name: "middling applicant is amber",
			input: types.PrequalInput{
				Age: 32, MonthlyIncome: 6000, ExistingLoans: 2,
				HasBankAccount: false, YearsInArea: 3,
			},
			wantBand:  BandAmber,
			wantScore: 25 + 20 + 5 + 0 + 10,
		},
		{
			name: "weak applicant is red",
			input: types.PrequalInput{
				Age: 19, MonthlyIncome: 3000, ExistingLoans: 3,
				HasBankAccount: false, YearsInArea: 1,
			},
			wantBand:  BandRed,
			wantScore: 0 + 5 + 5 + 0 + 5,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Evaluate(tc.input)
			assert.Equal(t, tc.wantBand, res.Band)
			assert.Equal(t, tc.wantScore, res.Score)
			assert.Len(t, res.Reasons, 5)
			assert.NotEmpty(t, res.Recommendation)
		})
	}
}

func TestEvaluate_AgeBoundaries(t *testing.T) {
	base := types.PrequalInput{MonthlyIncome: 9000, ExistingLoans: 0, HasBankAccount: true, YearsInArea: 5}

	under := base
	under.Age = 20
	atMin := base
	atMin.Age = 21
	atMax := base
	atMax.Age = 58
	over := base
	over.Age = 59

	assert.Equal(t, Evaluate(atMin).Score, Evaluate(atMax).Score)
	assert.Equal(t, Evaluate(under).Score, Evaluate(over).Score)
	assert.Greater(t, Evaluate(atMin).Score, Evaluate(under).Score)
}
