package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{LeadStatusNew, LeadStatusContacted, true},
		{LeadStatusNew, LeadStatusRejected, true},
		{LeadStatusNew, LeadStatusConverted, false},
		{LeadStatusContacted, LeadStatusQualified, true},
		{LeadStatusQualified, LeadStatusConverted, true},
		{LeadStatusDormant, LeadStatusContacted, true},
		{LeadStatusConverted, LeadStatusContacted, false},
		{LeadStatusRejected, LeadStatusNew, false},
		{LeadStatusNew, LeadStatusNew, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTerminalStatusesHaveNoExits(t *testing.T) {
	all := []string{
		LeadStatusNew, LeadStatusContacted, LeadStatusQualified,
		LeadStatusConverted, LeadStatusRejected, LeadStatusDormant,
	}
	for _, to := range all {
		assert.False(t, CanTransition(LeadStatusConverted, to))
		assert.False(t, CanTransition(LeadStatusRejected, to))
	}
}

func TestIsLeadStatus(t *testing.T) {
	assert.True(t, IsLeadStatus(LeadStatusNew))
	assert.True(t, IsLeadStatus(LeadStatusDormant))
	assert.False(t, IsLeadStatus("OPEN"))
	assert.False(t, IsLeadStatus(""))
}
