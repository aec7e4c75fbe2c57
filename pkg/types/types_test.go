package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCompanyMatches(t *testing.T) {
	company := Company{
		CompanyName: "Acme Robotics",
		Positions:   []string{"Backend Engineer", "Platform Intern"},
		UserNotes:   "great culture fit",
		Tags:        []string{"Fintech"},
	}

	require.True(t, company.Matches("acme"))
	require.True(t, company.Matches("ACME"))
	require.True(t, company.Matches("platform"))
	require.True(t, company.Matches("culture"))
	require.True(t, company.Matches("fintech"))
	require.False(t, company.Matches("widget"))
	// Empty and whitespace queries never match; list-all is the caller's job.
	require.False(t, company.Matches(""))
	require.False(t, company.Matches("   "))
}

func TestFollowUpStatusPending(t *testing.T) {
	require.True(t, FollowUpStatus{}.Pending())

	done := FollowUpStatus{
		ThankYouSent:         true,
		ApplicationSubmitted: true,
		LinkedInConnected:    true,
		InterviewScheduled:   true,
	}
	require.False(t, done.Pending())

	done.CustomFollowUps = []CustomFollowUp{{ID: "cf-1", Text: "send portfolio", Completed: false}}
	require.True(t, done.Pending())

	done.CustomFollowUps[0].Completed = true
	require.False(t, done.Pending())
}

func TestSystemClockReturnsUTC(t *testing.T) {
	now := SystemClock{}.Now()
	require.Equal(t, time.UTC, now.Location())
}

func TestDefaultChecklistTemplate(t *testing.T) {
	require.Len(t, DefaultChecklistTemplate, 10)
	seen := map[string]bool{}
	for _, text := range DefaultChecklistTemplate {
		require.NotEmpty(t, text)
		require.False(t, seen[text])
		seen[text] = true
	}
}
