package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStaffUserHashesPassword(t *testing.T) {
	u, err := NewStaffUser("Ada", "ada@example.org", "correct-horse-battery")
	require.NoError(t, err)

	assert.NotEqual(t, "correct-horse-battery", u.Password)
	assert.True(t, u.CheckPassword("correct-horse-battery"))
	assert.False(t, u.CheckPassword("wrong"))
	assert.True(t, u.IsActive())
}

func TestNewStaffUserRejectsInvalidInput(t *testing.T) {
	_, err := NewStaffUser("Ada", "not-an-email", "correct-horse-battery")
	assert.Error(t, err)

	_, err = NewStaffUser("Ada", "ada@example.org", "short")
	assert.Error(t, err)
}

func TestIssueAPIKey(t *testing.T) {
	u, err := NewStaffUser("Ada", "ada@example.org", "correct-horse-battery")
	require.NoError(t, err)

	raw, err := u.IssueAPIKey()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(raw, "ps_"))
	assert.Equal(t, HashAPIKey(raw), u.APIKeyHash)
	assert.Equal(t, raw[:16], u.APIKeyPrefix)
	assert.NotNil(t, u.APIKeyCreatedAt)
	assert.Nil(t, u.APIKeyLastUsedAt)

	// Two issued keys never collide.
	second, err := u.IssueAPIKey()
	require.NoError(t, err)
	assert.NotEqual(t, raw, second)
}

func TestHashAPIKeyIgnoresSurroundingSpace(t *testing.T) {
	assert.Equal(t, HashAPIKey("ps_abc"), HashAPIKey("  ps_abc\n"))
}

func TestApplicationEnums(t *testing.T) {
	assert.True(t, ValidApplicationStatus(ApplicationStatusPending))
	assert.True(t, ValidApplicationStatus("Rejected"))
	assert.False(t, ValidApplicationStatus("pending"))
	assert.False(t, ValidApplicationStatus(""))

	assert.True(t, ValidVolunteerArea(AreaEducationTraining))
	assert.False(t, ValidVolunteerArea("Cooking"))

	assert.Equal(t, []string{"Pending", "Reviewed", "Contacted", "Accepted", "Rejected"}, ApplicationStatuses())
}

func TestInquiryEnums(t *testing.T) {
	assert.True(t, ValidInquiryStatus(InquiryStatusOnHold))
	assert.False(t, ValidInquiryStatus("Archived"))

	assert.True(t, ValidPartnershipType(PartnershipFundingSponsorship))
	assert.False(t, ValidPartnershipType("Sponsorship"))

	assert.Equal(t, []string{"New", "Reviewed", "Contacted", "On Hold", "Completed"}, InquiryStatuses())
}
