package salesapi

import (
	"testing"
	"time"

	"salesdash/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLead_EmptyInput(t *testing.T) {
	before := time.Now().UTC()
	lead := NormalizeLead(map[string]any{}, 0)
	after := time.Now().UTC()

	assert.Equal(t, "", lead.ID)
	assert.Equal(t, "", lead.CompanyName)
	assert.Equal(t, "", lead.ContactName)
	assert.Equal(t, "", lead.Email)
	assert.Equal(t, "", lead.Phone)
	assert.Equal(t, "", lead.Source)
	assert.Equal(t, "", lead.Notes)
	assert.Equal(t, entities.LeadStatusNew, lead.Status)
	assert.Zero(t, lead.EstimatedValue)

	// Unparseable timestamps default to the current instant.
	assert.False(t, lead.CreatedAt.Before(before))
	assert.False(t, lead.CreatedAt.After(after))
	assert.False(t, lead.UpdatedAt.Before(before))
	assert.False(t, lead.UpdatedAt.After(after))
}

func TestNormalizeLead_AliasResolution(t *testing.T) {
	lead := NormalizeLead(map[string]any{
		"_id":             "L-7",
		"company_name":    "Acme",
		"fullName":        "Jane Doe",
		"emailAddress":    "jane@acme.example",
		"telephone":       "+34 600 000 000",
		"leadSource":      "Referral",
		"memo":            "warm intro",
		"estimated_value": 1250.5,
		"created_at":      "2024-03-01T10:00:00Z",
		"dateUpdated":     "2024-03-05T09:30:00Z",
	}, 0)

	assert.Equal(t, "L-7", lead.ID)
	assert.Equal(t, "Acme", lead.CompanyName)
	assert.Equal(t, "Jane Doe", lead.ContactName)
	assert.Equal(t, "jane@acme.example", lead.Email)
	assert.Equal(t, "+34 600 000 000", lead.Phone)
	assert.Equal(t, "Referral", lead.Source)
	assert.Equal(t, "warm intro", lead.Notes)
	assert.Equal(t, 1250.5, lead.EstimatedValue)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), lead.CreatedAt)
	assert.Equal(t, time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC), lead.UpdatedAt)
}

func TestNormalizeLead_AliasPriorityOrder(t *testing.T) {
	lead := NormalizeLead(map[string]any{
		"companyName":  "Primary Corp",
		"company_name": "Secondary Corp",
		"company":      "Tertiary Corp",
	}, 1)
	assert.Equal(t, "Primary Corp", lead.CompanyName)
}

func TestNormalizeLead_NumericID(t *testing.T) {
	lead := NormalizeLead(map[string]any{"id": float64(42)}, 0)
	assert.Equal(t, "42", lead.ID)
}

func TestNormalizeLead_NumericStringValue(t *testing.T) {
	lead := NormalizeLead(map[string]any{"value": "980"}, 0)
	assert.Equal(t, float64(980), lead.EstimatedValue)
}

func TestNormalizeLeadStatus_SynonymFolding(t *testing.T) {
	cases := map[string]entities.LeadStatus{
		"contact":     entities.LeadStatusContacted,
		"qualify":     entities.LeadStatusQualified,
		"negotiating": entities.LeadStatusNegotiation,
		"closed-won":  entities.LeadStatusWon,
		"closed_lost": entities.LeadStatusLost,
		"  WON  ":     entities.LeadStatusWon,
		"Proposal":    entities.LeadStatusProposal,
	}
	for raw, want := range cases {
		assert.Equal(t, want, NormalizeLeadStatus(raw), "raw=%q", raw)
	}
}

func TestNormalizeLeadStatus_UnknownDefaultsToNew(t *testing.T) {
	for _, raw := range []string{"", "archived", "stage 3", "wonnn"} {
		require.Equal(t, entities.LeadStatusNew, NormalizeLeadStatus(raw), "raw=%q", raw)
	}
}

func TestNormalizeLead_StateAliasForStatus(t *testing.T) {
	lead := NormalizeLead(map[string]any{"state": "closed_won"}, 0)
	assert.Equal(t, entities.LeadStatusWon, lead.Status)
}
