package salesapi

import (
	"testing"
	"time"

	"salesdash/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuoteStatus_ExactMatchOnly(t *testing.T) {
	for _, info := range entities.QuoteStatuses {
		assert.Equal(t, info.Value, NormalizeQuoteStatus(string(info.Value)))
	}

	// Near-matches, different casing and empty input all default; quote
	// statuses are not synonym-folded the way lead statuses are.
	for _, raw := range []string{"", "ClosedWon", "closedwon", "closed-won", "negotiation ", "orderCreated2"} {
		assert.Equal(t, entities.QuoteStatusDiscoveryMeeting, NormalizeQuoteStatus(raw), "raw=%q", raw)
	}
}

func TestNormalizeQuote_EmptyInput(t *testing.T) {
	before := time.Now().UTC()
	quote := NormalizeQuote(map[string]any{}, 0)
	after := time.Now().UTC()

	assert.Equal(t, "", quote.ID)
	assert.Equal(t, "", quote.LeadID)
	assert.Equal(t, entities.QuoteStatusDiscoveryMeeting, quote.Status)
	assert.Zero(t, quote.Price)
	assert.Zero(t, quote.Cost)
	assert.Zero(t, quote.EstimatedValue)
	assert.Zero(t, quote.PercentageOfWeight)
	assert.False(t, quote.InStandBy)

	// "no expiration" is indistinguishable from "expires right now".
	assert.False(t, quote.ExpirationDate.Before(before))
	assert.False(t, quote.ExpirationDate.After(after))
}

func TestNormalizeQuote_CustomerFallbackOrders(t *testing.T) {
	quote := NormalizeQuote(map[string]any{
		"customer": map[string]any{"businessName": "Acme", "name": "Jane"},
	}, 0)
	assert.Equal(t, "Acme", quote.Customer.BusinessName)
	assert.Equal(t, "Jane", quote.Customer.Name)

	// With only name present both derived fields resolve to it.
	quote = NormalizeQuote(map[string]any{
		"customer": map[string]any{"name": "Jane"},
	}, 0)
	assert.Equal(t, "Jane", quote.Customer.BusinessName)
	assert.Equal(t, "Jane", quote.Customer.Name)

	// And only businessName likewise.
	quote = NormalizeQuote(map[string]any{
		"customer": map[string]any{"businessName": "Acme"},
	}, 0)
	assert.Equal(t, "Acme", quote.Customer.BusinessName)
	assert.Equal(t, "Acme", quote.Customer.Name)
}

func TestNormalizeQuote_CustomerAsBareString(t *testing.T) {
	quote := NormalizeQuote(map[string]any{"customer": "Oldco SA"}, 0)
	assert.Equal(t, "Oldco SA", quote.Customer.BusinessName)
	assert.Equal(t, "Oldco SA", quote.Customer.Name)
	assert.Equal(t, "", quote.Customer.ID)
}

func TestNormalizeQuote_CustomerID(t *testing.T) {
	quote := NormalizeQuote(map[string]any{
		"customer": map[string]any{"_id": "c-1", "id": "c-2"},
	}, 0)
	assert.Equal(t, "c-1", quote.Customer.ID)
}

func TestNormalizeQuote_AssignedEmployee(t *testing.T) {
	quote := NormalizeQuote(map[string]any{
		"account": map[string]any{"_id": "e-9", "fullName": "Pat Smith"},
	}, 0)
	assert.Equal(t, "e-9", quote.AssignedEmployee.ID)
	assert.Equal(t, "Pat Smith", quote.AssignedEmployee.Name)
}

func TestNormalizeQuote_LeadIDFromNestedLead(t *testing.T) {
	quote := NormalizeQuote(map[string]any{
		"lead": map[string]any{"_id": "lead-3"},
	}, 0)
	assert.Equal(t, "lead-3", quote.LeadID)

	// A direct leadId wins over the nested object.
	quote = NormalizeQuote(map[string]any{
		"leadId": "lead-1",
		"lead":   map[string]any{"_id": "lead-3"},
	}, 0)
	assert.Equal(t, "lead-1", quote.LeadID)
}

func TestNormalizeQuote_Fields(t *testing.T) {
	quote := NormalizeQuote(map[string]any{
		"_id":                "q-1",
		"id":                 "ignored",
		"quoteNumber":        "Q-2024-17",
		"quoteCode":          "ACME-17",
		"title":              "Line expansion",
		"notes":              "from notes field",
		"price":              float64(45000),
		"cost":               float64(12000),
		"estimatedValue":     float64(48000),
		"percentageOfWeight": float64(55),
		"inStandBy":          true,
		"status":             "negotiation",
		"expirationDate":     "2024-12-31T00:00:00Z",
		"createdAt":          "2024-02-01T08:00:00Z",
		"updatedAt":          "2024-02-10T08:00:00Z",
	}, 0)

	assert.Equal(t, "q-1", quote.ID)
	assert.Equal(t, "Q-2024-17", quote.QuoteNumber)
	assert.Equal(t, "ACME-17", quote.QuoteCode)
	assert.Equal(t, "Line expansion", quote.Title)
	assert.Equal(t, "from notes field", quote.Description)
	assert.Equal(t, float64(45000), quote.Price)
	assert.Equal(t, float64(12000), quote.Cost)
	assert.Equal(t, float64(48000), quote.EstimatedValue)
	assert.Equal(t, float64(55), quote.PercentageOfWeight)
	assert.True(t, quote.InStandBy)
	assert.Equal(t, entities.QuoteStatusNegotiation, quote.Status)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), quote.ExpirationDate)
}

func TestNormalizeQuote_NonNumericAmountsDefaultToZero(t *testing.T) {
	quote := NormalizeQuote(map[string]any{
		"price":          "not-a-number",
		"cost":           nil,
		"estimatedValue": map[string]any{"amount": float64(5)},
	}, 0)
	assert.Zero(t, quote.Price)
	assert.Zero(t, quote.Cost)
	assert.Zero(t, quote.EstimatedValue)
}

func TestStringOf(t *testing.T) {
	assert.Equal(t, "plain", stringOf("plain"))
	assert.Equal(t, "12", stringOf(float64(12)))
	assert.Equal(t, "12.5", stringOf(float64(12.5)))
	assert.Equal(t, "Named", stringOf(map[string]any{"name": "Named", "label": "ignored"}))
	assert.Equal(t, "Biz", stringOf(map[string]any{"businessName": "Biz"}))
	assert.Equal(t, "x-1", stringOf(map[string]any{"_id": "x-1"}))
	assert.Equal(t, "", stringOf(nil))
	assert.Equal(t, "", stringOf(true))
	assert.Equal(t, "", stringOf([]any{"a"}))
}
