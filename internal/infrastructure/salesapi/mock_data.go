package salesapi

import (
	"time"

	"salesdash/internal/domain/entities"
)

// Canned collections served in mock mode so the dashboard renders without
// sales API credentials.

func mockLeads() []entities.Lead {
	now := time.Now().UTC()
	return []entities.Lead{
		{
			ID: "lead-1", CompanyName: "Acme Industrial", ContactName: "Jane Doe",
			Email: "jane@acme.example", Source: "Referral",
			Status: entities.LeadStatusQualified, EstimatedValue: 48000,
			CreatedAt: now.AddDate(0, 0, -12), UpdatedAt: now.AddDate(0, 0, -2),
		},
		{
			ID: "lead-2", CompanyName: "Globex Retail", ContactName: "Sam Ortiz",
			Email: "sam@globex.example", Source: "Website",
			Status: entities.LeadStatusWon, EstimatedValue: 125000,
			CreatedAt: now.AddDate(0, 0, -30), UpdatedAt: now.AddDate(0, 0, -1),
		},
		{
			ID: "lead-3", CompanyName: "Initech Services", ContactName: "Priya Nair",
			Email: "priya@initech.example", Source: "Unknown",
			Status: entities.LeadStatusNew, EstimatedValue: 0,
			CreatedAt: now.AddDate(0, 0, -3), UpdatedAt: now.AddDate(0, 0, -3),
		},
	}
}

func mockQuotes() []entities.Quote {
	now := time.Now().UTC()
	return []entities.Quote{
		{
			ID: "quote-1", LeadID: "lead-1", QuoteNumber: "Q-2024-001", Title: "Plant retrofit",
			Price: 45000, EstimatedValue: 48000, Status: entities.QuoteStatusNegotiation,
			Customer:       entities.QuoteParty{ID: "cust-1", BusinessName: "Acme Industrial", Name: "Jane Doe"},
			ExpirationDate: now.AddDate(0, 1, 0), CreatedAt: now.AddDate(0, 0, -10), UpdatedAt: now.AddDate(0, 0, -1),
		},
		{
			ID: "quote-2", LeadID: "lead-2", QuoteNumber: "Q-2024-002", Title: "Storefront rollout",
			Price: 125000, EstimatedValue: 120000, Status: entities.QuoteStatusClosedWon,
			Customer:       entities.QuoteParty{ID: "cust-2", BusinessName: "Globex Retail", Name: "Sam Ortiz"},
			ExpirationDate: now.AddDate(0, 0, -5), CreatedAt: now.AddDate(0, 0, -28), UpdatedAt: now.AddDate(0, 0, -2),
		},
		{
			ID: "quote-3", QuoteNumber: "Q-2024-003", Title: "Discovery engagement",
			EstimatedValue: 20000, Status: entities.QuoteStatusDiscoveryMeeting,
			ExpirationDate: now.AddDate(0, 2, 0), CreatedAt: now.AddDate(0, 0, -2), UpdatedAt: now.AddDate(0, 0, -2),
		},
	}
}
