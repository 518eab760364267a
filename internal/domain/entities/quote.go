package entities

import "time"

// QuoteStatus represents a quote's position in the 10-stage pipeline.
//
// Domain notes:
//   - The remote API already emits these exact values; the normalizer only
//     passes a status through on a case-sensitive exact match and defaults
//     everything else to QuoteStatusDiscoveryMeeting.
//   - Each stage carries a win probability used for the weighted pipeline
//     forecast. The probability lives in the catalog, not on the quote.

type QuoteStatus string

const (
	QuoteStatusDiscoveryMeeting     QuoteStatus = "discoveryMeeting"
	QuoteStatusTechnicalValidation  QuoteStatus = "technicalValidation"
	QuoteStatusEconomicValidation   QuoteStatus = "economicValidation"
	QuoteStatusProposalDevelopment  QuoteStatus = "proposalDevelopment"
	QuoteStatusProposalPresentation QuoteStatus = "proposalPresentation"
	QuoteStatusNegotiation          QuoteStatus = "negotiation"
	QuoteStatusFinalApproval        QuoteStatus = "finalApproval"
	QuoteStatusClosedWon            QuoteStatus = "closedWon"
	QuoteStatusClosedLost           QuoteStatus = "closedLost"
	QuoteStatusOrderCreated         QuoteStatus = "orderCreated"
)

// QuoteStatusInfo is a catalog entry for one quote status. Percentage is the
// stage's win probability in percent.
type QuoteStatusInfo struct {
	Value      QuoteStatus `json:"value"`
	Label      string      `json:"label"`
	Color      string      `json:"color"`
	Percentage float64     `json:"percentage"`
}

// QuoteStatuses is the canonical pipeline order with per-stage win
// probabilities. Chart buckets and status sorting both follow this order.
var QuoteStatuses = []QuoteStatusInfo{
	{Value: QuoteStatusDiscoveryMeeting, Label: "Discovery Meeting", Color: "#3b82f6", Percentage: 25},
	{Value: QuoteStatusTechnicalValidation, Label: "Technical Validation", Color: "#8b5cf6", Percentage: 40},
	{Value: QuoteStatusEconomicValidation, Label: "Economic Validation", Color: "#06b6d4", Percentage: 60},
	{Value: QuoteStatusProposalDevelopment, Label: "Proposal Development", Color: "#f59e0b", Percentage: 70},
	{Value: QuoteStatusProposalPresentation, Label: "Proposal Presentation", Color: "#ec4899", Percentage: 80},
	{Value: QuoteStatusNegotiation, Label: "Negotiation", Color: "#a855f7", Percentage: 90},
	{Value: QuoteStatusFinalApproval, Label: "Final Approval", Color: "#84cc16", Percentage: 95},
	{Value: QuoteStatusClosedWon, Label: "Closed Won", Color: "#10b981", Percentage: 100},
	{Value: QuoteStatusClosedLost, Label: "Closed Lost", Color: "#ef4444", Percentage: 0},
	{Value: QuoteStatusOrderCreated, Label: "Order Created", Color: "#14b8a6", Percentage: 100},
}

// IsValid reports whether s is one of the ten canonical statuses.
// The comparison is case-sensitive on purpose.
func (s QuoteStatus) IsValid() bool {
	for _, info := range QuoteStatuses {
		if info.Value == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further stage transition is expected.
func (s QuoteStatus) IsTerminal() bool {
	return s == QuoteStatusClosedWon || s == QuoteStatusClosedLost || s == QuoteStatusOrderCreated
}

// IsWon reports whether the quote closed successfully.
func (s QuoteStatus) IsWon() bool {
	return s == QuoteStatusClosedWon || s == QuoteStatusOrderCreated
}

// WinProbability returns the stage's win probability in percent, 0 for a
// status outside the catalog.
func (s QuoteStatus) WinProbability() float64 {
	for _, info := range QuoteStatuses {
		if info.Value == s {
			return info.Percentage
		}
	}
	return 0
}

// QuoteParty is a nested customer or employee reference on a quote. Every
// field is independently optional upstream; absent fields normalize to "".
type QuoteParty struct {
	ID           string `json:"id,omitempty"`
	BusinessName string `json:"businessName,omitempty"`
	Name         string `json:"name,omitempty"`
}

// Quote is a priced proposal normalized from the remote sales API.
//
// LeadID is a weak reference: the lead may be absent from the current fetch
// and display code falls back to "Unknown" rather than treating that as an
// error. Price is the committed figure, EstimatedValue the forecast; the two
// are independent.
type Quote struct {
	ID                 string      `json:"id"`
	LeadID             string      `json:"leadId"`
	QuoteNumber        string      `json:"quoteNumber"`
	QuoteCode          string      `json:"quoteCode"`
	Title              string      `json:"title"`
	Description        string      `json:"description,omitempty"`
	Price              float64     `json:"price"`
	Cost               float64     `json:"cost"`
	EstimatedValue     float64     `json:"estimatedValue"`
	ExpirationDate     time.Time   `json:"expirationDate"`
	Status             QuoteStatus `json:"status"`
	Customer           QuoteParty  `json:"customer"`
	AssignedEmployee   QuoteParty  `json:"assignedEmployee"`
	PercentageOfWeight float64     `json:"percentageOfWeight"`
	InStandBy          bool        `json:"inStandBy"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

// PipelineValue is the figure a quote contributes to the open pipeline:
// the forecast when present, the committed price otherwise.
func (q Quote) PipelineValue() float64 {
	if q.EstimatedValue != 0 {
		return q.EstimatedValue
	}
	return q.Price
}

// WonValue is the figure a won quote contributes to closed revenue:
// the committed price when present, the forecast otherwise.
func (q Quote) WonValue() float64 {
	if q.Price != 0 {
		return q.Price
	}
	return q.EstimatedValue
}
