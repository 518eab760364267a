package entities

import "time"

// LeadStatus represents a lead's position in the 7-stage sales funnel.
//
// Domain notes:
//   - Leads are read-only in this service: they are produced by normalizing
//     the remote sales API payload and superseded by the next fetch.
//   - Unrecognized upstream statuses are folded to LeadStatusNew by the
//     normalizer, so a Lead always carries one of the seven values below.

type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "new"
	LeadStatusContacted   LeadStatus = "contacted"
	LeadStatusQualified   LeadStatus = "qualified"
	LeadStatusProposal    LeadStatus = "proposal"
	LeadStatusNegotiation LeadStatus = "negotiation"
	LeadStatusWon         LeadStatus = "won"
	LeadStatusLost        LeadStatus = "lost"
)

// LeadStatusInfo is a catalog entry for one lead status. Label and Color are
// presentation metadata consumed by the chart endpoints.
type LeadStatusInfo struct {
	Value LeadStatus `json:"value"`
	Label string     `json:"label"`
	Color string     `json:"color"`
}

// LeadStatuses is the canonical funnel order. Chart buckets are emitted in
// this order, one entry per status, including zero counts.
var LeadStatuses = []LeadStatusInfo{
	{Value: LeadStatusNew, Label: "New", Color: "#3b82f6"},
	{Value: LeadStatusContacted, Label: "Contacted", Color: "#8b5cf6"},
	{Value: LeadStatusQualified, Label: "Qualified", Color: "#06b6d4"},
	{Value: LeadStatusProposal, Label: "Proposal", Color: "#f59e0b"},
	{Value: LeadStatusNegotiation, Label: "Negotiation", Color: "#ec4899"},
	{Value: LeadStatusWon, Label: "Won", Color: "#10b981"},
	{Value: LeadStatusLost, Label: "Lost", Color: "#ef4444"},
}

// Lead is a prospective customer record normalized from the remote sales API.
type Lead struct {
	ID             string     `json:"id"`
	CompanyName    string     `json:"companyName"`
	ContactName    string     `json:"contactName"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone,omitempty"`
	Source         string     `json:"source"`
	Status         LeadStatus `json:"status"`
	EstimatedValue float64    `json:"estimatedValue"`
	Notes          string     `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
