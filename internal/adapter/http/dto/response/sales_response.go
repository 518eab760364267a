package response

import (
	"fmt"

	"salesdash/internal/domain/entities"
	"salesdash/internal/usecase"
)

// KPICard is one headline figure on the overview, pre-formatted for display.
type KPICard struct {
	Title       string `json:"title"`
	Value       string `json:"value"`
	Change      string `json:"change"`
	ChangeLabel string `json:"changeLabel"`
}

// SalesOverviewResponse is the aggregate dashboard payload: raw stats for
// programmatic consumers plus formatted KPI cards and chart-ready buckets.
type SalesOverviewResponse struct {
	Stats          usecase.SalesStats     `json:"stats"`
	Cards          []KPICard              `json:"cards"`
	LeadsByStatus  []usecase.StatusBucket `json:"leadsByStatus"`
	QuotesByStatus []usecase.StatusBucket `json:"quotesByStatus"`
	LeadsTrend     []usecase.TrendPoint   `json:"leadsTrend"`
	FilteredLeads  int                    `json:"filteredLeads"`
	FilteredQuotes int                    `json:"filteredQuotes"`
}

func FromSalesOverview(o usecase.SalesOverview) SalesOverviewResponse {
	return SalesOverviewResponse{
		Stats:          o.Stats,
		Cards:          kpiCards(o.Stats),
		LeadsByStatus:  o.LeadsByStatus,
		QuotesByStatus: o.QuotesByStatus,
		LeadsTrend:     o.LeadsTrend,
		FilteredLeads:  o.FilteredLeads,
		FilteredQuotes: o.FilteredQuotes,
	}
}

func kpiCards(s usecase.SalesStats) []KPICard {
	return []KPICard{
		{
			Title:       "Total Leads",
			Value:       fmt.Sprintf("%d", s.TotalLeads),
			Change:      fmt.Sprintf("%d", s.ActiveLeads),
			ChangeLabel: "active",
		},
		{
			Title:       "Conversion Rate",
			Value:       fmt.Sprintf("%.1f%%", s.ConversionRate),
			Change:      fmt.Sprintf("%d", s.WonLeads),
			ChangeLabel: "won",
		},
		{
			Title:       "Pipeline Value",
			Value:       FormatCurrency(s.TotalPipelineValue),
			Change:      FormatCurrency(s.WeightedPipelineValue),
			ChangeLabel: "weighted",
		},
		{
			Title:       "Won Revenue",
			Value:       FormatCurrency(s.WonValue),
			Change:      fmt.Sprintf("%d", s.WonQuotes),
			ChangeLabel: "quotes won",
		},
	}
}

// LeadsPageResponse is one page of the leads table.
type LeadsPageResponse struct {
	Leads []entities.Lead `json:"leads"`
	Total int             `json:"total"`
	Page  int             `json:"page"`
}

// QuoteRow is a quote with its resolved client display name.
type QuoteRow struct {
	entities.Quote
	ClientName string `json:"clientName"`
}

// QuotesPageResponse is one page of the quotes table.
type QuotesPageResponse struct {
	Quotes []QuoteRow `json:"quotes"`
	Total  int        `json:"total"`
	Page   int        `json:"page"`
}

func FromQuotePage(items []usecase.QuoteListItem, total, page int) QuotesPageResponse {
	rows := make([]QuoteRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, QuoteRow{Quote: item.Quote, ClientName: item.ClientName})
	}
	return QuotesPageResponse{Quotes: rows, Total: total, Page: page}
}
