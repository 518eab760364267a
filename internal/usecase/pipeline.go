package usecase

import (
	"time"

	"salesdash/internal/domain/entities"
)

// Pure aggregation over already-fetched collections. Nothing in this file
// touches the network or the store; the HTTP layer feeds it filtered slices
// and renders the result.

// SalesStats is the KPI summary computed from filtered leads and quotes.
type SalesStats struct {
	TotalLeads     int     `json:"totalLeads"`
	WonLeads       int     `json:"wonLeads"`
	LostLeads      int     `json:"lostLeads"`
	ActiveLeads    int     `json:"activeLeads"`
	ConversionRate float64 `json:"conversionRate"`

	TotalQuotes  int     `json:"totalQuotes"`
	WonQuotes    int     `json:"wonQuotes"`
	ActiveQuotes int     `json:"activeQuotes"`
	QuoteWinRate float64 `json:"quoteWinRate"`

	TotalPipelineValue    float64 `json:"totalPipelineValue"`
	WeightedPipelineValue float64 `json:"weightedPipelineValue"`
	WonValue              float64 `json:"wonValue"`
	TotalQuoteValue       float64 `json:"totalQuoteValue"`
	TotalEstimatedValue   float64 `json:"totalEstimatedValue"`
}

// Summarize computes the KPI record. Rates are defined as 0 over empty
// input, never NaN. A quote counts as won only when its status closed
// successfully; it counts as active exactly when its status is non-terminal.
// The weighted pipeline multiplies each active quote's value by its stage's
// catalog probability; the per-quote weight override is not consulted.
func Summarize(leads []entities.Lead, quotes []entities.Quote) SalesStats {
	stats := SalesStats{TotalLeads: len(leads), TotalQuotes: len(quotes)}

	for _, lead := range leads {
		switch lead.Status {
		case entities.LeadStatusWon:
			stats.WonLeads++
		case entities.LeadStatusLost:
			stats.LostLeads++
		}
	}
	stats.ActiveLeads = stats.TotalLeads - stats.WonLeads - stats.LostLeads
	if stats.TotalLeads > 0 {
		stats.ConversionRate = float64(stats.WonLeads) / float64(stats.TotalLeads) * 100
	}

	for _, quote := range quotes {
		stats.TotalQuoteValue += quote.Price
		stats.TotalEstimatedValue += quote.EstimatedValue

		switch {
		case quote.Status.IsWon():
			stats.WonQuotes++
			stats.WonValue += quote.WonValue()
		case !quote.Status.IsTerminal():
			stats.ActiveQuotes++
			value := quote.PipelineValue()
			stats.TotalPipelineValue += value
			stats.WeightedPipelineValue += value * quote.Status.WinProbability() / 100
		}
	}
	if stats.TotalQuotes > 0 {
		stats.QuoteWinRate = float64(stats.WonQuotes) / float64(stats.TotalQuotes) * 100
	}

	return stats
}

// StatusBucket is one chart slice: a status with its record count.
type StatusBucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// LeadStatusBuckets counts leads per canonical status, one bucket per status
// in funnel order, zero counts included so chart ordering stays stable.
func LeadStatusBuckets(leads []entities.Lead) []StatusBucket {
	buckets := make([]StatusBucket, 0, len(entities.LeadStatuses))
	for _, info := range entities.LeadStatuses {
		count := 0
		for _, lead := range leads {
			if lead.Status == info.Value {
				count++
			}
		}
		buckets = append(buckets, StatusBucket{Name: info.Label, Value: count, Color: info.Color})
	}
	return buckets
}

// QuoteStatusBuckets counts quotes per canonical status in pipeline order,
// zero counts included.
func QuoteStatusBuckets(quotes []entities.Quote) []StatusBucket {
	buckets := make([]StatusBucket, 0, len(entities.QuoteStatuses))
	for _, info := range entities.QuoteStatuses {
		count := 0
		for _, quote := range quotes {
			if quote.Status == info.Value {
				count++
			}
		}
		buckets = append(buckets, StatusBucket{Name: info.Label, Value: count, Color: info.Color})
	}
	return buckets
}

// TrendPoint is one day of lead intake for the trend chart.
type TrendPoint struct {
	Date  string  `json:"date"`
	Leads int     `json:"leads"`
	Value float64 `json:"value"`
}

// LeadsTrend buckets leads by creation day over the trailing days window,
// oldest day first.
func LeadsTrend(leads []entities.Lead, days int, now time.Time) []TrendPoint {
	points := make([]TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		point := TrendPoint{Date: day.Format("Jan 2")}
		for _, lead := range leads {
			if sameDay(lead.CreatedAt, day) {
				point.Leads++
				point.Value += lead.EstimatedValue
			}
		}
		points = append(points, point)
	}
	return points
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SalesFilter narrows the working set before aggregation. A zero From/To
// leaves that bound open; an empty status set disables status filtering.
type SalesFilter struct {
	From          time.Time
	To            time.Time
	LeadStatuses  []entities.LeadStatus
	QuoteStatuses []entities.QuoteStatus
}

// FilterLeads keeps leads created inside the date range whose status is in
// the selected set.
func (f SalesFilter) FilterLeads(leads []entities.Lead) []entities.Lead {
	kept := make([]entities.Lead, 0, len(leads))
	for _, lead := range leads {
		if !f.inRange(lead.CreatedAt) {
			continue
		}
		if len(f.LeadStatuses) > 0 && !containsLeadStatus(f.LeadStatuses, lead.Status) {
			continue
		}
		kept = append(kept, lead)
	}
	return kept
}

// FilterQuotes keeps quotes created inside the date range whose status is in
// the selected set.
func (f SalesFilter) FilterQuotes(quotes []entities.Quote) []entities.Quote {
	kept := make([]entities.Quote, 0, len(quotes))
	for _, quote := range quotes {
		if !f.inRange(quote.CreatedAt) {
			continue
		}
		if len(f.QuoteStatuses) > 0 && !containsQuoteStatus(f.QuoteStatuses, quote.Status) {
			continue
		}
		kept = append(kept, quote)
	}
	return kept
}

func (f SalesFilter) inRange(t time.Time) bool {
	if !f.From.IsZero() && t.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && t.After(f.To) {
		return false
	}
	return true
}

func containsLeadStatus(set []entities.LeadStatus, s entities.LeadStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func containsQuoteStatus(set []entities.QuoteStatus, s entities.QuoteStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
