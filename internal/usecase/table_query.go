package usecase

import (
	"sort"
	"strings"

	"salesdash/internal/domain/entities"
)

// In-memory table queries backing the leads and quotes list endpoints:
// substring search, single-field sort and page slicing over the filtered
// working set.

const defaultPageSize = 10

// TableQuery carries the common search/sort/page parameters.
type TableQuery struct {
	Search    string
	SortField string
	SortDesc  bool
	Page      int
	PageSize  int
}

func (q TableQuery) normalized() TableQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = defaultPageSize
	}
	return q
}

func (q TableQuery) slice(total int) (int, int) {
	start := (q.Page - 1) * q.PageSize
	if start > total {
		start = total
	}
	end := start + q.PageSize
	if end > total {
		end = total
	}
	return start, end
}

// QuoteListItem pairs a quote with its resolved client display name.
type QuoteListItem struct {
	Quote      entities.Quote `json:"quote"`
	ClientName string         `json:"clientName"`
}

// ClientName resolves the display name for a quote: customer business name,
// then customer name, then the quote title, then the referenced lead's
// company. A dangling lead reference resolves to "Unknown", not an error.
func ClientName(quote entities.Quote, leads []entities.Lead) string {
	if quote.Customer.BusinessName != "" {
		return quote.Customer.BusinessName
	}
	if quote.Customer.Name != "" {
		return quote.Customer.Name
	}
	if quote.Title != "" {
		return quote.Title
	}
	for _, lead := range leads {
		if lead.ID == quote.LeadID && lead.CompanyName != "" {
			return lead.CompanyName
		}
	}
	return "Unknown"
}

// QueryQuotes searches, sorts and paginates quotes. Search matches the quote
// number, code, title and resolved client name, case-insensitively. Sorting
// by status follows the canonical pipeline order. Returns the page and the
// total match count.
func QueryQuotes(quotes []entities.Quote, leads []entities.Lead, q TableQuery) ([]QuoteListItem, int) {
	q = q.normalized()

	items := make([]QuoteListItem, 0, len(quotes))
	for _, quote := range quotes {
		items = append(items, QuoteListItem{Quote: quote, ClientName: ClientName(quote, leads)})
	}

	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		matched := items[:0]
		for _, item := range items {
			if containsFold(needle, item.Quote.QuoteNumber, item.Quote.QuoteCode, item.Quote.Title, item.ClientName) {
				matched = append(matched, item)
			}
		}
		items = matched
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].Quote, items[j].Quote
		if q.SortDesc {
			a, b = b, a
		}
		switch q.SortField {
		case "quoteNumber":
			return a.QuoteNumber < b.QuoteNumber
		case "price":
			return a.Price < b.Price
		case "estimatedValue":
			return a.EstimatedValue < b.EstimatedValue
		case "expirationDate":
			return a.ExpirationDate.Before(b.ExpirationDate)
		case "status":
			return quoteStatusRank(a.Status) < quoteStatusRank(b.Status)
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	})

	total := len(items)
	start, end := q.slice(total)
	return items[start:end], total
}

// QueryLeads searches, sorts and paginates leads. Search matches company,
// contact and email.
func QueryLeads(leads []entities.Lead, q TableQuery) ([]entities.Lead, int) {
	q = q.normalized()

	items := make([]entities.Lead, 0, len(leads))
	for _, lead := range leads {
		items = append(items, lead)
	}

	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		matched := items[:0]
		for _, lead := range items {
			if containsFold(needle, lead.CompanyName, lead.ContactName, lead.Email) {
				matched = append(matched, lead)
			}
		}
		items = matched
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if q.SortDesc {
			a, b = b, a
		}
		switch q.SortField {
		case "companyName":
			return a.CompanyName < b.CompanyName
		case "estimatedValue":
			return a.EstimatedValue < b.EstimatedValue
		case "status":
			return leadStatusRank(a.Status) < leadStatusRank(b.Status)
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	})

	total := len(items)
	start, end := q.slice(total)
	return items[start:end], total
}

func containsFold(needle string, haystacks ...string) bool {
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}

func quoteStatusRank(s entities.QuoteStatus) int {
	for i, info := range entities.QuoteStatuses {
		if info.Value == s {
			return i
		}
	}
	return len(entities.QuoteStatuses)
}

func leadStatusRank(s entities.LeadStatus) int {
	for i, info := range entities.LeadStatuses {
		if info.Value == s {
			return i
		}
	}
	return len(entities.LeadStatuses)
}
