package request

import (
	"errors"
	"time"

	"salesdash/internal/domain/entities"
)

var ErrInvalidDateRange = errors.New("invalid date range parameter")

// SalesQueryRequest carries the filter and table query parameters shared by
// the sales endpoints. Statuses repeat (?leadStatus=won&leadStatus=lost);
// an empty set means no status filtering. Unknown status values are ignored
// rather than rejected, mirroring the tolerant read path.
type SalesQueryRequest struct {
	From          string   `form:"from"`
	To            string   `form:"to"`
	LeadStatuses  []string `form:"leadStatus"`
	QuoteStatuses []string `form:"quoteStatus"`

	Search   string `form:"search"`
	Sort     string `form:"sort"`
	Order    string `form:"order"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}

// ResolveRange parses the from/to bounds. Either may be empty (open bound);
// both date-only and RFC 3339 forms are accepted.
func (r SalesQueryRequest) ResolveRange() (from, to time.Time, err error) {
	if from, err = parseDateParam(r.From); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if to, err = parseDateParam(r.To); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}

// ResolveLeadStatuses keeps only canonical lead statuses.
func (r SalesQueryRequest) ResolveLeadStatuses() []entities.LeadStatus {
	statuses := make([]entities.LeadStatus, 0, len(r.LeadStatuses))
	for _, raw := range r.LeadStatuses {
		for _, info := range entities.LeadStatuses {
			if string(info.Value) == raw {
				statuses = append(statuses, info.Value)
				break
			}
		}
	}
	return statuses
}

// ResolveQuoteStatuses keeps only canonical quote statuses.
func (r SalesQueryRequest) ResolveQuoteStatuses() []entities.QuoteStatus {
	statuses := make([]entities.QuoteStatus, 0, len(r.QuoteStatuses))
	for _, raw := range r.QuoteStatuses {
		if status := entities.QuoteStatus(raw); status.IsValid() {
			statuses = append(statuses, status)
		}
	}
	return statuses
}

// ResolveSortDesc interprets the order parameter, defaulting to descending
// like the tables (newest first).
func (r SalesQueryRequest) ResolveSortDesc() bool {
	return r.Order != "asc"
}

func parseDateParam(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDateRange
}

// LoginRequest is the credentials payload for the auth exchange.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
