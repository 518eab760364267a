package usecase

import (
	"context"
	"time"

	"salesdash/internal/domain/entities"
	"salesdash/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

// SalesData is one settled fetch of both remote collections.
type SalesData struct {
	Leads  []entities.Lead  `json:"leads"`
	Quotes []entities.Quote `json:"quotes"`
}

// SalesOverview is the aggregate view rendered by the dashboard: KPI stats,
// chart buckets and the lead intake trend, all computed over the filtered
// working set.
type SalesOverview struct {
	Stats          SalesStats     `json:"stats"`
	LeadsByStatus  []StatusBucket `json:"leadsByStatus"`
	QuotesByStatus []StatusBucket `json:"quotesByStatus"`
	LeadsTrend     []TrendPoint   `json:"leadsTrend"`
	FilteredLeads  int            `json:"filteredLeads"`
	FilteredQuotes int            `json:"filteredQuotes"`
}

// ISalesUseCase exposes the sales dashboard read operations.
type ISalesUseCase interface {
	FetchSalesData(ctx context.Context) (SalesData, error)
	Overview(ctx context.Context, filter SalesFilter) (SalesOverview, error)
	ListLeads(ctx context.Context, filter SalesFilter, query TableQuery) ([]entities.Lead, int, error)
	ListQuotes(ctx context.Context, filter SalesFilter, query TableQuery) ([]QuoteListItem, int, error)
}

type SalesUseCase struct {
	gateway   interfaces.ISalesGateway
	trendDays int
	now       func() time.Time
}

var _ ISalesUseCase = (*SalesUseCase)(nil)

func NewSalesUseCase(gateway interfaces.ISalesGateway) *SalesUseCase {
	return &SalesUseCase{gateway: gateway, trendDays: 30, now: time.Now}
}

// FetchSalesData issues both remote fetches concurrently. The fetches are
// independent, but rendering needs both: either failure fails the whole
// operation and the caller retries by calling again. No state is kept
// between calls; a newer fetch simply supersedes the previous result.
func (u *SalesUseCase) FetchSalesData(ctx context.Context) (SalesData, error) {
	var data SalesData

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		leads, err := u.gateway.FetchLeads(ctx)
		if err != nil {
			return err
		}
		data.Leads = leads
		return nil
	})
	g.Go(func() error {
		quotes, err := u.gateway.FetchQuotes(ctx)
		if err != nil {
			return err
		}
		data.Quotes = quotes
		return nil
	})

	if err := g.Wait(); err != nil {
		return SalesData{}, err
	}
	return data, nil
}

func (u *SalesUseCase) Overview(ctx context.Context, filter SalesFilter) (SalesOverview, error) {
	data, err := u.FetchSalesData(ctx)
	if err != nil {
		return SalesOverview{}, err
	}

	leads := filter.FilterLeads(data.Leads)
	quotes := filter.FilterQuotes(data.Quotes)

	return SalesOverview{
		Stats:          Summarize(leads, quotes),
		LeadsByStatus:  LeadStatusBuckets(leads),
		QuotesByStatus: QuoteStatusBuckets(quotes),
		LeadsTrend:     LeadsTrend(leads, u.trendDays, u.now()),
		FilteredLeads:  len(leads),
		FilteredQuotes: len(quotes),
	}, nil
}

func (u *SalesUseCase) ListLeads(ctx context.Context, filter SalesFilter, query TableQuery) ([]entities.Lead, int, error) {
	data, err := u.FetchSalesData(ctx)
	if err != nil {
		return nil, 0, err
	}
	page, total := QueryLeads(filter.FilterLeads(data.Leads), query)
	return page, total, nil
}

func (u *SalesUseCase) ListQuotes(ctx context.Context, filter SalesFilter, query TableQuery) ([]QuoteListItem, int, error) {
	data, err := u.FetchSalesData(ctx)
	if err != nil {
		return nil, 0, err
	}
	// Client names resolve against the unfiltered lead set so a filtered-out
	// lead still names its quote.
	page, total := QueryQuotes(filter.FilterQuotes(data.Quotes), data.Leads, query)
	return page, total, nil
}
