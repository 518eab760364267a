package salesapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"salesdash/internal/domain/entities"
	"salesdash/internal/usecase/interfaces"
)

const defaultBaseURL = "https://zenithar-abacus-sales.prod.aws.r-s.cloud"

var ErrSalesAPIUnavailable = errors.New("sales api request failed")

// Client fetches lead and quote collections from the remote sales API and
// normalizes them into canonical records.
//
// Transport failures and non-2xx responses surface as a single opaque error;
// malformed payload entries never do, they degrade to default field values.
// A bearer token from the token store is attached when one is present.
type Client struct {
	baseURL  string
	http     *http.Client
	tokens   interfaces.ITokenStore
	mockMode bool
}

var _ interfaces.ISalesGateway = (*Client)(nil)

// NewClient builds a sales API client from environment configuration.
//
// Supported env vars:
//   - SALES_API_BASE_URL (default: production sales endpoint)
//   - SALES_API_MOCK (truthy value serves canned data, local-friendly)
func NewClient(tokens interfaces.ITokenStore) *Client {
	if isSalesAPIMockEnabled() {
		log.Printf("[salesapi][client] mock mode enabled")
		return &Client{mockMode: true, tokens: tokens}
	}

	return &Client{
		baseURL: getenvDefault("SALES_API_BASE_URL", defaultBaseURL),
		http:    &http.Client{Timeout: 30 * time.Second},
		tokens:  tokens,
	}
}

func (c *Client) FetchLeads(ctx context.Context) ([]entities.Lead, error) {
	if c.mockMode {
		return mockLeads(), nil
	}

	records, err := c.fetchCollection(ctx, "/leads", "leads")
	if err != nil {
		return nil, err
	}

	leads := make([]entities.Lead, 0, len(records))
	for i, rec := range records {
		leads = append(leads, NormalizeLead(rec, i))
	}
	log.Printf("[salesapi][leads] fetched count=%d", len(leads))
	return leads, nil
}

func (c *Client) FetchQuotes(ctx context.Context) ([]entities.Quote, error) {
	if c.mockMode {
		return mockQuotes(), nil
	}

	records, err := c.fetchCollection(ctx, "/quotes", "quotes")
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.Quote, 0, len(records))
	for i, rec := range records {
		quotes = append(quotes, NormalizeQuote(rec, i))
	}
	log.Printf("[salesapi][quotes] fetched count=%d", len(quotes))
	return quotes, nil
}

// fetchCollection issues the GET and unwraps the collection. The API is
// inconsistent about its envelope: the body may be a bare array or an object
// wrapping the array under the resource key, "data" or "results".
func (c *Client) fetchCollection(ctx context.Context, path, resourceKey string) ([]map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[salesapi][client] request failed path=%s err=%v", path, err)
		return nil, fmt.Errorf("%w: %v", ErrSalesAPIUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[salesapi][client] response not ok path=%s status=%d", path, resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrSalesAPIUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSalesAPIUnavailable, err)
	}

	return unwrapCollection(body, resourceKey)
}

// unwrapCollection decodes body into a record list, checking the bare-array
// shape first and then the conventional wrapper keys in order.
func unwrapCollection(body []byte, resourceKey string) ([]map[string]any, error) {
	var bare []map[string]any
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("%w: unexpected payload shape", ErrSalesAPIUnavailable)
	}

	for _, key := range []string{resourceKey, "data", "results"} {
		raw, ok := wrapped[key]
		if !ok {
			continue
		}
		var records []map[string]any
		if err := json.Unmarshal(raw, &records); err == nil {
			return records, nil
		}
	}
	return []map[string]any{}, nil
}

func isSalesAPIMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("SALES_API_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
