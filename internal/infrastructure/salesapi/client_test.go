package salesapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salesdash/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL, token string) *Client {
	tokens := NewTokenStore()
	tokens.SetToken(token)
	return &Client{
		baseURL: serverURL,
		http:    &http.Client{Timeout: 5 * time.Second},
		tokens:  tokens,
	}
}

func TestClient_FetchLeads_BareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/leads", r.URL.Path)
		w.Write([]byte(`[{"id":"l-1","companyName":"Acme","status":"won"}]`))
	}))
	defer srv.Close()

	leads, err := newTestClient(srv.URL, "").FetchLeads(context.Background())
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "l-1", leads[0].ID)
	assert.Equal(t, entities.LeadStatusWon, leads[0].Status)
}

func TestClient_FetchLeads_WrapperKeys(t *testing.T) {
	bodies := []string{
		`{"leads":[{"id":"l-1"}]}`,
		`{"data":[{"id":"l-1"}]}`,
		`{"results":[{"id":"l-1"}]}`,
	}
	for _, body := range bodies {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))

		leads, err := newTestClient(srv.URL, "").FetchLeads(context.Background())
		srv.Close()
		require.NoError(t, err, "body=%s", body)
		require.Len(t, leads, 1, "body=%s", body)
		assert.Equal(t, "l-1", leads[0].ID)
	}
}

func TestClient_FetchQuotes_WrapperKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quotes", r.URL.Path)
		w.Write([]byte(`{"quotes":[{"_id":"q-1","status":"closedWon"}]}`))
	}))
	defer srv.Close()

	quotes, err := newTestClient(srv.URL, "").FetchQuotes(context.Background())
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "q-1", quotes[0].ID)
	assert.Equal(t, entities.QuoteStatusClosedWon, quotes[0].Status)
}

func TestClient_BearerHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, "tok-123").FetchLeads(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)

	_, err = newTestClient(srv.URL, "").FetchLeads(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", gotAuth)
}

func TestClient_NonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, "").FetchLeads(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSalesAPIUnavailable)
}

func TestClient_MalformedRecordsDegradeNotFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"status":12345,"estimatedValue":"x"},{}]`))
	}))
	defer srv.Close()

	leads, err := newTestClient(srv.URL, "").FetchLeads(context.Background())
	require.NoError(t, err)
	require.Len(t, leads, 2)
	for _, lead := range leads {
		assert.Equal(t, entities.LeadStatusNew, lead.Status)
		assert.Zero(t, lead.EstimatedValue)
	}
}

func TestUnwrapCollection_UnknownWrapperYieldsEmpty(t *testing.T) {
	records, err := unwrapCollection([]byte(`{"other":[{"id":"x"}]}`), "leads")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestUnwrapCollection_NonObjectPayloadIsError(t *testing.T) {
	_, err := unwrapCollection([]byte(`"nope"`), "leads")
	assert.ErrorIs(t, err, ErrSalesAPIUnavailable)
}
