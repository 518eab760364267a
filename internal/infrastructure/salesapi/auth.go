package salesapi

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"salesdash/internal/usecase/interfaces"
)

const defaultAuthBaseURL = "https://zenithar-abacus-common.prod.aws.r-s.cloud"

var (
	ErrLoginFailed  = errors.New("login rejected by auth endpoint")
	ErrEmptyToken   = errors.New("auth endpoint returned no token")
	ErrAuthRequired = errors.New("missing credentials")
)

// AuthClient performs the Basic-auth login exchange against the remote auth
// endpoint and returns the bearer token used for subsequent sales requests.
type AuthClient struct {
	baseURL string
	http    *http.Client
}

var _ interfaces.IAuthGateway = (*AuthClient)(nil)

// NewAuthClient reads AUTH_API_BASE_URL, falling back to the production
// endpoint.
func NewAuthClient() *AuthClient {
	return &AuthClient{
		baseURL: getenvDefault("AUTH_API_BASE_URL", defaultAuthBaseURL),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type loginResponse struct {
	Token string `json:"token"`
}

func (c *AuthClient) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrAuthRequired
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth", nil)
	if err != nil {
		return "", err
	}
	basic := base64.StdEncoding.EncodeToString([]byte(email + ":" + password))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[salesapi][auth] login request failed err=%v", err)
		return "", fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[salesapi][auth] login rejected status=%d", resp.StatusCode)
		return "", fmt.Errorf("%w: status %d", ErrLoginFailed, resp.StatusCode)
	}

	var body loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}
	if body.Token == "" {
		return "", ErrEmptyToken
	}
	return body.Token, nil
}

// TokenStore is the in-memory bearer-token slot shared between the auth flow
// and the sales client. Safe for concurrent use.
type TokenStore struct {
	mu    sync.RWMutex
	token string
}

var _ interfaces.ITokenStore = (*TokenStore)(nil)

func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

func (s *TokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *TokenStore) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}
