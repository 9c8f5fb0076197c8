package amadeus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	derr "github.com/khwalser/nextownair-site/internal/domain/errors"
	"github.com/khwalser/nextownair-site/internal/domain/models"
	"github.com/khwalser/nextownair-site/internal/domain/ports"
	"github.com/khwalser/nextownair-site/internal/infrastructures/amadeus/dto"
	"github.com/khwalser/nextownair-site/internal/infrastructures/amadeus/mappers"
	"github.com/khwalser/nextownair-site/internal/infrastructures/httpjson"
)

type Client struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	tokens     ports.TokenStore
	tokenTTL   time.Duration
	httpClient *http.Client
}

// NewClient builds the OAuth offer-search client. tokens may be nil, in which
// case every search authenticates from scratch.
func NewClient(baseURL, apiKey, apiSecret string, tokens ports.TokenStore, tokenTTL time.Duration, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "https://test.api.amadeus.com"
	}
	if tokenTTL <= 0 {
		tokenTTL = 25 * time.Minute
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     strings.TrimSpace(apiKey),
		apiSecret:  strings.TrimSpace(apiSecret),
		tokens:     tokens,
		tokenTTL:   tokenTTL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Search(ctx context.Context, direction models.Direction, departureDate string) ([]models.FlightOption, error) {
	if c.apiKey == "" || c.apiSecret == "" {
		return nil, derr.ErrCredentialsMissing
	}

	token, err := c.bearerToken(ctx)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("originLocationCode", strings.ToUpper(strings.TrimSpace(direction.From)))
	q.Set("destinationLocationCode", strings.ToUpper(strings.TrimSpace(direction.To)))
	q.Set("departureDate", departureDate)
	q.Set("adults", "1")
	q.Set("currencyCode", "USD")
	q.Set("max", "10")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v2/shopping/flight-offers?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	var payload dto.OffersResponse
	if err := httpjson.Do(c.httpClient, req, &payload); err != nil {
		return nil, err
	}

	return mappers.MapOffers(payload.Data, direction, departureDate), nil
}

// Authenticate issues a client-credentials grant and returns the bearer token.
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	if c.apiKey == "" || c.apiSecret == "" {
		return "", derr.ErrCredentialsMissing
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.apiKey)
	form.Set("client_secret", c.apiSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var payload dto.TokenResponse
	if err := httpjson.Do(c.httpClient, req, &payload); err != nil {
		if errors.Is(err, derr.ErrUpstreamRequest) {
			return "", fmt.Errorf("%w: %v", derr.ErrUpstreamAuth, err)
		}
		return "", err
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access_token", derr.ErrUpstreamAuth)
	}

	return payload.AccessToken, nil
}

// bearerToken reuses a stored token when a store is wired; any store failure
// just falls back to a fresh grant.
func (c *Client) bearerToken(ctx context.Context) (string, error) {
	if c.tokens != nil {
		token, err := c.tokens.Get(ctx)
		if err == nil && token != "" {
			return token, nil
		}
	}

	token, err := c.Authenticate(ctx)
	if err != nil {
		return "", err
	}

	if c.tokens != nil {
		_ = c.tokens.Save(ctx, token, c.tokenTTL)
	}
	return token, nil
}
