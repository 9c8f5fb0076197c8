package aviationstack

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	derr "github.com/khwalser/nextownair-site/internal/domain/errors"
	"github.com/khwalser/nextownair-site/internal/domain/models"
	"github.com/khwalser/nextownair-site/internal/infrastructures/aviationstack/dto"
	"github.com/khwalser/nextownair-site/internal/infrastructures/aviationstack/mappers"
	"github.com/khwalser/nextownair-site/internal/infrastructures/httpjson"
)

type Client struct {
	baseURL    string
	accessKey  string
	limit      int
	httpClient *http.Client
}

func NewClient(baseURL, accessKey string, limit int, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "https://api.aviationstack.com"
	}
	if limit <= 0 {
		limit = 100
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		accessKey:  strings.TrimSpace(accessKey),
		limit:      limit,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Search fetches status records filtered by route. The departure date is not
// an upstream filter here; the direction guard in the mapper does the
// correctness work.
func (c *Client) Search(ctx context.Context, direction models.Direction, _ string) ([]models.FlightOption, error) {
	if c.accessKey == "" {
		return nil, derr.ErrCredentialsMissing
	}

	q := url.Values{}
	q.Set("access_key", c.accessKey)
	q.Set("dep_iata", strings.ToUpper(strings.TrimSpace(direction.From)))
	if arr := strings.ToUpper(strings.TrimSpace(direction.To)); arr != "" {
		q.Set("arr_iata", arr)
	}
	q.Set("limit", strconv.Itoa(c.limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/flights?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	var payload dto.FlightsResponse
	if err := httpjson.Do(c.httpClient, req, &payload); err != nil {
		return nil, err
	}

	return mappers.MapFlights(payload.Data, direction), nil
}
