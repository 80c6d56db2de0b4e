package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/guttosm/mflive/internal/domain/models"
)

const opHoldings = "holdings"

// HoldingsClient fetches fund portfolios from the mutual fund search upstream.
type HoldingsClient struct {
	client
	baseURL string
}

// NewHoldingsClient creates a client for GET <baseURL>/<fund_id>.
func NewHoldingsClient(baseURL string, options ...Option) *HoldingsClient {
	return &HoldingsClient{client: newClient(options...), baseURL: baseURL}
}

type holdingsResponse struct {
	Holdings *[]models.Holding `json:"holdings"`
}

// Holdings returns the holdings list of fundID. A response without a
// "holdings" array is reported as ReasonMalformed.
func (c *HoldingsClient) Holdings(ctx context.Context, fundID string) ([]models.Holding, error) {
	u, err := url.JoinPath(c.baseURL, fundID)
	if err != nil {
		return nil, newError(opHoldings, ReasonTransport, fmt.Errorf("build url: %w", err))
	}

	var body holdingsResponse
	if err := c.getJSON(ctx, opHoldings, u, &body); err != nil {
		return nil, err
	}
	if body.Holdings == nil {
		return nil, newError(opHoldings, ReasonMalformed, errors.New("missing holdings field"))
	}
	return *body.Holdings, nil
}

// Ping reports whether the holdings upstream answers at all. Any response
// below 500 counts as reachable.
func (c *HoldingsClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return newError(opHoldings, ReasonTransport, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classify(opHoldings, err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode >= http.StatusInternalServerError {
		return newError(opHoldings, ReasonStatus, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
	return nil
}
