// Package aiprice calls the remote AI price-estimation service. The service
// is schema-fragile, so every response field is validated before it is
// trusted; anything malformed is reported as an error and the caller treats
// the source as unavailable.
package aiprice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/piwi3910/BuildQuote/internal/model"
	"github.com/piwi3910/BuildQuote/internal/pricing"
)

const defaultTimeout = 15 * time.Second

// Client talks to the estimation service over HTTP JSON.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

var _ pricing.Estimator = (*Client)(nil)

// NewClient builds a client for the given service base URL. The API key may
// be empty for services that do not require one.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: defaultTimeout},
	}
}

type estimateRequest struct {
	MaterialName string `json:"material_name"`
	Category     string `json:"category"`
	Unit         string `json:"unit"`
	ZipCode      string `json:"zip_code"`
}

type estimateResponse struct {
	EstimatedPrice float64 `json:"estimated_price"`
	Confidence     string  `json:"confidence"`
	PriceRange     *struct {
		Low  float64 `json:"low"`
		High float64 `json:"high"`
	} `json:"price_range"`
	Notes string `json:"notes"`
}

// EstimatePrice requests one price estimate. A single attempt, no retry;
// transient failures surface as errors for the aggregator to absorb.
func (c *Client) EstimatePrice(ctx context.Context, q pricing.Query) (model.PriceSource, error) {
	body, err := json.Marshal(estimateRequest{
		MaterialName: q.MaterialName,
		Category:     q.Category,
		Unit:         q.Unit,
		ZipCode:      q.ZipCode,
	})
	if err != nil {
		return model.PriceSource{}, fmt.Errorf("encode estimate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/estimate", bytes.NewReader(body))
	if err != nil {
		return model.PriceSource{}, fmt.Errorf("build estimate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return model.PriceSource{}, fmt.Errorf("call estimation service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.PriceSource{}, fmt.Errorf("estimation service returned status %d", resp.StatusCode)
	}

	var parsed estimateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return model.PriceSource{}, fmt.Errorf("decode estimate response: %w", err)
	}
	if parsed.EstimatedPrice <= 0 {
		return model.PriceSource{}, fmt.Errorf("estimate response has missing or non-positive price")
	}
	if parsed.PriceRange != nil && parsed.PriceRange.Low > parsed.PriceRange.High {
		return model.PriceSource{}, fmt.Errorf("estimate response has inverted price range")
	}

	return model.PriceSource{
		Source:      model.SourceAIEstimate,
		Price:       parsed.EstimatedPrice,
		Confidence:  model.ParseConfidence(parsed.Confidence),
		LastUpdated: time.Now().UTC(),
		Available:   true,
		Notes:       parsed.Notes,
	}, nil
}
