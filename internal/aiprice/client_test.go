package aiprice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/BuildQuote/internal/model"
	"github.com/piwi3910/BuildQuote/internal/pricing"
)

func testQuery() pricing.Query {
	return pricing.Query{
		MaterialName: "cement backer board, 3x5 sheet",
		Category:     "walls",
		Unit:         "sheet",
		ZipCode:      "97205",
	}
}

func TestEstimatePrice_Success(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{
			"estimated_price": 14.25,
			"confidence":      "high",
			"price_range":     map[string]float64{"low": 12.0, "high": 17.5},
			"notes":           "regional average",
		})
	}))
	defer srv.Close()

	src, err := NewClient(srv.URL, "test-key").EstimatePrice(context.Background(), testQuery())
	require.NoError(t, err)

	assert.Equal(t, "/v1/estimate", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "cement backer board, 3x5 sheet", gotBody["material_name"])
	assert.Equal(t, "97205", gotBody["zip_code"])

	assert.Equal(t, model.SourceAIEstimate, src.Source)
	assert.Equal(t, 14.25, src.Price)
	assert.Equal(t, model.ConfidenceHigh, src.Confidence)
	assert.True(t, src.Available)
	assert.Equal(t, "regional average", src.Notes)
}

func TestEstimatePrice_UnknownConfidenceDefaultsMedium(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"estimated_price": 9.99,
			"confidence":      "pretty sure",
		})
	}))
	defer srv.Close()

	src, err := NewClient(srv.URL, "").EstimatePrice(context.Background(), testQuery())
	require.NoError(t, err)
	assert.Equal(t, model.ConfidenceMedium, src.Confidence)
}

func TestEstimatePrice_MissingPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"confidence": "high"})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "").EstimatePrice(context.Background(), testQuery())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-positive price")
}

func TestEstimatePrice_InvertedRange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"estimated_price": 10.0,
			"price_range":     map[string]float64{"low": 20.0, "high": 5.0},
		})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "").EstimatePrice(context.Background(), testQuery())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inverted price range")
}

func TestEstimatePrice_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "").EstimatePrice(context.Background(), testQuery())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestEstimatePrice_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "").EstimatePrice(context.Background(), testQuery())
	require.Error(t, err)
}

func TestEstimatePrice_NoAuthHeaderWithoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{"estimated_price": 1.0})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "").EstimatePrice(context.Background(), testQuery())
	require.NoError(t, err)
}
