// Package pricing resolves unit prices for materials from multiple sources
// and merges them into a single aggregated answer per material. Resolvers
// are queried in trust order: user overrides, then recent cached prices,
// then an AI estimate as a last resort.
package pricing

import (
	"context"
	"time"

	"github.com/piwi3910/BuildQuote/internal/model"
)

// Query identifies the material being priced. ZipCode scopes lookups to the
// caller's market.
type Query struct {
	MaterialName string
	Category     string
	Unit         string
	ZipCode      string
}

// Resolver is one price-lookup strategy. "No data" is an empty slice with a
// nil error; an error means the lookup itself failed (transport, storage)
// and is treated by the aggregator as the source being unavailable.
type Resolver interface {
	Resolve(ctx context.Context, q Query) ([]model.PriceSource, error)
}

// OverrideStore reads caller-supplied prices. A nil result means no
// override exists for the material.
type OverrideStore interface {
	Override(ctx context.Context, materialName, zipCode string) (*model.PriceSource, error)
}

// CacheStore reads previously recorded prices, newest first.
type CacheStore interface {
	RecentPrices(ctx context.Context, materialName, zipCode string, since time.Time, limit int) ([]model.PriceSource, error)
}

// Estimator produces a last-resort price estimate from an external service.
type Estimator interface {
	EstimatePrice(ctx context.Context, q Query) (model.PriceSource, error)
}

// Recorder persists a resolved price for future cache hits.
type Recorder interface {
	RecordPrice(ctx context.Context, q Query, src model.PriceSource) error
}

// OverrideResolver returns the user's stored price for a material, if any.
// User prices carry fixed high confidence.
type OverrideResolver struct {
	Store OverrideStore
}

func (r OverrideResolver) Resolve(ctx context.Context, q Query) ([]model.PriceSource, error) {
	src, err := r.Store.Override(ctx, q.MaterialName, q.ZipCode)
	if err != nil {
		return nil, err
	}
	if src == nil {
		return nil, nil
	}
	src.Source = model.SourceUserCustom
	src.Confidence = model.ConfidenceHigh
	src.Available = true
	return []model.PriceSource{*src}, nil
}

// CacheResolver returns recently recorded prices within the freshness
// window, bounded to the most recent few candidates.
type CacheResolver struct {
	Store  CacheStore
	Window time.Duration
	Limit  int
	now    func() time.Time // test hook; nil means time.Now
}

func (r CacheResolver) Resolve(ctx context.Context, q Query) ([]model.PriceSource, error) {
	now := time.Now
	if r.now != nil {
		now = r.now
	}
	since := now().Add(-r.Window)
	sources, err := r.Store.RecentPrices(ctx, q.MaterialName, q.ZipCode, since, r.Limit)
	if err != nil {
		return nil, err
	}
	for i := range sources {
		sources[i].Available = true
		if sources[i].Source == "" {
			sources[i].Source = model.SourceCached
		}
	}
	return sources, nil
}

// AIResolver asks the external estimation service for a price. It is the
// most failure-prone resolver, so any error stays contained here and the
// aggregator simply records the source as unavailable.
type AIResolver struct {
	Estimator Estimator
}

func (r AIResolver) Resolve(ctx context.Context, q Query) ([]model.PriceSource, error) {
	src, err := r.Estimator.EstimatePrice(ctx, q)
	if err != nil {
		return nil, err
	}
	src.Source = model.SourceAIEstimate
	src.Available = true
	return []model.PriceSource{src}, nil
}
