package pricing

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/piwi3910/BuildQuote/internal/model"
)

// Config holds the aggregation thresholds. These are product knobs, not
// derived values, so they stay configurable rather than buried as magic
// numbers.
type Config struct {
	// OverrideTolerance is how far above the minimum price a user override
	// may sit and still be recommended, as a fraction (0.10 = 10%).
	OverrideTolerance float64

	// CacheWindow is how old a cached price may be and still count.
	CacheWindow time.Duration

	// MaxCacheSources bounds how many cached candidates are merged in.
	MaxCacheSources int
}

// DefaultConfig returns the standard aggregation thresholds.
func DefaultConfig() Config {
	return Config{
		OverrideTolerance: 0.10,
		CacheWindow:       7 * 24 * time.Hour,
		MaxCacheSources:   3,
	}
}

// Recommendation reasons. Fixed strings so callers and tests can match on
// them.
const (
	ReasonOverrideCompetitive = "user price is reliable and competitive"
	ReasonCheapestHigh        = "cheapest high-confidence source"
	ReasonCheapestAvailable   = "lowest available price"
	ReasonNoSources           = "no price sources available"
)

// Aggregator merges resolver outputs per material into one ranked answer.
// It owns no state beyond its resolvers; concurrent use is safe.
type Aggregator struct {
	cfg      Config
	override Resolver
	cache    Resolver
	ai       Resolver
	recorder Recorder
}

// New builds an Aggregator. Any resolver may be nil, in which case that
// strategy is skipped; recorder may be nil to disable cache write-back.
func New(cfg Config, override, cache, ai Resolver, recorder Recorder) *Aggregator {
	return &Aggregator{cfg: cfg, override: override, cache: cache, ai: ai, recorder: recorder}
}

// NewWithStores wires the standard resolver set from the storage and
// estimator interfaces. estimator may be nil for offline operation.
func NewWithStores(cfg Config, overrides OverrideStore, cache CacheStore, estimator Estimator, recorder Recorder) *Aggregator {
	var override, cacheRes, ai Resolver
	if overrides != nil {
		override = OverrideResolver{Store: overrides}
	}
	if cache != nil {
		cacheRes = CacheResolver{Store: cache, Window: cfg.CacheWindow, Limit: cfg.MaxCacheSources}
	}
	if estimator != nil {
		ai = AIResolver{Estimator: estimator}
	}
	return New(cfg, override, cacheRes, ai, recorder)
}

// Aggregate queries the resolvers in priority order for one material and
// merges everything they return. Resolver failures never propagate; a
// failed resolver simply contributes no sources. A result with zero
// sources means the material could not be priced.
func (a *Aggregator) Aggregate(ctx context.Context, q Query) model.AggregatedPrice {
	var sources []model.PriceSource

	hasOverride := false
	if a.override != nil {
		if res, err := a.override.Resolve(ctx, q); err == nil && len(res) > 0 {
			sources = append(sources, res...)
			hasOverride = true
		}
	}

	if a.cache != nil {
		if res, err := a.cache.Resolve(ctx, q); err == nil {
			sources = append(sources, res...)
		}
	}

	// Fall back to the AI estimate when nothing was found, or when the
	// only source is the user's own override and there is no independent
	// confirmation of it.
	needsEstimate := len(sources) == 0 || (hasOverride && len(sources) == 1)
	if needsEstimate && a.ai != nil {
		if res, err := a.ai.Resolve(ctx, q); err == nil && len(res) > 0 {
			sources = append(sources, res...)
			if a.recorder != nil {
				// Cache entries are advisory hints; a failed write is not
				// worth failing the aggregation over.
				_ = a.recorder.RecordPrice(ctx, q, res[0])
			}
		}
	}

	return a.finalize(q, sources)
}

// finalize computes the range, sorts sources ascending by price, and picks
// the recommendation.
func (a *Aggregator) finalize(q Query, sources []model.PriceSource) model.AggregatedPrice {
	agg := model.AggregatedPrice{
		MaterialName: q.MaterialName,
		Category:     q.Category,
		Unit:         q.Unit,
	}

	var available []model.PriceSource
	for _, s := range sources {
		if s.Available {
			available = append(available, s)
		}
	}
	if len(available) == 0 {
		agg.Recommendation = model.Recommendation{Reason: ReasonNoSources}
		return agg
	}

	sort.SliceStable(available, func(i, j int) bool {
		return available[i].Price < available[j].Price
	})
	agg.Sources = available
	agg.BestPrice = available[0].Price

	var sum float64
	for _, s := range available {
		sum += s.Price
	}
	agg.Range = model.PriceRange{
		Min:     available[0].Price,
		Max:     available[len(available)-1].Price,
		Average: sum / float64(len(available)),
	}

	agg.Recommendation = a.recommend(available, agg.BestPrice)
	return agg
}

// recommend applies the tie-break order: a competitive user override wins,
// then the cheapest high-confidence source, then the cheapest overall.
func (a *Aggregator) recommend(sorted []model.PriceSource, best float64) model.Recommendation {
	for _, s := range sorted {
		if s.Source == model.SourceUserCustom && s.Price <= best*(1+a.cfg.OverrideTolerance) {
			return model.Recommendation{Source: model.SourceUserCustom, Reason: ReasonOverrideCompetitive}
		}
	}
	for _, s := range sorted {
		if s.Confidence == model.ConfidenceHigh {
			return model.Recommendation{Source: s.Source, Reason: ReasonCheapestHigh}
		}
	}
	return model.Recommendation{Source: sorted[0].Source, Reason: ReasonCheapestAvailable}
}

// AggregateBatch aggregates every query concurrently and returns one result
// per query, in order. A total failure for one material yields an
// empty-sources result for that material only; the batch always completes.
func (a *Aggregator) AggregateBatch(ctx context.Context, queries []Query) []model.AggregatedPrice {
	results := make([]model.AggregatedPrice, len(queries))
	var wg sync.WaitGroup
	for i, q := range queries {
		wg.Add(1)
		go func(i int, q Query) {
			defer wg.Done()
			results[i] = a.Aggregate(ctx, q)
		}(i, q)
	}
	wg.Wait()
	return results
}
