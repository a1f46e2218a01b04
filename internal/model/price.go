package model

import "time"

// SourceName identifies which strategy produced a price.
type SourceName string

const (
	SourceUserCustom  SourceName = "user_custom"
	SourceCached      SourceName = "cached"
	SourceAIEstimate  SourceName = "ai_estimate"
	SourceSupplierAPI SourceName = "supplier_api"
)

// Confidence is the qualitative trust level attached to a price source.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ParseConfidence maps a free-form confidence string to a known level.
// Unrecognized values fall back to medium, which is the default trust
// level for automated estimates.
func ParseConfidence(s string) Confidence {
	switch Confidence(s) {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return Confidence(s)
	}
	return ConfidenceMedium
}

// PriceSource is one candidate unit price for a material.
type PriceSource struct {
	Source       SourceName `json:"source"`
	Price        float64    `json:"price"`
	Confidence   Confidence `json:"confidence"`
	LastUpdated  time.Time  `json:"last_updated"`
	Available    bool       `json:"available"`
	Notes        string     `json:"notes,omitempty"`
	SupplierName string     `json:"supplier_name,omitempty"`
}

// PriceRange summarizes the spread of available prices.
type PriceRange struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
}

// Recommendation names the source the aggregator picked and why.
type Recommendation struct {
	Source SourceName `json:"source"`
	Reason string     `json:"reason"`
}

// AggregatedPrice merges every resolver's answer for one material.
// Sources are sorted ascending by price; BestPrice is the minimum among
// available sources; the range average excludes unavailable sources.
// Zero sources means the material could not be priced at all; callers
// must treat that as a gap, never as a zero cost.
type AggregatedPrice struct {
	MaterialName   string         `json:"material_name"`
	Category       string         `json:"category"`
	Unit           string         `json:"unit"`
	Sources        []PriceSource  `json:"sources"`
	BestPrice      float64        `json:"best_price"`
	Range          PriceRange     `json:"price_range"`
	Recommendation Recommendation `json:"recommendation"`
}

// Priced reports whether at least one available source was found.
func (a AggregatedPrice) Priced() bool {
	for _, s := range a.Sources {
		if s.Available {
			return true
		}
	}
	return false
}

// SourceByName returns the first source with the given name, or nil.
func (a AggregatedPrice) SourceByName(name SourceName) *PriceSource {
	for i := range a.Sources {
		if a.Sources[i].Source == name {
			return &a.Sources[i]
		}
	}
	return nil
}
