package model

import "time"

// PricedItem is one material line with its resolved unit price.
type PricedItem struct {
	MaterialItem
	UnitPrice   float64    `json:"unit_price"`
	PriceSource SourceName `json:"price_source"`
	LineTotal   float64    `json:"line_total"`
}

// Estimate is the final priced output for a project. It is built once per
// calculation and replaced wholesale when any input changes; nothing
// updates an Estimate in place.
type Estimate struct {
	Lines []PricedItem `json:"lines"`

	// Unpriced lists materials with no available price source. They are
	// excluded from the subtotal so the caller can warn rather than show
	// a silently understated number.
	Unpriced []MaterialItem `json:"unpriced,omitempty"`

	Subtotal   float64   `json:"subtotal"`
	LaborHours float64   `json:"labor_hours"`
	LaborRate  float64   `json:"labor_rate"`
	LaborCost  float64   `json:"labor_cost"`
	Total      float64   `json:"total"`
	CreatedAt  time.Time `json:"created_at"`
}

// FullyPriced reports whether every material found a price.
func (e Estimate) FullyPriced() bool {
	return len(e.Unpriced) == 0
}
