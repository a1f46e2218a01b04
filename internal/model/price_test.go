package model

import "testing"

func TestParseConfidence(t *testing.T) {
	cases := []struct {
		in   string
		want Confidence
	}{
		{"high", ConfidenceHigh},
		{"medium", ConfidenceMedium},
		{"low", ConfidenceLow},
		{"", ConfidenceMedium},
		{"very high", ConfidenceMedium},
		{"HIGH", ConfidenceMedium}, // levels are case-sensitive wire values
	}
	for _, tc := range cases {
		if got := ParseConfidence(tc.in); got != tc.want {
			t.Errorf("ParseConfidence(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAggregatedPricePriced(t *testing.T) {
	var agg AggregatedPrice
	if agg.Priced() {
		t.Error("empty aggregation must not count as priced")
	}

	agg.Sources = []PriceSource{{Price: 10, Available: false}}
	if agg.Priced() {
		t.Error("unavailable sources must not count as priced")
	}

	agg.Sources = append(agg.Sources, PriceSource{Price: 12, Available: true})
	if !agg.Priced() {
		t.Error("one available source is enough to be priced")
	}
}

func TestAggregatedPriceSourceByName(t *testing.T) {
	agg := AggregatedPrice{Sources: []PriceSource{
		{Source: SourceCached, Price: 9},
		{Source: SourceUserCustom, Price: 11},
	}}

	if src := agg.SourceByName(SourceUserCustom); src == nil || src.Price != 11 {
		t.Errorf("SourceByName(user_custom) = %+v, want price 11", src)
	}
	if src := agg.SourceByName(SourceSupplierAPI); src != nil {
		t.Errorf("SourceByName for a missing source must return nil, got %+v", src)
	}
}

func TestEstimateFullyPriced(t *testing.T) {
	est := Estimate{}
	if !est.FullyPriced() {
		t.Error("an estimate with no gaps is fully priced")
	}
	est.Unpriced = []MaterialItem{NewMaterialItem(CategoryFinishes, "towel bar set", 1, "set")}
	if est.FullyPriced() {
		t.Error("an estimate with unpriced materials is not fully priced")
	}
}
