package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/BuildQuote/internal/model"
)

func pricedAt(name string, price float64, source model.SourceName) model.AggregatedPrice {
	return model.AggregatedPrice{
		MaterialName: name,
		BestPrice:    price,
		Sources: []model.PriceSource{
			{Source: source, Price: price, Available: true},
		},
		Recommendation: model.Recommendation{Source: source},
	}
}

func TestAssemble_Totals(t *testing.T) {
	list := model.MaterialList{
		Items: []model.MaterialItem{
			model.NewMaterialItem(model.CategoryFraming, "2x8 pressure-treated joist, 12 ft", 13, "each"),
			model.NewMaterialItem(model.CategoryFasteners, "joist hanger, 2x8", 26, "each"),
		},
		EstimatedLaborHours: 20,
	}
	prices := map[string]model.AggregatedPrice{
		"2x8 pressure-treated joist, 12 ft": pricedAt("2x8 pressure-treated joist, 12 ft", 14.50, model.SourceUserCustom),
		"joist hanger, 2x8":                 pricedAt("joist hanger, 2x8", 1.25, model.SourceCached),
	}

	est := Assemble(list, prices, 55)

	require.Len(t, est.Lines, 2)
	assert.Empty(t, est.Unpriced)
	assert.True(t, est.FullyPriced())

	assert.Equal(t, 188.50, est.Lines[0].LineTotal) // 13 x 14.50
	assert.Equal(t, model.SourceUserCustom, est.Lines[0].PriceSource)
	assert.Equal(t, 32.50, est.Lines[1].LineTotal) // 26 x 1.25

	assert.Equal(t, 221.0, est.Subtotal)
	assert.Equal(t, 1100.0, est.LaborCost) // 20 h x $55
	assert.Equal(t, 1321.0, est.Total)
	assert.False(t, est.CreatedAt.IsZero())
}

func TestAssemble_UnpricedExcludedFromSubtotal(t *testing.T) {
	list := model.MaterialList{
		Items: []model.MaterialItem{
			model.NewMaterialItem(model.CategoryDecking, "pressure-treated deck board, 16 ft", 29, "each"),
			model.NewMaterialItem(model.CategoryFasteners, "post anchor bracket", 8, "each"),
		},
		EstimatedLaborHours: 10,
	}
	prices := map[string]model.AggregatedPrice{
		"pressure-treated deck board, 16 ft": pricedAt("pressure-treated deck board, 16 ft", 22, model.SourceAIEstimate),
		// no entry at all for the anchors
	}

	est := Assemble(list, prices, 50)

	require.Len(t, est.Lines, 1)
	require.Len(t, est.Unpriced, 1)
	assert.Equal(t, "post anchor bracket", est.Unpriced[0].Name)
	assert.False(t, est.FullyPriced())

	// The gap is visible, never priced at zero.
	assert.Equal(t, 638.0, est.Subtotal)
	assert.Equal(t, 1138.0, est.Total)
}

func TestAssemble_EmptyAggregationIsGap(t *testing.T) {
	list := model.MaterialList{
		Items: []model.MaterialItem{
			model.NewMaterialItem(model.CategoryFinishes, "towel bar set", 1, "set"),
		},
	}
	// An aggregation exists but found no available sources.
	prices := map[string]model.AggregatedPrice{
		"towel bar set": {MaterialName: "towel bar set"},
	}

	est := Assemble(list, prices, 40)

	assert.Empty(t, est.Lines)
	require.Len(t, est.Unpriced, 1)
	assert.Zero(t, est.Subtotal)
}

func TestAssemble_RoundsToCents(t *testing.T) {
	list := model.MaterialList{
		Items: []model.MaterialItem{
			model.NewMaterialItem(model.CategoryTile, "grout, 10 lb box", 3, "box"),
		},
		EstimatedLaborHours: 1.5,
	}
	prices := map[string]model.AggregatedPrice{
		"grout, 10 lb box": pricedAt("grout, 10 lb box", 10.333, model.SourceCached),
	}

	est := Assemble(list, prices, 33.33)

	assert.Equal(t, 31.0, est.Lines[0].LineTotal) // 3 x 10.333 = 30.999
	assert.Equal(t, 50.0, est.LaborCost)          // 1.5 x 33.33 = 49.995
	assert.Equal(t, 81.0, est.Total)
}
