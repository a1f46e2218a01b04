// Package estimate combines a bill of materials with aggregated prices and
// a labor rate into a final priced estimate.
package estimate

import (
	"math"
	"time"

	"github.com/piwi3910/BuildQuote/internal/model"
)

// Assemble prices each material line at its aggregated best price and rolls
// up the totals. Prices are keyed by material name. A material with no
// available price goes to Unpriced and contributes nothing to the subtotal;
// pricing it at zero would silently understate the estimate.
//
// The returned Estimate is a complete snapshot: when any input changes the
// caller recomputes from scratch rather than patching fields.
func Assemble(list model.MaterialList, prices map[string]model.AggregatedPrice, laborRate float64) model.Estimate {
	est := model.Estimate{
		LaborHours: list.EstimatedLaborHours,
		LaborRate:  laborRate,
		CreatedAt:  time.Now().UTC(),
	}

	for _, item := range list.Items {
		agg, ok := prices[item.Name]
		if !ok || !agg.Priced() {
			est.Unpriced = append(est.Unpriced, item)
			continue
		}
		line := model.PricedItem{
			MaterialItem: item,
			UnitPrice:    agg.BestPrice,
			PriceSource:  agg.Recommendation.Source,
			LineTotal:    round2(item.Quantity * agg.BestPrice),
		}
		est.Lines = append(est.Lines, line)
		est.Subtotal += line.LineTotal
	}

	est.Subtotal = round2(est.Subtotal)
	est.LaborCost = round2(est.LaborHours * laborRate)
	est.Total = round2(est.Subtotal + est.LaborCost)
	return est
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
