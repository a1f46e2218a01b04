// Package calc turns project dimensions and option choices into a bill of
// materials with estimated labor hours. Each project type (deck, kitchen,
// bathroom) supplies its own rule tables; the quantity arithmetic and list
// assembly are shared.
package calc

import (
	"fmt"
	"math"
	"sort"

	"github.com/piwi3910/BuildQuote/internal/model"
)

// Calculator computes the full bill of materials for one configured project.
// Implementations are pure: calling Calculate twice with the same inputs
// yields identical item lists, ids, quantities, and ordering.
type Calculator interface {
	Calculate() (model.MaterialList, error)
}

// UnitsNeeded converts a raw measured quantity (area, length, count) into
// purchasable units. The waste factor is applied before the ceiling, so the
// result is always >= ceil(measure/coverage): partial units round up because
// you cannot buy a fraction of a board.
func UnitsNeeded(measure, coverage, wasteFactor float64) (int, error) {
	if coverage <= 0 {
		return 0, fmt.Errorf("coverage per unit must be positive, got %.4f", coverage)
	}
	if measure <= 0 {
		return 0, nil
	}
	return int(math.Ceil(measure * (1 + wasteFactor) / coverage)), nil
}

// SpacedCount returns the number of evenly spaced members needed to span a
// distance at the given on-center spacing: ceil(span/spacing) + 1. The count
// never drops below 2: a structure always has at least its start and end
// supports, no matter how short the span.
func SpacedCount(span, spacing float64) (int, error) {
	if spacing <= 0 {
		return 0, fmt.Errorf("spacing must be positive, got %.4f", spacing)
	}
	if span <= 0 {
		return 2, nil
	}
	n := int(math.Ceil(span/spacing)) + 1
	if n < 2 {
		n = 2
	}
	return n, nil
}

// LumberLengthFt rounds a required length up to the next 2 ft increment,
// matching how dimensional lumber is sold.
func LumberLengthFt(ft float64) float64 {
	if ft <= 0 {
		return 2
	}
	return math.Ceil(ft/2) * 2
}

// listBuilder accumulates material items in insertion order, merging
// duplicates by ID and dropping zero quantities. Labor hours accrue from a
// per-category hours-per-unit table as items are added.
type listBuilder struct {
	items      []model.MaterialItem
	index      map[string]int
	laborTable map[model.Category]float64
	laborHours float64
}

func newListBuilder(laborTable map[model.Category]float64) *listBuilder {
	return &listBuilder{
		index:      make(map[string]int),
		laborTable: laborTable,
	}
}

// add appends an item, merging quantities with any earlier item of the same
// identity. Items with non-positive quantity are omitted entirely, never
// emitted as zero-quantity rows.
func (b *listBuilder) add(category model.Category, name string, quantity float64, unit string) {
	b.addWithHint(category, name, quantity, unit, 0)
}

func (b *listBuilder) addWithHint(category model.Category, name string, quantity float64, unit string, priceHint float64) {
	if quantity <= 0 {
		return
	}
	item := model.NewMaterialItem(category, name, quantity, unit)
	item.UnitPriceHint = priceHint

	b.laborHours += quantity * b.laborTable[category]

	if i, ok := b.index[item.ID]; ok {
		b.items[i].Quantity += quantity
		return
	}
	b.index[item.ID] = len(b.items)
	b.items = append(b.items, item)
}

// build sorts items into build-sequence category order (stable, preserving
// insertion order within a category) and applies the labor multiplier.
func (b *listBuilder) build(laborMultiplier float64) model.MaterialList {
	items := make([]model.MaterialItem, len(b.items))
	copy(items, b.items)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Category.Rank() < items[j].Category.Rank()
	})
	return model.MaterialList{
		Items:               items,
		EstimatedLaborHours: round2(b.laborHours * laborMultiplier),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// flooringCoverageSqFt returns the coverage of one box of the given
// flooring material. Tile comes in smaller boxes than plank products.
func flooringCoverageSqFt(f model.FlooringMaterial) float64 {
	if f == model.FlooringTile {
		return 12.0
	}
	return 20.0
}

// flooringWasteFactor returns the cut-off allowance for the given flooring.
// Tile layouts waste more than click-together planks.
func flooringWasteFactor(f model.FlooringMaterial) float64 {
	if f == model.FlooringTile {
		return 0.15
	}
	return 0.12
}

// flooringLabel is the display name fragment for each flooring material.
var flooringLabel = map[model.FlooringMaterial]string{
	model.FlooringVinylPlank: "vinyl plank",
	model.FlooringTile:       "porcelain tile",
	model.FlooringHardwood:   "hardwood",
	model.FlooringLaminate:   "laminate",
}

// underlaymentRollSqFt is the coverage of one roll of floor underlayment.
const underlaymentRollSqFt = 100.0

// addFlooring emits the flooring boxes and underlayment for a floor area.
func addFlooring(b *listBuilder, flooring model.FlooringMaterial, areaSqFt float64) error {
	boxes, err := UnitsNeeded(areaSqFt, flooringCoverageSqFt(flooring), flooringWasteFactor(flooring))
	if err != nil {
		return err
	}
	label := flooringLabel[flooring]
	b.add(model.CategoryFlooring, fmt.Sprintf("%s flooring, %.0f sq ft box", label, flooringCoverageSqFt(flooring)), float64(boxes), "box")

	rolls, err := UnitsNeeded(areaSqFt, underlaymentRollSqFt, 0)
	if err != nil {
		return err
	}
	b.add(model.CategoryFlooring, "floor underlayment, 100 sq ft roll", float64(rolls), "roll")
	return nil
}
