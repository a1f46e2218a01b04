package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Category groups material line items by construction trade. Categories have
// a fixed rank matching the natural build sequence, so a bill of materials
// reads top-to-bottom in the order the work happens.
type Category string

const (
	CategoryDemolition    Category = "demolition"
	CategoryFraming       Category = "framing"
	CategoryConcrete      Category = "concrete"
	CategoryDecking       Category = "decking"
	CategoryFasteners     Category = "fasteners"
	CategoryStairs        Category = "stairs"
	CategoryRailing       Category = "railing"
	CategoryWalls         Category = "walls"
	CategoryWaterproofing Category = "waterproofing"
	CategoryCabinets      Category = "cabinets"
	CategoryCountertops   Category = "countertops"
	CategoryPlumbing      Category = "plumbing"
	CategoryElectrical    Category = "electrical"
	CategoryVentilation   Category = "ventilation"
	CategoryTile          Category = "tile"
	CategoryFlooring      Category = "flooring"
	CategoryFinishes      Category = "finishes"
)

// categoryRank is the build-sequence order. Lower rank comes first in a
// material list. Unknown categories sort last.
var categoryRank = map[Category]int{
	CategoryDemolition:    0,
	CategoryFraming:       1,
	CategoryConcrete:      2,
	CategoryDecking:       3,
	CategoryFasteners:     4,
	CategoryStairs:        5,
	CategoryRailing:       6,
	CategoryWalls:         7,
	CategoryWaterproofing: 8,
	CategoryCabinets:      9,
	CategoryCountertops:   10,
	CategoryPlumbing:      11,
	CategoryElectrical:    12,
	CategoryVentilation:   13,
	CategoryTile:          14,
	CategoryFlooring:      15,
	CategoryFinishes:      16,
}

// Rank returns the build-sequence position of the category.
func (c Category) Rank() int {
	if r, ok := categoryRank[c]; ok {
		return r
	}
	return len(categoryRank)
}

// materialNamespace seeds the deterministic material IDs. Fixed forever:
// changing it would change every ID and break price history joins.
var materialNamespace = uuid.MustParse("f3b7a9d4-52c1-4e8a-9c6f-8d0e14b2a6c7")

// MaterialID derives a stable ID from the material's identity. The same
// category/name pair always yields the same ID, which is what lets the
// pricing layer deduplicate and join line items across runs.
func MaterialID(category Category, name string) string {
	return uuid.NewSHA1(materialNamespace, []byte(string(category)+"/"+name)).String()[:8]
}

// MaterialItem is one purchasable line in a bill of materials.
type MaterialItem struct {
	ID            string   `json:"id"`
	Category      Category `json:"category"`
	Name          string   `json:"name"`
	Quantity      float64  `json:"quantity"`
	Unit          string   `json:"unit"`
	UnitPriceHint float64  `json:"unit_price_hint,omitempty"`
}

// NewMaterialItem builds an item with its content-derived ID.
func NewMaterialItem(category Category, name string, quantity float64, unit string) MaterialItem {
	return MaterialItem{
		ID:       MaterialID(category, name),
		Category: category,
		Name:     name,
		Quantity: quantity,
		Unit:     unit,
	}
}

func (m MaterialItem) String() string {
	return fmt.Sprintf("%s: %.4g %s %s", m.Category, m.Quantity, m.Unit, m.Name)
}

// MaterialList is the full output of one calculator run.
type MaterialList struct {
	Items               []MaterialItem `json:"items"`
	EstimatedLaborHours float64        `json:"estimated_labor_hours"`
}

// TotalQuantity sums quantities across all items in the given category.
func (l MaterialList) TotalQuantity(category Category) float64 {
	var total float64
	for _, it := range l.Items {
		if it.Category == category {
			total += it.Quantity
		}
	}
	return total
}

// ItemsInCategory returns the items belonging to the given category.
func (l MaterialList) ItemsInCategory(category Category) []MaterialItem {
	var items []MaterialItem
	for _, it := range l.Items {
		if it.Category == category {
			items = append(items, it)
		}
	}
	return items
}

// FindItem returns the first item with the given name, or nil.
func (l MaterialList) FindItem(name string) *MaterialItem {
	for i := range l.Items {
		if l.Items[i].Name == name {
			return &l.Items[i]
		}
	}
	return nil
}
