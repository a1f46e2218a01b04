package calc

import (
	"fmt"

	"github.com/piwi3910/BuildQuote/internal/model"
)

// Kitchen rule table.
const (
	baseCabinetWidthFt  = 3.0
	upperCabinetWidthFt = 2.5
	pullsPerCabinet     = 2

	countertopDepthFt     = 25.0 / 12.0 // standard 25 in counter depth
	countertopWasteFactor = 0.08

	backsplashHeightFt     = 1.5
	backsplashBoxSqFt      = 10.0
	backsplashWasteFactor  = 0.10
	thinsetBagCoverageSqFt = 50.0
	groutBoxCoverageSqFt   = 100.0

	drywallSheetSqFt   = 32.0 // 4x8 sheet
	drywallWasteFactor = 0.10
	jointCompoundSqFt  = 400.0

	paintCoverageSqFt = 350.0
)

// kitchenLaborHours is the hours-per-unit table for kitchen categories.
var kitchenLaborHours = map[model.Category]float64{
	model.CategoryDemolition:  8.0,
	model.CategoryWalls:       0.4,
	model.CategoryCabinets:    1.5,
	model.CategoryCountertops: 0.12,
	model.CategoryPlumbing:    1.5,
	model.CategoryElectrical:  1.0,
	model.CategoryVentilation: 2.5,
	model.CategoryTile:        1.0,
	model.CategoryFlooring:    0.35,
	model.CategoryFinishes:    1.25,
}

var cabinetLabel = map[model.CabinetLine]string{
	model.CabinetStock:      "stock",
	model.CabinetSemiCustom: "semi-custom",
	model.CabinetCustom:     "custom",
}

// cabinetBasePrice is the per-cabinet price hint before the quality multiplier.
var cabinetBasePrice = map[model.CabinetLine]float64{
	model.CabinetStock:      180.0,
	model.CabinetSemiCustom: 340.0,
	model.CabinetCustom:     650.0,
}

var countertopLabel = map[model.CountertopMaterial]string{
	model.CountertopLaminate:     "laminate",
	model.CountertopButcherBlock: "butcher block",
	model.CountertopQuartz:       "quartz",
	model.CountertopGranite:      "granite",
}

// countertopBasePrice is the per-square-foot hint before the quality multiplier.
var countertopBasePrice = map[model.CountertopMaterial]float64{
	model.CountertopLaminate:     28.0,
	model.CountertopButcherBlock: 45.0,
	model.CountertopQuartz:       75.0,
	model.CountertopGranite:      85.0,
}

// KitchenCalculator computes the bill of materials for a kitchen remodel.
type KitchenCalculator struct {
	dims model.KitchenDimensions
	opts model.KitchenOptions
}

func NewKitchen(dims model.KitchenDimensions, opts model.KitchenOptions) *KitchenCalculator {
	return &KitchenCalculator{dims: dims, opts: opts}
}

// Calculate derives every purchasable line item for the configured kitchen.
func (c *KitchenCalculator) Calculate() (model.MaterialList, error) {
	if err := c.dims.Validate(); err != nil {
		return model.MaterialList{}, err
	}
	if err := c.opts.Validate(); err != nil {
		return model.MaterialList{}, err
	}
	matMult, err := c.opts.Quality.MaterialMultiplier()
	if err != nil {
		return model.MaterialList{}, err
	}
	laborMult, err := c.opts.Quality.LaborMultiplier()
	if err != nil {
		return model.MaterialList{}, err
	}

	b := newListBuilder(kitchenLaborHours)

	// Full remodels start by gutting the room and rebuilding the walls.
	if c.opts.Scope == model.ScopeFull {
		b.add(model.CategoryDemolition, "dumpster rental, 10 yd", 1, "each")
		b.add(model.CategoryDemolition, "floor protection roll", 1, "roll")

		sheets, err := UnitsNeeded(c.dims.WallArea(), drywallSheetSqFt, drywallWasteFactor)
		if err != nil {
			return model.MaterialList{}, err
		}
		b.add(model.CategoryWalls, "drywall, 4x8 sheet", float64(sheets), "sheet")
		buckets, err := UnitsNeeded(c.dims.WallArea(), jointCompoundSqFt, 0)
		if err != nil {
			return model.MaterialList{}, err
		}
		b.add(model.CategoryWalls, "joint compound, 4.5 gal bucket", float64(buckets), "bucket")
	}

	// Cabinets from wall-run lengths.
	line := cabinetLabel[c.opts.CabinetLine]
	cabinetHint := round2(cabinetBasePrice[c.opts.CabinetLine] * matMult)

	baseCabs, err := UnitsNeeded(c.dims.BaseRunFt, baseCabinetWidthFt, 0)
	if err != nil {
		return model.MaterialList{}, err
	}
	b.addWithHint(model.CategoryCabinets, fmt.Sprintf("%s base cabinet, 36 in", line), float64(baseCabs), "each", cabinetHint)

	upperCabs, err := UnitsNeeded(c.dims.UpperRunFt, upperCabinetWidthFt, 0)
	if err != nil {
		return model.MaterialList{}, err
	}
	b.addWithHint(model.CategoryCabinets, fmt.Sprintf("%s wall cabinet, 30 in", line), float64(upperCabs), "each", cabinetHint)

	islandRunFt := 0.0
	islandCabs := 0
	if c.dims.HasIsland {
		islandRunFt = c.dims.IslandLengthFt
		islandCabs, err = UnitsNeeded(islandRunFt, baseCabinetWidthFt, 0)
		if err != nil {
			return model.MaterialList{}, err
		}
		b.addWithHint(model.CategoryCabinets, fmt.Sprintf("%s island base cabinet, 36 in", line), float64(islandCabs), "each", cabinetHint)
	}
	b.add(model.CategoryCabinets, "cabinet pull", float64((baseCabs+upperCabs+islandCabs)*pullsPerCabinet), "each")

	// Countertops over every base run, in square feet.
	counterArea := (c.dims.BaseRunFt + islandRunFt) * countertopDepthFt
	counterSqFt, err := UnitsNeeded(counterArea, 1, countertopWasteFactor)
	if err != nil {
		return model.MaterialList{}, err
	}
	b.addWithHint(model.CategoryCountertops,
		fmt.Sprintf("%s countertop", countertopLabel[c.opts.Countertop]),
		float64(counterSqFt), "sq ft", round2(countertopBasePrice[c.opts.Countertop]*matMult))

	// Fixtures and rough-in.
	b.add(model.CategoryPlumbing, "undermount kitchen sink", 1, "each")
	b.add(model.CategoryPlumbing, "kitchen faucet", 1, "each")
	b.add(model.CategoryPlumbing, "sink supply and drain kit", 1, "each")

	b.add(model.CategoryElectrical, "GFCI outlet, 20A", float64(c.opts.GFCIOutlets), "each")

	if c.dims.HasVentilation {
		b.add(model.CategoryVentilation, "range hood, 30 in", 1, "each")
		b.add(model.CategoryVentilation, "hood duct kit, 6 in", 1, "each")
	}

	if c.opts.Backsplash {
		splashArea := c.dims.BaseRunFt * backsplashHeightFt
		boxes, err := UnitsNeeded(splashArea, backsplashBoxSqFt, backsplashWasteFactor)
		if err != nil {
			return model.MaterialList{}, err
		}
		b.add(model.CategoryTile, "backsplash tile, 10 sq ft box", float64(boxes), "box")
		thinset, err := UnitsNeeded(splashArea, thinsetBagCoverageSqFt, 0)
		if err != nil {
			return model.MaterialList{}, err
		}
		b.add(model.CategoryTile, "thinset mortar, 50 lb bag", float64(thinset), "bag")
		grout, err := UnitsNeeded(splashArea, groutBoxCoverageSqFt, 0)
		if err != nil {
			return model.MaterialList{}, err
		}
		b.add(model.CategoryTile, "grout, 10 lb box", float64(grout), "box")
	}

	if err := addFlooring(b, c.opts.Flooring, c.dims.FloorArea()); err != nil {
		return model.MaterialList{}, err
	}

	// Finishes.
	gallons, err := UnitsNeeded(c.dims.WallArea(), paintCoverageSqFt, 0)
	if err != nil {
		return model.MaterialList{}, err
	}
	b.add(model.CategoryFinishes, "interior paint, 1 gal", float64(gallons), "gal")
	if c.dims.HasWindow {
		b.add(model.CategoryFinishes, "window casing kit", 1, "each")
	}

	return b.build(laborMult), nil
}
