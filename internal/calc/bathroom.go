package calc

import (
	"fmt"

	"github.com/piwi3910/BuildQuote/internal/model"
)

// Bathroom rule table. Wet-wall areas come from standard fixture footprints:
// a shower surround wraps three 3 ft walls, a tub surround wraps a 5 ft tub
// and its two end walls.
const (
	showerSurroundWallFt = 3 * 3.0 // three 3 ft walls
	tubSurroundWallFt    = 5.0 + 2*2.5

	backerSheetSqFt   = 15.0 // 3x5 cement board sheet
	backerWasteFactor = 0.10
	membraneRollSqFt  = 100.0

	wallTileBoxSqFt     = 12.0
	wallTileWasteFactor = 0.15

	vanityPricePerIn = 9.5
)

// bathroomLaborHours is the hours-per-unit table for bathroom categories.
var bathroomLaborHours = map[model.Category]float64{
	model.CategoryDemolition:    6.0,
	model.CategoryWalls:         0.5,
	model.CategoryWaterproofing: 1.0,
	model.CategoryTile:          1.25,
	model.CategoryPlumbing:      2.0,
	model.CategoryElectrical:    1.0,
	model.CategoryVentilation:   2.5,
	model.CategoryFlooring:      0.4,
	model.CategoryFinishes:      1.0,
}

// BathroomCalculator computes the bill of materials for a bathroom remodel.
type BathroomCalculator struct {
	dims model.BathroomDimensions
	opts model.BathroomOptions
}

func NewBathroom(dims model.BathroomDimensions, opts model.BathroomOptions) *BathroomCalculator {
	return &BathroomCalculator{dims: dims, opts: opts}
}

// wetWallArea returns the square footage of wall that needs a waterproof
// finish, summed across the fixtures present.
func (c *BathroomCalculator) wetWallArea() float64 {
	var wallFt float64
	if c.dims.HasShower {
		wallFt += showerSurroundWallFt
	}
	if c.dims.HasTub {
		wallFt += tubSurroundWallFt
	}
	return wallFt * c.dims.CeilingFt
}

// Calculate derives every purchasable line item for the configured bathroom.
func (c *BathroomCalculator) Calculate() (model.MaterialList, error) {
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

	b := newListBuilder(bathroomLaborHours)
	wetArea := c.wetWallArea()

	if c.opts.Scope == model.ScopeFull {
		b.add(model.CategoryDemolition, "dumpster rental, 10 yd", 1, "each")
		b.add(model.CategoryDemolition, "contractor debris bags, 20 ct", 1, "pack")
	}

	// Wet-wall build-up only applies to tiled surrounds; fiberglass panels
	// mount directly over the studs.
	if wetArea > 0 {
		switch c.opts.WallFinish {
		case model.WallTile:
			sheets, err := UnitsNeeded(wetArea, backerSheetSqFt, backerWasteFactor)
			if err != nil {
				return model.MaterialList{}, err
			}
			b.add(model.CategoryWalls, "cement backer board, 3x5 sheet", float64(sheets), "sheet")
			b.add(model.CategoryWalls, "backer board screws, 1 lb box", 1, "box")
			b.add(model.CategoryWalls, "backer seam tape roll", 1, "roll")

			rolls, err := UnitsNeeded(wetArea, membraneRollSqFt, 0)
			if err != nil {
				return model.MaterialList{}, err
			}
			b.add(model.CategoryWaterproofing, "waterproofing membrane, 100 sq ft roll", float64(rolls), "roll")

			boxes, err := UnitsNeeded(wetArea, wallTileBoxSqFt, wallTileWasteFactor)
			if err != nil {
				return model.MaterialList{}, err
			}
			b.add(model.CategoryTile, "wall tile, 12 sq ft box", float64(boxes), "box")
			thinset, err := UnitsNeeded(wetArea, thinsetBagCoverageSqFt, 0)
			if err != nil {
				return model.MaterialList{}, err
			}
			b.add(model.CategoryTile, "thinset mortar, 50 lb bag", float64(thinset), "bag")
			grout, err := UnitsNeeded(wetArea, groutBoxCoverageSqFt, 0)
			if err != nil {
				return model.MaterialList{}, err
			}
			b.add(model.CategoryTile, "grout, 10 lb box", float64(grout), "box")

		case model.WallFiberglassPanel:
			kits := 0
			if c.dims.HasShower {
				kits++
			}
			if c.dims.HasTub {
				kits++
			}
			b.add(model.CategoryWalls, "fiberglass surround kit", float64(kits), "each")
		}
	}

	// Fixtures. The vanity hint scales with width and the quality tier.
	b.addWithHint(model.CategoryPlumbing, fmt.Sprintf("vanity cabinet, %.0f in", c.opts.VanityWidthIn),
		1, "each", round2(c.opts.VanityWidthIn*vanityPricePerIn*matMult))
	b.add(model.CategoryPlumbing, "vanity faucet", 1, "each")
	b.add(model.CategoryPlumbing, "toilet, elongated", 1, "each")
	b.add(model.CategoryPlumbing, "supply line kit", 1, "each")
	if c.dims.HasShower {
		b.add(model.CategoryPlumbing, "shower valve and trim", 1, "each")
		b.add(model.CategoryPlumbing, "shower pan, 36 in", 1, "each")
	}
	if c.dims.HasTub {
		b.add(model.CategoryPlumbing, "alcove tub, 60 in", 1, "each")
		b.add(model.CategoryPlumbing, "tub filler and drain kit", 1, "each")
	}

	b.add(model.CategoryElectrical, "GFCI outlet, 20A", float64(c.opts.GFCIOutlets), "each")
	b.add(model.CategoryElectrical, "vanity light fixture", 1, "each")

	if c.dims.HasVentilation {
		b.add(model.CategoryVentilation, "exhaust fan, 80 CFM", 1, "each")
		b.add(model.CategoryVentilation, "vent duct kit, 4 in", 1, "each")
	}

	if err := addFlooring(b, c.opts.Flooring, c.dims.FloorArea()); err != nil {
		return model.MaterialList{}, err
	}

	// Finishes on the walls that stay painted.
	paintable := c.dims.WallArea() - wetArea
	gallons, err := UnitsNeeded(paintable, paintCoverageSqFt, 0)
	if err != nil {
		return model.MaterialList{}, err
	}
	if gallons < 1 {
		gallons = 1
	}
	b.add(model.CategoryFinishes, "bathroom paint, 1 gal", float64(gallons), "gal")
	b.add(model.CategoryFinishes, "mirror, framed", 1, "each")
	b.add(model.CategoryFinishes, "towel bar set", 1, "set")
	if c.dims.HasWindow {
		b.add(model.CategoryFinishes, "window trim kit", 1, "each")
	}

	return b.build(laborMult), nil
}
