package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/BuildQuote/internal/model"
)

func basicBathroomDims() model.BathroomDimensions {
	return model.BathroomDimensions{
		LengthFt:  8,
		WidthFt:   6,
		CeilingFt: 8,
		HasShower: true,
	}
}

func standardBathroomOpts() model.BathroomOptions {
	return model.BathroomOptions{
		Scope:         model.ScopeFull,
		WallFinish:    model.WallTile,
		Flooring:      model.FlooringTile,
		VanityWidthIn: 36,
		GFCIOutlets:   2,
		Quality:       model.QualityStandard,
	}
}

func TestBathroomCalculate_EndToEndScenario(t *testing.T) {
	// 8 x 6 bath with shower and tub: wet walls are 9 ft + 10 ft of run
	// at an 8 ft ceiling, so 152 sq ft of tiled surround.
	dims := basicBathroomDims()
	dims.HasTub = true

	list, err := NewBathroom(dims, standardBathroomOpts()).Calculate()
	require.NoError(t, err)

	backer := list.FindItem("cement backer board, 3x5 sheet")
	require.NotNil(t, backer)
	assert.Equal(t, 12.0, backer.Quantity) // ceil(152 * 1.1 / 15)

	membrane := list.FindItem("waterproofing membrane, 100 sq ft roll")
	require.NotNil(t, membrane)
	assert.Equal(t, 2.0, membrane.Quantity)

	tile := list.FindItem("wall tile, 12 sq ft box")
	require.NotNil(t, tile)
	assert.Equal(t, 15.0, tile.Quantity) // ceil(152 * 1.15 / 12)

	vanity := list.FindItem("vanity cabinet, 36 in")
	require.NotNil(t, vanity)
	assert.Equal(t, 342.0, vanity.UnitPriceHint) // 36 in x $9.50/in

	assert.NotNil(t, list.FindItem("shower valve and trim"))
	assert.NotNil(t, list.FindItem("shower pan, 36 in"))
	assert.NotNil(t, list.FindItem("alcove tub, 60 in"))
	assert.NotNil(t, list.FindItem("toilet, elongated"))

	floor := list.FindItem("porcelain tile flooring, 12 sq ft box")
	require.NotNil(t, floor)
	assert.Equal(t, 5.0, floor.Quantity) // ceil(48 * 1.15 / 12)

	assert.Greater(t, list.EstimatedLaborHours, 0.0)
}

func TestBathroomCalculate_FiberglassSkipsTileStack(t *testing.T) {
	dims := basicBathroomDims()
	dims.HasTub = true
	opts := standardBathroomOpts()
	opts.WallFinish = model.WallFiberglassPanel
	opts.Flooring = model.FlooringVinylPlank

	list, err := NewBathroom(dims, opts).Calculate()
	require.NoError(t, err)

	kits := list.FindItem("fiberglass surround kit")
	require.NotNil(t, kits)
	assert.Equal(t, 2.0, kits.Quantity, "one kit per wet fixture")

	assert.Empty(t, list.ItemsInCategory(model.CategoryTile))
	assert.Empty(t, list.ItemsInCategory(model.CategoryWaterproofing))
	assert.Nil(t, list.FindItem("cement backer board, 3x5 sheet"))
}

func TestBathroomCalculate_NoWetFixtures(t *testing.T) {
	dims := basicBathroomDims()
	dims.HasShower = false

	list, err := NewBathroom(dims, standardBathroomOpts()).Calculate()
	require.NoError(t, err)

	assert.Empty(t, list.ItemsInCategory(model.CategoryWaterproofing))
	assert.Empty(t, list.ItemsInCategory(model.CategoryTile), "wall tile only wraps fixtures")
	assert.Nil(t, list.FindItem("shower valve and trim"))
	assert.NotNil(t, list.FindItem("toilet, elongated"), "dry fixtures remain")
}

func TestBathroomCalculate_PaintNeverZero(t *testing.T) {
	// Tiny room where the surrounds cover more wall than exists: paint
	// still bottoms out at one gallon for touch-up.
	dims := model.BathroomDimensions{LengthFt: 3, WidthFt: 3, CeilingFt: 8, HasShower: true, HasTub: true}

	list, err := NewBathroom(dims, standardBathroomOpts()).Calculate()
	require.NoError(t, err)

	paint := list.FindItem("bathroom paint, 1 gal")
	require.NotNil(t, paint)
	assert.Equal(t, 1.0, paint.Quantity)
}

func TestBathroomCalculate_CosmeticSkipsDemolition(t *testing.T) {
	opts := standardBathroomOpts()
	opts.Scope = model.ScopeCosmetic

	list, err := NewBathroom(basicBathroomDims(), opts).Calculate()
	require.NoError(t, err)
	assert.Empty(t, list.ItemsInCategory(model.CategoryDemolition))
}

func TestBathroomCalculate_VentilationAndWindow(t *testing.T) {
	list, err := NewBathroom(basicBathroomDims(), standardBathroomOpts()).Calculate()
	require.NoError(t, err)
	assert.Nil(t, list.FindItem("exhaust fan, 80 CFM"))
	assert.Nil(t, list.FindItem("window trim kit"))

	dims := basicBathroomDims()
	dims.HasVentilation = true
	dims.HasWindow = true
	list, err = NewBathroom(dims, standardBathroomOpts()).Calculate()
	require.NoError(t, err)
	assert.NotNil(t, list.FindItem("exhaust fan, 80 CFM"))
	assert.NotNil(t, list.FindItem("vent duct kit, 4 in"))
	assert.NotNil(t, list.FindItem("window trim kit"))
}

func TestBathroomCalculate_Deterministic(t *testing.T) {
	dims := basicBathroomDims()
	dims.HasTub = true
	dims.HasVentilation = true

	first, err := NewBathroom(dims, standardBathroomOpts()).Calculate()
	require.NoError(t, err)
	second, err := NewBathroom(dims, standardBathroomOpts()).Calculate()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBathroomCalculate_InvalidInputsFail(t *testing.T) {
	opts := standardBathroomOpts()
	opts.VanityWidthIn = 18
	_, err := NewBathroom(basicBathroomDims(), opts).Calculate()
	require.Error(t, err, "vanity narrower than the minimum must be rejected")

	opts = standardBathroomOpts()
	opts.WallFinish = "wallpaper"
	_, err = NewBathroom(basicBathroomDims(), opts).Calculate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown wall finish")

	dims := basicBathroomDims()
	dims.WidthFt = -1
	_, err = NewBathroom(dims, standardBathroomOpts()).Calculate()
	require.Error(t, err)
}

func TestBathroomCalculate_QualityScalesVanityHint(t *testing.T) {
	standard, err := NewBathroom(basicBathroomDims(), standardBathroomOpts()).Calculate()
	require.NoError(t, err)

	opts := standardBathroomOpts()
	opts.Quality = model.QualityPremium
	premium, err := NewBathroom(basicBathroomDims(), opts).Calculate()
	require.NoError(t, err)

	stdVanity := standard.FindItem("vanity cabinet, 36 in")
	premVanity := premium.FindItem("vanity cabinet, 36 in")
	require.NotNil(t, stdVanity)
	require.NotNil(t, premVanity)
	assert.Greater(t, premVanity.UnitPriceHint, stdVanity.UnitPriceHint)
	assert.Equal(t, stdVanity.Quantity, premVanity.Quantity)
}
