package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/BuildQuote/internal/model"
)

func basicKitchenDims() model.KitchenDimensions {
	return model.KitchenDimensions{
		LengthFt:   14,
		WidthFt:    12,
		CeilingFt:  8,
		BaseRunFt:  15,
		UpperRunFt: 10,
	}
}

func standardKitchenOpts() model.KitchenOptions {
	return model.KitchenOptions{
		Scope:       model.ScopeFull,
		CabinetLine: model.CabinetStock,
		Countertop:  model.CountertopQuartz,
		Flooring:    model.FlooringVinylPlank,
		Backsplash:  true,
		GFCIOutlets: 3,
		Quality:     model.QualityStandard,
	}
}

func TestKitchenCalculate_EndToEndScenario(t *testing.T) {
	// 14 x 12 kitchen, 8 ft ceiling, 15 ft base run, 10 ft upper run.
	list, err := NewKitchen(basicKitchenDims(), standardKitchenOpts()).Calculate()
	require.NoError(t, err)

	base := list.FindItem("stock base cabinet, 36 in")
	require.NotNil(t, base)
	assert.Equal(t, 5.0, base.Quantity) // ceil(15 / 3)

	upper := list.FindItem("stock wall cabinet, 30 in")
	require.NotNil(t, upper)
	assert.Equal(t, 4.0, upper.Quantity) // ceil(10 / 2.5)

	pulls := list.FindItem("cabinet pull")
	require.NotNil(t, pulls)
	assert.Equal(t, 18.0, pulls.Quantity)

	// 15 ft run x 25 in depth, 8% waste: ceil(31.25 * 1.08) = 34 sq ft.
	counter := list.FindItem("quartz countertop")
	require.NotNil(t, counter)
	assert.Equal(t, 34.0, counter.Quantity)
	assert.Equal(t, "sq ft", counter.Unit)

	// 416 sq ft of wall at 32 sq ft per sheet with 10% waste.
	drywall := list.FindItem("drywall, 4x8 sheet")
	require.NotNil(t, drywall)
	assert.Equal(t, 15.0, drywall.Quantity)

	gfci := list.FindItem("GFCI outlet, 20A")
	require.NotNil(t, gfci)
	assert.Equal(t, 3.0, gfci.Quantity)

	floor := list.FindItem("vinyl plank flooring, 20 sq ft box")
	require.NotNil(t, floor)
	assert.Equal(t, 10.0, floor.Quantity) // ceil(168 * 1.12 / 20)

	assert.NotNil(t, list.FindItem("undermount kitchen sink"))
	assert.Greater(t, list.EstimatedLaborHours, 0.0)
}

func TestKitchenCalculate_IslandAddsRun(t *testing.T) {
	dims := basicKitchenDims()
	dims.HasIsland = true
	dims.IslandLengthFt = 6

	list, err := NewKitchen(dims, standardKitchenOpts()).Calculate()
	require.NoError(t, err)

	island := list.FindItem("stock island base cabinet, 36 in")
	require.NotNil(t, island)
	assert.Equal(t, 2.0, island.Quantity)

	// Pulls count the island cabinets too: (5 + 4 + 2) x 2.
	pulls := list.FindItem("cabinet pull")
	require.NotNil(t, pulls)
	assert.Equal(t, 22.0, pulls.Quantity)

	// Countertop grows with the island run: ceil((15+6) * 25/12 * 1.08) = 48.
	counter := list.FindItem("quartz countertop")
	require.NotNil(t, counter)
	assert.Equal(t, 48.0, counter.Quantity)
}

func TestKitchenCalculate_CosmeticSkipsDemolition(t *testing.T) {
	opts := standardKitchenOpts()
	opts.Scope = model.ScopeCosmetic

	list, err := NewKitchen(basicKitchenDims(), opts).Calculate()
	require.NoError(t, err)

	assert.Empty(t, list.ItemsInCategory(model.CategoryDemolition))
	assert.Empty(t, list.ItemsInCategory(model.CategoryWalls))
	assert.NotNil(t, list.FindItem("stock base cabinet, 36 in"), "cosmetic scope still installs cabinets")
}

func TestKitchenCalculate_ConditionalItems(t *testing.T) {
	dims := basicKitchenDims()
	opts := standardKitchenOpts()
	opts.Backsplash = false
	opts.GFCIOutlets = 0

	list, err := NewKitchen(dims, opts).Calculate()
	require.NoError(t, err)

	assert.Empty(t, list.ItemsInCategory(model.CategoryTile), "no backsplash means no tile items")
	assert.Nil(t, list.FindItem("GFCI outlet, 20A"), "zero-count items are omitted, not emitted as zero rows")
	assert.Nil(t, list.FindItem("range hood, 30 in"))
	assert.Nil(t, list.FindItem("window casing kit"))

	dims.HasVentilation = true
	dims.HasWindow = true
	list, err = NewKitchen(dims, opts).Calculate()
	require.NoError(t, err)
	assert.NotNil(t, list.FindItem("range hood, 30 in"))
	assert.NotNil(t, list.FindItem("hood duct kit, 6 in"))
	assert.NotNil(t, list.FindItem("window casing kit"))
}

func TestKitchenCalculate_Deterministic(t *testing.T) {
	dims := basicKitchenDims()
	dims.HasIsland = true
	dims.IslandLengthFt = 5
	dims.HasVentilation = true

	first, err := NewKitchen(dims, standardKitchenOpts()).Calculate()
	require.NoError(t, err)
	second, err := NewKitchen(dims, standardKitchenOpts()).Calculate()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestKitchenCalculate_QualityScalesHints(t *testing.T) {
	standard, err := NewKitchen(basicKitchenDims(), standardKitchenOpts()).Calculate()
	require.NoError(t, err)

	opts := standardKitchenOpts()
	opts.Quality = model.QualityEconomy
	economy, err := NewKitchen(basicKitchenDims(), opts).Calculate()
	require.NoError(t, err)

	stdCab := standard.FindItem("stock base cabinet, 36 in")
	ecoCab := economy.FindItem("stock base cabinet, 36 in")
	require.NotNil(t, stdCab)
	require.NotNil(t, ecoCab)
	assert.Equal(t, stdCab.Quantity, ecoCab.Quantity)
	assert.Less(t, ecoCab.UnitPriceHint, stdCab.UnitPriceHint)
	assert.Less(t, economy.EstimatedLaborHours, standard.EstimatedLaborHours)
}

func TestKitchenCalculate_InvalidInputsFail(t *testing.T) {
	dims := basicKitchenDims()
	dims.CeilingFt = 0
	_, err := NewKitchen(dims, standardKitchenOpts()).Calculate()
	require.Error(t, err)

	dims = basicKitchenDims()
	dims.HasIsland = true // no island length
	_, err = NewKitchen(dims, standardKitchenOpts()).Calculate()
	require.Error(t, err)

	opts := standardKitchenOpts()
	opts.Countertop = "marble"
	_, err = NewKitchen(basicKitchenDims(), opts).Calculate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown countertop material")
}
