package calc

import (
	"fmt"

	"github.com/piwi3910/BuildQuote/internal/model"
)

// Deck rule table. Coverages and spacings reflect common residential code
// minimums and standard purchasable sizes.
const (
	deckingWasteFactor    = 0.10
	deckBoardCoverageSqFt = 7.33 // one 16 ft x 5.5 in board
	deckBoardLengthFt     = 16.0

	rimBoardLengthFt = 16.0
	beamLengthFt     = 16.0
	beamPliesPerRun  = 2 // beams are doubled 2x10s

	postSpacingFt   = 8.0
	minDeckPosts    = 4
	postEmbedmentFt = 2.0 // below-grade portion of each post

	footingBagsPerPost   = 2
	hangersPerJoist      = 2
	hangerNailsPerHanger = 10
	hangerNailsPerBox    = 100
	screwBoxCoverageSqFt = 100.0 // one 5 lb box fastens ~100 sq ft of decking

	stringerSpacingIn  = 16.0
	treadBoardsPerStep = 2
	stairRiseFt        = 0.625 // 7.5 in rise per step

	railPostSpacingFt = 6.0
	railsPerSection   = 2
	balusterSpacingIn = 4.0 // 4 in sphere rule
)

// deckLaborHours is the hours-per-unit table for deck categories.
var deckLaborHours = map[model.Category]float64{
	model.CategoryFraming:   0.5,
	model.CategoryConcrete:  0.75,
	model.CategoryDecking:   0.2,
	model.CategoryFasteners: 0.1,
	model.CategoryStairs:    0.75,
	model.CategoryRailing:   0.15,
}

// deckingBasePrice is the per-board price hint before the quality multiplier.
var deckingBasePrice = map[model.DeckingMaterial]float64{
	model.DeckingPressureTreated: 14.50,
	model.DeckingCedar:           24.00,
	model.DeckingComposite:       38.00,
	model.DeckingRedwood:         29.00,
}

var deckingLabel = map[model.DeckingMaterial]string{
	model.DeckingPressureTreated: "pressure-treated",
	model.DeckingCedar:           "cedar",
	model.DeckingComposite:       "composite",
	model.DeckingRedwood:         "redwood",
}

var framingLabel = map[model.FramingMaterial]string{
	model.FramingPressureTreated: "pressure-treated",
	model.FramingCedar:           "cedar",
	model.FramingSteel:           "steel",
}

// DeckCalculator computes the bill of materials for a deck build.
type DeckCalculator struct {
	dims model.DeckDimensions
	opts model.DeckOptions
}

func NewDeck(dims model.DeckDimensions, opts model.DeckOptions) *DeckCalculator {
	return &DeckCalculator{dims: dims, opts: opts}
}

// Calculate derives every purchasable line item for the configured deck.
// The result is deterministic and ordered by build sequence: framing,
// concrete, decking, fasteners, stairs, railing.
func (c *DeckCalculator) Calculate() (model.MaterialList, error) {
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

	b := newListBuilder(deckLaborHours)
	framing := framingLabel[c.opts.Framing]

	// Framing: joists run across the width, spaced along the length.
	spacingFt := c.opts.JoistSpacingIn / 12.0
	joists, err := SpacedCount(c.dims.LengthFt, spacingFt)
	if err != nil {
		return model.MaterialList{}, err
	}
	joistLen := LumberLengthFt(c.dims.WidthFt)
	b.add(model.CategoryFraming, fmt.Sprintf("2x8 %s joist, %.0f ft", framing, joistLen), float64(joists), "each")

	rimBoards, err := UnitsNeeded(c.dims.Perimeter(), rimBoardLengthFt, 0)
	if err != nil {
		return model.MaterialList{}, err
	}
	b.add(model.CategoryFraming, fmt.Sprintf("2x8 %s rim board, %.0f ft", framing, rimBoardLengthFt), float64(rimBoards), "each")

	beamBoards, err := UnitsNeeded(c.dims.LengthFt, beamLengthFt, 0)
	if err != nil {
		return model.MaterialList{}, err
	}
	b.add(model.CategoryFraming, fmt.Sprintf("2x10 %s beam board, %.0f ft", framing, beamLengthFt), float64(beamBoards*beamPliesPerRun), "each")

	posts, err := SpacedCount(c.dims.Perimeter(), postSpacingFt)
	if err != nil {
		return model.MaterialList{}, err
	}
	if posts < minDeckPosts {
		posts = minDeckPosts
	}
	postLen := LumberLengthFt(c.dims.HeightFt + postEmbedmentFt)
	b.add(model.CategoryFraming, fmt.Sprintf("4x4 %s post, %.0f ft", framing, postLen), float64(posts), "each")

	// Concrete footings, one pour per post.
	b.add(model.CategoryConcrete, "concrete mix, 60 lb bag", float64(posts*footingBagsPerPost), "bag")
	b.add(model.CategoryConcrete, "footing form tube, 8 in", float64(posts), "each")

	// Decking surface.
	boards, err := UnitsNeeded(c.dims.Area(), deckBoardCoverageSqFt, deckingWasteFactor)
	if err != nil {
		return model.MaterialList{}, err
	}
	b.addWithHint(model.CategoryDecking,
		fmt.Sprintf("%s deck board, %.0f ft", deckingLabel[c.opts.Decking], deckBoardLengthFt),
		float64(boards), "each", round2(deckingBasePrice[c.opts.Decking]*matMult))

	// Fasteners derive from the structural counts, not from measurements.
	hangers := joists * hangersPerJoist
	b.add(model.CategoryFasteners, "galvanized joist hanger", float64(hangers), "each")
	nailBoxes, err := UnitsNeeded(float64(hangers*hangerNailsPerHanger), hangerNailsPerBox, 0)
	if err != nil {
		return model.MaterialList{}, err
	}
	b.add(model.CategoryFasteners, "joist hanger nails, 100 ct box", float64(nailBoxes), "box")
	screwBoxes, err := UnitsNeeded(c.dims.Area(), screwBoxCoverageSqFt, 0)
	if err != nil {
		return model.MaterialList{}, err
	}
	b.add(model.CategoryFasteners, "deck screws, 5 lb box", float64(screwBoxes), "box")
	b.add(model.CategoryFasteners, "post base anchor", float64(posts), "each")

	if c.dims.HasStairs {
		if err := c.addStairs(b); err != nil {
			return model.MaterialList{}, err
		}
	}

	if c.dims.HasRailing {
		if err := c.addRailing(b); err != nil {
			return model.MaterialList{}, err
		}
	}

	return b.build(laborMult), nil
}

// addStairs emits stair items for every configured run. Quantities are the
// sum of each run's contribution, so two independent runs produce the
// combined stringer and tread counts.
func (c *DeckCalculator) addStairs(b *listBuilder) error {
	for _, run := range c.dims.Stairs {
		stringers, err := SpacedCount(run.WidthIn, stringerSpacingIn)
		if err != nil {
			return err
		}
		stringerLen := LumberLengthFt(float64(run.Steps) * 2 * stairRiseFt)
		b.add(model.CategoryStairs, fmt.Sprintf("2x12 stair stringer, %.0f ft", stringerLen), float64(stringers), "each")
		b.add(model.CategoryStairs, "5/4 stair tread board, 6 ft", float64(run.Steps*treadBoardsPerStep), "each")
		b.add(model.CategoryStairs, "stringer connector bracket", float64(stringers), "each")
		b.add(model.CategoryStairs, "stair landing concrete mix, 60 lb bag", 2, "bag")
	}
	return nil
}

// addRailing emits railing items per selected side. Sides are iterated in a
// fixed order so output ordering stays deterministic regardless of how the
// caller listed them.
func (c *DeckCalculator) addRailing(b *listBuilder) error {
	selected := make(map[model.RailingSide]bool, len(c.dims.RailingSides))
	for _, s := range c.dims.RailingSides {
		selected[s] = true
	}

	for _, side := range []model.RailingSide{model.SideFront, model.SideBack, model.SideLeft, model.SideRight} {
		if !selected[side] {
			continue
		}
		length := c.dims.SideLength(side)

		posts, err := SpacedCount(length, railPostSpacingFt)
		if err != nil {
			return err
		}
		sections := posts - 1
		balusters, err := SpacedCount(length*12, balusterSpacingIn)
		if err != nil {
			return err
		}

		b.add(model.CategoryRailing, fmt.Sprintf("4x4 railing post (%s)", side), float64(posts), "each")
		b.add(model.CategoryRailing, fmt.Sprintf("2x4 rail, 8 ft (%s)", side), float64(sections*railsPerSection), "each")
		b.add(model.CategoryRailing, fmt.Sprintf("baluster (%s)", side), float64(balusters), "each")
		b.add(model.CategoryRailing, fmt.Sprintf("post cap (%s)", side), float64(posts), "each")
	}
	return nil
}
