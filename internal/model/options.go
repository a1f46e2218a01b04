package model

import "fmt"

// QualityTier is the build grade selected for a project. It scales material
// price hints and labor hours through explicit lookup tables so a tier can
// never silently change a computed quantity.
type QualityTier string

const (
	QualityEconomy  QualityTier = "economy"
	QualityStandard QualityTier = "standard"
	QualityPremium  QualityTier = "premium"
)

// Valid reports whether the tier is one of the known grades.
func (q QualityTier) Valid() bool {
	switch q {
	case QualityEconomy, QualityStandard, QualityPremium:
		return true
	}
	return false
}

// MaterialMultiplier returns the price-hint multiplier for the tier.
func (q QualityTier) MaterialMultiplier() (float64, error) {
	switch q {
	case QualityEconomy:
		return 0.85, nil
	case QualityStandard:
		return 1.0, nil
	case QualityPremium:
		return 1.35, nil
	}
	return 0, fmt.Errorf("unknown quality tier %q", q)
}

// LaborMultiplier returns the labor-hours multiplier for the tier.
// Premium finishes take longer to install.
func (q QualityTier) LaborMultiplier() (float64, error) {
	switch q {
	case QualityEconomy:
		return 0.9, nil
	case QualityStandard:
		return 1.0, nil
	case QualityPremium:
		return 1.25, nil
	}
	return 0, fmt.Errorf("unknown quality tier %q", q)
}

// DeckingMaterial is the walking-surface board material.
type DeckingMaterial string

const (
	DeckingPressureTreated DeckingMaterial = "pressure_treated"
	DeckingCedar           DeckingMaterial = "cedar"
	DeckingComposite       DeckingMaterial = "composite"
	DeckingRedwood         DeckingMaterial = "redwood"
)

func (m DeckingMaterial) Valid() bool {
	switch m {
	case DeckingPressureTreated, DeckingCedar, DeckingComposite, DeckingRedwood:
		return true
	}
	return false
}

// FramingMaterial is the structural lumber material.
type FramingMaterial string

const (
	FramingPressureTreated FramingMaterial = "pressure_treated"
	FramingCedar           FramingMaterial = "cedar"
	FramingSteel           FramingMaterial = "steel"
)

func (m FramingMaterial) Valid() bool {
	switch m {
	case FramingPressureTreated, FramingCedar, FramingSteel:
		return true
	}
	return false
}

// RemodelScope controls how deep a kitchen or bathroom remodel goes.
// A full remodel adds demolition and wall rebuild items; a cosmetic
// refresh keeps the existing shell.
type RemodelScope string

const (
	ScopeFull     RemodelScope = "full"
	ScopeCosmetic RemodelScope = "cosmetic"
)

func (s RemodelScope) Valid() bool {
	switch s {
	case ScopeFull, ScopeCosmetic:
		return true
	}
	return false
}

// CabinetLine is the cabinet construction grade.
type CabinetLine string

const (
	CabinetStock      CabinetLine = "stock"
	CabinetSemiCustom CabinetLine = "semi_custom"
	CabinetCustom     CabinetLine = "custom"
)

func (c CabinetLine) Valid() bool {
	switch c {
	case CabinetStock, CabinetSemiCustom, CabinetCustom:
		return true
	}
	return false
}

// CountertopMaterial is the counter surface material.
type CountertopMaterial string

const (
	CountertopLaminate     CountertopMaterial = "laminate"
	CountertopButcherBlock CountertopMaterial = "butcher_block"
	CountertopQuartz       CountertopMaterial = "quartz"
	CountertopGranite      CountertopMaterial = "granite"
)

func (c CountertopMaterial) Valid() bool {
	switch c {
	case CountertopLaminate, CountertopButcherBlock, CountertopQuartz, CountertopGranite:
		return true
	}
	return false
}

// FlooringMaterial is the finished floor material.
type FlooringMaterial string

const (
	FlooringVinylPlank FlooringMaterial = "vinyl_plank"
	FlooringTile       FlooringMaterial = "tile"
	FlooringHardwood   FlooringMaterial = "hardwood"
	FlooringLaminate   FlooringMaterial = "laminate"
)

func (f FlooringMaterial) Valid() bool {
	switch f {
	case FlooringVinylPlank, FlooringTile, FlooringHardwood, FlooringLaminate:
		return true
	}
	return false
}

// WallFinish is the bathroom wet-wall finish.
type WallFinish string

const (
	WallTile            WallFinish = "tile"
	WallFiberglassPanel WallFinish = "fiberglass_panel"
)

func (w WallFinish) Valid() bool {
	switch w {
	case WallTile, WallFiberglassPanel:
		return true
	}
	return false
}

// DefaultJoistSpacingIn is the standard on-center joist spacing.
const DefaultJoistSpacingIn = 16.0

// DeckOptions holds the material and layout choices for a deck.
type DeckOptions struct {
	Decking        DeckingMaterial `json:"decking"`
	Framing        FramingMaterial `json:"framing"`
	JoistSpacingIn float64         `json:"joist_spacing_in"`
	Quality        QualityTier     `json:"quality"`
}

// Validate fails fast on unknown enumerations and unusable spacing values.
// A silently substituted default would misprice the estimate.
func (o DeckOptions) Validate() error {
	if !o.Decking.Valid() {
		return fmt.Errorf("unknown decking material %q", o.Decking)
	}
	if !o.Framing.Valid() {
		return fmt.Errorf("unknown framing material %q", o.Framing)
	}
	if o.JoistSpacingIn <= 0 {
		return fmt.Errorf("joist spacing must be positive, got %.1f", o.JoistSpacingIn)
	}
	if !o.Quality.Valid() {
		return fmt.Errorf("unknown quality tier %q", o.Quality)
	}
	return nil
}

// KitchenOptions holds the material and finish choices for a kitchen remodel.
type KitchenOptions struct {
	Scope       RemodelScope       `json:"scope"`
	CabinetLine CabinetLine        `json:"cabinet_line"`
	Countertop  CountertopMaterial `json:"countertop"`
	Flooring    FlooringMaterial   `json:"flooring"`
	Backsplash  bool               `json:"backsplash"`
	GFCIOutlets int                `json:"gfci_outlets"`
	Quality     QualityTier        `json:"quality"`
}

// Validate fails fast on unknown enumerations.
func (o KitchenOptions) Validate() error {
	if !o.Scope.Valid() {
		return fmt.Errorf("unknown remodel scope %q", o.Scope)
	}
	if !o.CabinetLine.Valid() {
		return fmt.Errorf("unknown cabinet line %q", o.CabinetLine)
	}
	if !o.Countertop.Valid() {
		return fmt.Errorf("unknown countertop material %q", o.Countertop)
	}
	if !o.Flooring.Valid() {
		return fmt.Errorf("unknown flooring material %q", o.Flooring)
	}
	if o.GFCIOutlets < 0 {
		return fmt.Errorf("gfci outlet count must not be negative, got %d", o.GFCIOutlets)
	}
	if !o.Quality.Valid() {
		return fmt.Errorf("unknown quality tier %q", o.Quality)
	}
	return nil
}

// MinVanityWidthIn is the narrowest vanity cabinet the calculator accepts.
const MinVanityWidthIn = 24.0

// BathroomOptions holds the material and finish choices for a bathroom remodel.
type BathroomOptions struct {
	Scope         RemodelScope     `json:"scope"`
	WallFinish    WallFinish       `json:"wall_finish"`
	Flooring      FlooringMaterial `json:"flooring"`
	VanityWidthIn float64          `json:"vanity_width_in"`
	GFCIOutlets   int              `json:"gfci_outlets"`
	Quality       QualityTier      `json:"quality"`
}

// Validate fails fast on unknown enumerations and undersized vanities.
func (o BathroomOptions) Validate() error {
	if !o.Scope.Valid() {
		return fmt.Errorf("unknown remodel scope %q", o.Scope)
	}
	if !o.WallFinish.Valid() {
		return fmt.Errorf("unknown wall finish %q", o.WallFinish)
	}
	if !o.Flooring.Valid() {
		return fmt.Errorf("unknown flooring material %q", o.Flooring)
	}
	if o.VanityWidthIn < MinVanityWidthIn {
		return fmt.Errorf("vanity width %.1f in is below the %.0f in minimum", o.VanityWidthIn, MinVanityWidthIn)
	}
	if o.GFCIOutlets < 0 {
		return fmt.Errorf("gfci outlet count must not be negative, got %d", o.GFCIOutlets)
	}
	if !o.Quality.Valid() {
		return fmt.Errorf("unknown quality tier %q", o.Quality)
	}
	return nil
}
