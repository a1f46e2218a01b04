package model

import "fmt"

// RailingSide identifies one edge of a deck that carries a railing run.
type RailingSide string

const (
	SideFront RailingSide = "front"
	SideBack  RailingSide = "back"
	SideLeft  RailingSide = "left"
	SideRight RailingSide = "right"
)

// Valid reports whether the side is one of the known deck edges.
func (s RailingSide) Valid() bool {
	switch s {
	case SideFront, SideBack, SideLeft, SideRight:
		return true
	}
	return false
}

// MinStairWidthIn is the narrowest stair run accepted by the calculators.
// Residential code requires at least 36 inches of clear width.
const MinStairWidthIn = 36.0

// StairSpec describes one independent stair run. A deck can carry several
// runs (e.g., front entry plus a side exit), each contributing its own
// stringers and treads.
type StairSpec struct {
	Steps   int     `json:"steps"`
	WidthIn float64 `json:"width_in"`
}

// Validate checks the per-run invariants.
func (s StairSpec) Validate() error {
	if s.Steps < 1 {
		return fmt.Errorf("stair run needs at least 1 step, got %d", s.Steps)
	}
	if s.WidthIn < MinStairWidthIn {
		return fmt.Errorf("stair width %.1f in is below the %.0f in minimum", s.WidthIn, MinStairWidthIn)
	}
	return nil
}

// DeckDimensions describes the geometry of a deck build. Lengths are in feet.
type DeckDimensions struct {
	LengthFt float64 `json:"length_ft"`
	WidthFt  float64 `json:"width_ft"`
	HeightFt float64 `json:"height_ft"`

	HasStairs bool        `json:"has_stairs"`
	Stairs    []StairSpec `json:"stairs,omitempty"`

	HasRailing   bool          `json:"has_railing"`
	RailingSides []RailingSide `json:"railing_sides,omitempty"`
}

// Area returns the deck surface area in square feet.
func (d DeckDimensions) Area() float64 {
	return d.LengthFt * d.WidthFt
}

// Perimeter returns the outside perimeter in feet.
func (d DeckDimensions) Perimeter() float64 {
	return 2 * (d.LengthFt + d.WidthFt)
}

// SideLength returns the run length of one deck edge in feet.
func (d DeckDimensions) SideLength(side RailingSide) float64 {
	switch side {
	case SideFront, SideBack:
		return d.LengthFt
	default:
		return d.WidthFt
	}
}

// Validate checks the invariants the calculators rely on: positive
// dimensions (they are used as divisors), known railing sides, and
// well-formed stair runs when stairs are enabled.
func (d DeckDimensions) Validate() error {
	if d.LengthFt <= 0 || d.WidthFt <= 0 {
		return fmt.Errorf("deck length and width must be positive, got %.2f x %.2f", d.LengthFt, d.WidthFt)
	}
	if d.HeightFt < 0 {
		return fmt.Errorf("deck height must not be negative, got %.2f", d.HeightFt)
	}
	if d.HasStairs {
		if len(d.Stairs) == 0 {
			return fmt.Errorf("has_stairs is set but no stair runs are specified")
		}
		for i, s := range d.Stairs {
			if err := s.Validate(); err != nil {
				return fmt.Errorf("stair run %d: %w", i+1, err)
			}
		}
	}
	if d.HasRailing {
		if len(d.RailingSides) == 0 {
			return fmt.Errorf("has_railing is set but no railing sides are specified")
		}
		for _, side := range d.RailingSides {
			if !side.Valid() {
				return fmt.Errorf("unknown railing side %q", side)
			}
		}
	}
	return nil
}

// KitchenDimensions describes the geometry of a kitchen remodel.
// Cabinet runs are measured along the walls they occupy.
type KitchenDimensions struct {
	LengthFt  float64 `json:"length_ft"`
	WidthFt   float64 `json:"width_ft"`
	CeilingFt float64 `json:"ceiling_ft"`

	BaseRunFt  float64 `json:"base_run_ft"`
	UpperRunFt float64 `json:"upper_run_ft"`

	HasIsland      bool    `json:"has_island"`
	IslandLengthFt float64 `json:"island_length_ft,omitempty"`
	HasVentilation bool    `json:"has_ventilation"`
	HasWindow      bool    `json:"has_window"`
}

// FloorArea returns the kitchen floor area in square feet.
func (k KitchenDimensions) FloorArea() float64 {
	return k.LengthFt * k.WidthFt
}

// WallArea returns the gross wall area in square feet.
func (k KitchenDimensions) WallArea() float64 {
	return 2 * (k.LengthFt + k.WidthFt) * k.CeilingFt
}

// Validate checks the invariants the kitchen calculator relies on.
func (k KitchenDimensions) Validate() error {
	if k.LengthFt <= 0 || k.WidthFt <= 0 {
		return fmt.Errorf("kitchen length and width must be positive, got %.2f x %.2f", k.LengthFt, k.WidthFt)
	}
	if k.CeilingFt <= 0 {
		return fmt.Errorf("ceiling height must be positive, got %.2f", k.CeilingFt)
	}
	if k.BaseRunFt < 0 || k.UpperRunFt < 0 {
		return fmt.Errorf("cabinet runs must not be negative")
	}
	if k.HasIsland && k.IslandLengthFt <= 0 {
		return fmt.Errorf("has_island is set but island length is %.2f", k.IslandLengthFt)
	}
	return nil
}

// BathroomDimensions describes the geometry of a bathroom remodel.
type BathroomDimensions struct {
	LengthFt  float64 `json:"length_ft"`
	WidthFt   float64 `json:"width_ft"`
	CeilingFt float64 `json:"ceiling_ft"`

	HasShower      bool `json:"has_shower"`
	HasTub         bool `json:"has_tub"`
	HasVentilation bool `json:"has_ventilation"`
	HasWindow      bool `json:"has_window"`
}

// FloorArea returns the bathroom floor area in square feet.
func (b BathroomDimensions) FloorArea() float64 {
	return b.LengthFt * b.WidthFt
}

// WallArea returns the gross wall area in square feet.
func (b BathroomDimensions) WallArea() float64 {
	return 2 * (b.LengthFt + b.WidthFt) * b.CeilingFt
}

// Validate checks the invariants the bathroom calculator relies on.
func (b BathroomDimensions) Validate() error {
	if b.LengthFt <= 0 || b.WidthFt <= 0 {
		return fmt.Errorf("bathroom length and width must be positive, got %.2f x %.2f", b.LengthFt, b.WidthFt)
	}
	if b.CeilingFt <= 0 {
		return fmt.Errorf("ceiling height must be positive, got %.2f", b.CeilingFt)
	}
	return nil
}
