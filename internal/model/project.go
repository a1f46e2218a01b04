package model

import "fmt"

// ProjectType selects which calculator a project runs through.
type ProjectType string

const (
	ProjectDeck     ProjectType = "deck"
	ProjectKitchen  ProjectType = "kitchen"
	ProjectBathroom ProjectType = "bathroom"
)

func (t ProjectType) Valid() bool {
	switch t {
	case ProjectDeck, ProjectKitchen, ProjectBathroom:
		return true
	}
	return false
}

// DeckProject pairs deck dimensions with deck options.
type DeckProject struct {
	Dimensions DeckDimensions `json:"dimensions"`
	Options    DeckOptions    `json:"options"`
}

// KitchenProject pairs kitchen dimensions with kitchen options.
type KitchenProject struct {
	Dimensions KitchenDimensions `json:"dimensions"`
	Options    KitchenOptions    `json:"options"`
}

// BathroomProject pairs bathroom dimensions with bathroom options.
type BathroomProject struct {
	Dimensions BathroomDimensions `json:"dimensions"`
	Options    BathroomOptions    `json:"options"`
}

// Project ties everything together for save/load. Exactly one of the
// per-type sections is set, matching Type. ZipCode scopes price lookups;
// LaborRate is dollars per hour.
type Project struct {
	Name      string           `json:"name"`
	Type      ProjectType      `json:"type"`
	Deck      *DeckProject     `json:"deck,omitempty"`
	Kitchen   *KitchenProject  `json:"kitchen,omitempty"`
	Bathroom  *BathroomProject `json:"bathroom,omitempty"`
	ZipCode   string           `json:"zip_code"`
	LaborRate float64          `json:"labor_rate"`
}

// Validate checks that the project's type matches its payload and that the
// payload itself passes the calculator preconditions.
func (p Project) Validate() error {
	if !p.Type.Valid() {
		return fmt.Errorf("unknown project type %q", p.Type)
	}
	if p.LaborRate < 0 {
		return fmt.Errorf("labor rate must not be negative, got %.2f", p.LaborRate)
	}
	switch p.Type {
	case ProjectDeck:
		if p.Deck == nil {
			return fmt.Errorf("project type is deck but no deck section is present")
		}
		if err := p.Deck.Dimensions.Validate(); err != nil {
			return err
		}
		return p.Deck.Options.Validate()
	case ProjectKitchen:
		if p.Kitchen == nil {
			return fmt.Errorf("project type is kitchen but no kitchen section is present")
		}
		if err := p.Kitchen.Dimensions.Validate(); err != nil {
			return err
		}
		return p.Kitchen.Options.Validate()
	case ProjectBathroom:
		if p.Bathroom == nil {
			return fmt.Errorf("project type is bathroom but no bathroom section is present")
		}
		if err := p.Bathroom.Dimensions.Validate(); err != nil {
			return err
		}
		return p.Bathroom.Options.Validate()
	}
	return nil
}
