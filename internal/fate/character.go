package fate

import (
	"encoding/json"

	"github.com/louisbranch/tabletop/internal/track"
)

// Kind discriminators written on export. Legacy files carry no kind and
// fall back to key sniffing (see detect.go).
const (
	KindSingle = "fate-single"
	KindGroup  = "fate-group"
)

// Stunt is a named stunt with its full description text.
type Stunt struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AltRules holds the alternate-rules selection for a sheet.
type AltRules struct {
	FateVersion string `json:"fateVersion"`
}

// StressState stores filled stress box indices per track. The single-sheet
// shape persists indices; the group shape persists boolean arrays.
type StressState struct {
	Physical []int `json:"physical"`
	Mental   []int `json:"mental"`
}

// Character is the single-sheet record shape. Every field the sheet needs
// to fully reconstruct itself round-trips through this document.
type Character struct {
	Kind         string            `json:"kind,omitempty"`
	Name         string            `json:"name"`
	HighConcept  string            `json:"highConcept"`
	Trouble      string            `json:"trouble"`
	Aspect3      string            `json:"aspect3"`
	Aspect4      string            `json:"aspect4"`
	Aspect5      string            `json:"aspect5"`
	Notes        string            `json:"notes"`
	FateCurrent  int               `json:"fateCurrent"`
	FateRefresh  int               `json:"fateRefresh"`
	Skills       map[string]int    `json:"skills"`
	Approaches   map[string]int    `json:"approaches"`
	Stunts       []Stunt           `json:"stunts"`
	Extras       []string          `json:"extras"`
	Stress       StressState       `json:"stress"`
	Consequences map[string]string `json:"consequences"`
	AltRules     AltRules          `json:"altRules"`
}

// Governing skills for the two stress tracks.
const (
	PhysicalStressSkill = "Physique"
	MentalStressSkill   = "Will"
)

// NewCharacter returns an empty sheet with default values.
func NewCharacter() Character {
	c := Character{
		FateCurrent: 3,
		FateRefresh: 3,
		AltRules:    AltRules{FateVersion: string(DefaultVariant)},
	}
	c.Normalize()
	return c
}

// Normalize replaces nil collections with empty ones and defaults the
// rules variant so older or partial documents behave like fresh sheets.
func (c *Character) Normalize() {
	if c.Skills == nil {
		c.Skills = map[string]int{}
	}
	if c.Approaches == nil {
		c.Approaches = map[string]int{}
	}
	if c.Stunts == nil {
		c.Stunts = []Stunt{}
	}
	if c.Extras == nil {
		c.Extras = []string{}
	}
	if c.Stress.Physical == nil {
		c.Stress.Physical = []int{}
	}
	if c.Stress.Mental == nil {
		c.Stress.Mental = []int{}
	}
	if c.Consequences == nil {
		c.Consequences = map[string]string{}
	}
	if c.AltRules.FateVersion == "" {
		c.AltRules.FateVersion = string(DefaultVariant)
	}
}

// Variant returns the sheet's rules variant, defaulting invalid or missing
// selections rather than failing.
func (c Character) Variant() Variant {
	v, err := ParseVariant(c.AltRules.FateVersion)
	if err != nil {
		return DefaultVariant
	}
	return v
}

// PhysicalStressTrack builds the sheet's physical stress track.
func (c Character) PhysicalStressTrack() track.Track {
	return StressTrack(c.Skills[PhysicalStressSkill], c.Variant(), c.Stress.Physical)
}

// MentalStressTrack builds the sheet's mental stress track.
func (c Character) MentalStressTrack() track.Track {
	return StressTrack(c.Skills[MentalStressSkill], c.Variant(), c.Stress.Mental)
}

// Serialize projects the record into its JSON document.
func (c Character) Serialize() ([]byte, error) {
	normalized := c
	normalized.Normalize()
	return json.Marshal(normalized)
}

// DeserializeCharacter parses a single-sheet document, tolerating missing
// optional fields by falling back to defaults.
func DeserializeCharacter(data []byte) (Character, error) {
	var c Character
	if err := json.Unmarshal(data, &c); err != nil {
		return Character{}, err
	}
	c.Normalize()
	return c, nil
}
