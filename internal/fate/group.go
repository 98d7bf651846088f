package fate

import "encoding/json"

// GroupCharacter is the compact per-character shape used by the group
// tracker. Fields with no single-sheet equivalent (id, isNpc, acted,
// boosts) live only here; single-only fields ride the _fateExtras
// passthrough so a later reverse conversion can restore them.
type GroupCharacter struct {
	ID             string            `json:"id"`
	IsNPC          bool              `json:"isNpc"`
	Name           string            `json:"name"`
	FatePoints     int               `json:"fatePoints"`
	Acted          bool              `json:"acted"`
	Boosts         int               `json:"boosts"`
	PhysicalStress []bool            `json:"physicalStress"`
	MentalStress   []bool            `json:"mentalStress"`
	Consequences   map[string]string `json:"consequences"`
	Aspects        map[string]string `json:"aspects"`
	Skills         map[string]int    `json:"skills"`
	Stunts         []string          `json:"stunts"`
	Extras         *SheetExtras      `json:"_fateExtras,omitempty"`
}

// SheetExtras is the passthrough side-channel: single-sheet fields the
// group shape does not model, carried verbatim so single -> group ->
// single reproduces the original document exactly.
type SheetExtras struct {
	Kind              string         `json:"kind,omitempty"`
	Notes             string         `json:"notes"`
	FateRefresh       int            `json:"fateRefresh"`
	Approaches        map[string]int `json:"approaches"`
	ExtrasList        []string       `json:"extras"`
	AltRules          AltRules       `json:"altRules"`
	StuntDescriptions []string       `json:"stuntDescriptions"`
}

// Tracker is the group-tracker top-level document: shared variant and
// collapse state plus an ordered character list. Order is meaningful;
// reordering in the UI mutates the slice.
type Tracker struct {
	Kind               string           `json:"kind,omitempty"`
	Version            int              `json:"version"`
	CharacterIDCounter int              `json:"characterIdCounter"`
	GlobalCollapsed    map[string]bool  `json:"globalCollapsed"`
	FateVersion        string           `json:"fateVersion"`
	Characters         []GroupCharacter `json:"characters"`
}

// TrackerVersion is the current tracker document version.
const TrackerVersion = 1

// NewTracker returns an empty tracker with default state.
func NewTracker() Tracker {
	t := Tracker{
		Kind:        KindGroup,
		Version:     TrackerVersion,
		FateVersion: string(DefaultVariant),
	}
	t.Normalize()
	return t
}

// Normalize replaces nil collections with empty ones and defaults the
// shared variant.
func (t *Tracker) Normalize() {
	if t.GlobalCollapsed == nil {
		t.GlobalCollapsed = map[string]bool{}
	}
	if t.Characters == nil {
		t.Characters = []GroupCharacter{}
	}
	if t.FateVersion == "" {
		t.FateVersion = string(DefaultVariant)
	}
	for i := range t.Characters {
		t.Characters[i].Normalize()
	}
}

// Normalize replaces nil collections with empty ones.
func (g *GroupCharacter) Normalize() {
	if g.PhysicalStress == nil {
		g.PhysicalStress = []bool{}
	}
	if g.MentalStress == nil {
		g.MentalStress = []bool{}
	}
	if g.Consequences == nil {
		g.Consequences = map[string]string{}
	}
	if g.Aspects == nil {
		g.Aspects = map[string]string{}
	}
	if g.Skills == nil {
		g.Skills = map[string]int{}
	}
	if g.Stunts == nil {
		g.Stunts = []string{}
	}
}

// Serialize projects the tracker into its JSON document.
func (t Tracker) Serialize() ([]byte, error) {
	normalized := t
	normalized.Normalize()
	return json.Marshal(normalized)
}

// DeserializeTracker parses a group-tracker document, tolerating missing
// optional fields.
func DeserializeTracker(data []byte) (Tracker, error) {
	var t Tracker
	if err := json.Unmarshal(data, &t); err != nil {
		return Tracker{}, err
	}
	t.Normalize()
	return t, nil
}
