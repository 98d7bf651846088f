package blades

import "encoding/json"

// KindCharacter is the discriminator written on exported Blades sheets.
const KindCharacter = "blades-character"

// Load levels and their slot capacities.
const (
	LoadLight  = "light"
	LoadNormal = "normal"
	LoadHeavy  = "heavy"
)

// LoadSlots returns the item slot capacity for a load level, defaulting
// unknown levels to normal.
func LoadSlots(load string) int {
	switch load {
	case LoadLight:
		return 3
	case LoadHeavy:
		return 6
	default:
		return 5
	}
}

// Stress and trauma track capacities.
const (
	StressBoxes  = 9
	TraumaBoxes  = 4
	HealingClock = 4
)

// Contact is a single crew contact with its standing.
type Contact struct {
	Status      string `json:"status"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Character is the Blades sheet record.
type Character struct {
	Kind       string            `json:"kind,omitempty"`
	Name       string            `json:"name"`
	Alias      string            `json:"alias"`
	Crew       string            `json:"crew"`
	Playbook   string            `json:"playbook"`
	Heritage   string            `json:"heritage"`
	Background string            `json:"background"`
	Vice       string            `json:"vice"`
	Notes      string            `json:"notes"`
	Actions    map[string]int    `json:"actions"`
	Stress     int               `json:"stress"`
	Trauma     int               `json:"trauma"`
	Healing    int               `json:"healing"`
	Load       string            `json:"load"`
	LoadFilled int               `json:"loadFilled"`
	XP         map[string]int    `json:"xp"`
	Harm       map[string]string `json:"harm"`
	Armor      map[string]bool   `json:"armor"`
	Abilities  []string          `json:"abilities"`
	Contacts   []Contact         `json:"contacts"`
}

// NewCharacter returns an empty sheet with default values.
func NewCharacter() Character {
	c := Character{Load: LoadNormal}
	c.Normalize()
	return c
}

// Normalize replaces nil collections with empty ones and defaults the load
// level so older or partial documents behave like fresh sheets.
func (c *Character) Normalize() {
	if c.Actions == nil {
		c.Actions = map[string]int{}
	}
	if c.XP == nil {
		c.XP = map[string]int{}
	}
	if c.Harm == nil {
		c.Harm = map[string]string{}
	}
	if c.Armor == nil {
		c.Armor = map[string]bool{}
	}
	if c.Abilities == nil {
		c.Abilities = []string{}
	}
	if c.Contacts == nil {
		c.Contacts = []Contact{}
	}
	if c.Load == "" {
		c.Load = LoadNormal
	}
}

// Serialize projects the record into its JSON document.
func (c Character) Serialize() ([]byte, error) {
	normalized := c
	normalized.Normalize()
	return json.Marshal(normalized)
}

// DeserializeCharacter parses a Blades sheet document, tolerating missing
// optional fields by falling back to defaults.
func DeserializeCharacter(data []byte) (Character, error) {
	var c Character
	if err := json.Unmarshal(data, &c); err != nil {
		return Character{}, err
	}
	c.Normalize()
	return c, nil
}
