package fate

import "github.com/google/uuid"

// Aspect keys used in the group shape's aspects map. The single shape
// stores the same five aspects as dedicated fields.
const (
	aspectHighConcept = "highConcept"
	aspectTrouble     = "trouble"
	aspectThird       = "aspect3"
	aspectFourth      = "aspect4"
	aspectFifth       = "aspect5"
)

// ConvertSingleToGroup converts a single-sheet record into the group
// shape. Fields with a group equivalent are transformed (stress index
// lists become boolean arrays sized by the sheet's stress capacity, stunts
// reduce to their names); everything else rides the passthrough so
// ConvertGroupToSingle can restore the original document exactly.
func ConvertSingleToGroup(c Character) GroupCharacter {
	c.Normalize()

	variant := c.Variant()
	stuntNames := make([]string, len(c.Stunts))
	stuntDescriptions := make([]string, len(c.Stunts))
	for i, stunt := range c.Stunts {
		stuntNames[i] = stunt.Name
		stuntDescriptions[i] = stunt.Description
	}

	g := GroupCharacter{
		ID:         uuid.NewString(),
		Name:       c.Name,
		FatePoints: c.FateCurrent,
		PhysicalStress: stressIndicesToBoxes(
			c.Stress.Physical, StressBoxes(c.Skills[PhysicalStressSkill], variant)),
		MentalStress: stressIndicesToBoxes(
			c.Stress.Mental, StressBoxes(c.Skills[MentalStressSkill], variant)),
		Consequences: copyStringMap(c.Consequences),
		Aspects: map[string]string{
			aspectHighConcept: c.HighConcept,
			aspectTrouble:     c.Trouble,
			aspectThird:       c.Aspect3,
			aspectFourth:      c.Aspect4,
			aspectFifth:       c.Aspect5,
		},
		Skills: copyIntMap(c.Skills),
		Stunts: stuntNames,
		Extras: &SheetExtras{
			Kind:              c.Kind,
			Notes:             c.Notes,
			FateRefresh:       c.FateRefresh,
			Approaches:        copyIntMap(c.Approaches),
			ExtrasList:        append([]string{}, c.Extras...),
			AltRules:          c.AltRules,
			StuntDescriptions: stuntDescriptions,
		},
	}
	g.Normalize()
	return g
}

// ConvertGroupToSingle converts a group-shape record back into the
// single-sheet shape, restoring passthrough fields when present. Group
// records without a passthrough (hand-added tracker characters) still
// convert; the single-only fields default.
func ConvertGroupToSingle(g GroupCharacter) Character {
	g.Normalize()

	extras := g.Extras
	if extras == nil {
		extras = &SheetExtras{}
	}

	stunts := make([]Stunt, len(g.Stunts))
	for i, name := range g.Stunts {
		stunts[i] = Stunt{Name: name}
		if i < len(extras.StuntDescriptions) {
			stunts[i].Description = extras.StuntDescriptions[i]
		}
	}

	c := Character{
		Kind:        extras.Kind,
		Name:        g.Name,
		HighConcept: g.Aspects[aspectHighConcept],
		Trouble:     g.Aspects[aspectTrouble],
		Aspect3:     g.Aspects[aspectThird],
		Aspect4:     g.Aspects[aspectFourth],
		Aspect5:     g.Aspects[aspectFifth],
		Notes:       extras.Notes,
		FateCurrent: g.FatePoints,
		FateRefresh: extras.FateRefresh,
		Skills:      copyIntMap(g.Skills),
		Approaches:  copyIntMap(extras.Approaches),
		Stunts:      stunts,
		Extras:      append([]string{}, extras.ExtrasList...),
		Stress: StressState{
			Physical: stressBoxesToIndices(g.PhysicalStress),
			Mental:   stressBoxesToIndices(g.MentalStress),
		},
		Consequences: copyStringMap(g.Consequences),
		AltRules:     extras.AltRules,
	}
	c.Normalize()
	return c
}

// stressIndicesToBoxes maps a filled-index list to a boolean array of at
// least the given capacity. Indices beyond the capacity extend the array
// instead of being dropped, so the two representations may legitimately
// disagree on length without losing fill state.
func stressIndicesToBoxes(filled []int, capacity int) []bool {
	length := capacity
	for _, index := range filled {
		if index+1 > length {
			length = index + 1
		}
	}

	boxes := make([]bool, length)
	for _, index := range filled {
		if index >= 0 {
			boxes[index] = true
		}
	}
	return boxes
}

// stressBoxesToIndices maps a boolean array to the ascending list of
// filled indices, whatever the array length.
func stressBoxesToIndices(boxes []bool) []int {
	indices := make([]int, 0, len(boxes))
	for i, filled := range boxes {
		if filled {
			indices = append(indices, i)
		}
	}
	return indices
}

func copyIntMap(src map[string]int) map[string]int {
	dst := make(map[string]int, len(src))
	for key, value := range src {
		dst[key] = value
	}
	return dst
}

func copyStringMap(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for key, value := range src {
		dst[key] = value
	}
	return dst
}
