package sheet

import (
	"fmt"
	"io"
	"sort"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/louisbranch/tabletop/internal/blades"
	"github.com/louisbranch/tabletop/internal/fate"
)

const (
	pdfMargin     = 15.0
	pdfLineHeight = 6.0
)

// WriteFatePDF renders a printable FATE sheet for the character.
func WriteFatePDF(w io.Writer, c fate.Character) error {
	c.Normalize()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.AddPage()

	writeTitle(pdf, c.Name, "FATE")

	writeSection(pdf, "Aspects")
	writeField(pdf, "High Concept", c.HighConcept)
	writeField(pdf, "Trouble", c.Trouble)
	for _, aspect := range []string{c.Aspect3, c.Aspect4, c.Aspect5} {
		if aspect != "" {
			writeField(pdf, "Aspect", aspect)
		}
	}

	writeField(pdf, "Fate Points", fmt.Sprintf("%d / refresh %d", c.FateCurrent, c.FateRefresh))

	if len(c.Skills) > 0 {
		writeSection(pdf, "Skills")
		writeRatings(pdf, c.Skills)
	}
	if len(c.Approaches) > 0 {
		writeSection(pdf, "Approaches")
		writeRatings(pdf, c.Approaches)
	}

	if len(c.Stunts) > 0 {
		writeSection(pdf, "Stunts")
		for _, stunt := range c.Stunts {
			writeField(pdf, stunt.Name, stunt.Description)
		}
	}

	writeSection(pdf, "Stress")
	writeField(pdf, "Physical", trackBoxes(c.PhysicalStressTrack().Boxes))
	writeField(pdf, "Mental", trackBoxes(c.MentalStressTrack().Boxes))

	writeConsequences(pdf, c.Consequences)

	if c.Notes != "" {
		writeSection(pdf, "Notes")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, pdfLineHeight, c.Notes, "", "L", false)
	}

	return pdf.Output(w)
}

// WriteBladesPDF renders a printable Blades sheet for the character.
func WriteBladesPDF(w io.Writer, c blades.Character) error {
	c.Normalize()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.AddPage()

	writeTitle(pdf, c.Name, "Blades in the Dark")
	if c.Alias != "" {
		writeField(pdf, "Alias", c.Alias)
	}
	writeField(pdf, "Playbook", c.Playbook)
	writeField(pdf, "Crew", c.Crew)
	writeField(pdf, "Heritage", c.Heritage)
	writeField(pdf, "Background", c.Background)
	writeField(pdf, "Vice", c.Vice)

	if len(c.Actions) > 0 {
		writeSection(pdf, "Actions")
		writeRatings(pdf, c.Actions)
	}

	writeSection(pdf, "Condition")
	writeField(pdf, "Stress", fmt.Sprintf("%d / %d", c.Stress, blades.StressBoxes))
	writeField(pdf, "Trauma", fmt.Sprintf("%d / %d", c.Trauma, blades.TraumaBoxes))
	writeField(pdf, "Healing", fmt.Sprintf("%d / %d", c.Healing, blades.HealingClock))
	writeField(pdf, "Load", fmt.Sprintf("%s (%d of %d slots)", c.Load, c.LoadFilled, blades.LoadSlots(c.Load)))

	if len(c.Harm) > 0 {
		writeSection(pdf, "Harm")
		writeStringMap(pdf, c.Harm)
	}

	if len(c.Abilities) > 0 {
		writeSection(pdf, "Abilities")
		for _, ability := range c.Abilities {
			writeField(pdf, "", ability)
		}
	}

	if len(c.Contacts) > 0 {
		writeSection(pdf, "Contacts")
		for _, contact := range c.Contacts {
			writeField(pdf, contact.Name, fmt.Sprintf("(%s) %s", contact.Status, contact.Description))
		}
	}

	if c.Notes != "" {
		writeSection(pdf, "Notes")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, pdfLineHeight, c.Notes, "", "L", false)
	}

	return pdf.Output(w)
}

func writeTitle(pdf *gofpdf.Fpdf, name, system string) {
	if name == "" {
		name = "Unnamed Character"
	}
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, name)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, system)
	pdf.Ln(10)
}

func writeSection(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, pdfLineHeight, title)
	pdf.Ln(pdfLineHeight + 1)
}

func writeField(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	if label != "" {
		pdf.Cell(40, pdfLineHeight, label)
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, pdfLineHeight, value, "", "L", false)
}

func writeRatings(pdf *gofpdf.Fpdf, ratings map[string]int) {
	names := make([]string, 0, len(ratings))
	for name := range ratings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		writeField(pdf, name, fmt.Sprintf("%+d", ratings[name]))
	}
}

func writeStringMap(pdf *gofpdf.Fpdf, values map[string]string) {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		writeField(pdf, key, values[key])
	}
}

func writeConsequences(pdf *gofpdf.Fpdf, consequences map[string]string) {
	if len(consequences) == 0 {
		return
	}
	writeSection(pdf, "Consequences")
	writeStringMap(pdf, consequences)
}

func trackBoxes(boxes []bool) string {
	out := make([]byte, 0, len(boxes)*2)
	for i, filled := range boxes {
		if i > 0 {
			out = append(out, ' ')
		}
		if filled {
			out = append(out, 'X')
		} else {
			out = append(out, 'O')
		}
	}
	return string(out)
}
