package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-trade-journal/internal/journal"
	"github.com/MKhiriev/go-trade-journal/models"
)

type detailModel struct {
	item models.ReflectionWithImages
	doc  journal.Document
}

func newDetailModel(item models.ReflectionWithImages) detailModel {
	return detailModel{item: item, doc: journal.ParseBody(item.Reflection.Body)}
}

var detailFields = []struct {
	label string
	key   string
}{
	{"Instrument", journal.FieldInstrument},
	{"Timeframe", journal.FieldTimeframe},
	{"Direction", journal.FieldDirection},
	{"Entry", journal.FieldEntryPrice},
	{"Exit", journal.FieldExitPrice},
	{"Quantity", journal.FieldQuantity},
	{"Prices", journal.FieldPrices},
	{"Setup", journal.FieldSetupName},
	{"Outcome", journal.FieldOutcome},
	{"PnL", journal.FieldPnL},
	{"Confidence", journal.FieldConfidence},
}

func (m detailModel) title() string {
	r := m.item.Reflection
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Sprintf("REFLECTION #%d", r.ID)
	}
	return fmt.Sprintf("REFLECTION #%d  %s", r.ID, r.Title)
}

func (m detailModel) View() string {
	var b strings.Builder
	r := m.item.Reflection

	fmt.Fprintf(&b, "%-11s│ %s\n", "Created", models.FormatTimestamp(r.CreatedAt))
	fmt.Fprintf(&b, "%-11s│ %s\n", "Updated", models.FormatTimestamp(r.UpdatedAt))
	fmt.Fprintf(&b, "%-11s│ %s\n", "Tags", valueOrDash(strings.Join(r.Tags, ", ")))

	if m.doc.Layout != journal.LayoutRaw {
		for _, f := range detailFields {
			v, _ := m.doc.Get(f.key)
			fmt.Fprintf(&b, "%-11s│ %s\n", f.label, valueOrDash(v))
		}
	}

	if len(m.doc.Checklist) > 0 {
		b.WriteString("\nChecklist\n")
		for _, item := range m.doc.Checklist {
			mark := "[ ]"
			if item.Checked {
				mark = "[x]"
			}
			fmt.Fprintf(&b, "  %s %s\n", mark, item.Text)
		}
	}

	if len(m.doc.Questions) > 0 {
		b.WriteString("\nAnalysis\n")
		for _, id := range sortedKeys(m.doc.Questions) {
			fmt.Fprintf(&b, "  [%s] %s\n", id, valueOrDash(m.doc.Questions[id]))
		}
	}

	if strings.TrimSpace(m.doc.Notes) != "" {
		b.WriteString("\nNotes\n")
		for _, line := range strings.Split(m.doc.Notes, "\n") {
			b.WriteString("  " + line + "\n")
		}
	}

	if len(m.item.Images) > 0 {
		b.WriteString("\nImages\n")
		for _, img := range m.item.Images {
			fmt.Fprintf(&b, "  %s (%d bytes encoded)\n", img.Name, len(img.DataURL))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
