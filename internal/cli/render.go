package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/go-trade-journal/internal/journal"
	"github.com/MKhiriev/go-trade-journal/internal/query"
	"github.com/MKhiriev/go-trade-journal/models"
)

const dash = "-"

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return dash
	}
	return s
}

func sortedKeys(m map[string]string) []string {
	ids := make([]string, 0, len(m))
	for k := range m {
		ids = append(ids, k)
	}
	slices.Sort(ids)
	return ids
}

var fieldLabels = []struct {
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
	{"Date", journal.FieldDate},
}

func writeReflection(w io.Writer, item models.ReflectionWithImages, questions []models.ReflectionQuestion) {
	r := item.Reflection
	doc := journal.ParseBody(r.Body)

	fmt.Fprintf(w, "#%d %s\n", r.ID, orDash(r.Title))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Created\t%s\n", models.FormatTimestamp(r.CreatedAt))
	fmt.Fprintf(tw, "Updated\t%s\n", models.FormatTimestamp(r.UpdatedAt))
	fmt.Fprintf(tw, "Tags\t%s\n", orDash(strings.Join(r.Tags, ", ")))
	if doc.Layout != journal.LayoutRaw {
		for _, f := range fieldLabels {
			if v, _ := doc.Get(f.key); v != "" {
				fmt.Fprintf(tw, "%s\t%s\n", f.label, v)
			}
		}
	}
	tw.Flush()

	if len(doc.Checklist) > 0 {
		fmt.Fprintln(w, "\nChecklist")
		for _, c := range doc.Checklist {
			mark := " "
			if c.Checked {
				mark = "x"
			}
			fmt.Fprintf(w, "  [%s] %s\n", mark, c.Text)
		}
	}

	if len(doc.Questions) > 0 {
		labels := make(map[string]string, len(questions))
		for _, q := range questions {
			labels[q.ID] = q.Label
		}
		fmt.Fprintln(w, "\nReflection")
		for _, id := range sortedKeys(doc.Questions) {
			label := labels[id]
			if label == "" {
				label = id
			}
			fmt.Fprintf(w, "  %s\n    %s\n", label, orDash(doc.Questions[id]))
		}
	}

	if strings.TrimSpace(doc.Notes) != "" {
		fmt.Fprintf(w, "\nNotes\n%s\n", doc.Notes)
	}

	if len(item.Images) > 0 {
		fmt.Fprintln(w, "\nImages")
		for _, img := range item.Images {
			fmt.Fprintf(w, "  %s\n", img.Name)
		}
	}
}

func writeStats(w io.Writer, s query.Stats) {
	fmt.Fprintf(w, "Net PnL: %s  Win rate: %s  (%d wins, %d losses)\n",
		s.NetPnLText(), s.WinRateText(), s.Wins, s.Losses)
}

func writeReflections(w io.Writer, items []models.Reflection) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No reflections.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tTITLE\tTAGS")
	for _, r := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			r.ID, r.CreatedAt.Format(models.DateLayout), orDash(r.Title), orDash(strings.Join(r.Tags, ",")))
	}
	tw.Flush()
}

func writePage(w io.Writer, p query.Page) {
	if p.Total == 0 {
		fmt.Fprintln(w, "No reflections.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tINSTRUMENT\tDIR\tSETUP\tOUTCOME\tPNL\tTAGS")
	for _, row := range p.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Reflection.ID,
			row.Reflection.CreatedAt.Format(models.DateLayout),
			orDash(row.Doc.Instrument),
			orDash(row.Doc.Direction),
			orDash(row.Title()),
			orDash(row.Doc.Outcome),
			orDash(row.Doc.PnL),
			orDash(strings.Join(row.Reflection.Tags, ",")),
		)
	}
	tw.Flush()
	fmt.Fprintf(w, "Page %d/%d (%d total)\n", p.Page, p.PageCount, p.Total)
}
