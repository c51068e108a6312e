// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-trade-journal/internal/journal"
	"github.com/MKhiriev/go-trade-journal/models"
)

// CSVHeader is the first row of a CSV export.
var CSVHeader = []string{
	"Date",
	"Instrument",
	"Direction",
	"Setup Name",
	"Entry Price",
	"Exit Price",
	"Quantity",
	"PnL",
	"Outcome",
	"Confidence",
	"Tags",
	"Analysis (Q&A)",
}

// CSVFileName is the suggested name of a CSV export made on day t.
func CSVFileName(t time.Time) string {
	return "trading_journal_" + t.UTC().Format(models.DateLayout) + ".csv"
}

// BackupFileName is the suggested name of a JSON backup made on day t.
func BackupFileName(t time.Time) string {
	return "trading_journal_backup_" + t.UTC().Format(models.DateLayout) + ".json"
}

// WriteCSV writes one row per reflection, in the given order, after the
// header row.
func WriteCSV(w io.Writer, reflections []models.Reflection) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingCSV, err)
	}
	for _, r := range reflections {
		if err := cw.Write(csvRecord(r)); err != nil {
			return fmt.Errorf("%w: reflection %d: %w", ErrWritingCSV, r.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingCSV, err)
	}
	return nil
}

func csvRecord(r models.Reflection) []string {
	doc := journal.ParseBody(r.Body)

	date := doc.Date
	if date == "" {
		date = models.FormatTimestamp(r.CreatedAt)
	}
	setup := doc.SetupName
	if setup == "" {
		setup = r.Title
	}

	return []string{
		date,
		doc.Instrument,
		doc.Direction,
		setup,
		doc.EntryPrice,
		doc.ExitPrice,
		doc.Quantity,
		doc.PnL,
		doc.Outcome,
		doc.Confidence,
		strings.Join(r.Tags, "; "),
		analysis(doc.Questions),
	}
}

// analysis flattens question answers to "[id]: answer | ..." ordered by id.
func analysis(questions map[string]string) string {
	ids := make([]string, 0, len(questions))
	for id := range questions {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, "["+id+"]: "+questions[id])
	}
	return strings.Join(parts, " | ")
}
