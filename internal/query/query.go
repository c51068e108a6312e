// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package query derives filtered lists, statistics and pages from
// reflections already loaded into memory. Nothing in this package writes to
// the store or mutates its inputs.
package query

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-trade-journal/internal/journal"
	"github.com/MKhiriev/go-trade-journal/models"
)

// Row pairs a reflection with its parsed body.
type Row struct {
	Reflection models.Reflection
	Doc        journal.Document
}

// Title is the setup name, falling back to the reflection title.
func (r Row) Title() string {
	if r.Doc.SetupName != "" {
		return r.Doc.SetupName
	}
	return r.Reflection.Title
}

// Rows parses every reflection body.
func Rows(reflections []models.Reflection) []Row {
	rows := make([]Row, 0, len(reflections))
	for _, r := range reflections {
		rows = append(rows, Row{Reflection: r, Doc: journal.ParseBody(r.Body)})
	}
	return rows
}

// Criteria holds the optional, AND'ed predicates of [Filter]. Empty fields
// match everything.
type Criteria struct {
	Instrument string
	Direction  string
	Outcome    string
	Tag        string
	Keyword    string
	StartDate  string
	EndDate    string
}

// IsEmpty reports whether no predicate is set.
func (c Criteria) IsEmpty() bool {
	return c == Criteria{}
}

// Filter returns the rows matching every set predicate, preserving order.
//
// Instrument, direction and outcome compare case-insensitively and exactly.
// Tag requires exact membership in the reflection's tags. Keyword is a
// case-insensitive substring of the row's haystack. Date bounds are
// inclusive on CreatedAt; see [models.ParseDateBound].
func Filter(rows []Row, c Criteria) []Row {
	keyword := strings.ToLower(strings.TrimSpace(c.Keyword))
	start, hasStart := models.ParseDateBound(c.StartDate, false)
	end, hasEnd := models.ParseDateBound(c.EndDate, true)

	result := make([]Row, 0, len(rows))
	for _, row := range rows {
		if c.Instrument != "" && !strings.EqualFold(row.Doc.Instrument, c.Instrument) {
			continue
		}
		if c.Direction != "" && !strings.EqualFold(row.Doc.Direction, c.Direction) {
			continue
		}
		if c.Outcome != "" && !strings.EqualFold(row.Doc.Outcome, c.Outcome) {
			continue
		}
		if c.Tag != "" && !row.Reflection.HasTag(c.Tag) {
			continue
		}
		if keyword != "" && !strings.Contains(Haystack(row), keyword) {
			continue
		}
		if hasStart && row.Reflection.CreatedAt.Before(start) {
			continue
		}
		if hasEnd && row.Reflection.CreatedAt.After(end) {
			continue
		}
		result = append(result, row)
	}

	return result
}

// Haystack is the lower-cased text searched by keyword filters: setup
// name, tag text, notes, every question answer and the raw body.
func Haystack(row Row) string {
	parts := []string{
		row.Doc.SetupName,
		row.Doc.Tags,
		row.Doc.Notes,
		strings.Join(row.Doc.Answers(), " "),
		row.Reflection.Body,
	}
	parts = slices.DeleteFunc(parts, func(s string) bool { return s == "" })

	return strings.ToLower(strings.Join(parts, " "))
}

// UniqueTags returns the sorted set of tags used by rows.
func UniqueTags(rows []Row) []string {
	var tags []string
	for _, row := range rows {
		tags = append(tags, row.Reflection.Tags...)
	}
	slices.Sort(tags)
	return slices.Compact(tags)
}
