// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-trade-journal/models"
)

const (
	insertReflection = `
		INSERT INTO reflections (
			title,
			body,
			tags,
			created_at,
			updated_at
		) VALUES (?, ?, ?, ?, ?);`

	insertImage = `
		INSERT INTO images (
			reflection_id,
			name,
			data_url,
			created_at
		) VALUES (?, ?, ?, ?);`

	getReflection = `
		SELECT
			id,
			title,
			body,
			tags,
			created_at,
			updated_at
		FROM reflections
		WHERE id = ?;`

	getAllReflections = `
		SELECT
			id,
			title,
			body,
			tags,
			created_at,
			updated_at
		FROM reflections
		ORDER BY id;`

	getReflectionImages = `
		SELECT
			id,
			reflection_id,
			name,
			data_url,
			created_at
		FROM images
		WHERE reflection_id = ?
		ORDER BY created_at, id;`

	getAllImages = `
		SELECT
			id,
			reflection_id,
			name,
			data_url,
			created_at
		FROM images
		ORDER BY id;`

	deleteReflectionImages = `DELETE FROM images WHERE reflection_id = ?;`

	deleteReflection = `DELETE FROM reflections WHERE id = ?;`

	countRows = `
		SELECT
			(SELECT COUNT(*) FROM reflections),
			(SELECT COUNT(*) FROM images);`

	getSetting = `
		SELECT
			key,
			value,
			updated_at
		FROM settings
		WHERE key = ?;`

	getAllSettings = `
		SELECT
			key,
			value,
			updated_at
		FROM settings
		ORDER BY key;`

	upsertSetting = `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value      = excluded.value,
			updated_at = excluded.updated_at;`
)

var reflectionColumns = []string{"id", "title", "body", "tags", "created_at", "updated_at"}

// tagMembership matches rows whose JSON tag array contains the argument
// exactly.
const tagMembership = "EXISTS (SELECT 1 FROM json_each(reflections.tags) WHERE json_each.value = ?)"

// buildListReflectionsQuery builds the SELECT behind List. Tag membership and
// the date range are evaluated by SQLite; the free-text query is matched in
// Go, so LIMIT is only pushed down when no query is given.
func buildListReflectionsQuery(filters models.ReflectionFilters) (string, []any, error) {
	qb := sq.Select(reflectionColumns...).
		From("reflections").
		OrderBy("created_at DESC", "id DESC")

	if filters.Tag != "" {
		qb = qb.Where(tagMembership, filters.Tag)
	}
	if start, ok := models.ParseDateBound(filters.StartDate, false); ok {
		qb = qb.Where(sq.GtOrEq{"created_at": models.FormatTimestamp(start)})
	}
	if end, ok := models.ParseDateBound(filters.EndDate, true); ok {
		qb = qb.Where(sq.LtOrEq{"created_at": models.FormatTimestamp(end)})
	}
	if filters.Query == "" && filters.Limit > 0 {
		qb = qb.Limit(uint64(filters.Limit))
	}

	return qb.ToSql()
}

// buildUpdateReflectionQuery builds an UPDATE touching only the supplied
// fields; updated_at is always set.
func buildUpdateReflectionQuery(id int64, update models.ReflectionUpdate, tags any, updatedAt time.Time) (string, []any, error) {
	qb := sq.Update("reflections")

	if update.Title != nil {
		qb = qb.Set("title", *update.Title)
	}
	if update.Body != nil {
		qb = qb.Set("body", *update.Body)
	}
	if update.Tags != nil {
		qb = qb.Set("tags", tags)
	}

	return qb.Set("updated_at", models.FormatTimestamp(updatedAt)).
		Where(sq.Eq{"id": id}).
		ToSql()
}
