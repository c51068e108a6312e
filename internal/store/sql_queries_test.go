// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-trade-journal/models"
)

func Test_buildListReflectionsQuery_NoFilters(t *testing.T) {
	query, args, err := buildListReflectionsQuery(models.ReflectionFilters{})
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.Equal(t, "SELECT id, title, body, tags, created_at, updated_at FROM reflections ORDER BY created_at DESC, id DESC", query)
}

func Test_buildListReflectionsQuery_AllFilters(t *testing.T) {
	query, args, err := buildListReflectionsQuery(models.ReflectionFilters{
		Tag:       "breakout",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
		Limit:     5,
	})
	require.NoError(t, err)

	require.Equal(t, []any{"breakout", "2024-01-01T00:00:00.000Z", "2024-01-31T23:59:59.999Z"}, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "json_each(reflections.tags)")
	require.Contains(t, q, "created_at >= ?")
	require.Contains(t, q, "created_at <= ?")
	require.Contains(t, q, "order by created_at desc, id desc")
	require.True(t, strings.HasSuffix(q, "limit 5"), query)
}

func Test_buildListReflectionsQuery_LimitAppliedAfterTextMatch(t *testing.T) {
	query, args, err := buildListReflectionsQuery(models.ReflectionFilters{Query: "es", Limit: 5})
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.NotContains(t, strings.ToLower(query), "limit")
}

func Test_buildListReflectionsQuery_IgnoresBadBounds(t *testing.T) {
	query, args, err := buildListReflectionsQuery(models.ReflectionFilters{
		StartDate: "last week",
		EndDate:   "2024-13-45",
	})
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.NotContains(t, query, "WHERE")
}

func Test_buildUpdateReflectionQuery(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	title, body := "T", "B"
	tags := []string{"x"}

	tests := []struct {
		name      string
		update    models.ReflectionUpdate
		tags      any
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "empty update only touches updated_at",
			wantQuery: "UPDATE reflections SET updated_at = ? WHERE id = ?",
			wantArgs:  []any{"2024-03-01T10:00:00.000Z", int64(3)},
		},
		{
			name:      "title",
			update:    models.ReflectionUpdate{Title: &title},
			wantQuery: "UPDATE reflections SET title = ?, updated_at = ? WHERE id = ?",
			wantArgs:  []any{"T", "2024-03-01T10:00:00.000Z", int64(3)},
		},
		{
			name:      "all fields",
			update:    models.ReflectionUpdate{Title: &title, Body: &body, Tags: &tags},
			tags:      `["x"]`,
			wantQuery: "UPDATE reflections SET title = ?, body = ?, tags = ?, updated_at = ? WHERE id = ?",
			wantArgs:  []any{"T", "B", `["x"]`, "2024-03-01T10:00:00.000Z", int64(3)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateReflectionQuery(3, tt.update, tt.tags, ts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
