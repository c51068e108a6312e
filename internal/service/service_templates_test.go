// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-trade-journal/internal/logger"
	"github.com/MKhiriev/go-trade-journal/internal/mock"
	"github.com/MKhiriev/go-trade-journal/models"
)

type seqIDs struct {
	prefix string
	n      int
}

func (g *seqIDs) Generate() string {
	g.n++
	return g.prefix + "-" + string(rune('0'+g.n))
}

func newTestTemplateSvc(t *testing.T, ctrl *gomock.Controller) (*templateService, *mock.MockSettingsRepository) {
	t.Helper()
	settings := mock.NewMockSettingsRepository(ctrl)

	svc := NewTemplateService(settings, logger.Nop()).(*templateService)
	svc.itemIDs = &seqIDs{prefix: "item"}
	svc.questionIDs = &seqIDs{prefix: "question"}
	return svc, settings
}

func stored(key, value string) *models.Setting {
	return &models.Setting{Key: key, Value: value}
}

// capturePut records the value written under key.
func capturePut(settings *mock.MockSettingsRepository, key string, into *string) {
	settings.EXPECT().Put(gomock.Any(), key, gomock.Any()).
		DoAndReturn(func(_ context.Context, k, v string) (models.Setting, error) {
			*into = v
			return models.Setting{Key: k, Value: v}, nil
		})
}

// ── Getters ──────────────────────────────────────────────────────────────────

func TestTemplateService_ChecklistTemplate(t *testing.T) {
	tests := []struct {
		name    string
		setting *models.Setting
		want    []models.ChecklistTemplateItem
	}{
		{name: "absent", setting: nil, want: DefaultChecklistTemplate()},
		{name: "blank", setting: stored(KeyChecklistTemplate, ""), want: DefaultChecklistTemplate()},
		{name: "not json", setting: stored(KeyChecklistTemplate, "{oops"), want: DefaultChecklistTemplate()},
		{name: "json null", setting: stored(KeyChecklistTemplate, "null"), want: DefaultChecklistTemplate()},
		{name: "not an array", setting: stored(KeyChecklistTemplate, `{"id":"a"}`), want: DefaultChecklistTemplate()},
		{name: "item without text", setting: stored(KeyChecklistTemplate, `[{"id":"a","text":""}]`), want: DefaultChecklistTemplate()},
		{name: "empty list is kept", setting: stored(KeyChecklistTemplate, `[]`), want: []models.ChecklistTemplateItem{}},
		{
			name:    "stored",
			setting: stored(KeyChecklistTemplate, `[{"id":"x","text":"Check news"}]`),
			want:    []models.ChecklistTemplateItem{{ID: "x", Text: "Check news"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, settings := newTestTemplateSvc(t, ctrl)
			settings.EXPECT().Get(gomock.Any(), KeyChecklistTemplate).Return(tt.setting, nil)

			got, err := svc.ChecklistTemplate(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTemplateService_ReflectionQuestions_RequiresPlaceholder(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings := newTestTemplateSvc(t, ctrl)
	settings.EXPECT().Get(gomock.Any(), KeyReflectionQuestions).
		Return(stored(KeyReflectionQuestions, `[{"id":"q","label":"Why?"}]`), nil)

	got, err := svc.ReflectionQuestions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultReflectionQuestions(), got)
}

func TestTemplateService_TargetsAndSections(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings := newTestTemplateSvc(t, ctrl)
	ctx := context.Background()

	settings.EXPECT().Get(gomock.Any(), KeyTargetTemplates).Return(stored(KeyTargetTemplates, `["VWAP"]`), nil)
	settings.EXPECT().Get(gomock.Any(), KeySectionOrder).Return(nil, nil)

	targets, err := svc.TargetTemplates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"VWAP"}, targets)

	sections, err := svc.SectionOrder(ctx)
	require.NoError(t, err)
	require.Len(t, sections, 4)
	assert.Equal(t, "evidence", sections[3].ID)
	assert.Equal(t, "Charts & Notes", sections[3].Label)
}

func TestTemplateService_GetStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings := newTestTemplateSvc(t, ctrl)
	errDisk := errors.New("disk")
	settings.EXPECT().Get(gomock.Any(), KeyChecklistTemplate).Return(nil, errDisk)

	_, err := svc.ChecklistTemplate(context.Background())
	assert.ErrorIs(t, err, errDisk)
}

// ── Mutations ────────────────────────────────────────────────────────────────

func TestTemplateService_SaveChecklistTemplate_Cleans(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings := newTestTemplateSvc(t, ctrl)

	var written string
	capturePut(settings, KeyChecklistTemplate, &written)

	got, err := svc.SaveChecklistTemplate(context.Background(), []models.ChecklistTemplateItem{
		{ID: "plan", Text: "  Plan the trade "},
		{ID: "blank", Text: "   "},
		{Text: "New item"},
	})
	require.NoError(t, err)

	want := []models.ChecklistTemplateItem{{ID: "plan", Text: "Plan the trade"}, {ID: "item-1", Text: "New item"}}
	assert.Equal(t, want, got)

	var decoded []models.ChecklistTemplateItem
	require.NoError(t, json.Unmarshal([]byte(written), &decoded))
	assert.Equal(t, want, decoded)
}

func TestTemplateService_AddChecklistItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings := newTestTemplateSvc(t, ctrl)
	ctx := context.Background()

	settings.EXPECT().Get(gomock.Any(), KeyChecklistTemplate).Return(nil, nil)
	var written string
	capturePut(settings, KeyChecklistTemplate, &written)

	got, err := svc.AddChecklistItem(ctx, " Check calendar ")
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, models.ChecklistTemplateItem{ID: "item-1", Text: "Check calendar"}, got[3])
	assert.True(t, strings.Contains(written, `"item-1"`))

	_, err = svc.AddChecklistItem(ctx, "  ")
	assert.ErrorIs(t, err, ErrEmptyTemplateItem)
}

func TestTemplateService_AddChecklistItem_RealIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := mock.NewMockSettingsRepository(ctrl)
	svc := NewTemplateService(settings, logger.Nop())

	settings.EXPECT().Get(gomock.Any(), KeyChecklistTemplate).Return(stored(KeyChecklistTemplate, `[]`), nil)
	settings.EXPECT().Put(gomock.Any(), KeyChecklistTemplate, gomock.Any()).Return(models.Setting{}, nil)

	got, err := svc.AddChecklistItem(context.Background(), "x")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, strings.HasPrefix(got[0].ID, "item-"))
}

func TestTemplateService_RemoveChecklistItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings := newTestTemplateSvc(t, ctrl)
	ctx := context.Background()

	settings.EXPECT().Get(gomock.Any(), KeyChecklistTemplate).Return(nil, nil).Times(2)
	var written string
	capturePut(settings, KeyChecklistTemplate, &written)

	got, err := svc.RemoveChecklistItem(ctx, "risk")
	require.NoError(t, err)
	assert.Equal(t, []models.ChecklistTemplateItem{{ID: "plan", Text: "Plan the trade"}, {ID: "confirm", Text: "Confirm setup"}}, got)

	_, err = svc.RemoveChecklistItem(ctx, "nope")
	assert.ErrorIs(t, err, ErrTemplateItemNotFound)
}

func TestTemplateService_MoveReflectionQuestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings := newTestTemplateSvc(t, ctrl)
	ctx := context.Background()

	settings.EXPECT().Get(gomock.Any(), KeyReflectionQuestions).Return(nil, nil).Times(2)
	var written string
	capturePut(settings, KeyReflectionQuestions, &written)

	got, err := svc.MoveReflectionQuestion(ctx, "improvement", -1)
	require.NoError(t, err)
	assert.Equal(t, []string{"thesis", "improvement", "risk"}, questionIDs(got))

	// already first: nothing is written
	got, err = svc.MoveReflectionQuestion(ctx, "thesis", -1)
	require.NoError(t, err)
	assert.Equal(t, []string{"thesis", "risk", "improvement"}, questionIDs(got))
}

func TestTemplateService_SaveTargetTemplates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings := newTestTemplateSvc(t, ctrl)

	var written string
	capturePut(settings, KeyTargetTemplates, &written)

	got, err := svc.SaveTargetTemplates(context.Background(), []string{" VWAP ", "", "Prior close"})
	require.NoError(t, err)
	assert.Equal(t, []string{"VWAP", "Prior close"}, got)
	assert.JSONEq(t, `["VWAP","Prior close"]`, written)
}

func questionIDs(qs []models.ReflectionQuestion) []string {
	ids := make([]string, 0, len(qs))
	for _, q := range qs {
		ids = append(ids, q.ID)
	}
	return ids
}

// ── Flags ────────────────────────────────────────────────────────────────────

func TestTemplateService_ChecklistBlocking(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings := newTestTemplateSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		settings.EXPECT().Get(gomock.Any(), KeyChecklistBlocking).Return(nil, nil),
		settings.EXPECT().Get(gomock.Any(), KeyChecklistBlocking).Return(stored(KeyChecklistBlocking, "yes"), nil),
		settings.EXPECT().Get(gomock.Any(), KeyChecklistBlocking).Return(stored(KeyChecklistBlocking, "true"), nil),
	)
	for _, want := range []bool{false, false, true} {
		got, err := svc.ChecklistBlocking(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	settings.EXPECT().Put(gomock.Any(), KeyChecklistBlocking, "true").Return(models.Setting{}, nil)
	require.NoError(t, svc.SetChecklistBlocking(ctx, true))
}

func TestTemplateService_ChecklistDue(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings := newTestTemplateSvc(t, ctrl)
	ctx := context.Background()
	today := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)

	settings.EXPECT().Put(gomock.Any(), KeyChecklistCompletedOn, "2024-05-02").Return(models.Setting{}, nil)
	require.NoError(t, svc.MarkChecklistComplete(ctx, today))

	gomock.InOrder(
		settings.EXPECT().Get(gomock.Any(), KeyChecklistCompletedOn).Return(nil, nil),
		settings.EXPECT().Get(gomock.Any(), KeyChecklistCompletedOn).Return(stored(KeyChecklistCompletedOn, "2024-05-01"), nil),
		settings.EXPECT().Get(gomock.Any(), KeyChecklistCompletedOn).Return(stored(KeyChecklistCompletedOn, "2024-05-02"), nil),
	)
	for _, want := range []bool{true, true, false} {
		due, err := svc.ChecklistDue(ctx, today)
		require.NoError(t, err)
		assert.Equal(t, want, due)
	}
}

func TestMove(t *testing.T) {
	s := []int{1, 2, 3, 4}

	assert.True(t, move(s, 0, 2))
	assert.Equal(t, []int{2, 3, 1, 4}, s)

	assert.True(t, move(s, 3, -10))
	assert.Equal(t, []int{4, 2, 3, 1}, s)

	assert.False(t, move(s, 3, 1))
	assert.Equal(t, []int{4, 2, 3, 1}, s)
}
