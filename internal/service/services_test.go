package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-trade-journal/internal/config"
	"github.com/MKhiriev/go-trade-journal/internal/journal"
	"github.com/MKhiriev/go-trade-journal/internal/logger"
	"github.com/MKhiriev/go-trade-journal/internal/query"
	"github.com/MKhiriev/go-trade-journal/internal/store"
	"github.com/MKhiriev/go-trade-journal/models"
)

func TestServices_DraftToBrowse(t *testing.T) {
	ctx := context.Background()
	cfg := config.StructuredConfig{
		Storage: config.Storage{DB: config.DB{DSN: ":memory:"}},
		UI:      config.UI{PageSize: 25, MaxImages: 2},
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	services := NewServices(storages, cfg, logger.Nop())

	_, err = services.Templates.AddChecklistItem(ctx, "Check calendar")
	require.NoError(t, err)

	draft, err := services.NewDraft(ctx)
	require.NoError(t, err)
	assert.Len(t, draft.Draft().Checklist, 4)

	for k, v := range map[string]string{
		journal.FieldInstrument: "ES",
		journal.FieldTimeframe:  "5m",
		journal.FieldDirection:  "long",
		journal.FieldEntryPrice: "5000",
		journal.FieldExitPrice:  "5002.5",
		journal.FieldQuantity:   "2",
		journal.FieldSetupName:  "ORB",
		journal.FieldOutcome:    "Win",
		journal.FieldConfidence: "4",
		journal.FieldTags:       "orb",
	} {
		require.NoError(t, draft.Set(k, v))
	}
	assert.Equal(t, 2, draft.AddImages(
		models.NewImage{Name: "a.png", DataURL: "data:a"},
		models.NewImage{Name: "b.png", DataURL: "data:b"},
		models.NewImage{Name: "c.png", DataURL: "data:c"},
	))

	saved, err := services.Reflections.Save(ctx, draft.Draft())
	require.NoError(t, err)
	assert.Len(t, saved.Images, 2)

	result, err := services.Reflections.Browse(ctx, query.Criteria{Tag: "orb"}, 1, cfg.UI.PageSize)
	require.NoError(t, err)
	require.Len(t, result.Page.Rows, 1)
	assert.Equal(t, "250.00", result.Stats.NetPnLText())
	assert.Equal(t, "100.0%", result.Stats.WinRateText())
}
