package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-trade-journal/internal/logger"
	"github.com/MKhiriev/go-trade-journal/internal/store"
	"github.com/MKhiriev/go-trade-journal/models"
)

// WriteBackup writes snapshot as indented JSON.
func WriteBackup(w io.Writer, snapshot models.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingBackup, err)
	}
	return nil
}

// ReadBackup decodes a backup written by [WriteBackup].
func ReadBackup(r io.Reader) (models.Snapshot, error) {
	var snapshot models.Snapshot
	if err := json.NewDecoder(r).Decode(&snapshot); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrReadingBackup, err)
	}
	return snapshot, nil
}

// RestoreResult counts what a restore wrote.
type RestoreResult struct {
	Reflections int
	Images      int
	Settings    int
}

// Restore re-creates every reflection of snapshot with its images and then
// writes every setting. Reflections get new ids but keep their timestamps;
// images follow the reflection they referenced in the backup. Images whose
// reflection is not part of the backup are skipped.
//
// Restore stops at the first failure. Reflections created before it remain.
func Restore(ctx context.Context, reflections store.ReflectionRepository, settings store.SettingsRepository, snapshot models.Snapshot) (RestoreResult, error) {
	log := logger.FromContext(ctx)

	byReflection := make(map[int64][]models.NewImage)
	for _, img := range snapshot.Images {
		byReflection[img.ReflectionID] = append(byReflection[img.ReflectionID], models.NewImage{
			Name:    img.Name,
			DataURL: img.DataURL,
		})
	}

	var result RestoreResult
	for _, r := range snapshot.Reflections {
		images := byReflection[r.ID]
		delete(byReflection, r.ID)

		created, err := reflections.Create(ctx, models.NewReflection{
			Title:     r.Title,
			Body:      r.Body,
			Tags:      r.Tags,
			Images:    images,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		})
		if err != nil {
			log.Err(err).Str("func", "export.Restore").Int64("backup_id", r.ID).Msg("failed to restore reflection")
			return result, fmt.Errorf("%w: reflection %d: %w", ErrRestoringBackup, r.ID, err)
		}
		result.Reflections++
		result.Images += len(created.Images)
	}

	for id, orphans := range byReflection {
		log.Warn().Str("func", "export.Restore").Int64("backup_id", id).Int("images", len(orphans)).
			Msg("skipping images of a reflection missing from the backup")
	}

	for _, s := range snapshot.Settings {
		if _, err := settings.Put(ctx, s.Key, s.Value); err != nil {
			log.Err(err).Str("func", "export.Restore").Str("key", s.Key).Msg("failed to restore setting")
			return result, fmt.Errorf("%w: setting %q: %w", ErrRestoringBackup, s.Key, err)
		}
		result.Settings++
	}

	return result, nil
}
