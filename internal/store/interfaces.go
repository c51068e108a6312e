package store

import (
	"context"

	"github.com/MKhiriev/go-trade-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ReflectionRepository is the durable store of reflections and their images.
//
// Absent records are reported as a nil result with a nil error; an error
// always means the storage itself failed and wraps [ErrStorageUnavailable].
type ReflectionRepository interface {
	// Create inserts the reflection and all of its images in one
	// transaction and returns the stored rows with their assigned ids.
	Create(ctx context.Context, input models.NewReflection) (models.ReflectionWithImages, error)
	// Get returns the reflection with its images, or nil when absent.
	Get(ctx context.Context, id int64) (*models.ReflectionWithImages, error)
	// List returns matching reflections, newest first. Never nil.
	List(ctx context.Context, filters models.ReflectionFilters) ([]models.Reflection, error)
	// Update changes only the supplied fields and refreshes UpdatedAt.
	// Returns nil when the reflection does not exist.
	Update(ctx context.Context, id int64, update models.ReflectionUpdate) (*models.Reflection, error)
	// Delete removes the reflection and its images atomically. Unknown ids
	// are a no-op.
	Delete(ctx context.Context, id int64) error
	// ExportAll reads every reflection, image and setting in one
	// transaction.
	ExportAll(ctx context.Context) (models.Snapshot, error)
	// Summary counts the stored reflections and images.
	Summary(ctx context.Context) (models.DataSummary, error)
}

// SettingsRepository is the generic key/value store backing templates and
// flags. It never inspects values.
type SettingsRepository interface {
	// Get returns the setting or nil when the key was never written.
	Get(ctx context.Context, key string) (*models.Setting, error)
	// Put upserts the value and refreshes UpdatedAt.
	Put(ctx context.Context, key, value string) (models.Setting, error)
	// All returns every setting ordered by key.
	All(ctx context.Context) ([]models.Setting, error)
}
