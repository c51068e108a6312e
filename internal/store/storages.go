package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-trade-journal/internal/config"
	"github.com/MKhiriev/go-trade-journal/internal/logger"
)

// Storages groups the repositories sharing one database connection.
type Storages struct {
	// Reflections is the record store of reflections and images.
	Reflections ReflectionRepository
	// Settings is the key/value store under the template services.
	Settings SettingsRepository

	db *DB
}

// NewStorages opens the SQLite database from cfg.DB.DSN, applies pending
// migrations and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Debug().Str("func", "NewStorages").Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, unavailable(ErrOpeningDatabase, err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Reflections: NewReflectionRepository(db, log),
		Settings:    NewSettingsRepository(db, log),
		db:          db,
	}
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}

// Wipe destroys every collection in one step by removing the database.
// The Storages must not be used afterwards; every call fails with
// [ErrStorageUnavailable] until the caller opens new storages.
func (s *Storages) Wipe(ctx context.Context) error {
	logger.FromContext(ctx).Warn().Str("func", "Storages.Wipe").Msg("wiping all local data")
	return s.db.Destroy()
}
