package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-trade-journal/internal/logger"
	"github.com/MKhiriev/go-trade-journal/models"
)

type settingsRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: logger,
		now:    models.Now,
	}
}

func (s *settingsRepository) Get(ctx context.Context, key string) (*models.Setting, error) {
	log := logger.FromContext(ctx)

	setting, err := scanSetting(s.DB.QueryRowContext(ctx, getSetting, key))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).Str("func", "settingsRepository.Get").Str("key", key).Msg("failed to read setting")
		return nil, unavailable(ErrScanningRow, err)
	}

	return &setting, nil
}

func (s *settingsRepository) Put(ctx context.Context, key, value string) (models.Setting, error) {
	log := logger.FromContext(ctx)

	now := s.now()
	if _, err := s.DB.ExecContext(ctx, upsertSetting, key, value, models.FormatTimestamp(now)); err != nil {
		log.Err(err).Str("func", "settingsRepository.Put").Str("key", key).Msg("failed to upsert setting")
		return models.Setting{}, unavailable(ErrExecutingStatement, err)
	}

	return models.Setting{
		Key:       key,
		Value:     value,
		UpdatedAt: now,
	}, nil
}

func (s *settingsRepository) All(ctx context.Context) ([]models.Setting, error) {
	log := logger.FromContext(ctx)

	settings, err := queryAll(ctx, s.DB, scanSetting, getAllSettings)
	if err != nil {
		log.Err(err).Str("func", "settingsRepository.All").Msg("failed to read settings")
		return nil, err
	}

	return settings, nil
}

func scanSetting(s rowScanner) (models.Setting, error) {
	var (
		item      models.Setting
		updatedAt string
	)

	if err := s.Scan(&item.Key, &item.Value, &updatedAt); err != nil {
		return models.Setting{}, err
	}

	var err error
	if item.UpdatedAt, err = models.ParseTimestamp(updatedAt); err != nil {
		return models.Setting{}, fmt.Errorf("setting %q updated_at: %w", item.Key, err)
	}

	return item, nil
}
