package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-trade-journal/internal/logger"
	"github.com/MKhiriev/go-trade-journal/models"
)

type reflectionRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewReflectionRepository(db *DB, logger *logger.Logger) ReflectionRepository {
	return &reflectionRepository{
		DB:     db,
		logger: logger,
		now:    models.Now,
	}
}

func (r *reflectionRepository) Create(ctx context.Context, input models.NewReflection) (models.ReflectionWithImages, error) {
	log := logger.FromContext(ctx)

	created := input.CreatedAt
	if created.IsZero() {
		created = r.now()
	}
	updated := input.UpdatedAt
	if updated.Before(created) {
		updated = created
	}
	ts, updatedTS := models.FormatTimestamp(created), models.FormatTimestamp(updated)
	tags := encodeTags(input.Tags)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "reflectionRepository.Create").Msg("failed to begin transaction")
		return models.ReflectionWithImages{}, unavailable(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, insertReflection, input.Title, input.Body, tags, ts, updatedTS)
	if err != nil {
		log.Err(err).Str("func", "reflectionRepository.Create").Msg("failed to insert reflection")
		return models.ReflectionWithImages{}, unavailable(ErrExecutingStatement, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "reflectionRepository.Create").Msg("failed to read new reflection id")
		return models.ReflectionWithImages{}, unavailable(ErrExecutingStatement, err)
	}

	images := make([]models.Image, 0, len(input.Images))
	if len(input.Images) > 0 {
		stmt, err := tx.PrepareContext(ctx, insertImage)
		if err != nil {
			log.Err(err).Str("func", "reflectionRepository.Create").Msg("failed to prepare image insert")
			return models.ReflectionWithImages{}, unavailable(ErrPreparingStatement, err)
		}
		defer stmt.Close()

		for i, img := range input.Images {
			res, err := stmt.ExecContext(ctx, id, img.Name, img.DataURL, ts)
			if err != nil {
				log.Err(err).
					Str("func", "reflectionRepository.Create").
					Int64("reflection_id", id).
					Int("image", i).
					Msg("failed to insert image")
				return models.ReflectionWithImages{}, unavailable(ErrExecutingStatement, err)
			}
			imageID, err := res.LastInsertId()
			if err != nil {
				log.Err(err).Str("func", "reflectionRepository.Create").Msg("failed to read new image id")
				return models.ReflectionWithImages{}, unavailable(ErrExecutingStatement, err)
			}

			images = append(images, models.Image{
				ID:           imageID,
				ReflectionID: id,
				Name:         img.Name,
				DataURL:      img.DataURL,
				CreatedAt:    created,
			})
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "reflectionRepository.Create").Int64("reflection_id", id).Msg("failed to commit transaction")
		return models.ReflectionWithImages{}, unavailable(ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", "reflectionRepository.Create").
		Int64("reflection_id", id).
		Int("images", len(images)).
		Msg("reflection created")

	return models.ReflectionWithImages{
		Reflection: models.Reflection{
			ID:        id,
			Title:     input.Title,
			Body:      input.Body,
			Tags:      normalizeTags(input.Tags),
			CreatedAt: created,
			UpdatedAt: updated,
		},
		Images: images,
	}, nil
}

func (r *reflectionRepository) Get(ctx context.Context, id int64) (*models.ReflectionWithImages, error) {
	log := logger.FromContext(ctx)

	if id <= 0 {
		return nil, nil
	}

	// read both rows inside one transaction so a concurrent delete cannot
	// split the result
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "reflectionRepository.Get").Msg("failed to begin transaction")
		return nil, unavailable(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	reflection, err := scanReflection(tx.QueryRowContext(ctx, getReflection, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).Str("func", "reflectionRepository.Get").Int64("id", id).Msg("failed to scan reflection row")
		return nil, unavailable(ErrScanningRow, err)
	}

	images, err := queryAll(ctx, tx, scanImage, getReflectionImages, id)
	if err != nil {
		log.Err(err).Str("func", "reflectionRepository.Get").Int64("id", id).Msg("failed to query reflection images")
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "reflectionRepository.Get").Msg("failed to commit transaction")
		return nil, unavailable(ErrCommitingTransaction, err)
	}

	return &models.ReflectionWithImages{
		Reflection: reflection,
		Images:     images,
	}, nil
}

func (r *reflectionRepository) List(ctx context.Context, filters models.ReflectionFilters) ([]models.Reflection, error) {
	log := logger.FromContext(ctx)

	for name, bound := range map[string]string{"start_date": filters.StartDate, "end_date": filters.EndDate} {
		if _, ok := models.ParseDateBound(bound, false); !ok && strings.TrimSpace(bound) != "" {
			log.Warn().Str("func", "reflectionRepository.List").Str(name, bound).Msg("ignoring unparsable date bound")
		}
	}

	query, args, err := buildListReflectionsQuery(filters)
	if err != nil {
		log.Err(err).Str("func", "reflectionRepository.List").Msg("failed to build list query")
		return nil, unavailable(ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "reflectionRepository.List").Msg("failed to execute list query")
		return nil, unavailable(ErrExecutingQuery, err)
	}
	defer rows.Close()

	needle := strings.ToLower(filters.Query)
	items := make([]models.Reflection, 0)

	for rows.Next() {
		item, scanErr := scanReflection(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "reflectionRepository.List").Msg("failed to scan reflection row")
			return nil, unavailable(ErrScanningRow, scanErr)
		}

		if needle != "" && !matchesQuery(item, needle) {
			continue
		}
		items = append(items, item)

		if filters.Limit > 0 && len(items) == filters.Limit {
			break
		}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "reflectionRepository.List").Msg("error occurred during rows iteration")
		return nil, unavailable(ErrScanningRows, rowsErr)
	}

	return items, nil
}

func (r *reflectionRepository) Update(ctx context.Context, id int64, update models.ReflectionUpdate) (*models.Reflection, error) {
	log := logger.FromContext(ctx)

	if id <= 0 {
		return nil, nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "reflectionRepository.Update").Msg("failed to begin transaction")
		return nil, unavailable(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	current, err := scanReflection(tx.QueryRowContext(ctx, getReflection, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).Str("func", "reflectionRepository.Update").Int64("id", id).Msg("failed to scan reflection row")
		return nil, unavailable(ErrScanningRow, err)
	}

	// updated_at must move forward even when the clock has not
	updatedAt := r.now()
	if !updatedAt.After(current.UpdatedAt) {
		updatedAt = current.UpdatedAt.Add(time.Millisecond)
	}

	var tags any
	if update.Tags != nil {
		tags = encodeTags(*update.Tags)
	}

	query, args, err := buildUpdateReflectionQuery(id, update, tags, updatedAt)
	if err != nil {
		log.Err(err).Str("func", "reflectionRepository.Update").Msg("failed to build update query")
		return nil, unavailable(ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "reflectionRepository.Update").Int64("id", id).Msg("failed to update reflection")
		return nil, unavailable(ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "reflectionRepository.Update").Int64("id", id).Msg("failed to commit transaction")
		return nil, unavailable(ErrCommitingTransaction, err)
	}

	if update.Title != nil {
		current.Title = *update.Title
	}
	if update.Body != nil {
		current.Body = *update.Body
	}
	if update.Tags != nil {
		current.Tags = normalizeTags(*update.Tags)
	}
	current.UpdatedAt = updatedAt

	return &current, nil
}

func (r *reflectionRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if id <= 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "reflectionRepository.Delete").Msg("failed to begin transaction")
		return unavailable(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteReflectionImages, id); err != nil {
		log.Err(err).Str("func", "reflectionRepository.Delete").Int64("id", id).Msg("failed to delete reflection images")
		return unavailable(ErrExecutingStatement, err)
	}

	if _, err = tx.ExecContext(ctx, deleteReflection, id); err != nil {
		log.Err(err).Str("func", "reflectionRepository.Delete").Int64("id", id).Msg("failed to delete reflection")
		return unavailable(ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "reflectionRepository.Delete").Int64("id", id).Msg("failed to commit transaction")
		return unavailable(ErrCommitingTransaction, err)
	}

	return nil
}

func (r *reflectionRepository) ExportAll(ctx context.Context) (models.Snapshot, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "reflectionRepository.ExportAll").Msg("failed to begin transaction")
		return models.Snapshot{}, unavailable(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	reflections, err := queryAll(ctx, tx, scanReflection, getAllReflections)
	if err != nil {
		log.Err(err).Str("func", "reflectionRepository.ExportAll").Msg("failed to read reflections")
		return models.Snapshot{}, err
	}

	images, err := queryAll(ctx, tx, scanImage, getAllImages)
	if err != nil {
		log.Err(err).Str("func", "reflectionRepository.ExportAll").Msg("failed to read images")
		return models.Snapshot{}, err
	}

	settings, err := queryAll(ctx, tx, scanSetting, getAllSettings)
	if err != nil {
		log.Err(err).Str("func", "reflectionRepository.ExportAll").Msg("failed to read settings")
		return models.Snapshot{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "reflectionRepository.ExportAll").Msg("failed to commit transaction")
		return models.Snapshot{}, unavailable(ErrCommitingTransaction, err)
	}

	return models.Snapshot{
		Reflections: reflections,
		Images:      images,
		Settings:    settings,
	}, nil
}

func (r *reflectionRepository) Summary(ctx context.Context) (models.DataSummary, error) {
	log := logger.FromContext(ctx)

	var summary models.DataSummary
	if err := r.DB.QueryRowContext(ctx, countRows).Scan(&summary.ReflectionCount, &summary.ImageCount); err != nil {
		log.Err(err).Str("func", "reflectionRepository.Summary").Msg("failed to count rows")
		return models.DataSummary{}, unavailable(ErrExecutingQuery, err)
	}

	return summary, nil
}

func matchesQuery(r models.Reflection, needle string) bool {
	return strings.Contains(strings.ToLower(r.Title+" "+r.Body), needle)
}

func scanReflection(s rowScanner) (models.Reflection, error) {
	var (
		item                 models.Reflection
		tags                 sql.NullString
		createdAt, updatedAt string
	)

	if err := s.Scan(&item.ID, &item.Title, &item.Body, &tags, &createdAt, &updatedAt); err != nil {
		return models.Reflection{}, err
	}

	var err error
	if item.Tags, err = decodeTags(tags); err != nil {
		return models.Reflection{}, fmt.Errorf("reflection %d tags: %w", item.ID, err)
	}
	if item.CreatedAt, err = models.ParseTimestamp(createdAt); err != nil {
		return models.Reflection{}, fmt.Errorf("reflection %d created_at: %w", item.ID, err)
	}
	if item.UpdatedAt, err = models.ParseTimestamp(updatedAt); err != nil {
		return models.Reflection{}, fmt.Errorf("reflection %d updated_at: %w", item.ID, err)
	}

	return item, nil
}

func scanImage(s rowScanner) (models.Image, error) {
	var (
		item      models.Image
		createdAt string
	)

	if err := s.Scan(&item.ID, &item.ReflectionID, &item.Name, &item.DataURL, &createdAt); err != nil {
		return models.Image{}, err
	}

	var err error
	if item.CreatedAt, err = models.ParseTimestamp(createdAt); err != nil {
		return models.Image{}, fmt.Errorf("image %d created_at: %w", item.ID, err)
	}

	return item, nil
}

// encodeTags returns the tags column value: NULL for no tags, a JSON array
// otherwise.
func encodeTags(tags []string) any {
	if len(tags) == 0 {
		return nil
	}
	raw, _ := json.Marshal(tags)
	return string(raw)
}

func decodeTags(raw sql.NullString) ([]string, error) {
	if !raw.Valid || raw.String == "" {
		return nil, nil
	}

	var tags []string
	if err := json.Unmarshal([]byte(raw.String), &tags); err != nil {
		return nil, err
	}
	return normalizeTags(tags), nil
}

// normalizeTags maps an empty tag list to nil and copies the rest so callers
// cannot alias stored state.
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	return append([]string(nil), tags...)
}
