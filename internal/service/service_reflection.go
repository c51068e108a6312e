package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/go-trade-journal/internal/export"
	"github.com/MKhiriev/go-trade-journal/internal/futures"
	"github.com/MKhiriev/go-trade-journal/internal/journal"
	"github.com/MKhiriev/go-trade-journal/internal/logger"
	"github.com/MKhiriev/go-trade-journal/internal/query"
	"github.com/MKhiriev/go-trade-journal/internal/store"
	"github.com/MKhiriev/go-trade-journal/models"
)

// BrowseResult is one page of a filtered listing.
type BrowseResult struct {
	Page query.Page
	// Stats covers every row matching the criteria, not only this page.
	Stats query.Stats
	// Tags are the distinct tags over all reflections, for tag cycling.
	Tags []string
}

type reflectionService struct {
	reflections store.ReflectionRepository
	settings    store.SettingsRepository
	templates   TemplateService
	wiper       Wiper

	now    func() time.Time
	logger *logger.Logger
}

func NewReflectionService(storages *store.Storages, templates TemplateService, logger *logger.Logger) ReflectionService {
	return newReflectionService(storages.Reflections, storages.Settings, templates, storages, logger)
}

func newReflectionService(reflections store.ReflectionRepository, settings store.SettingsRepository, templates TemplateService, wiper Wiper, logger *logger.Logger) *reflectionService {
	return &reflectionService{
		reflections: reflections,
		settings:    settings,
		templates:   templates,
		wiper:       wiper,
		now:         models.Now,
		logger:      logger,
	}
}

func (s *reflectionService) Save(ctx context.Context, draft models.Draft) (models.ReflectionWithImages, error) {
	log := logger.FromContext(ctx)

	blocking, err := s.templates.ChecklistBlocking(ctx)
	if err != nil {
		return models.ReflectionWithImages{}, err
	}
	if blocking {
		due, err := s.templates.ChecklistDue(ctx, s.now())
		if err != nil {
			return models.ReflectionWithImages{}, err
		}
		if due {
			return models.ReflectionWithImages{}, ErrChecklistIncomplete
		}
	}

	created, err := s.reflections.Create(ctx, BuildReflection(draft))
	if err != nil {
		log.Err(err).Str("func", "reflectionService.Save").Msg("failed to create reflection")
		return models.ReflectionWithImages{}, err
	}

	log.Info().Str("func", "reflectionService.Save").Int64("id", created.Reflection.ID).
		Int("images", len(created.Images)).Msg("reflection saved")
	return created, nil
}

func (s *reflectionService) Get(ctx context.Context, id int64) (models.ReflectionWithImages, error) {
	found, err := s.reflections.Get(ctx, id)
	if err != nil {
		return models.ReflectionWithImages{}, err
	}
	if found == nil {
		return models.ReflectionWithImages{}, fmt.Errorf("%w: %d", ErrReflectionNotFound, id)
	}
	return *found, nil
}

func (s *reflectionService) List(ctx context.Context, filters models.ReflectionFilters) ([]models.Reflection, error) {
	return s.reflections.List(ctx, filters)
}

func (s *reflectionService) Browse(ctx context.Context, criteria query.Criteria, page, pageSize int) (BrowseResult, error) {
	all, err := s.reflections.List(ctx, models.ReflectionFilters{})
	if err != nil {
		return BrowseResult{}, err
	}

	rows := query.Rows(all)
	matched := query.Filter(rows, criteria)

	return BrowseResult{
		Page:  query.Paginate(matched, page, pageSize),
		Stats: query.Summarize(matched),
		Tags:  query.UniqueTags(rows),
	}, nil
}

// pnlInputs are the fields the futures calculation depends on.
var pnlInputs = []string{
	journal.FieldInstrument,
	journal.FieldDirection,
	journal.FieldEntryPrice,
	journal.FieldExitPrice,
	journal.FieldQuantity,
}

func (s *reflectionService) Edit(ctx context.Context, id int64, changes map[string]string) (models.Reflection, error) {
	log := logger.FromContext(ctx)

	current, err := s.Get(ctx, id)
	if err != nil {
		return models.Reflection{}, err
	}

	doc := journal.ParseBody(current.Reflection.Body)
	if err = doc.Merge(changes); err != nil {
		return models.Reflection{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, manual := changes[journal.FieldPnL]; !manual && touchesAny(changes, pnlInputs) {
		if pnl, ok := futures.Calculate(doc.Instrument, doc.Direction, doc.EntryPrice, doc.ExitPrice, doc.Quantity); ok {
			doc.PnL = pnl.StringFixed(2)
		}
	}

	body := doc.Encode()
	update := models.ReflectionUpdate{Body: &body}
	if title := strings.TrimSpace(doc.SetupName); title != "" && title != current.Reflection.Title {
		update.Title = &title
	}
	if _, ok := changes[journal.FieldTags]; ok {
		tags := SplitTags(doc.Tags)
		update.Tags = &tags
	}

	updated, err := s.reflections.Update(ctx, id, update)
	if err != nil {
		log.Err(err).Str("func", "reflectionService.Edit").Int64("id", id).Msg("failed to update reflection")
		return models.Reflection{}, err
	}
	if updated == nil {
		return models.Reflection{}, fmt.Errorf("%w: %d", ErrReflectionNotFound, id)
	}

	return *updated, nil
}

func touchesAny(changes map[string]string, keys []string) bool {
	for _, key := range keys {
		if _, ok := changes[key]; ok {
			return true
		}
	}
	return false
}

func (s *reflectionService) Delete(ctx context.Context, id int64) error {
	return s.reflections.Delete(ctx, id)
}

func (s *reflectionService) Export(ctx context.Context, w io.Writer, format export.Format) error {
	switch format {
	case export.FormatCSV:
		all, err := s.reflections.List(ctx, models.ReflectionFilters{})
		if err != nil {
			return err
		}
		return export.WriteCSV(w, all)

	case export.FormatJSON:
		snapshot, err := s.reflections.ExportAll(ctx)
		if err != nil {
			return err
		}
		return export.WriteBackup(w, snapshot)

	default:
		return fmt.Errorf("%w: %q", export.ErrUnsupportedFormat, format)
	}
}

func (s *reflectionService) Import(ctx context.Context, r io.Reader) (export.RestoreResult, error) {
	snapshot, err := export.ReadBackup(r)
	if err != nil {
		return export.RestoreResult{}, err
	}

	result, err := export.Restore(ctx, s.reflections, s.settings, snapshot)
	if err != nil {
		return result, err
	}

	logger.FromContext(ctx).Info().Str("func", "reflectionService.Import").
		Int("reflections", result.Reflections).Int("images", result.Images).Int("settings", result.Settings).
		Msg("backup restored")
	return result, nil
}

func (s *reflectionService) Summary(ctx context.Context) (models.DataSummary, error) {
	return s.reflections.Summary(ctx)
}

func (s *reflectionService) Wipe(ctx context.Context) error {
	return s.wiper.Wipe(ctx)
}
