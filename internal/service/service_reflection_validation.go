package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-trade-journal/internal/export"
	"github.com/MKhiriev/go-trade-journal/internal/journal"
	"github.com/MKhiriev/go-trade-journal/internal/query"
	"github.com/MKhiriev/go-trade-journal/internal/validators"
	"github.com/MKhiriev/go-trade-journal/models"
)

// requiredEdits maps the required journal fields to their validator names.
var requiredEdits = map[string]string{
	journal.FieldInstrument: validators.FieldInstrument,
	journal.FieldTimeframe:  validators.FieldTimeframe,
	journal.FieldDirection:  validators.FieldDirection,
	journal.FieldSetupName:  validators.FieldSetupName,
	journal.FieldOutcome:    validators.FieldOutcome,
	journal.FieldConfidence: validators.FieldConfidence,
}

type ReflectionValidationService struct {
	inner     ReflectionService
	validator validators.Validator
}

func NewReflectionValidationService(maxImages int) ReflectionServiceWrapper {
	return &ReflectionValidationService{
		validator: validators.NewDraftValidator(maxImages),
	}
}

func (v *ReflectionValidationService) Save(ctx context.Context, draft models.Draft) (models.ReflectionWithImages, error) {
	if err := v.validator.Validate(ctx, draft); err != nil {
		return models.ReflectionWithImages{}, fmt.Errorf("error during draft validation before saving: %w", err)
	}

	return v.inner.Save(ctx, draft)
}

func (v *ReflectionValidationService) Edit(ctx context.Context, id int64, changes map[string]string) (models.Reflection, error) {
	if len(changes) == 0 {
		return models.Reflection{}, validators.ErrNoFieldsToUpdate
	}

	// a required field may be edited but not blanked
	var draft models.Draft
	fields := make([]string, 0, len(changes))
	for key, value := range changes {
		field, ok := requiredEdits[key]
		if !ok {
			continue
		}
		setDraftField(&draft, key, value)
		fields = append(fields, field)
	}
	if len(fields) > 0 {
		if err := v.validator.Validate(ctx, draft, fields...); err != nil {
			return models.Reflection{}, fmt.Errorf("error during edit validation: %w", err)
		}
	}

	return v.inner.Edit(ctx, id, changes)
}

func setDraftField(d *models.Draft, key, value string) {
	switch key {
	case journal.FieldInstrument:
		d.Instrument = value
	case journal.FieldTimeframe:
		d.Timeframe = value
	case journal.FieldDirection:
		d.Direction = value
	case journal.FieldSetupName:
		d.SetupName = value
	case journal.FieldOutcome:
		d.Outcome = value
	case journal.FieldConfidence:
		d.Confidence = value
	}
}

func (v *ReflectionValidationService) Get(ctx context.Context, id int64) (models.ReflectionWithImages, error) {
	return v.inner.Get(ctx, id)
}

func (v *ReflectionValidationService) List(ctx context.Context, filters models.ReflectionFilters) ([]models.Reflection, error) {
	return v.inner.List(ctx, filters)
}

func (v *ReflectionValidationService) Browse(ctx context.Context, criteria query.Criteria, page, pageSize int) (BrowseResult, error) {
	return v.inner.Browse(ctx, criteria, page, pageSize)
}

func (v *ReflectionValidationService) Delete(ctx context.Context, id int64) error {
	return v.inner.Delete(ctx, id)
}

func (v *ReflectionValidationService) Export(ctx context.Context, w io.Writer, format export.Format) error {
	return v.inner.Export(ctx, w, format)
}

func (v *ReflectionValidationService) Import(ctx context.Context, r io.Reader) (export.RestoreResult, error) {
	return v.inner.Import(ctx, r)
}

func (v *ReflectionValidationService) Summary(ctx context.Context) (models.DataSummary, error) {
	return v.inner.Summary(ctx)
}

func (v *ReflectionValidationService) Wipe(ctx context.Context) error {
	return v.inner.Wipe(ctx)
}

func (v *ReflectionValidationService) Wrap(inner ReflectionService) ReflectionService {
	v.inner = inner
	return v
}
