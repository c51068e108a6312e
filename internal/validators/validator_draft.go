package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-trade-journal/models"
)

const (
	FieldInstrument = "instrument"
	FieldTimeframe  = "timeframe"
	FieldDirection  = "direction"
	FieldSetupName  = "setup_name"
	FieldOutcome    = "outcome"
	FieldConfidence = "confidence"
	FieldImages     = "images"

	FieldImageName    = "image_name"
	FieldImageDataURL = "image_data_url"

	FieldUpdateFields = "update_fields"
	FieldTitle        = "title"
)

// RequiredDraftFields are the form fields that must be filled before a
// draft can be saved.
var RequiredDraftFields = []string{
	FieldInstrument,
	FieldTimeframe,
	FieldDirection,
	FieldSetupName,
	FieldOutcome,
	FieldConfidence,
}

type DraftValidator struct {
	maxImages int
}

// NewDraftValidator returns a validator for drafts, attached images and
// reflection updates. maxImages caps the images of a single draft.
func NewDraftValidator(maxImages int) Validator {
	return &DraftValidator{maxImages: maxImages}
}

func (v *DraftValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Draft:
		return v.validateDraft(ctx, value, fields...)
	case *models.Draft:
		return v.validateDraft(ctx, *value, fields...)

	case models.NewImage:
		return v.validateImage(ctx, value, fields...)
	case *models.NewImage:
		return v.validateImage(ctx, *value, fields...)

	case models.ReflectionUpdate:
		return v.validateUpdate(ctx, value, fields...)
	case *models.ReflectionUpdate:
		return v.validateUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *DraftValidator) validateDraft(ctx context.Context, draft models.Draft, fields ...string) error {
	if len(fields) == 0 {
		fields = append(append([]string{}, RequiredDraftFields...), FieldImages)
	}

	for _, f := range fields {
		switch f {
		case FieldInstrument:
			if err := required(f, draft.Instrument); err != nil {
				return err
			}
		case FieldTimeframe:
			if err := required(f, draft.Timeframe); err != nil {
				return err
			}
		case FieldDirection:
			if err := required(f, draft.Direction); err != nil {
				return err
			}
		case FieldSetupName:
			if err := required(f, draft.SetupName); err != nil {
				return err
			}
		case FieldOutcome:
			if err := required(f, draft.Outcome); err != nil {
				return err
			}
		case FieldConfidence:
			if err := required(f, draft.Confidence); err != nil {
				return err
			}
		case FieldImages:
			if v.maxImages > 0 && len(draft.Images) > v.maxImages {
				return fmt.Errorf("%w: %d of at most %d", ErrTooManyImages, len(draft.Images), v.maxImages)
			}
			for i, img := range draft.Images {
				if err := v.validateImage(ctx, img); err != nil {
					return fmt.Errorf("image %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DraftValidator) validateImage(_ context.Context, img models.NewImage, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldImageName, FieldImageDataURL}
	}

	for _, f := range fields {
		switch f {
		case FieldImageName:
			if strings.TrimSpace(img.Name) == "" {
				return fmt.Errorf("%w: empty name", ErrInvalidImage)
			}
		case FieldImageDataURL:
			if !strings.HasPrefix(img.DataURL, "data:") {
				return fmt.Errorf("%w: %q is not a data url", ErrInvalidImage, img.Name)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DraftValidator) validateUpdate(_ context.Context, update models.ReflectionUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUpdateFields, FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldUpdateFields:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldTitle:
			if update.Title != nil {
				if err := required(f, *update.Title); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s", ErrRequiredField, field)
	}
	return nil
}
