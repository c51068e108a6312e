package service

import (
	"context"

	"github.com/MKhiriev/go-trade-journal/internal/config"
	"github.com/MKhiriev/go-trade-journal/internal/logger"
	"github.com/MKhiriev/go-trade-journal/internal/store"
)

type Services struct {
	Reflections ReflectionService
	Templates   TemplateService

	maxImages int
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	templates := NewTemplateService(storages.Settings, logger)
	reflections := NewReflectionValidationService(cfg.UI.MaxImages).
		Wrap(NewReflectionService(storages, templates, logger))

	return &Services{
		Reflections: reflections,
		Templates:   templates,
		maxImages:   cfg.UI.MaxImages,
	}
}

// NewDraft starts a draft seeded from the current checklist template and
// reflection questions.
func (s *Services) NewDraft(ctx context.Context) (*DraftSession, error) {
	checklist, err := s.Templates.ChecklistTemplate(ctx)
	if err != nil {
		return nil, err
	}
	questions, err := s.Templates.ReflectionQuestions(ctx)
	if err != nil {
		return nil, err
	}
	return NewDraftSession(checklist, questions, s.maxImages), nil
}
