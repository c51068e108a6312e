// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-trade-journal/internal/export"
	"github.com/MKhiriev/go-trade-journal/internal/query"
	"github.com/MKhiriev/go-trade-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=ReflectionService,ReflectionServiceWrapper

// ReflectionService is the journal as seen by the command line and the
// browse screen.
type ReflectionService interface {
	// Save validates the draft and stores it as a new reflection.
	Save(ctx context.Context, draft models.Draft) (models.ReflectionWithImages, error)
	// Get returns the reflection with its images or ErrReflectionNotFound.
	Get(ctx context.Context, id int64) (models.ReflectionWithImages, error)
	List(ctx context.Context, filters models.ReflectionFilters) ([]models.Reflection, error)
	// Browse filters every reflection by criteria and returns one page with
	// the statistics of the whole filtered set.
	Browse(ctx context.Context, criteria query.Criteria, page, pageSize int) (BrowseResult, error)
	// Edit merges changes into the stored body and updates title and tags
	// to match it. Keys are journal field names.
	Edit(ctx context.Context, id int64, changes map[string]string) (models.Reflection, error)
	Delete(ctx context.Context, id int64) error
	Export(ctx context.Context, w io.Writer, format export.Format) error
	Import(ctx context.Context, r io.Reader) (export.RestoreResult, error)
	Summary(ctx context.Context) (models.DataSummary, error)
	// Wipe destroys all local data. The service is unusable afterwards.
	Wipe(ctx context.Context) error
}

// ReflectionServiceWrapper decorates a ReflectionService.
type ReflectionServiceWrapper interface {
	Wrap(ReflectionService) ReflectionService
}

// TemplateService reads and writes the user's form templates and flags.
// Getters fall back to the defaults when a value is absent or unreadable.
type TemplateService interface {
	ChecklistTemplate(ctx context.Context) ([]models.ChecklistTemplateItem, error)
	SaveChecklistTemplate(ctx context.Context, items []models.ChecklistTemplateItem) ([]models.ChecklistTemplateItem, error)
	AddChecklistItem(ctx context.Context, text string) ([]models.ChecklistTemplateItem, error)
	RemoveChecklistItem(ctx context.Context, id string) ([]models.ChecklistTemplateItem, error)
	MoveChecklistItem(ctx context.Context, id string, delta int) ([]models.ChecklistTemplateItem, error)

	ReflectionQuestions(ctx context.Context) ([]models.ReflectionQuestion, error)
	SaveReflectionQuestions(ctx context.Context, questions []models.ReflectionQuestion) ([]models.ReflectionQuestion, error)
	AddReflectionQuestion(ctx context.Context, label, placeholder string) ([]models.ReflectionQuestion, error)
	RemoveReflectionQuestion(ctx context.Context, id string) ([]models.ReflectionQuestion, error)
	MoveReflectionQuestion(ctx context.Context, id string, delta int) ([]models.ReflectionQuestion, error)

	TargetTemplates(ctx context.Context) ([]string, error)
	SaveTargetTemplates(ctx context.Context, targets []string) ([]string, error)

	SectionOrder(ctx context.Context) ([]models.SectionConfig, error)
	SaveSectionOrder(ctx context.Context, sections []models.SectionConfig) ([]models.SectionConfig, error)

	ChecklistBlocking(ctx context.Context) (bool, error)
	SetChecklistBlocking(ctx context.Context, blocking bool) error
	// MarkChecklistComplete records today as the day the daily checklist
	// was completed.
	MarkChecklistComplete(ctx context.Context, today time.Time) error
	// ChecklistDue reports whether the daily checklist has not been
	// completed on today's date.
	ChecklistDue(ctx context.Context, today time.Time) (bool, error)
}

// Wiper destroys the whole local database.
type Wiper interface {
	Wipe(ctx context.Context) error
}
