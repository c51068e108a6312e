package service

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-trade-journal/internal/logger"
	"github.com/MKhiriev/go-trade-journal/internal/store"
	"github.com/MKhiriev/go-trade-journal/internal/utils"
	"github.com/MKhiriev/go-trade-journal/models"
)

// Setting keys owned by the template service.
const (
	KeyChecklistTemplate    = "checklistTemplate"
	KeyReflectionQuestions  = "reflectionQuestions"
	KeyTargetTemplates      = "targetTemplates"
	KeySectionOrder         = "sectionOrder"
	KeyChecklistBlocking    = "checklistBlocking"
	KeyChecklistCompletedOn = "checklistCompletedOn"
)

func DefaultChecklistTemplate() []models.ChecklistTemplateItem {
	return []models.ChecklistTemplateItem{
		{ID: "plan", Text: "Plan the trade"},
		{ID: "risk", Text: "Define risk"},
		{ID: "confirm", Text: "Confirm setup"},
	}
}

func DefaultReflectionQuestions() []models.ReflectionQuestion {
	return []models.ReflectionQuestion{
		{
			ID:          "thesis",
			Label:       "What is your core thesis for this trade?",
			Placeholder: "Summarize the idea behind the setup.",
		},
		{
			ID:          "risk",
			Label:       "What is the primary risk you are watching?",
			Placeholder: "Note invalidation or stop context.",
		},
		{
			ID:          "improvement",
			Label:       "What would you improve next time?",
			Placeholder: "Capture a key learning from this reflection.",
		},
	}
}

func DefaultTargetTemplates() []string {
	return []string{"Manual", "Resting Liquidity", "Next FVG", "Measured Move", "Previous High/Low"}
}

func DefaultSectionOrder() []models.SectionConfig {
	return []models.SectionConfig{
		{ID: "setup", Label: "Setup Details", Visible: true},
		{ID: "execution", Label: "Execution & Risk", Visible: true},
		{ID: "outcome", Label: "Outcome", Visible: true},
		{ID: "evidence", Label: "Charts & Notes", Visible: true},
	}
}

type idGenerator interface {
	Generate() string
}

type templateService struct {
	settings store.SettingsRepository

	itemIDs     idGenerator
	questionIDs idGenerator

	logger *logger.Logger
}

func NewTemplateService(settings store.SettingsRepository, logger *logger.Logger) TemplateService {
	return &templateService{
		settings:    settings,
		itemIDs:     utils.NewUUIDGenerator("item"),
		questionIDs: utils.NewUUIDGenerator("question"),
		logger:      logger,
	}
}

// ── Checklist ────────────────────────────────────────────────────────────────

func (s *templateService) ChecklistTemplate(ctx context.Context) ([]models.ChecklistTemplateItem, error) {
	return loadSetting(ctx, s.settings, KeyChecklistTemplate, DefaultChecklistTemplate, validChecklist)
}

func (s *templateService) SaveChecklistTemplate(ctx context.Context, items []models.ChecklistTemplateItem) ([]models.ChecklistTemplateItem, error) {
	cleaned := make([]models.ChecklistTemplateItem, 0, len(items))
	for _, item := range items {
		item.Text = strings.TrimSpace(item.Text)
		if item.Text == "" {
			continue
		}
		if strings.TrimSpace(item.ID) == "" {
			item.ID = s.itemIDs.Generate()
		}
		cleaned = append(cleaned, item)
	}

	if err := saveSetting(ctx, s.settings, KeyChecklistTemplate, cleaned); err != nil {
		return nil, err
	}
	return cleaned, nil
}

func (s *templateService) AddChecklistItem(ctx context.Context, text string) ([]models.ChecklistTemplateItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyTemplateItem
	}

	items, err := s.ChecklistTemplate(ctx)
	if err != nil {
		return nil, err
	}
	items = append(items, models.ChecklistTemplateItem{ID: s.itemIDs.Generate(), Text: text})

	return s.SaveChecklistTemplate(ctx, items)
}

func (s *templateService) RemoveChecklistItem(ctx context.Context, id string) ([]models.ChecklistTemplateItem, error) {
	items, err := s.ChecklistTemplate(ctx)
	if err != nil {
		return nil, err
	}

	i := slices.IndexFunc(items, func(item models.ChecklistTemplateItem) bool { return item.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrTemplateItemNotFound, id)
	}

	return s.SaveChecklistTemplate(ctx, slices.Delete(items, i, i+1))
}

func (s *templateService) MoveChecklistItem(ctx context.Context, id string, delta int) ([]models.ChecklistTemplateItem, error) {
	items, err := s.ChecklistTemplate(ctx)
	if err != nil {
		return nil, err
	}

	i := slices.IndexFunc(items, func(item models.ChecklistTemplateItem) bool { return item.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrTemplateItemNotFound, id)
	}
	if !move(items, i, delta) {
		return items, nil
	}

	return s.SaveChecklistTemplate(ctx, items)
}

// ── Questions ────────────────────────────────────────────────────────────────

func (s *templateService) ReflectionQuestions(ctx context.Context) ([]models.ReflectionQuestion, error) {
	return loadSetting(ctx, s.settings, KeyReflectionQuestions, DefaultReflectionQuestions, validQuestions)
}

func (s *templateService) SaveReflectionQuestions(ctx context.Context, questions []models.ReflectionQuestion) ([]models.ReflectionQuestion, error) {
	cleaned := make([]models.ReflectionQuestion, 0, len(questions))
	for _, q := range questions {
		q.Label = strings.TrimSpace(q.Label)
		q.Placeholder = strings.TrimSpace(q.Placeholder)
		if q.Label == "" || q.Placeholder == "" {
			continue
		}
		if strings.TrimSpace(q.ID) == "" {
			q.ID = s.questionIDs.Generate()
		}
		cleaned = append(cleaned, q)
	}

	if err := saveSetting(ctx, s.settings, KeyReflectionQuestions, cleaned); err != nil {
		return nil, err
	}
	return cleaned, nil
}

func (s *templateService) AddReflectionQuestion(ctx context.Context, label, placeholder string) ([]models.ReflectionQuestion, error) {
	label, placeholder = strings.TrimSpace(label), strings.TrimSpace(placeholder)
	if label == "" || placeholder == "" {
		return nil, ErrEmptyTemplateItem
	}

	questions, err := s.ReflectionQuestions(ctx)
	if err != nil {
		return nil, err
	}
	questions = append(questions, models.ReflectionQuestion{
		ID:          s.questionIDs.Generate(),
		Label:       label,
		Placeholder: placeholder,
	})

	return s.SaveReflectionQuestions(ctx, questions)
}

func (s *templateService) RemoveReflectionQuestion(ctx context.Context, id string) ([]models.ReflectionQuestion, error) {
	questions, err := s.ReflectionQuestions(ctx)
	if err != nil {
		return nil, err
	}

	i := slices.IndexFunc(questions, func(q models.ReflectionQuestion) bool { return q.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrTemplateItemNotFound, id)
	}

	return s.SaveReflectionQuestions(ctx, slices.Delete(questions, i, i+1))
}

func (s *templateService) MoveReflectionQuestion(ctx context.Context, id string, delta int) ([]models.ReflectionQuestion, error) {
	questions, err := s.ReflectionQuestions(ctx)
	if err != nil {
		return nil, err
	}

	i := slices.IndexFunc(questions, func(q models.ReflectionQuestion) bool { return q.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrTemplateItemNotFound, id)
	}
	if !move(questions, i, delta) {
		return questions, nil
	}

	return s.SaveReflectionQuestions(ctx, questions)
}

// ── Targets and sections ─────────────────────────────────────────────────────

func (s *templateService) TargetTemplates(ctx context.Context) ([]string, error) {
	return loadSetting(ctx, s.settings, KeyTargetTemplates, DefaultTargetTemplates, nil)
}

func (s *templateService) SaveTargetTemplates(ctx context.Context, targets []string) ([]string, error) {
	cleaned := make([]string, 0, len(targets))
	for _, target := range targets {
		if target = strings.TrimSpace(target); target != "" {
			cleaned = append(cleaned, target)
		}
	}

	if err := saveSetting(ctx, s.settings, KeyTargetTemplates, cleaned); err != nil {
		return nil, err
	}
	return cleaned, nil
}

func (s *templateService) SectionOrder(ctx context.Context) ([]models.SectionConfig, error) {
	return loadSetting(ctx, s.settings, KeySectionOrder, DefaultSectionOrder, validSections)
}

func (s *templateService) SaveSectionOrder(ctx context.Context, sections []models.SectionConfig) ([]models.SectionConfig, error) {
	cleaned := make([]models.SectionConfig, 0, len(sections))
	for _, section := range sections {
		section.ID = strings.TrimSpace(section.ID)
		if section.ID == "" {
			continue
		}
		cleaned = append(cleaned, section)
	}

	if err := saveSetting(ctx, s.settings, KeySectionOrder, cleaned); err != nil {
		return nil, err
	}
	return cleaned, nil
}

// ── Flags ────────────────────────────────────────────────────────────────────

func (s *templateService) ChecklistBlocking(ctx context.Context) (bool, error) {
	setting, err := s.settings.Get(ctx, KeyChecklistBlocking)
	if err != nil {
		return false, err
	}
	return setting != nil && setting.Value == "true", nil
}

func (s *templateService) SetChecklistBlocking(ctx context.Context, blocking bool) error {
	value := "false"
	if blocking {
		value = "true"
	}
	_, err := s.settings.Put(ctx, KeyChecklistBlocking, value)
	return err
}

func (s *templateService) MarkChecklistComplete(ctx context.Context, today time.Time) error {
	_, err := s.settings.Put(ctx, KeyChecklistCompletedOn, dayOf(today))
	return err
}

func (s *templateService) ChecklistDue(ctx context.Context, today time.Time) (bool, error) {
	setting, err := s.settings.Get(ctx, KeyChecklistCompletedOn)
	if err != nil {
		return false, err
	}
	return setting == nil || setting.Value != dayOf(today), nil
}

func dayOf(t time.Time) string {
	return t.UTC().Format(models.DateLayout)
}

// ── Helpers ──────────────────────────────────────────────────────────────────

// loadSetting decodes the JSON value stored under key. The fallback is
// returned when the key is absent, the value does not decode to T, or valid
// rejects it. Storage failures are returned as is.
func loadSetting[T any](ctx context.Context, settings store.SettingsRepository, key string, fallback func() T, valid func(T) bool) (T, error) {
	log := logger.FromContext(ctx)

	setting, err := settings.Get(ctx, key)
	if err != nil {
		log.Err(err).Str("func", "templateService.loadSetting").Str("key", key).Msg("failed to read setting")
		var zero T
		return zero, err
	}
	if setting == nil || setting.Value == "" {
		return fallback(), nil
	}

	var value *T
	if err = json.Unmarshal([]byte(setting.Value), &value); err != nil || value == nil {
		log.Warn().Err(err).Str("func", "templateService.loadSetting").Str("key", key).Msg("unreadable setting, using defaults")
		return fallback(), nil
	}
	if valid != nil && !valid(*value) {
		log.Warn().Str("func", "templateService.loadSetting").Str("key", key).Msg("malformed setting, using defaults")
		return fallback(), nil
	}

	return *value, nil
}

func saveSetting(ctx context.Context, settings store.SettingsRepository, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err = settings.Put(ctx, key, string(encoded)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "templateService.saveSetting").Str("key", key).Msg("failed to write setting")
		return err
	}
	return nil
}

func validChecklist(items []models.ChecklistTemplateItem) bool {
	for _, item := range items {
		if item.ID == "" || item.Text == "" {
			return false
		}
	}
	return true
}

func validQuestions(questions []models.ReflectionQuestion) bool {
	for _, q := range questions {
		if q.ID == "" || q.Label == "" || q.Placeholder == "" {
			return false
		}
	}
	return true
}

func validSections(sections []models.SectionConfig) bool {
	for _, section := range sections {
		if section.ID == "" {
			return false
		}
	}
	return true
}

// move shifts s[i] by delta positions, clamped to the slice bounds. It
// reports whether anything moved.
func move[T any](s []T, i, delta int) bool {
	j := min(max(i+delta, 0), len(s)-1)
	if j == i {
		return false
	}

	item := s[i]
	if j < i {
		copy(s[j+1:i+1], s[j:i])
	} else {
		copy(s[i:j], s[i+1:j+1])
	}
	s[j] = item
	return true
}
