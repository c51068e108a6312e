package service

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-trade-journal/internal/futures"
	"github.com/MKhiriev/go-trade-journal/internal/journal"
	"github.com/MKhiriev/go-trade-journal/models"
)

// DraftSession holds the state of one new-reflection form. It is owned by
// the caller and is not safe for concurrent use.
type DraftSession struct {
	draft     models.Draft
	questions []models.ReflectionQuestion
	maxImages int

	// autoPnL is set while draft.PnL holds a calculated value.
	autoPnL bool
}

// NewDraftSession starts an empty draft whose checklist and answers are
// seeded from the current templates.
func NewDraftSession(checklist []models.ChecklistTemplateItem, questions []models.ReflectionQuestion, maxImages int) *DraftSession {
	s := &DraftSession{
		questions: questions,
		maxImages: maxImages,
	}
	s.draft.Checklist = make([]models.ChecklistSnapshotItem, 0, len(checklist))
	for _, item := range checklist {
		s.draft.Checklist = append(s.draft.Checklist, models.ChecklistSnapshotItem{ID: item.ID, Text: item.Text})
	}
	s.draft.Questions = emptyAnswers(questions)
	return s
}

func emptyAnswers(questions []models.ReflectionQuestion) map[string]string {
	answers := make(map[string]string, len(questions))
	for _, q := range questions {
		answers[q.ID] = ""
	}
	return answers
}

// Draft returns a copy of the current form state.
func (s *DraftSession) Draft() models.Draft {
	d := s.draft
	d.Questions = make(map[string]string, len(s.draft.Questions))
	for k, v := range s.draft.Questions {
		d.Questions[k] = v
	}
	d.Checklist = append([]models.ChecklistSnapshotItem(nil), s.draft.Checklist...)
	d.Images = append([]models.NewImage(nil), s.draft.Images...)
	return d
}

// Questions returns the questions the draft was seeded with.
func (s *DraftSession) Questions() []models.ReflectionQuestion {
	return s.questions
}

// Set changes a form field. Key is a journal field name. Changing the
// instrument, direction, prices or quantity recalculates the PnL; setting
// the PnL directly keeps the typed value until the next recalculation.
func (s *DraftSession) Set(key, value string) error {
	switch key {
	case journal.FieldInstrument:
		s.draft.Instrument = value
	case journal.FieldTimeframe:
		s.draft.Timeframe = value
	case journal.FieldDirection:
		s.draft.Direction = value
	case journal.FieldEntryPrice:
		s.draft.EntryPrice = value
	case journal.FieldExitPrice:
		s.draft.ExitPrice = value
	case journal.FieldQuantity:
		s.draft.Quantity = value
	case journal.FieldPrices:
		s.draft.Prices = value
	case journal.FieldSetupName:
		s.draft.SetupName = value
	case journal.FieldOutcome:
		s.draft.Outcome = value
	case journal.FieldPnL:
		s.draft.PnL = value
		s.autoPnL = false
		return nil
	case journal.FieldConfidence:
		s.draft.Confidence = value
	case journal.FieldTags:
		s.draft.Tags = value
	default:
		return fmt.Errorf("%w: %q", journal.ErrUnknownField, key)
	}

	switch key {
	case journal.FieldInstrument, journal.FieldDirection, journal.FieldEntryPrice, journal.FieldExitPrice, journal.FieldQuantity:
		s.recalculatePnL()
	}
	return nil
}

func (s *DraftSession) recalculatePnL() {
	d := &s.draft
	pnl, ok := futures.Calculate(d.Instrument, d.Direction, d.EntryPrice, d.ExitPrice, d.Quantity)
	switch {
	case ok:
		d.PnL = pnl.StringFixed(2)
		s.autoPnL = true
	case s.autoPnL:
		d.PnL = ""
		s.autoPnL = false
	}
}

// Answer records the answer to a question.
func (s *DraftSession) Answer(questionID, answer string) {
	s.draft.Questions[questionID] = answer
}

// Toggle flips a checklist item. It reports whether the id exists.
func (s *DraftSession) Toggle(id string) bool {
	for i := range s.draft.Checklist {
		if s.draft.Checklist[i].ID == id {
			s.draft.Checklist[i].Checked = !s.draft.Checklist[i].Checked
			return true
		}
	}
	return false
}

// AddImages attaches images until the cap is reached and returns how many
// were accepted.
func (s *DraftSession) AddImages(images ...models.NewImage) int {
	free := max(0, s.maxImages-len(s.draft.Images))
	accepted := min(free, len(images))
	s.draft.Images = append(s.draft.Images, images[:accepted]...)
	return accepted
}

// RemoveImage detaches every image with the given name.
func (s *DraftSession) RemoveImage(name string) {
	kept := s.draft.Images[:0]
	for _, img := range s.draft.Images {
		if img.Name != name {
			kept = append(kept, img)
		}
	}
	s.draft.Images = kept
}

// Reset empties the form. Checklist items are kept but unchecked.
func (s *DraftSession) Reset() {
	checklist := s.draft.Checklist
	for i := range checklist {
		checklist[i].Checked = false
	}
	s.draft = models.Draft{
		Checklist: checklist,
		Questions: emptyAnswers(s.questions),
	}
	s.autoPnL = false
}

// Build converts the draft into a store input. Title is the trimmed setup
// name; tags are the comma separated tag text, trimmed, with blanks
// dropped.
func (s *DraftSession) Build() models.NewReflection {
	return BuildReflection(s.draft)
}

// BuildReflection converts a draft into a store input. See
// [DraftSession.Build].
func BuildReflection(d models.Draft) models.NewReflection {
	doc := journal.Document{
		Layout:     journal.LayoutExecution,
		Instrument: d.Instrument,
		Timeframe:  d.Timeframe,
		Direction:  d.Direction,
		EntryPrice: d.EntryPrice,
		ExitPrice:  d.ExitPrice,
		Quantity:   d.Quantity,
		Prices:     d.Prices,
		SetupName:  d.SetupName,
		Outcome:    d.Outcome,
		PnL:        d.PnL,
		Confidence: d.Confidence,
		Tags:       d.Tags,
		Questions:  d.Questions,
		Checklist:  d.Checklist,
	}

	return models.NewReflection{
		Title:  strings.TrimSpace(d.SetupName),
		Body:   doc.Encode(),
		Tags:   SplitTags(d.Tags),
		Images: d.Images,
	}
}

// SplitTags splits comma separated tag text. Blank tags are dropped; the
// result is nil when nothing remains.
func SplitTags(text string) []string {
	var tags []string
	for _, tag := range strings.Split(text, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
