package journal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-trade-journal/models"
)

// Layout identifies the historical field layout a body was written in.
type Layout int

const (
	// LayoutRaw is a body that is not a JSON object.
	LayoutRaw Layout = iota
	// LayoutNotes is the earliest JSON form: free-text notes only.
	LayoutNotes
	// LayoutPlanned carries the setup, planned prices text and question
	// answers but no execution fields.
	LayoutPlanned
	// LayoutExecution is the current form with entry/exit prices,
	// quantity and a checklist snapshot.
	LayoutExecution
)

func (l Layout) String() string {
	switch l {
	case LayoutNotes:
		return "notes"
	case LayoutPlanned:
		return "planned"
	case LayoutExecution:
		return "execution"
	default:
		return "raw"
	}
}

// ErrUnknownField is returned by [Document.Set] for keys that are not scalar
// document fields.
var ErrUnknownField = errors.New("unknown document field")

// Scalar field keys in the order the current form writes them.
const (
	FieldInstrument = "instrument"
	FieldTimeframe  = "timeframe"
	FieldDirection  = "direction"
	FieldEntryPrice = "entryPrice"
	FieldExitPrice  = "exitPrice"
	FieldQuantity   = "quantity"
	FieldPrices     = "prices"
	FieldSetupName  = "setupName"
	FieldOutcome    = "outcome"
	FieldPnL        = "pnl"
	FieldConfidence = "confidence"
	FieldTags       = "tags"
	FieldNotes      = "notes"
	FieldDate       = "date"

	keyQuestions = "questions"
	keyChecklist = "checklist"

	// LegacyPrefix marks Extra keys holding a known field whose stored value
	// could not be read as that field.
	LegacyPrefix = "_legacy_"
)

// Fields lists every editable scalar field key.
var Fields = []string{
	FieldInstrument,
	FieldTimeframe,
	FieldDirection,
	FieldEntryPrice,
	FieldExitPrice,
	FieldQuantity,
	FieldPrices,
	FieldSetupName,
	FieldOutcome,
	FieldPnL,
	FieldConfidence,
	FieldTags,
	FieldNotes,
	FieldDate,
}

var executionKeys = []string{FieldEntryPrice, FieldExitPrice, FieldQuantity, keyChecklist}

var plannedKeys = []string{
	FieldInstrument, FieldTimeframe, FieldDirection, FieldPrices,
	FieldSetupName, FieldOutcome, FieldPnL, FieldConfidence, keyQuestions,
}

// Document is the unified view of a reflection body.
//
// Tags is the comma separated tag text typed into the form, not the
// reflection's tag list. Extra keeps every JSON key that is not one of the
// known fields so that re-encoding an edited body loses nothing.
type Document struct {
	Layout Layout

	Instrument string
	Timeframe  string
	Direction  string
	EntryPrice string
	ExitPrice  string
	Quantity   string
	Prices     string
	SetupName  string
	Outcome    string
	PnL        string
	Confidence string
	Tags       string
	Notes      string
	Date       string

	Questions map[string]string
	Checklist []models.ChecklistSnapshotItem

	Extra map[string]json.RawMessage
}

// ParseBody maps body onto a Document. It never fails.
func ParseBody(body string) Document {
	if !strings.HasPrefix(strings.TrimSpace(body), "{") {
		return Document{Layout: LayoutRaw, Notes: body}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &fields); err != nil || fields == nil {
		return Document{Layout: LayoutRaw, Notes: body}
	}

	doc := Document{Layout: sniffLayout(fields)}

	for key, raw := range fields {
		switch key {
		case keyQuestions:
			var answers map[string]flexString
			if err := json.Unmarshal(raw, &answers); err != nil {
				doc.keepLegacy(key, raw)
				continue
			}
			if len(answers) > 0 {
				doc.Questions = make(map[string]string, len(answers))
				for id, answer := range answers {
					doc.Questions[id] = string(answer)
				}
			}
		case keyChecklist:
			var items []models.ChecklistSnapshotItem
			if err := json.Unmarshal(raw, &items); err != nil {
				doc.keepLegacy(key, raw)
				continue
			}
			doc.Checklist = items
		default:
			ptr := doc.field(key)
			if ptr == nil {
				doc.keepExtra(key, raw)
				continue
			}
			var value flexString
			if err := json.Unmarshal(raw, &value); err != nil {
				doc.keepLegacy(key, raw)
				continue
			}
			*ptr = string(value)
		}
	}

	return doc
}

func sniffLayout(fields map[string]json.RawMessage) Layout {
	has := func(keys []string) bool {
		return slices.ContainsFunc(keys, func(k string) bool {
			_, ok := fields[k]
			return ok
		})
	}

	switch {
	case has(executionKeys):
		return LayoutExecution
	case has(plannedKeys):
		return LayoutPlanned
	default:
		return LayoutNotes
	}
}

func (d *Document) keepExtra(key string, raw json.RawMessage) {
	if d.Extra == nil {
		d.Extra = make(map[string]json.RawMessage)
	}
	d.Extra[key] = raw
}

// keepLegacy stores an unreadable known field under LegacyPrefix so that
// Encode never writes the key twice. A legacy key already present in the
// body wins.
func (d *Document) keepLegacy(key string, raw json.RawMessage) {
	key = LegacyPrefix + key
	if _, ok := d.Extra[key]; ok {
		return
	}
	d.keepExtra(key, raw)
}

func (d *Document) field(key string) *string {
	switch key {
	case FieldInstrument:
		return &d.Instrument
	case FieldTimeframe:
		return &d.Timeframe
	case FieldDirection:
		return &d.Direction
	case FieldEntryPrice:
		return &d.EntryPrice
	case FieldExitPrice:
		return &d.ExitPrice
	case FieldQuantity:
		return &d.Quantity
	case FieldPrices:
		return &d.Prices
	case FieldSetupName:
		return &d.SetupName
	case FieldOutcome:
		return &d.Outcome
	case FieldPnL:
		return &d.PnL
	case FieldConfidence:
		return &d.Confidence
	case FieldTags:
		return &d.Tags
	case FieldNotes:
		return &d.Notes
	case FieldDate:
		return &d.Date
	default:
		return nil
	}
}

// Get returns the value of a scalar field.
func (d *Document) Get(key string) (string, bool) {
	ptr := d.field(key)
	if ptr == nil {
		return "", false
	}
	return *ptr, true
}

// Set changes a scalar field.
func (d *Document) Set(key, value string) error {
	ptr := d.field(key)
	if ptr == nil {
		return fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	*ptr = value
	return nil
}

// Merge applies changes to the scalar fields. Nothing is changed when
// any key is unknown.
func (d *Document) Merge(changes map[string]string) error {
	for key := range changes {
		if d.field(key) == nil {
			return fmt.Errorf("%w: %q", ErrUnknownField, key)
		}
	}
	for key, value := range changes {
		*d.field(key) = value
	}
	return nil
}

// SetAnswer records the answer to a reflection question.
func (d *Document) SetAnswer(questionID, answer string) {
	if d.Questions == nil {
		d.Questions = make(map[string]string)
	}
	d.Questions[questionID] = answer
}

// Answers returns the question answers ordered by question id.
func (d *Document) Answers() []string {
	ids := make([]string, 0, len(d.Questions))
	for id := range d.Questions {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	answers := make([]string, 0, len(ids))
	for _, id := range ids {
		answers = append(answers, d.Questions[id])
	}
	return answers
}

// PnLValue parses the P&L field. See [ParsePnL].
func (d *Document) PnLValue() (decimal.Decimal, bool) {
	return ParsePnL(d.PnL)
}

// ParsePnL parses a user-entered P&L figure such as "125.50", "-40",
// "+1,200" or "$60". ok is false for empty or non-numeric input.
func ParsePnL(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	if neg || strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return decimal.Zero, false
	}

	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if neg {
		v = v.Neg()
	}
	return v, true
}

// Encode writes the document in the current layout, indented by two
// spaces. Notes and date are only written when set; unknown keys kept in
// Extra follow the known fields in key order.
func (d *Document) Encode() string {
	var buf bytes.Buffer
	buf.WriteString("{")

	first := true
	write := func(key string, value []byte) {
		if !first {
			buf.WriteString(",")
		}
		first = false
		buf.WriteString("\n  ")
		keyJSON, _ := json.Marshal(key)
		buf.Write(keyJSON)
		buf.WriteString(": ")
		if err := json.Indent(&buf, value, "  ", "  "); err != nil {
			buf.Write(value)
		}
	}
	writeString := func(key, value string) {
		raw, _ := json.Marshal(value)
		write(key, raw)
	}

	writeString(FieldInstrument, d.Instrument)
	writeString(FieldTimeframe, d.Timeframe)
	writeString(FieldDirection, d.Direction)
	writeString(FieldEntryPrice, d.EntryPrice)
	writeString(FieldExitPrice, d.ExitPrice)
	writeString(FieldQuantity, d.Quantity)
	writeString(FieldPrices, d.Prices)
	writeString(FieldSetupName, d.SetupName)
	writeString(FieldOutcome, d.Outcome)
	writeString(FieldPnL, d.PnL)
	writeString(FieldConfidence, d.Confidence)
	writeString(FieldTags, d.Tags)
	if d.Notes != "" {
		writeString(FieldNotes, d.Notes)
	}
	if d.Date != "" {
		writeString(FieldDate, d.Date)
	}

	questions := d.Questions
	if questions == nil {
		questions = map[string]string{}
	}
	raw, _ := json.Marshal(questions)
	write(keyQuestions, raw)

	checklist := d.Checklist
	if checklist == nil {
		checklist = []models.ChecklistSnapshotItem{}
	}
	raw, _ = json.Marshal(checklist)
	write(keyChecklist, raw)

	extraKeys := make([]string, 0, len(d.Extra))
	for key := range d.Extra {
		extraKeys = append(extraKeys, key)
	}
	slices.Sort(extraKeys)
	for _, key := range extraKeys {
		write(key, d.Extra[key])
	}

	buf.WriteString("\n}")
	return buf.String()
}

// flexString decodes any JSON scalar as text. Older bodies stored prices
// and confidence as numbers; arrays of scalars are joined with ", ".
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return errors.New("empty value")
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
	case 'n':
		*f = ""
	case 't', 'f':
		var v bool
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*f = flexString(fmt.Sprint(v))
	case '[':
		var items []flexString
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		parts := make([]string, 0, len(items))
		for _, item := range items {
			parts = append(parts, string(item))
		}
		*f = flexString(strings.Join(parts, ", "))
	case '{':
		return errors.New("object is not a scalar")
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*f = flexString(n.String())
	}

	return nil
}
