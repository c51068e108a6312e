package models

// Draft is the state of the new-reflection form before it is saved.
//
// Every scalar is the raw text typed by the user. Tags is the comma
// separated tag text; Questions maps question ids to answers.
type Draft struct {
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

	Questions map[string]string
	Checklist []ChecklistSnapshotItem
	Images    []NewImage
}

// ChecklistComplete reports whether every checklist item is checked. An
// empty checklist is complete.
func (d Draft) ChecklistComplete() bool {
	for _, item := range d.Checklist {
		if !item.Checked {
			return false
		}
	}
	return true
}
