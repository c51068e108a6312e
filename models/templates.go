package models

// ChecklistTemplateItem is one reusable pre-trade checklist entry.
type ChecklistTemplateItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// ChecklistSnapshotItem is a checklist entry as captured on a reflection,
// with its checked state at the time of writing.
type ChecklistSnapshotItem struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// ReflectionQuestion is a configurable prompt answered per reflection.
type ReflectionQuestion struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
}

// SectionConfig controls the order and visibility of a form section.
type SectionConfig struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Visible bool   `json:"visible"`
}
