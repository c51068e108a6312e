package models

import "time"

// Setting is a generic key/value record. Value is usually a JSON document
// whose shape only the reading collaborator knows.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Snapshot is a full copy of the persisted state used for backups.
type Snapshot struct {
	Reflections []Reflection `json:"reflections"`
	Images      []Image      `json:"images"`
	Settings    []Setting    `json:"settings"`
}
