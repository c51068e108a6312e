package models

import (
	"slices"
	"time"
)

// Reflection is a single journaled trade or note.
//
// Body is an opaque serialized document; the store never looks inside it.
// Tags is nil when the reflection has no tags.
type Reflection struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasTag reports whether tag is one of the reflection's tags. The match is
// exact and case-sensitive.
func (r Reflection) HasTag(tag string) bool {
	return slices.Contains(r.Tags, tag)
}

// Image is a screenshot attached to exactly one reflection. DataURL carries
// the encoded image bytes (e.g. "data:image/png;base64,...").
type Image struct {
	ID           int64     `json:"id"`
	ReflectionID int64     `json:"reflectionId"`
	Name         string    `json:"name"`
	DataURL      string    `json:"dataUrl"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ReflectionWithImages is a hydrated reflection together with its images.
type ReflectionWithImages struct {
	Reflection Reflection `json:"reflection"`
	Images     []Image    `json:"images"`
}

// NewImage is an image supplied when a reflection is created.
type NewImage struct {
	Name    string `json:"name"`
	DataURL string `json:"dataUrl"`
}

// NewReflection is the input of a reflection create.
//
// CreatedAt and UpdatedAt are left zero for new entries and default to the
// store's clock. Restores set them to keep the original history.
type NewReflection struct {
	Title     string
	Body      string
	Tags      []string
	Images    []NewImage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReflectionUpdate is a partial update: nil fields are left untouched.
type ReflectionUpdate struct {
	Title *string
	Body  *string
	Tags  *[]string
}

// IsEmpty reports whether the update changes no field besides UpdatedAt.
func (u ReflectionUpdate) IsEmpty() bool {
	return u.Title == nil && u.Body == nil && u.Tags == nil
}

// ReflectionFilters narrows a reflection listing. Every field is optional.
//
// StartDate and EndDate accept either a calendar date (YYYY-MM-DD) or an
// RFC 3339 timestamp and are compared inclusively against CreatedAt.
type ReflectionFilters struct {
	Query     string
	Tag       string
	StartDate string
	EndDate   string
	Limit     int
}

// DataSummary counts the persisted rows, shown on the settings screen.
type DataSummary struct {
	ReflectionCount int64 `json:"reflectionCount"`
	ImageCount      int64 `json:"imageCount"`
}
