// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-visible status messages shared by the
// command line and the browse screen.
//
// All Msg* constants are human-readable strings shown after an operation
// finishes. Keeping them in one place keeps the wording consistent.
package app

import (
	"errors"

	"github.com/MKhiriev/go-trade-journal/internal/service"
	"github.com/MKhiriev/go-trade-journal/internal/validators"
)

const (
	// MsgReflectionSaved is shown after a new reflection was stored.
	MsgReflectionSaved = "Reflection saved."

	// MsgReflectionUpdated is shown after an edit was stored.
	MsgReflectionUpdated = "Reflection updated."

	// MsgReflectionDeleted is shown after a reflection and its images were
	// removed.
	MsgReflectionDeleted = "Reflection deleted."

	// MsgUnableToSaveReflection is shown when the store rejects a create or
	// an edit.
	MsgUnableToSaveReflection = "Unable to save reflection."

	// MsgUnableToLoadReflections is shown when listing or reading fails.
	MsgUnableToLoadReflections = "Unable to load reflections."

	// MsgUnableToDeleteReflection is shown when a delete fails.
	MsgUnableToDeleteReflection = "Unable to delete reflection."

	// MsgReflectionNotFound is shown for an id that does not exist.
	MsgReflectionNotFound = "Reflection not found."

	// MsgFillRequiredFields is shown when a draft misses a required field.
	MsgFillRequiredFields = "Please fill all required fields before saving."

	// MsgChecklistIncomplete is shown when checklist blocking is on and the
	// daily checklist was not completed today.
	MsgChecklistIncomplete = "Complete today's checklist before saving."

	// MsgUnableToReadImage is shown when an attached image file cannot be
	// read or is rejected.
	MsgUnableToReadImage = "Unable to read one of the selected images."

	// MsgChecklistTemplateSaved is shown after the checklist template was
	// changed.
	MsgChecklistTemplateSaved = "Checklist template saved."

	// MsgUnableToSaveChecklistTemplate is shown when the checklist template
	// cannot be written.
	MsgUnableToSaveChecklistTemplate = "Unable to save checklist template."

	// MsgReflectionQuestionsSaved is shown after the questions were changed.
	MsgReflectionQuestionsSaved = "Reflection questions saved."

	// MsgUnableToSaveReflectionQuestions is shown when the questions cannot
	// be written.
	MsgUnableToSaveReflectionQuestions = "Unable to save reflection questions."

	// MsgUnableToLoadReflectionQuestions is shown when the questions cannot
	// be read.
	MsgUnableToLoadReflectionQuestions = "Unable to load reflection questions."

	// MsgLocalDataCleared is shown after a full wipe.
	MsgLocalDataCleared = "Local data cleared."

	// MsgUnableToClearLocalData is shown when a wipe fails.
	MsgUnableToClearLocalData = "Unable to clear local data."

	// MsgFailedToExport is shown when an export cannot be written.
	MsgFailedToExport = "Failed to export data."

	// MsgFailedToImport is shown when a backup cannot be read or restored.
	MsgFailedToImport = "Failed to import data."

	// MsgCopied is shown after a body was copied to the clipboard.
	MsgCopied = "Copied to clipboard."

	// MsgUnableToCopy is shown when the clipboard is not available.
	MsgUnableToCopy = "Unable to copy to clipboard."
)

// SaveMessage picks the status shown after saving a draft or an edit.
func SaveMessage(err error) string {
	switch {
	case err == nil:
		return MsgReflectionSaved
	case errors.Is(err, validators.ErrRequiredField), errors.Is(err, validators.ErrNoFieldsToUpdate):
		return MsgFillRequiredFields
	case errors.Is(err, validators.ErrInvalidImage), errors.Is(err, validators.ErrTooManyImages):
		return MsgUnableToReadImage
	case errors.Is(err, service.ErrChecklistIncomplete):
		return MsgChecklistIncomplete
	case errors.Is(err, service.ErrReflectionNotFound):
		return MsgReflectionNotFound
	default:
		return MsgUnableToSaveReflection
	}
}

// LoadMessage picks the status shown when reading reflections fails.
func LoadMessage(err error) string {
	if errors.Is(err, service.ErrReflectionNotFound) {
		return MsgReflectionNotFound
	}
	return MsgUnableToLoadReflections
}
