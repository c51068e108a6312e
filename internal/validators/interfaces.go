// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks journal input before it reaches the store.
//
// A Validator inspects drafts, attached images and partial updates. Callers
// may pass field names to restrict a check to the fields a user actually
// touched, which is how edits of a stored reflection are validated.
package validators

import "context"

// Validator validates a value of one of the journal input types.
type Validator interface {
	// Validate checks value. When fields are given only those fields are
	// checked; unknown names yield ErrUnknownField and unsupported values
	// ErrUnsupportedType.
	Validate(ctx context.Context, value any, fields ...string) error
}
