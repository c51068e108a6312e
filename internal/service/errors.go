package service

import "errors"

var (
	ErrReflectionNotFound  = errors.New("reflection not found")
	ErrChecklistIncomplete = errors.New("daily checklist is not complete")
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTemplateItemNotFound = errors.New("template item not found")
	ErrEmptyTemplateItem    = errors.New("template item text is empty")
)
