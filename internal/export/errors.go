package export

import "errors"

var (
	ErrWritingCSV        = errors.New("failed to write csv")
	ErrWritingBackup     = errors.New("failed to write backup")
	ErrReadingBackup     = errors.New("failed to read backup")
	ErrRestoringBackup   = errors.New("failed to restore backup")
	ErrUnsupportedFormat = errors.New("unsupported export format")
)
