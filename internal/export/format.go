package export

import (
	"fmt"
	"strings"
	"time"
)

// Format selects the shape of an export.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat accepts "csv" or "json" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// FileName is the suggested file name of an export made at t.
func (f Format) FileName(t time.Time) string {
	if f == FormatJSON {
		return BackupFileName(t)
	}
	return CSVFileName(t)
}
