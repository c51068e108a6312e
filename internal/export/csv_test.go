package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-trade-journal/models"
)

func TestWriteCSV(t *testing.T) {
	created := time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)
	reflections := []models.Reflection{
		{
			ID:    2,
			Title: "Opening drive",
			Body: `{"instrument":"ES","direction":"long","setupName":"ORB","entryPrice":"5000",` +
				`"exitPrice":"5004","quantity":"1","pnl":"200.00","outcome":"Win","confidence":"4",` +
				`"questions":{"thesis":"gap up, \"strong\" open","risk":"news, CPI"}}`,
			Tags:      []string{"orb", "a+"},
			CreatedAt: created,
		},
		{
			ID:        1,
			Title:     "legacy note",
			Body:      "plain text body",
			CreatedAt: created.Add(-time.Hour),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, reflections))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, CSVHeader, records[0])
	assert.Equal(t, []string{
		"2024-03-01T14:30:00.000Z",
		"ES", "long", "ORB", "5000", "5004", "1", "200.00", "Win", "4",
		"orb; a+",
		`[risk]: news, CPI | [thesis]: gap up, "strong" open`,
	}, records[1])

	assert.Equal(t, "2024-03-01T13:30:00.000Z", records[2][0])
	assert.Equal(t, "legacy note", records[2][3], "setup falls back to the title")
	assert.Equal(t, "", records[2][10])
	assert.Equal(t, "", records[2][11])
}

func TestWriteCSV_BodyDateWins(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []models.Reflection{
		{Body: `{"date":"2023-12-24","setupName":"x"}`, CreatedAt: time.Now()},
	}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "2023-12-24", records[1][0])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestFileNames(t *testing.T) {
	ts := time.Date(2024, 7, 9, 23, 0, 0, 0, time.UTC)

	assert.Equal(t, "trading_journal_2024-07-09.csv", CSVFileName(ts))
	assert.Equal(t, "trading_journal_backup_2024-07-09.json", BackupFileName(ts))
	assert.Equal(t, CSVFileName(ts), FormatCSV.FileName(ts))
	assert.Equal(t, BackupFileName(ts), FormatJSON.FileName(ts))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" CSV ")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xlsx")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
