// Package export writes the journal out as a spreadsheet friendly CSV file
// or a full JSON backup, and restores such a backup into a store.
package export
