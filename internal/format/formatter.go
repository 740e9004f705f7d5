// Package format provides output formatting functionality for CLI commands.
// It includes formatters for catalog listings and navigation history.
package format

import (
	"errors"
	"fmt"
	"io"

	"github.com/cristianoliveira/showreel/internal/catalog"
	"github.com/cristianoliveira/showreel/internal/journal"
)

// ErrUnknownFormat is returned by ParseType for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// Formatter defines the interface for output formatters.
type Formatter interface {
	// FormatItems writes a catalog listing.
	FormatItems(items []catalog.Item, writer io.Writer) error

	// FormatEntries writes navigation journal entries, newest first.
	FormatEntries(entries []journal.Entry, writer io.Writer) error

	// FormatCounts writes per-item view counts.
	FormatCounts(counts []journal.ItemCount, writer io.Writer) error
}

// FormatterType represents the type of formatter to use.
type FormatterType string

const (
	// FormatterTypeTable draws bordered tables with headers.
	FormatterTypeTable FormatterType = "table"

	// FormatterTypeSimple prints one tab separated line per record.
	FormatterTypeSimple FormatterType = "simple"

	// FormatterTypeJSON prints indented JSON arrays.
	FormatterTypeJSON FormatterType = "json"
)

// ParseType validates a formatter name.
func ParseType(name string) (FormatterType, error) {
	switch t := FormatterType(name); t {
	case FormatterTypeTable, FormatterTypeSimple, FormatterTypeJSON:
		return t, nil
	default:
		return "", fmt.Errorf("%w %q: expected table, simple or json", ErrUnknownFormat, name)
	}
}

// NewFormatter creates a new formatter of the specified type.
func NewFormatter(formatterType FormatterType) Formatter {
	switch formatterType {
	case FormatterTypeSimple:
		return NewSimpleFormatter()
	case FormatterTypeJSON:
		return NewJSONFormatter()
	default:
		return NewTableFormatter()
	}
}

const timeLayout = "2006-01-02 15:04:05"
