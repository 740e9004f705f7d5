package format

import (
	"encoding/json"
	"io"

	"github.com/cristianoliveira/showreel/internal/catalog"
	"github.com/cristianoliveira/showreel/internal/journal"
)

// JSONFormatter prints indented JSON arrays. Empty input prints [].
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// FormatItems formats catalog items.
func (f *JSONFormatter) FormatItems(items []catalog.Item, writer io.Writer) error {
	if items == nil {
		items = []catalog.Item{}
	}
	return encode(writer, items)
}

// FormatEntries formats journal entries.
func (f *JSONFormatter) FormatEntries(entries []journal.Entry, writer io.Writer) error {
	if entries == nil {
		entries = []journal.Entry{}
	}
	return encode(writer, entries)
}

// FormatCounts formats per-item view counts.
func (f *JSONFormatter) FormatCounts(counts []journal.ItemCount, writer io.Writer) error {
	if counts == nil {
		counts = []journal.ItemCount{}
	}
	return encode(writer, counts)
}

func encode(writer io.Writer, v any) error {
	enc := json.NewEncoder(writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
