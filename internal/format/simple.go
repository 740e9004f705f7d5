package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/showreel/internal/catalog"
	"github.com/cristianoliveira/showreel/internal/journal"
)

// SimpleFormatter prints one tab separated line per record, for scripts.
type SimpleFormatter struct{}

// NewSimpleFormatter creates a new SimpleFormatter.
func NewSimpleFormatter() *SimpleFormatter {
	return &SimpleFormatter{}
}

// FormatItems formats catalog items.
func (f *SimpleFormatter) FormatItems(items []catalog.Item, writer io.Writer) error {
	for i, it := range items {
		_, err := fmt.Fprintf(writer, "%d\t%s\t%s\t%s\n", i+1, it.ID, it.Title, strings.Join(it.Technologies, ","))
		if err != nil {
			return err
		}
	}
	return nil
}

// FormatEntries formats journal entries.
func (f *SimpleFormatter) FormatEntries(entries []journal.Entry, writer io.Writer) error {
	for _, e := range entries {
		_, err := fmt.Fprintf(writer, "%s\t%d\t%d\t%d\t%s\t%s\n",
			e.At.UTC().Format("2006-01-02T15:04:05Z"), e.From, e.To, e.Direction, e.Source, e.ItemID)
		if err != nil {
			return err
		}
	}
	return nil
}

// FormatCounts formats per-item view counts.
func (f *SimpleFormatter) FormatCounts(counts []journal.ItemCount, writer io.Writer) error {
	for _, c := range counts {
		if _, err := fmt.Fprintf(writer, "%s\t%d\n", c.ItemID, c.Views); err != nil {
			return err
		}
	}
	return nil
}
