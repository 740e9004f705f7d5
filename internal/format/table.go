package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cristianoliveira/showreel/internal/catalog"
	"github.com/cristianoliveira/showreel/internal/journal"
)

const maxCellWidth = 40

// TableFormatter renders records as bordered tables.
type TableFormatter struct {
	headerStyle lipgloss.Style
	cellStyle   lipgloss.Style
}

// NewTableFormatter creates a new TableFormatter.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		headerStyle: lipgloss.NewStyle().Bold(true).Padding(0, 1),
		cellStyle:   lipgloss.NewStyle().Padding(0, 1),
	}
}

// FormatItems formats catalog items, numbered from 1 like the jump keys.
func (f *TableFormatter) FormatItems(items []catalog.Item, writer io.Writer) error {
	rows := make([][]string, len(items))
	for i, it := range items {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			it.ID,
			truncate(it.Title),
			it.Category,
			truncate(strings.Join(it.Technologies, ", ")),
		}
	}
	return f.write(writer, []string{"#", "ID", "TITLE", "CATEGORY", "TECHNOLOGIES"}, rows)
}

// FormatEntries formats journal entries.
func (f *TableFormatter) FormatEntries(entries []journal.Entry, writer io.Writer) error {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			e.At.Local().Format(timeLayout),
			fmt.Sprintf("%d → %d", e.From+1, e.To+1),
			directionArrow(e.Direction),
			e.Source,
			e.ItemID,
		}
	}
	return f.write(writer, []string{"WHEN", "MOVE", "DIR", "SOURCE", "ITEM"}, rows)
}

// FormatCounts formats per-item view counts.
func (f *TableFormatter) FormatCounts(counts []journal.ItemCount, writer io.Writer) error {
	rows := make([][]string, len(counts))
	for i, c := range counts {
		rows[i] = []string{c.ItemID, strconv.Itoa(c.Views), c.LastSeen.Local().Format(timeLayout)}
	}
	return f.write(writer, []string{"ITEM", "VIEWS", "LAST SEEN"}, rows)
}

func (f *TableFormatter) write(writer io.Writer, headers []string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return f.headerStyle
			}
			return f.cellStyle
		})
	_, err := fmt.Fprintln(writer, t.Render())
	return err
}

func directionArrow(d int) string {
	switch {
	case d > 0:
		return "→"
	case d < 0:
		return "←"
	default:
		return "·"
	}
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxCellWidth {
		return s
	}
	return string(r[:maxCellWidth-3]) + "..."
}
