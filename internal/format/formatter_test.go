package format

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/cristianoliveira/showreel/internal/catalog"
	"github.com/cristianoliveira/showreel/internal/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testItems = []catalog.Item{
	{ID: "dashboard", Title: "Admin Dashboard", Category: "Web Development", Technologies: []string{"React", "Go"}},
	{ID: "tracker", Title: "Health Tracker", Category: "Health Tech"},
}

var testEntries = []journal.Entry{
	{ID: 2, At: time.Date(2026, 3, 1, 10, 0, 5, 0, time.UTC), From: 0, To: 1, Direction: 1, Source: "autoplay", ItemID: "tracker"},
	{ID: 1, At: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), From: 1, To: 0, Direction: -1, Source: "key", ItemID: "dashboard"},
}

func TestParseType(t *testing.T) {
	for _, name := range []string{"table", "simple", "json"} {
		got, err := ParseType(name)
		require.NoError(t, err)
		assert.Equal(t, FormatterType(name), got)
	}

	_, err := ParseType("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestNewFormatter(t *testing.T) {
	assert.IsType(t, &TableFormatter{}, NewFormatter(FormatterTypeTable))
	assert.IsType(t, &SimpleFormatter{}, NewFormatter(FormatterTypeSimple))
	assert.IsType(t, &JSONFormatter{}, NewFormatter(FormatterTypeJSON))
	assert.IsType(t, &TableFormatter{}, NewFormatter("unknown"))
}

func TestTableFormatterItems(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter().FormatItems(testItems, &buf))

	out := buf.String()
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Admin Dashboard")
	assert.Contains(t, out, "React, Go")
	assert.Contains(t, out, "Health Tracker")
}

func TestTableFormatterEntriesAndCounts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter().FormatEntries(testEntries, &buf))
	assert.Contains(t, buf.String(), "1 → 2")
	assert.Contains(t, buf.String(), "autoplay")
	assert.Contains(t, buf.String(), "←")

	buf.Reset()
	counts := []journal.ItemCount{{ItemID: "tracker", Views: 3, LastSeen: testEntries[0].At}}
	require.NoError(t, NewTableFormatter().FormatCounts(counts, &buf))
	assert.Contains(t, buf.String(), "VIEWS")
	assert.Contains(t, buf.String(), "tracker")
}

func TestTableFormatterEmptyPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter().FormatItems(nil, &buf))
	assert.Empty(t, buf.String())
}

func TestSimpleFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewSimpleFormatter()

	require.NoError(t, f.FormatItems(testItems, &buf))
	assert.Equal(t, "1\tdashboard\tAdmin Dashboard\tReact,Go\n2\ttracker\tHealth Tracker\t\n", buf.String())

	buf.Reset()
	require.NoError(t, f.FormatEntries(testEntries[:1], &buf))
	assert.Equal(t, "2026-03-01T10:00:05Z\t0\t1\t1\tautoplay\ttracker\n", buf.String())

	buf.Reset()
	require.NoError(t, f.FormatCounts([]journal.ItemCount{{ItemID: "tracker", Views: 4}}, &buf))
	assert.Equal(t, "tracker\t4\n", buf.String())
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter()

	require.NoError(t, f.FormatItems(testItems, &buf))
	var items []catalog.Item
	require.NoError(t, json.Unmarshal(buf.Bytes(), &items))
	assert.Equal(t, testItems[0].Technologies, items[0].Technologies)

	buf.Reset()
	require.NoError(t, f.FormatEntries(nil, &buf))
	assert.Equal(t, "[]\n", buf.String())
}

func TestTruncate(t *testing.T) {
	long := "abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyz"
	got := truncate(long)
	assert.Len(t, []rune(got), maxCellWidth)
	assert.Equal(t, "...", got[len(got)-3:])
	assert.Equal(t, "short", truncate("short"))
}
