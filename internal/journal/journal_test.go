package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJournal(t *testing.T) *Journal {
	t.Helper()

	j, err := Open(filepath.Join(t.TempDir(), "state", FileName))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, j.Close())
	})
	return j
}

var base = time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

func record(t *testing.T, j *Journal, e Entry) int64 {
	t.Helper()

	id, err := j.Record(context.Background(), e)
	require.NoError(t, err)
	return id
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := Open("  ")
	require.ErrorIs(t, err, ErrEmptyPath)
}

func TestRecordAndRecent(t *testing.T) {
	j := newTestJournal(t)

	first := record(t, j, Entry{At: base, From: 0, To: 1, Direction: 1, Source: "button", ItemID: "campus-portal"})
	second := record(t, j, Entry{At: base.Add(time.Second), From: 1, To: 0, Direction: -1, Source: "gesture", ItemID: "clinic-desk"})
	assert.Greater(t, second, first)

	entries, err := j.Recent(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, second, entries[0].ID)
	assert.Equal(t, "gesture", entries[0].Source)
	assert.Equal(t, -1, entries[0].Direction)
	assert.True(t, entries[0].At.Equal(base.Add(time.Second)))
	assert.Equal(t, "campus-portal", entries[1].ItemID)
	assert.Equal(t, 0, entries[1].From)
	assert.Equal(t, 1, entries[1].To)
}

func TestRecordStampsZeroTime(t *testing.T) {
	j := newTestJournal(t)
	before := time.Now().Add(-time.Second)

	record(t, j, Entry{From: 0, To: 1, Direction: 1, Source: "autoplay"})

	entries, err := j.Recent(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].At.After(before))
}

func TestRecordValidates(t *testing.T) {
	j := newTestJournal(t)

	tests := []struct {
		name  string
		entry Entry
	}{
		{"negative index", Entry{From: -1, To: 0, Source: "key"}},
		{"bad direction", Entry{From: 0, To: 1, Direction: 2, Source: "key"}},
		{"missing source", Entry{From: 0, To: 1, Direction: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := j.Record(context.Background(), tt.entry)
			require.ErrorIs(t, err, ErrInvalidEntry)
		})
	}
}

func TestRecentFilters(t *testing.T) {
	j := newTestJournal(t)
	for i := 0; i < 5; i++ {
		source := "autoplay"
		if i%2 == 1 {
			source = "dot"
		}
		record(t, j, Entry{At: base.Add(time.Duration(i) * time.Minute), From: i, To: i + 1, Direction: 1, Source: source, ItemID: "storefront"})
	}
	record(t, j, Entry{At: base, From: 0, To: 2, Direction: 1, Source: "dot", ItemID: "crop-vision"})

	ctx := context.Background()

	bySource, err := j.Recent(ctx, Filter{Source: "dot"})
	require.NoError(t, err)
	assert.Len(t, bySource, 3)

	byItem, err := j.Recent(ctx, Filter{ItemID: "crop-vision"})
	require.NoError(t, err)
	require.Len(t, byItem, 1)
	assert.Equal(t, 2, byItem[0].To)

	since, err := j.Recent(ctx, Filter{Since: base.Add(3 * time.Minute)})
	require.NoError(t, err)
	assert.Len(t, since, 2)

	limited, err := j.Recent(ctx, Filter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, 4, limited[0].From)
}

func TestCounts(t *testing.T) {
	j := newTestJournal(t)
	record(t, j, Entry{At: base, From: 0, To: 1, Direction: 1, Source: "autoplay", ItemID: "campus-portal"})
	record(t, j, Entry{At: base.Add(time.Minute), From: 2, To: 1, Direction: -1, Source: "key", ItemID: "campus-portal"})
	record(t, j, Entry{At: base.Add(2 * time.Minute), From: 1, To: 2, Direction: 1, Source: "key", ItemID: "crop-vision"})
	record(t, j, Entry{At: base, From: 0, To: 0, Direction: 0, Source: "dot"})

	counts, err := j.Counts(context.Background())
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, "campus-portal", counts[0].ItemID)
	assert.Equal(t, 2, counts[0].Views)
	assert.True(t, counts[0].LastSeen.Equal(base.Add(time.Minute)))
	assert.Equal(t, "crop-vision", counts[1].ItemID)
	assert.Equal(t, 1, counts[1].Views)
}

func TestClear(t *testing.T) {
	j := newTestJournal(t)
	record(t, j, Entry{At: base, From: 0, To: 1, Direction: 1, Source: "autoplay"})
	record(t, j, Entry{At: base, From: 1, To: 2, Direction: 1, Source: "autoplay"})

	n, err := j.Clear(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	entries, err := j.Recent(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	j, err := Open(path)
	require.NoError(t, err)
	record(t, j, Entry{At: base, From: 0, To: 1, Direction: 1, Source: "key"})
	require.NoError(t, j.Close())
	require.NoError(t, j.Close())

	_, err = j.Record(context.Background(), Entry{From: 0, To: 1, Direction: 1, Source: "key"})
	require.ErrorIs(t, err, ErrClosed)

	j2, err := Open(path)
	require.NoError(t, err)
	defer j2.Close()
	entries, err := j2.Recent(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, path, j2.Path())
}
