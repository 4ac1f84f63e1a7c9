package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestStoredHashRoundTrip(t *testing.T) {
	db := openTestDB(t)

	hash, err := db.GetStoredHash("a.margin")
	require.NoError(t, err)
	assert.Empty(t, hash)

	require.NoError(t, db.UpsertRender(RenderRecord{Source: "a.margin", Output: "a", Hash: "h1", Lines: 3, TrimmedLines: 2}))
	hash, err = db.GetStoredHash("a.margin")
	require.NoError(t, err)
	assert.Equal(t, "h1", hash)

	require.NoError(t, db.UpsertRender(RenderRecord{Source: "a.margin", Output: "a", Hash: "h2", Lines: 4, TrimmedLines: 4}))
	hash, err = db.GetStoredHash("a.margin")
	require.NoError(t, err)
	assert.Equal(t, "h2", hash)

	records, err := db.ListRenders(0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 4, records[0].Lines)
	assert.Equal(t, 4, records[0].TrimmedLines)
}

func TestListRendersNewestFirst(t *testing.T) {
	db := openTestDB(t)
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, db.UpsertRender(RenderRecord{Source: "old.margin", Output: "old", Hash: "x", RenderedAt: base}))
	require.NoError(t, db.UpsertRender(RenderRecord{Source: "new.margin", Output: "new", Hash: "y", RenderedAt: base.Add(time.Hour)}))
	require.NoError(t, db.UpsertRender(RenderRecord{Source: "mid.margin", Output: "mid", Hash: "z", RenderedAt: base.Add(time.Minute)}))

	records, err := db.ListRenders(2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "new.margin", records[0].Source)
	assert.Equal(t, "mid.margin", records[1].Source)
	assert.True(t, records[0].RenderedAt.Equal(base.Add(time.Hour)))
}

func TestForgetAndReset(t *testing.T) {
	db := openTestDB(t)
	for _, src := range []string{"a.margin", "b.margin", "c.margin"} {
		require.NoError(t, db.UpsertRender(RenderRecord{Source: src, Output: src[:1], Hash: "h"}))
	}

	removed, err := db.Forget([]string{"a.margin", "missing.margin"})
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	records, err := db.ListRenders(0)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	require.NoError(t, db.Reset())
	records, err = db.ListRenders(0)
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = db.Size()
	require.NoError(t, err)
	assert.Equal(t, "cache.db", filepath.Base(db.Path()))
}
