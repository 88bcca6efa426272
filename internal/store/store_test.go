package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gowall/pkg/geometry"
)

func createTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, second.Close())
}

func TestSaveAndReadSegments(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	session := uuid.New()

	require.NoError(t, s.SaveSegment(ctx, SegmentRecord{
		Session: session,
		Seq:     2,
		Start:   geometry.NewVector3(4, 1.5, 0),
		End:     geometry.NewVector3(6, 1.5, 0),
	}))
	require.NoError(t, s.SaveSegment(ctx, SegmentRecord{
		Session: session,
		Seq:     1,
		Start:   geometry.NewVector3(0, 1.5, 0),
		End:     geometry.NewVector3(4, 1.5, 0),
	}))

	records, err := s.Segments(ctx, &session)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, int64(1), records[0].Seq)
	assert.InDelta(t, 4.0, records[0].Length, 1e-10)
	assert.Equal(t, geometry.NewVector3(6, 1.5, 0), records[1].End)
	assert.NotEqual(t, uuid.Nil, records[0].ID)
	assert.Equal(t, session, records[1].Session)
}

func TestSegmentsFilterBySession(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	a, b := uuid.New(), uuid.New()

	for _, session := range []uuid.UUID{a, b, b} {
		records, err := s.Segments(ctx, &session)
		require.NoError(t, err)
		require.NoError(t, s.SaveSegment(ctx, SegmentRecord{Session: session, Seq: int64(len(records) + 1)}))
	}

	onlyA, err := s.Segments(ctx, &a)
	require.NoError(t, err)
	assert.Len(t, onlyA, 1)

	all, err := s.Segments(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestDuplicateSequenceRejected(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	session := uuid.New()

	require.NoError(t, s.SaveSegment(ctx, SegmentRecord{Session: session, Seq: 1}))
	err := s.SaveSegment(ctx, SegmentRecord{Session: session, Seq: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write segment")
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	session := uuid.New()

	require.NoError(t, s.SaveSegment(ctx, SegmentRecord{Session: session, Seq: 1}))
	require.NoError(t, s.SaveSegment(ctx, SegmentRecord{Session: session, Seq: 2}))

	n, err := s.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	records, err := s.Segments(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSinkPersistsInOrder(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	sink := NewSink(ctx, s, nil)

	sink.CreateSegment(geometry.NewVector3(0, 1.5, 0), geometry.NewVector3(4, 1.5, 0))
	sink.CreateSegment(geometry.NewVector3(4, 1.5, 0), geometry.NewVector3(6, 1.5, 0))
	require.NoError(t, sink.Err())

	session := sink.Session()
	records, err := s.Segments(ctx, &session)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(1), records[0].Seq)
	assert.InDelta(t, 2.0, records[1].Length, 1e-10)
}

func TestSinkKeepsFirstError(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	sink := NewSink(ctx, s, nil)
	require.NoError(t, s.Close())

	sink.CreateSegment(geometry.Vector3{}, geometry.NewVector3(1, 0, 0))
	assert.Error(t, sink.Err())
}
