package store

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/philipparndt/gowall/pkg/geometry"
)

// Sink writes every created segment to a Store under one session.
// Writes are fire and forget: failures are logged and the first one is
// kept for Err.
type Sink struct {
	ctx     context.Context
	store   *Store
	session uuid.UUID
	logger  *slog.Logger
	seq     int64
	err     error
}

// NewSink creates a sink for a new session
func NewSink(ctx context.Context, s *Store, logger *slog.Logger) *Sink {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sink{
		ctx:     ctx,
		store:   s,
		session: uuid.Must(uuid.NewV7()),
		logger:  logger,
	}
}

// Session returns the session ID the segments are stored under
func (k *Sink) Session() uuid.UUID {
	return k.session
}

// CreateSegment persists the segment from a to b
func (k *Sink) CreateSegment(a, b geometry.Vector3) {
	k.seq++
	err := k.store.SaveSegment(k.ctx, SegmentRecord{
		Session: k.session,
		Seq:     k.seq,
		Start:   a,
		End:     b,
	})
	if err != nil {
		k.logger.Error("failed to persist segment",
			slog.String("session", k.session.String()),
			slog.Int64("seq", k.seq),
			slog.Any("error", err))
		if k.err == nil {
			k.err = err
		}
	}
}

// Err returns the first write failure, if any
func (k *Sink) Err() error {
	return k.err
}
