// Package dimension derives a chain of length measurements along the
// vertical axis of a planar face.
//
// The pipeline classifies the face's vertical boundary edges, anchors on the
// midpoint of the longest one, projects that anchor onto every vertical edge
// and emits a segment between each pair of neighbouring projections.
package dimension

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/philipparndt/gowall/pkg/face"
	"github.com/philipparndt/gowall/pkg/geometry"
)

// ErrNoVerticalEdges is returned by SelectReference for an empty edge set
var ErrNoVerticalEdges = errors.New("no vertical edges")

// ObjectID identifies a loaded mesh instance
type ObjectID = uuid.UUID

// FaceLocator addresses a face on a mesh instance
type FaceLocator = face.Locator

// FaceQuery resolves the boundary of a face. A nil face with a nil error
// means nothing resolvable was hit.
type FaceQuery interface {
	Face(id ObjectID, loc FaceLocator) (*face.Face, error)
}

// Sink receives one length measurement per pair of neighbouring points.
// Calls are fire and forget.
type Sink interface {
	CreateSegment(a, b geometry.Vector3)
}

// LineStarter is implemented by sinks that group segments into lines.
// StartLine is called once before the segments of each Measure run.
type LineStarter interface {
	StartLine()
}

// Cleaner is implemented by sinks that can report that all of their
// measurements were cleared.
type Cleaner interface {
	OnCleared(fn func())
}

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the package logger. By default nothing is logged.
// Pass nil to restore the silent default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

func logger() *slog.Logger {
	return loggerPtr.Load()
}
