package dimension

import (
	"fmt"
	"log/slog"

	"github.com/philipparndt/gowall/pkg/geometry"
)

// Status is the outcome of one Measure call
type Status int

const (
	// StatusMeasured means the pipeline ran and the object is now marked
	StatusMeasured Status = iota
	// StatusAlreadyMeasured means the object was measured before the last reset
	StatusAlreadyMeasured
	// StatusNoFace means the locator did not resolve to a face with edges
	StatusNoFace
	// StatusNoVerticalEdges means the face has nothing to measure
	StatusNoVerticalEdges
)

func (s Status) String() string {
	switch s {
	case StatusMeasured:
		return "measured"
	case StatusAlreadyMeasured:
		return "already measured"
	case StatusNoFace:
		return "no face"
	case StatusNoVerticalEdges:
		return "no vertical edges"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result describes one Measure call. Reference and Points are only set
// when Status is StatusMeasured.
type Result struct {
	Status    Status
	Reference geometry.Vector3
	Points    []geometry.Vector3
	Segments  int
}

// Measurer drives the dimensioning pipeline for picked faces.
//
// Measurer is not safe for concurrent use.
type Measurer struct {
	query FaceQuery
	sink  Sink
	guard *Guard
	up    geometry.Axis
}

// Option configures a Measurer
type Option func(*Measurer)

// WithUpAxis sets the vertical axis (default Y)
func WithUpAxis(axis geometry.Axis) Option {
	return func(m *Measurer) {
		m.up = axis
	}
}

// NewMeasurer creates a Measurer. If sink implements Cleaner, clearing the
// sink resets the measured set.
func NewMeasurer(query FaceQuery, sink Sink, opts ...Option) *Measurer {
	m := &Measurer{
		query: query,
		sink:  sink,
		guard: NewGuard(),
		up:    geometry.AxisY,
	}
	for _, opt := range opts {
		opt(m)
	}
	if cleaner, ok := sink.(Cleaner); ok {
		cleaner.OnCleared(m.Reset)
	}
	return m
}

// Measure dimensions the face at loc on object id.
// Every outcome other than StatusMeasured leaves the object unmarked so a
// later call can retry. An error is returned only if the face query fails.
func (m *Measurer) Measure(id ObjectID, loc FaceLocator) (Result, error) {
	log := logger().With(slog.String("object", id.String()), slog.Int("face", loc.FaceIndex))

	if !m.guard.ShouldProcess(id) {
		log.Debug("already measured")
		return Result{Status: StatusAlreadyMeasured}, nil
	}

	f, err := m.query.Face(id, loc)
	if err != nil {
		return Result{}, fmt.Errorf("failed to query face: %w", err)
	}
	if f.Empty() {
		log.Debug("face unresolved")
		return Result{Status: StatusNoFace}, nil
	}

	verticals := ClassifyVertical(f, m.up)
	if len(verticals) == 0 {
		log.Debug("no vertical edges",
			slog.Int("edges", len(f.Edges)))
		return Result{Status: StatusNoVerticalEdges}, nil
	}

	reference, err := SelectReference(verticals)
	if err != nil {
		return Result{}, err
	}
	points := ProjectAndSort(reference, verticals)
	if starter, ok := m.sink.(LineStarter); ok && len(points) > 1 {
		starter.StartLine()
	}
	segments := EmitSegments(points, m.sink)
	m.guard.MarkProcessed(id)

	log.Info("face dimensioned",
		slog.Int("vertical_edges", len(verticals)),
		slog.Int("segments", segments))

	return Result{
		Status:    StatusMeasured,
		Reference: reference,
		Points:    points,
		Segments:  segments,
	}, nil
}

// Measured reports whether id is in the measured set
func (m *Measurer) Measured(id ObjectID) bool {
	return !m.guard.ShouldProcess(id)
}

// Reset clears the measured set
func (m *Measurer) Reset() {
	logger().Debug("measured set cleared", slog.Int("objects", m.guard.Len()))
	m.guard.Reset()
}
