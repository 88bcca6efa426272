package measurement

import "github.com/philipparndt/gowall/pkg/geometry"

// segmentCreator matches dimension.Sink without importing it
type segmentCreator interface {
	CreateSegment(a, b geometry.Vector3)
}

type clearNotifier interface {
	OnCleared(fn func())
}

type lineStarter interface {
	StartLine()
}

// Multi forwards every segment to each of its sinks in order
type Multi []segmentCreator

// NewMulti combines sinks; nil entries are skipped
func NewMulti(sinks ...segmentCreator) Multi {
	m := make(Multi, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			m = append(m, s)
		}
	}
	return m
}

// CreateSegment forwards to every sink
func (m Multi) CreateSegment(a, b geometry.Vector3) {
	for _, s := range m {
		s.CreateSegment(a, b)
	}
}

// OnCleared subscribes fn to every sink that reports clears
func (m Multi) OnCleared(fn func()) {
	for _, s := range m {
		if n, ok := s.(clearNotifier); ok {
			n.OnCleared(fn)
		}
	}
}

// StartLine forwards to every sink that groups segments into lines
func (m Multi) StartLine() {
	for _, s := range m {
		if l, ok := s.(lineStarter); ok {
			l.StartLine()
		}
	}
}
