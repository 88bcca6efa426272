package dimension

// Guard tracks the objects measured in the current session.
//
// Guard is not safe for concurrent use; hosts that measure from several
// goroutines must serialize access.
type Guard struct {
	measured map[ObjectID]struct{}
}

// NewGuard creates an empty guard
func NewGuard() *Guard {
	return &Guard{measured: make(map[ObjectID]struct{})}
}

// ShouldProcess reports whether id has not been measured yet
func (g *Guard) ShouldProcess(id ObjectID) bool {
	_, done := g.measured[id]
	return !done
}

// MarkProcessed records id as measured
func (g *Guard) MarkProcessed(id ObjectID) {
	g.measured[id] = struct{}{}
}

// Reset forgets every measured object
func (g *Guard) Reset() {
	clear(g.measured)
}

// Len returns the number of measured objects
func (g *Guard) Len() int {
	return len(g.measured)
}
