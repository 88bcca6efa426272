package geometry

// Line3 is a line segment from Start to End.
// Projection helpers treat it as the infinite line through both points.
type Line3 struct {
	Start Vector3
	End   Vector3
}

// NewLine3 creates a new line segment
func NewLine3(start, end Vector3) Line3 {
	return Line3{Start: start, End: end}
}

// Delta returns the direction End - Start
func (l Line3) Delta() Vector3 {
	return l.End.Sub(l.Start)
}

// Length returns the distance between Start and End
func (l Line3) Length() float64 {
	return l.Start.Distance(l.End)
}

// Center returns the midpoint of the segment
func (l Line3) Center() Vector3 {
	return l.Start.Add(l.End).Mul(0.5)
}

// ClosestPointParameter returns t such that At(t) is the point on the
// infinite line closest to p. The result is not clamped to [0, 1].
// A zero-length line returns 0.
func (l Line3) ClosestPointParameter(p Vector3) float64 {
	d := l.Delta()
	denom := d.Dot(d)
	if denom == 0 {
		return 0
	}
	return p.Sub(l.Start).Dot(d) / denom
}

// At returns Start + t*(End-Start)
func (l Line3) At(t float64) Vector3 {
	return l.Start.Lerp(l.End, t)
}

// ClosestPoint returns the point on the infinite line closest to p
func (l Line3) ClosestPoint(p Vector3) Vector3 {
	return l.At(l.ClosestPointParameter(p))
}
