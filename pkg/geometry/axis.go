package geometry

import (
	"fmt"
	"strings"
)

// Axis identifies a coordinate axis: 0=X, 1=Y, 2=Z
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// ParseAxis parses "x", "y" or "z" (case-insensitive)
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("invalid axis %q (must be x, y or z)", s)
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Valid reports whether a is one of AxisX, AxisY or AxisZ
func (a Axis) Valid() bool {
	return a >= AxisX && a <= AxisZ
}

// Orthogonal returns the two axes perpendicular to a, in X, Y, Z order.
// With a as the up axis these span the horizontal plane.
func (a Axis) Orthogonal() [2]Axis {
	switch a {
	case AxisX:
		return [2]Axis{AxisY, AxisZ}
	case AxisY:
		return [2]Axis{AxisX, AxisZ}
	default:
		return [2]Axis{AxisX, AxisY}
	}
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *Axis) UnmarshalText(text []byte) error {
	parsed, err := ParseAxis(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (a Axis) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("invalid axis %d", int(a))
	}
	return []byte(a.String()), nil
}
