package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/gowall/pkg/geometry"
)

func TestFormatMeasurement(t *testing.T) {
	tests := []struct {
		value    float64
		unit     string
		expected string
	}{
		{4, "mm", "4.000 mm"},
		{1234.5, "mm", "1,234.500 mm"},
		{2, "", "2.000 units"},
	}

	for _, tt := range tests {
		if got := FormatMeasurement(tt.value, tt.unit); got != tt.expected {
			t.Errorf("FormatMeasurement(%v, %q) failed: expected %q, got %q", tt.value, tt.unit, tt.expected, got)
		}
	}
}

func TestFormatArea(t *testing.T) {
	if got := FormatArea(14, "mm"); got != "14.000 mm²" {
		t.Errorf("FormatArea failed: expected %q, got %q", "14.000 mm²", got)
	}
	if got := FormatArea(12345.5, ""); got != "12,345.500 units²" {
		t.Errorf("FormatArea failed: expected %q, got %q", "12,345.500 units²", got)
	}
}

func TestFormatVector(t *testing.T) {
	got := FormatVector(geometry.NewVector3(0, 1.5, -2))
	expected := "(0.000000, 1.500000, -2.000000)"
	if got != expected {
		t.Errorf("FormatVector failed: expected %q, got %q", expected, got)
	}
}

func TestDescribeAndStats(t *testing.T) {
	edges := Describe([]geometry.Line3{
		geometry.NewLine3(geometry.NewVector3(0, 0, 0), geometry.NewVector3(0, 3, 0)),
		geometry.NewLine3(geometry.NewVector3(0, 0, 0), geometry.NewVector3(4, 0, 0)),
		geometry.NewLine3(geometry.NewVector3(0, 0, 0), geometry.NewVector3(3, 4, 0)),
	})

	if edges[2].Index != 2 || math.Abs(edges[2].Length-5) > 1e-10 {
		t.Errorf("Describe failed: got %+v", edges[2])
	}

	stats := Stats(edges)
	if stats.Count != 3 || stats.Min != 3 || stats.Max != 5 || math.Abs(stats.Total-12) > 1e-10 {
		t.Errorf("Stats failed: got %+v", stats)
	}

	if empty := Stats(nil); empty != (LengthStats{}) {
		t.Errorf("Stats of nothing failed: got %+v", empty)
	}
}
