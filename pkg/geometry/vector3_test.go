package geometry

import (
	"math"
	"testing"
)

func TestVector3Add(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Add(v2)

	expected := NewVector3(5, 7, 9)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Sub(t *testing.T) {
	v1 := NewVector3(5, 7, 9)
	v2 := NewVector3(1, 2, 3)
	result := v1.Sub(v2)

	expected := NewVector3(4, 5, 6)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Length(t *testing.T) {
	v := NewVector3(3, 4, 0)
	length := v.Length()

	expected := 5.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
}

func TestVector3Distance(t *testing.T) {
	v1 := NewVector3(0, 0, 0)
	v2 := NewVector3(3, 4, 0)
	distance := v1.Distance(v2)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestVector3Normalize(t *testing.T) {
	v := NewVector3(3, 4, 0)
	normalized := v.Normalize()

	expectedLength := 1.0
	actualLength := normalized.Length()

	if math.Abs(actualLength-expectedLength) > 1e-10 {
		t.Errorf("Normalize failed: expected length %v, got %v", expectedLength, actualLength)
	}
}

func TestVector3Cross(t *testing.T) {
	v1 := NewVector3(1, 0, 0)
	v2 := NewVector3(0, 1, 0)
	result := v1.Cross(v2)

	expected := NewVector3(0, 0, 1)
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Round(t *testing.T) {
	v := NewVector3(0.49, -0.5, 1.5)
	result := v.Round()

	expected := NewVector3(0, 0, 2)
	if result != expected {
		t.Errorf("Round failed: expected %v, got %v", expected, result)
	}
}

func TestVector3RoundNegative(t *testing.T) {
	v := NewVector3(-0.51, -1.5, -2.2)
	result := v.Round()

	expected := NewVector3(-1, -1, -2)
	if result != expected {
		t.Errorf("Round failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Component(t *testing.T) {
	v := NewVector3(1, 2, 3)
	if v.Component(AxisX) != 1 || v.Component(AxisY) != 2 || v.Component(AxisZ) != 3 {
		t.Errorf("Component failed for %v", v)
	}
}

func TestVector3Lerp(t *testing.T) {
	v1 := NewVector3(0, 0, 0)
	v2 := NewVector3(0, 2, 0)

	if got := v1.Lerp(v2, 0.5); got != NewVector3(0, 1, 0) {
		t.Errorf("Lerp failed: expected (0,1,0), got %v", got)
	}
	if got := v1.Lerp(v2, -1); got != NewVector3(0, -2, 0) {
		t.Errorf("Lerp failed: expected (0,-2,0), got %v", got)
	}
}

func TestVector3Dot(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Dot(v2)

	expected := 32.0 // 1*4 + 2*5 + 3*6 = 32
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, result)
	}
}

func TestVector3IsFinite(t *testing.T) {
	if !NewVector3(1, -2, 3).IsFinite() {
		t.Errorf("IsFinite failed: expected finite vector to be finite")
	}
	if NewVector3(math.NaN(), 0, 0).IsFinite() {
		t.Errorf("IsFinite failed: expected NaN component to be rejected")
	}
	if NewVector3(0, 0, math.Inf(-1)).IsFinite() {
		t.Errorf("IsFinite failed: expected infinite component to be rejected")
	}
}
