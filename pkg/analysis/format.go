package analysis

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/philipparndt/gowall/pkg/geometry"
)

var printer = message.NewPrinter(language.English)

// FormatMeasurement formats a length with digit grouping and a unit label
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return printer.Sprintf("%.3f %s", value, unit)
}

// FormatArea formats a surface area with digit grouping and a squared unit
func FormatArea(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return printer.Sprintf("%.3f %s²", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
