package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/philipparndt/gowall/internal/dimension"
	"github.com/philipparndt/gowall/internal/measurement"
	"github.com/philipparndt/gowall/pkg/analysis"
	"github.com/philipparndt/gowall/pkg/geometry"
)

// dimensionReport is the outcome of dimensioning one face
type dimensionReport struct {
	File     string
	Face     dimension.FaceLocator
	Result   dimension.Result
	Segments []measurement.Segment
	Unit     string
	Session  string
}

type jsonSegment struct {
	Start  [3]float64 `json:"start"`
	End    [3]float64 `json:"end"`
	Length float64    `json:"length"`
}

type jsonReport struct {
	File      string        `json:"file"`
	Face      int           `json:"face"`
	Instance  int           `json:"instance"`
	Status    string        `json:"status"`
	Reference *[3]float64   `json:"reference,omitempty"`
	Segments  []jsonSegment `json:"segments"`
	Total     float64       `json:"total"`
	Unit      string        `json:"unit"`
	Session   string        `json:"session,omitempty"`
}

func coords(v geometry.Vector3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func totalLength(segments []measurement.Segment) float64 {
	return measurement.Line{Segments: segments}.Length()
}

func writeReport(w io.Writer, format string, r dimensionReport) error {
	if format == "json" {
		return writeReportJSON(w, r)
	}
	writeReportText(w, r)
	return nil
}

func writeReportJSON(w io.Writer, r dimensionReport) error {
	out := jsonReport{
		File:     r.File,
		Face:     r.Face.FaceIndex,
		Instance: r.Face.InstanceID,
		Status:   r.Result.Status.String(),
		Segments: make([]jsonSegment, 0, len(r.Segments)),
		Total:    totalLength(r.Segments),
		Unit:     r.Unit,
		Session:  r.Session,
	}
	if r.Result.Status == dimension.StatusMeasured {
		ref := coords(r.Result.Reference)
		out.Reference = &ref
	}
	for _, s := range r.Segments {
		out.Segments = append(out.Segments, jsonSegment{
			Start:  coords(s.Start),
			End:    coords(s.End),
			Length: s.Length(),
		})
	}

	return writeJSON(w, out)
}

func writeReportText(w io.Writer, r dimensionReport) {
	fmt.Fprintln(w, "Wall Dimensions")
	fmt.Fprintln(w, "===============")
	fmt.Fprintf(w, "File: %s\n", r.File)
	fmt.Fprintf(w, "Face: %d\n", r.Face.FaceIndex)
	fmt.Fprintf(w, "Status: %s\n", r.Result.Status)

	if r.Result.Status != dimension.StatusMeasured {
		fmt.Fprintln(w, "No dimensions created.")
		return
	}

	fmt.Fprintf(w, "Reference: %s\n\n", analysis.FormatVector(r.Result.Reference))

	if len(r.Segments) == 0 {
		fmt.Fprintln(w, "Only one vertical edge, nothing to chain.")
		return
	}

	fmt.Fprintf(w, "%-4s %-33s %-33s %s\n", "#", "Start", "End", "Length")
	fmt.Fprintln(w, strings.Repeat("-", 84))
	for i, s := range r.Segments {
		fmt.Fprintf(w, "%-4d %-33s %-33s %s\n",
			i+1,
			analysis.FormatVector(s.Start),
			analysis.FormatVector(s.End),
			analysis.FormatMeasurement(s.Length(), r.Unit))
	}
	fmt.Fprintf(w, "\nTotal: %s\n", analysis.FormatMeasurement(totalLength(r.Segments), r.Unit))
	if r.Session != "" {
		fmt.Fprintf(w, "Saved as session %s\n", r.Session)
	}
}
