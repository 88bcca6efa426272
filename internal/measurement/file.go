package measurement

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/philipparndt/gowall/pkg/geometry"
)

// FileVersion is written into every measurement file
const FileVersion = "1.0"

// File is the JSON layout of saved measurements
type File struct {
	Version string     `json:"version"`
	Lines   []lineData `json:"measurementLines"`
}

type lineData struct {
	Segments []segmentData `json:"segments"`
}

type segmentData struct {
	Start vectorData `json:"start"`
	End   vectorData `json:"end"`
}

type vectorData struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func toVectorData(v geometry.Vector3) vectorData {
	return vectorData{X: v.X, Y: v.Y, Z: v.Z}
}

func (v vectorData) vector() geometry.Vector3 {
	return geometry.NewVector3(v.X, v.Y, v.Z)
}

// SidecarPath returns the measurement file stored next to a model
func SidecarPath(modelPath string) string {
	return modelPath + ".gowall.json"
}

// Save writes lines to path. Saving no lines removes an existing file.
func Save(path string, lines []Line) error {
	if len(lines) == 0 {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to remove measurements file: %w", err)
		}
		return nil
	}

	data := File{
		Version: FileVersion,
		Lines:   make([]lineData, 0, len(lines)),
	}
	for _, line := range lines {
		ld := lineData{Segments: make([]segmentData, 0, len(line.Segments))}
		for _, seg := range line.Segments {
			ld.Segments = append(ld.Segments, segmentData{
				Start: toVectorData(seg.Start),
				End:   toVectorData(seg.End),
			})
		}
		data.Lines = append(data.Lines, ld)
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal measurements: %w", err)
	}
	if err := os.WriteFile(path, jsonData, 0o644); err != nil {
		return fmt.Errorf("failed to write measurements file: %w", err)
	}
	return nil
}

// Load reads lines saved by Save. A missing file yields no lines.
func Load(path string) ([]Line, error) {
	jsonData, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read measurements file: %w", err)
	}

	var data File
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to parse measurements file: %w", err)
	}
	if data.Version != FileVersion {
		return nil, fmt.Errorf("unsupported measurements file version %q", data.Version)
	}

	lines := make([]Line, 0, len(data.Lines))
	for _, ld := range data.Lines {
		line := Line{Segments: make([]Segment, 0, len(ld.Segments))}
		for _, sd := range ld.Segments {
			line.Segments = append(line.Segments, Segment{Start: sd.Start.vector(), End: sd.End.vector()})
		}
		lines = append(lines, line)
	}
	return lines, nil
}
