package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gowall/internal/config"
	"github.com/philipparndt/gowall/internal/dimension"
	"github.com/philipparndt/gowall/internal/measurement"
	"github.com/philipparndt/gowall/pkg/face"
)

const steppedWall = "testdata/stepped_wall.stl"

// execute runs the root command with args and returns stdout and stderr
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDimensionText(t *testing.T) {
	out, _, err := execute(t, "dimension", steppedWall, "--face", "2")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "dimension_text", []byte(out))
}

func TestDimensionJSON(t *testing.T) {
	out, _, err := execute(t, "dimension", steppedWall, "--face", "0", "--format", "json", "--unit", "mm")
	require.NoError(t, err)

	var report jsonReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	assert.Equal(t, "measured", report.Status)
	assert.Equal(t, "mm", report.Unit)
	require.NotNil(t, report.Reference)
	assert.Equal(t, [3]float64{0, 1.5, 0}, *report.Reference)
	require.Len(t, report.Segments, 2)
	assert.Equal(t, [3]float64{0, 1.5, 0}, report.Segments[0].Start)
	assert.Equal(t, [3]float64{4, 1.5, 0}, report.Segments[0].End)
	assert.Equal(t, [3]float64{6, 1.5, 0}, report.Segments[1].End)
	assert.InDelta(t, 6.0, report.Total, 1e-9)
	assert.Empty(t, report.Session)
}

func TestDimensionHorizontalFace(t *testing.T) {
	out, _, err := execute(t, "dimension", steppedWall, "--face", "4")
	require.NoError(t, err)

	assert.Contains(t, out, "Status: no vertical edges")
	assert.Contains(t, out, "No dimensions created.")
}

func TestDimensionUpAxisZ(t *testing.T) {
	// with Z up the wall lies flat and only the top face has vertical edges
	out, _, err := execute(t, "dimension", steppedWall, "--face", "0", "--up", "z")
	require.NoError(t, err)
	assert.Contains(t, out, "Status: no vertical edges")

	out, _, err = execute(t, "dimension", steppedWall, "--face", "4", "--up", "z", "--format", "json")
	require.NoError(t, err)

	var report jsonReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "measured", report.Status)
	require.Len(t, report.Segments, 1)
	assert.InDelta(t, 6.0, report.Segments[0].Length, 1e-9)
}

func TestDimensionUnknownTriangle(t *testing.T) {
	out, _, err := execute(t, "dimension", steppedWall, "--face", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "Status: no face")
}

func TestDimensionPersistsSegments(t *testing.T) {
	db := filepath.Join(t.TempDir(), "segments.db")

	out, _, err := execute(t, "dimension", steppedWall, "--face", "1", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Saved as session ")

	out, _, err = execute(t, "segments", "--db", db, "--format", "json")
	require.NoError(t, err)

	var records []jsonStoredSegment
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 2)
	assert.Equal(t, int64(1), records[0].Seq)
	assert.Equal(t, int64(2), records[1].Seq)
	assert.Equal(t, records[0].Session, records[1].Session)
	assert.InDelta(t, 4.0, records[0].Length, 1e-9)
	assert.InDelta(t, 2.0, records[1].Length, 1e-9)

	out, _, err = execute(t, "segments", "--db", db, "--session", records[0].Session)
	require.NoError(t, err)
	assert.Contains(t, out, records[0].Session)

	out, _, err = execute(t, "segments", "--db", db, "--clear")
	require.NoError(t, err)
	assert.Equal(t, "Deleted 2 segment(s)\n", out)

	out, _, err = execute(t, "segments", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "No segments stored.\n", out)
}

func TestDimensionSave(t *testing.T) {
	dir := t.TempDir()
	model := filepath.Join(dir, "wall.stl")
	data, err := os.ReadFile(steppedWall)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(model, data, 0o644))

	_, _, err = execute(t, "dimension", model, "--face", "3", "--save")
	require.NoError(t, err)

	lines, err := measurement.Load(measurement.SidecarPath(model))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Len(t, lines[0].Segments, 2)
	assert.InDelta(t, 6.0, lines[0].Length(), 1e-9)
}

func TestSegmentsRequiresDatabase(t *testing.T) {
	_, _, err := execute(t, "segments")
	require.Error(t, err)
	assert.Equal(t, exitCommandError, exitCode(err))
}

func TestSegmentsInvalidSession(t *testing.T) {
	db := filepath.Join(t.TempDir(), "segments.db")
	_, _, err := execute(t, "segments", "--db", db, "--session", "not-a-uuid")
	require.Error(t, err)
	assert.Equal(t, exitCommandError, exitCode(err))
}

func TestFacesList(t *testing.T) {
	out, _, err := execute(t, "faces", steppedWall)
	require.NoError(t, err)

	assert.Contains(t, out, "Faces of testdata/stepped_wall.stl")
	assert.Contains(t, out, "Model size: (6.000000, 3.000000, 1.000000)")
	assert.Contains(t, out, "14.000 units²")
	assert.Contains(t, out, "Total faces: 2")
}

func TestFacesListJSON(t *testing.T) {
	out, _, err := execute(t, "faces", steppedWall, "--format", "json")
	require.NoError(t, err)

	var faces []jsonFace
	require.NoError(t, json.Unmarshal([]byte(out), &faces))
	require.Len(t, faces, 2)

	assert.Equal(t, 0, faces[0].Face)
	assert.Equal(t, []int{0, 1, 2, 3}, faces[0].Triangles)
	assert.InDelta(t, 14.0, faces[0].Area, 1e-9)
	assert.Equal(t, 6, faces[0].Edges)
	assert.Equal(t, 3, faces[0].VerticalEdges)

	assert.Equal(t, 4, faces[1].Face)
	assert.Equal(t, 4, faces[1].Edges)
	assert.Equal(t, 0, faces[1].VerticalEdges)
}

func TestFaceDetail(t *testing.T) {
	out, _, err := execute(t, "faces", steppedWall, "--face", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "Face 0 of testdata/stepped_wall.stl")
	assert.Contains(t, out, "Triangles: 0, 1, 2, 3")
	assert.Contains(t, out, "Area: 14.000 units²")
	assert.Contains(t, out, "Up axis: y")
	assert.Contains(t, out, "Perimeter: 18.000 units")
	assert.Contains(t, out, "Shortest edge: 1.000 units")
	assert.Contains(t, out, "Longest edge: 6.000 units")
}

func TestFaceDetailUnknownTriangle(t *testing.T) {
	_, _, err := execute(t, "faces", steppedWall, "--face", "9")
	require.Error(t, err)
	assert.Equal(t, exitCommandError, exitCode(err))
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := execute(t, "dimension", steppedWall, "--face", "0", "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, exitCommandError, exitCode(err))
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestInvalidUpAxis(t *testing.T) {
	_, _, err := execute(t, "dimension", steppedWall, "--face", "0", "--up", "w")
	require.Error(t, err)
	assert.Equal(t, exitCommandError, exitCode(err))
}

func TestMissingFaceFlag(t *testing.T) {
	_, _, err := execute(t, "dimension", steppedWall)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "face" not set`)
}

func TestToleranceTooLargeForModel(t *testing.T) {
	// the stepped wall diagonal is about 6.8, so 0.5 would weld distinct vertices
	for _, command := range []string{"dimension", "faces"} {
		_, _, err := execute(t, command, steppedWall, "--face", "0", "--tolerance", "0.5")
		require.Error(t, err, command)
		assert.Equal(t, exitCommandError, exitCode(err), command)
		assert.ErrorIs(t, err, face.ErrToleranceTooLarge, command)
	}
}

func TestMissingModel(t *testing.T) {
	_, _, err := execute(t, "dimension", "testdata/missing.stl", "--face", "0")
	require.Error(t, err)
	assert.Equal(t, exitCommandError, exitCode(err))
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gowall.yaml")
	require.NoError(t, os.WriteFile(path, []byte("up_axis: y\nunit: cm\n"), 0o644))

	out, _, err := execute(t, "dimension", steppedWall, "--face", "0", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Total: 6.000 cm")
}

func TestVerboseLogsToStderr(t *testing.T) {
	t.Cleanup(func() { dimension.SetLogger(nil) })

	_, stderr, err := execute(t, "dimension", steppedWall, "--face", "0", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "face dimensioned")
}

func TestCompletion(t *testing.T) {
	out, _, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "bash completion")

	_, _, err = execute(t, "completion", "tcsh")
	require.Error(t, err)
}

func TestWatchSessionReload(t *testing.T) {
	root := &rootOptions{cfg: config.Default(), format: "text"}
	s := newSession(root, steppedWall, dimension.FaceLocator{FaceIndex: 0})

	first, err := s.reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dimension.StatusMeasured, first.Result.Status)
	assert.Len(t, first.Segments, 2)
	firstID := s.current.ID

	second, err := s.reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dimension.StatusMeasured, second.Result.Status)
	assert.NotEqual(t, firstID, s.current.ID)

	// the recorder only holds the segments of the latest load
	assert.Len(t, second.Segments, 2)
	assert.Len(t, s.recorder.Lines(), 1)
}

func TestWatchSessionReloadFailure(t *testing.T) {
	root := &rootOptions{cfg: config.Default(), format: "text"}
	s := newSession(root, "testdata/missing.stl", dimension.FaceLocator{})

	_, err := s.reload(context.Background())
	require.Error(t, err)
}
