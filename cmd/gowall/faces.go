package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gowall/internal/dimension"
	"github.com/philipparndt/gowall/pkg/analysis"
	"github.com/philipparndt/gowall/pkg/face"
	"github.com/philipparndt/gowall/pkg/geometry"
	"github.com/philipparndt/gowall/pkg/stl"
)

type facesOptions struct {
	face int
}

func newFacesCommand(root *rootOptions) *cobra.Command {
	opts := &facesOptions{}

	cmd := &cobra.Command{
		Use:   "faces <file>",
		Short: "List the planar faces of a model",
		Long: `Without --face, list every planar face with its lowest triangle index, the
number of boundary edges and how many of them are vertical. With --face,
show the boundary edges of the face containing that triangle.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := loadModel(cmd.Context(), root, args[0])
			if err != nil {
				return wrapExitError(exitCommandError, "invalid model", err)
			}

			if !cmd.Flags().Changed("face") {
				faces := face.All(model, root.cfg.VertexTolerance)
				return writeFaceList(cmd.OutOrStdout(), root, args[0], model, faces)
			}

			f := face.Resolve(model, opts.face, root.cfg.VertexTolerance)
			if f == nil {
				return newExitError(exitCommandError, fmt.Sprintf("triangle %d does not belong to a face", opts.face))
			}
			return writeFaceDetail(cmd.OutOrStdout(), root, args[0], f)
		},
	}

	cmd.Flags().IntVarP(&opts.face, "face", "f", 0, "show the face containing this triangle")

	return cmd
}

type jsonFace struct {
	Face          int        `json:"face"`
	Triangles     []int      `json:"triangles"`
	Normal        [3]float64 `json:"normal"`
	Area          float64    `json:"area"`
	Edges         int        `json:"edges"`
	VerticalEdges int        `json:"vertical_edges"`
	Boundary      []jsonEdge `json:"boundary,omitempty"`
}

type jsonEdge struct {
	Start    [3]float64 `json:"start"`
	End      [3]float64 `json:"end"`
	Length   float64    `json:"length"`
	Vertical bool       `json:"vertical"`
}

func toJSONFace(f *face.Face, up geometry.Axis, withBoundary bool) jsonFace {
	out := jsonFace{
		Face:          f.Triangles[0],
		Triangles:     f.Triangles,
		Normal:        coords(f.Normal),
		Area:          f.Area,
		Edges:         len(f.Edges),
		VerticalEdges: len(dimension.ClassifyVertical(f, up)),
	}
	if withBoundary {
		for _, e := range f.Edges {
			out.Boundary = append(out.Boundary, jsonEdge{
				Start:    coords(e.Start),
				End:      coords(e.End),
				Length:   e.Length(),
				Vertical: dimension.IsVertical(e, up),
			})
		}
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeFaceList(w io.Writer, root *rootOptions, file string, model *stl.Model, faces []*face.Face) error {
	up := root.cfg.UpAxis
	if root.format == "json" {
		out := make([]jsonFace, 0, len(faces))
		for _, f := range faces {
			out = append(out, toJSONFace(f, up, false))
		}
		return writeJSON(w, out)
	}

	title := fmt.Sprintf("Faces of %s", file)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", len(title)))
	fmt.Fprintf(w, "Model size: %s\n\n", analysis.FormatVector(model.BoundingBox().Size()))
	fmt.Fprintf(w, "%-6s %-10s %-33s %-16s %-6s %s\n", "Face", "Triangles", "Normal", "Area", "Edges", "Vertical")
	for _, f := range faces {
		fmt.Fprintf(w, "%-6d %-10d %-33s %-16s %-6d %d\n",
			f.Triangles[0],
			len(f.Triangles),
			analysis.FormatVector(f.Normal),
			analysis.FormatArea(f.Area, root.cfg.Unit),
			len(f.Edges),
			len(dimension.ClassifyVertical(f, up)))
	}
	fmt.Fprintf(w, "\nTotal faces: %d\n", len(faces))
	return nil
}

func writeFaceDetail(w io.Writer, root *rootOptions, file string, f *face.Face) error {
	up := root.cfg.UpAxis
	if root.format == "json" {
		return writeJSON(w, toJSONFace(f, up, true))
	}

	triangles := make([]string, len(f.Triangles))
	for i, t := range f.Triangles {
		triangles[i] = fmt.Sprint(t)
	}

	fmt.Fprintf(w, "Face %d of %s\n", f.Triangles[0], file)
	fmt.Fprintf(w, "Triangles: %s\n", strings.Join(triangles, ", "))
	fmt.Fprintf(w, "Normal: %s\n", analysis.FormatVector(f.Normal))
	fmt.Fprintf(w, "Area: %s\n", analysis.FormatArea(f.Area, root.cfg.Unit))
	fmt.Fprintf(w, "Up axis: %s\n\n", up)

	edges := analysis.Describe(f.Edges)
	fmt.Fprintf(w, "%-4s %-33s %-33s %-16s %s\n", "#", "Start", "End", "Length", "Vertical")
	for _, e := range edges {
		vertical := "no"
		if dimension.IsVertical(f.Edges[e.Index], up) {
			vertical = "yes"
		}
		fmt.Fprintf(w, "%-4d %-33s %-33s %-16s %s\n",
			e.Index+1,
			analysis.FormatVector(e.Start),
			analysis.FormatVector(e.End),
			analysis.FormatMeasurement(e.Length, root.cfg.Unit),
			vertical)
	}

	stats := analysis.Stats(edges)
	fmt.Fprintf(w, "\nPerimeter: %s\n", analysis.FormatMeasurement(stats.Total, root.cfg.Unit))
	fmt.Fprintf(w, "Shortest edge: %s\n", analysis.FormatMeasurement(stats.Min, root.cfg.Unit))
	fmt.Fprintf(w, "Longest edge: %s\n", analysis.FormatMeasurement(stats.Max, root.cfg.Unit))
	return nil
}
