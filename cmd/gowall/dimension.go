package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gowall/internal/dimension"
	"github.com/philipparndt/gowall/internal/measurement"
	"github.com/philipparndt/gowall/internal/store"
	"github.com/philipparndt/gowall/pkg/face"
)

type dimensionOptions struct {
	face     int
	instance int
	db       string
	save     bool
}

func newDimensionCommand(root *rootOptions) *cobra.Command {
	opts := &dimensionOptions{}

	cmd := &cobra.Command{
		Use:   "dimension <file>",
		Short: "Dimension a wall face",
		Long: `Resolve the planar face containing the given triangle and create a chain of
length measurements between its vertical edges. Use "gowall faces" to find
triangle indexes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDimension(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.face, "face", "f", 0, "index of a triangle on the face")
	cmd.Flags().IntVar(&opts.instance, "instance", 0, "mesh instance id")
	cmd.Flags().StringVar(&opts.db, "db", "", "SQLite file to persist segments, overrides config")
	cmd.Flags().BoolVar(&opts.save, "save", false, "write the measurements next to the model as <file>.gowall.json")
	_ = cmd.MarkFlagRequired("face")

	return cmd
}

func runDimension(cmd *cobra.Command, root *rootOptions, opts *dimensionOptions, file string) error {
	ctx := cmd.Context()
	cfg := root.cfg

	model, err := loadModel(ctx, root, file)
	if err != nil {
		return wrapExitError(exitCommandError, "invalid model", err)
	}

	resolver := face.NewResolver(cfg.VertexTolerance)
	resolver.Add(model)

	recorder := measurement.NewRecorder()
	var sink dimension.Sink = recorder

	dbPath := cfg.DB
	if cmd.Flags().Changed("db") {
		dbPath = opts.db
	}
	var storeSink *store.Sink
	if dbPath != "" {
		st, err := store.Open(dbPath)
		if err != nil {
			return wrapExitError(exitCommandError, "failed to open segment store", err)
		}
		defer st.Close()
		storeSink = store.NewSink(ctx, st, root.logger)
		sink = measurement.NewMulti(recorder, storeSink)
	}

	m := dimension.NewMeasurer(resolver, sink, dimension.WithUpAxis(cfg.UpAxis))
	loc := dimension.FaceLocator{FaceIndex: opts.face, InstanceID: opts.instance}

	result, err := m.Measure(model.ID, loc)
	if err != nil {
		return wrapExitError(exitFailure, "failed to dimension face", err)
	}

	report := dimensionReport{
		File:     file,
		Face:     loc,
		Result:   result,
		Segments: recorder.Segments(),
		Unit:     cfg.Unit,
	}
	if storeSink != nil {
		if err := storeSink.Err(); err != nil {
			return wrapExitError(exitFailure, "failed to persist segments", err)
		}
		if len(report.Segments) > 0 {
			report.Session = storeSink.Session().String()
		}
	}

	if opts.save {
		path := measurement.SidecarPath(file)
		if err := measurement.Save(path, recorder.Lines()); err != nil {
			return wrapExitError(exitFailure, "failed to save measurements", err)
		}
		root.logger.Info("saved measurements", slog.String("path", path))
	}

	return writeReport(cmd.OutOrStdout(), root.format, report)
}
