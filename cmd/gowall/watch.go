package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gowall/internal/dimension"
	"github.com/philipparndt/gowall/internal/loader"
	"github.com/philipparndt/gowall/internal/measurement"
	"github.com/philipparndt/gowall/pkg/face"
	"github.com/philipparndt/gowall/pkg/stl"
	"github.com/philipparndt/gowall/pkg/watcher"
)

type watchOptions struct {
	face     int
	instance int
}

func newWatchCommand(root *rootOptions) *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-dimension a face whenever the model changes",
		Long: `Dimension a face, then watch the model (and the use/include dependencies of
OpenSCAD sources). On every change the model is reloaded, previous
measurements are cleared and the face is dimensioned again.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runWatch(ctx, cmd, root, opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.face, "face", "f", 0, "index of a triangle on the face")
	cmd.Flags().IntVar(&opts.instance, "instance", 0, "mesh instance id")
	_ = cmd.MarkFlagRequired("face")

	return cmd
}

// session owns the measurer; all calls happen on the watch goroutine
type session struct {
	file     string
	loc      dimension.FaceLocator
	root     *rootOptions
	resolver *face.Resolver
	recorder *measurement.Recorder
	measurer *dimension.Measurer
	current  *stl.Model
}

func newSession(root *rootOptions, file string, loc dimension.FaceLocator) *session {
	resolver := face.NewResolver(root.cfg.VertexTolerance)
	recorder := measurement.NewRecorder()
	return &session{
		file:     file,
		loc:      loc,
		root:     root,
		resolver: resolver,
		recorder: recorder,
		measurer: dimension.NewMeasurer(resolver, recorder, dimension.WithUpAxis(root.cfg.UpAxis)),
	}
}

// reload swaps in a freshly loaded model, clears the previous
// measurements and dimensions the face again
func (s *session) reload(ctx context.Context) (dimensionReport, error) {
	model, err := loadModel(ctx, s.root, s.file)
	if err != nil {
		return dimensionReport{}, err
	}

	if s.current != nil {
		s.resolver.Remove(s.current.ID)
	}
	s.resolver.Add(model)
	s.current = model
	s.recorder.Clear()

	result, err := s.measurer.Measure(model.ID, s.loc)
	if err != nil {
		return dimensionReport{}, err
	}
	return dimensionReport{
		File:     s.file,
		Face:     s.loc,
		Result:   result,
		Segments: s.recorder.Segments(),
		Unit:     s.root.cfg.Unit,
	}, nil
}

func runWatch(ctx context.Context, cmd *cobra.Command, root *rootOptions, opts *watchOptions, file string) error {
	out := cmd.OutOrStdout()
	s := newSession(root, file, dimension.FaceLocator{FaceIndex: opts.face, InstanceID: opts.instance})

	report, err := s.reload(ctx)
	if err != nil {
		return wrapExitError(exitCommandError, "failed to dimension face", err)
	}
	if err := writeReport(out, root.format, report); err != nil {
		return err
	}

	files, err := loader.WatchList(file)
	if err != nil {
		return wrapExitError(exitCommandError, "failed to collect watched files", err)
	}

	fw, err := watcher.NewFileWatcher(root.cfg.Debounce, root.logger)
	if err != nil {
		return wrapExitError(exitFailure, "failed to start watcher", err)
	}
	defer fw.Close()

	changes := make(chan string, 1)
	err = fw.Watch(files, func(path string) {
		select {
		case changes <- path:
		default:
		}
	})
	if err != nil {
		return wrapExitError(exitCommandError, "failed to watch files", err)
	}
	go fw.Run(ctx)

	if root.format == "text" {
		fmt.Fprintf(out, "\nWatching %d file(s) for changes, press Ctrl+C to stop\n", len(files))
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case path := <-changes:
			root.logger.Info("file changed", slog.String("path", path))
			report, err := s.reload(ctx)
			if err != nil {
				root.logger.Error("reload failed", slog.Any("error", err))
				continue
			}
			if root.format == "text" {
				fmt.Fprintln(out)
			}
			if err := writeReport(out, root.format, report); err != nil {
				return err
			}
		}
	}
}
