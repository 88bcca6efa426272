package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gowall/internal/config"
	"github.com/philipparndt/gowall/internal/dimension"
	"github.com/philipparndt/gowall/pkg/geometry"
	"github.com/philipparndt/gowall/version"
)

var validFormats = []string{"text", "json"}

// rootOptions holds global flags and the settings derived from them
type rootOptions struct {
	configPath string
	verbose    bool
	format     string
	upAxis     string
	unit       string
	tolerance  float64

	cfg    config.Config
	logger *slog.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "gowall",
		Short: "Automatic wall dimensioning for STL models",
		Long: `gowall derives chained length measurements along the vertical axis of a
planar wall face. Pick a face by triangle index and gowall measures the
distances between its vertical edges, starting from the longest one.`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	flags.StringVar(&opts.format, "format", "text", "output format (json|text)")
	flags.StringVar(&opts.upAxis, "up", "", "vertical axis (x|y|z), overrides config")
	flags.StringVar(&opts.unit, "unit", "", "unit label for lengths, overrides config")
	flags.Float64Var(&opts.tolerance, "tolerance", 0, "vertex tolerance for face resolution, overrides config")

	cmd.AddCommand(newDimensionCommand(opts))
	cmd.AddCommand(newFacesCommand(opts))
	cmd.AddCommand(newWatchCommand(opts))
	cmd.AddCommand(newSegmentsCommand(opts))
	cmd.AddCommand(newCompletionCommand())

	return cmd
}

// setup loads the config, applies flag overrides and installs the logger
func (o *rootOptions) setup(cmd *cobra.Command) error {
	if !slices.Contains(validFormats, o.format) {
		return newExitError(exitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.format, validFormats))
	}

	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return wrapExitError(exitCommandError, "failed to load config", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("up") {
		axis, err := geometry.ParseAxis(o.upAxis)
		if err != nil {
			return wrapExitError(exitCommandError, "invalid --up", err)
		}
		cfg.UpAxis = axis
	}
	if flags.Changed("unit") {
		cfg.Unit = o.unit
	}
	if flags.Changed("tolerance") {
		cfg.VertexTolerance = o.tolerance
	}
	if err := cfg.Validate(); err != nil {
		return wrapExitError(exitCommandError, "invalid settings", err)
	}
	o.cfg = cfg

	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	dimension.SetLogger(o.logger)

	return nil
}
