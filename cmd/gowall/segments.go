package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/philipparndt/gowall/internal/store"
	"github.com/philipparndt/gowall/pkg/analysis"
)

type segmentsOptions struct {
	db      string
	session string
	clear   bool
}

func newSegmentsCommand(root *rootOptions) *cobra.Command {
	opts := &segmentsOptions{}

	cmd := &cobra.Command{
		Use:   "segments",
		Short: "List or clear persisted segments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSegments(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.db, "db", "", "SQLite file with persisted segments, overrides config")
	cmd.Flags().StringVar(&opts.session, "session", "", "only list segments of this session")
	cmd.Flags().BoolVar(&opts.clear, "clear", false, "delete all persisted segments")

	return cmd
}

type jsonStoredSegment struct {
	ID      string     `json:"id"`
	Session string     `json:"session"`
	Seq     int64      `json:"seq"`
	Start   [3]float64 `json:"start"`
	End     [3]float64 `json:"end"`
	Length  float64    `json:"length"`
}

func runSegments(cmd *cobra.Command, root *rootOptions, opts *segmentsOptions) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	dbPath := root.cfg.DB
	if cmd.Flags().Changed("db") {
		dbPath = opts.db
	}
	if dbPath == "" {
		return newExitError(exitCommandError, "no database: pass --db or set db in the config")
	}

	var session *uuid.UUID
	if opts.session != "" {
		id, err := uuid.Parse(opts.session)
		if err != nil {
			return wrapExitError(exitCommandError, "invalid --session", err)
		}
		session = &id
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return wrapExitError(exitCommandError, "failed to open segment store", err)
	}
	defer st.Close()

	if opts.clear {
		n, err := st.Clear(ctx)
		if err != nil {
			return wrapExitError(exitFailure, "failed to clear segments", err)
		}
		fmt.Fprintf(out, "Deleted %d segment(s)\n", n)
		return nil
	}

	records, err := st.Segments(ctx, session)
	if err != nil {
		return wrapExitError(exitFailure, "failed to read segments", err)
	}

	if root.format == "json" {
		list := make([]jsonStoredSegment, 0, len(records))
		for _, r := range records {
			list = append(list, jsonStoredSegment{
				ID:      r.ID.String(),
				Session: r.Session.String(),
				Seq:     r.Seq,
				Start:   coords(r.Start),
				End:     coords(r.End),
				Length:  r.Length,
			})
		}
		return writeJSON(out, list)
	}

	if len(records) == 0 {
		fmt.Fprintln(out, "No segments stored.")
		return nil
	}

	fmt.Fprintf(out, "%-36s %-4s %-33s %-33s %s\n", "Session", "Seq", "Start", "End", "Length")
	fmt.Fprintln(out, strings.Repeat("-", 125))
	for _, r := range records {
		fmt.Fprintf(out, "%-36s %-4d %-33s %-33s %s\n",
			r.Session,
			r.Seq,
			analysis.FormatVector(r.Start),
			analysis.FormatVector(r.End),
			analysis.FormatMeasurement(r.Length, root.cfg.Unit))
	}
	return nil
}
