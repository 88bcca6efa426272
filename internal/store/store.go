// Package store persists length measurements in SQLite.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/philipparndt/gowall/pkg/geometry"
)

//go:embed schema.sql
var schemaSQL string

// SegmentRecord is one persisted measurement.
// Seq orders the segments of a session.
type SegmentRecord struct {
	ID      uuid.UUID
	Session uuid.UUID
	Seq     int64
	Start   geometry.Vector3
	End     geometry.Vector3
	Length  float64
}

// Store provides durable storage for measurements.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path and applies
// the schema. It is safe to call on an existing database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite allows a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveSegment inserts a segment. Length is computed from the endpoints.
func (s *Store) SaveSegment(ctx context.Context, rec SegmentRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.Must(uuid.NewV7())
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO segments
		(id, session_id, seq, start_x, start_y, start_z, end_x, end_y, end_z, length)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rec.ID.String(),
		rec.Session.String(),
		rec.Seq,
		rec.Start.X, rec.Start.Y, rec.Start.Z,
		rec.End.X, rec.End.Y, rec.End.Z,
		rec.Start.Distance(rec.End),
	)
	if err != nil {
		return fmt.Errorf("write segment: %w", err)
	}
	return nil
}

// Segments returns all segments ordered by session and sequence.
// A non-nil session limits the result to that session.
func (s *Store) Segments(ctx context.Context, session *uuid.UUID) ([]SegmentRecord, error) {
	query := `
		SELECT id, session_id, seq, start_x, start_y, start_z, end_x, end_y, end_z, length
		FROM segments`
	var args []any
	if session != nil {
		query += " WHERE session_id = ?"
		args = append(args, session.String())
	}
	query += " ORDER BY session_id, seq"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("read segments: %w", err)
	}
	defer rows.Close()

	var records []SegmentRecord
	for rows.Next() {
		var rec SegmentRecord
		var id, sessionID string
		if err := rows.Scan(&id, &sessionID, &rec.Seq,
			&rec.Start.X, &rec.Start.Y, &rec.Start.Z,
			&rec.End.X, &rec.End.Y, &rec.End.Z,
			&rec.Length); err != nil {
			return nil, fmt.Errorf("scan segment: %w", err)
		}
		if rec.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse segment id: %w", err)
		}
		if rec.Session, err = uuid.Parse(sessionID); err != nil {
			return nil, fmt.Errorf("parse session id: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read segments: %w", err)
	}
	return records, nil
}

// Clear deletes every segment and returns how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM segments")
	if err != nil {
		return 0, fmt.Errorf("clear segments: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear segments: %w", err)
	}
	return n, nil
}
