package database

import (
	"database/sql"
	"fmt"
	"time"

	"vc-go/internal/database/migrations"
	"vc-go/internal/vc"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteOperationLog implements vc.OperationLog using SQLite.
type SQLiteOperationLog struct {
	db   *sql.DB
	path string
}

// NewSQLiteOperationLog opens (or creates) the operation log at path and
// brings its schema up to date. path can be a file path or ":memory:"
// for an in-memory log.
func NewSQLiteOperationLog(path string) (*SQLiteOperationLog, error) {
	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}

	if err := migrations.MigrateUp(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating operation log: %w", err)
	}

	return &SQLiteOperationLog{db: db, path: path}, nil
}

// NewSQLiteOperationLogFromDB wraps an existing database connection.
// The caller is responsible for ensuring the schema is applied.
func NewSQLiteOperationLogFromDB(db *sql.DB) *SQLiteOperationLog {
	return &SQLiteOperationLog{db: db}
}

// OpenConnection opens and configures a SQLite database connection with
// appropriate PRAGMAs. Exported for tools and tests that need a properly
// configured connection.
func OpenConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign key constraints (SQLite default is OFF for backward compatibility)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// CreateOperation inserts a new running operation.
func (s *SQLiteOperationLog) CreateOperation(operation, parameters string) (*vc.Operation, error) {
	startedAt := time.Now().UTC()
	res, err := s.db.Exec(
		`INSERT INTO operations (operation, parameters, started_at, status) VALUES (?, ?, ?, 'running')`,
		operation, parameters, startedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting operation: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading operation id: %w", err)
	}

	return &vc.Operation{
		ID:         id,
		Operation:  operation,
		Parameters: parameters,
		StartedAt:  startedAt,
		Status:     "running",
	}, nil
}

// FinishOperation marks an operation finished with the given status.
func (s *SQLiteOperationLog) FinishOperation(id int64, status string) error {
	res, err := s.db.Exec(
		`UPDATE operations SET finished_at = ?, status = ? WHERE id = ?`,
		time.Now().UTC(), status, id,
	)
	if err != nil {
		return fmt.Errorf("finishing operation: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("operation %d not found", id)
	}
	return nil
}

// ListOperations returns the most recent operations, newest first.
func (s *SQLiteOperationLog) ListOperations(limit int) ([]*vc.Operation, error) {
	rows, err := s.db.Query(
		`SELECT id, operation, parameters, started_at, finished_at, status
		 FROM operations ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing operations: %w", err)
	}
	defer rows.Close()

	var ops []*vc.Operation
	for rows.Next() {
		var op vc.Operation
		var finishedAt sql.NullTime
		if err := rows.Scan(&op.ID, &op.Operation, &op.Parameters, &op.StartedAt, &finishedAt, &op.Status); err != nil {
			return nil, fmt.Errorf("scanning operation: %w", err)
		}
		if finishedAt.Valid {
			t := finishedAt.Time
			op.FinishedAt = &t
		}
		ops = append(ops, &op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating operations: %w", err)
	}
	return ops, nil
}

// Close closes the database connection.
func (s *SQLiteOperationLog) Close() error {
	return s.db.Close()
}

var _ vc.OperationLog = (*SQLiteOperationLog)(nil)
