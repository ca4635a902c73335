package sheet

import (
	"context"
	"database/sql"
	_ "embed"
	stderrors "errors"
	"fmt"
	"path/filepath"
	"strings"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

//go:embed migrations/001_sheets.sql
var sheetsSchema string

// SQLiteRepository stores each sheet as one JSON document row
type SQLiteRepository struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) a SQLite database at path and applies
// the schema
func OpenSQLite(ctx context.Context, path string) (*SQLiteRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// one writer; sheets are saved wholesale
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.ExecContext(ctx, sheetsSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database handle
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Get retrieves a sheet by ID
func (r *SQLiteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSheetIDEmpty)
	}

	var document string
	err := r.db.QueryRowContext(ctx, `SELECT document FROM sheets WHERE id = ?`, input.ID).Scan(&document)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("sheet with ID %s not found", input.ID)
		}
		return nil, errors.PersistError(err, "failed to get sheet")
	}

	sheet, err := decode(input.ID, []byte(document))
	if err != nil {
		return nil, err
	}

	return &GetOutput{Sheet: sheet}, nil
}

// Save creates or replaces a sheet
func (r *SQLiteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	data, err := encode(input.Sheet)
	if err != nil {
		return nil, err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO sheets (id, document, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`,
		input.Sheet.ID, string(data), input.Sheet.UpdatedAt,
	)
	if err != nil {
		return nil, errors.PersistError(err, "failed to save sheet")
	}

	return &SaveOutput{}, nil
}

// List returns the IDs of all stored sheets, sorted
func (r *SQLiteRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM sheets ORDER BY id`)
	if err != nil {
		return nil, errors.PersistError(err, "failed to list sheets")
	}
	defer func() { _ = rows.Close() }()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errors.PersistError(err, "failed to scan sheet id")
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.PersistError(err, "failed to list sheets")
	}

	return &ListOutput{IDs: ids}, nil
}
