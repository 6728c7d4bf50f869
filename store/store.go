// Package store persists encoded pass documents in SQLite, deduplicated
// by content identity. It is an optional layer on top of the pure codec
// in the pass package: producers that assemble pipelines repeatedly can
// cache validated documents here instead of re-encoding.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/quantmill/passkit/pass"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 1 - Initial schema
const currentSchemaVersion = 1

// ErrNotFound is returned when no record matches a lookup.
var ErrNotFound = errors.New("store: pass not found")

// Record is one stored pass document.
type Record struct {
	// ID is the UUIDv7 record id, time-sortable by insertion.
	ID string
	// Hash is the content-addressed pass identity (pass.PassID).
	Hash string
	// Class is the outer pass_class discriminant, for filtering.
	Class string
	// Document is the encoded wire document.
	Document []byte
	// CreatedAt is the insertion timestamp (RFC 3339, UTC).
	CreatedAt string
}

// Decode parses the stored document back into a pass tree.
func (r Record) Decode() (pass.Pass, error) {
	return pass.Decode(r.Document)
}

// Store provides durable storage for pass documents.
// Uses SQLite with WAL mode for concurrent read access.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// Applies required pragmas and the schema automatically.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
//
// This function is idempotent - safe to call multiple times.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}
	if err := applySchema(db); err != nil {
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

// Put encodes and stores a pass tree. Structurally equal passes share a
// content hash, so re-putting an equivalent tree returns the existing
// record instead of inserting a duplicate.
func (s *Store) Put(ctx context.Context, p pass.Pass) (Record, error) {
	document, err := pass.Encode(p)
	if err != nil {
		return Record{}, fmt.Errorf("encode pass: %w", err)
	}
	hash, err := pass.PassID(p)
	if err != nil {
		return Record{}, fmt.Errorf("hash pass: %w", err)
	}

	id := uuid.Must(uuid.NewV7()).String()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO passes (id, hash, class, document) VALUES (?, ?, ?, ?)
		 ON CONFLICT(hash) DO NOTHING`,
		id, hash, string(p.Class()), string(document))
	if err != nil {
		return Record{}, fmt.Errorf("insert pass: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// Deduplicated: hand back the record already holding this hash.
		return s.GetByHash(ctx, hash)
	}
	return s.get(ctx, "id", id)
}

// Get returns the record with the given record id.
func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	return s.get(ctx, "id", id)
}

// GetByHash returns the record with the given content hash.
func (s *Store) GetByHash(ctx context.Context, hash string) (Record, error) {
	return s.get(ctx, "hash", hash)
}

func (s *Store) get(ctx context.Context, column, value string) (Record, error) {
	var r Record
	var document string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, hash, class, document, created_at FROM passes WHERE `+column+` = ?`,
		value).Scan(&r.ID, &r.Hash, &r.Class, &document, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("query pass: %w", err)
	}
	r.Document = []byte(document)
	return r, nil
}

// List returns all stored records ordered by insertion time (UUIDv7 ids
// sort chronologically).
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, hash, class, document, created_at FROM passes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list passes: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var document string
		if err := rows.Scan(&r.ID, &r.Hash, &r.Class, &document, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan pass: %w", err)
		}
		r.Document = []byte(document)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list passes: %w", err)
	}
	return records, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}
	return nil
}

// applySchema creates tables and records the schema version.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	var version int
	err := db.QueryRow(`SELECT version FROM schema_version`).Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := db.Exec(`INSERT INTO schema_version (version) VALUES (?)`, currentSchemaVersion); err != nil {
			return fmt.Errorf("record schema version: %w", err)
		}
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case version > currentSchemaVersion:
		return fmt.Errorf("database schema version %d is newer than supported version %d", version, currentSchemaVersion)
	}
	return nil
}
