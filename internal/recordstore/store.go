package recordstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/inspekto/internal/common"
	"github.com/dmitrijs2005/inspekto/internal/dbx"
	"github.com/dmitrijs2005/inspekto/internal/logging"

	_ "modernc.org/sqlite"
)

// Store is a handle over the declared collections, bound either to the root
// database or, inside WithTx, to a transaction.
type Store struct {
	db     dbx.DBTX
	sqlDB  *sql.DB // nil when bound to a transaction
	schema Schema
	log    logging.Logger
}

// Open opens (or creates) the store at dsn and applies the embedded migrations
// up to schema.Version. The connection pool is limited to a single connection:
// SQLite serializes writers anyway, and one connection keeps transactions from
// deadlocking against the pool.
func Open(ctx context.Context, dsn string, schema Schema, log logging.Logger) (*Store, error) {
	if log == nil {
		log = logging.NewNopLogger()
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	if err := runMigrations(ctx, db, schema.Version); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", common.ErrMigrationFailed, err)
	}

	log.Debug(ctx, "record store opened", "version", schema.Version)
	return &Store{db: db, sqlDB: db, schema: schema, log: log}, nil
}

// Close releases the underlying database. Only valid on the root store.
func (s *Store) Close() error {
	if s.sqlDB == nil {
		return errors.New("close inside a transaction")
	}
	return s.sqlDB.Close()
}

// WithTx runs fn inside one transaction spanning any number of collections.
// The store passed to fn is bound to that transaction; the whole fn either
// commits or rolls back. Nesting is not supported.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context, tx *Store) error) error {
	if s.sqlDB == nil {
		return errors.New("nested transactions are not supported")
	}
	return dbx.WithTx(ctx, s.sqlDB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, &Store{db: tx, schema: s.schema, log: s.log})
	})
}

// Put inserts or fully replaces the record under key. Index columns are
// recomputed from the document on every write.
func (s *Store) Put(ctx context.Context, collection, key string, doc []byte) error {
	c, ok := s.schema.collection(collection)
	if !ok {
		return fmt.Errorf("unknown collection %q", collection)
	}

	cols := c.indexedColumns()
	vals, err := indexValues(cols, doc)
	if err != nil {
		return fmt.Errorf("failed to index %s record: %w", collection, err)
	}

	names := []string{c.KeyColumn, "data"}
	args := []any{key, doc}
	var updates []string
	updates = append(updates, "data = excluded.data")
	for i, ic := range cols {
		names = append(names, ic.column)
		args = append(args, vals[i])
		updates = append(updates, fmt.Sprintf("%s = excluded.%s", ic.column, ic.column))
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) ON CONFLICT(%s) DO UPDATE SET %s`,
		c.Name,
		strings.Join(names, ", "),
		placeholders(len(names)),
		c.KeyColumn,
		strings.Join(updates, ", "),
	)
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert %s record: %w", collection, err)
	}
	return nil
}

// Get returns the document stored under key, or (nil, nil) if there is none.
// A missing record is not an error.
func (s *Store) Get(ctx context.Context, collection, key string) ([]byte, error) {
	c, ok := s.schema.collection(collection)
	if !ok {
		return nil, fmt.Errorf("unknown collection %q", collection)
	}

	query := fmt.Sprintf(`SELECT data FROM %s WHERE %s = ?`, c.Name, c.KeyColumn)
	var doc []byte
	err := s.db.QueryRowContext(ctx, query, key).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select %s record: %w", collection, err)
	}
	return doc, nil
}

// GetAll returns every document in the collection. The order is whatever the
// table yields; callers must not rely on it.
func (s *Store) GetAll(ctx context.Context, collection string) ([][]byte, error) {
	c, ok := s.schema.collection(collection)
	if !ok {
		return nil, fmt.Errorf("unknown collection %q", collection)
	}
	return s.queryDocs(ctx, fmt.Sprintf(`SELECT data FROM %s`, c.Name))
}

// GetByIndex returns every document whose indexed field(s) equal values.
// A composite index requires one value per component, in declaration order.
func (s *Store) GetByIndex(ctx context.Context, collection, indexName string, values ...string) ([][]byte, error) {
	c, ok := s.schema.collection(collection)
	if !ok {
		return nil, fmt.Errorf("unknown collection %q", collection)
	}

	var idx *Index
	for i := range c.Indexes {
		if c.Indexes[i].Name == indexName {
			idx = &c.Indexes[i]
			break
		}
	}
	if idx == nil {
		return nil, fmt.Errorf("unknown index %q on collection %q", indexName, collection)
	}
	if len(values) != len(idx.Columns) {
		return nil, fmt.Errorf("index %q wants %d value(s), got %d", indexName, len(idx.Columns), len(values))
	}

	var where []string
	args := make([]any, 0, len(values))
	for i, col := range idx.Columns {
		where = append(where, col+" = ?")
		args = append(args, values[i])
	}
	query := fmt.Sprintf(`SELECT data FROM %s WHERE %s`, c.Name, strings.Join(where, " AND "))
	return s.queryDocs(ctx, query, args...)
}

// Delete removes the record under key. Deleting an absent key is a no-op.
func (s *Store) Delete(ctx context.Context, collection, key string) error {
	c, ok := s.schema.collection(collection)
	if !ok {
		return fmt.Errorf("unknown collection %q", collection)
	}
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, c.Name, c.KeyColumn)
	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete %s record: %w", collection, err)
	}
	return nil
}

func (s *Store) queryDocs(ctx context.Context, query string, args ...any) ([][]byte, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select records: %w", err)
	}
	defer rows.Close()

	var result [][]byte
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		result = append(result, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// indexValues pulls the indexed fields out of the document. Indexed fields are
// top-level string fields; a missing or null field indexes as the empty string.
func indexValues(cols []indexedColumn, doc []byte) ([]string, error) {
	if len(cols) == 0 {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, err
	}
	out := make([]string, len(cols))
	for i, ic := range cols {
		switch v := m[ic.field].(type) {
		case nil:
			out[i] = ""
		case string:
			out[i] = v
		default:
			return nil, fmt.Errorf("indexed field %q is not a string", ic.field)
		}
	}
	return out, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
