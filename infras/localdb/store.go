package localdb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"tourcrm/config"
	"tourcrm/internal/schema"
	"tourcrm/shared/failure"
	"tourcrm/shared/password"
	"tourcrm/shared/timezone"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// Row is one decoded SQL result record keyed by column name.
type Row = schema.Row

const (
	dbFileName        = "tourcrm.sqlite"
	seedAdminPassword = "demo1234"
)

// Store is the embedded persistence engine. It runs plain SQL against a
// SQLite database file and mirrors the full file into a Badger key-value
// store under a fixed key after every write, so the entire database state
// travels as one blob. Writes are therefore O(database size), which is the
// accepted trade-off for a single-binary local install.
type Store struct {
	mu          sync.Mutex
	kv          *badger.DB
	db          *sql.DB
	dbPath      string
	blobKey     []byte
	seed        bool
	initialized bool
}

// Open prepares the key-value store backing the engine. The SQL side is
// restored lazily by Initialize.
func Open(cfg *config.Config) (*Store, error) {
	dir := cfg.Storage.Local.Dir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating local storage dir")
	}

	opts := badger.DefaultOptions(filepath.Join(dir, "kv")).WithLogger(nil)
	kv, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "opening key-value store")
	}

	log.Info().Str("dir", dir).Msg("Opened local store")

	return &Store{
		kv:      kv,
		dbPath:  filepath.Join(dir, dbFileName),
		blobKey: []byte(cfg.Storage.Local.BlobKey),
		seed:    cfg.Storage.Local.Seed,
	}, nil
}

// Initialize restores the SQL database from the stored blob, or creates and
// seeds a fresh one when no blob exists. Safe to call more than once, only
// the first call does work.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	blob, err := s.loadBlob()
	if err != nil {
		return err
	}
	if blob != nil {
		if err := os.WriteFile(s.dbPath, blob, 0o600); err != nil {
			return errors.Wrap(err, "restoring database file")
		}
	}

	// journal_mode=DELETE keeps the database in a single file so the blob
	// snapshot is always complete after a committed write.
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(DELETE)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", s.dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return errors.Wrap(err, "opening database file")
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		return errors.Wrap(err, "pinging database")
	}
	s.db = db

	if blob == nil {
		if err := s.bootstrap(ctx); err != nil {
			return err
		}
		if err := s.persistLocked(); err != nil {
			return err
		}
		log.Info().Bool("seeded", s.seed).Msg("Created fresh local database")
	} else {
		log.Info().Int("bytes", len(blob)).Msg("Restored local database from blob")
	}

	s.initialized = true
	return nil
}

func (s *Store) bootstrap(ctx context.Context) error {
	for _, stmt := range schema.CreateStatements(schema.DialectSQLite) {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrapf(err, "creating tables")
		}
	}
	if !s.seed {
		return nil
	}

	hash, err := password.Hash(seedAdminPassword)
	if err != nil {
		return err
	}
	for _, st := range schema.SeedData(timezone.Now(), hash) {
		for _, row := range st.Rows {
			query, args, err := schema.BuildInsert(st.Table, row)
			if err != nil {
				return err
			}
			if _, err := s.db.ExecContext(ctx, query, ConvertArgs(args)...); err != nil {
				return errors.Wrapf(err, "seeding %s", st.Table)
			}
		}
	}
	return nil
}

func (s *Store) loadBlob() ([]byte, error) {
	var blob []byte
	err := s.kv.View(func(txn *badger.Txn) error {
		item, err := txn.Get(s.blobKey)
		if err != nil {
			return err
		}
		blob, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading database blob")
	}
	return blob, nil
}

func (s *Store) persistLocked() error {
	blob, err := os.ReadFile(s.dbPath)
	if err != nil {
		return errors.Wrap(err, "reading database file")
	}
	err = s.kv.Update(func(txn *badger.Txn) error {
		return txn.Set(s.blobKey, blob)
	})
	return errors.Wrap(err, "saving database blob")
}

// Query runs a SELECT and decodes every result row.
func (s *Store) Query(ctx context.Context, query string, args ...any) ([]Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, query, ConvertArgs(args)...)
	if err != nil {
		return nil, errors.Wrapf(err, "querying %q", query)
	}
	defer rows.Close()

	return scanRows(rows)
}

// Execute runs a mutating statement and snapshots the database afterwards.
func (s *Store) Execute(ctx context.Context, query string, args ...any) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, query, ConvertArgs(args)...)
	if err != nil {
		return 0, errors.Wrapf(err, "executing %q", query)
	}
	affected, _ := res.RowsAffected()

	if err := s.persistLocked(); err != nil {
		return affected, err
	}
	return affected, nil
}

// Insert writes one row into a table.
func (s *Store) Insert(ctx context.Context, table string, row Row) error {
	query, args, err := schema.BuildInsert(table, row)
	if err != nil {
		return err
	}
	_, err = s.Execute(ctx, query, args...)
	return err
}

// Update patches the given columns of a row by id and stamps updated_at when
// the table carries one.
func (s *Store) Update(ctx context.Context, table, id string, fields Row) error {
	def, ok := schema.TableByName(table)
	if !ok {
		return errors.Errorf("unknown table %q", table)
	}
	for _, c := range def.Columns {
		if c.Name == "updated_at" {
			fields["updated_at"] = timezone.Now()
			break
		}
	}

	var sets []string
	var args []any
	for _, c := range def.Columns {
		val, ok := fields[c.Name]
		if !ok || c.Name == "id" {
			continue
		}
		sets = append(sets, c.Name+" = ?")
		args = append(args, val)
	}
	if len(sets) == 0 {
		return errors.Errorf("empty update for table %q", table)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", table, strings.Join(sets, ", "))
	affected, err := s.Execute(ctx, query, args...)
	if err != nil {
		return err
	}
	if affected == 0 {
		return failure.NotFound(table)
	}
	return nil
}

// Delete removes a row by id.
func (s *Store) Delete(ctx context.Context, table, id string) error {
	affected, err := s.Execute(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", table), id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return failure.NotFound(table)
	}
	return nil
}

// GetByID fetches one row by id, failing with a not found error when absent.
func (s *Store) GetByID(ctx context.Context, table, id string) (Row, error) {
	rows, err := s.Query(ctx, fmt.Sprintf("SELECT * FROM %s WHERE id = ?", table), id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, failure.NotFound(table)
	}
	return rows[0], nil
}

// GetAll fetches every row of a table belonging to one organization.
func (s *Store) GetAll(ctx context.Context, table, organizationID, orderBy string) ([]Row, error) {
	query := fmt.Sprintf("SELECT * FROM %s WHERE organization_id = ?", table)
	if orderBy != "" {
		query += " ORDER BY " + orderBy
	}
	return s.Query(ctx, query, organizationID)
}

// Tx runs fn inside a SQL transaction and snapshots the database after a
// successful commit.
func (s *Store) Tx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("Rollback failed")
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "committing transaction")
	}
	return s.persistLocked()
}

// Close flushes and closes both stores.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
	}
	return s.kv.Close()
}

// ConvertArgs normalizes Go values to SQLite representations.
func ConvertArgs(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = convertArg(a)
	}
	return out
}

func convertArg(a any) any {
	switch v := a.(type) {
	case sql.NamedArg:
		v.Value = convertArg(v.Value)
		return v
	case time.Time:
		return v.UTC().Format(time.RFC3339Nano)
	case *time.Time:
		if v == nil {
			return nil
		}
		return v.UTC().Format(time.RFC3339Nano)
	case bool:
		if v {
			return int64(1)
		}
		return int64(0)
	case *bool:
		if v == nil {
			return nil
		}
		return convertArg(*v)
	default:
		return a
	}
}

func scanRows(rows *sql.Rows) ([]Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(err, "reading columns")
	}

	var out []Row
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, errors.Wrap(err, "scanning row")
		}

		row := make(Row, len(cols))
		for i, col := range cols {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = values[i]
		}
		out = append(out, row)
	}
	return out, errors.Wrap(rows.Err(), "iterating rows")
}
