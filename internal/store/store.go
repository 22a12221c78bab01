package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"modernc.org/sqlite"

	"github.com/storekeep/inventory-service/config"
)

// Store is the single process-wide database handle. It is constructed
// explicitly and passed to repositories; there is no lazy global instance.
// SQLite serializes writers itself, so the pool is capped at one connection
// and readers interleave under the engine's own isolation.
type Store struct {
	db  *sqlx.DB
	log *zap.Logger
}

func Open(cfg config.SQLite, log *zap.Logger) (*Store, error) {
	// foreign_keys is off by default in SQLite and the schema relies on
	// cascade deletes, so it must be enabled on the connection.
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)",
		cfg.Path, cfg.BusyTimeout)

	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %s: %w", cfg.Path, err)
	}
	db.SetMaxOpenConns(1)

	return &Store{db: db, log: log}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying sqlx handle for callers that need raw access,
// such as the migration runner.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// WithTx runs fn inside a transaction. The transaction is rolled back on
// every exit path unless fn returns nil, in which case it is committed.
func (s *Store) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// IsConstraintViolation reports whether err originates from a SQLite
// constraint failure (unique, foreign key, check). Callers use it to map
// rejected writes to a conflict instead of a generic failure.
func IsConstraintViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		// Extended result codes keep the primary code in the low byte.
		return se.Code()&0xff == 19
	}
	return false
}

// IsNoRows reports whether err is the single-row lookup miss from Get.
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
