package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// The execute methods below wrap sqlx with a logging decorator: every
// statement gets a generated query id, the rendered SQL and the elapsed
// time at debug level. Failures are logged at error level with the same id
// so a caller-side error can be matched to the statement that produced it.

func (s *Store) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	start := time.Now()
	err := s.db.SelectContext(ctx, dest, query, args...)
	s.logStatement(query, start, err)
	return err
}

func (s *Store) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	start := time.Now()
	err := s.db.GetContext(ctx, dest, query, args...)
	s.logStatement(query, start, err)
	return err
}

func (s *Store) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := s.db.ExecContext(ctx, query, args...)
	s.logStatement(query, start, err)
	return res, err
}

func (s *Store) logStatement(query string, start time.Time, err error) {
	fields := []zap.Field{
		zap.String("query_id", uuid.NewString()),
		zap.String("sql", squish(query)),
		zap.Duration("elapsed", time.Since(start)),
	}
	if err != nil && !IsNoRows(err) {
		s.log.Error("statement failed", append(fields, zap.Error(err))...)
		return
	}
	s.log.Debug("statement executed", fields...)
}

// squish collapses whitespace so multi-line SQL logs as a single line.
func squish(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
