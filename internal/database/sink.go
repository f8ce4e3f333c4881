package database

import (
	"context"
	"fmt"
	"strings"
)

// Sink is the parameterized-insert interface the ingestion pipeline writes
// through. Tables carry no uniqueness constraints; every call appends one row.
type Sink interface {
	Insert(ctx context.Context, table string, columns []string, values []any) error
}

// SQLSink writes rows through database/sql, rendering placeholders for the
// underlying dialect ($n for postgres, ? for sqlite).
type SQLSink struct {
	db *DB
}

func NewSQLSink(db *DB) *SQLSink {
	return &SQLSink{db: db}
}

func (s *SQLSink) Insert(ctx context.Context, table string, columns []string, values []any) error {
	if len(columns) != len(values) {
		return fmt.Errorf("insert into %s: %d columns but %d values", table, len(columns), len(values))
	}

	placeholders := make([]string, len(values))
	for i := range values {
		if s.db.dbType == "postgres" {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
		} else {
			placeholders[i] = "?"
		}
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)

	if _, err := s.db.conn.ExecContext(ctx, query, values...); err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}
