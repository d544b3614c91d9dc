// Package sqlstore keeps stage records in a single SQL table.
// It joins transactions started by trm.Manager when one is present in the context.
package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/SergeyBogomolovv/logistics-tracker/internal/store"
	"github.com/SergeyBogomolovv/logistics-tracker/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

const recordsTable = "records"

type Dialect struct {
	Name        string
	Placeholder sq.PlaceholderFormat
	Schema      []string
}

var (
	Postgres = Dialect{
		Name:        "postgres",
		Placeholder: sq.Dollar,
		Schema: []string{
			`CREATE TABLE IF NOT EXISTS records (
				seq     BIGSERIAL PRIMARY KEY,
				stage   TEXT NOT NULL,
				payload JSONB NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS records_stage_seq_idx ON records (stage, seq)`,
		},
	}

	SQLite = Dialect{
		Name:        "sqlite",
		Placeholder: sq.Question,
		Schema: []string{
			`CREATE TABLE IF NOT EXISTS records (
				seq     INTEGER PRIMARY KEY AUTOINCREMENT,
				stage   TEXT NOT NULL,
				payload TEXT NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS records_stage_seq_idx ON records (stage, seq)`,
		},
	}
)

type record struct {
	Seq     int64  `db:"seq"`
	Stage   string `db:"stage"`
	Payload []byte `db:"payload"`
}

type Backend struct {
	db      *sqlx.DB
	qb      sq.StatementBuilderType
	dialect Dialect
}

func New(db *sqlx.DB, dialect Dialect) *Backend {
	return &Backend{
		db:      db,
		qb:      sq.StatementBuilder.PlaceholderFormat(dialect.Placeholder),
		dialect: dialect,
	}
}

// Init creates the shared records table. Every stage starts as an empty sequence in it.
func (b *Backend) Init(ctx context.Context, _ store.Stage) error {
	for _, stmt := range b.dialect.Schema {
		if _, err := b.execContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create %s schema: %w", b.dialect.Name, err)
		}
	}
	return nil
}

func (b *Backend) ReadAll(ctx context.Context, stage store.Stage) ([]json.RawMessage, error) {
	query, args := b.qb.Select("seq", "stage", "payload").
		From(recordsTable).
		Where(sq.Eq{"stage": string(stage)}).
		OrderBy("seq ASC").
		MustSql()

	var rows []record
	if err := b.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select records: %w", err)
	}

	out := make([]json.RawMessage, 0, len(rows))
	for _, row := range rows {
		out = append(out, json.RawMessage(row.Payload))
	}
	return out, nil
}

func (b *Backend) Append(ctx context.Context, stage store.Stage, payload json.RawMessage) error {
	query, args := b.qb.Insert(recordsTable).
		Columns("stage", "payload").
		Values(string(stage), string(payload)).
		MustSql()

	if _, err := b.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}
	return nil
}

func (b *Backend) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return b.db.ExecContext(ctx, query, args...)
}

func (b *Backend) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return b.db.SelectContext(ctx, dest, query, args...)
}
