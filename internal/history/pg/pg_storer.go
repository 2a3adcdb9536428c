package pg

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/booltable/internal/history"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createSchemaSQL = `
	CREATE TABLE IF NOT EXISTS evaluations (
		id         UUID PRIMARY KEY,
		line       TEXT        NOT NULL,
		variables  TEXT[]      NOT NULL,
		output     TEXT        NOT NULL,
		outputs    BOOLEAN[]   NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS evaluations_created_at_idx ON evaluations (created_at DESC);
`

type Storer struct {
	pool *ConnectionPool
	db   *pgxpool.Pool
}

func NewStorer(ctx context.Context, pool *ConnectionPool) (*Storer, error) {
	s := &Storer{pool: pool, db: pool.conn}
	if err := s.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Storer) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createSchemaSQL); err != nil {
		return fmt.Errorf("failed to create evaluations table: %w", err)
	}
	return nil
}

func (s *Storer) Save(ctx context.Context, record history.Record) (uuid.UUID, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	cmd := `
		INSERT INTO evaluations (id, line, variables, output, outputs, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	var id uuid.UUID
	err := s.db.QueryRow(
		ctx,
		cmd,
		record.ID,
		record.Line,
		record.Variables,
		record.Output,
		record.Outputs,
		record.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert evaluation: %w", err)
	}

	slog.Debug("Saved evaluation to postgres", "id", id)
	return id, nil
}

func (s *Storer) List(ctx context.Context, limit int) ([]history.Record, error) {
	query := `
		SELECT id, line, variables, output, outputs, created_at
		FROM evaluations
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
	rows, err := s.db.Query(ctx, query, history.ClampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query evaluations: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (history.Record, error) {
		var r history.Record
		err := row.Scan(&r.ID, &r.Line, &r.Variables, &r.Output, &r.Outputs, &r.CreatedAt)
		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan evaluations: %w", err)
	}
	return records, nil
}

func (s *Storer) Close() {
	s.pool.Close()
}

func (s *Storer) Healthy(ctx context.Context) bool {
	return s.pool.Healthy(ctx)
}
