package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/couchcryptid/nws-client/internal/domain"
)

// Postgres stores documents in a JSONB column. Filters are pushed down as a
// containment query and then checked for exact equality, since containment
// also accepts subsets of arrays and objects.
type Postgres struct {
	Pool *pgxpool.Pool
}

// OpenPostgres migrates the schema and connects a pool.
func OpenPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	if err := Migrate(dsn); err != nil {
		return nil, err
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Postgres{Pool: pool}, nil
}

func (p *Postgres) Create(ctx context.Context, kind string, record any) (string, error) {
	data, err := encodeRecord(record)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	_, err = p.Pool.Exec(ctx,
		`INSERT INTO records (id, kind, data, created_at) VALUES ($1, $2, $3, $4)`,
		id, kind, string(data), domain.Now())
	if err != nil {
		return "", fmt.Errorf("failed to insert %s record: %w", kind, err)
	}
	return id, nil
}

func (p *Postgres) GetAll(ctx context.Context, kind string) ([]Document, error) {
	rows, err := p.Pool.Query(ctx,
		`SELECT id::text, kind, data, created_at FROM records WHERE kind = $1 ORDER BY seq`, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s records: %w", kind, err)
	}
	return collectDocuments(rows, nil)
}

func (p *Postgres) FilterBy(ctx context.Context, kind string, filter Filter) ([]Document, error) {
	want, err := filter.normalize()
	if err != nil {
		return nil, err
	}
	contains, err := json.Marshal(want)
	if err != nil {
		return nil, fmt.Errorf("encode filter: %w", err)
	}
	rows, err := p.Pool.Query(ctx,
		`SELECT id::text, kind, data, created_at FROM records WHERE kind = $1 AND data @> $2::jsonb ORDER BY seq`,
		kind, string(contains))
	if err != nil {
		return nil, fmt.Errorf("failed to filter %s records: %w", kind, err)
	}
	return collectDocuments(rows, want)
}

// Update replaces the data of every matching document.
func (p *Postgres) Update(ctx context.Context, kind string, record any, filter Filter) (bool, error) {
	data, err := encodeRecord(record)
	if err != nil {
		return false, err
	}
	ids, err := p.matchingIDs(ctx, kind, filter)
	if err != nil || len(ids) == 0 {
		return false, err
	}
	if _, err := p.Pool.Exec(ctx, `UPDATE records SET data = $1 WHERE id = ANY($2::uuid[])`, string(data), ids); err != nil {
		return false, fmt.Errorf("failed to update %s records: %w", kind, err)
	}
	return true, nil
}

// Delete removes every matching document.
func (p *Postgres) Delete(ctx context.Context, kind string, filter Filter) (bool, error) {
	ids, err := p.matchingIDs(ctx, kind, filter)
	if err != nil || len(ids) == 0 {
		return false, err
	}
	if _, err := p.Pool.Exec(ctx, `DELETE FROM records WHERE id = ANY($1::uuid[])`, ids); err != nil {
		return false, fmt.Errorf("failed to delete %s records: %w", kind, err)
	}
	return true, nil
}

func (p *Postgres) Close() {
	p.Pool.Close()
}

func (p *Postgres) matchingIDs(ctx context.Context, kind string, filter Filter) ([]string, error) {
	docs, err := p.FilterBy(ctx, kind, filter)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

// collectDocuments scans rows, keeping those that match want exactly.
func collectDocuments(rows pgx.Rows, want map[string]any) ([]Document, error) {
	defer rows.Close()
	docs := []Document{}
	for rows.Next() {
		var (
			d    Document
			data []byte
		)
		if err := rows.Scan(&d.ID, &d.Kind, &data, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		d.Data = data
		if matches(d.Data, want) {
			docs = append(docs, d)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	return docs, nil
}
