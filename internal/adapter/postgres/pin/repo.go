// Package pin stores registry passcodes in the access_pins table.
package pin

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ranch-records/internal/adapter/postgres"
	"github.com/heartmarshall/ranch-records/internal/domain"
)

const table = "access_pins"

var columns = []string{"id", "pin", "access_level", "description", "created_at", "expires_at"}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides pin registry lookups backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new pin repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// FindByPin returns the entry holding pin, or domain.ErrNotFound.
func (r *Repo) FindByPin(ctx context.Context, pin string) (*domain.AccessPin, error) {
	sql, args, err := builder.Select(columns...).
		From(table).
		Where(sq.Eq{"pin": pin}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find pin: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	p, err := scanPin(row)
	if err != nil {
		// The pin itself is a secret; keep it out of error text.
		return nil, postgres.MapError(err, "access pin", "lookup")
	}
	return &p, nil
}

// Create inserts a registry entry. An empty access level is stored as user.
// Returns domain.ErrAlreadyExists when the pin is taken.
func (r *Repo) Create(ctx context.Context, p domain.AccessPin) (*domain.AccessPin, error) {
	if p.AccessLevel == "" {
		p.AccessLevel = domain.AccessLevelUser
	}

	sql, args, err := builder.Insert(table).
		Columns("pin", "access_level", "description", "expires_at").
		Values(p.Pin, string(p.AccessLevel), p.Description, p.ExpiresAt).
		Suffix("RETURNING id, pin, access_level, description, created_at, expires_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create pin: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	got, err := scanPin(row)
	if err != nil {
		return nil, postgres.MapError(err, "access pin", p.Description)
	}
	return &got, nil
}

// List returns every registry entry ordered by ID.
func (r *Repo) List(ctx context.Context) ([]domain.AccessPin, error) {
	sql, args, err := builder.Select(columns...).From(table).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list pins: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list pins: %w", err)
	}
	defer rows.Close()

	out := []domain.AccessPin{}
	for rows.Next() {
		p, err := scanPin(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pin: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pins: %w", err)
	}
	return out, nil
}

func scanPin(row pgx.Row) (domain.AccessPin, error) {
	var (
		p         domain.AccessPin
		level     string
		expiresAt *time.Time
	)
	if err := row.Scan(&p.ID, &p.Pin, &level, &p.Description, &p.CreatedAt, &expiresAt); err != nil {
		return domain.AccessPin{}, err
	}
	p.AccessLevel = domain.AccessLevel(level)
	p.CreatedAt = p.CreatedAt.UTC()
	if expiresAt != nil {
		t := expiresAt.UTC()
		p.ExpiresAt = &t
	}
	return p, nil
}
