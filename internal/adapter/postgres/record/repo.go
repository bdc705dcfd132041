// Package record implements the record store on PostgreSQL. Deletes and
// their tombstones are written in one transaction.
package record

import (
	"context"
	"fmt"
	"sort"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ranch-records/internal/adapter/postgres"
	"github.com/heartmarshall/ranch-records/internal/domain"
)

const (
	recordsTable    = "records"
	tombstonesTable = "record_tombstones"
)

var columns = []string{
	"id", "title", "type", "description", "file_name",
	"file_content", "visibility", "upload_date", "archived",
}

// insertColumns are the writable columns; id comes from the sequence.
var insertColumns = columns[1:]

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	tx   *postgres.TxManager
}

// New creates a new record repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, tx: postgres.NewTxManager(pool)}
}

// Create inserts rec and returns it with the assigned ID.
func (r *Repo) Create(ctx context.Context, rec *domain.Record) (*domain.Record, error) {
	query := builder.Insert(recordsTable).
		Columns(insertColumns...).
		Values(insertValues(*rec)...).
		Suffix("RETURNING " + joinColumns())

	got, err := r.queryOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "record", rec.Title)
	}
	return got, nil
}

// CreateBatch inserts every record in one statement. Either all rows are
// stored or none. The result is ordered by ID.
func (r *Repo) CreateBatch(ctx context.Context, recs []domain.Record) ([]domain.Record, error) {
	if len(recs) == 0 {
		return []domain.Record{}, nil
	}

	query := builder.Insert(recordsTable).Columns(insertColumns...)
	for _, rec := range recs {
		query = query.Values(insertValues(rec)...)
	}
	query = query.Suffix("RETURNING " + joinColumns())

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build batch insert: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "record batch", len(recs))
	}
	out, err := collect(rows)
	if err != nil {
		return nil, postgres.MapError(err, "record batch", len(recs))
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetByID returns domain.ErrNotFound when no record has the id.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Record, error) {
	query := builder.Select(columns...).From(recordsTable).Where(sq.Eq{"id": id})

	got, err := r.queryOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "record", id)
	}
	return got, nil
}

// List returns every record ordered by ID. Never nil.
func (r *Repo) List(ctx context.Context) ([]domain.Record, error) {
	sql, args, err := builder.Select(columns...).From(recordsTable).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	out, err := collect(rows)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return out, nil
}

// Count returns the number of stored records.
func (r *Repo) Count(ctx context.Context) (int, error) {
	sql, args, err := builder.Select("count(*)").From(recordsTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

// SetArchived updates the archived flag and returns the updated record.
func (r *Repo) SetArchived(ctx context.Context, id int64, archived bool) (*domain.Record, error) {
	query := builder.Update(recordsTable).
		Set("archived", archived).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns())

	got, err := r.queryOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "record", id)
	}
	return got, nil
}

// Delete removes the record and, when tombstone is set, remembers its file
// URL so reconciliation never recreates it.
func (r *Repo) Delete(ctx context.Context, id int64, tombstone bool) (*domain.Record, error) {
	var deleted *domain.Record

	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		query := builder.Delete(recordsTable).
			Where(sq.Eq{"id": id}).
			Suffix("RETURNING " + joinColumns())

		got, err := r.queryOne(ctx, query)
		if err != nil {
			return postgres.MapError(err, "record", id)
		}
		deleted = got

		if !tombstone || got.FileContent == "" {
			return nil
		}

		sql, args, err := builder.Insert(tombstonesTable).
			Columns("file_url").
			Values(got.FileContent).
			Suffix("ON CONFLICT (file_url) DO NOTHING").
			ToSql()
		if err != nil {
			return fmt.Errorf("build tombstone insert: %w", err)
		}
		if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
			return postgres.MapError(err, "tombstone", got.FileContent)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// Tombstones returns the set of file URLs of deleted managed records.
func (r *Repo) Tombstones(ctx context.Context) (map[string]struct{}, error) {
	sql, args, err := builder.Select("file_url").From(tombstonesTable).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build tombstones: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list tombstones: %w", err)
	}
	urls, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("list tombstones: %w", err)
	}

	out := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		out[u] = struct{}{}
	}
	return out, nil
}

// Ping checks database connectivity.
func (r *Repo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type sqlizer interface {
	ToSql() (string, []any, error)
}

func (r *Repo) queryOne(ctx context.Context, query sqlizer) (*domain.Record, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	rec, err := scanRecord(row)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func insertValues(rec domain.Record) []any {
	return []any{
		rec.Title,
		string(rec.Type),
		rec.Description,
		rec.FileName,
		rec.FileContent,
		string(rec.Visibility),
		rec.UploadDate.UTC(),
		rec.Archived,
	}
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}

func scanRecord(row pgx.Row) (domain.Record, error) {
	var (
		rec        domain.Record
		recType    string
		visibility string
	)
	err := row.Scan(
		&rec.ID, &rec.Title, &recType, &rec.Description, &rec.FileName,
		&rec.FileContent, &visibility, &rec.UploadDate, &rec.Archived,
	)
	if err != nil {
		return domain.Record{}, err
	}
	rec.Type = domain.RecordType(recType)
	rec.Visibility = domain.Visibility(visibility)
	rec.UploadDate = rec.UploadDate.UTC()
	return rec, nil
}

func collect(rows pgx.Rows) ([]domain.Record, error) {
	defer rows.Close()

	out := []domain.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
