// Package dream implements the Dream repository using PostgreSQL.
package dream

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/somnia-backend/internal/adapter/postgres"
	"github.com/heartmarshall/somnia-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const table = "dreams"

var columns = []string{"id", "user_id", "text", "title", "interpretation", "dreamed_at", "created_at"}

const selectList = "id, user_id, text, title, interpretation, dreamed_at, created_at"

// Repo provides dream persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new dream repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new dream and returns the persisted domain.Dream.
func (r *Repo) Create(ctx context.Context, d *domain.Dream) (*domain.Dream, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert(table).
		Columns(columns...).
		Values(d.ID, d.UserID, d.Text, ptrToPgText(d.Title), ptrToPgText(d.Interpretation), d.DreamedAt, d.CreatedAt).
		Suffix("RETURNING " + selectList).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "dream", d.ID)
	}

	created, err := scanDream(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "dream", d.ID)
	}
	return created, nil
}

// CreateBatch inserts multiple dreams in one round-trip (client sync).
// No deduplication: every element becomes a new row.
func (r *Repo) CreateBatch(ctx context.Context, dreams []domain.Dream) error {
	if len(dreams) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, d := range dreams {
		sql, args, err := qb.Insert(table).
			Columns(columns...).
			Values(d.ID, d.UserID, d.Text, ptrToPgText(d.Title), ptrToPgText(d.Interpretation), d.DreamedAt, d.CreatedAt).
			ToSql()
		if err != nil {
			return postgres.MapError(err, "dream", d.ID)
		}
		batch.Queue(sql, args...)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for _, d := range dreams {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "dream", d.ID)
		}
	}

	return nil
}

// GetByID returns a dream by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dream, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "dream", id)
	}

	d, err := scanDream(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "dream", id)
	}
	return d, nil
}

// ListByUser returns all dreams of one user, most recent first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Dream, error) {
	return r.list(ctx, qb.Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("dreamed_at DESC"))
}

// ListAll returns a page of all dreams across users (admin listing).
func (r *Repo) ListAll(ctx context.Context, limit, offset int) ([]domain.Dream, error) {
	return r.list(ctx, qb.Select(columns...).
		From(table).
		OrderBy("dreamed_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)))
}

func (r *Repo) list(ctx context.Context, query sq.SelectBuilder) ([]domain.Dream, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "dream", uuid.Nil)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "dream", uuid.Nil)
	}
	defer rows.Close()

	var dreams []domain.Dream
	for rows.Next() {
		d, err := scanDream(rows)
		if err != nil {
			return nil, postgres.MapError(err, "dream", uuid.Nil)
		}
		dreams = append(dreams, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "dream", uuid.Nil)
	}

	return dreams, nil
}

// UpdateContent attaches a generated title and/or interpretation.
// Nil fields are left untouched. Last write wins: there is no version
// check, concurrent updates of the same dream race by design.
func (r *Repo) UpdateContent(ctx context.Context, id uuid.UUID, title, interpretation *string) (*domain.Dream, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := qb.Update(table).Where(sq.Eq{"id": id})
	if title != nil {
		update = update.Set("title", *title)
	}
	if interpretation != nil {
		update = update.Set("interpretation", *interpretation)
	}
	update = update.Suffix("RETURNING " + selectList)

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "dream", id)
	}

	d, err := scanDream(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "dream", id)
	}
	return d, nil
}

// Delete removes a dream by primary key.
// Deleting a missing id returns domain.ErrNotFound.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return postgres.MapError(err, "dream", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "dream", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "dream", id)
	}

	return nil
}

// ListDates returns the distinct calendar dates (UTC) on which the user
// journaled at least one dream, most recent first. Streak computation
// walks this list.
func (r *Repo) ListDates(ctx context.Context, userID uuid.UUID) ([]time.Time, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("DISTINCT (dreamed_at AT TIME ZONE 'UTC')::date AS day").
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("day DESC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "dream", uuid.Nil)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "dream", uuid.Nil)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var day time.Time
		if err := rows.Scan(&day); err != nil {
			return nil, postgres.MapError(err, "dream", uuid.Nil)
		}
		dates = append(dates, day)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "dream", uuid.Nil)
	}

	return dates, nil
}

// Count returns the total number of dreams across all users.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "dream", uuid.Nil)
	}

	var count int
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "dream", uuid.Nil)
	}
	return count, nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDream(row rowScanner) (*domain.Dream, error) {
	var (
		d              domain.Dream
		title          pgtype.Text
		interpretation pgtype.Text
	)
	if err := row.Scan(&d.ID, &d.UserID, &d.Text, &title, &interpretation, &d.DreamedAt, &d.CreatedAt); err != nil {
		return nil, err
	}
	d.Title = pgTextToPtr(title)
	d.Interpretation = pgTextToPtr(interpretation)
	return &d, nil
}

func ptrToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func pgTextToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	return &t.String
}
