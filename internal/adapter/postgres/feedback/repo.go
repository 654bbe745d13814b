// Package feedback implements the append-only Feedback repository.
package feedback

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/somnia-backend/internal/adapter/postgres"
	"github.com/heartmarshall/somnia-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const table = "feedback"

const selectList = "id, message, email, user_id, username, created_at"

// Repo provides feedback persistence backed by PostgreSQL.
// Feedback is append-only: there is no update or delete path.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new feedback repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a feedback record and returns the persisted row.
func (r *Repo) Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert(table).
		Columns("id", "message", "email", "user_id", "username", "created_at").
		Values(f.ID, f.Message, ptrToPgText(f.Email), ptrUUIDToPg(f.UserID), ptrToPgText(f.Username), f.CreatedAt).
		Suffix("RETURNING " + selectList).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "feedback", f.ID)
	}

	created, err := scanFeedback(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "feedback", f.ID)
	}
	return created, nil
}

// List returns a page of feedback, most recent first (admin listing).
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.Feedback, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("id", "message", "email", "user_id", "username", "created_at").
		From(table).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "feedback", uuid.Nil)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "feedback", uuid.Nil)
	}
	defer rows.Close()

	var items []domain.Feedback
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			return nil, postgres.MapError(err, "feedback", uuid.Nil)
		}
		items = append(items, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "feedback", uuid.Nil)
	}

	return items, nil
}

// Count returns the total number of feedback records.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "feedback", uuid.Nil)
	}

	var count int
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "feedback", uuid.Nil)
	}
	return count, nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFeedback(row rowScanner) (*domain.Feedback, error) {
	var (
		f        domain.Feedback
		email    pgtype.Text
		userID   pgtype.UUID
		username pgtype.Text
	)
	if err := row.Scan(&f.ID, &f.Message, &email, &userID, &username, &f.CreatedAt); err != nil {
		return nil, err
	}
	f.Email = pgTextToPtr(email)
	f.Username = pgTextToPtr(username)
	if userID.Valid {
		id := uuid.UUID(userID.Bytes)
		f.UserID = &id
	}
	return &f, nil
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

func ptrUUIDToPg(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}
