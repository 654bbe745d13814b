// Package user implements the User repository using PostgreSQL.
package user

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

const table = "users"

var columns = []string{"id", "username", "password_hash", "zodiac_sign", "created_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new user and returns the persisted domain.User.
// A username collision (case-insensitive unique index) maps to
// domain.ErrAlreadyExists and leaves no row behind.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert(table).
		Columns(columns...).
		Values(u.ID, u.Username, u.PasswordHash, zodiacToPgText(u.ZodiacSign), u.CreatedAt).
		Suffix("RETURNING " + selectList()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	created, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByUsername returns a user by username, matched case-insensitively.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From(table).
		Where(sq.Expr("lower(username) = lower(?)", username)).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	u, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return u, nil
}

// UpdateProfile modifies username and/or zodiac sign for the given user.
// Nil fields are left untouched.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, username *string, zodiac *domain.ZodiacSign) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := qb.Update(table).Where(sq.Eq{"id": id})
	if username != nil {
		update = update.Set("username", *username)
	}
	if zodiac != nil {
		update = update.Set("zodiac_sign", zodiac.String())
	}
	update = update.Suffix("RETURNING " + selectList())

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// List returns all users ordered by creation time (admin listing).
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From(table).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, postgres.MapError(err, "user", uuid.Nil)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return users, nil
}

// Count returns the total number of users.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "user", uuid.Nil)
	}

	var count int
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "user", uuid.Nil)
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

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		u      domain.User
		zodiac pgtype.Text
	)
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &zodiac, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.ZodiacSign = pgTextToZodiac(zodiac)
	return &u, nil
}

func selectList() string {
	return "id, username, password_hash, zodiac_sign, created_at"
}

func zodiacToPgText(z *domain.ZodiacSign) pgtype.Text {
	if z == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: z.String(), Valid: true}
}

func pgTextToZodiac(t pgtype.Text) *domain.ZodiacSign {
	if !t.Valid {
		return nil
	}
	z := domain.ZodiacSign(t.String)
	return &z
}
