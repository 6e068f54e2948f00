package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/netops/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint breach.
const uniqueViolation = "23505"

const userColumns = `id, user_id, full_name, email, password_hash,
		 phone_number, occupation, employer, country, latitude, longitude, created_at`

// DBTX is the subset of database/sql the repository needs. Both *sql.DB and
// *sql.Tx satisfy it.
type DBTX interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type PostgresRepository struct {
	db DBTX
}

func NewPostgresRepository(db DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *User) (*User, error) {
	query :=
		`INSERT INTO users (user_id, full_name, email, password_hash,
		 phone_number, occupation, employer, country, latitude, longitude)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at
		 `

	u := *user
	err := r.db.QueryRowContext(ctx, query,
		u.UserID, u.FullName, strings.TrimSpace(u.Email), u.PasswordHash,
		u.PhoneNumber, u.Occupation, u.Employer, u.Country, u.Latitude, u.Longitude,
	).Scan(&u.ID, &u.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &u, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users
		 WHERE lower(email) = lower($1)
		 `
	return r.getOne(ctx, query, strings.TrimSpace(email))
}

func (r *PostgresRepository) GetByUserID(ctx context.Context, userID string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users
		 WHERE user_id = $1
		 `
	return r.getOne(ctx, query, userID)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, args ...any) (*User, error) {
	u := &User{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&u.ID, &u.UserID, &u.FullName, &u.Email, &u.PasswordHash,
		&u.PhoneNumber, &u.Occupation, &u.Employer, &u.Country, &u.Latitude, &u.Longitude,
		&u.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return u, nil
}

// UpdateProfile merges in one statement; COALESCE keeps columns whose
// update value is NULL.
func (r *PostgresRepository) UpdateProfile(ctx context.Context, userID string, p ProfileUpdate) (*User, error) {
	query :=
		`UPDATE users SET
		 phone_number = COALESCE($2, phone_number),
		 occupation = COALESCE($3, occupation),
		 employer = COALESCE($4, employer),
		 country = COALESCE($5, country),
		 latitude = COALESCE($6, latitude),
		 longitude = COALESCE($7, longitude)
		 WHERE user_id = $1
		 RETURNING ` + userColumns

	return r.getOne(ctx, query, userID,
		p.PhoneNumber, p.Occupation, p.Employer, p.Country, p.Latitude, p.Longitude)
}
