package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrAdminNotFound signals that the admin user does not exist.
	ErrAdminNotFound = errors.New("auth: admin user not found")
	// ErrDuplicateUsername signals that the username is already taken.
	ErrDuplicateUsername = errors.New("auth: username already exists")
)

// Repository handles data access for admin accounts.
type Repository interface {
	CreateAdmin(ctx context.Context, params CreateAdminParams) (AdminUser, error)
	GetByUsername(ctx context.Context, username string) (AdminUser, error)
	CountAdmins(ctx context.Context) (int, error)
}

// CreateAdminParams contains write parameters for creating an admin user.
type CreateAdminParams struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// PGRepository implements Repository backed by PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a PostgreSQL-backed admin repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// CreateAdmin inserts a new admin user with a hashed password.
func (r *PGRepository) CreateAdmin(ctx context.Context, params CreateAdminParams) (AdminUser, error) {
	const insertSQL = `
		INSERT INTO admin_users (id, username, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id, username, password_hash, created_at, updated_at
	`

	admin, err := scanAdmin(r.pool.QueryRow(ctx, insertSQL, params.ID, params.Username, params.PasswordHash, params.CreatedAt))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return AdminUser{}, ErrDuplicateUsername
		}
		return AdminUser{}, fmt.Errorf("auth: create admin: %w", err)
	}

	return admin, nil
}

// GetByUsername retrieves an admin user by username.
func (r *PGRepository) GetByUsername(ctx context.Context, username string) (AdminUser, error) {
	const selectSQL = `
		SELECT id, username, password_hash, created_at, updated_at
		FROM admin_users
		WHERE username = $1
	`

	admin, err := scanAdmin(r.pool.QueryRow(ctx, selectSQL, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return AdminUser{}, ErrAdminNotFound
		}
		return AdminUser{}, fmt.Errorf("auth: get admin by username: %w", err)
	}

	return admin, nil
}

// CountAdmins returns how many admin accounts exist.
func (r *PGRepository) CountAdmins(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM admin_users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("auth: count admins: %w", err)
	}
	return count, nil
}

func scanAdmin(row pgx.Row) (AdminUser, error) {
	var admin AdminUser
	err := row.Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		return AdminUser{}, err
	}
	return admin, nil
}
