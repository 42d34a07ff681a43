package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"roboticsclub/internal/domain"
)

type adminRepository struct {
	DB *sql.DB
}

func NewAdminRepository(db *sql.DB) domain.AdminRepository {
	return &adminRepository{
		DB: db,
	}
}

func (r *adminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	query := `
		INSERT INTO admins (name, email, password_hash, role, is_active, created_at, updated_at)
		VALUES ($1, LOWER($2), $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		admin.Name, admin.Email, admin.PasswordHash, admin.Role, admin.IsActive,
		admin.CreatedAt, admin.UpdatedAt,
	).Scan(&admin.ID)
}

func scanAdmin(row interface{ Scan(...any) error }) (*domain.Admin, error) {
	admin := &domain.Admin{}
	var lastLoginNull sql.NullTime
	err := row.Scan(
		&admin.ID, &admin.Name, &admin.Email, &admin.PasswordHash, &admin.Role,
		&admin.IsActive, &lastLoginNull, &admin.CreatedAt, &admin.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if lastLoginNull.Valid {
		admin.LastLogin = &lastLoginNull.Time
	}
	return admin, nil
}

const adminColumns = `id, name, email, password_hash, role, is_active, last_login, created_at, updated_at`

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	query := fmt.Sprintf(`SELECT %s FROM admins WHERE email = $1`, adminColumns)
	admin, err := scanAdmin(r.DB.QueryRowContext(ctx, query, strings.ToLower(strings.TrimSpace(email))))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return admin, nil
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	query := fmt.Sprintf(`SELECT %s FROM admins WHERE id = $1`, adminColumns)
	admin, err := scanAdmin(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return admin, nil
}

func (r *adminRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE admins SET last_login = $2, updated_at = NOW() WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id, at)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
