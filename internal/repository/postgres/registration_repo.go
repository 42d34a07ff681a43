package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"roboticsclub/internal/domain"
)

const registrationColumns = `id, workshop_id, name, email, phone, student_id, department, batch,
		message, is_paid, payment_status, payment_method, payment_number, transaction_id,
		payment_approved_by, payment_approved_at, status, registered_at, created_at, updated_at`

type workshopRegistrationRepository struct {
	DB *sql.DB
}

func NewWorkshopRegistrationRepository(db *sql.DB) domain.WorkshopRegistrationRepository {
	return &workshopRegistrationRepository{
		DB: db,
	}
}

func (r *workshopRegistrationRepository) Create(ctx context.Context, reg *domain.WorkshopRegistration) error {
	query := `
		INSERT INTO workshop_registrations (workshop_id, name, email, phone, student_id,
			department, batch, message, is_paid, payment_status, payment_method, payment_number,
			transaction_id, status, registered_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id
	`
	var method sql.NullString
	if reg.PaymentMethod != nil {
		method = sql.NullString{String: string(*reg.PaymentMethod), Valid: true}
	}
	err := r.DB.QueryRowContext(ctx, query,
		reg.WorkshopID, reg.Name, reg.Email, reg.Phone, reg.StudentID,
		reg.Department, reg.Batch, reg.Message, reg.IsPaid, reg.PaymentStatus, method, reg.PaymentNumber,
		reg.TransactionID, reg.Status, reg.RegisteredAt, reg.CreatedAt, reg.UpdatedAt,
	).Scan(&reg.ID)
	if err != nil {
		// Races lost at the (workshop_id, email) unique index surface the
		// same way as the advisory pre-check.
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domain.ErrDuplicateRegistration
		}
		return err
	}
	return nil
}

func scanRegistration(row interface{ Scan(...any) error }) (*domain.WorkshopRegistration, error) {
	reg := &domain.WorkshopRegistration{}
	var methodNull, approvedByNull sql.NullString
	var approvedAtNull sql.NullTime
	err := row.Scan(
		&reg.ID, &reg.WorkshopID, &reg.Name, &reg.Email, &reg.Phone, &reg.StudentID,
		&reg.Department, &reg.Batch, &reg.Message, &reg.IsPaid, &reg.PaymentStatus,
		&methodNull, &reg.PaymentNumber, &reg.TransactionID,
		&approvedByNull, &approvedAtNull, &reg.Status, &reg.RegisteredAt, &reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if methodNull.Valid {
		method := domain.PaymentMethod(methodNull.String)
		reg.PaymentMethod = &method
	}
	if approvedByNull.Valid {
		reg.PaymentApprovedBy = &approvedByNull.String
	}
	if approvedAtNull.Valid {
		reg.PaymentApprovedAt = &approvedAtNull.Time
	}
	return reg, nil
}

func (r *workshopRegistrationRepository) GetByID(ctx context.Context, id string) (*domain.WorkshopRegistration, error) {
	query := fmt.Sprintf(`SELECT %s FROM workshop_registrations WHERE id = $1`, registrationColumns)
	reg, err := scanRegistration(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *workshopRegistrationRepository) GetByWorkshopAndEmail(ctx context.Context, workshopID, email string) (*domain.WorkshopRegistration, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM workshop_registrations
		WHERE workshop_id = $1 AND email = LOWER($2)
	`, registrationColumns)
	reg, err := scanRegistration(r.DB.QueryRowContext(ctx, query, workshopID, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *workshopRegistrationRepository) CountActive(ctx context.Context, workshopID string) (int, error) {
	query := `
		SELECT COUNT(*) FROM workshop_registrations
		WHERE workshop_id = $1 AND status IN ('pending', 'confirmed')
	`
	var count int
	if err := r.DB.QueryRowContext(ctx, query, workshopID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func registrationFilterClauses(workshopID string, filter domain.RegistrationFilter) ([]string, []interface{}) {
	clauses := []string{"workshop_id = $1"}
	args := []interface{}{workshopID}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.PaymentStatus != nil {
		args = append(args, *filter.PaymentStatus)
		clauses = append(clauses, fmt.Sprintf("payment_status = $%d", len(args)))
	}
	return clauses, args
}

func (r *workshopRegistrationRepository) ListByWorkshop(ctx context.Context, workshopID string, filter domain.RegistrationFilter) ([]*domain.WorkshopRegistration, error) {
	clauses, args := registrationFilterClauses(workshopID, filter)
	query := fmt.Sprintf(`
		SELECT %s FROM workshop_registrations
		WHERE %s
		ORDER BY created_at DESC
	`, registrationColumns, strings.Join(clauses, " AND "))
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := make([]*domain.WorkshopRegistration, 0)
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

func (r *workshopRegistrationRepository) CountByWorkshop(ctx context.Context, workshopID string, filter domain.RegistrationFilter) (int, error) {
	clauses, args := registrationFilterClauses(workshopID, filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM workshop_registrations WHERE %s`, strings.Join(clauses, " AND "))
	var count int
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *workshopRegistrationRepository) CountPendingPayments(ctx context.Context, workshopID string) (int, error) {
	query := `
		SELECT COUNT(*) FROM workshop_registrations
		WHERE workshop_id = $1 AND is_paid = TRUE AND payment_status = 'pending'
	`
	var count int
	if err := r.DB.QueryRowContext(ctx, query, workshopID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *workshopRegistrationRepository) Update(ctx context.Context, id string, update domain.RegistrationUpdate, approvedBy *string, approvedAt *time.Time) (*domain.WorkshopRegistration, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{id}
	if update.PaymentStatus != nil {
		args = append(args, *update.PaymentStatus)
		setClauses = append(setClauses, fmt.Sprintf("payment_status = $%d", len(args)))
	}
	if update.Status != nil {
		args = append(args, *update.Status)
		setClauses = append(setClauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if approvedBy != nil {
		args = append(args, *approvedBy)
		setClauses = append(setClauses, fmt.Sprintf("payment_approved_by = $%d", len(args)))
	}
	if approvedAt != nil {
		args = append(args, *approvedAt)
		setClauses = append(setClauses, fmt.Sprintf("payment_approved_at = $%d", len(args)))
	}
	query := fmt.Sprintf(`
		UPDATE workshop_registrations SET %s
		WHERE id = $1
		RETURNING %s
	`, strings.Join(setClauses, ", "), registrationColumns)
	reg, err := scanRegistration(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *workshopRegistrationRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM workshop_registrations WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
