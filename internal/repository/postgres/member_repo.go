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

const applicationColumns = `id, name, student_id, email, phone, department, batch, current_year,
		cgpa, previous_experience, why_join, skills, portfolio, linkedin, github,
		payment_number, payment_method, transaction_id, payment_status, status,
		reviewed_by, reviewed_at, created_at, updated_at`

type memberApplicationRepository struct {
	DB *sql.DB
}

func NewMemberApplicationRepository(db *sql.DB) domain.MemberApplicationRepository {
	return &memberApplicationRepository{
		DB: db,
	}
}

func (r *memberApplicationRepository) Create(ctx context.Context, app *domain.MemberApplication) error {
	query := `
		INSERT INTO member_applications (name, student_id, email, phone, department, batch,
			current_year, cgpa, previous_experience, why_join, skills, portfolio, linkedin,
			github, payment_number, payment_method, transaction_id, payment_status, status,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
			$18, $19, $20, $21)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		app.Name, app.StudentID, app.Email, app.Phone, app.Department, app.Batch,
		app.CurrentYear, app.CGPA, app.PreviousExperience, app.WhyJoin, pq.Array(app.Skills),
		app.Portfolio, app.LinkedIn, app.GitHub, app.PaymentNumber, app.PaymentMethod,
		app.TransactionID, app.PaymentStatus, app.Status, app.CreatedAt, app.UpdatedAt,
	).Scan(&app.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domain.ErrDuplicateStudentID
		}
		return err
	}
	return nil
}

func scanApplication(row interface{ Scan(...any) error }) (*domain.MemberApplication, error) {
	app := &domain.MemberApplication{}
	var reviewedByNull sql.NullString
	var reviewedAtNull sql.NullTime
	err := row.Scan(
		&app.ID, &app.Name, &app.StudentID, &app.Email, &app.Phone, &app.Department,
		&app.Batch, &app.CurrentYear, &app.CGPA, &app.PreviousExperience, &app.WhyJoin,
		pq.Array(&app.Skills), &app.Portfolio, &app.LinkedIn, &app.GitHub,
		&app.PaymentNumber, &app.PaymentMethod, &app.TransactionID, &app.PaymentStatus,
		&app.Status, &reviewedByNull, &reviewedAtNull, &app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if reviewedByNull.Valid {
		app.ReviewedBy = &reviewedByNull.String
	}
	if reviewedAtNull.Valid {
		app.ReviewedAt = &reviewedAtNull.Time
	}
	return app, nil
}

func (r *memberApplicationRepository) GetByID(ctx context.Context, id string) (*domain.MemberApplication, error) {
	query := fmt.Sprintf(`SELECT %s FROM member_applications WHERE id = $1`, applicationColumns)
	app, err := scanApplication(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return app, nil
}

func (r *memberApplicationRepository) List(ctx context.Context, filter domain.ApplicationFilter, p domain.PaginationParams) ([]*domain.MemberApplication, int, error) {
	clauses := []string{}
	args := []interface{}{}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+strings.TrimSpace(filter.Search)+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d OR student_id ILIKE $%d)", n, n, n))
	}
	where := ""
	if len(clauses) > 0 {
		where = "WHERE " + strings.Join(clauses, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM member_applications %s`, where)
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listArgs := append(args, p.PageSize, p.Offset())
	query := fmt.Sprintf(`
		SELECT %s FROM member_applications %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, applicationColumns, where, len(args)+1, len(args)+2)
	rows, err := r.DB.QueryContext(ctx, query, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	apps := make([]*domain.MemberApplication, 0)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, 0, err
		}
		apps = append(apps, app)
	}
	return apps, total, rows.Err()
}

func (r *memberApplicationRepository) Review(ctx context.Context, id string, review domain.ApplicationReview, reviewedBy string, reviewedAt time.Time) (*domain.MemberApplication, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{id}
	if review.Status != nil {
		args = append(args, *review.Status)
		setClauses = append(setClauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if review.PaymentStatus != nil {
		args = append(args, *review.PaymentStatus)
		setClauses = append(setClauses, fmt.Sprintf("payment_status = $%d", len(args)))
	}
	args = append(args, reviewedBy)
	setClauses = append(setClauses, fmt.Sprintf("reviewed_by = $%d", len(args)))
	args = append(args, reviewedAt)
	setClauses = append(setClauses, fmt.Sprintf("reviewed_at = $%d", len(args)))

	query := fmt.Sprintf(`
		UPDATE member_applications SET %s
		WHERE id = $1
		RETURNING %s
	`, strings.Join(setClauses, ", "), applicationColumns)
	app, err := scanApplication(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return app, nil
}

func (r *memberApplicationRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM member_applications WHERE id = $1`
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
