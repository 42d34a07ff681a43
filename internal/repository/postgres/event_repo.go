package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"roboticsclub/internal/domain"
)

const eventColumns = `id, title, slug, description, content, image, event_date, event_time,
		location, mode, event_link, registration_link, registration_limit, registration_open,
		is_paid, registration_fee, payment_method, payment_number, type, status, featured,
		attendees, tags, created_by, created_at, updated_at`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, slug, description, content, image, event_date, event_time,
			location, mode, event_link, registration_link, registration_limit, registration_open,
			is_paid, registration_fee, payment_method, payment_number, type, status, featured,
			attendees, tags, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
			$18, $19, $20, $21, $22, $23, $24, $25)
		RETURNING id
	`
	var method sql.NullString
	if e.PaymentMethod != nil {
		method = sql.NullString{String: string(*e.PaymentMethod), Valid: true}
	}
	err := r.DB.QueryRowContext(ctx, query,
		e.Title, e.Slug, e.Description, e.Content, e.Image, e.EventDate, e.EventTime,
		e.Location, e.Mode, e.EventLink, e.RegistrationLink, e.RegistrationLimit, e.RegistrationOpen,
		e.IsPaid, e.RegistrationFee, method, e.PaymentNumber, e.Type, e.Status, e.Featured,
		e.Attendees, pq.Array(e.Tags), e.CreatedBy, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domain.ErrDuplicateSlug
		}
		return err
	}
	return nil
}

func scanEvent(row interface{ Scan(...any) error }) (*domain.Event, error) {
	e := &domain.Event{}
	var limitNull sql.NullInt64
	var feeNull sql.NullFloat64
	var methodNull sql.NullString
	err := row.Scan(
		&e.ID, &e.Title, &e.Slug, &e.Description, &e.Content, &e.Image, &e.EventDate, &e.EventTime,
		&e.Location, &e.Mode, &e.EventLink, &e.RegistrationLink, &limitNull, &e.RegistrationOpen,
		&e.IsPaid, &feeNull, &methodNull, &e.PaymentNumber, &e.Type, &e.Status, &e.Featured,
		&e.Attendees, pq.Array(&e.Tags), &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if limitNull.Valid {
		limit := int(limitNull.Int64)
		e.RegistrationLimit = &limit
	}
	if feeNull.Valid {
		e.RegistrationFee = &feeNull.Float64
	}
	if methodNull.Valid {
		method := domain.PaymentMethod(methodNull.String)
		e.PaymentMethod = &method
	}
	return e, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1`, eventColumns)
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE slug = $1`, eventColumns)
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, strings.ToLower(strings.TrimSpace(slug))))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func eventFilterClauses(filter domain.EventFilter) ([]string, []interface{}) {
	clauses := []string{}
	args := []interface{}{}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		clauses = append(clauses, fmt.Sprintf("type = $%d", len(args)))
	}
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		clauses = append(clauses, fmt.Sprintf("featured = $%d", len(args)))
	}
	if filter.Slug != "" {
		args = append(args, strings.ToLower(strings.TrimSpace(filter.Slug)))
		clauses = append(clauses, fmt.Sprintf("slug = $%d", len(args)))
	}
	return clauses, args
}

func (r *eventRepository) List(ctx context.Context, filter domain.EventFilter, p domain.PaginationParams) ([]*domain.Event, int, error) {
	clauses, args := eventFilterClauses(filter)
	where := ""
	if len(clauses) > 0 {
		where = "WHERE " + strings.Join(clauses, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM events %s`, where)
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listArgs := append(args, p.PageSize, p.Offset())
	query := fmt.Sprintf(`
		SELECT %s FROM events %s
		ORDER BY event_date DESC
		LIMIT $%d OFFSET $%d
	`, eventColumns, where, len(args)+1, len(args)+2)
	rows, err := r.DB.QueryContext(ctx, query, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, e)
	}
	return events, total, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events SET
			title = $2, slug = $3, description = $4, content = $5, image = $6,
			event_date = $7, event_time = $8, location = $9, mode = $10, event_link = $11,
			registration_link = $12, registration_limit = $13, registration_open = $14,
			is_paid = $15, registration_fee = $16, payment_method = $17, payment_number = $18,
			type = $19, status = $20, featured = $21, tags = $22, updated_at = NOW()
		WHERE id = $1
	`
	var method sql.NullString
	if e.PaymentMethod != nil {
		method = sql.NullString{String: string(*e.PaymentMethod), Valid: true}
	}
	result, err := r.DB.ExecContext(ctx, query,
		e.ID, e.Title, e.Slug, e.Description, e.Content, e.Image,
		e.EventDate, e.EventTime, e.Location, e.Mode, e.EventLink,
		e.RegistrationLink, e.RegistrationLimit, e.RegistrationOpen,
		e.IsPaid, e.RegistrationFee, method, e.PaymentNumber,
		e.Type, e.Status, e.Featured, pq.Array(e.Tags),
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domain.ErrDuplicateSlug
		}
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) SetRegistrationOpen(ctx context.Context, id string, open bool) error {
	query := `UPDATE events SET registration_open = $2, updated_at = NOW() WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id, open)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) IncrementAttendees(ctx context.Context, id string) error {
	query := `UPDATE events SET attendees = attendees + 1, updated_at = NOW() WHERE id = $1`
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

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
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
