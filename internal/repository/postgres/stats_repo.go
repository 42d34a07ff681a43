package postgres

import (
	"context"
	"database/sql"

	"roboticsclub/internal/domain"
)

type statsRepository struct {
	DB *sql.DB
}

func NewStatsRepository(db *sql.DB) domain.StatsRepository {
	return &statsRepository{
		DB: db,
	}
}

// Dashboard aggregates counts with one query per table.
func (r *statsRepository) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}

	eventQuery := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'upcoming'),
			COUNT(*) FILTER (WHERE type = 'workshop'),
			COUNT(*) FILTER (WHERE type = 'seminar')
		FROM events
	`
	if err := r.DB.QueryRowContext(ctx, eventQuery).Scan(
		&stats.Events.Total, &stats.Events.Upcoming, &stats.Events.Workshops, &stats.Events.Seminars,
	); err != nil {
		return nil, err
	}

	regQuery := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'confirmed'),
			COUNT(*) FILTER (WHERE is_paid AND payment_status = 'pending')
		FROM workshop_registrations
	`
	if err := r.DB.QueryRowContext(ctx, regQuery).Scan(
		&stats.Registrations.Total, &stats.Registrations.Confirmed, &stats.Registrations.PendingPayments,
	); err != nil {
		return nil, err
	}

	appQuery := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'approved')
		FROM member_applications
	`
	if err := r.DB.QueryRowContext(ctx, appQuery).Scan(
		&stats.Applications.Total, &stats.Applications.Pending, &stats.Applications.Approved,
	); err != nil {
		return nil, err
	}

	return stats, nil
}
