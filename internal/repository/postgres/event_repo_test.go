package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"roboticsclub/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var eventCols = []string{
	"id", "title", "slug", "description", "content", "image", "event_date", "event_time",
	"location", "mode", "event_link", "registration_link", "registration_limit", "registration_open",
	"is_paid", "registration_fee", "payment_method", "payment_number", "type", "status", "featured",
	"attendees", "tags", "created_by", "created_at", "updated_at",
}

func eventRow(rows *sqlmock.Rows, id string, date time.Time) *sqlmock.Rows {
	return rows.AddRow(
		id, "Intro to ROS", "intro-to-ros", "Hands-on ROS basics", "", "", date, "10:00 AM",
		"Lab 2", "offline", "", "", 50, true,
		true, 200.0, "bkash", "01700000000", "workshop", "upcoming", false,
		0, "{robotics,ros}", "admin-1", date, date,
	)
}

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	limit := 50
	fee := 200.0
	method := domain.PaymentMethodBkash

	tests := []struct {
		name    string
		event   *domain.Event
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
		errIs   error
	}{
		{
			name: "success",
			event: &domain.Event{
				Title:             "Intro to ROS",
				Slug:              "intro-to-ros",
				EventDate:         now,
				RegistrationLimit: &limit,
				RegistrationOpen:  true,
				IsPaid:            true,
				RegistrationFee:   &fee,
				PaymentMethod:     &method,
				Type:              domain.EventTypeWorkshop,
				Status:            domain.EventStatusUpcoming,
				Tags:              []string{"robotics", "ros"},
				CreatedBy:         "admin-1",
				CreatedAt:         now,
				UpdatedAt:         now,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ev-uuid-1"))
			},
			wantID: "ev-uuid-1",
		},
		{
			name: "duplicate slug",
			event: &domain.Event{
				Title:     "Intro to ROS",
				Slug:      "intro-to-ros",
				EventDate: now,
				Type:      domain.EventTypeWorkshop,
				Status:    domain.EventStatusUpcoming,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: true,
			errIs:   domain.ErrDuplicateSlug,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.Create(ctx, tt.event)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.True(t, errors.Is(err, tt.errIs))
				}
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.event.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		id         string
		mock       func(mock sqlmock.Sqlmock)
		wantErr    bool
		isNotFound bool
	}{
		{
			name: "success",
			id:   "ev-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM events WHERE id = \$1`).
					WithArgs("ev-1").
					WillReturnRows(eventRow(sqlmock.NewRows(eventCols), "ev-1", now))
			},
		},
		{
			name: "not found",
			id:   "ev-missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM events WHERE id = \$1`).
					WithArgs("ev-missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr:    true,
			isNotFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			got, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr {
				require.Error(t, err)
				if tt.isNotFound {
					require.True(t, errors.Is(err, domain.ErrNotFound))
				}
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "ev-1", got.ID)
			require.NotNil(t, got.RegistrationLimit)
			require.Equal(t, 50, *got.RegistrationLimit)
			require.NotNil(t, got.PaymentMethod)
			require.Equal(t, domain.PaymentMethodBkash, *got.PaymentMethod)
			require.Equal(t, []string{"robotics", "ros"}, got.Tags)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_List(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	workshop := domain.EventTypeWorkshop

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM events WHERE type = \$1`).
		WithArgs(workshop).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`FROM events WHERE type = \$1\s+ORDER BY event_date DESC\s+LIMIT \$2 OFFSET \$3`).
		WithArgs(workshop, 20, 0).
		WillReturnRows(eventRow(sqlmock.NewRows(eventCols), "ev-1", now))

	repo := NewEventRepository(db)
	events, total, err := repo.List(ctx, domain.EventFilter{Type: &workshop}, domain.PaginationParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, events, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_SetRegistrationOpen(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		mock       func(mock sqlmock.Sqlmock)
		wantErr    bool
		isNotFound bool
	}{
		{
			name: "close",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE events SET registration_open = \$2`).
					WithArgs("ev-1", false).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE events SET registration_open = \$2`).
					WithArgs("ev-1", false).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr:    true,
			isNotFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.SetRegistrationOpen(ctx, "ev-1", false)
			if tt.wantErr {
				require.Error(t, err)
				if tt.isNotFound {
					require.True(t, errors.Is(err, domain.ErrNotFound))
				}
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_IncrementAttendees(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE events SET attendees = attendees \+ 1`).
		WithArgs("ev-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewEventRepository(db)
	require.NoError(t, repo.IncrementAttendees(ctx, "ev-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
