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

var appCols = []string{
	"id", "name", "student_id", "email", "phone", "department", "batch", "current_year",
	"cgpa", "previous_experience", "why_join", "skills", "portfolio", "linkedin", "github",
	"payment_number", "payment_method", "transaction_id", "payment_status", "status",
	"reviewed_by", "reviewed_at", "created_at", "updated_at",
}

func appRow(rows *sqlmock.Rows, id string, created time.Time) *sqlmock.Rows {
	return rows.AddRow(
		id, "Bob", "RC-2023-042", "bob@example.com", "01800000000", "EEE", "2023", "2nd",
		"3.5", "", "I build robots", "{arduino,cad}", "", "", "",
		"01800000000", "nagad", "TX9", "pending", "pending",
		nil, nil, created, created,
	)
}

func TestMemberApplicationRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
		errIs   error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO member_applications`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("app-uuid-1"))
			},
			wantID: "app-uuid-1",
		},
		{
			name: "duplicate student id",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO member_applications`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: true,
			errIs:   domain.ErrDuplicateStudentID,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO member_applications`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			app := &domain.MemberApplication{
				Name:          "Bob",
				StudentID:     "RC-2023-042",
				Email:         "bob@example.com",
				Phone:         "01800000000",
				Department:    "EEE",
				Batch:         "2023",
				WhyJoin:       "I build robots",
				Skills:        []string{"arduino", "cad"},
				PaymentNumber: "01800000000",
				PaymentMethod: "nagad",
				TransactionID: "TX9",
				PaymentStatus: domain.ApplicationPaymentPending,
				Status:        domain.ApplicationStatusPending,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			repo := NewMemberApplicationRepository(db)
			err = repo.Create(ctx, app)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.True(t, errors.Is(err, tt.errIs))
				}
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, app.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMemberApplicationRepository_List(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	pending := domain.ApplicationStatusPending

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM member_applications WHERE status = \$1 AND \(name ILIKE \$2 OR email ILIKE \$2 OR student_id ILIKE \$2\)`).
		WithArgs(pending, "%bob%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`FROM member_applications WHERE status = \$1`).
		WithArgs(pending, "%bob%", 20, 0).
		WillReturnRows(appRow(sqlmock.NewRows(appCols), "app-1", now))

	repo := NewMemberApplicationRepository(db)
	apps, total, err := repo.List(ctx, domain.ApplicationFilter{Status: &pending, Search: "bob"}, domain.PaginationParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, apps, 1)
	require.Equal(t, []string{"arduino", "cad"}, apps[0].Skills)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberApplicationRepository_Review(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	approved := domain.ApplicationStatusApproved
	verified := domain.ApplicationPaymentVerified

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(appCols).AddRow(
		"app-1", "Bob", "RC-2023-042", "bob@example.com", "01800000000", "EEE", "2023", "2nd",
		"3.5", "", "I build robots", "{arduino,cad}", "", "", "",
		"01800000000", "nagad", "TX9", "verified", "approved",
		"admin-1", now, now, now,
	)
	mock.ExpectQuery(`UPDATE member_applications SET updated_at = NOW\(\), status = \$2, payment_status = \$3, reviewed_by = \$4, reviewed_at = \$5`).
		WithArgs("app-1", approved, verified, "admin-1", now).
		WillReturnRows(rows)

	repo := NewMemberApplicationRepository(db)
	got, err := repo.Review(ctx, "app-1", domain.ApplicationReview{Status: &approved, PaymentStatus: &verified}, "admin-1", now)
	require.NoError(t, err)
	require.Equal(t, domain.ApplicationStatusApproved, got.Status)
	require.NotNil(t, got.ReviewedBy)
	require.Equal(t, "admin-1", *got.ReviewedBy)
	require.NoError(t, mock.ExpectationsWereMet())
}
