package services

import (
	"context"
	"testing"
	"time"

	"roboticsclub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockApplicationRepository struct {
	byID      map[string]*domain.MemberApplication
	created   []*domain.MemberApplication
	createErr error
}

func newMockApplicationRepository() *mockApplicationRepository {
	return &mockApplicationRepository{byID: map[string]*domain.MemberApplication{}}
}

func (m *mockApplicationRepository) Create(ctx context.Context, app *domain.MemberApplication) error {
	if m.createErr != nil {
		return m.createErr
	}
	app.ID = "app-new"
	m.created = append(m.created, app)
	return nil
}

func (m *mockApplicationRepository) GetByID(ctx context.Context, id string) (*domain.MemberApplication, error) {
	app, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return app, nil
}

func (m *mockApplicationRepository) List(ctx context.Context, filter domain.ApplicationFilter, p domain.PaginationParams) ([]*domain.MemberApplication, int, error) {
	return nil, 0, nil
}

func (m *mockApplicationRepository) Review(ctx context.Context, id string, review domain.ApplicationReview, reviewedBy string, reviewedAt time.Time) (*domain.MemberApplication, error) {
	app, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if review.Status != nil {
		app.Status = *review.Status
	}
	if review.PaymentStatus != nil {
		app.PaymentStatus = *review.PaymentStatus
	}
	app.ReviewedBy = &reviewedBy
	app.ReviewedAt = &reviewedAt
	return app, nil
}

func (m *mockApplicationRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func validApplication() *domain.MemberApplication {
	return &domain.MemberApplication{
		Name:          "Bob",
		StudentID:     "rc-2023-042",
		Email:         "Bob@Example.com",
		Phone:         "01800000000",
		Department:    "EEE",
		Batch:         "2023",
		WhyJoin:       "I build robots",
		PaymentNumber: "01800000000",
		PaymentMethod: "nagad",
		TransactionID: "TX9",
	}
}

func TestMemberService_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("success normalizes and resets review state", func(t *testing.T) {
		repo := newMockApplicationRepository()
		svc := NewMemberService(repo)

		app := validApplication()
		app.Status = domain.ApplicationStatusApproved // must be ignored
		got, err := svc.Apply(ctx, app)
		require.NoError(t, err)
		assert.Equal(t, "RC-2023-042", got.StudentID)
		assert.Equal(t, "bob@example.com", got.Email)
		assert.Equal(t, domain.ApplicationStatusPending, got.Status)
		assert.Equal(t, domain.ApplicationPaymentPending, got.PaymentStatus)
		assert.Nil(t, got.ReviewedBy)
		assert.Nil(t, got.ReviewedAt)
	})

	t.Run("duplicate student id", func(t *testing.T) {
		repo := newMockApplicationRepository()
		repo.createErr = domain.ErrDuplicateStudentID
		svc := NewMemberService(repo)

		_, err := svc.Apply(ctx, validApplication())
		require.ErrorIs(t, err, domain.ErrDuplicateStudentID)
	})

	t.Run("missing payment details", func(t *testing.T) {
		repo := newMockApplicationRepository()
		svc := NewMemberService(repo)

		app := validApplication()
		app.TransactionID = ""
		_, err := svc.Apply(ctx, app)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown payment method", func(t *testing.T) {
		repo := newMockApplicationRepository()
		svc := NewMemberService(repo)

		app := validApplication()
		app.PaymentMethod = "paypal"
		_, err := svc.Apply(ctx, app)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("missing why join", func(t *testing.T) {
		repo := newMockApplicationRepository()
		svc := NewMemberService(repo)

		app := validApplication()
		app.WhyJoin = "   "
		_, err := svc.Apply(ctx, app)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestMemberService_Review(t *testing.T) {
	ctx := context.Background()
	approved := domain.ApplicationStatusApproved
	verified := domain.ApplicationPaymentVerified

	repo := newMockApplicationRepository()
	repo.byID["app-1"] = &domain.MemberApplication{
		ID:     "app-1",
		Status: domain.ApplicationStatusPending,
	}
	svc := NewMemberService(repo)

	got, err := svc.Review(ctx, "app-1", domain.ApplicationReview{Status: &approved, PaymentStatus: &verified}, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusApproved, got.Status)
	assert.Equal(t, domain.ApplicationPaymentVerified, got.PaymentStatus)
	require.NotNil(t, got.ReviewedBy)
	assert.Equal(t, "admin-1", *got.ReviewedBy)
	assert.NotNil(t, got.ReviewedAt)

	_, err = svc.Review(ctx, "app-1", domain.ApplicationReview{}, "admin-1")
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	bogus := domain.ApplicationStatus("bogus")
	_, err = svc.Review(ctx, "app-1", domain.ApplicationReview{Status: &bogus}, "admin-1")
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Review(ctx, "app-missing", domain.ApplicationReview{Status: &approved}, "admin-1")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
