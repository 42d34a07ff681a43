package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"roboticsclub/internal/domain"
)

type memberService struct {
	appRepo domain.MemberApplicationRepository
}

func NewMemberService(appRepo domain.MemberApplicationRepository) domain.MemberService {
	return &memberService{
		appRepo: appRepo,
	}
}

// Apply submits a membership application. Membership always carries a fee, so
// the payment trio is required up front.
func (s *memberService) Apply(ctx context.Context, app *domain.MemberApplication) (*domain.MemberApplication, error) {
	if app == nil {
		return nil, fmt.Errorf("%w: missing application", domain.ErrInvalidInput)
	}
	app.Name = strings.TrimSpace(app.Name)
	app.StudentID = strings.ToUpper(strings.TrimSpace(app.StudentID))
	app.Email = strings.ToLower(strings.TrimSpace(app.Email))
	app.Phone = strings.TrimSpace(app.Phone)
	app.Department = strings.TrimSpace(app.Department)
	app.Batch = strings.TrimSpace(app.Batch)
	app.WhyJoin = strings.TrimSpace(app.WhyJoin)

	if app.Name == "" || app.StudentID == "" || app.Email == "" || app.Phone == "" {
		return nil, fmt.Errorf("%w: name, student ID, email, and phone are required", domain.ErrInvalidInput)
	}
	if !registrantEmailRegexp.MatchString(app.Email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	if app.Department == "" || app.Batch == "" {
		return nil, fmt.Errorf("%w: department and batch are required", domain.ErrInvalidInput)
	}
	if app.WhyJoin == "" {
		return nil, fmt.Errorf("%w: tell us why you want to join", domain.ErrInvalidInput)
	}
	app.PaymentMethod = strings.ToLower(strings.TrimSpace(app.PaymentMethod))
	if strings.TrimSpace(app.PaymentNumber) == "" || app.PaymentMethod == "" || strings.TrimSpace(app.TransactionID) == "" {
		return nil, fmt.Errorf("%w: payment details are required", domain.ErrInvalidInput)
	}
	switch app.PaymentMethod {
	case "bkash", "nagad", "rocket":
	default:
		return nil, fmt.Errorf("%w: unknown payment method %q", domain.ErrInvalidInput, app.PaymentMethod)
	}

	now := time.Now()
	app.PaymentStatus = domain.ApplicationPaymentPending
	app.Status = domain.ApplicationStatusPending
	app.ReviewedBy = nil
	app.ReviewedAt = nil
	app.CreatedAt = now
	app.UpdatedAt = now

	if err := s.appRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicateStudentID) {
			return nil, domain.ErrDuplicateStudentID
		}
		return nil, fmt.Errorf("create application: %w", err)
	}
	return app, nil
}

func (s *memberService) GetByID(ctx context.Context, id string) (*domain.MemberApplication, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get application: %w", err)
	}
	return app, nil
}

func (s *memberService) List(ctx context.Context, filter domain.ApplicationFilter, p domain.PaginationParams) ([]*domain.MemberApplication, int, error) {
	apps, total, err := s.appRepo.List(ctx, filter, p)
	if err != nil {
		return nil, 0, fmt.Errorf("list applications: %w", err)
	}
	return apps, total, nil
}

func (s *memberService) Review(ctx context.Context, id string, review domain.ApplicationReview, reviewerID string) (*domain.MemberApplication, error) {
	if review.Status == nil && review.PaymentStatus == nil {
		return nil, fmt.Errorf("%w: nothing to review", domain.ErrInvalidInput)
	}
	if review.Status != nil {
		switch *review.Status {
		case domain.ApplicationStatusPending, domain.ApplicationStatusApproved, domain.ApplicationStatusRejected:
		default:
			return nil, fmt.Errorf("%w: invalid status %q", domain.ErrInvalidInput, *review.Status)
		}
	}
	if review.PaymentStatus != nil {
		switch *review.PaymentStatus {
		case domain.ApplicationPaymentPending, domain.ApplicationPaymentVerified, domain.ApplicationPaymentRejected:
		default:
			return nil, fmt.Errorf("%w: invalid payment status %q", domain.ErrInvalidInput, *review.PaymentStatus)
		}
	}

	app, err := s.appRepo.Review(ctx, id, review, reviewerID, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("review application: %w", err)
	}
	return app, nil
}

func (s *memberService) Delete(ctx context.Context, id string) error {
	if err := s.appRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete application: %w", err)
	}
	return nil
}
