package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"roboticsclub/internal/domain"
)

var registrantEmailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type workshopService struct {
	eventRepo domain.EventRepository
	regRepo   domain.WorkshopRegistrationRepository
	email     domain.EmailService
}

// NewWorkshopService creates a WorkshopService with the given repositories.
// The email service is optional; when nil no notifications are sent.
func NewWorkshopService(
	eventRepo domain.EventRepository,
	regRepo domain.WorkshopRegistrationRepository,
	email domain.EmailService,
) domain.WorkshopService {
	return &workshopService{
		eventRepo: eventRepo,
		regRepo:   regRepo,
		email:     email,
	}
}

// Register runs the admission checks in a fixed order; every rejection is
// terminal and leaves no partial state. Capacity is derived from active
// registrations (status pending or confirmed), never from the workshop's
// attendees counter.
func (s *workshopService) Register(ctx context.Context, workshopID string, req *domain.RegistrationRequest) (*domain.WorkshopRegistration, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: missing request body", domain.ErrInvalidInput)
	}
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.Phone)
	if name == "" || email == "" || phone == "" {
		return nil, fmt.Errorf("%w: name, email, and phone are required", domain.ErrInvalidInput)
	}
	if !registrantEmailRegexp.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}

	workshop, err := s.eventRepo.GetByID(ctx, workshopID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get workshop: %w", err)
	}

	if !workshop.RegistrationOpen {
		return nil, domain.ErrRegistrationClosed
	}

	if workshop.IsPaid {
		if req.PaymentMethod == nil || strings.TrimSpace(req.PaymentNumber) == "" || strings.TrimSpace(req.TransactionID) == "" {
			return nil, fmt.Errorf("%w: payment details are required for paid workshops", domain.ErrInvalidInput)
		}
		if *req.PaymentMethod != domain.PaymentMethodBkash && *req.PaymentMethod != domain.PaymentMethodNagad {
			return nil, fmt.Errorf("%w: unknown payment method %q", domain.ErrInvalidInput, *req.PaymentMethod)
		}
		if workshop.PaymentMethod != nil && *workshop.PaymentMethod != domain.PaymentMethodBoth && *workshop.PaymentMethod != *req.PaymentMethod {
			return nil, domain.ErrPaymentMethodMismatch
		}
	}

	active, err := s.regRepo.CountActive(ctx, workshopID)
	if err != nil {
		return nil, fmt.Errorf("count active registrations: %w", err)
	}
	if workshop.RegistrationLimit != nil && active >= *workshop.RegistrationLimit {
		// The workshop is already full: close it even though this request is
		// rejected, so later requests short-circuit on the open flag.
		if err := s.eventRepo.SetRegistrationOpen(ctx, workshopID, false); err != nil {
			log.Printf("[WORKSHOP] failed to close registration for %s: %v", workshopID, err)
		}
		return nil, domain.ErrCapacityExceeded
	}

	// Advisory fast path; the unique index on (workshop_id, email) is the
	// real guarantee under concurrent submissions.
	if _, err := s.regRepo.GetByWorkshopAndEmail(ctx, workshopID, email); err == nil {
		return nil, domain.ErrDuplicateRegistration
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check existing registration: %w", err)
	}

	now := time.Now()
	reg := &domain.WorkshopRegistration{
		WorkshopID: workshopID,
		Name:       name,
		Email:      email,
		Phone:      phone,
		StudentID:  strings.ToUpper(strings.TrimSpace(req.StudentID)),
		Department: strings.TrimSpace(req.Department),
		Batch:      strings.TrimSpace(req.Batch),
		Message:    strings.TrimSpace(req.Message),
		IsPaid:     workshop.IsPaid,
		// Free workshops are settled trivially so the payment gate never
		// blocks confirmation; status stays pending either way.
		PaymentStatus: domain.PaymentStatusPaid,
		Status:        domain.RegistrationStatusPending,
		RegisteredAt:  now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if workshop.IsPaid {
		reg.PaymentStatus = domain.PaymentStatusPending
		reg.PaymentMethod = req.PaymentMethod
		reg.PaymentNumber = strings.TrimSpace(req.PaymentNumber)
		reg.TransactionID = strings.TrimSpace(req.TransactionID)
	}

	if err := s.regRepo.Create(ctx, reg); err != nil {
		if errors.Is(err, domain.ErrDuplicateRegistration) {
			return nil, domain.ErrDuplicateRegistration
		}
		return nil, fmt.Errorf("create registration: %w", err)
	}

	// Best-effort display counter; capacity never reads it.
	if err := s.eventRepo.IncrementAttendees(ctx, workshopID); err != nil {
		log.Printf("[WORKSHOP] failed to increment attendees for %s: %v", workshopID, err)
	}

	// Close exactly when the limit is hit, not only when exceeded.
	if workshop.RegistrationLimit != nil && active+1 >= *workshop.RegistrationLimit {
		if err := s.eventRepo.SetRegistrationOpen(ctx, workshopID, false); err != nil {
			log.Printf("[WORKSHOP] failed to close registration for %s: %v", workshopID, err)
		}
	}

	if s.email != nil {
		data := &domain.RegistrationReceivedEmailData{
			Email:         reg.Email,
			Name:          reg.Name,
			WorkshopTitle: workshop.Title,
			IsPaid:        reg.IsPaid,
		}
		if err := s.email.SendRegistrationReceived(ctx, data); err != nil {
			log.Printf("[WORKSHOP] failed to send registration email to %s: %v", reg.Email, err)
		}
	}

	return reg, nil
}

func (s *workshopService) ListRegistrations(ctx context.Context, workshopID string, filter domain.RegistrationFilter) (*domain.RegistrationList, error) {
	regs, err := s.regRepo.ListByWorkshop(ctx, workshopID, filter)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	total, err := s.regRepo.CountByWorkshop(ctx, workshopID, filter)
	if err != nil {
		return nil, fmt.Errorf("count registrations: %w", err)
	}
	// Pending payments are always computed over the whole workshop,
	// regardless of the request's filter.
	pending, err := s.regRepo.CountPendingPayments(ctx, workshopID)
	if err != nil {
		return nil, fmt.Errorf("count pending payments: %w", err)
	}
	if regs == nil {
		regs = []*domain.WorkshopRegistration{}
	}
	return &domain.RegistrationList{
		Registrations:   regs,
		Total:           total,
		PendingPayments: pending,
	}, nil
}

func (s *workshopService) UpdateRegistration(ctx context.Context, registrationID string, update domain.RegistrationUpdate, approverID string) (*domain.WorkshopRegistration, error) {
	if update.PaymentStatus == nil && update.Status == nil {
		return nil, fmt.Errorf("%w: nothing to update", domain.ErrInvalidInput)
	}

	var approvedBy *string
	var approvedAt *time.Time
	if update.PaymentStatus != nil {
		switch *update.PaymentStatus {
		case domain.PaymentStatusPaid:
			now := time.Now()
			approvedBy = &approverID
			approvedAt = &now
			// Payment approval confirms the registration unless the request
			// carries an explicit status of its own.
			if update.Status == nil {
				confirmed := domain.RegistrationStatusConfirmed
				update.Status = &confirmed
			}
		case domain.PaymentStatusRejected:
			// Rejection leaves status untouched; the slot stays held until an
			// admin cancels or deletes the registration.
		default:
			return nil, fmt.Errorf("%w: payment status must be paid or rejected", domain.ErrInvalidInput)
		}
	}
	if update.Status != nil {
		switch *update.Status {
		case domain.RegistrationStatusPending, domain.RegistrationStatusConfirmed, domain.RegistrationStatusCancelled:
		default:
			return nil, fmt.Errorf("%w: invalid status %q", domain.ErrInvalidInput, *update.Status)
		}
	}

	reg, err := s.regRepo.Update(ctx, registrationID, update, approvedBy, approvedAt)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update registration: %w", err)
	}

	if approvedAt != nil && s.email != nil {
		workshop, err := s.eventRepo.GetByID(ctx, reg.WorkshopID)
		if err != nil {
			log.Printf("[WORKSHOP] failed to load workshop %s for approval email: %v", reg.WorkshopID, err)
			return reg, nil
		}
		data := &domain.PaymentApprovedEmailData{
			Email:         reg.Email,
			Name:          reg.Name,
			WorkshopTitle: workshop.Title,
		}
		if err := s.email.SendPaymentApproved(ctx, data); err != nil {
			log.Printf("[WORKSHOP] failed to send approval email to %s: %v", reg.Email, err)
		}
	}

	return reg, nil
}

// DeleteRegistration removes the row outright. The workshop's attendees
// counter is not decremented.
func (s *workshopService) DeleteRegistration(ctx context.Context, registrationID string) error {
	if err := s.regRepo.Delete(ctx, registrationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete registration: %w", err)
	}
	return nil
}
