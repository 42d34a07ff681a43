package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"roboticsclub/internal/domain"
)

var slugCleanRegexp = regexp.MustCompile(`[^a-z0-9]+`)

type eventService struct {
	eventRepo domain.EventRepository
}

func NewEventService(eventRepo domain.EventRepository) domain.EventService {
	return &eventService{
		eventRepo: eventRepo,
	}
}

// slugify turns a title into a URL slug ("Intro to ROS!" -> "intro-to-ros").
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugCleanRegexp.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func validateEvent(e *domain.Event) error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if e.EventDate.IsZero() {
		return fmt.Errorf("%w: event date is required", domain.ErrInvalidInput)
	}
	switch e.Type {
	case domain.EventTypeEvent, domain.EventTypeWorkshop, domain.EventTypeSeminar:
	default:
		return fmt.Errorf("%w: invalid event type %q", domain.ErrInvalidInput, e.Type)
	}
	switch e.Status {
	case domain.EventStatusUpcoming, domain.EventStatusOngoing, domain.EventStatusCompleted, domain.EventStatusCancelled:
	default:
		return fmt.Errorf("%w: invalid event status %q", domain.ErrInvalidInput, e.Status)
	}
	if e.RegistrationLimit != nil && *e.RegistrationLimit <= 0 {
		return fmt.Errorf("%w: registration limit must be positive", domain.ErrInvalidInput)
	}
	if e.IsPaid {
		if e.RegistrationFee == nil || *e.RegistrationFee <= 0 {
			return fmt.Errorf("%w: paid events require a positive registration fee", domain.ErrInvalidInput)
		}
		if e.PaymentMethod == nil {
			return fmt.Errorf("%w: paid events require a payment method", domain.ErrInvalidInput)
		}
		switch *e.PaymentMethod {
		case domain.PaymentMethodBkash, domain.PaymentMethodNagad, domain.PaymentMethodBoth:
		default:
			return fmt.Errorf("%w: invalid payment method %q", domain.ErrInvalidInput, *e.PaymentMethod)
		}
	} else {
		e.RegistrationFee = nil
		e.PaymentMethod = nil
		e.PaymentNumber = ""
	}
	return nil
}

func (s *eventService) Create(ctx context.Context, event *domain.Event, createdBy string) (*domain.Event, error) {
	if event == nil {
		return nil, fmt.Errorf("%w: missing event", domain.ErrInvalidInput)
	}
	if event.Status == "" {
		event.Status = domain.EventStatusUpcoming
	}
	if event.Type == "" {
		event.Type = domain.EventTypeEvent
	}
	if err := validateEvent(event); err != nil {
		return nil, err
	}
	if event.Slug == "" {
		event.Slug = slugify(event.Title)
	} else {
		event.Slug = slugify(event.Slug)
	}
	if event.Slug == "" {
		return nil, fmt.Errorf("%w: could not derive a slug from the title", domain.ErrInvalidInput)
	}

	now := time.Now()
	event.CreatedBy = createdBy
	event.Attendees = 0
	event.CreatedAt = now
	event.UpdatedAt = now
	if err := s.eventRepo.Create(ctx, event); err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			return nil, domain.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context, filter domain.EventFilter, p domain.PaginationParams) ([]*domain.Event, int, error) {
	events, total, err := s.eventRepo.List(ctx, filter, p)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	return events, total, nil
}

func (s *eventService) Update(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if event == nil || event.ID == "" {
		return nil, fmt.Errorf("%w: missing event id", domain.ErrInvalidInput)
	}
	if err := validateEvent(event); err != nil {
		return nil, err
	}
	event.Slug = slugify(event.Slug)
	if event.Slug == "" {
		event.Slug = slugify(event.Title)
	}
	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrDuplicateSlug) {
			return nil, err
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return s.eventRepo.GetByID(ctx, event.ID)
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
