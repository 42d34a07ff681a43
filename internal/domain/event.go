package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateSlug is returned when creating an event whose slug is already in use.
var ErrDuplicateSlug = errors.New("event with this slug already exists")

// EventType distinguishes plain events, workshops, and seminars.
type EventType string

const (
	EventTypeEvent    EventType = "event"
	EventTypeWorkshop EventType = "workshop"
	EventTypeSeminar  EventType = "seminar"
)

// EventStatus is the lifecycle status of an event.
type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

// PaymentMethod is a mobile-money provider accepted for a paid workshop.
// "both" is only valid on an event (either provider accepted), never on a
// registration.
type PaymentMethod string

const (
	PaymentMethodBkash PaymentMethod = "bkash"
	PaymentMethodNagad PaymentMethod = "nagad"
	PaymentMethodBoth  PaymentMethod = "both"
)

// Event represents a club event, workshop, or seminar.
//
// For workshops the registration fields matter: RegistrationLimit (nil means
// unlimited), RegistrationOpen (auto-closed when the limit is reached), and
// the payment fields, which are present iff IsPaid. Attendees is a
// denormalized display counter; capacity is enforced by counting active
// registrations, never by this field.
// swagger:model Event
type Event struct {
	ID                string         `json:"id"`
	Title             string         `json:"title"`
	Slug              string         `json:"slug"`
	Description       string         `json:"description"`
	Content           string         `json:"content,omitempty"`
	Image             string         `json:"image,omitempty"`
	EventDate         time.Time      `json:"event_date"`
	EventTime         string         `json:"event_time"`
	Location          string         `json:"location"`
	Mode              string         `json:"mode"`
	EventLink         string         `json:"event_link,omitempty"`
	RegistrationLink  string         `json:"registration_link,omitempty"`
	RegistrationLimit *int           `json:"registration_limit,omitempty"`
	RegistrationOpen  bool           `json:"registration_open"`
	IsPaid            bool           `json:"is_paid"`
	RegistrationFee   *float64       `json:"registration_fee,omitempty"`
	PaymentMethod     *PaymentMethod `json:"payment_method,omitempty"`
	PaymentNumber     string         `json:"payment_number,omitempty"`
	Type              EventType      `json:"type"`
	Status            EventStatus    `json:"status"`
	Featured          bool           `json:"featured"`
	Attendees         int            `json:"attendees"`
	Tags              []string       `json:"tags,omitempty"`
	CreatedBy         string         `json:"created_by"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// EventFilter narrows event listings. Nil/empty fields are ignored.
type EventFilter struct {
	Status   *EventStatus
	Type     *EventType
	Featured *bool
	Slug     string
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	List(ctx context.Context, filter EventFilter, p PaginationParams) ([]*Event, int, error)
	Update(ctx context.Context, event *Event) error
	SetRegistrationOpen(ctx context.Context, id string, open bool) error
	IncrementAttendees(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// EventService defines the business logic for event management.
type EventService interface {
	Create(ctx context.Context, event *Event, createdBy string) (*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context, filter EventFilter, p PaginationParams) ([]*Event, int, error)
	Update(ctx context.Context, event *Event) (*Event, error)
	Delete(ctx context.Context, id string) error
}
