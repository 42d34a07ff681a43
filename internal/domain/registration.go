package domain

import (
	"context"
	"errors"
	"time"
)

// Admission rejections. Each maps 1:1 to a fixed user-facing message at the
// HTTP boundary.
var (
	ErrRegistrationClosed    = errors.New("registration is closed for this workshop")
	ErrCapacityExceeded      = errors.New("registration limit reached")
	ErrPaymentMethodMismatch = errors.New("payment method not accepted for this workshop")
	ErrDuplicateRegistration = errors.New("already registered for this workshop")
)

// PaymentStatus is the verification state of a registration's payment.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// RegistrationStatus is the lifecycle status of a workshop registration.
// Pending and confirmed registrations hold a capacity slot; cancelled ones
// do not.
type RegistrationStatus string

const (
	RegistrationStatusPending   RegistrationStatus = "pending"
	RegistrationStatusConfirmed RegistrationStatus = "confirmed"
	RegistrationStatusCancelled RegistrationStatus = "cancelled"
)

// WorkshopRegistration represents one registrant's slot in a workshop,
// unique per (workshop, lower-cased email).
//
// IsPaid is snapshotted from the workshop at admission and is not kept in
// sync with later workshop edits. For free workshops PaymentStatus is fixed
// at "paid" so the payment gate never blocks confirmation.
// swagger:model WorkshopRegistration
type WorkshopRegistration struct {
	ID                string             `json:"id"`
	WorkshopID        string             `json:"workshop_id"`
	Name              string             `json:"name"`
	Email             string             `json:"email"`
	Phone             string             `json:"phone"`
	StudentID         string             `json:"student_id,omitempty"`
	Department        string             `json:"department,omitempty"`
	Batch             string             `json:"batch,omitempty"`
	Message           string             `json:"message,omitempty"`
	IsPaid            bool               `json:"is_paid"`
	PaymentStatus     PaymentStatus      `json:"payment_status"`
	PaymentMethod     *PaymentMethod     `json:"payment_method,omitempty"`
	PaymentNumber     string             `json:"payment_number,omitempty"`
	TransactionID     string             `json:"transaction_id,omitempty"`
	PaymentApprovedBy *string            `json:"payment_approved_by,omitempty"`
	PaymentApprovedAt *time.Time         `json:"payment_approved_at,omitempty"`
	Status            RegistrationStatus `json:"status"`
	RegisteredAt      time.Time          `json:"registered_at"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// RegistrationRequest is the registrant payload submitted on the public
// registration form. Payment fields are required only for paid workshops.
type RegistrationRequest struct {
	Name          string
	Email         string
	Phone         string
	StudentID     string
	Department    string
	Batch         string
	Message       string
	PaymentMethod *PaymentMethod
	PaymentNumber string
	TransactionID string
}

// RegistrationFilter narrows registration listings. Nil fields are ignored.
type RegistrationFilter struct {
	Status        *RegistrationStatus
	PaymentStatus *PaymentStatus
}

// RegistrationUpdate carries an admin's partial update of a registration.
// Nil fields are left untouched.
type RegistrationUpdate struct {
	PaymentStatus *PaymentStatus
	Status        *RegistrationStatus
}

// RegistrationList is the admin listing of a workshop's registrations.
// Total counts the rows matching the filter; PendingPayments counts paid
// registrations awaiting verification regardless of the filter.
type RegistrationList struct {
	Registrations   []*WorkshopRegistration `json:"registrations"`
	Total           int                     `json:"total"`
	PendingPayments int                     `json:"pending_payments"`
}

// WorkshopRegistrationRepository defines storage for workshop registrations.
// Create must translate the store's unique-violation on
// (workshop_id, email) into ErrDuplicateRegistration so races lost at the
// index surface the same way as the advisory pre-check.
type WorkshopRegistrationRepository interface {
	Create(ctx context.Context, reg *WorkshopRegistration) error
	GetByID(ctx context.Context, id string) (*WorkshopRegistration, error)
	GetByWorkshopAndEmail(ctx context.Context, workshopID, email string) (*WorkshopRegistration, error)
	// CountActive counts registrations holding a slot (status pending or confirmed).
	CountActive(ctx context.Context, workshopID string) (int, error)
	ListByWorkshop(ctx context.Context, workshopID string, filter RegistrationFilter) ([]*WorkshopRegistration, error)
	CountByWorkshop(ctx context.Context, workshopID string, filter RegistrationFilter) (int, error)
	CountPendingPayments(ctx context.Context, workshopID string) (int, error)
	Update(ctx context.Context, id string, update RegistrationUpdate, approvedBy *string, approvedAt *time.Time) (*WorkshopRegistration, error)
	Delete(ctx context.Context, id string) error
}

// WorkshopService defines the registration business logic: public admission,
// admin payment/status transitions, and the admin reporting surface.
type WorkshopService interface {
	// Register admits a registrant into the workshop, enforcing open/closed
	// state, payment requirements, capacity, and uniqueness, in that order.
	Register(ctx context.Context, workshopID string, req *RegistrationRequest) (*WorkshopRegistration, error)
	ListRegistrations(ctx context.Context, workshopID string, filter RegistrationFilter) (*RegistrationList, error)
	// UpdateRegistration applies an admin payment/status transition.
	// Approving a payment stamps the approver and confirms the registration.
	UpdateRegistration(ctx context.Context, registrationID string, update RegistrationUpdate, approverID string) (*WorkshopRegistration, error)
	DeleteRegistration(ctx context.Context, registrationID string) error
}
