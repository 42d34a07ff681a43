package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateStudentID is returned when an application with the same student
// ID already exists.
var ErrDuplicateStudentID = errors.New("application with this student ID already exists")

// ApplicationStatus is the review state of a membership application.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// ApplicationPaymentStatus is the verification state of the membership fee.
type ApplicationPaymentStatus string

const (
	ApplicationPaymentPending  ApplicationPaymentStatus = "pending"
	ApplicationPaymentVerified ApplicationPaymentStatus = "verified"
	ApplicationPaymentRejected ApplicationPaymentStatus = "rejected"
)

// MemberApplication is a prospective member's join request. Membership always
// carries a fee, so payment fields are required at submission; studentID is
// unique across applications.
// swagger:model MemberApplication
type MemberApplication struct {
	ID                 string                   `json:"id"`
	Name               string                   `json:"name"`
	StudentID          string                   `json:"student_id"`
	Email              string                   `json:"email"`
	Phone              string                   `json:"phone"`
	Department         string                   `json:"department"`
	Batch              string                   `json:"batch"`
	CurrentYear        string                   `json:"current_year"`
	CGPA               string                   `json:"cgpa,omitempty"`
	PreviousExperience string                   `json:"previous_experience,omitempty"`
	WhyJoin            string                   `json:"why_join"`
	Skills             []string                 `json:"skills,omitempty"`
	Portfolio          string                   `json:"portfolio,omitempty"`
	LinkedIn           string                   `json:"linkedin,omitempty"`
	GitHub             string                   `json:"github,omitempty"`
	PaymentNumber      string                   `json:"payment_number"`
	PaymentMethod      string                   `json:"payment_method"`
	TransactionID      string                   `json:"transaction_id"`
	PaymentStatus      ApplicationPaymentStatus `json:"payment_status"`
	Status             ApplicationStatus        `json:"status"`
	ReviewedBy         *string                  `json:"reviewed_by,omitempty"`
	ReviewedAt         *time.Time               `json:"reviewed_at,omitempty"`
	CreatedAt          time.Time                `json:"created_at"`
	UpdatedAt          time.Time                `json:"updated_at"`
}

// ApplicationFilter narrows application listings. Search matches name, email,
// or student ID, case-insensitively.
type ApplicationFilter struct {
	Status *ApplicationStatus
	Search string
}

// ApplicationReview carries an admin's review decision. Nil fields are left
// untouched.
type ApplicationReview struct {
	Status        *ApplicationStatus
	PaymentStatus *ApplicationPaymentStatus
}

// MemberApplicationRepository defines storage for membership applications.
// Create must translate the unique-violation on student_id into
// ErrDuplicateStudentID.
type MemberApplicationRepository interface {
	Create(ctx context.Context, app *MemberApplication) error
	GetByID(ctx context.Context, id string) (*MemberApplication, error)
	List(ctx context.Context, filter ApplicationFilter, p PaginationParams) ([]*MemberApplication, int, error)
	Review(ctx context.Context, id string, review ApplicationReview, reviewedBy string, reviewedAt time.Time) (*MemberApplication, error)
	Delete(ctx context.Context, id string) error
}

// MemberService defines the membership application business logic.
type MemberService interface {
	Apply(ctx context.Context, app *MemberApplication) (*MemberApplication, error)
	GetByID(ctx context.Context, id string) (*MemberApplication, error)
	List(ctx context.Context, filter ApplicationFilter, p PaginationParams) ([]*MemberApplication, int, error)
	Review(ctx context.Context, id string, review ApplicationReview, reviewerID string) (*MemberApplication, error)
	Delete(ctx context.Context, id string) error
}
