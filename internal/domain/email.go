package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// RegistrationReceivedEmailData holds data for the registration
// acknowledgement email.
type RegistrationReceivedEmailData struct {
	Email         string
	Name          string
	WorkshopTitle string
	IsPaid        bool
}

// PaymentApprovedEmailData holds data for the payment confirmation email.
type PaymentApprovedEmailData struct {
	Email         string
	Name          string
	WorkshopTitle string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendRegistrationReceived(ctx context.Context, data *RegistrationReceivedEmailData) error
	SendPaymentApproved(ctx context.Context, data *PaymentApprovedEmailData) error
}
