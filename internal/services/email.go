package services

import (
	"context"
	"fmt"

	"roboticsclub/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{
		mailer:   mailer,
		renderer: renderer,
	}
}

func (s *emailService) SendRegistrationReceived(ctx context.Context, data *domain.RegistrationReceivedEmailData) error {
	subject, html, text, err := s.renderer.Render("registration_received", data)
	if err != nil {
		return fmt.Errorf("render registration email: %w", err)
	}
	return s.mailer.Send(data.Email, subject, html, text)
}

func (s *emailService) SendPaymentApproved(ctx context.Context, data *domain.PaymentApprovedEmailData) error {
	subject, html, text, err := s.renderer.Render("payment_approved", data)
	if err != nil {
		return fmt.Errorf("render approval email: %w", err)
	}
	return s.mailer.Send(data.Email, subject, html, text)
}
