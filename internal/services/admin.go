package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"roboticsclub/internal/domain"
)

type authService struct {
	adminRepo domain.AdminRepository
	hasher    domain.PasswordHasher
	issuer    domain.TokenIssuer
	expiry    time.Duration
}

func NewAuthService(
	adminRepo domain.AdminRepository,
	hasher domain.PasswordHasher,
	issuer domain.TokenIssuer,
	expiry time.Duration,
) domain.AuthService {
	return &authService{
		adminRepo: adminRepo,
		hasher:    hasher,
		issuer:    issuer,
		expiry:    expiry,
	}
}

// Login verifies credentials and returns a signed token. Unknown emails,
// wrong passwords, and deactivated accounts all produce the same error so the
// response never reveals which check failed.
func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get admin: %w", err)
	}
	if !admin.IsActive {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(admin.PasswordHash, password); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(admin.ID, admin.Email, string(admin.Role), s.expiry)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	now := time.Now()
	if err := s.adminRepo.UpdateLastLogin(ctx, admin.ID, now); err != nil {
		log.Printf("[AUTH] failed to update last login for %s: %v", admin.ID, err)
	} else {
		admin.LastLogin = &now
	}

	return token, admin, nil
}
