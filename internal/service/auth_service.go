package service

import (
	"context"
	"fmt"
	"strings"

	"losmecanics_booking/internal/model"
	"losmecanics_booking/internal/utils"

	"github.com/google/uuid"
)

// IdentityVerifier checks credentials before a session is issued. The
// shipped implementation is a mock that accepts everything; a real
// credential backend can be substituted without touching the router or
// the appointment store.
type IdentityVerifier interface {
	Verify(ctx context.Context, email, password string) error
}

// AllowAllVerifier accepts any email/password pair. The password is never
// inspected.
type AllowAllVerifier struct{}

func (AllowAllVerifier) Verify(_ context.Context, _, _ string) error { return nil }

// AuthService resolves a login or signup into a session and a token
type AuthService interface {
	Resolve(ctx context.Context, email, password string, isSignup bool, name string) (*model.Session, string, error)
}

type authService struct {
	verifier   IdentityVerifier
	jwtUtil    *utils.JWTUtil
	adminEmail string
}

// NewAuthService creates a new AuthService. adminEmail is the single
// reserved administrator address; every other email resolves to a regular
// user.
func NewAuthService(verifier IdentityVerifier, jwtUtil *utils.JWTUtil, adminEmail string) AuthService {
	return &authService{
		verifier:   verifier,
		jwtUtil:    jwtUtil,
		adminEmail: adminEmail,
	}
}

// Resolve derives a session identity from the login form. Logging in again
// simply issues a new token, silently switching identity; there is no
// check for an already-active session.
func (s *authService) Resolve(ctx context.Context, email, password string, isSignup bool, name string) (*model.Session, string, error) {
	if err := s.verifier.Verify(ctx, email, password); err != nil {
		return nil, "", fmt.Errorf("credential verification failed: %w", err)
	}

	session := &model.Session{
		Email: email,
		Name:  name,
		Role:  model.RoleUser,
	}

	if email == s.adminEmail {
		session.ID = "admin"
		session.Role = model.RoleAdmin
	} else {
		session.ID = uuid.NewString()
	}

	if session.Name == "" {
		// Display name falls back to the local part of the email.
		session.Name = email
		if at := strings.Index(email, "@"); at >= 0 {
			session.Name = email[:at]
		}
	}

	token, err := s.jwtUtil.GenerateToken(session)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return session, token, nil
}
