package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/rotalivre/internal/apperrors"
	"github.com/SscSPs/rotalivre/internal/core/domain"
	portssvc "github.com/SscSPs/rotalivre/internal/core/ports/services"
	"github.com/SscSPs/rotalivre/internal/platform/config"
	"github.com/SscSPs/rotalivre/internal/utils"
	"github.com/jonboulle/clockwork"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// tokenService signs session tokens with the configured secret and lifetime.
type tokenService struct {
	cfg   *config.Config
	clock clockwork.Clock
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, clock clockwork.Clock) portssvc.TokenSvcFacade {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &tokenService{cfg: cfg, clock: clock}
}

// GenerateSessionToken creates a new session token for the given user.
func (s *tokenService) GenerateSessionToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	token, expiresAt, err := utils.GenerateJWT(user.ID, user.Email, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer, s.clock.Now())
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, expiresAt, nil
}

// --- GoogleOAuthHandlerSvcFacade Implementation ---

// IDTokenValidator verifies a Google ID token for an audience.
type IDTokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// GoogleOAuthOption customises the Google sign-in service.
type GoogleOAuthOption func(*googleOAuthHandlerService)

// WithIDTokenValidator replaces the network-backed idtoken.Validate.
func WithIDTokenValidator(v IDTokenValidator) GoogleOAuthOption {
	return func(s *googleOAuthHandlerService) {
		s.validate = v
	}
}

// googleOAuthHandlerService implements the GoogleOAuthHandlerSvcFacade.
type googleOAuthHandlerService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
	validate     IDTokenValidator
}

// NewGoogleOAuthHandlerService creates a new instance of googleOAuthHandlerService.
func NewGoogleOAuthHandlerService(cfg *config.Config, opts ...GoogleOAuthOption) portssvc.GoogleOAuthHandlerSvcFacade {
	s := &googleOAuthHandlerService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		validate: idtoken.Validate,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *googleOAuthHandlerService) Configured() bool {
	return s.cfg.GoogleClientID != ""
}

// ExchangeCodeForIDToken exchanges an OAuth authorization code and extracts the ID token.
func (s *googleOAuthHandlerService) ExchangeCodeForIDToken(ctx context.Context, code string) (string, error) {
	if !s.Configured() || s.cfg.GoogleClientSecret == "" {
		return "", apperrors.ErrNotConfigured
	}
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("failed to exchange oauth code for token: %w", apperrors.ErrUnauthorized)
	}
	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		return "", fmt.Errorf("token response carried no id_token: %w", apperrors.ErrUnauthorized)
	}
	return idToken, nil
}

// ValidateGoogleIDToken validates an ID token and returns the verified identity.
// Tokens whose email Google has not verified are rejected.
func (s *googleOAuthHandlerService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*domain.GoogleIdentity, error) {
	if !s.Configured() {
		return nil, apperrors.ErrNotConfigured
	}

	payload, err := s.validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %v: %w", err, apperrors.ErrUnauthorized)
	}

	identity := &domain.GoogleIdentity{Subject: payload.Subject}
	if v, ok := payload.Claims["email"].(string); ok {
		identity.Email = v
	}
	if v, ok := payload.Claims["name"].(string); ok {
		identity.Name = v
	}
	if v, ok := payload.Claims["email_verified"].(bool); ok {
		identity.EmailVerified = v
	}
	if identity.Email == "" || !identity.EmailVerified {
		return nil, fmt.Errorf("google account email missing or unverified: %w", apperrors.ErrUnauthorized)
	}
	return identity, nil
}
