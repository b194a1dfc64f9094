package services

import (
	"context"
	"time"

	"github.com/SscSPs/rotalivre/internal/core/domain"
)

// TokenSvcFacade defines the interface for session token management.
type TokenSvcFacade interface {
	// GenerateSessionToken signs a session token for the user and returns its expiry.
	GenerateSessionToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleOAuthHandlerSvcFacade defines the interface for Google sign-in.
type GoogleOAuthHandlerSvcFacade interface {
	// Configured is false when no Google client ID is set.
	Configured() bool
	// ExchangeCodeForIDToken exchanges an authorization code and returns the ID token it carries.
	ExchangeCodeForIDToken(ctx context.Context, code string) (string, error)
	// ValidateGoogleIDToken verifies an ID token against our client ID.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*domain.GoogleIdentity, error)
}
