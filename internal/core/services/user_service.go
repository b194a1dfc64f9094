package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/rotalivre/internal/apperrors"
	"github.com/SscSPs/rotalivre/internal/core/domain"
	portsrepo "github.com/SscSPs/rotalivre/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rotalivre/internal/core/ports/services"
	"github.com/SscSPs/rotalivre/internal/dto"
	"github.com/SscSPs/rotalivre/internal/utils"
	"github.com/jonboulle/clockwork"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

// MaxPasswordLength is the bcrypt input limit in bytes.
const MaxPasswordLength = 72

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	clock    clockwork.Clock
}

// NewUserService creates a new user service. A nil clock uses the real one.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, clock clockwork.Clock) portssvc.UserSvcFacade {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &userService{userRepo: userRepo, clock: clock}
}

// NormalizeEmail trims and lower-cases an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	name := strings.TrimSpace(req.Name)
	email := NormalizeEmail(req.Email)
	phone := strings.TrimSpace(req.Phone)
	if name == "" || email == "" || phone == "" || req.Password == "" {
		return nil, apperrors.NewBadRequestError("Todos os campos são obrigatórios")
	}
	if len(req.Password) < MinPasswordLength {
		return nil, apperrors.NewBadRequestError("Senha deve ter pelo menos 6 caracteres")
	}
	if len(req.Password) > MaxPasswordLength {
		return nil, apperrors.NewBadRequestError("Senha deve ter no máximo 72 caracteres")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: &hash,
		CreatedAt:    s.clock.Now().UTC(),
	}
	id, err := s.userRepo.SaveUser(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogWarn(ctx, "Registration with an email already in use", slog.String("email", email))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("email", email))
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	user.ID = id

	s.LogInfo(ctx, "User registered", slog.Int64("user_id", id))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return user, nil
}

// AuthenticateUser returns apperrors.ErrNotFound for an unknown email and
// apperrors.ErrUnauthorized for a wrong password or a Google-only account.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperrors.NewBadRequestError("Email e senha são obrigatórios")
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !user.HasPassword() || !utils.CheckPasswordHash(password, *user.PasswordHash) {
		s.LogWarn(ctx, "Password mismatch", slog.Int64("user_id", user.ID))
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// FindOrCreateGoogleUser reuses an existing account with the same email,
// password-based or not, and never inserts a second row for it.
func (s *userService) FindOrCreateGoogleUser(ctx context.Context, identity domain.GoogleIdentity) (*domain.User, error) {
	email := NormalizeEmail(identity.Email)
	if email == "" {
		return nil, fmt.Errorf("google identity has no email: %w", apperrors.ErrUnauthorized)
	}

	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up google user: %w", err)
	}

	name := strings.TrimSpace(identity.Name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	subject := identity.Subject
	user := domain.User{
		Name:      name,
		Email:     email,
		GoogleID:  &subject,
		CreatedAt: s.clock.Now().UTC(),
	}
	id, err := s.userRepo.SaveUser(ctx, user)
	if errors.Is(err, apperrors.ErrDuplicate) {
		// Lost a race with a concurrent first sign-in for the same email.
		return s.userRepo.FindUserByEmail(ctx, email)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create google user: %w", err)
	}
	user.ID = id

	s.LogInfo(ctx, "User created from Google sign-in", slog.Int64("user_id", id))
	return &user, nil
}
