package handlers

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/rotalivre/internal/apperrors"
	portssvc "github.com/SscSPs/rotalivre/internal/core/ports/services"
	"github.com/SscSPs/rotalivre/internal/dto"
	"github.com/SscSPs/rotalivre/internal/middleware"
	"github.com/gin-gonic/gin"
)

// googleOAuthHandler signs users in with a Google ID token or an
// authorization code exchanged for one.
type googleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
	sessions           *authHandler
}

func newGoogleOAuthHandler(gs portssvc.GoogleOAuthHandlerSvcFacade, us portssvc.UserSvcFacade, sessions *authHandler) *googleOAuthHandler {
	return &googleOAuthHandler{googleOAuthService: gs, userService: us, sessions: sessions}
}

// signIn godoc
// @Summary Sign in with Google
// @Description Validates a Google ID token (credential) or exchanges an authorization code, then finds or creates the user.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.GoogleLoginRequest true "Google credential or code"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Google sign-in not configured"
// @Failure 500 {object} ErrorResponse
// @Router /auth/google [post]
func (h *googleOAuthHandler) signIn(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Credencial do Google é obrigatória")
		return
	}
	req.Credential = strings.TrimSpace(req.Credential)
	req.Code = strings.TrimSpace(req.Code)
	if req.Credential == "" && req.Code == "" {
		badRequest(c, "Credencial do Google é obrigatória")
		return
	}
	if !h.googleOAuthService.Configured() {
		h.fail(c, apperrors.ErrNotConfigured)
		return
	}

	idToken := req.Credential
	if idToken == "" {
		var err error
		idToken, err = h.googleOAuthService.ExchangeCodeForIDToken(ctx, req.Code)
		if err != nil {
			logger.Warn("Failed to exchange Google authorization code", slog.String("error", err.Error()))
			h.fail(c, err)
			return
		}
	}

	identity, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idToken)
	if err != nil {
		logger.Warn("Google ID token rejected", slog.String("error", err.Error()))
		h.fail(c, err)
		return
	}

	user, err := h.userService.FindOrCreateGoogleUser(ctx, *identity)
	if err != nil {
		logger.Error("Failed to find or create Google user", slog.String("error", err.Error()))
		h.fail(c, err)
		return
	}

	middleware.TrackEvent(c, h.sessions.analytics, user.ID, "user_logged_in", map[string]any{"method": "google"})
	h.sessions.startSession(c, user)
}

func (h *googleOAuthHandler) fail(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrNotConfigured):
		appErr = apperrors.NewServiceUnavailableError("Login com Google não está configurado")
	case errors.Is(err, apperrors.ErrUnauthorized):
		appErr = apperrors.NewUnauthorizedError("Credencial do Google inválida")
	default:
		appErr = apperrors.NewInternalServerError("Erro na autenticação com Google")
	}
	c.JSON(appErr.Code, appErr)
}
