package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/rotalivre/internal/apperrors"
	"github.com/SscSPs/rotalivre/internal/core/domain"
	portssvc "github.com/SscSPs/rotalivre/internal/core/ports/services"
	"github.com/SscSPs/rotalivre/internal/dto"
	"github.com/SscSPs/rotalivre/internal/middleware"
	"github.com/SscSPs/rotalivre/internal/platform/config"
	"github.com/SscSPs/rotalivre/internal/utils"
	"github.com/gin-gonic/gin"
)

// sessionCookieMaxAge is seven days in seconds.
const sessionCookieMaxAge = 7 * 24 * 60 * 60

// authHandler handles sign-up, sign-in and session inspection.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	cfg          *config.Config
	analytics    *utils.PosthogClientWrapper
}

func newAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade, cfg *config.Config, analytics *utils.PosthogClientWrapper) *authHandler {
	return &authHandler{userService: us, tokenService: ts, cfg: cfg, analytics: analytics}
}

// registerAuthRoutes sets up the routes for authentication. limit guards the
// credential endpoints.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer, analytics *utils.PosthogClientWrapper, limit gin.HandlerFunc) {
	h := newAuthHandler(services.User, services.TokenService, cfg, analytics)
	g := newGoogleOAuthHandler(services.GoogleOAuthHandler, services.User, h)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", limit, h.register)
		auth.POST("/login", limit, h.login)
		auth.POST("/google", limit, g.signIn)
		auth.GET("/me", middleware.AuthMiddleware(cfg.JWTSecret, cfg.AuthCookieName), h.me)
		auth.POST("/logout", h.logout)
	}
}

// register godoc
// @Summary Register new user
// @Description Creates an account and starts a session.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already in use"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind register request", slog.String("error", err.Error()))
		badRequest(c, "Todos os campos são obrigatórios")
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			appErr := apperrors.NewConflictError("Email já está em uso")
			c.JSON(appErr.Code, appErr)
			return
		}
		respondError(c, err)
		return
	}

	middleware.TrackEvent(c, h.analytics, user.ID, "user_registered", nil)
	h.startSession(c, user)
}

// login godoc
// @Summary User login
// @Description Authenticates with email and password and starts a session.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Email e senha são obrigatórios")
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var appErr *apperrors.AppError
		switch {
		case errors.As(err, &appErr):
			c.JSON(appErr.Code, appErr)
		case errors.Is(err, apperrors.ErrNotFound):
			unauthorized := apperrors.NewUnauthorizedError("Usuário não encontrado")
			c.JSON(unauthorized.Code, unauthorized)
		case errors.Is(err, apperrors.ErrUnauthorized):
			unauthorized := apperrors.NewUnauthorizedError("Senha incorreta")
			c.JSON(unauthorized.Code, unauthorized)
		default:
			respondError(c, err)
		}
		return
	}

	middleware.TrackEvent(c, h.analytics, user.ID, "user_logged_in", map[string]any{"method": "password"})
	h.startSession(c, user)
}

// me godoc
// @Summary Current user
// @Description Returns the user bound to the session cookie or bearer token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MeResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		appErr := apperrors.NewUnauthorizedError("No token provided")
		c.JSON(appErr.Code, appErr)
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			appErr := apperrors.NewNotFoundError("User not found")
			c.JSON(appErr.Code, appErr)
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MeResponse{Success: true, User: dto.ToUserResponse(user)})
}

// logout godoc
// @Summary Log out
// @Description Clears the session cookie. Issued tokens stay valid until they expire.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Logout realizado com sucesso"})
}

// startSession signs a token, sets the cookie and writes the auth response.
func (h *authHandler) startSession(c *gin.Context, user *domain.User) {
	token, _, err := h.tokenService.GenerateSessionToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}
	h.setSessionCookie(c, token, sessionCookieMaxAge)
	c.JSON(http.StatusOK, dto.AuthResponse{Success: true, User: dto.ToUserResponse(user), Token: token})
}

func (h *authHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.AuthCookieName, value, maxAge, "/", "", h.cfg.IsProduction, true)
}
