package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/rotalivre/internal/apperrors"
	"github.com/SscSPs/rotalivre/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionToken extracts the session token from the auth cookie, falling back
// to an "Authorization: Bearer" header for non-browser clients.
func SessionToken(c *gin.Context, cookieName string) string {
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		return token
	}
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// AuthMiddleware creates a Gin middleware handler that validates session tokens.
func AuthMiddleware(jwtSecret string, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString := SessionToken(c, cookieName)
		if tokenString == "" {
			logger.Warn("Session token missing")
			appErr := apperrors.NewUnauthorizedError("No token provided")
			c.AbortWithStatusJSON(appErr.Code, appErr)
			return
		}

		claims, err := utils.ParseAndValidateJWT(tokenString, jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.NewUnauthorizedError(msg))
			return
		}

		ctxWithUser := context.WithValue(c.Request.Context(), userIDKey, claims.UserID)
		enrichedLogger := logger.With(slog.String("user_id", strconv.FormatInt(claims.UserID, 10)))
		c.Request = c.Request.WithContext(WithLogger(ctxWithUser, enrichedLogger))

		c.Set(string(userIDKey), claims.UserID)
		c.Set(string(userEmailKey), claims.Email)
		c.Set(string(loggerCtxKey), enrichedLogger)

		c.Next()
	}
}

// OptionalAuthMiddleware attaches the session user when a valid token is
// present and otherwise lets the request through anonymously.
func OptionalAuthMiddleware(jwtSecret string, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := SessionToken(c, cookieName)
		if tokenString == "" {
			c.Next()
			return
		}
		claims, err := utils.ParseAndValidateJWT(tokenString, jwtSecret)
		if err != nil {
			c.Next()
			return
		}
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), userIDKey, claims.UserID))
		c.Set(string(userIDKey), claims.UserID)
		c.Set(string(userEmailKey), claims.Email)
		c.Next()
	}
}
