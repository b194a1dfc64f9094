package middleware

import (
	"log/slog"
	"strconv"

	"github.com/SscSPs/rotalivre/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

const rateLimitKey = contextKey("rateLimit")

// NewMemoryLimiter builds an in-process limiter from a formatted rate such as "5-M".
func NewMemoryLimiter(formatted string) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, err
	}
	return limiter.New(memory.NewStore(), rate), nil
}

// RateLimit creates a Gin middleware that limits requests per client IP.
// The limiter state is kept on the context for handlers that echo it.
func RateLimit(limiterInstance *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		logger := GetLoggerFromCtx(c.Request.Context())

		state, err := limiterInstance.Get(c.Request.Context(), ip)
		if err != nil {
			logger.Error("Failed to get rate limit context", slog.String("ip", ip), slog.String("error", err.Error()))
			appErr := apperrors.NewInternalServerError("Erro interno do servidor")
			c.AbortWithStatusJSON(appErr.Code, appErr)
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(state.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(state.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(state.Reset, 10))
		c.Set(string(rateLimitKey), state)

		if state.Reached {
			logger.Warn("Rate limit exceeded", slog.String("ip", ip), slog.Int64("limit", state.Limit))
			appErr := apperrors.NewTooManyRequestsError("Muitas requisições. Tente novamente mais tarde.")
			c.AbortWithStatusJSON(appErr.Code, appErr)
			return
		}

		c.Next()
	}
}

// GetRateLimitFromContext returns the limiter state recorded by RateLimit.
func GetRateLimitFromContext(c *gin.Context) (limiter.Context, bool) {
	v, exists := c.Get(string(rateLimitKey))
	if !exists {
		return limiter.Context{}, false
	}
	state, ok := v.(limiter.Context)
	return state, ok
}
