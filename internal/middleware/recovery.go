package middleware

import (
	"log/slog"

	"github.com/SscSPs/rotalivre/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into the generic 500 envelope and logs the cause.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		GetLoggerFromCtx(c.Request.Context()).Error("Recovered from panic", slog.Any("panic", recovered))
		appErr := apperrors.NewInternalServerError("Erro interno do servidor")
		c.AbortWithStatusJSON(appErr.Code, appErr)
	})
}
