package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/rotalivre/internal/apperrors"
	"github.com/SscSPs/rotalivre/internal/core/domain"
	"github.com/SscSPs/rotalivre/internal/middleware"
	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Erro interno do servidor"

// ErrorResponse documents the failure envelope for swagger.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error"`
}

// respondError writes the failure envelope for err. An AppError carries its own
// status and message; anything else is logged and hidden behind a generic 500.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, appErr)
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Error("Unhandled error", slog.String("error", err.Error()))
	internal := apperrors.NewInternalServerError(internalErrorMessage)
	c.JSON(internal.Code, internal)
}

func badRequest(c *gin.Context, message string) {
	appErr := apperrors.NewBadRequestError(message)
	c.JSON(appErr.Code, appErr)
}

// setProvenance exposes where a provider-backed payload came from.
func setProvenance(c *gin.Context, prov domain.Provenance) {
	source := "live"
	if prov.Fallback {
		source = "fallback"
	}
	if prov.Provider != "" {
		c.Header("X-Data-Provider", prov.Provider)
	}
	c.Header("X-Data-Source", source)
}

// providerStatus mirrors an upstream 429 while the body keeps the success schema.
func providerStatus(prov domain.Provenance) int {
	if prov.RateLimited {
		return http.StatusTooManyRequests
	}
	return http.StatusOK
}
