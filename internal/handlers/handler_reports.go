package handlers

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/SscSPs/rotalivre/internal/core/domain"
	portssvc "github.com/SscSPs/rotalivre/internal/core/ports/services"
	"github.com/SscSPs/rotalivre/internal/dto"
	"github.com/SscSPs/rotalivre/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	reportStoredMessage = "Report submitted successfully"
	reportDemoMessage   = "Report received (demo mode)"
)

type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

func newReportHandler(rs portssvc.ReportSvcFacade) *reportHandler {
	return &reportHandler{reportService: rs}
}

func registerReportRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newReportHandler(services.Report)

	reports := rg.Group("/reports")
	{
		reports.GET("", h.listReports)
		reports.POST("", h.createReport)
	}
}

// listReports godoc
// @Summary Nearby weather reports
// @Description Lists community reports from the last two hours around a point. Never fails; unparsable parameters fall back to defaults.
// @Tags reports
// @Produce json
// @Param lat query number false "Latitude" default(0)
// @Param lon query number false "Longitude" default(0)
// @Param radius query number false "Radius in km" default(10)
// @Success 200 {object} dto.ListReportsResponse
// @Router /reports [get]
func (h *reportHandler) listReports(c *gin.Context) {
	var params dto.ListReportsParams
	_ = c.ShouldBindQuery(&params)

	lat := parseFloatOr(params.Lat, 0)
	lon := parseFloatOr(params.Lon, 0)
	radius := parseFloatOr(params.Radius, domain.DefaultReportRadiusKm)

	reports, prov := h.reportService.NearbyReports(c.Request.Context(), lat, lon, radius)
	if reports == nil {
		reports = []domain.WeatherReport{}
	}
	setProvenance(c, prov)
	c.JSON(http.StatusOK, dto.ListReportsResponse{Success: true, Reports: reports})
}

// createReport godoc
// @Summary Submit a weather report
// @Description Stores a report that expires two hours later. Answers in demo mode when the store is down.
// @Tags reports
// @Accept json
// @Produce json
// @Param report body dto.CreateReportRequest true "Report"
// @Success 200 {object} dto.CreateReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports [post]
func (h *reportHandler) createReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Rejected report", slog.String("error", err.Error()))
		badRequest(c, reportBindingMessage(err))
		return
	}

	receipt, err := h.reportService.SubmitReport(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	message := reportStoredMessage
	if receipt.Demo {
		message = reportDemoMessage
	}
	c.JSON(http.StatusOK, dto.CreateReportResponse{Success: true, ID: receipt.ID, Message: message})
}

func reportBindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Missing required fields"
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return "Missing required fields"
		}
	}
	switch verrs[0].Field() {
	case "WeatherType":
		return "Invalid weather_type"
	case "Intensity":
		return "Intensity must be between 1 and 3"
	case "Description":
		return "Description too long"
	default:
		return "Invalid coordinates"
	}
}

func parseFloatOr(raw string, def float64) float64 {
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}
