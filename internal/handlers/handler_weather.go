package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/rotalivre/internal/core/ports/services"
	"github.com/SscSPs/rotalivre/internal/dto"
	"github.com/SscSPs/rotalivre/internal/utils/geo"
	"github.com/gin-gonic/gin"
)

const coordinatesRequiredMessage = "Latitude and longitude required"

type weatherHandler struct {
	weatherService portssvc.WeatherSvcFacade
}

func registerWeatherRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &weatherHandler{weatherService: services.Weather}
	rg.GET("/weather", h.getWeather)
}

// getWeather godoc
// @Summary Current weather and forecast
// @Description Current conditions plus a daily forecast. Served from a mock, flagged by X-Data-Source, when the provider is unavailable.
// @Tags weather
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} dto.WeatherResponse
// @Failure 400 {object} ErrorResponse
// @Router /weather [get]
func (h *weatherHandler) getWeather(c *gin.Context) {
	var params dto.CoordinatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, coordinatesRequiredMessage)
		return
	}
	if !geo.ValidCoordinates(*params.Lat, *params.Lon) {
		badRequest(c, "Coordenadas inválidas")
		return
	}

	snapshot, prov := h.weatherService.GetWeather(c.Request.Context(), *params.Lat, *params.Lon)
	setProvenance(c, prov)
	c.JSON(http.StatusOK, dto.ToWeatherResponse(snapshot))
}
