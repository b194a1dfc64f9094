package handlers

import (
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/rotalivre/internal/core/ports/services"
	"github.com/SscSPs/rotalivre/internal/dto"
	"github.com/SscSPs/rotalivre/internal/utils/geo"
	"github.com/gin-gonic/gin"
)

type mapsHandler struct {
	placesService portssvc.PlacesSvcFacade
}

func registerMapsRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &mapsHandler{placesService: services.Places}
	rg.GET("/maps", h.nearbyPlaces)
}

// nearbyPlaces godoc
// @Summary Places for the map view
// @Description Up to ten rider-relevant places within 5 km, nearest first.
// @Tags maps
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param query query string false "What to look for, e.g. posto or oficina"
// @Success 200 {object} dto.MapsResponse
// @Failure 400 {object} ErrorResponse
// @Router /maps [get]
func (h *mapsHandler) nearbyPlaces(c *gin.Context) {
	var params dto.MapsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, coordinatesRequiredMessage)
		return
	}
	if !geo.ValidCoordinates(*params.Lat, *params.Lon) {
		badRequest(c, "Coordenadas inválidas")
		return
	}

	result := h.placesService.FindNearby(c.Request.Context(), *params.Lat, *params.Lon, strings.TrimSpace(params.Query))
	setProvenance(c, result.Provenance)
	c.JSON(http.StatusOK, dto.ToMapsResponse(result))
}
