package handlers

import (
	"strings"

	"github.com/SscSPs/rotalivre/internal/core/domain"
	portssvc "github.com/SscSPs/rotalivre/internal/core/ports/services"
	"github.com/SscSPs/rotalivre/internal/dto"
	"github.com/gin-gonic/gin"
)

type geocodeHandler struct {
	geocodeService portssvc.GeocodeSvcFacade
}

func registerGeocodeRoutes(rg *gin.RouterGroup, svcs *portssvc.ServiceContainer) {
	h := &geocodeHandler{geocodeService: svcs.Geocode}

	geocode := rg.Group("/geocode")
	{
		geocode.GET("/reverse", h.reverse)
		geocode.GET("/search", h.search)
	}
}

// reverse godoc
// @Summary Reverse geocode
// @Description Resolves a point to an address. When the provider rate limits us the fallback answer is sent with status 429.
// @Tags geocode
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} dto.ReverseGeocodeResponse
// @Success 429 {object} dto.ReverseGeocodeResponse "Fallback answer while rate limited"
// @Failure 400 {object} ErrorResponse
// @Router /geocode/reverse [get]
func (h *geocodeHandler) reverse(c *gin.Context) {
	var params dto.CoordinatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, coordinatesRequiredMessage)
		return
	}

	loc, prov, err := h.geocodeService.Reverse(c.Request.Context(), *params.Lat, *params.Lon)
	if err != nil {
		respondError(c, err)
		return
	}

	setProvenance(c, prov)
	c.JSON(providerStatus(prov), dto.ReverseGeocodeResponse{
		Success:   true,
		Data:      *loc,
		Formatted: loc.ShortAddress(),
		CityState: loc.CityState(),
	})
}

// search godoc
// @Summary Forward geocode
// @Description Geocodes free text. With lat and lon every result carries its distance and results are nearest first.
// @Tags geocode
// @Produce json
// @Param q query string true "Text to geocode"
// @Param limit query int false "1-20" default(5)
// @Param lat query number false "Origin latitude"
// @Param lon query number false "Origin longitude"
// @Success 200 {object} dto.GeocodeSearchResponse
// @Success 429 {object} dto.GeocodeSearchResponse "Fallback answer while rate limited"
// @Failure 400 {object} ErrorResponse
// @Router /geocode/search [get]
func (h *geocodeHandler) search(c *gin.Context) {
	var params dto.GeocodeSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "Parâmetro q é obrigatório")
		return
	}

	var origin *domain.Coordinates
	if params.Lat != nil && params.Lon != nil {
		origin = &domain.Coordinates{Lat: *params.Lat, Lng: *params.Lon}
	}
	query := strings.TrimSpace(params.Query)

	locations, prov, err := h.geocodeService.Search(c.Request.Context(), query, params.Limit, origin)
	if err != nil {
		respondError(c, err)
		return
	}

	setProvenance(c, prov)
	c.JSON(providerStatus(prov), dto.GeocodeSearchResponse{Success: true, Data: locations, Query: query})
}
