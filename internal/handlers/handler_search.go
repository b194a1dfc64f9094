package handlers

import (
	"errors"
	"io"
	"math"
	"net/http"
	"strings"

	"github.com/SscSPs/rotalivre/internal/core/domain"
	portssvc "github.com/SscSPs/rotalivre/internal/core/ports/services"
	"github.com/SscSPs/rotalivre/internal/core/services"
	"github.com/SscSPs/rotalivre/internal/dto"
	"github.com/SscSPs/rotalivre/internal/middleware"
	"github.com/SscSPs/rotalivre/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type searchHandler struct {
	searchService portssvc.SearchSvcFacade
}

func newSearchHandler(ss portssvc.SearchSvcFacade) *searchHandler {
	return &searchHandler{searchService: ss}
}

// registerSearchRoutes sets up place search. limit guards the routes that reach
// upstream providers.
func registerSearchRoutes(rg *gin.RouterGroup, cfg *config.Config, svcs *portssvc.ServiceContainer, limit gin.HandlerFunc) {
	h := newSearchHandler(svcs.Search)
	authed := middleware.AuthMiddleware(cfg.JWTSecret, cfg.AuthCookieName)

	search := rg.Group("/search")
	{
		search.GET("", limit, h.search)
		search.GET("/category/:category", limit, h.searchByCategory)
		search.GET("/autocomplete", limit, h.autocomplete)
		search.GET("/categories", h.categories)
		search.GET("/stats", authed, h.cacheStats)
		search.POST("/cache/clear", authed, h.clearCache)
	}
}

// search godoc
// @Summary Search places
// @Description Aggregates OpenStreetMap and SerpAPI results around a point, nearest first. Either query or category is required.
// @Tags search
// @Produce json
// @Param query query string false "Free text (alias q)"
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Radius in km (1-50)" default(5)
// @Param category query string false "Preset category key"
// @Param use_cache query bool false "Serve from cache when possible" default(true)
// @Param min_rating query number false "Minimum rating"
// @Param open_now query bool false "Only places open now"
// @Param source query string false "openstreetmap or serpapi"
// @Param sort query string false "distance, rating, reviews or name"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /search [get]
func (h *searchHandler) search(c *gin.Context) {
	var params dto.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, searchBindingMessage(err, "Parâmetros obrigatórios: query, lat, lng"))
		return
	}
	if msg := nonFiniteMessage(params); msg != "" {
		badRequest(c, msg)
		return
	}
	text := strings.TrimSpace(params.Text())
	category := strings.ToLower(strings.TrimSpace(params.Category))
	if text == "" && category == "" {
		badRequest(c, "Parâmetros obrigatórios: query, lat, lng")
		return
	}

	q := domain.SearchQuery{
		Query:     text,
		Latitude:  *params.Lat,
		Longitude: *params.Lng,
		Category:  category,
		UseCache:  params.UseCache == nil || *params.UseCache,
		Filters:   filtersFrom(params),
	}
	if params.Radius != nil {
		q.RadiusKm = *params.Radius
	}

	result, err := h.searchService.Search(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}

	radius := q.RadiusKm
	if params.Radius == nil {
		radius = services.DefaultSearchRadiusKm
	}
	h.respondSearch(c, result, text, category, q.Latitude, q.Longitude, radius)
}

// searchByCategory godoc
// @Summary Search a preset category
// @Description Runs the category's keywords and OSM tags with its default radius unless one is given.
// @Tags search
// @Produce json
// @Param category path string true "Category key, e.g. gasolina"
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Radius in km (1-50)"
// @Param min_rating query number false "Minimum rating"
// @Param open_now query bool false "Only places open now"
// @Param source query string false "openstreetmap or serpapi"
// @Param sort query string false "distance, rating, reviews or name"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /search/category/{category} [get]
func (h *searchHandler) searchByCategory(c *gin.Context) {
	var params dto.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, searchBindingMessage(err, "Parâmetros obrigatórios: lat, lng"))
		return
	}
	if msg := nonFiniteMessage(params); msg != "" {
		badRequest(c, msg)
		return
	}
	category := strings.ToLower(c.Param("category"))

	result, err := h.searchService.SearchByCategory(c.Request.Context(), category, *params.Lat, *params.Lng, params.Radius, filtersFrom(params))
	if err != nil {
		respondError(c, err)
		return
	}

	var radius float64
	switch {
	case params.Radius != nil:
		radius = *params.Radius
	default:
		cat, _ := services.LookupCategory(category)
		radius = cat.RadiusKm
	}
	h.respondSearch(c, result, "", category, *params.Lat, *params.Lng, radius)
}

// autocomplete godoc
// @Summary Place suggestions
// @Description Suggests Brazilian places for a partial query. An empty list is served when the provider is unavailable.
// @Tags search
// @Produce json
// @Param query query string true "Partial text (alias q)"
// @Param limit query int false "1-20" default(5)
// @Success 200 {object} dto.AutocompleteResponse
// @Failure 400 {object} ErrorResponse
// @Router /search/autocomplete [get]
func (h *searchHandler) autocomplete(c *gin.Context) {
	var params dto.AutocompleteParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "Parâmetro limit inválido")
		return
	}
	text := strings.TrimSpace(params.Text())
	if text == "" {
		badRequest(c, "Parâmetro obrigatório: query")
		return
	}

	suggestions, prov := h.searchService.Autocomplete(c.Request.Context(), text, params.Limit)
	if suggestions == nil {
		suggestions = []domain.Suggestion{}
	}
	setProvenance(c, prov)
	c.JSON(http.StatusOK, dto.AutocompleteResponse{Success: true, Suggestions: suggestions, Query: text})
}

// categories godoc
// @Summary Preset categories
// @Tags search
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Router /search/categories [get]
func (h *searchHandler) categories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CategoriesResponse{Success: true, Categories: h.searchService.Categories()})
}

// cacheStats godoc
// @Summary Search cache statistics
// @Tags search
// @Produce json
// @Success 200 {object} dto.CacheStatsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /search/stats [get]
func (h *searchHandler) cacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CacheStatsResponse{Success: true, Stats: h.searchService.CacheStats()})
}

// clearCache godoc
// @Summary Clear the search cache
// @Description Drops every entry of a category, or only expired entries when no category is sent.
// @Tags search
// @Accept json
// @Produce json
// @Param body body dto.ClearCacheRequest false "Optional category"
// @Success 200 {object} dto.ClearCacheResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /search/cache/clear [post]
func (h *searchHandler) clearCache(c *gin.Context) {
	var req dto.ClearCacheRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, "Corpo da requisição inválido")
		return
	}
	cleared := h.searchService.ClearCache(strings.ToLower(strings.TrimSpace(req.Category)))
	c.JSON(http.StatusOK, dto.ClearCacheResponse{Success: true, Cleared: cleared})
}

func (h *searchHandler) respondSearch(c *gin.Context, result *domain.SearchResult, query, category string, lat, lng, radius float64) {
	places := result.Places
	if places == nil {
		places = []domain.Place{}
	}
	sources := result.Sources
	if sources == nil {
		sources = []string{}
	}
	if result.Fallback {
		c.Header("X-Data-Source", "fallback")
	} else {
		c.Header("X-Data-Source", "live")
	}

	c.JSON(http.StatusOK, dto.SearchResponse{
		Success:      true,
		Data:         places,
		Cached:       result.Cached,
		Source:       sources,
		TotalResults: len(places),
		Query:        query,
		Category:     category,
		Coordinates:  domain.Coordinates{Lat: lat, Lng: lng},
		Radius:       radius,
		RateLimit:    rateLimitInfo(c),
	})
}

func rateLimitInfo(c *gin.Context) *dto.RateLimitInfo {
	lc, ok := middleware.GetRateLimitFromContext(c)
	if !ok {
		return nil
	}
	return &dto.RateLimitInfo{Limit: lc.Limit, Remaining: lc.Remaining, Reset: lc.Reset}
}

func filtersFrom(p dto.SearchParams) domain.SearchFilters {
	return domain.SearchFilters{
		MinRating: p.MinRating,
		OpenNow:   p.OpenNow,
		Source:    strings.ToLower(strings.TrimSpace(p.Source)),
		SortBy:    strings.ToLower(strings.TrimSpace(p.SortBy)),
	}
}

// nonFiniteMessage rejects NaN and infinities, which strconv accepts but JSON
// cannot encode back.
func nonFiniteMessage(p dto.SearchParams) string {
	if !isFinite(*p.Lat) || !isFinite(*p.Lng) {
		return "Coordenadas inválidas"
	}
	if p.Radius != nil && !isFinite(*p.Radius) {
		return "Raio deve estar entre 1 e 50 km"
	}
	return ""
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// searchBindingMessage tells missing parameters apart from malformed numbers.
func searchBindingMessage(err error, missing string) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return missing
	}
	return "Coordenadas e raio devem ser números válidos"
}
