package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/rotalivre/internal/apperrors"
	"github.com/SscSPs/rotalivre/internal/core/domain"
	"github.com/SscSPs/rotalivre/internal/core/ports/providers"
	portssvc "github.com/SscSPs/rotalivre/internal/core/ports/services"
	"github.com/SscSPs/rotalivre/internal/observability"
	"github.com/SscSPs/rotalivre/internal/platform/fallback"
	"github.com/SscSPs/rotalivre/internal/utils/geo"
	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultSearchRadiusKm = 5.0
	MinSearchRadiusKm     = 1.0
	MaxSearchRadiusKm     = 50.0
	MaxSearchResults      = 20

	MinAutocompleteLimit = 1
	MaxAutocompleteLimit = 20

	searchProviderName       = "place_search"
	autocompleteProviderName = "autocomplete"

	// uncategorised groups cache entries for free-text searches in stats.
	uncategorised = "geral"
)

// categories is the preset catalogue, in display order.
var categories = []domain.Category{
	{Key: "gasolina", Label: "Postos de gasolina", Keywords: []string{"posto de gasolina", "gasolina", "combustível"},
		RadiusKm: 5, Priority: 1, OSMAmenities: []string{"fuel"}, DisplayedIcon: "⛽"},
	{Key: "hospedagem", Label: "Hospedagem", Keywords: []string{"hotel", "pousada", "camping", "hospedagem"},
		RadiusKm: 10, Priority: 2, OSMAmenities: []string{"tourism=hotel", "tourism=motel", "tourism=guest_house", "tourism=camp_site"}, DisplayedIcon: "🏨"},
	{Key: "oficina", Label: "Oficinas", Keywords: []string{"oficina mecânica", "mecânica", "oficina moto"},
		RadiusKm: 5, Priority: 1, OSMAmenities: []string{"motorcycle_repair", "shop=motorcycle_repair", "shop=motorcycle", "shop=car_repair", "shop=tyres"}, DisplayedIcon: "🔧"},
	{Key: "restaurante", Label: "Restaurantes", Keywords: []string{"restaurante", "lanchonete", "comida"},
		RadiusKm: 3, Priority: 3, OSMAmenities: []string{"restaurant", "fast_food", "cafe"}, DisplayedIcon: "🍽️"},
	{Key: "farmacia", Label: "Farmácias", Keywords: []string{"farmácia", "drogaria", "medicamento"},
		RadiusKm: 3, Priority: 2, OSMAmenities: []string{"pharmacy"}, DisplayedIcon: "💊"},
	{Key: "hospital", Label: "Hospitais", Keywords: []string{"hospital", "pronto socorro", "emergência"},
		RadiusKm: 10, Priority: 1, OSMAmenities: []string{"hospital", "clinic"}, DisplayedIcon: "🏥"},
	{Key: "policia", Label: "Polícia", Keywords: []string{"polícia", "delegacia", "segurança"},
		RadiusKm: 10, Priority: 1, OSMAmenities: []string{"police"}, DisplayedIcon: "👮"},
}

// LookupCategory finds a preset by key, case-insensitively.
func LookupCategory(key string) (domain.Category, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, c := range categories {
		if c.Key == key {
			return c, true
		}
	}
	return domain.Category{}, false
}

type cacheEntry struct {
	Places   []domain.Place
	Sources  []string
	Category string
}

type searchService struct {
	BaseService
	finder        providers.AmenityFinder
	searcher      providers.PlaceSearcher
	autocompleter providers.Autocompleter
	policy        *fallback.Policy
	cache         *cache.Cache
	ttl           time.Duration
	metrics       *observability.Metrics
}

// NewSearchService aggregates OSM and, when keyed, SerpAPI results behind a TTL cache.
func NewSearchService(
	finder providers.AmenityFinder,
	searcher providers.PlaceSearcher,
	autocompleter providers.Autocompleter,
	policy *fallback.Policy,
	ttl time.Duration,
	metrics *observability.Metrics,
) portssvc.SearchSvcFacade {
	return &searchService{
		finder:        finder,
		searcher:      searcher,
		autocompleter: autocompleter,
		policy:        policy,
		cache:         cache.New(ttl, 10*time.Minute),
		ttl:           ttl,
		metrics:       metrics,
	}
}

func (s *searchService) Categories() []domain.Category {
	out := slices.Clone(categories)
	slices.SortStableFunc(out, func(a, b domain.Category) int { return cmp.Compare(a.Priority, b.Priority) })
	return out
}

func (s *searchService) SearchByCategory(ctx context.Context, category string, lat, lng float64, radiusKm *float64, filters domain.SearchFilters) (*domain.SearchResult, error) {
	cat, ok := LookupCategory(category)
	if !ok {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("Categoria \"%s\" não encontrada", category))
	}
	radius := cat.RadiusKm
	if radiusKm != nil {
		radius = *radiusKm
	}
	return s.Search(ctx, domain.SearchQuery{
		Query:     cat.Keywords[0],
		Latitude:  lat,
		Longitude: lng,
		RadiusKm:  radius,
		Category:  cat.Key,
		UseCache:  true,
		Filters:   filters,
	})
}

func (s *searchService) Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchResult, error) {
	q.Query = strings.TrimSpace(q.Query)
	if !geo.ValidCoordinates(q.Latitude, q.Longitude) {
		return nil, apperrors.NewBadRequestError("Coordenadas inválidas")
	}
	if q.RadiusKm == 0 {
		q.RadiusKm = DefaultSearchRadiusKm
	}
	if math.IsNaN(q.RadiusKm) || q.RadiusKm < MinSearchRadiusKm || q.RadiusKm > MaxSearchRadiusKm {
		return nil, apperrors.NewBadRequestError("Raio deve estar entre 1 e 50 km")
	}

	var cat *domain.Category
	if q.Category != "" {
		c, ok := LookupCategory(q.Category)
		if !ok {
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("Categoria \"%s\" não encontrada", q.Category))
		}
		cat = &c
		q.Category = c.Key
		if q.Query == "" {
			q.Query = c.Keywords[0]
		}
	}
	if q.Query == "" {
		return nil, apperrors.NewBadRequestError("Parâmetro obrigatório: q ou category")
	}

	key := searchCacheKey(q)
	if q.UseCache {
		if hit, ok := s.cache.Get(key); ok {
			s.countCache("hit")
			entry := hit.(*cacheEntry)
			return &domain.SearchResult{
				Places:  applyFilters(slices.Clone(entry.Places), q.Filters),
				Cached:  true,
				Sources: entry.Sources,
			}, nil
		}
		s.countCache("miss")
	}

	res := fallback.Do(ctx, s.policy, searchProviderName,
		func(ctx context.Context) (*cacheEntry, error) { return s.fanOut(ctx, q, cat) },
		func() *cacheEntry {
			places := MockMapPlaces(q.Latitude, q.Longitude)
			for i := range places {
				places[i].Category = q.Category
			}
			return &cacheEntry{Places: places, Sources: []string{domain.PlaceSourceMock}, Category: q.Category}
		},
	)

	entry := res.Value
	if !res.Fallback() && len(entry.Places) > 0 {
		s.cache.SetDefault(key, entry)
	}

	return &domain.SearchResult{
		Places:   applyFilters(slices.Clone(entry.Places), q.Filters),
		Sources:  entry.Sources,
		Fallback: res.Fallback(),
	}, nil
}

// fanOut queries every usable provider concurrently. It fails only when all
// invoked providers failed.
func (s *searchService) fanOut(ctx context.Context, q domain.SearchQuery, cat *domain.Category) (*cacheEntry, error) {
	var (
		mu      sync.Mutex
		results = map[string][]domain.Place{}
		errs    []error
		g       errgroup.Group
	)
	record := func(source string, places []domain.Place, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			s.LogWarn(ctx, "Place provider failed", slog.String("provider", source), slog.String("error", err.Error()))
			errs = append(errs, err)
			return
		}
		results[source] = places
	}

	tags, nameFilter := s.osmTags(q, cat)
	g.Go(func() error {
		places, err := s.finder.NearbyAmenities(ctx, q.Latitude, q.Longitude, int(q.RadiusKm*1000), tags)
		if err == nil && nameFilter {
			places = filterByName(places, q.Query)
		}
		record(domain.PlaceSourceOSM, places, err)
		return nil
	})
	if s.searcher != nil && s.searcher.Configured() {
		g.Go(func() error {
			places, err := s.searcher.SearchPlaces(ctx, q.Query, q.Latitude, q.Longitude, q.RadiusKm)
			record(domain.PlaceSourceSerpAPI, places, err)
			return nil
		})
	}
	_ = g.Wait()

	if len(results) == 0 {
		return nil, errors.Join(errs...)
	}

	var (
		merged  []domain.Place
		seen    = map[string]bool{}
		sources []string
	)
	for _, source := range []string{domain.PlaceSourceOSM, domain.PlaceSourceSerpAPI} {
		places, ok := results[source]
		if !ok {
			continue
		}
		sources = append(sources, source)
		for _, p := range places {
			if p.ID == "" || seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			p.Category = q.Category
			merged = append(merged, p)
		}
	}
	SortPlacesByDistance(merged)
	if len(merged) > MaxSearchResults {
		merged = merged[:MaxSearchResults]
	}
	if merged == nil {
		merged = []domain.Place{}
	}
	return &cacheEntry{Places: merged, Sources: sources, Category: q.Category}, nil
}

// osmTags picks the OSM tags for a search. Free text that matches no known
// filter falls back to the default set and asks for a name filter.
func (s *searchService) osmTags(q domain.SearchQuery, cat *domain.Category) ([]string, bool) {
	if cat != nil {
		return cat.OSMAmenities, false
	}
	tags, known := AmenitiesForQuery(q.Query)
	return tags, !known
}

func filterByName(places []domain.Place, query string) []domain.Place {
	needle := strings.ToLower(query)
	out := places[:0]
	for _, p := range places {
		if strings.Contains(strings.ToLower(p.Name), needle) || strings.Contains(strings.ToLower(p.Type), needle) {
			out = append(out, p)
		}
	}
	return out
}

func applyFilters(places []domain.Place, f domain.SearchFilters) []domain.Place {
	out := make([]domain.Place, 0, len(places))
	for _, p := range places {
		if f.MinRating != nil && (p.Rating == nil || *p.Rating < *f.MinRating) {
			continue
		}
		if f.OpenNow && !isOpen(p.OpenState) {
			continue
		}
		if f.Source != "" && p.Source != f.Source {
			continue
		}
		out = append(out, p)
	}

	switch f.SortBy {
	case domain.SortByRating:
		slices.SortStableFunc(out, func(a, b domain.Place) int { return cmp.Compare(ratingOf(b), ratingOf(a)) })
	case domain.SortByReviews:
		slices.SortStableFunc(out, func(a, b domain.Place) int { return cmp.Compare(reviewsOf(b), reviewsOf(a)) })
	case domain.SortByName:
		slices.SortStableFunc(out, func(a, b domain.Place) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
	default:
		SortPlacesByDistance(out)
	}
	return out
}

func isOpen(state string) bool {
	state = strings.ToLower(state)
	if strings.Contains(state, "fechado") || strings.Contains(state, "closed") {
		return false
	}
	return strings.Contains(state, "open") || strings.Contains(state, "aberto")
}

func ratingOf(p domain.Place) float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

func reviewsOf(p domain.Place) int {
	if p.Reviews == nil {
		return 0
	}
	return *p.Reviews
}

func searchCacheKey(q domain.SearchQuery) string {
	return fmt.Sprintf("%s|%.4f|%.4f|%g|%s", strings.ToLower(q.Query), q.Latitude, q.Longitude, q.RadiusKm, q.Category)
}

func (s *searchService) Autocomplete(ctx context.Context, query string, limit int) ([]domain.Suggestion, domain.Provenance) {
	limit = min(max(limit, MinAutocompleteLimit), MaxAutocompleteLimit)
	query = strings.TrimSpace(query)

	var primary func(context.Context) ([]domain.Suggestion, error)
	if query != "" {
		primary = func(ctx context.Context) ([]domain.Suggestion, error) {
			return s.autocompleter.Suggest(ctx, query, limit)
		}
	}
	res := fallback.Do(ctx, s.policy, autocompleteProviderName, primary, func() []domain.Suggestion {
		return []domain.Suggestion{}
	})

	suggestions := res.Value
	if suggestions == nil {
		suggestions = []domain.Suggestion{}
	}
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions, res.Provenance(s.autocompleter.Name())
}

func (s *searchService) CacheStats() domain.CacheStats {
	items := s.cache.Items()
	stats := domain.CacheStats{
		TotalEntries: len(items),
		ByCategory:   map[string]int{},
		TTLSeconds:   int(s.ttl.Seconds()),
	}
	for _, item := range items {
		entry, ok := item.Object.(*cacheEntry)
		if !ok {
			continue
		}
		cat := entry.Category
		if cat == "" {
			cat = uncategorised
		}
		stats.ByCategory[cat]++
	}
	return stats
}

func (s *searchService) ClearCache(category string) int {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		before := s.cache.ItemCount()
		s.cache.DeleteExpired()
		return before - s.cache.ItemCount()
	}

	cleared := 0
	for key, item := range s.cache.Items() {
		if entry, ok := item.Object.(*cacheEntry); ok && entry.Category == category {
			s.cache.Delete(key)
			cleared++
		}
	}
	return cleared
}

func (s *searchService) countCache(result string) {
	if s.metrics != nil {
		s.metrics.SearchCache.WithLabelValues(result).Inc()
	}
}
