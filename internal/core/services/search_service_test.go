package services_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/SscSPs/rotalivre/internal/apperrors"
	"github.com/SscSPs/rotalivre/internal/core/domain"
	portssvc "github.com/SscSPs/rotalivre/internal/core/ports/services"
	"github.com/SscSPs/rotalivre/internal/core/services"
	"github.com/SscSPs/rotalivre/internal/observability"
	"github.com/SscSPs/rotalivre/internal/platform/fallback"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
)

type SearchServiceTestSuite struct {
	suite.Suite
	finder        *MockAmenityFinder
	searcher      *MockPlaceSearcher
	autocompleter *MockAutocompleter
	metrics       *observability.Metrics
	service       portssvc.SearchSvcFacade
}

func (suite *SearchServiceTestSuite) SetupTest() {
	suite.finder = new(MockAmenityFinder)
	suite.searcher = &MockPlaceSearcher{configured: true}
	suite.autocompleter = new(MockAutocompleter)
	suite.metrics = observability.NewMetricsForTesting()
	suite.service = services.NewSearchService(suite.finder, suite.searcher, suite.autocompleter,
		fallback.NewPolicy(suite.metrics), time.Hour, suite.metrics)
}

func (suite *SearchServiceTestSuite) TearDownTest() {
	// go-cache runs a janitor goroutine for the lifetime of the cache.
	goleak.VerifyNone(suite.T(),
		goleak.IgnoreTopFunction("github.com/patrickmn/go-cache.(*janitor).Run"),
	)
}

func TestSearchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SearchServiceTestSuite))
}

func place(id, source string, distance float64, rating float64, reviews int, open string) domain.Place {
	return domain.Place{ID: id, Name: id, Source: source, Distance: distance, Rating: &rating, Reviews: &reviews, OpenState: open}
}

func (suite *SearchServiceTestSuite) TestSearch_MergesDedupesAndSorts() {
	ctx := context.Background()
	suite.finder.On("NearbyAmenities", mock.Anything, -23.5, -46.6, 5000, []string{"fuel"}).Return([]domain.Place{
		place("osm_node_1", domain.PlaceSourceOSM, 2.5, 4, 0, ""),
		place("shared", domain.PlaceSourceOSM, 0.8, 3, 0, ""),
	}, nil).Once()
	suite.searcher.On("SearchPlaces", mock.Anything, "posto de gasolina", -23.5, -46.6, 5.0).Return([]domain.Place{
		place("serpapi_a", domain.PlaceSourceSerpAPI, 0.3, 4.8, 120, "Aberto 24 horas"),
		place("shared", domain.PlaceSourceSerpAPI, 0.8, 3, 0, ""),
	}, nil).Once()

	res, err := suite.service.Search(ctx, domain.SearchQuery{Latitude: -23.5, Longitude: -46.6, Category: "gasolina", UseCache: true})

	suite.Require().NoError(err)
	suite.False(res.Cached)
	suite.False(res.Fallback)
	suite.Equal([]string{domain.PlaceSourceOSM, domain.PlaceSourceSerpAPI}, res.Sources)
	suite.Require().Len(res.Places, 3)
	suite.Equal("serpapi_a", res.Places[0].ID)
	suite.Equal("shared", res.Places[1].ID)
	suite.Equal(domain.PlaceSourceOSM, res.Places[1].Source)
	suite.Equal("gasolina", res.Places[2].Category)
}

func (suite *SearchServiceTestSuite) TestSearch_SecondCallServedFromCache() {
	ctx := context.Background()
	suite.searcher.configured = false
	suite.finder.On("NearbyAmenities", mock.Anything, 1.0, 2.0, 3000, []string{"pharmacy"}).
		Return([]domain.Place{place("osm_node_9", domain.PlaceSourceOSM, 1, 0, 0, "")}, nil).Once()

	q := domain.SearchQuery{Latitude: 1, Longitude: 2, RadiusKm: 3, Category: "farmacia", UseCache: true}
	_, err := suite.service.Search(ctx, q)
	suite.Require().NoError(err)
	res, err := suite.service.Search(ctx, q)
	suite.Require().NoError(err)

	suite.True(res.Cached)
	suite.Len(res.Places, 1)
	suite.finder.AssertNumberOfCalls(suite.T(), "NearbyAmenities", 1)
	suite.searcher.AssertNotCalled(suite.T(), "SearchPlaces", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.Equal(1.0, testutil.ToFloat64(suite.metrics.SearchCache.WithLabelValues("hit")))

	stats := suite.service.CacheStats()
	suite.Equal(1, stats.TotalEntries)
	suite.Equal(1, stats.ByCategory["farmacia"])
	suite.Equal(3600, stats.TTLSeconds)

	suite.Equal(1, suite.service.ClearCache("farmacia"))
	suite.Equal(0, suite.service.CacheStats().TotalEntries)
}

func (suite *SearchServiceTestSuite) TestSearch_OneProviderFailingKeepsTheOther() {
	suite.finder.On("NearbyAmenities", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrUpstream).Once()
	suite.searcher.On("SearchPlaces", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.Place{place("serpapi_x", domain.PlaceSourceSerpAPI, 1, 4, 10, "")}, nil).Once()

	res, err := suite.service.Search(context.Background(), domain.SearchQuery{Query: "oficina", Latitude: 1, Longitude: 2})

	suite.Require().NoError(err)
	suite.False(res.Fallback)
	suite.Equal([]string{domain.PlaceSourceSerpAPI}, res.Sources)
	suite.Len(res.Places, 1)
}

func (suite *SearchServiceTestSuite) TestSearch_AllProvidersFailingServesMock() {
	suite.finder.On("NearbyAmenities", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("timeout")).Twice()
	suite.searcher.On("SearchPlaces", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrRateLimited).Twice()

	q := domain.SearchQuery{Query: "posto", Latitude: 1, Longitude: 2, UseCache: true}
	res, err := suite.service.Search(context.Background(), q)

	suite.Require().NoError(err)
	suite.True(res.Fallback)
	suite.Equal([]string{domain.PlaceSourceMock}, res.Sources)
	suite.Len(res.Places, 4)

	// Fallback answers are not cached.
	res, err = suite.service.Search(context.Background(), q)
	suite.Require().NoError(err)
	suite.False(res.Cached)
	suite.Equal(0, suite.service.CacheStats().TotalEntries)
}

func (suite *SearchServiceTestSuite) TestSearch_FreeTextFiltersOSMByName() {
	suite.searcher.configured = false
	suite.finder.On("NearbyAmenities", mock.Anything, 1.0, 2.0, 5000, []string{"fuel", "motorcycle_repair"}).Return([]domain.Place{
		{ID: "osm_node_1", Name: "Borracharia do Zé", Source: domain.PlaceSourceOSM},
		{ID: "osm_node_2", Name: "Posto Shell", Source: domain.PlaceSourceOSM},
	}, nil).Once()

	res, err := suite.service.Search(context.Background(), domain.SearchQuery{Query: "borracharia", Latitude: 1, Longitude: 2})

	suite.Require().NoError(err)
	suite.Require().Len(res.Places, 1)
	suite.Equal("osm_node_1", res.Places[0].ID)
}

func (suite *SearchServiceTestSuite) TestSearch_Validation() {
	ctx := context.Background()
	cases := map[string]domain.SearchQuery{
		"bad coordinates":     {Query: "posto", Latitude: 95, Longitude: 0},
		"radius too small":    {Query: "posto", Latitude: 1, Longitude: 2, RadiusKm: 0.5},
		"radius too large":    {Query: "posto", Latitude: 1, Longitude: 2, RadiusKm: 51},
		"radius not a number": {Query: "posto", Latitude: 1, Longitude: 2, RadiusKm: math.NaN()},
		"no query":            {Latitude: 1, Longitude: 2},
		"unknown category":    {Latitude: 1, Longitude: 2, Category: "cinema"},
	}
	for name, q := range cases {
		suite.Run(name, func() {
			_, err := suite.service.Search(ctx, q)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.finder.AssertNotCalled(suite.T(), "NearbyAmenities", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SearchServiceTestSuite) TestSearchByCategory_UsesCategoryRadius() {
	suite.searcher.configured = false
	suite.finder.On("NearbyAmenities", mock.Anything, 1.0, 2.0, 10000,
		[]string{"tourism=hotel", "tourism=motel", "tourism=guest_house", "tourism=camp_site"}).
		Return([]domain.Place{}, nil).Once()

	res, err := suite.service.SearchByCategory(context.Background(), "Hospedagem", 1, 2, nil, domain.SearchFilters{})

	suite.Require().NoError(err)
	suite.Empty(res.Places)
	suite.finder.AssertExpectations(suite.T())

	_, err = suite.service.SearchByCategory(context.Background(), "cinema", 1, 2, nil, domain.SearchFilters{})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SearchServiceTestSuite) TestSearch_Filters() {
	suite.searcher.configured = false
	suite.finder.On("NearbyAmenities", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]domain.Place{
		place("near", domain.PlaceSourceOSM, 0.5, 3.9, 5, "Fechado"),
		place("mid", domain.PlaceSourceOSM, 1.0, 4.7, 300, "Aberto agora"),
		place("far", domain.PlaceSourceOSM, 2.0, 4.5, 900, "Open 24 hours"),
	}, nil).Once()

	minRating := 4.0
	res, err := suite.service.Search(context.Background(), domain.SearchQuery{
		Category: "restaurante", Latitude: 1, Longitude: 2, UseCache: true,
		Filters: domain.SearchFilters{MinRating: &minRating, OpenNow: true, SortBy: domain.SortByReviews},
	})
	suite.Require().NoError(err)
	suite.Require().Len(res.Places, 2)
	suite.Equal("far", res.Places[0].ID)
	suite.Equal("mid", res.Places[1].ID)

	// Cached entry keeps the unfiltered set.
	res, err = suite.service.Search(context.Background(), domain.SearchQuery{
		Category: "restaurante", Latitude: 1, Longitude: 2, UseCache: true,
		Filters: domain.SearchFilters{SortBy: domain.SortByName},
	})
	suite.Require().NoError(err)
	suite.True(res.Cached)
	suite.Require().Len(res.Places, 3)
	suite.Equal("far", res.Places[0].ID)
	suite.Equal("near", res.Places[2].ID)
}

func (suite *SearchServiceTestSuite) TestAutocomplete() {
	ctx := context.Background()
	suite.autocompleter.On("Suggest", mock.Anything, "paulista", 20).Return([]domain.Suggestion{{Name: "Av. Paulista"}}, nil).Once()

	suggestions, prov := suite.service.Autocomplete(ctx, " paulista ", 99)
	suite.Len(suggestions, 1)
	suite.False(prov.Fallback)
	suite.Equal("nominatim", prov.Provider)

	suite.autocompleter.On("Suggest", mock.Anything, "x", 1).Return(nil, apperrors.ErrUpstream).Once()
	suggestions, prov = suite.service.Autocomplete(ctx, "x", 0)
	suite.NotNil(suggestions)
	suite.Empty(suggestions)
	suite.True(prov.Fallback)
}

func (suite *SearchServiceTestSuite) TestCategoriesOrderedByPriority() {
	cats := suite.service.Categories()
	suite.Require().Len(cats, 7)
	for i := 1; i < len(cats); i++ {
		suite.LessOrEqual(cats[i-1].Priority, cats[i].Priority)
	}
	suite.Equal("gasolina", cats[0].Key)
}
